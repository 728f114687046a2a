package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cards(t *testing.T, ranks ...int) []Card {
	t.Helper()

	out := make([]Card, 0, len(ranks))
	for i, rank := range ranks {
		c, ok := NewCard(rank, Suits[i%len(Suits)])
		if !ok {
			t.Fatalf("invalid rank %d", rank)
		}
		out = append(out, c)
	}
	return out
}

func handOf(t *testing.T, ranks ...int) *Hand {
	t.Helper()

	h := NewHand()
	for _, c := range cards(t, ranks...) {
		h.AddCard(c)
	}
	return h
}

func TestHand(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		h := NewHand()
		assert.Equal(t, 0, h.Size())
		assert.Equal(t, 0.0, h.Score())
		assert.Equal(t, "[]", h.String())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		h := handOf(t, 3, 11, 5)

		assert.Equal(t, 3, h.Size())
		for i, rank := range []int{3, 11, 5} {
			c, ok := h.Card(i)
			assert.True(t, ok)
			assert.Equal(t, rank, c.Rank())
		}
		assert.Equal(t, "[The 3 of Clubs, The 11 of Cups, The 5 of Swords]", h.String())
	})

	t.Run("out of bounds", func(t *testing.T) {
		h := handOf(t, 3)

		_, ok := h.Card(1)
		assert.False(t, ok)
		_, ok = h.Card(-1)
		assert.False(t, ok)
	})

	t.Run("cards is a copy", func(t *testing.T) {
		h := handOf(t, 1, 2)
		cs := h.Cards()
		cs[0] = Card{}

		c, _ := h.Card(0)
		assert.Equal(t, 1, c.Rank())
	})
}

func TestHandScore(t *testing.T) {
	cases := []struct {
		name    string
		ranks   []int
		score   float64
		bust    bool
		natural bool
	}{
		{"numbers only, no adjustment", []int{7, 7, 7}, 21.0, true, false},
		{"seven and a face is natural", []int{7, 10}, 7.5, false, true},
		{"two faces over target are both discounted", []int{7, 10, 11}, 7.0, false, false},
		{"faces under target count half", []int{3, 12}, 3.5, false, false},
		{"all faces", []int{10, 11, 12}, 1.5, false, false},
		{"numbers reach natural", []int{5, 2, 10}, 7.5, false, true},
		{"bust with one face still bust", []int{6, 5, 10}, 11.0, true, false},
		{"exactly seven", []int{4, 3}, 7.0, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := handOf(t, c.ranks...)
			assert.Equal(t, c.score, h.Score())
			assert.Equal(t, c.bust, h.IsBust())
			assert.Equal(t, c.natural, h.IsNatural())
		})
	}
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "7.5", FormatScore(7.5))
	assert.Equal(t, "6.0", FormatScore(6))
	assert.Equal(t, "21.0", FormatScore(21))
}
