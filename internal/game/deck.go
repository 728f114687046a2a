package game

import (
	"math/rand"
	"time"
)

const deckSize = 40

type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewDeck builds the 40 cards ordered by suit, then rank. The deck is not shuffled.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = NewRand(0)
	}

	d := &Deck{
		cards: make([]Card, 0, deckSize),
		rng:   rng,
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			if card, ok := NewCard(rank, suit); ok {
				d.cards = append(d.cards, card)
			}
		}
	}

	return d
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw takes the card on top of the deck, which is the end of the slice.
func (d *Deck) Draw() (Card, bool) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, false
	}

	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, true
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
