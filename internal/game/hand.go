package game

import "strings"

// Hand holds the player's cards for one round.
type Hand struct {
	cards []Card
}

func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0, maxHandSize),
	}
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) AddCard(card Card) {
	h.cards = append(h.cards, card)
}

// Card returns the card at a 0-based position.
func (h *Hand) Card(pos int) (Card, bool) {
	if pos < 0 || pos >= len(h.cards) {
		return Card{}, false
	}
	return h.cards[pos], true
}

// Cards returns a copy of the hand in the order the cards were received.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Score() float64 {
	return CalculateScore(h.cards)
}

func (h *Hand) IsBust() bool {
	return IsBust(h.cards)
}

func (h *Hand) IsNatural() bool {
	return IsNatural(h.cards)
}

func (h *Hand) String() string {
	names := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		names = append(names, c.Description())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
