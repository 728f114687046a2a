package game

import "fmt"

// Suit is one of the four Spanish suits.
type Suit int

const (
	Clubs Suit = iota
	Cups
	Swords
	Coins
)

var suitNames = []string{"Clubs", "Cups", "Swords", "Coins"}

var spanishSuitNames = []string{"Bastos", "Copas", "Espadas", "Oros"}

// Suits lists every suit in deck order.
var Suits = []Suit{Clubs, Cups, Swords, Coins}

func (s Suit) valid() bool {
	return s >= Clubs && s <= Coins
}

func (s Suit) String() string {
	if !s.valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// SpanishName returns the traditional name printed on the cards.
func (s Suit) SpanishName() string {
	if !s.valid() {
		return s.String()
	}
	return spanishSuitNames[s]
}

// Ranks lists the ranks of a Spanish deck; 8 and 9 are not part of it.
var Ranks = []int{1, 2, 3, 4, 5, 6, 7, 10, 11, 12}

func validRank(rank int) bool {
	return (rank >= 1 && rank <= 7) || (rank >= 10 && rank <= 12)
}

type Card struct {
	rank int
	suit Suit
}

// NewCard returns ok=false when the rank or suit does not exist in the deck.
func NewCard(rank int, suit Suit) (Card, bool) {
	if !validRank(rank) || !suit.valid() {
		return Card{}, false
	}
	return Card{rank: rank, suit: suit}, true
}

func (c Card) Rank() int  { return c.rank }
func (c Card) Suit() Suit { return c.suit }

// IsFace reports whether the card is a sota, caballo or rey.
func (c Card) IsFace() bool {
	return c.rank >= 10
}

func (c Card) Description() string {
	return fmt.Sprintf("The %d of %s", c.rank, c.suit)
}

func (c Card) String() string {
	return c.Description()
}
