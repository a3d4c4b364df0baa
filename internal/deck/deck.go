package deck

import (
	"errors"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered set of cards. The top card is cards[0].
// A deck is single-use: cards are only ever removed.
type Deck struct {
	cards []Card
}

// NewShuffledDeck creates a standard 52-card deck shuffled with rng.
func NewShuffledDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	// Fisher-Yates
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// NewDeck creates a stacked deck that deals cards in the given order.
func NewDeck(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
