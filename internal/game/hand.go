package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Hand is the ordered cards held by one party: the dealer or one player hand.
// A hand only grows.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding cards.
func NewHand(cards ...deck.Card) Hand {
	h := Hand{cards: make([]deck.Card, len(cards), len(cards)+4)}
	copy(h.cards, cards)
	return h
}

// Add appends a card to the hand
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// Card returns the i-th card dealt to the hand
func (h Hand) Card(i int) deck.Card {
	return h.cards[i]
}

// Cards returns a copy of the cards in the hand
func (h Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Clone returns an independent copy of the hand
func (h Hand) Clone() Hand {
	return NewHand(h.cards...)
}

// Value returns the blackjack value of the hand
func (h Hand) Value() int {
	return Value(h.cards)
}

// IsSoft reports whether an Ace in the hand still counts as 11
func (h Hand) IsSoft() bool {
	return IsSoft(h.cards)
}

// IsNatural reports whether the hand is a two-card 21
func (h Hand) IsNatural() bool {
	return IsNatural(h.cards)
}

// IsBust reports whether the hand is over 21
func (h Hand) IsBust() bool {
	return IsBust(h.cards)
}

// String returns the cards separated by spaces, e.g. "A♠ 10♥"
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
