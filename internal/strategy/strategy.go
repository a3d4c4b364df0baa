// Package strategy is an automated player following single-deck basic
// strategy for a dealer who stands on soft 17, with late surrender and
// doubling after splits.
package strategy

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Table entries, one per dealer up-card 2..10, Ace.
//
//	H  hit
//	S  stand
//	D  double, otherwise hit
//	d  double, otherwise stand
//	R  surrender, otherwise hit
//	Y  split
//	N  don't split
const (
	hit            = 'H'
	stand          = 'S'
	doubleOrHit    = 'D'
	doubleOrStand  = 'd'
	surrenderOrHit = 'R'
	split          = 'Y'
	noSplit        = 'N'
)

// Rows are keyed by player total, columns are the dealer's up-card
// 2 3 4 5 6 7 8 9 T A.
var hardTable = map[int]string{
	8:  "HHHDDHHHHH",
	9:  "DDDDDHHHHH",
	10: "DDDDDDDDHH",
	11: "DDDDDDDDDD",
	12: "HHSSSHHHHH",
	13: "SSSSSHHHHH",
	14: "SSSSSHHHHH",
	15: "SSSSSHHHRH",
	16: "SSSSSHHRRR",
}

var softTable = map[int]string{
	13: "HHDDDHHHHH",
	14: "HHDDDHHHHH",
	15: "HHDDDHHHHH",
	16: "HHDDDHHHHH",
	17: "DDDDDHHHHH",
	18: "SddddSSHHS",
	19: "SSSSdSSSSS",
}

// keyed by the points of one card of the pair
var pairTable = map[int]string{
	2:  "YYYYYYNNNN",
	3:  "YYYYYYNNNN",
	4:  "NNYYYNNNNN",
	5:  "NNNNNNNNNN",
	6:  "YYYYYYNNNN",
	7:  "YYYYYYNNNN",
	8:  "YYYYYYYYYY",
	9:  "YYYYYNYYNN",
	10: "NNNNNNNNNN",
	11: "YYYYYYYYYY",
}

// BasicStrategy is a game.DecisionProvider that never errors and never takes
// insurance.
type BasicStrategy struct{}

// New creates a basic strategy player
func New() *BasicStrategy {
	return &BasicStrategy{}
}

// AskYesNo declines insurance and splits according to the pair table
func (b *BasicStrategy) AskYesNo(offer game.Offer) (bool, error) {
	if offer.Kind != game.OfferSplit {
		return false, nil
	}
	return ShouldSplit(offer.Hand, offer.DealerUp), nil
}

// AskChoice picks the basic strategy play among the allowed choices
func (b *BasicStrategy) AskChoice(req game.ChoiceRequest) (game.Choice, error) {
	return Decide(req.Hand, req.DealerUp, req.Allows), nil
}

// ShouldSplit reports whether a starting pair should be split
func ShouldSplit(hand game.Hand, up deck.Card) bool {
	if hand.Len() != 2 || hand.Card(0).Points() != hand.Card(1).Points() {
		return false
	}
	return lookup(pairTable, hand.Card(0).Points(), up, noSplit) == split
}

// Decide returns the basic strategy choice for hand against the dealer's
// up-card. allowed reports which choices the table permits right now.
func Decide(hand game.Hand, up deck.Card, allowed func(game.Choice) bool) game.Choice {
	value := hand.Value()
	if value >= game.Blackjack {
		return game.Stand
	}

	var entry byte
	if hand.IsSoft() {
		entry = lookup(softTable, value, up, hit)
		if value >= 20 {
			entry = stand
		}
	} else {
		entry = lookup(hardTable, value, up, hit)
		if value >= 17 {
			entry = stand
		}
	}

	switch entry {
	case doubleOrHit:
		if allowed(game.Double) {
			return game.Double
		}
		return game.Hit
	case doubleOrStand:
		if allowed(game.Double) {
			return game.Double
		}
		return game.Stand
	case surrenderOrHit:
		if allowed(game.Surrender) {
			return game.Surrender
		}
		return game.Hit
	case stand:
		return game.Stand
	default:
		return game.Hit
	}
}

func lookup(table map[int]string, key int, up deck.Card, fallback byte) byte {
	row, ok := table[key]
	if !ok {
		return fallback
	}
	return row[up.Points()-2]
}
