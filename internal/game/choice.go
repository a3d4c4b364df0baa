package game

import (
	"errors"
	"strings"
)

// ErrInvalidChoice is returned when a DecisionProvider answers with a choice
// that is not allowed for the hand.
var ErrInvalidChoice = errors.New("invalid choice")

// Choice is a player decision on a hand
type Choice int

const (
	Hit Choice = iota + 1
	Stand
	Double
	Surrender
)

// String returns the string representation of a choice
func (c Choice) String() string {
	switch c {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Surrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// ParseChoice parses user input. The first three letters are enough
// ("hit", "sta", "dou", "sur"), as are the single letters h, s, d and r.
func ParseChoice(input string) (Choice, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "h":
		return Hit, true
	case "s":
		return Stand, true
	case "d":
		return Double, true
	case "r":
		return Surrender, true
	}
	if len(s) > 3 {
		s = s[:3]
	}
	switch s {
	case "hit":
		return Hit, true
	case "sta":
		return Stand, true
	case "dou":
		return Double, true
	case "sur":
		return Surrender, true
	}
	return 0, false
}

// AllowedChoices returns the choices available on a hand of cardCount cards.
// Double and surrender are only offered before any card has been drawn.
func AllowedChoices(cardCount int) []Choice {
	if cardCount == 2 {
		return []Choice{Hit, Stand, Double, Surrender}
	}
	return []Choice{Hit, Stand}
}

// Resolution is how a hand's decision phase ended
type Resolution int

const (
	// ResolutionNone means no decision was taken: the hand held 21 already.
	ResolutionNone Resolution = iota
	ResolutionStand
	ResolutionSurrender
	ResolutionDouble
	// ResolutionBust means a hit took the hand over 21.
	ResolutionBust
	// ResolutionTwentyOne means a hit made exactly 21 and the hand stood.
	ResolutionTwentyOne
)

// String returns the string representation of a resolution
func (r Resolution) String() string {
	switch r {
	case ResolutionNone:
		return "none"
	case ResolutionStand:
		return "stand"
	case ResolutionSurrender:
		return "surrender"
	case ResolutionDouble:
		return "double"
	case ResolutionBust:
		return "bust"
	case ResolutionTwentyOne:
		return "twenty-one"
	default:
		return "unknown"
	}
}

// HandPlay is a player hand after its decision phase
type HandPlay struct {
	Hand       Hand
	Bet        Money // stake on this hand, doubled if the player doubled
	Resolution Resolution
}

// Surrendered reports whether the hand was given up for half the bet
func (p HandPlay) Surrendered() bool {
	return p.Resolution == ResolutionSurrender
}

// Live reports whether the hand still needs the dealer's total to settle
func (p HandPlay) Live() bool {
	return !p.Surrendered() && !p.Hand.IsBust()
}
