package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// ErrInvalidBet is wrapped by every *BetError
var ErrInvalidBet = errors.New("invalid bet")

// BetError explains why a bet was refused. Its message is shown to the
// player as is.
type BetError struct {
	Reason string
}

func (e *BetError) Error() string {
	return e.Reason
}

func (e *BetError) Unwrap() error {
	return ErrInvalidBet
}

var (
	errNotPositive = &BetError{Reason: "Your bet must be positive"}
	errNotWhole    = &BetError{Reason: "Your bet must be whole"}
	errTooLarge    = &BetError{Reason: "You can't bet more than you have"}
	errMalformed   = &BetError{Reason: "Invalid bet"}
)

// ParseBet parses a bet typed by the player. Bets are whole currency units
// no larger than cash. Zero is accepted and means leaving the table.
func ParseBet(input string, cash game.Money) (game.Money, error) {
	s := strings.TrimSpace(input)

	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n > cash.Cents()/100 {
			return 0, errTooLarge
		}
		return game.Dollars(n), nil
	}

	switch {
	case strings.HasPrefix(s, "-") && isDigits(s[1:]):
		return 0, errNotPositive
	case strings.Contains(s, ".") && isDigits(strings.Replace(s, ".", "", 1)):
		return 0, errNotWhole
	default:
		return 0, errMalformed
	}
}

// ValidateBet checks a bet that is about to be played
func ValidateBet(bet, cash game.Money) error {
	switch {
	case bet <= 0:
		return errNotPositive
	case !bet.IsWhole():
		return errNotWhole
	case bet > cash:
		return errTooLarge
	}
	return nil
}

// ParseYesNo parses an answer to a yes/no question
func ParseYesNo(input string) (answer, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
