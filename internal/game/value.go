package game

import "github.com/lox/blackjack/internal/deck"

// Blackjack is the best possible hand value.
const Blackjack = 21

// Value returns the blackjack score of cards. Every Ace starts at 11 and is
// demoted to 1, one at a time, while the total exceeds 21.
func Value(cards []deck.Card) int {
	total, _ := valueWithSoftAces(cards)
	return total
}

// IsSoft reports whether the hand's value still counts an Ace as 11.
func IsSoft(cards []deck.Card) bool {
	_, soft := valueWithSoftAces(cards)
	return soft > 0
}

func valueWithSoftAces(cards []deck.Card) (int, int) {
	total := 0
	aces := 0
	for _, card := range cards {
		if card.IsAce() {
			aces++
		}
		total += card.Points()
	}

	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}

// IsNatural reports whether cards are a natural blackjack: two cards worth 21.
func IsNatural(cards []deck.Card) bool {
	return len(cards) == 2 && Value(cards) == Blackjack
}

// IsBust reports whether cards are worth more than 21.
func IsBust(cards []deck.Card) bool {
	return Value(cards) > Blackjack
}
