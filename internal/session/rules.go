package session

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// RulesText returns the rules explained to a new player
func RulesText(rules game.Rules) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("GAME RULES:")
	line("")
	line("  1. Place a bet. Betting zero leaves the table.")
	line("")
	line("  2. You and the dealer get two cards each. Only the dealer's first")
	line("     card is face up.")
	line("")
	line("  3. When the dealer shows an Ace you may buy insurance for %s of", ratioText(rules.InsuranceCost))
	line("     your bet.")
	line("")
	line("  4. A dealer blackjack beats you, unless you hold blackjack too,")
	line("     which is a push. Insurance pays 2:1 and covers the lost bet.")
	line("")
	line("  5. Two starting cards of equal value may be split into two hands")
	line("     for a second bet. Each hand is then played on its own.")
	line("")
	line("  6. A blackjack pays %s. On a split hand it pays %s.", rules.BlackjackPayout, rules.SplitBlackjackPayout)
	line("")
	line("  7. Without a blackjack on the table you hit, stand, double or")
	line("     surrender:")
	line("      - hit draws another card")
	line("      - stand keeps your hand; 21 or more stands automatically")
	line("      - double doubles the bet and draws exactly one card")
	line("      - surrender gives up the hand for %s of the bet", ratioText(rules.SurrenderLoss))
	line("     Double and surrender are only allowed on your first two cards.")
	line("")
	line("  8. Going over 21 busts and loses the bet.")
	line("")
	line("  9. The dealer then draws until reaching %d or more.", rules.DealerStandsOn)
	line("")
	line(" 10. A dealer bust pays 1:1.")
	line("")
	line(" 11. Otherwise the higher total wins and equal totals push.")
	line("     Jacks, Queens and Kings count 10, Aces count 11 or 1, and every")
	line("     other card counts its face value.")

	return b.String()
}

func ratioText(r game.Ratio) string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
