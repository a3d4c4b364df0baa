package render

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// Event returns the text shown for a round event, or "" when the event has
// no text of its own.
func Event(e game.Event) string {
	switch e.Kind {
	case game.EventInsuranceTaken:
		return fmt.Sprintf("You bought insurance for %s.", e.Amount)

	case game.EventSplit:
		return fmt.Sprintf("You split your hand for an additional %s.", e.Amount)

	case game.EventPlayerTurn:
		if e.Split {
			return Header(handTitle(e.Hand))
		}
		return Header("PLAYER CHOICE")

	case game.EventDoubled:
		return fmt.Sprintf("You doubled your bet to %s.", e.Amount)

	case game.EventSurrendered:
		return fmt.Sprintf("You surrendered. You lose %s.", e.Amount)

	case game.EventDealerTurn:
		return Header("DEALER'S DRAW")

	case game.EventHandSettled:
		var lines []string
		if e.Hand == 0 {
			lines = append(lines, Header("RESULTS"))
		}
		if e.Split {
			lines = append(lines, Header(handTitle(e.Hand)))
		}
		lines = append(lines, Settlement(e.Settlement)...)
		return strings.Join(lines, "\n")

	case game.EventRoundSettled:
		switch {
		case e.Amount > 0:
			return WinStyle.Render(fmt.Sprintf("You won %s this round.", e.Amount))
		case e.Amount < 0:
			return LossStyle.Render(fmt.Sprintf("You lost %s this round.", -e.Amount))
		default:
			return "You broke even this round."
		}
	}
	return ""
}

// Settlement returns the result lines for one settled hand
func Settlement(s game.Settlement) []string {
	switch s.Outcome {
	case game.OutcomeBothBlackjack:
		if s.Insured {
			return []string{"Both you and dealer have blackjack.",
				fmt.Sprintf("You have insurance, so you win %s.", s.Amount)}
		}
		return []string{"Both you and dealer have blackjack.", "It's a push."}

	case game.OutcomeDealerBlackjack:
		if s.Insured {
			return []string{"Dealer has blackjack.", "You have insurance, so you come out even."}
		}
		return []string{"Dealer has blackjack.", fmt.Sprintf("You lose %s.", s.Amount)}

	case game.OutcomeBlackjack:
		return []string{"You have blackjack.", fmt.Sprintf("You win %s.", s.Amount)}

	case game.OutcomeSurrender:
		return []string{fmt.Sprintf("You surrendered. You lose %s.", s.Amount)}

	case game.OutcomeBust:
		return []string{
			fmt.Sprintf("You have %d.", s.PlayerValue),
			fmt.Sprintf("You busted. You lose %s.", s.Amount),
		}
	}

	score := fmt.Sprintf("You have %d, dealer has %d.", s.PlayerValue, s.DealerValue)
	switch s.Outcome {
	case game.OutcomeDealerBust:
		return []string{score, fmt.Sprintf("Dealer busted. You win %s.", s.Amount)}
	case game.OutcomeLose:
		return []string{score, fmt.Sprintf("Dealer wins. You lose %s.", s.Amount)}
	case game.OutcomeWin:
		return []string{score, fmt.Sprintf("You win %s.", s.Amount)}
	default:
		return []string{score, "It's a push."}
	}
}

func handTitle(i int) string {
	if i == 0 {
		return "FIRST HAND"
	}
	return "SECOND HAND"
}
