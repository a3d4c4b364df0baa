package render

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

const ruleWidth = 40

// Header returns a section rule such as
// "------------ PLACE YOUR BET ------------".
func Header(title string) string {
	title = " " + title + " "
	dashes := max(ruleWidth-len([]rune(title)), 0)
	left := (dashes + 1) / 2
	return HeaderStyle.Render(strings.Repeat("-", left) + title + strings.Repeat("-", dashes-left))
}

// Table draws every player hand followed by the dealer's hand
func Table(view game.TableView) string {
	var b strings.Builder

	labels := []string{"YOUR HAND"}
	if view.Split {
		labels = []string{"YOUR FIRST HAND", "YOUR SECOND HAND"}
	}
	for i, hand := range view.PlayerHands {
		label := labels[min(i, len(labels)-1)]
		marker := ""
		if view.Split && i == view.Active {
			marker = " <"
		}
		fmt.Fprintf(&b, "%s %d%s\n", LabelStyle.Render(label+":"), hand.Value(), marker)
		b.WriteString(Cards(hand.Cards(), false))
		b.WriteString("\n\n")
	}

	label := LabelStyle.Render("DEALER'S HAND:")
	if view.DealerHidden {
		b.WriteString(label + "\n")
	} else {
		fmt.Fprintf(&b, "%s %d\n", label, view.Dealer.Value())
	}
	b.WriteString(Cards(view.Dealer.Cards(), view.DealerHidden))
	b.WriteString("\n")

	return b.String()
}

// Welcome returns the opening banner
func Welcome(cash game.Money) string {
	return BannerStyle.Render("WELCOME TO BLACKJACK!") + "\n\n" +
		fmt.Sprintf("Player starts the game with %s.\n", cash)
}

// Farewell returns the closing lines for a player leaving with final cash
func Farewell(starting, final game.Money) string {
	var b strings.Builder
	b.WriteString(Header("GAME OVER") + "\n\n")
	fmt.Fprintf(&b, "You leave the table with %s.\n", final)
	switch net := final - starting; {
	case net < 0:
		fmt.Fprintf(&b, "You have lost %s.\n", -net)
	case net > 0:
		fmt.Fprintf(&b, "You have won %s.\n", net)
	default:
		b.WriteString("You haven't won or lost anything.\n")
	}
	b.WriteString("\nThank you for playing!\n")
	return b.String()
}
