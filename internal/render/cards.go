// Package render draws the blackjack table as text: pseudographic cards,
// labelled hands and the result lines of a round.
package render

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

const (
	cardWidth = 5 // inside the frame
	cardEdge  = "+-----+"
	cardBack  = "|xxxxx|"
	cardRows  = 7
)

// Card returns the rows of a single card, face up or face down
func Card(c deck.Card, faceDown bool) []string {
	if faceDown {
		rows := make([]string, cardRows)
		rows[0], rows[cardRows-1] = cardEdge, cardEdge
		for i := 1; i < cardRows-1; i++ {
			rows[i] = HiddenCardStyle.Render(cardBack)
		}
		return rows
	}

	style := BlackCardStyle
	if c.IsRed() {
		style = RedCardStyle
	}
	rank := c.Rank.String()
	pad := strings.Repeat(" ", cardWidth-len(rank))

	return []string{
		cardEdge,
		"|" + style.Render(rank) + pad + "|",
		"|     |",
		"|  " + style.Render(c.Suit.String()) + "  |",
		"|     |",
		"|" + pad + style.Render(rank) + "|",
		cardEdge,
	}
}

// Cards lays cards out side by side. With holeHidden set every card after the
// first is drawn face down.
func Cards(cards []deck.Card, holeHidden bool) string {
	if len(cards) == 0 {
		return ""
	}

	rows := make([][]string, cardRows)
	for i, c := range cards {
		for r, line := range Card(c, holeHidden && i > 0) {
			rows[r] = append(rows[r], line)
		}
	}

	lines := make([]string, cardRows)
	for r := range rows {
		lines[r] = strings.Join(rows[r], " ")
	}
	return strings.Join(lines, "\n")
}

// Inline formats cards on one line, e.g. "[A♠ 10♥]"
func Inline(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = RedCardStyle.Render(c.String())
		} else {
			parts[i] = BlackCardStyle.Render(c.String())
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
