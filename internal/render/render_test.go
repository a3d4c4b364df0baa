package render

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func hand(cards string) game.Hand {
	return game.NewHand(deck.MustParseCards(cards)...)
}

func TestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"PLACE YOUR BET", "------------ PLACE YOUR BET ------------"},
		{"FIRST HAND", "-------------- FIRST HAND --------------"},
		{"SECOND HAND", "-------------- SECOND HAND -------------"},
		{"DEALER'S DRAW", "------------- DEALER'S DRAW ------------"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Header(tt.title)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, ruleWidth)
		})
	}
}

func TestCards(t *testing.T) {
	t.Parallel()

	got := Cards(deck.MustParseCards("As 10h"), false)
	want := strings.Join([]string{
		"+-----+ +-----+",
		"|A    | |10   |",
		"|     | |     |",
		"|  ♠  | |  ♥  |",
		"|     | |     |",
		"|    A| |   10|",
		"+-----+ +-----+",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCardsHoleHidden(t *testing.T) {
	t.Parallel()

	got := Cards(deck.MustParseCards("Kd 7c 2s"), true)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, cardRows)

	assert.Equal(t, "|K    | |xxxxx| |xxxxx|", lines[1])
	assert.Equal(t, "|  ♦  | |xxxxx| |xxxxx|", lines[3])
	assert.NotContains(t, got, "7")
	assert.Empty(t, Cards(nil, false))
}

func TestInline(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[A♠ 10♥]", Inline(deck.MustParseCards("As 10h")))
}

func TestTable(t *testing.T) {
	t.Parallel()

	t.Run("dealer hidden", func(t *testing.T) {
		out := Table(game.TableView{
			PlayerHands:  []game.Hand{hand("10d 9c")},
			Dealer:       hand("As 7h"),
			DealerHidden: true,
			Active:       0,
		})
		assert.Contains(t, out, "YOUR HAND: 19")
		assert.Contains(t, out, "DEALER'S HAND:\n")
		assert.NotContains(t, out, "DEALER'S HAND: 18")
		assert.Contains(t, out, "|xxxxx|")
	})

	t.Run("split hands revealed", func(t *testing.T) {
		out := Table(game.TableView{
			PlayerHands: []game.Hand{hand("8c 3s"), hand("8d 10c")},
			Dealer:      hand("10s 7h"),
			Split:       true,
			Active:      1,
		})
		assert.Contains(t, out, "YOUR FIRST HAND: 11\n")
		assert.Contains(t, out, "YOUR SECOND HAND: 18 <")
		assert.Contains(t, out, "DEALER'S HAND: 17")
		assert.NotContains(t, out, "xxxxx")
	})
}

func TestSettlementLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    game.Settlement
		want []string
	}{
		{
			name: "insured double natural",
			s:    game.Settlement{Outcome: game.OutcomeBothBlackjack, Insured: true, Amount: game.Dollars(15)},
			want: []string{"Both you and dealer have blackjack.", "You have insurance, so you win $15.00."},
		},
		{
			name: "double natural",
			s:    game.Settlement{Outcome: game.OutcomeBothBlackjack},
			want: []string{"Both you and dealer have blackjack.", "It's a push."},
		},
		{
			name: "insured dealer natural",
			s:    game.Settlement{Outcome: game.OutcomeDealerBlackjack, Insured: true},
			want: []string{"Dealer has blackjack.", "You have insurance, so you come out even."},
		},
		{
			name: "dealer natural",
			s:    game.Settlement{Outcome: game.OutcomeDealerBlackjack, Amount: game.Dollars(10)},
			want: []string{"Dealer has blackjack.", "You lose $10.00."},
		},
		{
			name: "blackjack",
			s:    game.Settlement{Outcome: game.OutcomeBlackjack, Amount: game.Dollars(15)},
			want: []string{"You have blackjack.", "You win $15.00."},
		},
		{
			name: "bust",
			s:    game.Settlement{Outcome: game.OutcomeBust, PlayerValue: 25, Amount: game.Dollars(10)},
			want: []string{"You have 25.", "You busted. You lose $10.00."},
		},
		{
			name: "dealer bust",
			s:    game.Settlement{Outcome: game.OutcomeDealerBust, PlayerValue: 18, DealerValue: 24, Amount: game.Dollars(10)},
			want: []string{"You have 18, dealer has 24.", "Dealer busted. You win $10.00."},
		},
		{
			name: "lose",
			s:    game.Settlement{Outcome: game.OutcomeLose, PlayerValue: 17, DealerValue: 19, Amount: game.Dollars(10)},
			want: []string{"You have 17, dealer has 19.", "Dealer wins. You lose $10.00."},
		},
		{
			name: "win",
			s:    game.Settlement{Outcome: game.OutcomeWin, PlayerValue: 20, DealerValue: 19, Amount: game.Dollars(20)},
			want: []string{"You have 20, dealer has 19.", "You win $20.00."},
		},
		{
			name: "push",
			s:    game.Settlement{Outcome: game.OutcomePush, PlayerValue: 19, DealerValue: 19},
			want: []string{"You have 19, dealer has 19.", "It's a push."},
		},
		{
			name: "surrender",
			s:    game.Settlement{Outcome: game.OutcomeSurrender, Amount: game.Dollars(5)},
			want: []string{"You surrendered. You lose $5.00."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Settlement(tt.s))
		})
	}
}

func TestEvent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "You doubled your bet to $20.00.", Event(game.Event{Kind: game.EventDoubled, Amount: game.Dollars(20)}))
	assert.Equal(t, Header("PLAYER CHOICE"), Event(game.Event{Kind: game.EventPlayerTurn}))
	assert.Equal(t, Header("SECOND HAND"), Event(game.Event{Kind: game.EventPlayerTurn, Split: true, Hand: 1}))
	assert.Equal(t, "You lost $5.00 this round.", Event(game.Event{Kind: game.EventRoundSettled, Amount: game.Dollars(-5)}))
	assert.Equal(t, "You broke even this round.", Event(game.Event{Kind: game.EventRoundSettled}))

	settled := Event(game.Event{
		Kind:       game.EventHandSettled,
		Split:      true,
		Hand:       1,
		Settlement: game.Settlement{Outcome: game.OutcomeWin, PlayerValue: 20, DealerValue: 17, Amount: game.Dollars(10)},
	})
	assert.Equal(t, Header("SECOND HAND")+"\nYou have 20, dealer has 17.\nYou win $10.00.", settled)
	assert.True(t, strings.HasPrefix(Event(game.Event{Kind: game.EventHandSettled}), Header("RESULTS")))
}

func TestWelcomeAndFarewell(t *testing.T) {
	t.Parallel()

	welcome := Welcome(game.Dollars(100))
	assert.Contains(t, welcome, "WELCOME TO BLACKJACK!")
	assert.Contains(t, welcome, "Player starts the game with $100.00.")

	assert.Contains(t, Farewell(game.Dollars(100), game.Dollars(85)), "You have lost $15.00.")
	assert.Contains(t, Farewell(game.Dollars(100), game.Dollars(117)+50), "You have won $17.50.")
	assert.Contains(t, Farewell(game.Dollars(100), game.Dollars(100)), "You haven't won or lost anything.")
	assert.Contains(t, Farewell(game.Dollars(100), 0), "You leave the table with $0.00.")
}
