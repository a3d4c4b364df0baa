package tui

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/session"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newTestUI returns a test-mode TUI with the given answers queued
func newTestUI(t *testing.T, answers ...string) *TUI {
	t.Helper()
	ui := NewTestTUI(quietLogger())
	for _, a := range answers {
		parts := strings.Fields(a)
		var action string
		var args []string
		if len(parts) > 0 {
			action, args = parts[0], parts[1:]
		}
		require.NoError(t, ui.Model().InjectAction(action, args))
	}
	return ui
}

func capturedText(ui *TUI) string {
	return strings.Join(ui.Model().GetCapturedLog(), "\n")
}

func TestModelCreation(t *testing.T) {
	t.Parallel()

	model := NewModel(quietLogger())
	assert.False(t, model.IsTestMode())
	assert.Nil(t, model.GetCapturedLog())
	assert.Error(t, model.InjectAction("hit", nil))

	testModel := NewModelWithOptions(quietLogger(), true)
	assert.True(t, testModel.IsTestMode())
	assert.Empty(t, testModel.GetCapturedLog())
}

func TestModelEnterDeliversInput(t *testing.T) {
	t.Parallel()

	model := NewModel(quietLogger())
	model.actionInput.SetValue("Double Down")
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	action, args, ok, err := model.WaitForAction()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "double", action)
	assert.Equal(t, []string{"down"}, args)
	assert.Empty(t, model.actionInput.Value())
}

func TestModelCtrlCReleasesWaiters(t *testing.T) {
	t.Parallel()

	model := NewModel(quietLogger())
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)

	for range 2 {
		_, _, ok, err := model.WaitForAction()
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Empty(t, model.View())
}

func TestModelTabTogglesFocus(t *testing.T) {
	t.Parallel()

	model := NewModel(quietLogger())
	assert.Equal(t, 1, model.focusedPane)

	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, model.focusedPane)

	// enter is ignored while the log has focus
	model.actionInput.SetValue("hit")
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	select {
	case r := <-model.actionResult:
		t.Fatalf("unexpected action %q", r.Action)
	default:
	}

	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, model.focusedPane)
}

func TestModelView(t *testing.T) {
	t.Parallel()

	model := NewModel(quietLogger())
	assert.Equal(t, "Loading...", model.View())

	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model.Update(statusMsg{cash: game.Dollars(90), bet: game.Dollars(10), round: 3})
	model.Update(promptMsg{text: "Hit or stand?", placeholder: "hit, stand"})
	model.Update(logMsg{lines: []string{"You have 19, dealer has 17."}})

	view := model.View()
	assert.Contains(t, view, "Cash: $90.00")
	assert.Contains(t, view, "Bet:  $10.00")
	assert.Contains(t, view, "Round 3")
	assert.Contains(t, view, "Hit or stand?")
	assert.Contains(t, view, "You have 19, dealer has 17.")
	assert.Equal(t, "Hit or stand?", model.Prompt())
}

func TestLogMessages(t *testing.T) {
	t.Parallel()

	model := NewModelWithOptions(quietLogger(), true)
	model.Update(logMsg{lines: []string{"one", "two"}})
	model.Update(logMsg{lines: []string{"three"}, clear: true})

	assert.Equal(t, []string{"three"}, model.gameLog)
	assert.Equal(t, []string{"one", "two", "three"}, model.GetCapturedLog())
}

func TestAskBet(t *testing.T) {
	t.Parallel()

	ui := newTestUI(t, "-5", "2.5", "500", "25")
	bet, err := ui.AskBet(game.Dollars(100))
	require.NoError(t, err)
	assert.Equal(t, game.Dollars(25), bet)

	cash, current, round := ui.Model().Status()
	assert.Equal(t, game.Dollars(100), cash)
	assert.Equal(t, game.Dollars(25), current)
	assert.Equal(t, 1, round)
	assert.Contains(t, capturedText(ui), "PLACE YOUR BET")
	assert.Contains(t, capturedText(ui), "You have $100.00.")
	assert.Equal(t, "You can't bet more than you have. Please enter valid bet (0 to leave table)", ui.Model().Prompt())
}

func TestAskBetQuit(t *testing.T) {
	t.Parallel()

	ui := newTestUI(t, "quit")
	_, err := ui.AskBet(game.Dollars(100))
	assert.ErrorIs(t, err, session.ErrQuit)
}

func TestAskYesNo(t *testing.T) {
	t.Parallel()

	ui := newTestUI(t, "maybe", "yes")
	answer, err := ui.AskYesNo(game.Offer{Kind: game.OfferInsurance, Amount: game.Dollars(5)})
	require.NoError(t, err)
	assert.True(t, answer)
	assert.Contains(t, capturedText(ui), "DO YOU WANT INSURANCE?")
	assert.Equal(t, "Invalid input. Do you want insurance for $5.00? (y/n)", ui.Model().Prompt())

	ui = newTestUI(t, "n")
	answer, err = ui.AskYesNo(game.Offer{Kind: game.OfferSplit, Amount: game.Dollars(10)})
	require.NoError(t, err)
	assert.False(t, answer)
	assert.Contains(t, capturedText(ui), "DO YOU WANT TO SPLIT?")
}

func TestAskChoice(t *testing.T) {
	t.Parallel()

	ui := newTestUI(t, "double", "stand")
	choice, err := ui.AskChoice(game.ChoiceRequest{Allowed: game.AllowedChoices(3)})
	require.NoError(t, err)
	assert.Equal(t, game.Stand, choice)
	assert.Equal(t, "Invalid input. Hit or stand?", ui.Model().Prompt())

	ui = newTestUI(t, "sur")
	choice, err = ui.AskChoice(game.ChoiceRequest{Allowed: game.AllowedChoices(2)})
	require.NoError(t, err)
	assert.Equal(t, game.Surrender, choice)
}

func TestFullSession(t *testing.T) {
	t.Parallel()

	// read the rules, bet 10, stand on 19 against 17, leave, dismiss
	ui := newTestUI(t, "y", "10", "stand", "0", "")
	engine := game.NewEngine(game.DefaultRules(), ui,
		game.WithPresenter(ui),
		game.WithDeckSource(game.StackedDecks("10d 9c 10s 7h")))

	summary, err := session.New(engine, ui, ui).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.Dollars(110), summary.FinalCash)

	text := capturedText(ui)
	for _, want := range []string{
		"Good luck!",
		"PLACE YOUR BET",
		"YOUR HAND: 19",
		"You have 19, dealer has 17.",
		"You won $10.00 this round.",
		"GAME OVER",
		"You have won $10.00.",
	} {
		assert.Contains(t, text, want)
	}

	cash, _, round := ui.Model().Status()
	assert.Equal(t, game.Dollars(110), cash)
	assert.Equal(t, 1, round)
}

func TestRunWithoutProgram(t *testing.T) {
	t.Parallel()

	ui := NewTestTUI(quietLogger())
	assert.Error(t, ui.Run())
}
