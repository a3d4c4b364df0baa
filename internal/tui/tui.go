// Package tui is the full-screen front end. The game loop runs on its own
// goroutine and blocks on Model.WaitForAction while Bubble Tea owns the
// terminal.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/render"
	"github.com/lox/blackjack/internal/session"
)

// TUI implements game.DecisionProvider, game.Presenter, session.BetProvider
// and session.Greeter on top of a Bubble Tea program.
type TUI struct {
	model   *Model
	program *tea.Program // nil in test mode
	logger  *log.Logger

	round int
}

// New creates a TUI that takes over the terminal once started
func New(logger *log.Logger) *TUI {
	model := NewModel(logger)
	return &TUI{
		model:   model,
		program: tea.NewProgram(model, tea.WithAltScreen()),
		logger:  logger.WithPrefix("tui"),
	}
}

// NewTestTUI creates a TUI without a program. Messages are applied to the
// model directly and answers come from Model.InjectAction.
func NewTestTUI(logger *log.Logger) *TUI {
	return &TUI{
		model:  NewModelWithOptions(logger, true),
		logger: logger.WithPrefix("tui"),
	}
}

// Model returns the underlying Bubble Tea model
func (t *TUI) Model() *Model {
	return t.model
}

// Run starts the program and blocks until it exits
func (t *TUI) Run() error {
	if t.program == nil {
		return errors.New("tui: no program in test mode")
	}
	if _, err := t.program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Close asks the program to exit
func (t *TUI) Close() {
	t.model.SendQuitSignal()
}

// send delivers msg to the model on the program goroutine
func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		t.model.Update(msg)
		return
	}
	t.program.Send(msg)
}

func (t *TUI) log(lines ...string) {
	var split []string
	for _, l := range lines {
		split = append(split, strings.Split(l, "\n")...)
	}
	t.send(logMsg{lines: split})
}

// ask shows prompt and waits for the player's next line
func (t *TUI) ask(prompt, placeholder string) (string, error) {
	t.send(promptMsg{text: prompt, placeholder: placeholder})

	action, args, ok, err := t.model.WaitForAction()
	if err != nil {
		return "", err
	}
	if !ok || action == "quit" || action == "q" {
		return "", session.ErrQuit
	}
	return strings.TrimSpace(strings.Join(append([]string{action}, args...), " ")), nil
}

func (t *TUI) askYesNo(prompt, retry string) (bool, error) {
	for {
		input, err := t.ask(prompt, "y/n")
		if err != nil {
			return false, err
		}
		if answer, ok := session.ParseYesNo(input); ok {
			return answer, nil
		}
		prompt = retry
	}
}

// Welcome shows the banner and offers the rules
func (t *TUI) Welcome(rules game.Rules, cash game.Money) error {
	t.send(statusMsg{cash: cash})
	t.log(render.Welcome(cash))

	read, err := t.askYesNo("Do you want to read the game rules? (y/n)",
		"Invalid input. Do you want to read the game rules? (y/n)")
	if err != nil {
		return err
	}
	if read {
		t.log(session.RulesText(rules))
	}
	t.log("Good luck!", "")
	return nil
}

// Farewell shows the result and waits for a final keypress
func (t *TUI) Farewell(summary session.Summary) {
	t.send(statusMsg{cash: summary.FinalCash, round: summary.Rounds})
	t.log(render.Farewell(summary.StartingCash, summary.FinalCash))

	if _, err := t.ask("Press Enter to leave the table", ""); err != nil {
		t.logger.Debug("Farewell interrupted", "error", err)
	}
}

// AskBet asks for a bet until a valid one is entered
func (t *TUI) AskBet(cash game.Money) (game.Money, error) {
	t.send(statusMsg{cash: cash, round: t.round})
	t.log(render.Header("PLACE YOUR BET"), fmt.Sprintf("You have %s.", cash), "")

	prompt := "Please enter your bet (0 to leave table)"
	for {
		input, err := t.ask(prompt, "amount")
		if err != nil {
			return 0, err
		}
		bet, err := session.ParseBet(input, cash)
		if err == nil {
			if bet > 0 {
				t.round++
				t.send(statusMsg{cash: cash, bet: bet, round: t.round})
			}
			return bet, nil
		}

		var betErr *session.BetError
		if !errors.As(err, &betErr) {
			return 0, err
		}
		t.logger.Debug("Rejected bet", "input", input, "reason", betErr.Reason)
		prompt = betErr.Reason + ". Please enter valid bet (0 to leave table)"
	}
}

// AskYesNo implements game.DecisionProvider
func (t *TUI) AskYesNo(offer game.Offer) (bool, error) {
	var title, prompt, retry string
	switch offer.Kind {
	case game.OfferInsurance:
		title = "DO YOU WANT INSURANCE?"
		prompt = fmt.Sprintf("Insurance against dealer blackjack for %s? (y/n)", offer.Amount)
		retry = fmt.Sprintf("Invalid input. Do you want insurance for %s? (y/n)", offer.Amount)
	case game.OfferSplit:
		title = "DO YOU WANT TO SPLIT?"
		prompt = fmt.Sprintf("Split your hand into two for an additional %s? (y/n)", offer.Amount)
		retry = fmt.Sprintf("Invalid input. Do you want to split your hand for %s? (y/n)", offer.Amount)
	default:
		return false, fmt.Errorf("unknown offer %s", offer.Kind)
	}

	t.log(render.Header(title))
	return t.askYesNo(prompt, retry)
}

// AskChoice implements game.DecisionProvider
func (t *TUI) AskChoice(req game.ChoiceRequest) (game.Choice, error) {
	question := "Hit or stand?"
	placeholder := "hit, stand"
	if req.Allows(game.Double) {
		question = "Hit, stand, double or surrender?"
		placeholder = "hit, stand, double, surrender"
	}

	prompt := question
	for {
		input, err := t.ask(prompt, placeholder)
		if err != nil {
			return 0, err
		}
		if choice, ok := game.ParseChoice(input); ok && req.Allows(choice) {
			return choice, nil
		}
		prompt = "Invalid input. " + question
	}
}

// Show implements game.Presenter
func (t *TUI) Show(view game.TableView) {
	t.log(render.Table(view))
}

// Announce implements game.Presenter
func (t *TUI) Announce(event game.Event) {
	if text := render.Event(event); text != "" {
		t.log(text, "")
	}
}
