// Package console is the line-oriented front end. It reads answers from an
// io.Reader and writes the table to an io.Writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/render"
	"github.com/lox/blackjack/internal/session"
)

// Console implements game.DecisionProvider, game.Presenter,
// session.BetProvider and session.Greeter.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

// New creates a console reading from in and writing to out
func New(in io.Reader, out io.Writer, logger *log.Logger) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.WithPrefix("console"),
	}
}

// Welcome shows the banner and offers the rules
func (c *Console) Welcome(rules game.Rules, cash game.Money) error {
	c.println(render.Welcome(cash))

	read, err := c.askYesNo("Do you want to read the game rules? (y/n): ",
		"Invalid input. Do you want to read the game rules? (y/n): ")
	if err != nil {
		return err
	}
	c.println("")
	if read {
		c.println(session.RulesText(rules))
	}
	c.println("Good luck!\n")
	return nil
}

// Farewell shows the final cash and the net result
func (c *Console) Farewell(summary session.Summary) {
	c.println(render.Farewell(summary.StartingCash, summary.FinalCash))
}

// AskBet asks for a bet until a valid one is entered
func (c *Console) AskBet(cash game.Money) (game.Money, error) {
	c.println(render.Header("PLACE YOUR BET") + "\n")
	c.println(fmt.Sprintf("You have %s.", cash))

	prompt := "Please enter your bet (0 to leave table): "
	for {
		input, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		bet, err := session.ParseBet(input, cash)
		if err == nil {
			c.println("")
			return bet, nil
		}

		var betErr *session.BetError
		if !errors.As(err, &betErr) {
			return 0, err
		}
		c.logger.Debug("Rejected bet", "input", input, "reason", betErr.Reason)
		prompt = betErr.Reason + ". Please enter valid bet (0 to leave table): "
	}
}

// AskYesNo implements game.DecisionProvider
func (c *Console) AskYesNo(offer game.Offer) (bool, error) {
	var title, prompt, retry string
	switch offer.Kind {
	case game.OfferInsurance:
		title = "DO YOU WANT INSURANCE?"
		prompt = fmt.Sprintf("Do you want insurance against the dealer having blackjack for %s? (y/n): ", offer.Amount)
		retry = fmt.Sprintf("Invalid input. Do you want insurance for %s? (y/n): ", offer.Amount)
	case game.OfferSplit:
		title = "DO YOU WANT TO SPLIT?"
		prompt = fmt.Sprintf("Do you want to split your hand into two for an additional %s? (y/n): ", offer.Amount)
		retry = fmt.Sprintf("Invalid input. Do you want to split your hand for %s? (y/n): ", offer.Amount)
	default:
		return false, fmt.Errorf("unknown offer %s", offer.Kind)
	}

	c.println(render.Header(title) + "\n")
	answer, err := c.askYesNo(prompt, retry)
	if err != nil {
		return false, err
	}
	c.println("")
	return answer, nil
}

// AskChoice implements game.DecisionProvider
func (c *Console) AskChoice(req game.ChoiceRequest) (game.Choice, error) {
	question := "Do you want to hit or stand? "
	if req.Allows(game.Double) {
		question = "Do you want to hit, stand, double or surrender? "
	}

	prompt := question
	for {
		input, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if choice, ok := game.ParseChoice(input); ok && req.Allows(choice) {
			c.println("")
			return choice, nil
		}
		prompt = "Invalid input. " + question
	}
}

// Show implements game.Presenter
func (c *Console) Show(view game.TableView) {
	c.println(render.Table(view))
}

// Announce implements game.Presenter
func (c *Console) Announce(event game.Event) {
	if text := render.Event(event); text != "" {
		c.println(text + "\n")
	}
}

func (c *Console) askYesNo(prompt, retry string) (bool, error) {
	for {
		input, err := c.readLine(prompt)
		if err != nil {
			return false, err
		}
		if answer, ok := session.ParseYesNo(input); ok {
			return answer, nil
		}
		prompt = retry
	}
}

// readLine prints prompt and reads one line. EOF means the player left.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(c.out)
		return "", session.ErrQuit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
