// Package session runs a player's visit to the table: it asks for bets,
// plays rounds on the engine and keeps the cash balance and round history.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/sessionid"
)

// ErrQuit is returned by front ends when the player leaves the table, for
// example when input reaches EOF.
var ErrQuit = errors.New("player quit")

// BetProvider asks the player for the next bet. A zero bet leaves the table.
type BetProvider interface {
	AskBet(cash game.Money) (game.Money, error)
}

// Greeter opens and closes the session
type Greeter interface {
	Welcome(rules game.Rules, cash game.Money) error
	Farewell(summary Summary)
}

// RoundPlayer plays one round and returns the cash delta. *game.Engine
// satisfies it.
type RoundPlayer interface {
	PlayRound(bet, cash game.Money) (game.Money, error)
	Rules() game.Rules
}

// RoundRecord is one finished round in the session history
type RoundRecord struct {
	Number    int
	Bet       game.Money
	Delta     game.Money
	CashAfter game.Money
	PlayedAt  time.Time
}

// Summary describes a finished session
type Summary struct {
	ID           string
	StartingCash game.Money
	FinalCash    game.Money
	Rounds       int
	Net          game.Money
	Duration     time.Duration
}

// Session is one player's visit to the table
type Session struct {
	id      string
	engine  RoundPlayer
	bets    BetProvider
	greeter Greeter
	clock   quartz.Clock
	logger  *log.Logger

	cash    game.Money
	history []RoundRecord
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used for round timestamps
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithID sets the session ID. By default one is generated.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// WithStartingCash overrides the starting cash from the engine's rules
func WithStartingCash(cash game.Money) Option {
	return func(s *Session) {
		s.cash = cash
	}
}

// New creates a session playing on engine. The player starts with the
// rules' starting cash.
func New(engine RoundPlayer, bets BetProvider, greeter Greeter, opts ...Option) *Session {
	s := &Session{
		engine:  engine,
		bets:    bets,
		greeter: greeter,
		clock:   quartz.NewReal(),
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
		cash:    engine.Rules().StartingCash,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = sessionid.New(s.clock, nil).Generate()
	}
	s.logger = s.logger.WithPrefix("session").With("id", s.id)
	return s
}

// ID returns the session ID
func (s *Session) ID() string {
	return s.id
}

// Cash returns the player's current cash
func (s *Session) Cash() game.Money {
	return s.cash
}

// History returns a copy of the finished rounds
func (s *Session) History() []RoundRecord {
	out := make([]RoundRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Run plays rounds until the player leaves, runs out of cash or ctx is
// cancelled. Cancellation is only observed between rounds. The farewell is
// always shown, even when Run returns an error.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	start := s.clock.Now()
	startingCash := s.cash
	s.logger.Info("Session started", "cash", s.cash)

	summarize := func() Summary {
		summary := Summary{
			ID:           s.id,
			StartingCash: startingCash,
			FinalCash:    s.cash,
			Rounds:       len(s.history),
			Net:          s.cash - startingCash,
			Duration:     s.clock.Since(start),
		}
		s.greeter.Farewell(summary)
		s.logger.Info("Session finished", "rounds", summary.Rounds, "net", summary.Net)
		return summary
	}

	if err := s.greeter.Welcome(s.engine.Rules(), s.cash); err != nil {
		if errors.Is(err, ErrQuit) {
			return summarize(), nil
		}
		return summarize(), fmt.Errorf("welcome: %w", err)
	}

	for s.cash > 0 {
		if err := ctx.Err(); err != nil {
			return summarize(), err
		}

		bet, err := s.bets.AskBet(s.cash)
		if errors.Is(err, ErrQuit) {
			break
		}
		if err != nil {
			return summarize(), fmt.Errorf("ask bet: %w", err)
		}
		if bet == 0 {
			s.logger.Debug("Player left the table")
			break
		}
		if err := ValidateBet(bet, s.cash); err != nil {
			return summarize(), err
		}

		delta, err := s.engine.PlayRound(bet, s.cash)
		if errors.Is(err, ErrQuit) {
			s.logger.Warn("Player quit mid-round, round abandoned", "bet", bet)
			break
		}
		if err != nil {
			return summarize(), fmt.Errorf("round %d: %w", len(s.history)+1, err)
		}

		s.cash += delta
		s.history = append(s.history, RoundRecord{
			Number:    len(s.history) + 1,
			Bet:       bet,
			Delta:     delta,
			CashAfter: s.cash,
			PlayedAt:  s.clock.Now(),
		})
		s.logger.Debug("Round recorded", "round", len(s.history), "delta", delta, "cash", s.cash)
	}

	return summarize(), nil
}
