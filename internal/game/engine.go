package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// ErrInvalidBet is returned when a round is started with a bet that is not
// positive or exceeds the player's cash.
var ErrInvalidBet = errors.New("invalid bet")

// Engine plays blackjack rounds. It owns each round's deck and hands for the
// lifetime of the round and keeps no state between rounds.
type Engine struct {
	rules     Rules
	decisions DecisionProvider
	presenter Presenter
	logger    *log.Logger
	newDeck   func() *deck.Deck
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithPresenter sets the presenter notified during rounds.
func WithPresenter(p Presenter) EngineOption {
	return func(e *Engine) {
		e.presenter = p
	}
}

// WithLogger sets the logger. Default discards all output.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRNG shuffles every round's fresh deck with rng.
func WithRNG(rng *rand.Rand) EngineOption {
	return func(e *Engine) {
		e.newDeck = func() *deck.Deck {
			return deck.NewShuffledDeck(rng)
		}
	}
}

// WithDeckSource supplies each round's deck, typically a stacked deck.
// This overrides WithRNG.
func WithDeckSource(source func() *deck.Deck) EngineOption {
	return func(e *Engine) {
		e.newDeck = source
	}
}

// NewEngine creates an engine playing with rules and asking decisions of
// decisions. Without WithRNG or WithDeckSource the decks are time-seeded.
func NewEngine(rules Rules, decisions DecisionProvider, opts ...EngineOption) *Engine {
	if decisions == nil {
		panic("decision provider is required")
	}

	e := &Engine{
		rules:     rules,
		decisions: decisions,
		presenter: NopPresenter{},
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.newDeck == nil {
		rng := randutil.New(randutil.ResolveSeed(0))
		e.newDeck = func() *deck.Deck {
			return deck.NewShuffledDeck(rng)
		}
	}
	e.logger = e.logger.WithPrefix("engine")
	return e
}

// Rules returns the engine's table constants
func (e *Engine) Rules() Rules {
	return e.rules
}

// RoundResult is everything that happened in a finished round
type RoundResult struct {
	Bet         Money
	Cash        Money
	Insurance   Money // insurance stake paid, zero if declined or not offered
	Split       bool
	Dealer      Hand
	Plays       []HandPlay
	Settlements []Settlement
	Delta       Money
}

// Insured reports whether the player bought insurance
func (r *RoundResult) Insured() bool {
	return r.Insurance > 0
}

// PlayRound plays one round and returns the net change to the player's cash.
func (e *Engine) PlayRound(bet, cash Money) (Money, error) {
	result, err := e.Play(bet, cash)
	if err != nil {
		return 0, err
	}
	return result.Delta, nil
}

// Play plays one round and returns its full result. Any error aborts the
// round; no partial result is returned.
func (e *Engine) Play(bet, cash Money) (*RoundResult, error) {
	if bet <= 0 || bet > cash {
		return nil, fmt.Errorf("%w: bet %s with cash %s", ErrInvalidBet, bet, cash)
	}

	r := &round{
		rules:     e.rules,
		decisions: e.decisions,
		presenter: e.presenter,
		logger:    e.logger,
		deck:      e.newDeck(),
		bet:       bet,
		cash:      cash,
	}

	e.logger.Debug("Starting round", "bet", bet, "cash", cash)
	result, err := r.play()
	if err != nil {
		e.logger.Error("Round aborted", "error", err)
		return nil, err
	}

	e.logger.Debug("Round settled", "bet", bet, "delta", result.Delta,
		"split", result.Split, "insured", result.Insured())
	return result, nil
}
