// Package simulator plays many independent blackjack rounds with the basic
// strategy player and aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
	"golang.org/x/sync/errgroup"
)

// cashMultiple is the player's cash for every simulated round, in bets, so
// that insurance, splits and doubles are always affordable.
const cashMultiple = 10

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int // defaults to the number of CPUs
	Bet     game.Money
	Seed    int64 // zero picks a time-based seed
	Rules   game.Rules
	Logger  *log.Logger
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	logger := config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}
}

// Run plays the configured number of rounds across the workers. The same
// seed and worker count always produce the same statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}
	if s.config.Bet <= 0 {
		return nil, fmt.Errorf("%w: bet must be positive, got %s", game.ErrInvalidBet, s.config.Bet)
	}

	workers := min(s.config.Workers, s.config.Rounds)
	seed := randutil.ResolveSeed(s.config.Seed)
	seeds := randutil.DeriveSeeds(randutil.New(seed), workers)
	s.logger.Info("Starting simulation", "rounds", s.config.Rounds, "workers", workers, "seed", seed)

	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers
	results := make([]*statistics.Statistics, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		rounds := perWorker
		if w < remainder {
			rounds++ // Distribute remainder rounds
		}
		g.Go(func() error {
			stats, err := s.runWorker(ctx, w, seeds[w], rounds)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range results {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation finished", "rounds", total.Rounds, "mean", total.Mean())
	return total, nil
}

func (s *Simulator) runWorker(ctx context.Context, id int, seed int64, rounds int) (*statistics.Statistics, error) {
	engine := game.NewEngine(s.config.Rules, strategy.New(),
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(s.logger.With("worker", id)))

	bet := s.config.Bet
	cash := bet * cashMultiple
	stats := &statistics.Statistics{}

	for i := range rounds {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		result, err := engine.Play(bet, cash)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		stats.Add(Summarize(result))
	}
	return stats, nil
}

// Summarize converts a played round into a statistics sample measured in
// base bets.
func Summarize(result *game.RoundResult) statistics.RoundResult {
	r := statistics.RoundResult{
		Net:     result.Delta.Units(result.Bet),
		Split:   result.Split,
		Insured: result.Insured(),
	}
	for _, play := range result.Plays {
		switch play.Resolution {
		case game.ResolutionDouble:
			r.Doubled = true
		case game.ResolutionSurrender:
			r.Surrendered = true
		}
	}
	r.Blackjack = !result.Split && len(result.Plays) == 1 && result.Plays[0].Hand.IsNatural()
	return r
}

// PrintSummary writes a summary of simulation results to w
func PrintSummary(w io.Writer, stats *statistics.Statistics, bet game.Money) {
	low, high := stats.ConfidenceInterval95()
	pct := func(count int) float64 { return stats.Rate(count) * 100 }

	fmt.Fprintf(w, "\n=== FINAL RESULTS ===\n")
	fmt.Fprintf(w, "Rounds played: %d at %s per round\n", stats.Rounds, bet)

	fmt.Fprintf(w, "\n=== STATISTICAL RESULTS ===\n")
	fmt.Fprintf(w, "Mean: %+.4f bets/round (%+.2f%% house edge)\n", stats.Mean(), -stats.Mean()*100)
	fmt.Fprintf(w, "Std Dev: %.4f bets\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.4f bets\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%+.4f, %+.4f] bets/round\n", low, high)
	fmt.Fprintf(w, "Expected result per round: %s\n", game.Money(stats.Mean()*float64(bet)))

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	fmt.Fprintf(w, "Wins: %d (%.1f%%)\n", stats.Wins, pct(stats.Wins))
	fmt.Fprintf(w, "Losses: %d (%.1f%%)\n", stats.Losses, pct(stats.Losses))
	fmt.Fprintf(w, "Pushes: %d (%.1f%%)\n", stats.Pushes, pct(stats.Pushes))
	fmt.Fprintf(w, "Blackjacks: %d (%.2f%%)\n", stats.Blackjacks, pct(stats.Blackjacks))
	fmt.Fprintf(w, "Doubles: %d (%.2f%%)\n", stats.Doubles, pct(stats.Doubles))
	fmt.Fprintf(w, "Splits: %d (%.2f%%)\n", stats.Splits, pct(stats.Splits))
	fmt.Fprintf(w, "Surrenders: %d (%.2f%%)\n", stats.Surrenders, pct(stats.Surrenders))
	fmt.Fprintf(w, "Biggest win: %+.1f bets, biggest loss: %+.1f bets\n", stats.BiggestWin, stats.BiggestLoss)
}
