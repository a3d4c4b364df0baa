// Package statistics accumulates per-round results of simulated blackjack
// play, in units of the base bet.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult represents the outcome of a single round
type RoundResult struct {
	Net         float64 // Net result in base bets (e.g. 1.5 for a blackjack)
	Blackjack   bool    // Player was dealt a natural
	Split       bool
	Doubled     bool // At least one hand doubled
	Surrendered bool // At least one hand surrendered
	Insured     bool
}

// Statistics tracks simulation statistics
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Store all values for median/percentile calculation

	Wins        int
	Losses      int
	Pushes      int
	Blackjacks  int
	Splits      int
	Doubles     int
	Surrenders  int
	Insurances  int
	BiggestWin  float64
	BiggestLoss float64
}

// Mean returns the expected return per round in base bets
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	net := result.Net
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	switch {
	case net > 0:
		s.Wins++
		s.BiggestWin = max(s.BiggestWin, net)
	case net < 0:
		s.Losses++
		s.BiggestLoss = min(s.BiggestLoss, net)
	default:
		s.Pushes++
	}

	if result.Blackjack {
		s.Blackjacks++
	}
	if result.Split {
		s.Splits++
	}
	if result.Doubled {
		s.Doubles++
	}
	if result.Surrendered {
		s.Surrenders++
	}
	if result.Insured {
		s.Insurances++
	}
}

// Merge folds other into s. Workers each keep their own Statistics and the
// totals are merged once they finish.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Splits += other.Splits
	s.Doubles += other.Doubles
	s.Surrenders += other.Surrenders
	s.Insurances += other.Insurances
	s.BiggestWin = max(s.BiggestWin, other.BiggestWin)
	s.BiggestLoss = min(s.BiggestLoss, other.BiggestLoss)
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Rate returns count as a fraction of all rounds
func (s *Statistics) Rate(count int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(count) / float64(s.Rounds)
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}

	if total := s.Wins + s.Losses + s.Pushes; total != s.Rounds {
		return fmt.Errorf("wins+losses+pushes (%d) does not match rounds count (%d)", total, s.Rounds)
	}

	for name, count := range map[string]int{
		"blackjacks": s.Blackjacks,
		"splits":     s.Splits,
		"doubles":    s.Doubles,
		"surrenders": s.Surrenders,
		"insurances": s.Insurances,
	} {
		if count > s.Rounds {
			return fmt.Errorf("%s (%d) exceeds rounds count (%d)", name, count, s.Rounds)
		}
	}

	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	if math.Abs(sum-s.SumNet) > 1e-6 {
		return fmt.Errorf("ledger mismatch: sum of values %.6f, SumNet %.6f", sum, s.SumNet)
	}

	return nil
}
