package main

import (
	"time"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/statistics"
)

type historyReport struct {
	Session      string       `json:"session"`
	StartingCash string       `json:"starting_cash"`
	FinalCash    string       `json:"final_cash"`
	Net          string       `json:"net"`
	Duration     string       `json:"duration"`
	Rounds       []roundEntry `json:"rounds"`
}

type roundEntry struct {
	Number    int       `json:"number"`
	Bet       string    `json:"bet"`
	Delta     string    `json:"delta"`
	CashAfter string    `json:"cash_after"`
	PlayedAt  time.Time `json:"played_at"`
}

// writeHistory saves a finished session's rounds as JSON
func writeHistory(filename string, summary session.Summary, history []session.RoundRecord) error {
	report := historyReport{
		Session:      summary.ID,
		StartingCash: summary.StartingCash.String(),
		FinalCash:    summary.FinalCash.String(),
		Net:          summary.Net.String(),
		Duration:     summary.Duration.Round(time.Second).String(),
		Rounds:       make([]roundEntry, 0, len(history)),
	}
	for _, r := range history {
		report.Rounds = append(report.Rounds, roundEntry{
			Number:    r.Number,
			Bet:       r.Bet.String(),
			Delta:     r.Delta.String(),
			CashAfter: r.CashAfter.String(),
			PlayedAt:  r.PlayedAt,
		})
	}
	return fileutil.WriteJSON(filename, report)
}

type statsReport struct {
	Seed       int64      `json:"seed"`
	Bet        string     `json:"bet"`
	Rounds     int        `json:"rounds"`
	Mean       float64    `json:"mean"`
	StdDev     float64    `json:"std_dev"`
	StdError   float64    `json:"std_error"`
	CI95       [2]float64 `json:"ci95"`
	Median     float64    `json:"median"`
	Wins       int        `json:"wins"`
	Losses     int        `json:"losses"`
	Pushes     int        `json:"pushes"`
	Blackjacks int        `json:"blackjacks"`
	Splits     int        `json:"splits"`
	Doubles    int        `json:"doubles"`
	Surrenders int        `json:"surrenders"`
}

// writeStats saves simulation statistics as JSON
func writeStats(filename string, seed int64, bet game.Money, stats *statistics.Statistics) error {
	low, high := stats.ConfidenceInterval95()
	return fileutil.WriteJSON(filename, statsReport{
		Seed:       seed,
		Bet:        bet.String(),
		Rounds:     stats.Rounds,
		Mean:       stats.Mean(),
		StdDev:     stats.StdDev(),
		StdError:   stats.StdError(),
		CI95:       [2]float64{low, high},
		Median:     stats.Median(),
		Wins:       stats.Wins,
		Losses:     stats.Losses,
		Pushes:     stats.Pushes,
		Blackjacks: stats.Blackjacks,
		Splits:     stats.Splits,
		Doubles:    stats.Doubles,
		Surrenders: stats.Surrenders,
	})
}
