package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/sessionid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedBets struct {
	bets  []game.Money
	asked []game.Money
	err   error
	onAsk func()
}

func (b *scriptedBets) AskBet(cash game.Money) (game.Money, error) {
	b.asked = append(b.asked, cash)
	if b.onAsk != nil {
		b.onAsk()
	}
	if len(b.bets) == 0 {
		return 0, b.err
	}
	bet := b.bets[0]
	b.bets = b.bets[1:]
	return bet, nil
}

type recordingGreeter struct {
	welcomeErr error
	welcomed   game.Money
	summaries  []Summary
}

func (g *recordingGreeter) Welcome(_ game.Rules, cash game.Money) error {
	g.welcomed = cash
	return g.welcomeErr
}

func (g *recordingGreeter) Farewell(summary Summary) {
	g.summaries = append(g.summaries, summary)
}

// fixedRounds returns canned deltas instead of dealing cards
type fixedRounds struct {
	deltas []game.Money
	err    error
	plays  int
}

func (f *fixedRounds) PlayRound(bet, cash game.Money) (game.Money, error) {
	f.plays++
	if f.err != nil {
		return 0, f.err
	}
	delta := f.deltas[0]
	f.deltas = f.deltas[1:]
	return delta, nil
}

func (f *fixedRounds) Rules() game.Rules {
	return game.DefaultRules()
}

func TestSessionPlaysUntilZeroBet(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	rounds := &fixedRounds{deltas: []game.Money{game.Dollars(10), game.Dollars(-25)}}
	bets := &scriptedBets{bets: []game.Money{game.Dollars(10), game.Dollars(25), 0}}
	bets.onAsk = func() { clock.Advance(time.Minute) }
	greeter := &recordingGreeter{}

	s := New(rounds, bets, greeter, WithClock(clock), WithID("table-1"))
	summary, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.Dollars(100), greeter.welcomed)
	assert.Equal(t, []game.Money{game.Dollars(100), game.Dollars(110), game.Dollars(85)}, bets.asked)
	assert.Equal(t, Summary{
		ID:           "table-1",
		StartingCash: game.Dollars(100),
		FinalCash:    game.Dollars(85),
		Rounds:       2,
		Net:          game.Dollars(-15),
		Duration:     3 * time.Minute,
	}, summary)
	require.Len(t, greeter.summaries, 1)
	assert.Equal(t, summary, greeter.summaries[0])

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Number)
	assert.Equal(t, game.Dollars(110), history[0].CashAfter)
	assert.Equal(t, 2, history[1].Number)
	assert.Equal(t, game.Dollars(-25), history[1].Delta)
	assert.True(t, history[1].PlayedAt.After(history[0].PlayedAt))
}

func TestSessionGeneratesID(t *testing.T) {
	t.Parallel()

	s := New(&fixedRounds{}, &scriptedBets{}, &recordingGreeter{}, WithClock(quartz.NewMock(t)))
	require.NoError(t, sessionid.Validate(s.ID()))
	assert.NotEqual(t, s.ID(), New(&fixedRounds{}, &scriptedBets{}, &recordingGreeter{}).ID())
}

func TestSessionEndsWhenBroke(t *testing.T) {
	t.Parallel()

	rounds := &fixedRounds{deltas: []game.Money{game.Dollars(-100)}}
	bets := &scriptedBets{bets: []game.Money{game.Dollars(100), game.Dollars(5)}}
	greeter := &recordingGreeter{}

	summary, err := New(rounds, bets, greeter).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.Money(0), summary.FinalCash)
	assert.Equal(t, 1, rounds.plays)
	assert.Len(t, bets.asked, 1)
}

func TestSessionQuitOnEOF(t *testing.T) {
	t.Parallel()

	bets := &scriptedBets{err: ErrQuit}
	greeter := &recordingGreeter{}

	summary, err := New(&fixedRounds{}, bets, greeter).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Rounds)
	assert.Len(t, greeter.summaries, 1)
}

func TestSessionQuitDuringWelcome(t *testing.T) {
	t.Parallel()

	bets := &scriptedBets{}
	greeter := &recordingGreeter{welcomeErr: ErrQuit}

	_, err := New(&fixedRounds{}, bets, greeter).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bets.asked)
	assert.Len(t, greeter.summaries, 1)
}

func TestSessionQuitMidRoundAbandonsRound(t *testing.T) {
	t.Parallel()

	rounds := &fixedRounds{err: ErrQuit}
	bets := &scriptedBets{bets: []game.Money{game.Dollars(10)}}

	summary, err := New(rounds, bets, &recordingGreeter{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.Dollars(100), summary.FinalCash)
	assert.Equal(t, 0, summary.Rounds)
}

func TestSessionRoundErrorIsReturned(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rounds := &fixedRounds{err: boom}
	bets := &scriptedBets{bets: []game.Money{game.Dollars(10)}}
	greeter := &recordingGreeter{}

	_, err := New(rounds, bets, greeter).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, greeter.summaries, 1, "farewell is shown on error")
}

func TestSessionRejectsInvalidBetFromProvider(t *testing.T) {
	t.Parallel()

	bets := &scriptedBets{bets: []game.Money{game.Dollars(500)}}

	_, err := New(&fixedRounds{}, bets, &recordingGreeter{}).Run(context.Background())
	assert.ErrorIs(t, err, ErrInvalidBet)
}

func TestSessionStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	rounds := &fixedRounds{deltas: []game.Money{game.Dollars(5), game.Dollars(5)}}
	bets := &scriptedBets{bets: []game.Money{game.Dollars(5), game.Dollars(5)}}
	bets.onAsk = cancel

	summary, err := New(rounds, bets, &recordingGreeter{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, summary.Rounds, "the round in progress still completes")
}

func TestSessionWithEngine(t *testing.T) {
	t.Parallel()

	// stand on 19 against 17 every round
	provider := game.NewScriptedProvider(nil, game.Stand, game.Stand)
	engine := game.NewEngine(game.DefaultRules(), provider,
		game.WithDeckSource(game.StackedDecks("10d 9c 10s 7h")))
	bets := &scriptedBets{bets: []game.Money{game.Dollars(10), game.Dollars(20), 0}}

	s := New(engine, bets, &recordingGreeter{}, WithStartingCash(game.Dollars(50)))
	summary, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.Dollars(80), summary.FinalCash)
	assert.Equal(t, game.Dollars(30), summary.Net)
	assert.Equal(t, game.Dollars(80), s.Cash())
}
