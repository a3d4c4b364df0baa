// Package game implements the blackjack round engine for a single player
// against an automated dealer.
//
// The main type is Engine, which plays one betting round at a time: it
// deals from a fresh shuffled deck, offers insurance and splits, drives the
// player's decisions through a DecisionProvider, draws for the dealer and
// settles the round with the Settlement Calculator on Rules.
//
// # Basic Usage
//
//	engine := game.NewEngine(game.DefaultRules(), provider,
//	    game.WithPresenter(presenter),
//	    game.WithRNG(randutil.New(seed)))
//	delta, err := engine.PlayRound(game.Dollars(10), cash)
//
// # Deterministic Testing
//
// A stacked deck makes every card of a round predictable. The player is
// dealt the first two cards, the dealer the next two:
//
//	cards := deck.MustParseCards("8c 8d As 6h 3s 2c")
//	engine := game.NewEngine(rules, provider, game.WithDeckSource(func() *deck.Deck {
//	    return deck.NewDeck(cards...)
//	}))
//
// # Money
//
// All amounts are Money, an integer number of cents, so payouts such as
// 3:2 and half-bet surrenders never drift.
package game
