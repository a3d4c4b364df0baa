package game

// Rules holds the fixed table constants. It is passed by value into the
// engine so no round can change them.
type Rules struct {
	// StartingCash is what a new session starts with.
	StartingCash Money

	// DealerStandsOn is the value at which the dealer stops drawing.
	// Soft totals count, so the dealer stands on soft 17.
	DealerStandsOn int

	// BlackjackPayout pays a natural that did not come from a split.
	BlackjackPayout Ratio

	// SplitBlackjackPayout pays a two-card 21 on a split hand.
	SplitBlackjackPayout Ratio

	// InsuredBlackjackPayout pays an insured natural against a dealer natural.
	InsuredBlackjackPayout Ratio

	// InsuranceCost is the insurance stake as a fraction of the bet.
	InsuranceCost Ratio

	// SurrenderLoss is the forfeited fraction of a surrendered hand's bet.
	SurrenderLoss Ratio
}

// DefaultRules returns the table constants of the game.
func DefaultRules() Rules {
	return Rules{
		StartingCash:           Dollars(100),
		DealerStandsOn:         17,
		BlackjackPayout:        Ratio{Num: 3, Den: 2},
		SplitBlackjackPayout:   Ratio{Num: 1, Den: 1},
		InsuredBlackjackPayout: Ratio{Num: 3, Den: 2},
		InsuranceCost:          Ratio{Num: 1, Den: 2},
		SurrenderLoss:          Ratio{Num: 1, Den: 2},
	}
}

// InsuranceStake returns the cost of insuring bet.
func (r Rules) InsuranceStake(bet Money) Money {
	return r.InsuranceCost.Of(bet)
}

// CanInsure reports whether insurance is offered: the dealer shows an Ace and
// the player can cover the stake.
func (r Rules) CanInsure(dealer Hand, bet, cash Money) bool {
	return dealer.Len() > 0 && dealer.Card(0).IsAce() && cash >= r.InsuranceStake(bet)
}

// CanSplit reports whether the two starting cards may be split. Cards of
// equal blackjack value qualify, so a Jack and a King split.
func (r Rules) CanSplit(player Hand, bet, cash Money) bool {
	return player.Len() == 2 &&
		player.Card(0).Points() == player.Card(1).Points() &&
		cash >= 2*bet
}

// DealerMustDraw reports whether the dealer takes another card.
func (r Rules) DealerMustDraw(dealer Hand) bool {
	return dealer.Value() < r.DealerStandsOn
}
