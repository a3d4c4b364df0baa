package game

// Outcome classifies how a settled hand fared against the dealer
type Outcome int

const (
	OutcomePush Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeBlackjack
	OutcomeDealerBlackjack
	OutcomeBothBlackjack
	OutcomeBust
	OutcomeDealerBust
	OutcomeSurrender
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePush:
		return "push"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeDealerBlackjack:
		return "dealer blackjack"
	case OutcomeBothBlackjack:
		return "both blackjack"
	case OutcomeBust:
		return "bust"
	case OutcomeDealerBust:
		return "dealer bust"
	case OutcomeSurrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// Wager is what is riding on one hand
type Wager struct {
	Bet       Money // main stake, after any double
	Insurance Money // insurance stake for the round, zero if not insured
}

// Settlement is the result of one settled hand
type Settlement struct {
	Outcome     Outcome
	PlayerValue int
	DealerValue int
	Insured     bool
	Amount      Money // won or lost on the main bet, insurance excluded
	Delta       Money
}

// Settle returns the cash delta for a finished hand. For split hands the
// insurance stake is not charged here; SettleSplit charges it once.
func (r Rules) Settle(player, dealer Hand, w Wager, split bool) Money {
	return r.Resolve(player, dealer, w, split).Delta
}

// Resolve settles a finished hand and reports the outcome alongside the delta.
func (r Rules) Resolve(player, dealer Hand, w Wager, split bool) Settlement {
	s := Settlement{
		PlayerValue: player.Value(),
		DealerValue: dealer.Value(),
		Insured:     w.Insurance > 0,
	}

	stake := w.Insurance
	if split {
		stake = 0
	}

	switch {
	case dealer.IsNatural():
		switch {
		case player.IsNatural():
			s.Outcome = OutcomeBothBlackjack
			if s.Insured {
				s.Amount = r.InsuredBlackjackPayout.Of(w.Bet)
				s.Delta = s.Amount
			}
		case s.Insured:
			// insurance pays 2:1 and exactly covers the lost bet
			s.Outcome = OutcomeDealerBlackjack
		default:
			s.Outcome = OutcomeDealerBlackjack
			s.Amount = w.Bet
			s.Delta = -w.Bet
		}

	case player.IsNatural():
		s.Outcome = OutcomeBlackjack
		if split {
			s.Amount = r.SplitBlackjackPayout.Of(w.Bet)
		} else {
			s.Amount = r.BlackjackPayout.Of(w.Bet)
		}
		s.Delta = s.Amount - stake

	case s.PlayerValue > Blackjack:
		s.Outcome = OutcomeBust
		s.Amount = w.Bet
		s.Delta = -w.Bet - stake

	case s.DealerValue > Blackjack:
		s.Outcome = OutcomeDealerBust
		s.Amount = w.Bet
		s.Delta = w.Bet - stake

	case s.DealerValue > s.PlayerValue:
		s.Outcome = OutcomeLose
		s.Amount = w.Bet
		s.Delta = -w.Bet - stake

	case s.DealerValue < s.PlayerValue:
		s.Outcome = OutcomeWin
		s.Amount = w.Bet
		s.Delta = w.Bet - stake

	default:
		s.Outcome = OutcomePush
		s.Delta = -stake
	}

	return s
}

// SurrenderSettlement settles a surrendered hand: half the bet is forfeited
// and the dealer's cards are never compared.
func (r Rules) SurrenderSettlement(play HandPlay) Settlement {
	loss := r.SurrenderLoss.Of(play.Bet)
	return Settlement{
		Outcome:     OutcomeSurrender,
		PlayerValue: play.Hand.Value(),
		Amount:      loss,
		Delta:       -loss,
	}
}

// SettleSingle settles an unsplit hand. The insurance stake is charged once,
// including when the hand was surrendered.
func (r Rules) SettleSingle(play HandPlay, dealer Hand, insurance Money) Settlement {
	if play.Surrendered() {
		s := r.SurrenderSettlement(play)
		s.Insured = insurance > 0
		s.Delta -= insurance
		return s
	}
	return r.Resolve(play.Hand, dealer, Wager{Bet: play.Bet, Insurance: insurance}, false)
}

// SettleSplit settles both split hands and returns each settlement plus the
// round total. The insurance stake is deducted exactly once from the total,
// never per hand.
func (r Rules) SettleSplit(plays []HandPlay, dealer Hand, insurance Money) ([]Settlement, Money) {
	settlements := make([]Settlement, len(plays))
	var total Money
	for i, play := range plays {
		if play.Surrendered() {
			settlements[i] = r.SurrenderSettlement(play)
		} else {
			settlements[i] = r.Resolve(play.Hand, dealer, Wager{Bet: play.Bet, Insurance: insurance}, true)
		}
		settlements[i].Insured = insurance > 0
		total += settlements[i].Delta
	}
	return settlements, total - insurance
}
