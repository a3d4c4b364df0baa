package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
)

// round is the transient state of one betting round
type round struct {
	rules     Rules
	decisions DecisionProvider
	presenter Presenter
	logger    *log.Logger

	deck      *deck.Deck
	bet       Money
	cash      Money
	committed Money // stakes on the table, excluding insurance
	insurance Money
	split     bool

	dealer Hand
	hands  []*Hand
}

func (r *round) play() (*RoundResult, error) {
	player, err := r.deal()
	if err != nil {
		return nil, fmt.Errorf("deal player: %w", err)
	}
	r.dealer, err = r.deal()
	if err != nil {
		return nil, fmt.Errorf("deal dealer: %w", err)
	}
	r.hands = []*Hand{&player}
	r.committed = r.bet
	r.logger.Debug("Dealt", "player", player, "dealerUp", r.dealer.Card(0))

	if r.rules.CanInsure(r.dealer, r.bet, r.cash) {
		r.show(true, -1)
		stake := r.rules.InsuranceStake(r.bet)
		accepted, err := r.decisions.AskYesNo(r.offer(OfferInsurance, stake, player))
		if err != nil {
			return nil, fmt.Errorf("insurance offer: %w", err)
		}
		if accepted {
			r.insurance = stake
			r.presenter.Announce(Event{Kind: EventInsuranceTaken, Amount: stake})
			r.logger.Debug("Insurance taken", "stake", stake)
		}
	}

	if r.dealer.Value() == Blackjack || player.Value() == Blackjack {
		r.logger.Debug("Blackjack on the deal", "player", player.Value(), "dealer", r.dealer.Value())
		r.show(false, -1)
		play := HandPlay{Hand: player, Bet: r.bet, Resolution: ResolutionNone}
		return r.settleSingle(play), nil
	}

	if r.rules.CanSplit(player, r.bet, r.cash) {
		r.show(true, -1)
		accepted, err := r.decisions.AskYesNo(r.offer(OfferSplit, r.bet, player))
		if err != nil {
			return nil, fmt.Errorf("split offer: %w", err)
		}
		if accepted {
			return r.playSplit(player)
		}
	}

	play, err := r.playHand(0)
	if err != nil {
		return nil, err
	}
	if play.Live() {
		if err := r.dealerDraw(); err != nil {
			return nil, err
		}
	}
	return r.settleSingle(play), nil
}

func (r *round) playSplit(player Hand) (*RoundResult, error) {
	first := NewHand(player.Card(0))
	second := NewHand(player.Card(1))
	for _, h := range []*Hand{&first, &second} {
		card, err := r.deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("deal split hand: %w", err)
		}
		h.Add(card)
	}

	r.split = true
	r.hands = []*Hand{&first, &second}
	r.committed = 2 * r.bet
	r.presenter.Announce(Event{Kind: EventSplit, Split: true, Amount: r.bet})
	r.logger.Debug("Split", "first", first, "second", second)
	r.show(true, -1)

	plays := make([]HandPlay, len(r.hands))
	for i := range r.hands {
		play, err := r.playHand(i)
		if err != nil {
			return nil, err
		}
		plays[i] = play
	}

	live := false
	for _, play := range plays {
		live = live || play.Live()
	}
	if live {
		if err := r.dealerDraw(); err != nil {
			return nil, err
		}
	}

	settlements, delta := r.rules.SettleSplit(plays, r.dealer, r.insurance)
	return r.finish(plays, settlements, delta), nil
}

// playHand runs the decision loop for hand i until it stands, surrenders,
// doubles or reaches 21 or more.
func (r *round) playHand(i int) (HandPlay, error) {
	hand := r.hands[i]
	play := HandPlay{Bet: r.bet, Resolution: ResolutionNone}

	r.presenter.Announce(Event{Kind: EventPlayerTurn, Hand: i, Split: r.split})
	r.show(true, i)

loop:
	for hand.Value() < Blackjack {
		req := ChoiceRequest{
			Hand:      hand.Clone(),
			HandIndex: i,
			Split:     r.split,
			DealerUp:  r.dealer.Card(0),
			Allowed:   AllowedChoices(hand.Len()),
			Bet:       play.Bet,
		}
		choice, err := r.decisions.AskChoice(req)
		if err != nil {
			return HandPlay{}, fmt.Errorf("hand %d decision: %w", i+1, err)
		}
		if !req.Allows(choice) {
			return HandPlay{}, fmt.Errorf("%w: %s on hand %d with %d cards", ErrInvalidChoice, choice, i+1, hand.Len())
		}
		r.logger.Debug("Player choice", "hand", i+1, "choice", choice, "value", hand.Value())

		switch choice {
		case Stand:
			play.Resolution = ResolutionStand
			break loop

		case Surrender:
			play.Resolution = ResolutionSurrender
			r.presenter.Announce(Event{
				Kind:   EventSurrendered,
				Hand:   i,
				Split:  r.split,
				Amount: r.rules.SurrenderLoss.Of(play.Bet),
			})
			break loop

		case Double:
			extra := min(r.bet, max(r.cash-r.committed, 0))
			play.Bet += extra
			r.committed += extra
			r.presenter.Announce(Event{Kind: EventDoubled, Hand: i, Split: r.split, Amount: play.Bet})
			if err := r.hit(hand); err != nil {
				return HandPlay{}, err
			}
			r.show(true, i)
			play.Resolution = ResolutionDouble
			break loop

		case Hit:
			if err := r.hit(hand); err != nil {
				return HandPlay{}, err
			}
			r.show(true, i)
		}
	}

	if play.Resolution == ResolutionNone && hand.Len() > 2 {
		if hand.IsBust() {
			play.Resolution = ResolutionBust
		} else {
			play.Resolution = ResolutionTwentyOne
		}
	}

	play.Hand = hand.Clone()
	return play, nil
}

func (r *round) dealerDraw() error {
	r.presenter.Announce(Event{Kind: EventDealerTurn, Split: r.split})
	for r.rules.DealerMustDraw(r.dealer) {
		if err := r.hit(&r.dealer); err != nil {
			return fmt.Errorf("dealer draw: %w", err)
		}
	}
	r.logger.Debug("Dealer stands", "dealer", r.dealer, "value", r.dealer.Value())
	r.show(false, -1)
	return nil
}

func (r *round) settleSingle(play HandPlay) *RoundResult {
	s := r.rules.SettleSingle(play, r.dealer, r.insurance)
	return r.finish([]HandPlay{play}, []Settlement{s}, s.Delta)
}

func (r *round) finish(plays []HandPlay, settlements []Settlement, delta Money) *RoundResult {
	for i, s := range settlements {
		r.presenter.Announce(Event{Kind: EventHandSettled, Hand: i, Split: r.split, Settlement: s})
	}
	r.presenter.Announce(Event{Kind: EventRoundSettled, Split: r.split, Amount: delta})

	return &RoundResult{
		Bet:         r.bet,
		Cash:        r.cash,
		Insurance:   r.insurance,
		Split:       r.split,
		Dealer:      r.dealer.Clone(),
		Plays:       plays,
		Settlements: settlements,
		Delta:       delta,
	}
}

func (r *round) deal() (Hand, error) {
	hand := NewHand()
	for range 2 {
		if err := r.hit(&hand); err != nil {
			return Hand{}, err
		}
	}
	return hand, nil
}

func (r *round) hit(hand *Hand) error {
	card, err := r.deck.Draw()
	if err != nil {
		return err
	}
	hand.Add(card)
	return nil
}

func (r *round) offer(kind OfferKind, amount Money, player Hand) Offer {
	return Offer{Kind: kind, Amount: amount, Hand: player.Clone(), DealerUp: r.dealer.Card(0)}
}

func (r *round) show(dealerHidden bool, active int) {
	hands := make([]Hand, len(r.hands))
	for i, h := range r.hands {
		hands[i] = h.Clone()
	}
	r.presenter.Show(TableView{
		PlayerHands:  hands,
		Dealer:       r.dealer.Clone(),
		DealerHidden: dealerHidden,
		Split:        r.split,
		Active:       active,
	})
}
