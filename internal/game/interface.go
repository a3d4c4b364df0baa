package game

import (
	"slices"

	"github.com/lox/blackjack/internal/deck"
)

// OfferKind identifies a yes/no question put to the player
type OfferKind int

const (
	OfferInsurance OfferKind = iota + 1
	OfferSplit
)

// String returns the string representation of an offer kind
func (k OfferKind) String() string {
	switch k {
	case OfferInsurance:
		return "insurance"
	case OfferSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Offer is a yes/no question with the extra amount it would cost
type Offer struct {
	Kind     OfferKind
	Amount   Money
	Hand     Hand      // the player's starting hand
	DealerUp deck.Card // the dealer's visible card
}

// ChoiceRequest describes the hand a decision is needed for
type ChoiceRequest struct {
	Hand      Hand
	HandIndex int // 0 for the first (or only) hand, 1 for the second split hand
	Split     bool
	DealerUp  deck.Card
	Allowed   []Choice
	Bet       Money
}

// CardCount returns the number of cards in the hand being decided
func (r ChoiceRequest) CardCount() int {
	return r.Hand.Len()
}

// Allows reports whether c is a permitted answer to the request
func (r ChoiceRequest) Allows(c Choice) bool {
	return slices.Contains(r.Allowed, c)
}

// DecisionProvider supplies the player's decisions. Implementations validate
// and retry on bad input themselves; the engine rejects any answer outside
// the permitted set with ErrInvalidChoice.
type DecisionProvider interface {
	// AskYesNo answers an insurance or split offer
	AskYesNo(offer Offer) (bool, error)

	// AskChoice picks one of req.Allowed for the hand
	AskChoice(req ChoiceRequest) (Choice, error)
}

// TableView is a snapshot of the table handed to a Presenter
type TableView struct {
	PlayerHands  []Hand
	Dealer       Hand
	DealerHidden bool // only the dealer's first card is visible
	Split        bool
	Active       int // index of the hand being played, -1 when none
}

// Presenter renders the table. The engine never depends on what it does.
type Presenter interface {
	Show(view TableView)
	Announce(event Event)
}

// NopPresenter discards everything
type NopPresenter struct{}

func (NopPresenter) Show(TableView)  {}
func (NopPresenter) Announce(Event) {}
