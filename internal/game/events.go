package game

// EventKind identifies a round event
type EventKind int

const (
	EventInsuranceTaken EventKind = iota + 1
	EventSplit
	EventPlayerTurn
	EventDoubled
	EventSurrendered
	EventDealerTurn
	EventHandSettled
	EventRoundSettled
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventInsuranceTaken:
		return "insurance_taken"
	case EventSplit:
		return "split"
	case EventPlayerTurn:
		return "player_turn"
	case EventDoubled:
		return "doubled"
	case EventSurrendered:
		return "surrendered"
	case EventDealerTurn:
		return "dealer_turn"
	case EventHandSettled:
		return "hand_settled"
	case EventRoundSettled:
		return "round_settled"
	default:
		return "unknown"
	}
}

// Event is a notification published to the Presenter during a round.
//
// Amount depends on Kind: the insurance stake, the extra split stake, the
// doubled bet, the surrendered amount, or the round's total delta.
type Event struct {
	Kind       EventKind
	Hand       int
	Split      bool
	Amount     Money
	Settlement Settlement // EventHandSettled only
}
