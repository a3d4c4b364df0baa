package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// ScriptedProvider answers offers and choices from fixed scripts. It returns
// an error once a script runs out, so tests fail loudly on unexpected prompts.
type ScriptedProvider struct {
	Answers []bool
	Choices []Choice

	Offers   []Offer
	Requests []ChoiceRequest
}

// NewScriptedProvider creates a provider that replies with answers to offers
// and choices to decisions, in order.
func NewScriptedProvider(answers []bool, choices ...Choice) *ScriptedProvider {
	return &ScriptedProvider{Answers: answers, Choices: choices}
}

// AskYesNo implements DecisionProvider
func (p *ScriptedProvider) AskYesNo(offer Offer) (bool, error) {
	p.Offers = append(p.Offers, offer)
	if len(p.Answers) == 0 {
		return false, fmt.Errorf("unexpected %s offer", offer.Kind)
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// AskChoice implements DecisionProvider
func (p *ScriptedProvider) AskChoice(req ChoiceRequest) (Choice, error) {
	p.Requests = append(p.Requests, req)
	if len(p.Choices) == 0 {
		return 0, fmt.Errorf("unexpected choice request on %s", req.Hand)
	}
	choice := p.Choices[0]
	p.Choices = p.Choices[1:]
	return choice, nil
}

// RecordingPresenter keeps every view and event it is given
type RecordingPresenter struct {
	Views  []TableView
	Events []Event
}

// Show implements Presenter
func (p *RecordingPresenter) Show(view TableView) {
	p.Views = append(p.Views, view)
}

// Announce implements Presenter
func (p *RecordingPresenter) Announce(event Event) {
	p.Events = append(p.Events, event)
}

// Kinds returns the kinds of the recorded events in order
func (p *RecordingPresenter) Kinds() []EventKind {
	kinds := make([]EventKind, len(p.Events))
	for i, e := range p.Events {
		kinds[i] = e.Kind
	}
	return kinds
}

// StackedDecks returns a deck source that deals cards in the given order
// every round. The player receives the first two cards, the dealer the next
// two, then hits and dealer draws follow in play order.
func StackedDecks(cards string) func() *deck.Deck {
	stacked := deck.MustParseCards(cards)
	return func() *deck.Deck {
		return deck.NewDeck(stacked...)
	}
}
