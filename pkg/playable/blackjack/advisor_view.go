package blackjack

import "blackjack-trainer/pkg/deck"

// DecisionKind is the kind of decision an advisor is asked about
type DecisionKind string

// DecisionKind constants
const (
	DecisionPlay      DecisionKind = "play"
	DecisionInsurance DecisionKind = "insurance"
	DecisionEvenMoney DecisionKind = "evenMoney"
)

// AdvisorView is what an advisor may see when judging a decision
// The dealer's hole card is never part of the view.
type AdvisorView struct {
	Round        int          `json:"round"`
	Hand         HandID       `json:"hand"`
	Cards        deck.Hand    `json:"cards"`
	Value        int          `json:"value"`
	IsSoft       bool         `json:"isSoft"`
	PayoutRule   PayoutRule   `json:"payoutRule"`
	DealerUpCard *deck.Card   `json:"dealerUpCard"`
	Decision     DecisionKind `json:"decision"`
	LegalActions []Action     `json:"legalActions"`
}

// AdvisorView returns the advisor's view of the hand holding the turn
func (r *Round) AdvisorView(id HandID) (*AdvisorView, error) {
	seat, ok := r.Seat(id)
	if !ok {
		return nil, ErrHandNotFound
	}

	if r.Phase != PhasePlayerTurns || r.Turn == nil || *r.Turn != id {
		return nil, &IllegalActionError{Hand: id, Action: ActionStand, Reason: "it is not your turn"}
	}

	decision := DecisionPlay
	switch {
	case seat.CanTakeEvenMoney:
		decision = DecisionEvenMoney
	case seat.CanInsure:
		decision = DecisionInsurance
	}

	var upCard *deck.Card
	if c := r.DealerUpCard(); c != nil {
		cp := *c
		upCard = &cp
	}

	details := seat.Details()
	return &AdvisorView{
		Round:        r.Number,
		Hand:         id,
		Cards:        seat.Hand.Clone(),
		Value:        details.Value,
		IsSoft:       details.IsSoft,
		PayoutRule:   seat.PayoutRule,
		DealerUpCard: upCard,
		Decision:     decision,
		LegalActions: seat.LegalActions(),
	}, nil
}
