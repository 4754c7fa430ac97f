package blackjack

import (
	"encoding/json"

	"blackjack-trainer/pkg/deck"
)

// Phase is where the round is in its life cycle
type Phase int

// Phase constants
const (
	PhaseBetting Phase = iota
	PhaseDealing
	PhasePlayerTurns
	PhaseDealerTurn
	PhaseSettlement
)

func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurns:
		return "playerTurns"
	case PhaseDealerTurn:
		return "dealerTurn"
	case PhaseSettlement:
		return "settlement"
	}

	return "unknown"
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Round is the complete state of one round at the table
// A Round is never mutated by the engine. Every transition returns a new Round.
type Round struct {
	Number           int
	Phase            Phase
	Seats            []*Seat
	Dealer           deck.Hand
	Shoe             *deck.Deck
	Turn             *HandID
	IsPlayerTurn     bool
	InsuranceOffered bool
	DealerFinished   bool

	// configs are kept until the deal so bets can still be changed
	configs []SeatConfig
}

// Seat returns the hand with the ID
func (r *Round) Seat(id HandID) (*Seat, bool) {
	for _, seat := range r.Seats {
		if seat.ID == id {
			return seat, true
		}
	}

	return nil, false
}

func (r *Round) seatIndex(id HandID) int {
	for i, seat := range r.Seats {
		if seat.ID == id {
			return i
		}
	}

	return -1
}

// Configs returns the seat setup of a round that has not been dealt
func (r *Round) Configs() []SeatConfig {
	configs := make([]SeatConfig, len(r.configs))
	copy(configs, r.configs)
	return configs
}

// CurrentSeat returns the hand that holds the turn
func (r *Round) CurrentSeat() (*Seat, bool) {
	if r.Turn == nil {
		return nil, false
	}

	return r.Seat(*r.Turn)
}

// DealerUpCard returns the dealer's first face-up card
func (r *Round) DealerUpCard() *deck.Card {
	return r.Dealer.UpCard()
}

// DealerDetails returns the value of the dealer's visible cards
func (r *Round) DealerDetails() HandDetails {
	return Evaluate(r.Dealer, false)
}

// DealerHasBlackjack checks the dealer's hand including the hole card
func (r *Round) DealerHasBlackjack() bool {
	return IsBlackjack(r.Dealer)
}

// LegalActions returns the actions permitted on a hand right now
// Only the hand holding the turn has any.
func (r *Round) LegalActions(id HandID) []Action {
	if r.Phase != PhasePlayerTurns || !r.IsPlayerTurn || r.Turn == nil || *r.Turn != id {
		return []Action{}
	}

	seat, ok := r.Seat(id)
	if !ok {
		return []Action{}
	}

	return seat.LegalActions()
}

// TotalTips returns the tips placed at the table in cents
func (r *Round) TotalTips() int {
	total := 0
	if r.Phase == PhaseBetting {
		for _, cfg := range r.configs {
			total += cfg.Tip
		}

		return total
	}

	for _, seat := range r.Seats {
		total += seat.Tip
	}

	return total
}

// clone returns a deep copy that can be changed without touching r
func (r *Round) clone() *Round {
	r2 := *r

	r2.Seats = make([]*Seat, len(r.Seats))
	for i, seat := range r.Seats {
		r2.Seats[i] = seat.clone()
	}

	r2.Dealer = r.Dealer.Clone()
	if r.Shoe != nil {
		r2.Shoe = r.Shoe.Clone()
	}

	if r.Turn != nil {
		turn := *r.Turn
		r2.Turn = &turn
	}

	r2.configs = r.Configs()
	return &r2
}

// setTurn moves the turn to the hand, or ends player turns on nil
func (r *Round) setTurn(id *HandID) {
	r.Turn = id
	if id == nil {
		r.IsPlayerTurn = false
		r.Phase = PhaseDealerTurn
		return
	}

	r.IsPlayerTurn = true
	r.Phase = PhasePlayerTurns
}

// firstActor returns the first hand that still needs to act
func (r *Round) firstActor() *HandID {
	for _, seat := range r.Seats {
		if !seat.IsAuto && !seat.IsFinished {
			id := seat.ID
			return &id
		}
	}

	return nil
}

// nextActor returns the hand that acts after the one at index
// Unfinished hands split from the same seat go first, then later seats.
func (r *Round) nextActor(index int) *HandID {
	current := r.Seats[index]
	for _, seat := range r.Seats {
		if seat.ID.Seat == current.ID.Seat && !seat.IsFinished && !seat.IsAuto {
			id := seat.ID
			return &id
		}
	}

	for _, seat := range r.Seats[index+1:] {
		if !seat.IsAuto && !seat.IsFinished {
			id := seat.ID
			return &id
		}
	}

	return nil
}

// MarshalJSON hides the shoe, only the number of cards left is sent
func (r *Round) MarshalJSON() ([]byte, error) {
	cardsLeft := 0
	if r.Shoe != nil {
		cardsLeft = r.Shoe.CardsLeft()
	}

	seats := r.Seats
	if seats == nil {
		seats = []*Seat{}
	}

	dealer := r.Dealer
	if dealer == nil {
		dealer = deck.Hand{}
	}

	return json.Marshal(map[string]interface{}{
		"number":           r.Number,
		"phase":            r.Phase,
		"seats":            seats,
		"configs":          r.configs,
		"dealer":           dealer,
		"dealerValue":      r.DealerDetails().Value,
		"cardsRemaining":   cardsLeft,
		"turn":             r.Turn,
		"isPlayerTurn":     r.IsPlayerTurn,
		"insuranceOffered": r.InsuranceOffered,
		"dealerFinished":   r.DealerFinished,
		"totalTips":        r.TotalTips(),
	})
}
