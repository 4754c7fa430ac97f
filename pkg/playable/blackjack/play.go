package blackjack

import (
	"github.com/sirupsen/logrus"

	"blackjack-trainer/pkg/deck"
)

// ApplyAction applies a player's decision to the hand holding the turn
func (e *Engine) ApplyAction(r *Round, id HandID, action Action) (*Round, error) {
	if r.Phase != PhasePlayerTurns {
		return nil, PhaseError{Want: PhasePlayerTurns, Got: r.Phase}
	}

	if _, ok := r.Seat(id); !ok {
		return nil, ErrHandNotFound
	}

	if !r.IsPlayerTurn || r.Turn == nil || *r.Turn != id {
		return nil, &IllegalActionError{Hand: id, Action: action, Reason: "it is not your turn"}
	}

	next := r.clone()
	index := next.seatIndex(id)
	seat := next.Seats[index]
	if !seat.IsLegal(action) {
		return nil, &IllegalActionError{Hand: id, Action: action, Reason: "action is not available"}
	}

	var err error
	switch {
	case action.isDecision():
		e.decide(next, seat, action)
	case action == ActionHit:
		err = e.hit(next, seat)
	case action == ActionStand:
		seat.finish()
	case action == ActionDoubleDown:
		err = e.doubleDown(next, seat)
	case action == ActionSplit:
		err = e.split(next, index)
	case action == ActionSurrender:
		seat.HasSurrendered = true
		seat.finish()
	}

	if err != nil {
		return nil, err
	}

	// a dealer blackjack found on an insurance decision ends the player turns
	if next.Phase == PhasePlayerTurns && seat.IsFinished {
		next.setTurn(next.nextActor(next.seatIndex(id)))
	}

	e.logger.WithFields(logrus.Fields{
		"round":  next.Number,
		"hand":   id.String(),
		"action": action.String(),
		"cards":  seat.Hand.String(),
		"value":  Value(seat.Hand),
	}).Debug("player action")

	return next, nil
}

func drawInto(r *Round, hand *deck.Hand) error {
	card, err := r.Shoe.Draw()
	if err != nil {
		return ErrEmptyShoe
	}

	hand.AddCard(card)
	return nil
}

func (e *Engine) hit(r *Round, seat *Seat) error {
	if err := drawInto(r, &seat.Hand); err != nil {
		return err
	}

	if IsBusted(seat.Hand) || Value(seat.Hand) == 21 {
		seat.finish()
		return nil
	}

	seat.refresh()
	return nil
}

func (e *Engine) doubleDown(r *Round, seat *Seat) error {
	if err := drawInto(r, &seat.Hand); err != nil {
		return err
	}

	seat.Bet *= 2
	seat.HasDoubledDown = true
	seat.finish()
	return nil
}

// split moves the second card into a new hand placed right after the original
// Split aces get one card each and are finished.
func (e *Engine) split(r *Round, index int) error {
	seat := r.Seats[index]
	generation := 0
	for _, s := range r.Seats {
		if s.ID.Seat == seat.ID.Seat && s.ID.Split > generation {
			generation = s.ID.Split
		}
	}

	sibling := &Seat{
		ID:         HandID{Seat: seat.ID.Seat, Split: generation + 1},
		Hand:       deck.Hand{seat.Hand[1]},
		Bet:        seat.Bet,
		PayoutRule: seat.PayoutRule,
		HasSplit:   true,
	}

	seat.Hand = deck.Hand{seat.Hand[0]}
	seat.HasSplit = true

	if err := drawInto(r, &seat.Hand); err != nil {
		return err
	}

	if err := drawInto(r, &sibling.Hand); err != nil {
		return err
	}

	seats := make([]*Seat, 0, len(r.Seats)+1)
	seats = append(seats, r.Seats[:index+1]...)
	seats = append(seats, sibling)
	seats = append(seats, r.Seats[index+1:]...)
	r.Seats = seats

	if seat.Hand[0].Rank == deck.Ace {
		seat.finish()
		sibling.finish()
		return nil
	}

	seat.refresh()
	sibling.refresh()
	return nil
}

// decide settles a pending insurance or even money decision
func (e *Engine) decide(r *Round, seat *Seat, action Action) {
	switch action {
	case ActionAcceptInsurance, ActionDeclineInsurance:
		e.decideInsurance(r, seat, action == ActionAcceptInsurance)
	case ActionAcceptEvenMoney, ActionDeclineEvenMoney:
		seat.HasTakenEvenMoney = action == ActionAcceptEvenMoney
		seat.finish()
	}
}

// decideInsurance records the decision and checks the hole card
// A dealer blackjack is revealed immediately and every remaining hand is closed.
func (e *Engine) decideInsurance(r *Round, seat *Seat, accept bool) {
	if accept {
		seat.InsuranceStake = seat.Bet / 2
	}

	seat.CanInsure = false

	if !r.DealerHasBlackjack() {
		seat.refresh()
		return
	}

	r.Dealer = r.Dealer.Revealed()
	r.DealerFinished = true
	for _, s := range r.Seats {
		if !s.IsFinished {
			s.finish()
		}
	}

	r.setTurn(nil)
}
