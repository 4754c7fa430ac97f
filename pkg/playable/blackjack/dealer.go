package blackjack

import (
	"github.com/sirupsen/logrus"
)

// dealerShouldHit returns true below 17 and on a soft 17
func dealerShouldHit(details HandDetails) bool {
	return details.Value < 17 || (details.Value == 17 && details.IsSoft)
}

// AdvanceDealer performs one step of the dealer's turn
// The first step reveals the hole card. Each later step draws one card. The dealer is finished
// when standing, when holding a blackjack, or when no hand is left to beat.
func (e *Engine) AdvanceDealer(r *Round) (*Round, error) {
	if r.Phase != PhaseDealerTurn {
		return nil, PhaseError{Want: PhaseDealerTurn, Got: r.Phase}
	}

	if r.DealerFinished {
		return nil, ErrWrongPhase
	}

	next := r.clone()
	if next.Dealer.HasFaceDown() {
		next.Dealer = next.Dealer.Revealed()
	} else if err := drawInto(next, &next.Dealer); err != nil {
		return nil, err
	}

	details := next.DealerDetails()
	next.DealerFinished = next.DealerHasBlackjack() || !next.hasLiveSeats() || !dealerShouldHit(details)

	e.logger.WithFields(logrus.Fields{
		"round":    next.Number,
		"dealer":   next.Dealer.String(),
		"value":    details.Value,
		"finished": next.DealerFinished,
	}).Debug("dealer step")

	return next, nil
}

// PlayDealer runs the dealer's turn to completion
func (e *Engine) PlayDealer(r *Round) (*Round, error) {
	next := r
	for !next.DealerFinished {
		var err error
		next, err = e.AdvanceDealer(next)
		if err != nil {
			return nil, err
		}
	}

	return next, nil
}

// hasLiveSeats returns true if any hand still needs the dealer to play
func (r *Round) hasLiveSeats() bool {
	for _, seat := range r.Seats {
		if seat.isLive() {
			return true
		}
	}

	return false
}
