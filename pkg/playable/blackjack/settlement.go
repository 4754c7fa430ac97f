package blackjack

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Outcome is the result of a hand against the dealer
type Outcome string

// Outcome constants
const (
	OutcomeWin       Outcome = "win"
	OutcomeLoss      Outcome = "loss"
	OutcomePush      Outcome = "push"
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeSurrender Outcome = "surrender"
	OutcomeEvenMoney Outcome = "evenMoney"
)

// Payout returns the net change in cents for the outcome
// bet is the final bet, already doubled if the hand doubled down.
func Payout(outcome Outcome, bet int, rule PayoutRule) int {
	switch outcome {
	case OutcomeWin, OutcomeEvenMoney:
		return bet
	case OutcomeBlackjack:
		return rule.blackjackPayout(bet)
	case OutcomeLoss:
		return -bet
	case OutcomeSurrender:
		return -bet / 2
	case OutcomePush:
		return 0
	}

	panic(fmt.Sprintf("unknown outcome: %s", outcome))
}

// InsurancePayout returns the net change in cents of an insurance stake
// Insurance pays 2:1 on a dealer blackjack and loses otherwise.
func InsurancePayout(stake int, dealerBlackjack bool) int {
	if dealerBlackjack {
		return stake * 2
	}

	return -stake
}

// outcomeFor decides a hand against the dealer's final cards
// A dealer blackjack beats every hand but a player blackjack.
func outcomeFor(seat *Seat, dealer HandDetails, dealerBlackjack bool) Outcome {
	switch {
	case seat.HasSurrendered:
		return OutcomeSurrender
	case seat.HasTakenEvenMoney:
		return OutcomeEvenMoney
	case seat.HasBlackjack && dealerBlackjack:
		return OutcomePush
	case seat.HasBlackjack:
		return OutcomeBlackjack
	case seat.IsBusted:
		return OutcomeLoss
	case dealerBlackjack:
		return OutcomeLoss
	case dealer.Value > 21:
		return OutcomeWin
	}

	value := Value(seat.Hand)
	switch {
	case value > dealer.Value:
		return OutcomeWin
	case value < dealer.Value:
		return OutcomeLoss
	default:
		return OutcomePush
	}
}

// Settle decides every hand and computes its net result
func (e *Engine) Settle(r *Round) (*Round, error) {
	if r.Phase != PhaseDealerTurn {
		return nil, PhaseError{Want: PhaseDealerTurn, Got: r.Phase}
	}

	if !r.DealerFinished {
		return nil, ErrDealerNotFinished
	}

	next := r.clone()
	next.Dealer = next.Dealer.Revealed()
	dealer := next.DealerDetails()
	dealerBlackjack := next.DealerHasBlackjack()

	for _, seat := range next.Seats {
		seat.Outcome = outcomeFor(seat, dealer, dealerBlackjack)
		seat.Payout = Payout(seat.Outcome, seat.Bet, seat.PayoutRule)
		seat.InsurancePayout = 0
		if seat.InsuranceStake > 0 {
			seat.InsurancePayout = InsurancePayout(seat.InsuranceStake, dealerBlackjack)
		}

		seat.Net = seat.Payout + seat.InsurancePayout + seat.SideBetNet()
	}

	next.Phase = PhaseSettlement

	e.logger.WithFields(logrus.Fields{
		"round":  next.Number,
		"dealer": next.Dealer.String(),
		"value":  dealer.Value,
	}).Debug("settled round")

	return next, nil
}
