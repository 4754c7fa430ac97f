package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-trainer/pkg/deck"
)

func TestPayout(t *testing.T) {
	tests := []struct {
		outcome Outcome
		bet     int
		rule    PayoutRule
		want    int
	}{
		{OutcomeWin, 1000, PayoutThreeToTwo, 1000},
		{OutcomeWin, 2000, PayoutSixToFive, 2000},
		{OutcomeBlackjack, 1000, PayoutThreeToTwo, 1500},
		{OutcomeBlackjack, 700, PayoutThreeToTwo, 1050},
		{OutcomeBlackjack, 1000, PayoutSixToFive, 1200},
		{OutcomeBlackjack, 500, PayoutSixToFive, 600},
		{OutcomePush, 1000, PayoutThreeToTwo, 0},
		{OutcomeLoss, 1000, PayoutThreeToTwo, -1000},
		{OutcomeSurrender, 1000, PayoutThreeToTwo, -500},
		{OutcomeSurrender, 700, PayoutThreeToTwo, -350},
		{OutcomeEvenMoney, 1000, PayoutSixToFive, 1000},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Payout(test.outcome, test.bet, test.rule), "%s %d %s", test.outcome, test.bet, test.rule)
	}

	assert.Panics(t, func() {
		Payout("bad", 1000, PayoutThreeToTwo)
	})
}

func TestInsurancePayout(t *testing.T) {
	assert.Equal(t, 1000, InsurancePayout(500, true))
	assert.Equal(t, -500, InsurancePayout(500, false))
}

func TestOutcomeFor(t *testing.T) {
	seat := func(cards string) *Seat {
		s := newSeat(SeatConfig{Seat: 1, Bet: 1000})
		s.Hand = deck.CardsFromString(cards)
		s.HasBlackjack = IsBlackjack(s.Hand)
		s.refresh()
		return s
	}

	tests := []struct {
		name   string
		seat   *Seat
		dealer string
		want   Outcome
	}{
		{"higher total", seat("10c,9d"), "10s,8h", OutcomeWin},
		{"lower total", seat("10c,7d"), "10s,8h", OutcomeLoss},
		{"equal total", seat("10c,8d"), "10s,8h", OutcomePush},
		{"dealer busts", seat("10c,2d"), "10s,6h,12h", OutcomeWin},
		{"both bust", seat("10c,2d,12c"), "10s,6h,12h", OutcomeLoss},
		{"blackjack", seat("14c,13d"), "10s,8h", OutcomeBlackjack},
		{"blackjack vs blackjack", seat("14c,13d"), "14s,10h", OutcomePush},
		{"21 vs dealer blackjack", seat("7c,7d,7h"), "14s,10h", OutcomeLoss},
		{"blackjack vs three-card 21", seat("14c,13d"), "7s,7h,7d", OutcomeBlackjack},
	}

	for _, test := range tests {
		dealer := deck.Hand(deck.CardsFromString(test.dealer))
		got := outcomeFor(test.seat, Evaluate(dealer, true), IsBlackjack(dealer))
		assert.Equal(t, test.want, got, test.name)
	}

	surrendered := seat("10c,6d")
	surrendered.HasSurrendered = true
	assert.Equal(t, OutcomeSurrender, outcomeFor(surrendered, HandDetails{Value: 17}, false))

	evenMoney := seat("14c,13d")
	evenMoney.HasTakenEvenMoney = true
	assert.Equal(t, OutcomeEvenMoney, outcomeFor(evenMoney, HandDetails{Value: 21}, true))
}
