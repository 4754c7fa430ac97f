package coach

import (
	"context"
	"errors"

	"blackjack-trainer/pkg/playable/blackjack"
)

// ErrNoAdvice is returned by an advisor that has nothing to say about a decision
var ErrNoAdvice = errors.New("no advice for this decision")

// Advice is a recommended action and why
type Advice struct {
	Action      blackjack.Action `json:"action"`
	Explanation string           `json:"explanation"`
}

// Advisor recommends an action for a hand
// Advisors are only consulted for feedback. Their answer never decides whether an action is accepted.
type Advisor interface {
	Advise(ctx context.Context, view *blackjack.AdvisorView) (*Advice, error)
}

// AdvisorFunc adapts a function to the Advisor interface
type AdvisorFunc func(ctx context.Context, view *blackjack.AdvisorView) (*Advice, error)

// Advise calls f
func (f AdvisorFunc) Advise(ctx context.Context, view *blackjack.AdvisorView) (*Advice, error) {
	return f(ctx, view)
}

// HouseAdvisor gives the advice every dealer is trained to give: never insure
// It has no opinion on how to play a hand.
type HouseAdvisor struct{}

// Advise declines insurance and even money
func (HouseAdvisor) Advise(ctx context.Context, view *blackjack.AdvisorView) (*Advice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch view.Decision {
	case blackjack.DecisionInsurance:
		return &Advice{
			Action:      blackjack.ActionDeclineInsurance,
			Explanation: "Insurance is a side bet on the dealer's hole card and loses money over time.",
		}, nil
	case blackjack.DecisionEvenMoney:
		return &Advice{
			Action:      blackjack.ActionDeclineEvenMoney,
			Explanation: "Even money is insurance on a blackjack. Declining pays more over time.",
		}, nil
	}

	return nil, ErrNoAdvice
}
