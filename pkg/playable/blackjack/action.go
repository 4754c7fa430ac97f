package blackjack

import (
	"fmt"
)

// Action is a decision a player can make on their hand
type Action int

// Action constants
const (
	ActionHit Action = iota
	ActionStand
	ActionDoubleDown
	ActionSplit
	ActionSurrender
	ActionAcceptInsurance
	ActionDeclineInsurance
	ActionAcceptEvenMoney
	ActionDeclineEvenMoney
)

// Actions is every action in display order
var Actions = []Action{
	ActionHit,
	ActionStand,
	ActionDoubleDown,
	ActionSplit,
	ActionSurrender,
	ActionAcceptInsurance,
	ActionDeclineInsurance,
	ActionAcceptEvenMoney,
	ActionDeclineEvenMoney,
}

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionDoubleDown:
		return "double"
	case ActionSplit:
		return "split"
	case ActionSurrender:
		return "surrender"
	case ActionAcceptInsurance:
		return "acceptInsurance"
	case ActionDeclineInsurance:
		return "declineInsurance"
	case ActionAcceptEvenMoney:
		return "acceptEvenMoney"
	case ActionDeclineEvenMoney:
		return "declineEvenMoney"
	}

	panic(fmt.Sprintf("unknown action: %d", a))
}

// MarshalText encodes the action by name
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action by name
func (a *Action) UnmarshalText(text []byte) error {
	action, err := ActionFromString(string(text))
	if err != nil {
		return err
	}

	*a = action
	return nil
}

// ActionFromString returns an action from its name
func ActionFromString(s string) (Action, error) {
	for _, action := range Actions {
		if action.String() == s {
			return action, nil
		}
	}

	return 0, fmt.Errorf("unknown action: %s", s)
}

// isDecision returns true for the insurance and even money actions
func (a Action) isDecision() bool {
	switch a {
	case ActionAcceptInsurance, ActionDeclineInsurance, ActionAcceptEvenMoney, ActionDeclineEvenMoney:
		return true
	}

	return false
}
