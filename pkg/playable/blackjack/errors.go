package blackjack

import (
	"errors"
	"fmt"
)

// ErrIllegalAction is returned when an action is not currently permitted
var ErrIllegalAction = errors.New("illegal action")

// ErrInvalidBet is returned when a bet fails validation at deal time
var ErrInvalidBet = errors.New("invalid bet")

// ErrEmptyShoe is returned when the shoe runs out mid-round
// The round cannot continue and a new round must be started
var ErrEmptyShoe = errors.New("the shoe is empty")

// ErrWrongPhase is returned when a transition is attempted outside of its phase
var ErrWrongPhase = errors.New("not allowed in the current phase")

// ErrHandNotFound is returned when the hand ID is not at the table
var ErrHandNotFound = errors.New("hand not found")

// ErrDealerNotFinished is returned when settlement is attempted before the dealer is done
var ErrDealerNotFinished = errors.New("the dealer has not finished")

// ErrNoSeats is returned when a round is started without any seats
var ErrNoSeats = errors.New("at least one seat is required")

// ErrDuplicateSeat is returned when two seats share the same number
var ErrDuplicateSeat = errors.New("duplicate seats detected")

// InvalidBetError describes why a seat's bet was rejected
type InvalidBetError struct {
	Hand   HandID
	Bet    int
	Reason string
}

func (e *InvalidBetError) Error() string {
	return fmt.Sprintf("player %s: %s", e.Hand, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidBet)
func (e *InvalidBetError) Unwrap() error {
	return ErrInvalidBet
}

// IllegalActionError describes why an action was rejected
type IllegalActionError struct {
	Hand   HandID
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("player %s cannot %s: %s", e.Hand, e.Action, e.Reason)
}

// Unwrap allows errors.Is(err, ErrIllegalAction)
func (e *IllegalActionError) Unwrap() error {
	return ErrIllegalAction
}

// PhaseError is returned when a transition is attempted in the wrong phase
type PhaseError struct {
	Want Phase
	Got  Phase
}

func (e PhaseError) Error() string {
	return fmt.Sprintf("expected phase %s, got %s", e.Want, e.Got)
}

// Unwrap allows errors.Is(err, ErrWrongPhase)
func (e PhaseError) Unwrap() error {
	return ErrWrongPhase
}
