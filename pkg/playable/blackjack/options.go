package blackjack

import (
	"errors"
	"fmt"
)

// PayoutRule is how a natural blackjack is paid for a seat
type PayoutRule string

// PayoutRule constants
const (
	PayoutThreeToTwo PayoutRule = "3:2"
	PayoutSixToFive  PayoutRule = "6:5"
)

// Valid returns true for the supported rules
func (p PayoutRule) Valid() bool {
	return p == PayoutThreeToTwo || p == PayoutSixToFive
}

// blackjackPayout returns the winnings on a natural, rounded down to the cent
func (p PayoutRule) blackjackPayout(bet int) int {
	if p == PayoutSixToFive {
		return bet * 6 / 5
	}

	return bet * 3 / 2
}

// Options are the table rules used by the engine
// All money amounts are in cents
type Options struct {
	MinBet int
	MaxBet int
	Level  Level
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		MinBet: 500,   // $5
		MaxBet: 50000, // $500
		Level:  LevelFullSimulation,
	}
}

func (o Options) validate() error {
	if o.MinBet <= 0 {
		return errors.New("min bet must be > 0")
	}

	if o.MaxBet < o.MinBet {
		return fmt.Errorf("max bet %d is less than min bet %d", o.MaxBet, o.MinBet)
	}

	if o.Level < LevelBasic || o.Level > LevelSurrender {
		return fmt.Errorf("unknown level: %d", o.Level)
	}

	return nil
}
