package blackjack

import (
	"fmt"

	"blackjack-trainer/internal/rng"
)

// PayoutConfig picks the payout rule handed to each generated seat
type PayoutConfig string

// PayoutConfig constants
const (
	PayoutConfigThreeToTwo PayoutConfig = "3:2"
	PayoutConfigSixToFive  PayoutConfig = "6:5"
	PayoutConfigMixed      PayoutConfig = "mixed"
)

// MaxSeats is the most seats a practice table can have
const MaxSeats = 7

// TableSetup describes how practice seats are generated
type TableSetup struct {
	Seats        int
	PayoutConfig PayoutConfig
	MinBet       int
	MaxBet       int
}

// DefaultTableSetup returns four seats with $5 to $50 bets paid at 3:2
func DefaultTableSetup() TableSetup {
	return TableSetup{
		Seats:        4,
		PayoutConfig: PayoutConfigThreeToTwo,
		MinBet:       500,
		MaxBet:       5000,
	}
}

// Validate checks the setup
func (t TableSetup) Validate() error {
	if t.Seats < 1 {
		return fmt.Errorf("seats must be at least 1, got %d", t.Seats)
	} else if t.Seats > MaxSeats {
		return fmt.Errorf("seats must be at most %d, got %d", MaxSeats, t.Seats)
	}

	switch t.PayoutConfig {
	case PayoutConfigThreeToTwo, PayoutConfigSixToFive, PayoutConfigMixed:
	default:
		return fmt.Errorf("unknown payout config: %s", t.PayoutConfig)
	}

	if t.MinBet < 100 || t.MaxBet < t.MinBet {
		return fmt.Errorf("invalid bet range %d to %d", t.MinBet, t.MaxBet)
	}

	return nil
}

// NewTableSeats generates a practice table
// Seats are numbered from 1. One seat picked at random is played automatically.
// Bets are whole dollars. A mixed table pays 3:2 on 70% of seats.
func NewTableSeats(gen rng.Generator, setup TableSetup) []SeatConfig {
	auto := gen.Intn(setup.Seats)
	minDollars := setup.MinBet / 100
	maxDollars := setup.MaxBet / 100

	configs := make([]SeatConfig, setup.Seats)
	for i := range configs {
		rule := PayoutRule(setup.PayoutConfig)
		if setup.PayoutConfig == PayoutConfigMixed {
			rule = PayoutSixToFive
			if gen.Intn(10) < 7 {
				rule = PayoutThreeToTwo
			}
		}

		configs[i] = SeatConfig{
			Seat:       i + 1,
			Bet:        (gen.Intn(maxDollars-minDollars+1) + minDollars) * 100,
			IsAuto:     i == auto,
			PayoutRule: rule,
		}
	}

	return configs
}
