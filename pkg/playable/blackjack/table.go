package blackjack

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"blackjack-trainer/internal/rng"
	"blackjack-trainer/pkg/chips"
	"blackjack-trainer/pkg/playable"
)

// TableOptions are the options for a practice table
type TableOptions struct {
	Options

	Setup TableSetup

	// SideBets are the side bets a seat can toggle
	SideBets     []SideBet
	SideBetStake int
	TipAmount    int

	// DealerStepDelay is the wait between dealer steps
	DealerStepDelay time.Duration

	// NextRoundDelay is how long a settled round stays up, zero waits for a "nextRound" action
	NextRoundDelay time.Duration
}

// DefaultTableOptions returns the default table options
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Options:         DefaultOptions(),
		Setup:           DefaultTableSetup(),
		SideBets:        []SideBet{SideBetTwentyOnePlusThree, SideBetPerfectPairs},
		SideBetStake:    500,
		TipAmount:       100,
		DealerStepDelay: time.Second,
	}
}

var _ playable.Playable = (*Table)(nil)
var _ playable.Tickable = (*Table)(nil)

// Table runs rounds for connected clients
// A Table is not safe for concurrent use. The room dealer serializes access to it.
type Table struct {
	options TableOptions
	engine  *Engine
	gen     rng.Generator
	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	round     *Round
	settledAt time.Time
	now       func() time.Time
}

// NewTable returns a table in the betting phase of its first round
func NewTable(logger logrus.FieldLogger, opts TableOptions, gen rng.Generator) (*Table, error) {
	if err := opts.Setup.Validate(); err != nil {
		return nil, err
	}

	if opts.DealerStepDelay <= 0 {
		return nil, errors.New("dealer step delay must be positive")
	}

	for _, bet := range opts.SideBets {
		if !bet.Valid() {
			return nil, fmt.Errorf("unknown side bet: %s", bet)
		}
	}

	engine, err := NewEngine(logger, opts.Options, gen)
	if err != nil {
		return nil, err
	}

	round, err := engine.StartRound(NewTableSeats(gen, opts.Setup))
	if err != nil {
		return nil, err
	}

	return &Table{
		options: opts,
		engine:  engine,
		gen:     gen,
		logger:  logger,
		logChan: make(chan []*playable.LogMessage, 256),
		round:   round,
		now:     time.Now,
	}, nil
}

// Name returns the name of the game
func (t *Table) Name() string {
	return fmt.Sprintf("Blackjack (%s)", t.options.Level)
}

// Round returns the current round
func (t *Table) Round() *Round {
	return t.round
}

// LogChan returns a channel that log messages will be sent to
func (t *Table) LogChan() <-chan []*playable.LogMessage {
	return t.logChan
}

func (t *Table) sendLogMessages(msgs ...*playable.LogMessage) {
	if len(msgs) == 0 {
		return
	}

	select {
	case t.logChan <- msgs:
	default:
		t.logger.Warn("log channel is full, dropping messages")
	}
}

// Action performs a table or player action
// Subject is the action. Seat actions take a "seat" and player actions take a "hand".
func (t *Table) Action(message *playable.PayloadIn) (*playable.Response, bool, error) {
	switch message.Subject {
	case "deal":
		return t.deal(message)
	case "nextRound":
		if t.round.Phase != PhaseSettlement {
			return nil, false, PhaseError{Want: PhaseSettlement, Got: t.round.Phase}
		}

		if err := t.nextRound(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "bet", "sideBet", "tip":
		if err := t.updateSeat(message); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	}

	action, err := ActionFromString(message.Subject)
	if err != nil {
		return nil, false, err
	}

	handString, _ := message.AdditionalData.GetString("hand")
	id, err := ParseHandID(handString)
	if err != nil {
		return nil, false, err
	}

	next, err := t.engine.ApplyAction(t.round, id, action)
	if errors.Is(err, ErrEmptyShoe) {
		if voidErr := t.voidRound(); voidErr != nil {
			return nil, false, voidErr
		}

		return nil, true, err
	} else if err != nil {
		return nil, false, err
	}

	t.round = next
	t.sendLogMessages(t.actionLogMessage(id, action))
	return playable.OK(message.Context), true, nil
}

func (t *Table) deal(message *playable.PayloadIn) (*playable.Response, bool, error) {
	next, err := t.engine.Deal(t.round)
	if err != nil {
		return nil, false, err
	}

	t.round = next

	msgs := []*playable.LogMessage{playable.SimpleLogMessage("", "dealer shows %s", next.DealerUpCard())}
	for _, seat := range next.Seats {
		for _, bet := range []SideBet{SideBetPerfectPairs, SideBetTwentyOnePlusThree} {
			if outcome, ok := seat.SideBetOutcomes[bet]; ok && outcome.Won {
				msgs = append(msgs, playable.SimpleLogMessage(seat.ID.String(), "{} wins %s with a %s (%d:1)", bet, outcome.Name, outcome.Multiplier))
			}
		}
	}

	t.sendLogMessages(msgs...)
	return playable.OK(message.Context), true, nil
}

func (t *Table) actionLogMessage(id HandID, action Action) *playable.LogMessage {
	seat, ok := t.round.Seat(id)
	if !ok {
		return playable.SimpleLogMessage(id.String(), "{} %s", action)
	}

	msg := playable.SimpleLogMessage(id.String(), "{} %s (%d)", action, Value(seat.Hand))
	msg.Cards = seat.Hand
	return msg
}

func (t *Table) updateSeat(message *playable.PayloadIn) error {
	seatNumber, ok := message.AdditionalData.GetInt("seat")
	if !ok {
		return errors.New("seat is required")
	}

	var cfg *SeatConfig
	configs := t.round.Configs()
	for i := range configs {
		if configs[i].Seat == seatNumber {
			cfg = &configs[i]
			break
		}
	}

	if cfg == nil {
		return ErrHandNotFound
	}

	if cfg.IsAuto {
		return fmt.Errorf("seat %d is played automatically", seatNumber)
	}

	switch message.Subject {
	case "bet":
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			return errors.New("amount is required")
		}

		cfg.Bet = amount
	case "sideBet":
		name, _ := message.AdditionalData.GetString("sideBet")
		bet := SideBet(name)
		if !t.sideBetAllowed(bet) {
			return fmt.Errorf("side bet is not available: %s", name)
		}

		cfg.SideBets = toggleSideBet(cfg.SideBets, bet, t.options.SideBetStake)
	case "tip":
		if cfg.Tip > 0 {
			cfg.Tip = 0
		} else {
			cfg.Tip = t.options.TipAmount
		}
	}

	next, err := t.engine.UpdateSeat(t.round, *cfg)
	if err != nil {
		return err
	}

	t.round = next
	return nil
}

func (t *Table) sideBetAllowed(bet SideBet) bool {
	for _, allowed := range t.options.SideBets {
		if allowed == bet {
			return true
		}
	}

	return false
}

func toggleSideBet(bets map[SideBet]int, bet SideBet, stake int) map[SideBet]int {
	next := make(map[SideBet]int, len(bets)+1)
	for k, v := range bets {
		next[k] = v
	}

	if next[bet] > 0 {
		delete(next, bet)
	} else {
		next[bet] = stake
	}

	return next
}

// nextRound generates new seats and opens betting
func (t *Table) nextRound() error {
	configs := NewTableSeats(t.gen, t.options.Setup)

	var next *Round
	var err error
	if t.round.Phase == PhaseSettlement {
		next, err = t.engine.NextRound(t.round, configs)
	} else {
		next, err = t.engine.StartRound(configs)
		if err == nil {
			next.Number = t.round.Number + 1
		}
	}

	if err != nil {
		return err
	}

	t.round = next
	t.sendLogMessages(playable.SimpleLogMessage("", "place your bets for round %d", next.Number))
	return nil
}

// voidRound abandons a round the shoe can no longer serve and opens betting on a fresh one
func (t *Table) voidRound() error {
	t.logger.WithFields(logrus.Fields{
		"round": t.round.Number,
		"phase": t.round.Phase.String(),
	}).Warn("shoe ran out, voiding round")

	t.sendLogMessages(playable.SimpleLogMessage("", "the shoe ran out, the round is void"))
	return t.nextRound()
}

// Delay is the wait between dealer steps
func (t *Table) Delay() time.Duration {
	return t.options.DealerStepDelay
}

// Tick plays the dealer one step at a time, settles the round, and opens the next one
func (t *Table) Tick() (bool, error) {
	switch t.round.Phase {
	case PhaseDealerTurn:
		if t.round.DealerFinished {
			return true, t.settle()
		}

		next, err := t.engine.AdvanceDealer(t.round)
		if err != nil {
			if errors.Is(err, ErrEmptyShoe) {
				if voidErr := t.voidRound(); voidErr != nil {
					return false, voidErr
				}

				return true, err
			}

			return false, err
		}

		t.round = next
		msg := playable.SimpleLogMessage("", "dealer has %d", Value(next.Dealer))
		msg.Cards = next.Dealer
		t.sendLogMessages(msg)
		return true, nil
	case PhaseSettlement:
		if t.options.NextRoundDelay > 0 && t.now().Sub(t.settledAt) >= t.options.NextRoundDelay {
			return true, t.nextRound()
		}
	}

	return false, nil
}

func (t *Table) settle() error {
	next, err := t.engine.Settle(t.round)
	if err != nil {
		return err
	}

	t.round = next
	t.settledAt = t.now()

	msgs := make([]*playable.LogMessage, 0, len(next.Seats))
	for _, seat := range next.Seats {
		msgs = append(msgs, playable.SimpleLogMessage(seat.ID.String(), "{} %s, net %s", seat.Outcome, chips.FormatDollars(seat.Net)))
	}

	t.sendLogMessages(msgs...)
	return nil
}

// TableState is the state sent to clients
type TableState struct {
	Name         string    `json:"name"`
	Level        Level     `json:"level"`
	MinBet       int       `json:"minBet"`
	MaxBet       int       `json:"maxBet"`
	SideBets     []SideBet `json:"sideBets"`
	SideBetStake int       `json:"sideBetStake"`
	Round        *Round    `json:"round"`
}

// GetState returns the current state of the table
func (t *Table) GetState() (*playable.Response, error) {
	return &playable.Response{
		Key:   "game",
		Value: "blackjack",
		Data: &TableState{
			Name:         t.Name(),
			Level:        t.options.Level,
			MinBet:       t.options.MinBet,
			MaxBet:       t.options.MaxBet,
			SideBets:     t.options.SideBets,
			SideBetStake: t.options.SideBetStake,
			Round:        t.round,
		},
	}, nil
}

// GetEndOfRoundDetails returns each hand's net result once the round is settled
func (t *Table) GetEndOfRoundDetails() (*playable.RoundOverDetails, bool) {
	if t.round.Phase != PhaseSettlement {
		return nil, false
	}

	adjustments := make(map[string]int, len(t.round.Seats))
	for _, seat := range t.round.Seats {
		adjustments[seat.ID.String()] = seat.Net
	}

	return &playable.RoundOverDetails{
		BalanceAdjustments: adjustments,
		Log:                t.round,
	}, true
}
