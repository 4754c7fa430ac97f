package blackjack

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"blackjack-trainer/pkg/deck"
)

// HandID identifies a hand at the table
// Seat is the seat the hand was dealt to. Split is zero for the dealt hand and counts up for
// each hand split off of it.
type HandID struct {
	Seat  int
	Split int
}

func (h HandID) String() string {
	if h.Split == 0 {
		return strconv.Itoa(h.Seat)
	}

	return fmt.Sprintf("%d-split-%d", h.Seat, h.Split)
}

// MarshalText encodes the ID in its string form
func (h HandID) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes the ID from its string form
func (h *HandID) UnmarshalText(text []byte) error {
	id, err := ParseHandID(string(text))
	if err != nil {
		return err
	}

	*h = id
	return nil
}

var handIDRx = regexp.MustCompile(`^(\d+)(?:-split-(\d+))?\z`)

// ParseHandID parses a hand ID in the format of "2" or "2-split-1"
func ParseHandID(s string) (HandID, error) {
	match := handIDRx.FindStringSubmatch(s)
	if match == nil {
		return HandID{}, fmt.Errorf("invalid hand id: %q", s)
	}

	seat, _ := strconv.Atoi(match[1])
	split := 0
	if match[2] != "" {
		split, _ = strconv.Atoi(match[2])
	}

	return HandID{Seat: seat, Split: split}, nil
}

// SeatConfig is a seat's setup for the next deal
// Money amounts are in cents.
type SeatConfig struct {
	Seat       int             `json:"seat"`
	Bet        int             `json:"bet"`
	IsAuto     bool            `json:"isAuto"`
	PayoutRule PayoutRule      `json:"payoutRule"`
	SideBets   map[SideBet]int `json:"sideBets,omitempty"`
	Tip        int             `json:"tip,omitempty"`

	// ForcedHand is a list of ranks to deal to the seat, if they can be found in the shoe
	ForcedHand []int `json:"forcedHand,omitempty"`
}

// Seat is a hand at the table, either dealt or split from another hand
// The Can* flags are derived from the cards and the status flags after every change.
type Seat struct {
	ID         HandID     `json:"id"`
	Hand       deck.Hand  `json:"hand"`
	Bet        int        `json:"bet"`
	IsAuto     bool       `json:"isAuto"`
	PayoutRule PayoutRule `json:"payoutRule"`
	Tip        int        `json:"tip"`

	SideBets        map[SideBet]int             `json:"sideBets,omitempty"`
	SideBetOutcomes map[SideBet]*SideBetOutcome `json:"sideBetOutcomes,omitempty"`

	IsFinished        bool `json:"isFinished"`
	IsBusted          bool `json:"isBusted"`
	HasBlackjack      bool `json:"hasBlackjack"`
	HasSplit          bool `json:"hasSplit"`
	HasDoubledDown    bool `json:"hasDoubledDown"`
	HasSurrendered    bool `json:"hasSurrendered"`
	HasTakenEvenMoney bool `json:"hasTakenEvenMoney"`
	InsuranceStake    int  `json:"insuranceStake"`

	CanHit           bool `json:"canHit"`
	CanStand         bool `json:"canStand"`
	CanDoubleDown    bool `json:"canDoubleDown"`
	CanSplit         bool `json:"canSplit"`
	CanSurrender     bool `json:"canSurrender"`
	CanInsure        bool `json:"canInsure"`
	CanTakeEvenMoney bool `json:"canTakeEvenMoney"`

	// set by settlement
	Outcome         Outcome `json:"outcome,omitempty"`
	Payout          int     `json:"payout"`
	InsurancePayout int     `json:"insurancePayout"`
	Net             int     `json:"net"`
}

func newSeat(cfg SeatConfig) *Seat {
	seat := &Seat{
		ID:         HandID{Seat: cfg.Seat},
		Hand:       deck.Hand{},
		Bet:        cfg.Bet,
		IsAuto:     cfg.IsAuto,
		PayoutRule: cfg.PayoutRule,
		Tip:        cfg.Tip,
	}

	if seat.PayoutRule == "" {
		seat.PayoutRule = PayoutThreeToTwo
	}

	if len(cfg.SideBets) > 0 {
		seat.SideBets = make(map[SideBet]int, len(cfg.SideBets))
		for bet, stake := range cfg.SideBets {
			if stake > 0 {
				seat.SideBets[bet] = stake
			}
		}
	}

	return seat
}

// Details returns the value of the hand
func (s *Seat) Details() HandDetails {
	return Evaluate(s.Hand, false)
}

// hasPair returns true if the two cards are the same rank
func (s *Seat) hasPair() bool {
	return len(s.Hand) == 2 && s.Hand[0].Rank == s.Hand[1].Rank
}

// isLive returns true if the dealer's draws can still change the hand's outcome
func (s *Seat) isLive() bool {
	return !s.IsBusted && !s.HasSurrendered && !s.HasTakenEvenMoney && !s.HasBlackjack
}

// awaitingDecision returns true while an insurance or even money decision is pending
func (s *Seat) awaitingDecision() bool {
	return s.CanInsure || s.CanTakeEvenMoney
}

// finish closes the hand to further action
func (s *Seat) finish() {
	s.IsFinished = true
	s.CanInsure = false
	s.CanTakeEvenMoney = false
	s.refresh()
}

// refresh recomputes the capability flags
// A pending insurance or even money decision blocks every other action.
func (s *Seat) refresh() {
	s.IsBusted = IsBusted(s.Hand)
	s.CanHit = false
	s.CanStand = false
	s.CanDoubleDown = false
	s.CanSplit = false
	s.CanSurrender = false

	if s.IsAuto || s.IsFinished || s.awaitingDecision() {
		return
	}

	value := Value(s.Hand)
	untouched := len(s.Hand) == 2 && !s.HasSplit && !s.HasDoubledDown

	s.CanHit = !s.IsBusted && value < 21
	s.CanStand = !s.IsBusted
	s.CanDoubleDown = untouched
	s.CanSplit = untouched && s.hasPair()
	s.CanSurrender = untouched
}

// LegalActions returns the actions currently permitted on the hand
func (s *Seat) LegalActions() []Action {
	allowed := map[Action]bool{
		ActionHit:              s.CanHit,
		ActionStand:            s.CanStand,
		ActionDoubleDown:       s.CanDoubleDown,
		ActionSplit:            s.CanSplit,
		ActionSurrender:        s.CanSurrender,
		ActionAcceptInsurance:  s.CanInsure,
		ActionDeclineInsurance: s.CanInsure,
		ActionAcceptEvenMoney:  s.CanTakeEvenMoney,
		ActionDeclineEvenMoney: s.CanTakeEvenMoney,
	}

	actions := make([]Action, 0, len(Actions))
	for _, action := range Actions {
		if allowed[action] {
			actions = append(actions, action)
		}
	}

	return actions
}

// IsLegal returns true if the action is currently permitted
func (s *Seat) IsLegal(action Action) bool {
	for _, a := range s.LegalActions() {
		if a == action {
			return true
		}
	}

	return false
}

// SideBetNet returns the combined side bet result in cents
func (s *Seat) SideBetNet() int {
	net := 0
	for _, outcome := range s.SideBetOutcomes {
		net += outcome.Payout
	}

	return net
}

func (s *Seat) clone() *Seat {
	s2 := *s
	s2.Hand = s.Hand.Clone()

	if s.SideBets != nil {
		s2.SideBets = make(map[SideBet]int, len(s.SideBets))
		for k, v := range s.SideBets {
			s2.SideBets[k] = v
		}
	}

	if s.SideBetOutcomes != nil {
		s2.SideBetOutcomes = make(map[SideBet]*SideBetOutcome, len(s.SideBetOutcomes))
		for k, v := range s.SideBetOutcomes {
			o := *v
			s2.SideBetOutcomes[k] = &o
		}
	}

	return &s2
}

// MarshalJSON adds the hand value to the seat
func (s *Seat) MarshalJSON() ([]byte, error) {
	type plain Seat
	details := s.Details()

	return json.Marshal(struct {
		*plain
		Value  int  `json:"value"`
		IsSoft bool `json:"isSoft"`
	}{
		plain:  (*plain)(s),
		Value:  details.Value,
		IsSoft: details.IsSoft,
	})
}
