package blackjack

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"blackjack-trainer/internal/rng"
	"blackjack-trainer/pkg/chips"
	"blackjack-trainer/pkg/deck"
)

// Engine runs the rules of a round
// The engine holds no round state. Every transition takes a Round and returns a new one, or an
// error and no round at all.
type Engine struct {
	options Options
	gen     rng.Generator
	logger  logrus.FieldLogger

	// newShoe returns the shoe for a deal
	newShoe func() *deck.Deck
}

// NewEngine returns a new engine
func NewEngine(logger logrus.FieldLogger, opts Options, gen rng.Generator) (*Engine, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if gen == nil {
		return nil, errors.New("a random generator is required")
	}

	e := &Engine{
		options: opts,
		gen:     gen,
		logger:  logger,
	}

	e.newShoe = func() *deck.Deck {
		return deck.NewShuffled(e.gen)
	}

	return e, nil
}

// Options returns the rules the engine was created with
func (e *Engine) Options() Options {
	return e.options
}

// StartRound returns a round in the betting phase
func (e *Engine) StartRound(configs []SeatConfig) (*Round, error) {
	if len(configs) == 0 {
		return nil, ErrNoSeats
	}

	seen := make(map[int]bool, len(configs))
	for _, cfg := range configs {
		if seen[cfg.Seat] {
			return nil, ErrDuplicateSeat
		}

		seen[cfg.Seat] = true

		if cfg.PayoutRule != "" && !cfg.PayoutRule.Valid() {
			return nil, fmt.Errorf("seat %d: unknown payout rule: %s", cfg.Seat, cfg.PayoutRule)
		}

		for bet := range cfg.SideBets {
			if !bet.Valid() {
				return nil, fmt.Errorf("seat %d: unknown side bet: %s", cfg.Seat, bet)
			}
		}
	}

	r := &Round{
		Number:  1,
		Phase:   PhaseBetting,
		Seats:   []*Seat{},
		Dealer:  deck.Hand{},
		configs: make([]SeatConfig, len(configs)),
	}

	copy(r.configs, configs)
	return r, nil
}

// ValidateBet checks a seat's bet against the table limits
func (e *Engine) ValidateBet(cfg SeatConfig) error {
	var reason string
	switch {
	case cfg.Bet <= 0:
		reason = "Bet is required."
	case cfg.Bet%100 != 0:
		reason = "Must be a whole number."
	case cfg.Bet < e.options.MinBet:
		reason = fmt.Sprintf("Min bet is %s.", chips.FormatDollars(e.options.MinBet))
	case cfg.Bet > e.options.MaxBet:
		reason = fmt.Sprintf("Max bet is %s.", chips.FormatDollars(e.options.MaxBet))
	default:
		return nil
	}

	return &InvalidBetError{
		Hand:   HandID{Seat: cfg.Seat},
		Bet:    cfg.Bet,
		Reason: reason,
	}
}

// Deal deals the opening cards, resolves side bets and sets up insurance and the first turn
func (e *Engine) Deal(r *Round) (*Round, error) {
	if r.Phase != PhaseBetting {
		return nil, PhaseError{Want: PhaseBetting, Got: r.Phase}
	}

	for _, cfg := range r.configs {
		if cfg.IsAuto {
			continue
		}

		if err := e.ValidateBet(cfg); err != nil {
			return nil, err
		}
	}

	next := r.clone()
	next.Phase = PhaseDealing
	next.Shoe = e.newShoe()
	shoeHash := next.Shoe.HashCode()
	next.Seats = make([]*Seat, 0, len(next.configs))
	for _, cfg := range next.configs {
		next.Seats = append(next.Seats, newSeat(cfg))
	}

	if err := e.dealOpeningCards(next); err != nil {
		return nil, err
	}

	upCard := next.DealerUpCard()
	for _, seat := range next.Seats {
		if seat.IsAuto {
			continue
		}

		for bet, stake := range seat.SideBets {
			if seat.SideBetOutcomes == nil {
				seat.SideBetOutcomes = make(map[SideBet]*SideBetOutcome)
			}

			seat.SideBetOutcomes[bet] = resolveSideBet(bet, stake, seat.Hand, upCard)
		}
	}

	next.InsuranceOffered = upCard != nil && upCard.Rank == deck.Ace && e.options.Level.OffersInsurance()
	dealerBlackjack := next.DealerHasBlackjack()

	for _, seat := range next.Seats {
		seat.HasBlackjack = IsBlackjack(seat.Hand)
		seat.CanTakeEvenMoney = seat.HasBlackjack && next.InsuranceOffered && !seat.IsAuto
		seat.IsFinished = seat.IsAuto ||
			(seat.HasBlackjack && !seat.CanTakeEvenMoney) ||
			(dealerBlackjack && !next.InsuranceOffered && !seat.CanTakeEvenMoney)
		seat.CanInsure = next.InsuranceOffered && !seat.IsFinished && !seat.CanTakeEvenMoney
		seat.refresh()
	}

	next.setTurn(next.firstActor())

	e.logger.WithFields(logrus.Fields{
		"round":            next.Number,
		"shoe":             shoeHash,
		"dealer":           next.Dealer.String(),
		"insuranceOffered": next.InsuranceOffered,
		"level":            e.options.Level.String(),
	}).Debug("dealt round")

	return next, nil
}

// dealOpeningCards deals two cards to each seat and two to the dealer, the second face down
// A level scenario replaces the first trainee seat's cards and can force the dealer's up-card.
func (e *Engine) dealOpeningCards(r *Round) error {
	sc := e.options.Level.scenario(e.gen)
	reshuffle := false
	traineeForced := false

	for i, cfg := range r.configs {
		ranks := cfg.ForcedHand
		if len(ranks) == 0 && !cfg.IsAuto && !traineeForced && len(sc.hand) > 0 {
			ranks = sc.hand
			traineeForced = true
		}

		if len(ranks) == 0 {
			continue
		}

		if cards, ok := r.Shoe.Extract(ranks...); ok {
			r.Seats[i].Hand = deck.Hand(cards)
			reshuffle = true
		}
	}

	if reshuffle {
		r.Shoe.Shuffle(e.gen)
	}

	needed := 2
	for _, seat := range r.Seats {
		if len(seat.Hand) == 0 {
			needed += 2
		}
	}

	if !r.Shoe.CanDraw(needed) {
		return ErrEmptyShoe
	}

	for _, seat := range r.Seats {
		if len(seat.Hand) > 0 {
			continue
		}

		for j := 0; j < 2; j++ {
			card, err := r.Shoe.Draw()
			if err != nil {
				return ErrEmptyShoe
			}

			seat.Hand.AddCard(card)
		}
	}

	if sc.dealerUpCard > 0 {
		r.Shoe.Promote(sc.dealerUpCard)
	}

	up, err := r.Shoe.Draw()
	if err != nil {
		return ErrEmptyShoe
	}

	hole, err := r.Shoe.Draw()
	if err != nil {
		return ErrEmptyShoe
	}

	r.Dealer = deck.Hand{up, hole.Concealed()}
	return nil
}

// NextRound starts the betting phase of the following round with the given seats
func (e *Engine) NextRound(r *Round, configs []SeatConfig) (*Round, error) {
	if r.Phase != PhaseSettlement {
		return nil, PhaseError{Want: PhaseSettlement, Got: r.Phase}
	}

	next, err := e.StartRound(configs)
	if err != nil {
		return nil, err
	}

	next.Number = r.Number + 1
	return next, nil
}

// UpdateSeat replaces a seat's setup while bets are still open
func (e *Engine) UpdateSeat(r *Round, cfg SeatConfig) (*Round, error) {
	if r.Phase != PhaseBetting {
		return nil, PhaseError{Want: PhaseBetting, Got: r.Phase}
	}

	configs := r.Configs()
	found := false
	for i, existing := range configs {
		if existing.Seat == cfg.Seat {
			configs[i] = cfg
			found = true
			break
		}
	}

	if !found {
		return nil, ErrHandNotFound
	}

	next, err := e.StartRound(configs)
	if err != nil {
		return nil, err
	}

	next.Number = r.Number
	return next, nil
}
