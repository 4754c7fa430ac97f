package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"os"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"blackjack-trainer/internal/rng"
	"blackjack-trainer/pkg/chips"
	"blackjack-trainer/pkg/coach"
	"blackjack-trainer/pkg/playable/blackjack"
)

var (
	level  = flag.Int("level", int(blackjack.LevelFullSimulation), "training level (1-6)")
	bet    = flag.Int("bet", 10, "bet per round in dollars")
	payout = flag.String("payout", string(blackjack.PayoutThreeToTwo), "blackjack payout (3:2 or 6:5)")
	seed   = flag.Int64("seed", 0, "shuffle seed for a reproducible session, 0 is random")
	rounds = flag.Int("rounds", 0, "number of rounds to play, 0 plays until you quit")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if !interactive {
		pterm.DisableStyling()
	}

	var gen rng.Generator = rng.Crypto{}
	if *seed != 0 {
		gen = rng.Seeded(*seed)
	}

	opts := blackjack.DefaultOptions()
	opts.Level = blackjack.Level(*level)

	engine, err := blackjack.NewEngine(logger, opts, gen)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	t := &trainer{
		engine: engine,
		coach:  coach.New(logger, coach.HouseAdvisor{}),
		prompt: newPrompt(bufio.NewReader(os.Stdin), interactive),
		seat: blackjack.SeatConfig{
			Seat:       1,
			Bet:        *bet * 100,
			PayoutRule: blackjack.PayoutRule(*payout),
		},
	}

	pterm.DefaultHeader.WithFullWidth().Println(pterm.Sprintf("Blackjack Trainer - %s", opts.Level))

	if err := t.run(context.Background(), *rounds); err != nil && !errors.Is(err, errQuit) {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	t.summary()
}

type trainer struct {
	engine  *blackjack.Engine
	coach   *coach.Coach
	prompt  *prompt
	seat    blackjack.SeatConfig
	balance int
	played  int
}

func (t *trainer) run(ctx context.Context, rounds int) error {
	for rounds == 0 || t.played < rounds {
		if err := t.playRound(ctx); err != nil {
			return err
		}

		t.played++
		if rounds == 0 {
			if ok, err := t.prompt.confirm("Deal another round?"); err != nil || !ok {
				return err
			}
		}
	}

	return nil
}

func (t *trainer) playRound(ctx context.Context) error {
	round, err := t.engine.StartRound([]blackjack.SeatConfig{t.seat})
	if err != nil {
		return err
	}

	round.Number = t.played + 1
	round, err = t.engine.Deal(round)
	if err != nil {
		return err
	}

	for round.Phase == blackjack.PhasePlayerTurns && round.Turn != nil {
		renderRound(round)

		id := *round.Turn
		view, err := round.AdvisorView(id)
		if err != nil {
			return err
		}

		action, err := t.prompt.action(id, view.LegalActions)
		if err != nil {
			return err
		}

		feedback, err := t.coach.Review(ctx, view, action)
		if err != nil {
			return err
		}

		renderFeedback(feedback)

		round, err = t.engine.ApplyAction(round, id, action)
		if err != nil {
			return err
		}
	}

	round, err = t.engine.PlayDealer(round)
	if err != nil {
		return err
	}

	round, err = t.engine.Settle(round)
	if err != nil {
		return err
	}

	renderRound(round)
	for _, seat := range round.Seats {
		t.balance += seat.Net
	}

	renderBalance(t.balance, chips.CalculateBreakdown(t.balance))
	return nil
}

func (t *trainer) summary() {
	stats := t.coach.Stats()
	pterm.Info.Printfln("Rounds played: %d", t.played)
	pterm.Info.Printfln("Balance: %s", chips.FormatDollars(t.balance))
	pterm.Info.Printfln("Graded decisions: %d correct, %d incorrect (%.0f%%)", stats.Correct, stats.Incorrect, stats.Accuracy()*100)
}
