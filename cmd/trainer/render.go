package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"blackjack-trainer/pkg/chips"
	"blackjack-trainer/pkg/coach"
	"blackjack-trainer/pkg/deck"
	"blackjack-trainer/pkg/playable/blackjack"
)

// showCards renders face-down cards as ??
func showCards(hand deck.Hand) string {
	cards := make([]string, len(hand))
	for i, card := range hand {
		cards[i] = card.String()
	}

	return strings.Join(cards, " ")
}

func renderRound(round *blackjack.Round) {
	dealer := round.DealerDetails()
	pterm.DefaultSection.Printfln("Round %d: %s", round.Number, round.Phase)
	pterm.Printfln("Dealer: %s (%d)", showCards(round.Dealer), dealer.Value)

	data := pterm.TableData{{"Hand", "Cards", "Value", "Bet", "Result", "Net"}}
	for _, seat := range round.Seats {
		details := seat.Details()
		value := strconv.Itoa(details.Value)
		if details.IsSoft {
			value = "soft " + value
		}

		net := ""
		if seat.Outcome != "" {
			net = chips.FormatDollars(seat.Net)
		}

		data = append(data, []string{
			seat.ID.String(),
			showCards(seat.Hand),
			value,
			chips.FormatDollars(seat.Bet),
			string(seat.Outcome),
			net,
		})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	for _, seat := range round.Seats {
		for bet, outcome := range seat.SideBetOutcomes {
			if outcome.Won {
				pterm.Success.Printfln("%s won %s with %s (%d:1)", seat.ID, bet, outcome.Name, outcome.Multiplier)
			}
		}
	}
}

func renderFeedback(feedback *coach.Feedback) {
	if feedback == nil || !feedback.Graded {
		return
	}

	if feedback.Correct {
		pterm.Success.Printfln("Correct: %s", feedback.Explanation)
	} else {
		pterm.Warning.Printfln("The book says %s: %s", feedback.Recommended, feedback.Explanation)
	}
}

func renderBalance(balance int, stack chips.Breakdown) {
	pterm.Info.Printfln("Balance: %s", chips.FormatDollars(balance))
	if len(stack) == 0 {
		return
	}

	values := make([]int, 0, len(stack))
	for value := range stack {
		values = append(values, value)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	bars := make(pterm.Bars, len(values))
	for i, value := range values {
		bars[i] = pterm.Bar{Label: chips.FormatDollars(value), Value: stack[value]}
	}

	_ = pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().Render()
}
