package blackjack

import (
	"fmt"

	"blackjack-trainer/internal/rng"
	"blackjack-trainer/pkg/deck"
)

// Level is a training level. Some levels force the trainee's hand or the dealer's up-card.
type Level int

// Level constants
const (
	LevelBasic Level = iota + 1
	LevelDoubleDown
	LevelSplitting
	LevelInsurance
	LevelFullSimulation
	LevelSurrender
)

func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "Basic"
	case LevelDoubleDown:
		return "Double Down"
	case LevelSplitting:
		return "Splitting"
	case LevelInsurance:
		return "Insurance"
	case LevelFullSimulation:
		return "Full Simulation"
	case LevelSurrender:
		return "Surrender"
	}

	return fmt.Sprintf("Level %d", int(l))
}

// OffersInsurance returns true if insurance is offered when the dealer shows an ace
func (l Level) OffersInsurance() bool {
	return l >= LevelInsurance
}

// scenario is a forced deal for the trainee
type scenario struct {
	hand         []int
	dealerUpCard int
}

// two-card totals of 9, 10 and 11
var doubleDownHands = [][]int{
	{2, 7}, {3, 6}, {4, 5},
	{2, 8}, {3, 7}, {4, 6},
	{2, 9}, {3, 8}, {4, 7}, {5, 6},
}

var pairRanks = []int{2, 3, 4, 5, 6, 7, 8, 9, 10, deck.Jack, deck.Queen, deck.King, deck.Ace}

// hard 15 and 16 against a strong dealer up-card
var surrenderScenarios = []scenario{
	{hand: []int{10, 6}, dealerUpCard: 9},
	{hand: []int{9, 7}, dealerUpCard: 10},
	{hand: []int{10, 6}, dealerUpCard: deck.Ace},
	{hand: []int{10, 5}, dealerUpCard: 10},
	{hand: []int{9, 6}, dealerUpCard: 10},
}

func (l Level) scenario(gen rng.Generator) scenario {
	switch l {
	case LevelDoubleDown:
		return scenario{hand: doubleDownHands[gen.Intn(len(doubleDownHands))]}
	case LevelSplitting:
		rank := pairRanks[gen.Intn(len(pairRanks))]
		return scenario{hand: []int{rank, rank}}
	case LevelInsurance:
		return scenario{dealerUpCard: deck.Ace}
	case LevelSurrender:
		return surrenderScenarios[gen.Intn(len(surrenderScenarios))]
	}

	return scenario{}
}
