package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-trainer/pkg/deck"
)

func TestPerfectPairs(t *testing.T) {
	tests := []struct {
		cards string
		want  PairType
		ok    bool
	}{
		{"5h,5h", PerfectPair, true},
		{"5h,5d", ColoredPair, true},
		{"5c,5s", ColoredPair, true},
		{"5h,5s", MixedPair, true},
		{"5h,6h", 0, false},
		{"5h", 0, false},
	}

	for _, test := range tests {
		pair, ok := PerfectPairs(deck.CardsFromString(test.cards))
		assert.Equal(t, test.ok, ok, test.cards)
		assert.Equal(t, test.want, pair, test.cards)
	}

	a := assert.New(t)
	a.Equal(25, PerfectPair.Multiplier())
	a.Equal(12, ColoredPair.Multiplier())
	a.Equal(6, MixedPair.Multiplier())
	a.Equal("Colored Pair", ColoredPair.String())
}

func TestTwentyOnePlusThree(t *testing.T) {
	tests := []struct {
		cards string
		up    string
		want  PokerHand
		ok    bool
	}{
		{"7h,8h", "9h", StraightFlush, true},
		{"14h,2h", "3h", StraightFlush, true},
		{"7h,7d", "7s", ThreeOfAKind, true},
		{"2h,3d", "14c", Straight, true},
		{"12h,13d", "14c", Straight, true},
		{"2h,9h", "13h", Flush, true},
		{"2h,9d", "13h", 0, false},
		{"13h,14d", "2c", 0, false},
	}

	for _, test := range tests {
		hand, ok := TwentyOnePlusThree(deck.CardsFromString(test.cards), deck.CardFromString(test.up))
		assert.Equal(t, test.ok, ok, "%s + %s", test.cards, test.up)
		assert.Equal(t, test.want, hand, "%s + %s", test.cards, test.up)
	}

	_, ok := TwentyOnePlusThree(deck.CardsFromString("7h,8h"), nil)
	assert.False(t, ok)

	a := assert.New(t)
	a.Equal(40, StraightFlush.Multiplier())
	a.Equal(30, ThreeOfAKind.Multiplier())
	a.Equal(10, Straight.Multiplier())
	a.Equal(5, Flush.Multiplier())
}

func TestResolveSideBet(t *testing.T) {
	a := assert.New(t)

	outcome := resolveSideBet(SideBetPerfectPairs, 500, deck.CardsFromString("8c,8s"), deck.CardFromString("2d"))
	a.Equal(&SideBetOutcome{Won: true, Name: "Colored Pair", Multiplier: 12, Stake: 500, Payout: 6000}, outcome)

	outcome = resolveSideBet(SideBetTwentyOnePlusThree, 500, deck.CardsFromString("8c,9c"), deck.CardFromString("10c"))
	a.Equal(&SideBetOutcome{Won: true, Name: "Straight Flush", Multiplier: 40, Stake: 500, Payout: 20000}, outcome)

	outcome = resolveSideBet(SideBetTwentyOnePlusThree, 500, deck.CardsFromString("8c,13d"), deck.CardFromString("2c"))
	a.Equal(&SideBetOutcome{Stake: 500, Payout: -500}, outcome)
}
