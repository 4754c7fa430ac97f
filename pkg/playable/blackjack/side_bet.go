package blackjack

import (
	"sort"

	"blackjack-trainer/pkg/deck"
)

// SideBet names an optional wager settled on the initial deal
type SideBet string

// SideBet constants
const (
	SideBetTwentyOnePlusThree SideBet = "21+3"
	SideBetPerfectPairs       SideBet = "perfectPairs"
)

// Valid returns true for the supported side bets
func (s SideBet) Valid() bool {
	return s == SideBetTwentyOnePlusThree || s == SideBetPerfectPairs
}

// PairType is a Perfect Pairs result
type PairType int

// PairType constants
const (
	MixedPair PairType = iota
	ColoredPair
	PerfectPair
)

func (p PairType) String() string {
	switch p {
	case PerfectPair:
		return "Perfect Pair"
	case ColoredPair:
		return "Colored Pair"
	case MixedPair:
		return "Mixed Pair"
	}

	panic("unknown pair type")
}

// Multiplier returns the payout multiple of the stake
func (p PairType) Multiplier() int {
	switch p {
	case PerfectPair:
		return 25
	case ColoredPair:
		return 12
	default:
		return 6
	}
}

// PokerHand is a 21+3 result
type PokerHand int

// PokerHand constants
const (
	Flush PokerHand = iota
	Straight
	ThreeOfAKind
	StraightFlush
)

func (p PokerHand) String() string {
	switch p {
	case StraightFlush:
		return "Straight Flush"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	}

	panic("unknown poker hand")
}

// Multiplier returns the payout multiple of the stake
func (p PokerHand) Multiplier() int {
	switch p {
	case StraightFlush:
		return 40
	case ThreeOfAKind:
		return 30
	case Straight:
		return 10
	default:
		return 5
	}
}

// PerfectPairs classifies the first two cards of a player's hand
func PerfectPairs(hand deck.Hand) (PairType, bool) {
	if len(hand) < 2 {
		return 0, false
	}

	a, b := hand[0], hand[1]
	if a.Rank != b.Rank {
		return 0, false
	}

	switch {
	case a.Suit == b.Suit:
		return PerfectPair, true
	case a.Suit.IsRed() == b.Suit.IsRed():
		return ColoredPair, true
	default:
		return MixedPair, true
	}
}

// TwentyOnePlusThree classifies the player's first two cards plus the dealer's up-card as a
// three-card poker hand. Precedence is straight flush, trips, straight, flush.
func TwentyOnePlusThree(hand deck.Hand, upCard *deck.Card) (PokerHand, bool) {
	if len(hand) < 2 || upCard == nil {
		return 0, false
	}

	cards := []*deck.Card{hand[0], hand[1], upCard}
	flush := cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit
	trips := cards[0].Rank == cards[1].Rank && cards[1].Rank == cards[2].Rank
	straight := isThreeCardStraight(cards)

	switch {
	case straight && flush:
		return StraightFlush, true
	case trips:
		return ThreeOfAKind, true
	case straight:
		return Straight, true
	case flush:
		return Flush, true
	}

	return 0, false
}

// isThreeCardStraight treats the ace as high or low (A-2-3 and Q-K-A both count)
func isThreeCardStraight(cards []*deck.Card) bool {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}

	sort.Ints(ranks)
	if ranks[0]+1 == ranks[1] && ranks[1]+1 == ranks[2] {
		return true
	}

	return ranks[0] == 2 && ranks[1] == 3 && ranks[2] == deck.Ace
}

// SideBetOutcome is the settled result of one side bet
// Payout is the net change in cents: stake times multiplier on a win, minus the stake otherwise.
type SideBetOutcome struct {
	Won        bool   `json:"won"`
	Name       string `json:"name,omitempty"`
	Multiplier int    `json:"multiplier,omitempty"`
	Stake      int    `json:"stake"`
	Payout     int    `json:"payout"`
}

// resolveSideBet settles a side bet against the initial cards
func resolveSideBet(bet SideBet, stake int, hand deck.Hand, upCard *deck.Card) *SideBetOutcome {
	outcome := &SideBetOutcome{
		Stake:  stake,
		Payout: -stake,
	}

	switch bet {
	case SideBetPerfectPairs:
		if pair, ok := PerfectPairs(hand); ok {
			outcome.Won = true
			outcome.Name = pair.String()
			outcome.Multiplier = pair.Multiplier()
		}
	case SideBetTwentyOnePlusThree:
		if pokerHand, ok := TwentyOnePlusThree(hand, upCard); ok {
			outcome.Won = true
			outcome.Name = pokerHand.String()
			outcome.Multiplier = pokerHand.Multiplier()
		}
	}

	if outcome.Won {
		outcome.Payout = stake * outcome.Multiplier
	}

	return outcome
}
