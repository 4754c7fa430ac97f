package blackjack

import "blackjack-trainer/pkg/deck"

// HandDetails is the total of a hand and whether an ace is still counted as 11
type HandDetails struct {
	Value  int  `json:"value"`
	IsSoft bool `json:"isSoft"`
}

// cardValue returns the blackjack value of a rank, aces count as 11
func cardValue(rank int) int {
	switch {
	case rank == deck.Ace:
		return 11
	case rank >= 10:
		return 10
	default:
		return rank
	}
}

// Evaluate totals a hand. Aces start at 11 and drop to 1, one at a time, while the hand is over 21.
// Face-down cards are skipped unless countFaceDown is set.
func Evaluate(hand deck.Hand, countFaceDown bool) HandDetails {
	value := 0
	softAces := 0
	for _, card := range hand {
		if card.FaceDown && !countFaceDown {
			continue
		}

		if card.Rank == deck.Ace {
			softAces++
		}

		value += cardValue(card.Rank)
	}

	for value > 21 && softAces > 0 {
		value -= 10
		softAces--
	}

	return HandDetails{
		Value:  value,
		IsSoft: softAces > 0,
	}
}

// Value returns the total of the face-up cards
func Value(hand deck.Hand) int {
	return Evaluate(hand, false).Value
}

// IsBlackjack returns true for a two-card 21, hole card included
// Only meaningful for an untouched hand; a split hand is never a blackjack.
func IsBlackjack(hand deck.Hand) bool {
	return len(hand) == 2 && Evaluate(hand, true).Value == 21
}

// IsBusted returns true if the face-up total is over 21
func IsBusted(hand deck.Hand) bool {
	return Value(hand) > 21
}
