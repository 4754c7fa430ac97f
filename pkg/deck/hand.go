package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// UpCard returns the first face-up card or nil
func (h Hand) UpCard() *Card {
	for _, c := range h {
		if !c.FaceDown {
			return c
		}
	}

	return nil
}

// HasFaceDown returns true while any card is still concealed
func (h Hand) HasFaceDown() bool {
	for _, c := range h {
		if c.FaceDown {
			return true
		}
	}

	return false
}

// Revealed returns a copy of the hand with every card face up
func (h Hand) Revealed() Hand {
	h2 := make(Hand, len(h))
	for i, c := range h {
		if c.FaceDown {
			h2[i] = c.Revealed()
		} else {
			h2[i] = c
		}
	}

	return h2
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
