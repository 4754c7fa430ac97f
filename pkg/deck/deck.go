package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"blackjack-trainer/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a single 52-card deck used as the shoe for one round
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

// NewShuffled builds a fresh deck and shuffles it with the generator
func NewShuffled(gen rng.Generator) *Deck {
	d := New()
	d.Shuffle(gen)
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle applies a Fisher-Yates permutation to the remaining cards
func (d *Deck) Shuffle(gen rng.Generator) {
	cards := make([]*Card, len(d.Cards))
	copy(cards, d.Cards)

	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}

	d.Cards = cards
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Extract removes the first card of each requested rank, in order.
// Nothing is removed unless every rank can be satisfied.
func (d *Deck) Extract(ranks ...int) ([]*Card, bool) {
	taken := make(map[int]bool, len(ranks))
	extracted := make([]*Card, 0, len(ranks))

	for _, rank := range ranks {
		found := false
		for i, card := range d.Cards {
			if taken[i] || card.Rank != rank {
				continue
			}

			taken[i] = true
			extracted = append(extracted, card)
			found = true
			break
		}

		if !found {
			return nil, false
		}
	}

	remaining := make([]*Card, 0, len(d.Cards)-len(extracted))
	for i, card := range d.Cards {
		if !taken[i] {
			remaining = append(remaining, card)
		}
	}

	d.Cards = remaining
	return extracted, true
}

// Promote moves the first card of the rank to the top of the deck so it is drawn next
func (d *Deck) Promote(rank int) bool {
	for i, card := range d.Cards {
		if card.Rank != rank {
			continue
		}

		copy(d.Cards[1:i+1], d.Cards[:i])
		d.Cards[0] = card
		return true
	}

	return false
}

// Clone returns a copy of the deck that can be drawn from independently
func (d *Deck) Clone() *Deck {
	cards := make([]*Card, len(d.Cards))
	copy(cards, d.Cards)

	return &Deck{Cards: cards}
}
