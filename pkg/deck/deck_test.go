package deck

import (
	"testing"

	"blackjack-trainer/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())

	assert.Equal(t, Card{Rank: 2, Suit: Hearts}, *deck.Cards[0])

	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])

	unshuffled := deck.HashCode()
	deck.Shuffle(rng.Seeded(1))
	assert.NotEqual(t, unshuffled, deck.HashCode())
	assert.Equal(t, 52, deck.CardsLeft())
}

func TestNewShuffled_unique(t *testing.T) {
	a := assert.New(t)

	d := NewShuffled(rng.Crypto{})
	seen := make(map[string]bool)
	for _, card := range d.Cards {
		key := CardToString(card)
		a.False(seen[key], "duplicate card %s", key)
		seen[key] = true
	}

	a.Equal(52, len(seen))
}

func TestNewShuffled_deterministic(t *testing.T) {
	a := assert.New(t)

	d1 := NewShuffled(rng.Seeded(42))
	d2 := NewShuffled(rng.Seeded(42))
	a.Equal(d1.HashCode(), d2.HashCode())

	// separate backing arrays
	d1.Cards[0] = nil
	a.NotNil(d2.Cards[0])
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}
}

func TestDeck_Extract(t *testing.T) {
	a := assert.New(t)

	d := &Deck{Cards: CardsFromString("2c,8h,3c,8s,4d")}
	cards, ok := d.Extract(8, 8)
	a.True(ok)
	a.Equal("8h,8s", CardsToString(cards))
	a.Equal("2c,3c,4d", CardsToString(d.Cards))

	cards, ok = d.Extract(2, 9)
	a.False(ok)
	a.Nil(cards)
	a.Equal("2c,3c,4d", CardsToString(d.Cards), "failed extraction leaves the deck alone")

	d = New()
	cards, ok = d.Extract(10, 6)
	a.True(ok)
	a.Equal(2, len(cards))
	a.Equal(50, d.CardsLeft())
	for _, c := range cards {
		for _, left := range d.Cards {
			a.False(left.Equal(c))
		}
	}
}

func TestDeck_Promote(t *testing.T) {
	a := assert.New(t)

	d := &Deck{Cards: CardsFromString("2c,3c,14d,4d,14s")}
	a.True(d.Promote(Ace))
	a.Equal("14d,2c,3c,4d,14s", CardsToString(d.Cards))

	a.False(d.Promote(King))
	a.Equal(5, d.CardsLeft())
}

func TestDeck_Clone(t *testing.T) {
	d := &Deck{Cards: CardsFromString("2c,3c,4c")}
	clone := d.Clone()
	_, _ = clone.Draw()

	assert.Equal(t, 3, d.CardsLeft())
	assert.Equal(t, 2, clone.CardsLeft())
}
