package blackjack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-trainer/pkg/deck"
)

func TestHandID(t *testing.T) {
	a := assert.New(t)

	a.Equal("2", HandID{Seat: 2}.String())
	a.Equal("2-split-1", HandID{Seat: 2, Split: 1}.String())

	id, err := ParseHandID("3-split-2")
	a.NoError(err)
	a.Equal(HandID{Seat: 3, Split: 2}, id)

	id, err = ParseHandID("4")
	a.NoError(err)
	a.Equal(HandID{Seat: 4}, id)

	_, err = ParseHandID("4-split")
	a.EqualError(err, `invalid hand id: "4-split"`)

	b, err := json.Marshal(map[string]HandID{"turn": {Seat: 1, Split: 1}})
	a.NoError(err)
	a.Equal(`{"turn":"1-split-1"}`, string(b))

	var decoded struct {
		Turn HandID `json:"turn"`
	}
	a.NoError(json.Unmarshal(b, &decoded))
	a.Equal(HandID{Seat: 1, Split: 1}, decoded.Turn)
}

func TestSeat_refresh(t *testing.T) {
	a := assert.New(t)

	seat := newSeat(SeatConfig{Seat: 1, Bet: 1000})
	a.Equal(PayoutThreeToTwo, seat.PayoutRule, "defaults to 3:2")

	seat.Hand = deck.CardsFromString("8c,8d")
	seat.refresh()
	a.Equal([]Action{ActionHit, ActionStand, ActionDoubleDown, ActionSplit, ActionSurrender}, seat.LegalActions())

	seat.Hand = deck.CardsFromString("8c,8d,2c")
	seat.refresh()
	a.Equal([]Action{ActionHit, ActionStand}, seat.LegalActions())

	seat.Hand = deck.CardsFromString("8c,8d,5c")
	seat.refresh()
	a.Equal([]Action{ActionStand}, seat.LegalActions(), "cannot hit on 21")

	seat.Hand = deck.CardsFromString("8c,8d,10c")
	seat.refresh()
	a.True(seat.IsBusted)
	a.Empty(seat.LegalActions())

	seat.Hand = deck.CardsFromString("8c,8d")
	seat.CanInsure = true
	seat.refresh()
	a.Equal([]Action{ActionAcceptInsurance, ActionDeclineInsurance}, seat.LegalActions(), "insurance blocks other actions")

	seat.finish()
	a.Empty(seat.LegalActions())
	a.False(seat.CanInsure)
}

func TestSeat_refresh_auto(t *testing.T) {
	seat := newSeat(SeatConfig{Seat: 1, Bet: 1000, IsAuto: true})
	seat.Hand = deck.CardsFromString("8c,8d")
	seat.refresh()
	assert.Empty(t, seat.LegalActions())
}

func TestSeat_clone(t *testing.T) {
	a := assert.New(t)

	seat := newSeat(SeatConfig{Seat: 1, Bet: 1000, SideBets: map[SideBet]int{SideBetPerfectPairs: 500, SideBetTwentyOnePlusThree: 0}})
	a.Equal(map[SideBet]int{SideBetPerfectPairs: 500}, seat.SideBets, "zero stakes are dropped")

	seat.Hand = deck.CardsFromString("8c,8d")
	seat.SideBetOutcomes = map[SideBet]*SideBetOutcome{SideBetPerfectPairs: {Won: true, Stake: 500, Payout: 6000}}

	clone := seat.clone()
	clone.Hand.AddCard(deck.CardFromString("2c"))
	clone.SideBets[SideBetTwentyOnePlusThree] = 500
	clone.SideBetOutcomes[SideBetPerfectPairs].Payout = 0

	a.Len(seat.Hand, 2)
	a.Len(seat.SideBets, 1)
	a.Equal(6000, seat.SideBetOutcomes[SideBetPerfectPairs].Payout)
	a.Equal(6000, seat.SideBetNet())
}
