package room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"blackjack-trainer/internal/rng"
	"blackjack-trainer/pkg/coach"
	"blackjack-trainer/pkg/playable"
	"blackjack-trainer/pkg/playable/blackjack"
)

func newTestDealer(t *testing.T) *Dealer {
	t.Helper()

	opts := blackjack.DefaultTableOptions()
	opts.DealerStepDelay = 10 * time.Millisecond

	table, err := blackjack.NewTable(logrus.StandardLogger(), opts, rng.Seeded(1))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return NewDealer(logrus.StandardLogger(), "abc", "Test Table", table, coach.New(logrus.StandardLogger(), coach.HouseAdvisor{}))
}

func nextResponse(t *testing.T, c *Client) *playable.Response {
	t.Helper()

	select {
	case msg := <-c.SendChan():
		res, ok := msg.(*playable.Response)
		if !assert.True(t, ok, "expected a response") {
			t.FailNow()
		}

		return res
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a message")
	}

	return nil
}

func humanSeat(t *testing.T, table *blackjack.Table) int {
	t.Helper()

	for _, cfg := range table.Round().Configs() {
		if !cfg.IsAuto {
			return cfg.Seat
		}
	}

	t.Fatal("no human seat")
	return 0
}

func TestDealer_AddClient(t *testing.T) {
	d := newTestDealer(t)
	c := NewClient(nil)
	c2 := NewClient(nil)

	d.AddClient(c)
	d.AddClient(c2)

	assert.Len(t, d.Clients(), 2)
	assert.Equal(t, "Test Table", d.Name)
	assert.Contains(t, c.String(), ":abc")

	assert.False(t, d.RemoveClient(c))
	assert.True(t, d.RemoveClient(c2))
}

func TestDealer_AddClient_sendsState(t *testing.T) {
	a := assert.New(t)

	d := newTestDealer(t)
	d.StartShift()
	defer d.EndShift()

	c := NewClient(nil)
	d.AddClient(c)

	res := nextResponse(t, c)
	a.Equal("game", res.Key)
	a.Equal("blackjack", res.Value)
	a.IsType(&blackjack.TableState{}, res.Data)
}

func TestDealer_ReceivedMessage(t *testing.T) {
	a := assert.New(t)

	d := newTestDealer(t)
	seat := humanSeat(t, d.table)
	d.StartShift()
	defer d.EndShift()

	c := NewClient(nil)
	d.AddClient(c)
	a.Equal("game", nextResponse(t, c).Key)

	c.ReceivedMessage(&playable.PayloadIn{
		Subject:        "tip",
		AdditionalData: playable.AdditionalData{"seat": float64(seat)},
		Context:        "ctx-1",
	})

	a.Equal(playable.OK("ctx-1"), nextResponse(t, c))
	a.Equal("game", nextResponse(t, c).Key)

	c.ReceivedMessage(&playable.PayloadIn{Subject: "fold", Context: "ctx-2"})
	res := nextResponse(t, c)
	a.Equal("error", res.Key)
	a.Equal("unknown action: fold", res.Value)
	a.Equal("ctx-2", res.Context)
}

func TestDealer_Do(t *testing.T) {
	a := assert.New(t)

	d := newTestDealer(t)
	d.StartShift()

	var phase blackjack.Phase
	err := d.Do(context.Background(), func(table *blackjack.Table) error {
		phase = table.Round().Phase
		return nil
	})
	a.NoError(err)
	a.Equal(blackjack.PhaseBetting, phase)

	err = d.Do(context.Background(), func(table *blackjack.Table) error {
		return blackjack.ErrHandNotFound
	})
	a.True(errors.Is(err, blackjack.ErrHandNotFound))

	d.EndShift()
	d.EndShift()

	err = d.Do(context.Background(), func(table *blackjack.Table) error {
		return nil
	})
	a.True(errors.Is(err, ErrShiftEnded))
}

func TestDealer_Do_canceled(t *testing.T) {
	d := newTestDealer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the run loop is not started, so nothing will pick up the work
	for i := 0; i < 256; i++ {
		d.execInRunLoop <- func() {}
	}

	err := d.Do(ctx, func(table *blackjack.Table) error {
		return nil
	})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDealer_addLogMessages(t *testing.T) {
	a := assert.New(t)

	d := newTestDealer(t)
	for i := 0; i < 30; i++ {
		d.addLogMessages(playable.SimpleLogMessageSlice("", "message %d", i))
	}

	a.Len(d.logMessages, logMessageLimit)
	a.Equal("message 5", d.logMessages[0].Message)
	a.Equal("message 29", d.logMessages[logMessageLimit-1].Message)
}

func TestDealer_Do_emptyShoeSendsState(t *testing.T) {
	a := assert.New(t)

	d := newTestDealer(t)
	d.StartShift()
	defer d.EndShift()

	c := NewClient(nil)
	d.AddClient(c)
	a.Equal("game", nextResponse(t, c).Key)

	err := d.Do(context.Background(), func(table *blackjack.Table) error {
		return blackjack.ErrHandNotFound
	})
	a.True(errors.Is(err, blackjack.ErrHandNotFound))

	err = d.Do(context.Background(), func(table *blackjack.Table) error {
		return blackjack.ErrEmptyShoe
	})
	a.True(errors.Is(err, blackjack.ErrEmptyShoe))

	// only the empty shoe failure pushes the voided round to clients
	res := nextResponse(t, c)
	a.Equal("game", res.Key)
	select {
	case msg := <-c.SendChan():
		t.Fatalf("unexpected message: %v", msg)
	default:
	}
}
