package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"blackjack-trainer/pkg/coach"
	"blackjack-trainer/pkg/playable"
	"blackjack-trainer/pkg/playable/blackjack"
)

// ErrShiftEnded is returned when work is sent to a dealer that has closed its table
var ErrShiftEnded = errors.New("the dealer has ended their shift")

// Dealer runs one table
// Every access to the table happens on the dealer's run loop.
type Dealer struct {
	UUID      string
	Name      string
	CreatedAt time.Time

	table  *blackjack.Table
	coach  *coach.Coach
	logger logrus.FieldLogger

	clients     map[*Client]bool
	lock        sync.RWMutex
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, uuid, name string, table *blackjack.Table, c *coach.Coach) *Dealer {
	return &Dealer{
		UUID:          uuid,
		Name:          name,
		CreatedAt:     time.Now(),
		table:         table,
		coach:         c,
		logger:        logger.WithFields(logrus.Fields{"uuid": uuid, "name": name}),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Coach returns the table's coach
func (d *Dealer) Coach() *coach.Coach {
	return d.coach
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")

	var game playable.Playable = d.table

	var tick <-chan time.Time
	tickable, isTickable := game.(playable.Tickable)
	if isTickable {
		ticker := time.NewTicker(tickable.Delay())
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-tick:
			update, err := tickable.Tick()
			if err != nil {
				d.logger.WithError(err).Error("could not advance the table")
			}

			if update {
				d.sendGameData()
			}
		case msgs := <-game.LogChan():
			d.addLogMessages(msgs)
			d.broadcast(newLogResponse(msgs))
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// Do runs fn on the run loop and waits for it to finish
// A state update is sent to every client if fn succeeds.
func (d *Dealer) Do(ctx context.Context, fn func(table *blackjack.Table) error) error {
	errCh := make(chan error, 1)
	work := func() {
		err := fn(d.table)
		if err == nil || errors.Is(err, blackjack.ErrEmptyShoe) {
			d.sendGameData()
		}

		errCh <- err
	}

	select {
	case d.execInRunLoop <- work:
	case <-d.close:
		return ErrShiftEnded
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-errCh:
		return err
	case <-d.close:
		return ErrShiftEnded
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.exec(func() {
		if len(d.logMessages) > 0 {
			client.Send(newLogResponse(d.logMessages))
		}

		d.sendGameDataTo(client)
	})
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	defer d.lock.Unlock()

	delete(d.clients, client)
	return len(d.clients) == 0
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.exec(func() {
		response, updateState, err := d.table.Action(msg)
		if err != nil {
			d.logger.WithError(err).WithField("client", c.String()).Warn("could not perform action")
			c.Send(newErrorResponse(msg.Context, err))
			if updateState {
				d.sendGameData()
			}

			return
		}

		if response != nil {
			response.Context = msg.Context
			c.Send(response)
		}

		if updateState {
			d.sendGameData()
		}
	})
}

// exec queues fn on the run loop, fn is dropped if the shift has ended
func (d *Dealer) exec(fn func()) bool {
	select {
	case d.execInRunLoop <- fn:
		return true
	case <-d.close:
		return false
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		d.sendGameDataTo(client)
	}

	if details, isOver := d.table.GetEndOfRoundDetails(); isOver {
		d.logger.WithField("adjustments", details.BalanceAdjustments).Debug("round over")
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameDataTo(client *Client) {
	state, err := d.table.GetState()
	if err != nil {
		d.logger.WithError(err).Error("could not get table state")
		return
	}

	if !client.Send(state) {
		d.logger.WithField("client", client.String()).Warn("client is not keeping up")
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		client.Send(msg)
	}
}
