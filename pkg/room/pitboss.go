package room

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blackjack-trainer/internal/rng"
	"blackjack-trainer/internal/util"
	"blackjack-trainer/pkg/coach"
	"blackjack-trainer/pkg/playable/blackjack"
)

// ErrTableNotFound is returned when no dealer is running the requested table
var ErrTableNotFound = errors.New("table not found")

// PitBoss is responsible for opening tables and dispatching clients to them
type PitBoss struct {
	logger  logrus.FieldLogger
	options blackjack.TableOptions
	gen     rng.Generator
	advisor coach.Advisor

	dealers map[string]*Dealer
	lock    sync.RWMutex
}

// NewPitBoss returns a new dispatch object
// gen is shared by every table and must be safe for concurrent use
func NewPitBoss(logger logrus.FieldLogger, opts blackjack.TableOptions, gen rng.Generator, advisor coach.Advisor) *PitBoss {
	if advisor == nil {
		advisor = coach.HouseAdvisor{}
	}

	return &PitBoss{
		logger:  logger,
		options: opts,
		gen:     gen,
		advisor: advisor,
		dealers: make(map[string]*Dealer),
	}
}

// Options returns the options new tables open with
func (p *PitBoss) Options() blackjack.TableOptions {
	return p.options
}

// OpenTable starts a dealer on a new table
// Options that are nil use the pit boss defaults
func (p *PitBoss) OpenTable(opts *blackjack.TableOptions) (*Dealer, error) {
	tableOpts := p.options
	if opts != nil {
		tableOpts = *opts
	}

	id := uuid.New().String()
	name := util.RandomTableName(p.gen)
	logger := p.logger.WithField("table", id)

	table, err := blackjack.NewTable(logger, tableOpts, p.gen)
	if err != nil {
		return nil, err
	}

	dealer := NewDealer(logger, id, name, table, coach.New(logger, p.advisor))
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[id] = dealer
	p.lock.Unlock()

	logger.WithField("name", name).Info("opened table")
	return dealer, nil
}

// Dealer returns the dealer running the table
func (p *PitBoss) Dealer(id string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, found := p.dealers[id]
	if !found {
		return nil, ErrTableNotFound
	}

	return dealer, nil
}

// Tables returns the running dealers, oldest first
func (p *PitBoss) Tables() []*Dealer {
	p.lock.RLock()
	dealers := make([]*Dealer, 0, len(p.dealers))
	for _, dealer := range p.dealers {
		dealers = append(dealers, dealer)
	}
	p.lock.RUnlock()

	sort.Slice(dealers, func(i, j int) bool {
		if dealers[i].CreatedAt.Equal(dealers[j].CreatedAt) {
			return dealers[i].UUID < dealers[j].UUID
		}

		return dealers[i].CreatedAt.Before(dealers[j].CreatedAt)
	})

	return dealers
}

// CloseTable ends the dealer's shift and forgets the table
func (p *PitBoss) CloseTable(id string) error {
	p.lock.Lock()
	dealer, found := p.dealers[id]
	delete(p.dealers, id)
	p.lock.Unlock()

	if !found {
		return ErrTableNotFound
	}

	dealer.EndShift()
	p.logger.WithField("table", id).Info("closed table")
	return nil
}

// ClientConnected is called when a client connects to a table
func (p *PitBoss) ClientConnected(id string, client *Client) error {
	dealer, err := p.Dealer(id)
	if err != nil {
		return err
	}

	p.logger.WithField("client", client.String()).Debug("client connected")
	dealer.AddClient(client)
	return nil
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	if client.dealer == nil {
		return
	}

	p.logger.WithField("client", client.String()).Debug("client disconnected")
	client.dealer.RemoveClient(client)
}
