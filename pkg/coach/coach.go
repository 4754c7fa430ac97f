// Package coach grades a trainee's decisions against an advisor
package coach

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"blackjack-trainer/pkg/playable/blackjack"
)

// Feedback is the result of reviewing one decision
// Graded is false when the advisor had no advice or the hand was already graded.
type Feedback struct {
	Hand        blackjack.HandID `json:"hand"`
	Action      blackjack.Action `json:"action"`
	Recommended blackjack.Action `json:"recommended"`
	Correct     bool             `json:"correct"`
	Graded      bool             `json:"graded"`
	Explanation string           `json:"explanation,omitempty"`
}

// Stats is the trainee's running tally
type Stats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Accuracy returns the share of correct decisions, or 0 if nothing was graded
func (s Stats) Accuracy() float64 {
	total := s.Correct + s.Incorrect
	if total == 0 {
		return 0
	}

	return float64(s.Correct) / float64(total)
}

// Coach reviews decisions and keeps stats
// A Coach is safe for concurrent use.
type Coach struct {
	advisor Advisor
	logger  logrus.FieldLogger
	timeout time.Duration

	mu     sync.Mutex
	stats  Stats
	graded map[string]bool
}

// New returns a coach backed by the advisor
func New(logger logrus.FieldLogger, advisor Advisor) *Coach {
	return &Coach{
		advisor: advisor,
		logger:  logger,
		timeout: 10 * time.Second,
		graded:  make(map[string]bool),
	}
}

// Advise asks the advisor about the view without grading anything
func (c *Coach) Advise(ctx context.Context, view *blackjack.AdvisorView) (*Advice, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.advisor.Advise(ctx, view)
}

// Review grades the action taken on the view
// Play decisions on a hand are graded only once per round. Insurance and even money are always graded.
func (c *Coach) Review(ctx context.Context, view *blackjack.AdvisorView, action blackjack.Action) (*Feedback, error) {
	feedback := &Feedback{
		Hand:   view.Hand,
		Action: action,
	}

	key := fmt.Sprintf("%d:%s", view.Round, view.Hand)
	play := view.Decision == blackjack.DecisionPlay
	if play && !c.reserve(key) {
		return feedback, nil
	}

	advice, err := c.Advise(ctx, view)
	if err != nil {
		if play {
			c.release(key)
		}

		if errors.Is(err, ErrNoAdvice) {
			return feedback, nil
		}

		return nil, fmt.Errorf("could not get advice: %w", err)
	}

	feedback.Graded = true
	feedback.Recommended = advice.Action
	feedback.Explanation = advice.Explanation
	feedback.Correct = advice.Action == action

	c.mu.Lock()
	if feedback.Correct {
		c.stats.Correct++
	} else {
		c.stats.Incorrect++
	}
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"round":       view.Round,
		"hand":        view.Hand.String(),
		"action":      action.String(),
		"recommended": advice.Action.String(),
	}).Debug("reviewed decision")

	return feedback, nil
}

// reserve marks the hand as graded, returns false if it already was
func (c *Coach) reserve(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.graded[key] {
		return false
	}

	c.graded[key] = true
	return true
}

func (c *Coach) release(key string) {
	c.mu.Lock()
	delete(c.graded, key)
	c.mu.Unlock()
}

// Stats returns the running tally
func (c *Coach) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

// Reset clears the tally
func (c *Coach) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats = Stats{}
	c.graded = make(map[string]bool)
}
