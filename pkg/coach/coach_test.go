package coach

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"blackjack-trainer/pkg/playable/blackjack"
)

func view(decision blackjack.DecisionKind) *blackjack.AdvisorView {
	return &blackjack.AdvisorView{
		Round:    1,
		Hand:     blackjack.HandID{Seat: 2},
		Decision: decision,
	}
}

func TestHouseAdvisor(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	advice, err := HouseAdvisor{}.Advise(ctx, view(blackjack.DecisionInsurance))
	a.NoError(err)
	a.Equal(blackjack.ActionDeclineInsurance, advice.Action)

	advice, err = HouseAdvisor{}.Advise(ctx, view(blackjack.DecisionEvenMoney))
	a.NoError(err)
	a.Equal(blackjack.ActionDeclineEvenMoney, advice.Action)

	advice, err = HouseAdvisor{}.Advise(ctx, view(blackjack.DecisionPlay))
	a.Equal(ErrNoAdvice, err)
	a.Nil(advice)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = HouseAdvisor{}.Advise(cancelled, view(blackjack.DecisionInsurance))
	a.Equal(context.Canceled, err)
}

func TestCoach_Review(t *testing.T) {
	a := assert.New(t)
	c := New(logrus.StandardLogger(), HouseAdvisor{})
	ctx := context.Background()

	feedback, err := c.Review(ctx, view(blackjack.DecisionInsurance), blackjack.ActionAcceptInsurance)
	a.NoError(err)
	a.True(feedback.Graded)
	a.False(feedback.Correct)
	a.Equal(blackjack.ActionDeclineInsurance, feedback.Recommended)

	feedback, err = c.Review(ctx, view(blackjack.DecisionInsurance), blackjack.ActionDeclineInsurance)
	a.NoError(err)
	a.True(feedback.Correct, "insurance is graded every time")

	feedback, err = c.Review(ctx, view(blackjack.DecisionPlay), blackjack.ActionHit)
	a.NoError(err)
	a.False(feedback.Graded, "no play advice")

	a.Equal(Stats{Correct: 1, Incorrect: 1}, c.Stats())
	a.Equal(0.5, c.Stats().Accuracy())

	c.Reset()
	a.Equal(Stats{}, c.Stats())
	a.Equal(0.0, c.Stats().Accuracy())
}

func TestCoach_Review_playGradedOnce(t *testing.T) {
	a := assert.New(t)
	calls := 0
	advisor := AdvisorFunc(func(ctx context.Context, v *blackjack.AdvisorView) (*Advice, error) {
		calls++
		return &Advice{Action: blackjack.ActionStand, Explanation: "stand on 17"}, nil
	})

	c := New(logrus.StandardLogger(), advisor)
	ctx := context.Background()

	feedback, err := c.Review(ctx, view(blackjack.DecisionPlay), blackjack.ActionHit)
	a.NoError(err)
	a.True(feedback.Graded)
	a.Equal("stand on 17", feedback.Explanation)

	feedback, err = c.Review(ctx, view(blackjack.DecisionPlay), blackjack.ActionStand)
	a.NoError(err)
	a.False(feedback.Graded, "the hand was already graded")
	a.Equal(1, calls)

	next := view(blackjack.DecisionPlay)
	next.Round = 2
	feedback, err = c.Review(ctx, next, blackjack.ActionStand)
	a.NoError(err)
	a.True(feedback.Correct)

	a.Equal(Stats{Correct: 1, Incorrect: 1}, c.Stats())
}

func TestCoach_Review_advisorError(t *testing.T) {
	a := assert.New(t)
	boom := errors.New("boom")
	c := New(logrus.StandardLogger(), AdvisorFunc(func(ctx context.Context, v *blackjack.AdvisorView) (*Advice, error) {
		return nil, boom
	}))

	feedback, err := c.Review(context.Background(), view(blackjack.DecisionPlay), blackjack.ActionHit)
	a.Nil(feedback)
	a.True(errors.Is(err, boom))
	a.EqualError(err, "could not get advice: boom")
	a.Equal(Stats{}, c.Stats())
}

func TestCoach_Review_advisorErrorLeavesHandUngraded(t *testing.T) {
	a := assert.New(t)
	fail := true
	c := New(logrus.StandardLogger(), AdvisorFunc(func(ctx context.Context, v *blackjack.AdvisorView) (*Advice, error) {
		if fail {
			return nil, errors.New("boom")
		}

		return &Advice{Action: blackjack.ActionHit}, nil
	}))

	_, err := c.Review(context.Background(), view(blackjack.DecisionPlay), blackjack.ActionHit)
	a.Error(err)

	fail = false
	feedback, err := c.Review(context.Background(), view(blackjack.DecisionPlay), blackjack.ActionHit)
	a.NoError(err)
	a.True(feedback.Graded)
	a.Equal(Stats{Correct: 1}, c.Stats())
}

func TestCoach_Review_concurrentPlayGradedOnce(t *testing.T) {
	a := assert.New(t)
	var calls int32
	release := make(chan struct{})
	c := New(logrus.StandardLogger(), AdvisorFunc(func(ctx context.Context, v *blackjack.AdvisorView) (*Advice, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return &Advice{Action: blackjack.ActionStand}, nil
	}))

	var wg sync.WaitGroup
	var graded int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			feedback, err := c.Review(context.Background(), view(blackjack.DecisionPlay), blackjack.ActionStand)
			if assert.NoError(t, err) && feedback.Graded {
				atomic.AddInt32(&graded, 1)
			}
		}()
	}

	close(release)
	wg.Wait()

	a.Equal(int32(1), atomic.LoadInt32(&calls))
	a.Equal(int32(1), atomic.LoadInt32(&graded))
	a.Equal(Stats{Correct: 1}, c.Stats())
}
