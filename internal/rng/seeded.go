package rng

import (
	"math/rand"
	"sync"
)

type seeded struct {
	mutex sync.Mutex
	rand  *rand.Rand
}

// Seeded returns a reproducible generator that is safe for concurrent use
// This should only be used by tests and replays
func Seeded(seed int64) Generator {
	return &seeded{
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

func (s *seeded) Intn(n int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.rand.Intn(n)
}
