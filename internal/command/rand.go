package command

import (
	"math/rand"
	"sync"
)

// lockedSource serializes access to a rand.Source. The gateway delivers
// events on separate goroutines, so the one seeded generator behind the
// eight ball is shared by concurrent invocations.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}
