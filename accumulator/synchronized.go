package accumulator

import "sync"

// Synchronized guards a Counter with a mutex so one instance can be shared
// between goroutines.
type Synchronized[N Number] struct {
	mu      sync.Mutex
	counter Counter[N]
}

func NewSynchronized[N Number]() *Synchronized[N] {
	return &Synchronized[N]{counter: *New[N]()}
}

func (s *Synchronized[N]) Count() N {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counter.Count()
}

func (s *Synchronized[N]) Val() N {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counter.Val()
}

func (s *Synchronized[N]) SetVal(val N) {
	s.mu.Lock()
	s.counter.SetVal(val)
	s.mu.Unlock()
}

func (s *Synchronized[N]) Increment() {
	s.mu.Lock()
	s.counter.Increment()
	s.mu.Unlock()
}

// Snapshot reads count and val as a consistent pair.
func (s *Synchronized[N]) Snapshot() State[N] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counter.Snapshot()
}
