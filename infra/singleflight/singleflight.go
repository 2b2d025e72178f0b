package singleflight

import "sync"

// Guard tracks customers with a statement request currently in flight so the
// same source fan-out is not issued twice concurrently.
type Guard struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func New() *Guard {
	return &Guard{
		inFlight: make(map[string]bool),
	}
}

// TryAcquire marks the customer as in flight. Returns false when a request
// for the same customer is already running.
func (g *Guard) TryAcquire(customerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[customerID] {
		return false
	}
	g.inFlight[customerID] = true
	return true
}

func (g *Guard) Release(customerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, customerID)
}
