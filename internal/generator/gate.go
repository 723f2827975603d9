package generator

import (
	"context"
	"sync"
	"time"
)

// Gate enforces a minimum delay between external generation calls. It is a
// serializing "don't call again until T" gate shared by every provider call
// in the process, there to respect the API's hard rate ceiling. A zero delay
// disables it entirely.
type Gate struct {
	mu    sync.Mutex
	delay time.Duration
	next  time.Time
}

// NewGate creates a gate with the given minimum inter-call delay.
func NewGate(delay time.Duration) *Gate {
	return &Gate{delay: delay}
}

// Wait blocks until the gate opens, then reserves the next slot. Returns the
// context's error if it is cancelled while waiting.
func (g *Gate) Wait(ctx context.Context) error {
	if g.delay <= 0 {
		return nil
	}

	g.mu.Lock()
	now := time.Now()
	wait := g.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	g.next = now.Add(wait + g.delay)
	g.mu.Unlock()

	if wait == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
