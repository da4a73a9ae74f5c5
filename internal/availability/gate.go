// Package availability maintains the ordering admission flag by polling
// the restaurant status source.
package availability

import (
	"context"
	"log"
	"sync"
	"time"
)

// Fetcher reads the current restaurant-open flag from its source.
type Fetcher func(ctx context.Context) (bool, error)

// Gate exposes a single boolean: may orders be accepted right now.
// It starts optimistic (open) and refreshes on a fixed interval. Fetch
// errors keep the last successfully fetched value; ordering stays the
// safer default when the status source is unreachable.
type Gate struct {
	mu       sync.RWMutex
	open     bool
	fetch    Fetcher
	interval time.Duration
}

func NewGate(fetch Fetcher, interval time.Duration) *Gate {
	return &Gate{open: true, fetch: fetch, interval: interval}
}

func (g *Gate) IsOpen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.open
}

// Run fetches once immediately, then on every tick until ctx is
// cancelled. The owner of the gate owns this loop's lifetime.
func (g *Gate) Run(ctx context.Context) {
	g.refresh(ctx)

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.refresh(ctx)
		}
	}
}

func (g *Gate) refresh(ctx context.Context) {
	open, err := g.fetch(ctx)
	if err != nil {
		// Retain the previous value. The initial value is open, so a
		// source that was never reachable fails open.
		log.Printf("availability check failed, keeping previous state: %v", err)
		return
	}

	g.mu.Lock()
	g.open = open
	g.mu.Unlock()
}
