// Package cart implements the session-local cart: an ordered list of
// lines keyed by item name, persisted as a whole snapshot after every
// mutation.
package cart

import (
	"log"
	"sync"

	"super_crunch/internal/pricing"
)

// Item is one cart line. Price keeps the raw display value from the
// catalog (possibly symbol-decorated); it is parsed only when totals are
// computed.
type Item struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// Persistence stores full cart snapshots per session. The redis client
// implements it in production; tests supply in-memory fakes.
type Persistence interface {
	SaveCart(sessionID string, items []Item) error
	LoadCart(sessionID string) ([]Item, error)
	DeleteCart(sessionID string) error
}

// Store owns the cart of a single session. Mutations are applied in call
// order and each one saves the full snapshot, but only once a restore
// attempt has run — an unrestored store must never overwrite a persisted
// cart with an empty one.
type Store struct {
	mu          sync.Mutex
	sessionID   string
	persistence Persistence
	items       []Item
	restored    bool
}

func NewStore(sessionID string, persistence Persistence) *Store {
	return &Store{sessionID: sessionID, persistence: persistence}
}

// Restore loads the persisted snapshot for this session. Missing or
// unparseable data counts as "no prior cart": the store starts empty and
// becomes writable either way.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persistence != nil {
		items, err := s.persistence.LoadCart(s.sessionID)
		if err != nil {
			log.Printf("cart restore failed for session %s, starting empty: %v", s.sessionID, err)
		} else {
			s.items = items
		}
	}
	s.restored = true
}

// Add inserts item with quantity 1, or bumps the existing line by 1 when
// the name is already in the cart. It never fails.
func (s *Store) Add(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Name == item.Name {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, Item{Name: item.Name, Price: item.Price, Quantity: 1})
	s.persist()
}

// Remove decrements the named line by 1, dropping it entirely at quantity
// 1. Removing an absent name is a no-op.
func (s *Store) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Name != name {
			continue
		}
		if s.items[i].Quantity > 1 {
			s.items[i].Quantity--
		} else {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		s.persist()
		return
	}
}

// QuantityOf returns 0 for names not in the cart.
func (s *Store) QuantityOf(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Name == name {
			return s.items[i].Quantity
		}
	}
	return 0
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.items {
		count += s.items[i].Quantity
	}
	return count
}

// TotalPrice sums unit price times quantity over the cart. Lines whose
// price does not parse contribute 0.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Subtotal(s.items)
}

// Subtotal computes the total of a list of cart lines without needing a
// Store around them.
func Subtotal(items []Item) float64 {
	total := 0.0
	for i := range items {
		total += pricing.LineTotal(pricing.Parse(items[i].Price), items[i].Quantity)
	}
	return total
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// persist saves the full snapshot. Callers must hold s.mu. Save failures
// are logged and swallowed: the in-memory cart stays authoritative for the
// session.
func (s *Store) persist() {
	if !s.restored || s.persistence == nil {
		return
	}
	if err := s.persistence.SaveCart(s.sessionID, s.items); err != nil {
		log.Printf("failed to persist cart for session %s: %v", s.sessionID, err)
	}
}
