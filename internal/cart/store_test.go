package cart

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersistence struct {
	mu      sync.Mutex
	saved   map[string][]Item
	saves   int
	loadErr error
	saveErr error
}

func newMemPersistence() *memPersistence {
	return &memPersistence{saved: map[string][]Item{}}
}

func (m *memPersistence) SaveCart(sessionID string, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	snapshot := make([]Item, len(items))
	copy(snapshot, items)
	m.saved[sessionID] = snapshot
	m.saves++
	return nil
}

func (m *memPersistence) LoadCart(sessionID string) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.saved[sessionID], nil
}

func (m *memPersistence) DeleteCart(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saved, sessionID)
	return nil
}

func restoredStore(t *testing.T) (*Store, *memPersistence) {
	t.Helper()
	p := newMemPersistence()
	s := NewStore("session-1", p)
	s.Restore()
	return s, p
}

func TestAddAndRemoveSequences(t *testing.T) {
	s, _ := restoredStore(t)

	s.Add(Item{Name: "Veg Momos", Price: "120"})
	s.Add(Item{Name: "Veg Momos", Price: "120"})
	s.Add(Item{Name: "Cold Coffee", Price: "89"})
	s.Remove("Veg Momos")

	assert.Equal(t, 1, s.QuantityOf("Veg Momos"))
	assert.Equal(t, 1, s.QuantityOf("Cold Coffee"))
	assert.Equal(t, 2, s.TotalItemCount())

	// Removing past zero drops the entry and then no-ops
	s.Remove("Veg Momos")
	s.Remove("Veg Momos")
	assert.Equal(t, 0, s.QuantityOf("Veg Momos"))
	assert.Len(t, s.Items(), 1)
}

func TestAddSameItemTwiceMergesLines(t *testing.T) {
	s, _ := restoredStore(t)

	s.Add(Item{Name: "Crunch Burger", Price: "149"})
	s.Add(Item{Name: "Crunch Burger", Price: "149"})

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s, p := restoredStore(t)

	before := p.saves
	s.Remove("Nothing")
	assert.Equal(t, before, p.saves)
	assert.Equal(t, 0, s.TotalItemCount())
}

func TestTotalPriceToleratesUnparseablePrices(t *testing.T) {
	s, _ := restoredStore(t)

	s.Add(Item{Name: "Veg Momos", Price: "₹120"})
	s.Add(Item{Name: "Veg Momos", Price: "₹120"})
	s.Add(Item{Name: "Mystery Dish", Price: "market price"})

	assert.Equal(t, 240.0, s.TotalPrice())
}

func TestMutationsBeforeRestoreDoNotPersist(t *testing.T) {
	p := newMemPersistence()
	p.saved["session-1"] = []Item{{Name: "Cold Coffee", Price: "89", Quantity: 1}}

	s := NewStore("session-1", p)
	s.Add(Item{Name: "Veg Momos", Price: "120"})

	// The pre-restore mutation applied in memory but the persisted cart
	// was not overwritten.
	assert.Equal(t, 1, s.QuantityOf("Veg Momos"))
	assert.Equal(t, 0, p.saves)
	assert.Len(t, p.saved["session-1"], 1)
}

func TestRestoreLoadsPersistedSnapshot(t *testing.T) {
	p := newMemPersistence()
	p.saved["session-1"] = []Item{{Name: "Cold Coffee", Price: "89", Quantity: 2}}

	s := NewStore("session-1", p)
	s.Restore()

	assert.Equal(t, 2, s.QuantityOf("Cold Coffee"))
	assert.Equal(t, 178.0, s.TotalPrice())
}

func TestRestoreFailureStartsEmpty(t *testing.T) {
	p := newMemPersistence()
	p.loadErr = errors.New("corrupt snapshot")

	s := NewStore("session-1", p)
	s.Restore()
	assert.Equal(t, 0, s.TotalItemCount())

	// The store is still writable and persists once restored.
	p.loadErr = nil
	s.Add(Item{Name: "Veg Momos", Price: "120"})
	assert.Equal(t, 1, p.saves)
}

func TestClearEmptiesCartAndPersists(t *testing.T) {
	s, p := restoredStore(t)

	s.Add(Item{Name: "Veg Momos", Price: "120"})
	s.Add(Item{Name: "Cold Coffee", Price: "89"})
	s.Clear()

	assert.Equal(t, 0, s.TotalItemCount())
	assert.Empty(t, p.saved["session-1"])
}

func TestSaveFailureKeepsInMemoryCart(t *testing.T) {
	s, p := restoredStore(t)
	p.saveErr = errors.New("redis down")

	s.Add(Item{Name: "Veg Momos", Price: "120"})
	assert.Equal(t, 1, s.QuantityOf("Veg Momos"))
}
