package services

import (
	"sync"

	"super_crunch/internal/cart"
	"super_crunch/internal/models"
	redisclient "super_crunch/internal/redis"

	"gorm.io/gorm"
)

var errCacheMissForTest = redisclient.ErrCacheMiss

type mockOrderRepo struct {
	mu        sync.Mutex
	orders    []models.Order
	createErr error
}

func (m *mockOrderRepo) Create(order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = uint(len(m.orders) + 1)
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderRepo) GetByID(id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].OrderNumber == orderNumber {
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) List(status string, limit, offset int) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if status != "" && status != "all" && m.orders[i].Status != status {
			continue
		}
		out = append(out, m.orders[i])
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(id uint, status string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type stubGate struct {
	open bool
}

func (g *stubGate) IsOpen() bool { return g.open }

type mockNotifier struct {
	mu       sync.Mutex
	notified []models.Order
	err      error
	ch       chan string
}

func (n *mockNotifier) NotifyOrder(order *models.Order) error {
	n.mu.Lock()
	n.notified = append(n.notified, *order)
	err := n.err
	n.mu.Unlock()
	if n.ch != nil {
		n.ch <- order.OrderNumber
	}
	return err
}

type memCartStore struct {
	mu    sync.Mutex
	saved map[string][]cart.Item
}

func newMemCartStore() *memCartStore {
	return &memCartStore{saved: map[string][]cart.Item{}}
}

func (m *memCartStore) SaveCart(sessionID string, items []cart.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]cart.Item, len(items))
	copy(snapshot, items)
	m.saved[sessionID] = snapshot
	return nil
}

func (m *memCartStore) LoadCart(sessionID string) ([]cart.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved[sessionID], nil
}

func (m *memCartStore) DeleteCart(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saved, sessionID)
	return nil
}

type mockStatusRepo struct {
	mu   sync.Mutex
	open bool
	err  error
	set  []bool
}

func (m *mockStatusRepo) Get() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return true, m.err
	}
	return m.open, nil
}

func (m *mockStatusRepo) Set(isOpen bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.open = isOpen
	m.set = append(m.set, isOpen)
	return nil
}

type mockDishRepo struct {
	mu      sync.Mutex
	dishes  []models.Dish
	err     error
	queries int
}

func (m *mockDishRepo) Create(dish *models.Dish) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	dish.ID = uint(len(m.dishes) + 1)
	m.dishes = append(m.dishes, *dish)
	return nil
}

func (m *mockDishRepo) GetByID(id uint) (*models.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.dishes {
		if m.dishes[i].ID == id {
			dish := m.dishes[i]
			return &dish, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDishRepo) GetVisible() ([]models.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries++
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Dish
	for _, d := range m.dishes {
		if d.IsVisible {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDishRepo) GetAll() ([]models.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Dish(nil), m.dishes...), nil
}

func (m *mockDishRepo) Update(dish *models.Dish) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.dishes {
		if m.dishes[i].ID == dish.ID {
			m.dishes[i] = *dish
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockDishRepo) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.dishes {
		if m.dishes[i].ID == id {
			m.dishes = append(m.dishes[:i], m.dishes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockCatalogCache struct {
	mu          sync.Mutex
	dishes      []models.Dish
	cached      bool
	getErr      error
	invalidated int
}

func (m *mockCatalogCache) GetCatalog() ([]models.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if !m.cached {
		return nil, errCacheMissForTest
	}
	return m.dishes, nil
}

func (m *mockCatalogCache) SetCatalog(dishes []models.Dish) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dishes = dishes
	m.cached = true
	return nil
}

func (m *mockCatalogCache) InvalidateCatalog() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dishes = nil
	m.cached = false
	m.invalidated++
	return nil
}
