package repository

import (
	"sort"
	"time"

	"github.com/rafaeldias/pos-backoffice/models"
)

// MemoryStore is an in-memory Store used to test the services without a
// database. It is not safe for concurrent use.
type MemoryStore struct {
	sessions map[uint]*models.TableSession
	orders   map[uint]*models.Order
	products map[uint]*models.Product

	nextSessionID uint
	nextOrderID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uint]*models.TableSession),
		orders:   make(map[uint]*models.Order),
		products: make(map[uint]*models.Product),
	}
}

// AddProduct seeds the catalog, standing in for the external product service.
func (m *MemoryStore) AddProduct(product models.Product) {
	p := product
	m.products[p.ID] = &p
}

func (m *MemoryStore) Sessions() SessionStore { return (*memorySessionStore)(m) }
func (m *MemoryStore) Orders() OrderStore     { return (*memoryOrderStore)(m) }
func (m *MemoryStore) Products() ProductStore { return (*memoryProductStore)(m) }

// Transaction just runs fn against the same store; the fake has no
// rollback semantics and the service tests do not need them.
func (m *MemoryStore) Transaction(fn func(tx Store) error) error {
	return fn(m)
}

type memorySessionStore MemoryStore

func (m *memorySessionStore) Create(session *models.TableSession) error {
	m.nextSessionID++
	s := *session
	s.ID = m.nextSessionID
	m.sessions[s.ID] = &s
	session.ID = s.ID
	return nil
}

func (m *memorySessionStore) FindByID(id uint) (*models.TableSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (m *memorySessionStore) LatestByTable(tableID uint) (*models.TableSession, error) {
	var latest *models.TableSession
	for _, s := range m.sessions {
		if s.TableID != tableID {
			continue
		}
		if latest == nil || s.OpenedAt.After(latest.OpenedAt) ||
			(s.OpenedAt.Equal(latest.OpenedAt) && s.ID > latest.ID) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (m *memorySessionStore) List() ([]models.TableSession, error) {
	sessions := make([]models.TableSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, *s)
	}
	// Same convention as the gorm store: open first, then closed ascending.
	sort.Slice(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		switch {
		case a.ClosedAt == nil && b.ClosedAt != nil:
			return true
		case a.ClosedAt != nil && b.ClosedAt == nil:
			return false
		case a.ClosedAt == nil && b.ClosedAt == nil:
			return a.ID < b.ID
		default:
			return a.ClosedAt.Before(*b.ClosedAt)
		}
	})
	return sessions, nil
}

func (m *memorySessionStore) Close(id uint, at time.Time) error {
	if session, ok := m.sessions[id]; ok {
		t := at
		session.ClosedAt = &t
	}
	return nil
}

type memoryOrderStore MemoryStore

func (m *memoryOrderStore) Create(order *models.Order) error {
	m.nextOrderID++
	o := *order
	o.ID = m.nextOrderID
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}
	m.orders[o.ID] = &o
	order.ID = o.ID
	return nil
}

func (m *memoryOrderStore) ListBySession(sessionID uint) ([]models.OrderDetail, error) {
	details := make([]models.OrderDetail, 0)
	for _, o := range m.orders {
		if o.TableSessionID != sessionID {
			continue
		}
		name := ""
		if p, ok := m.products[o.ProductID]; ok {
			name = p.Name
		}
		details = append(details, models.OrderDetail{
			ID:             o.ID,
			TableSessionID: o.TableSessionID,
			ProductID:      o.ProductID,
			ProductName:    name,
			Price:          o.Price,
			Quantity:       o.Quantity,
			Total:          o.Price * float64(o.Quantity),
			CreatedAt:      o.CreatedAt,
			UpdatedAt:      o.UpdatedAt,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		a, b := details[i], details[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return details, nil
}

func (m *memoryOrderStore) Summarize(sessionID uint) (models.OrderSummary, error) {
	var summary models.OrderSummary
	for _, o := range m.orders {
		if o.TableSessionID != sessionID {
			continue
		}
		summary.Total += o.Price * float64(o.Quantity)
		summary.Quantity += o.Quantity
	}
	return summary, nil
}

type memoryProductStore MemoryStore

func (m *memoryProductStore) FindByID(id uint) (*models.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}
