package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafaeldias/pos-backoffice/models"
)

// GormStore implements Store on a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Sessions() SessionStore { return &gormSessionStore{db: s.db} }
func (s *GormStore) Orders() OrderStore     { return &gormOrderStore{db: s.db} }
func (s *GormStore) Products() ProductStore { return &gormProductStore{db: s.db} }

func (s *GormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

type gormSessionStore struct {
	db *gorm.DB
}

func (s *gormSessionStore) Create(session *models.TableSession) error {
	return s.db.Create(session).Error
}

func (s *gormSessionStore) FindByID(id uint) (*models.TableSession, error) {
	var session models.TableSession
	if err := s.db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *gormSessionStore) LatestByTable(tableID uint) (*models.TableSession, error) {
	var session models.TableSession
	err := s.db.
		Where("table_id = ?", tableID).
		Order("opened_at DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *gormSessionStore) List() ([]models.TableSession, error) {
	var sessions []models.TableSession
	// Explicit null handling: open sessions sort first regardless of the
	// dialect's default null ordering.
	err := s.db.
		Order("closed_at IS NOT NULL, closed_at").
		Find(&sessions).Error
	return sessions, err
}

func (s *gormSessionStore) Close(id uint, at time.Time) error {
	// Single-row mutation: the id filter must never be dropped, or this
	// would close every session in the restaurant.
	return s.db.
		Model(&models.TableSession{}).
		Where("id = ?", id).
		Update("closed_at", at).Error
}

type gormOrderStore struct {
	db *gorm.DB
}

func (s *gormOrderStore) Create(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *gormOrderStore) ListBySession(sessionID uint) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	err := s.db.
		Table("orders").
		Select(`orders.id,
			orders.table_session_id,
			orders.product_id,
			products.name AS product_name,
			orders.price,
			orders.quantity,
			orders.price * orders.quantity AS total,
			orders.created_at,
			orders.updated_at`).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.table_session_id = ?", sessionID).
		Order("orders.created_at DESC").
		Scan(&details).Error
	return details, err
}

func (s *gormOrderStore) Summarize(sessionID uint) (models.OrderSummary, error) {
	var summary models.OrderSummary
	err := s.db.
		Table("orders").
		Select(`COALESCE(SUM(price * quantity), 0) AS total,
			COALESCE(SUM(quantity), 0) AS quantity`).
		Where("table_session_id = ?", sessionID).
		Scan(&summary).Error
	return summary, err
}

type gormProductStore struct {
	db *gorm.DB
}

func (s *gormProductStore) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
