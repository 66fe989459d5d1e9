// Package repository abstracts the relational store behind per-entity
// interfaces so the business rules in services can run against either the
// real database or an in-memory fake.
package repository

import (
	"time"

	"github.com/rafaeldias/pos-backoffice/models"
)

// SessionStore persists table sessions. Lookups return (nil, nil) when no
// row matches.
type SessionStore interface {
	Create(session *models.TableSession) error
	FindByID(id uint) (*models.TableSession, error)
	// LatestByTable returns the most recently opened session for a table.
	LatestByTable(tableID uint) (*models.TableSession, error)
	// List returns all sessions, open ones first, then closed ones in
	// ascending closed_at order.
	List() ([]models.TableSession, error)
	// Close stamps closed_at on the single session matching id.
	Close(id uint, at time.Time) error
}

type OrderStore interface {
	Create(order *models.Order) error
	// ListBySession returns the session's orders joined with the product
	// name, most recent first.
	ListBySession(sessionID uint) ([]models.OrderDetail, error)
	// Summarize totals a session's orders; zeros when it has none.
	Summarize(sessionID uint) (models.OrderSummary, error)
}

// ProductStore reads the externally-owned catalog.
type ProductStore interface {
	FindByID(id uint) (*models.Product, error)
}

// Store bundles the entity stores with a transaction boundary. Transaction
// runs fn against a Store whose writes commit atomically; every
// check-then-write sequence in the services goes through it.
type Store interface {
	Sessions() SessionStore
	Orders() OrderStore
	Products() ProductStore
	Transaction(fn func(tx Store) error) error
}
