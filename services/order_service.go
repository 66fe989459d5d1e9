package services

import (
	"github.com/rafaeldias/pos-backoffice/apperr"
	"github.com/rafaeldias/pos-backoffice/models"
	"github.com/rafaeldias/pos-backoffice/repository"
)

// OrderService creates orders against open sessions and reports per-session
// order lists and totals.
type OrderService struct {
	store repository.Store
}

func NewOrderService(store repository.Store) *OrderService {
	return &OrderService{store: store}
}

// Create places an order on an open session. The price is copied from the
// product at this moment and never changes afterward, so later catalog price
// updates do not rewrite past bills.
func (s *OrderService) Create(sessionID, productID uint, quantity int) error {
	if quantity <= 0 {
		return apperr.Validation("quantity must be a positive integer")
	}

	return s.store.Transaction(func(tx repository.Store) error {
		session, err := tx.Sessions().FindByID(sessionID)
		if err != nil {
			return apperr.Internal(err)
		}
		if session == nil {
			return apperr.NotFound("session not found")
		}
		if session.IsClosed() {
			return apperr.Conflict("session is closed")
		}

		product, err := tx.Products().FindByID(productID)
		if err != nil {
			return apperr.Internal(err)
		}
		if product == nil {
			return apperr.NotFound("product not found")
		}

		order := &models.Order{
			TableSessionID: sessionID,
			ProductID:      productID,
			Quantity:       quantity,
			Price:          product.Price,
		}
		if err := tx.Orders().Create(order); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}

// ListBySession returns the session's orders with product names, most recent
// first. An unknown session yields an empty list, matching the listing
// endpoints' no-failure contract.
func (s *OrderService) ListBySession(sessionID uint) ([]models.OrderDetail, error) {
	details, err := s.store.Orders().ListBySession(sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return details, nil
}

// Summarize totals the session's orders. A session with no orders summarizes
// to zeros, not an error.
func (s *OrderService) Summarize(sessionID uint) (models.OrderSummary, error) {
	summary, err := s.store.Orders().Summarize(sessionID)
	if err != nil {
		return models.OrderSummary{}, apperr.Internal(err)
	}
	return summary, nil
}
