package services

import (
	"time"

	"github.com/rafaeldias/pos-backoffice/apperr"
	"github.com/rafaeldias/pos-backoffice/models"
	"github.com/rafaeldias/pos-backoffice/repository"
)

// SessionService owns the table-session lifecycle: OPEN on creation, a single
// one-way transition to CLOSED, no reopening.
type SessionService struct {
	store repository.Store
}

func NewSessionService(store repository.Store) *SessionService {
	return &SessionService{store: store}
}

// Open starts a session for a table. Fails with a conflict if the table's
// most recent session is still open. The check and the insert run in one
// transaction so two concurrent opens cannot both slip through.
func (s *SessionService) Open(tableID uint) (*models.TableSession, error) {
	var session *models.TableSession
	err := s.store.Transaction(func(tx repository.Store) error {
		latest, err := tx.Sessions().LatestByTable(tableID)
		if err != nil {
			return apperr.Internal(err)
		}
		if latest != nil && !latest.IsClosed() {
			return apperr.Conflict("session already open for this table")
		}

		created := &models.TableSession{
			TableID:  tableID,
			OpenedAt: time.Now(),
		}
		if err := tx.Sessions().Create(created); err != nil {
			return apperr.Internal(err)
		}
		session = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// List returns every session, open ones first, then closed ones in closing
// order.
func (s *SessionService) List() ([]models.TableSession, error) {
	sessions, err := s.store.Sessions().List()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return sessions, nil
}

// Close ends the session with the given id. Closing an unknown session is a
// not-found error; closing twice is a conflict and leaves the original
// closed_at untouched.
func (s *SessionService) Close(id uint) error {
	return s.store.Transaction(func(tx repository.Store) error {
		session, err := tx.Sessions().FindByID(id)
		if err != nil {
			return apperr.Internal(err)
		}
		if session == nil {
			return apperr.NotFound("session not found")
		}
		if session.IsClosed() {
			return apperr.Conflict("session already closed")
		}

		if err := tx.Sessions().Close(id, time.Now()); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}
