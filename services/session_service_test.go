package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rafaeldias/pos-backoffice/apperr"
	"github.com/rafaeldias/pos-backoffice/repository"
)

func TestSessionOpen(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	session, err := svc.Open(5)
	assert.NoError(t, err)
	assert.NotZero(t, session.ID)
	assert.Equal(t, uint(5), session.TableID)
	assert.Nil(t, session.ClosedAt)
}

func TestSessionOpenConflict(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	_, err := svc.Open(5)
	assert.NoError(t, err)

	_, err = svc.Open(5)
	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	sessions, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestSessionOpenAfterClose(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	session, err := svc.Open(5)
	assert.NoError(t, err)
	assert.NoError(t, svc.Close(session.ID))

	_, err = svc.Open(5)
	assert.NoError(t, err)
}

func TestSessionCloseNotFound(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	err := svc.Close(99)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSessionCloseTwice(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	session, err := svc.Open(5)
	assert.NoError(t, err)
	assert.NoError(t, svc.Close(session.ID))

	closed, err := store.Sessions().FindByID(session.ID)
	assert.NoError(t, err)
	firstClosedAt := *closed.ClosedAt

	err = svc.Close(session.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// closed_at keeps its first value
	again, err := store.Sessions().FindByID(session.ID)
	assert.NoError(t, err)
	assert.True(t, again.ClosedAt.Equal(firstClosedAt))
}

func TestSessionListOrdering(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	first, err := svc.Open(1)
	assert.NoError(t, err)
	_, err = svc.Open(2)
	assert.NoError(t, err)

	time.Sleep(time.Millisecond)
	assert.NoError(t, svc.Close(first.ID))

	sessions, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)

	// Open sessions list before closed ones
	assert.Nil(t, sessions[0].ClosedAt)
	assert.NotNil(t, sessions[1].ClosedAt)
}

func TestSessionStateIsOneWay(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	session, err := svc.Open(9)
	assert.NoError(t, err)
	assert.NoError(t, svc.Close(session.ID))

	// No operation reopens a closed session; a new occupancy is a new row.
	reopened, err := svc.Open(9)
	assert.NoError(t, err)
	assert.NotEqual(t, session.ID, reopened.ID)

	old, err := store.Sessions().FindByID(session.ID)
	assert.NoError(t, err)
	assert.True(t, old.IsClosed())
}
