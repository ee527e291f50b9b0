package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
)

// SessionRepository keeps checkout sessions in process memory. Sessions are
// cloned on the way in and out so callers never share a cart.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.CheckoutSession
}

// NewSessionRepository creates an empty SessionRepository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]domain.CheckoutSession)}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: checkout session '%s'", apperrors.ErrNotFound, sessionID)
	}
	clone := session.Clone()
	return &clone, nil
}

func (r *SessionRepository) SaveSession(ctx context.Context, session domain.CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.SessionID] = session.Clone()
	return nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return fmt.Errorf("%w: checkout session '%s'", apperrors.ErrNotFound, sessionID)
	}
	delete(r.sessions, sessionID)
	return nil
}
