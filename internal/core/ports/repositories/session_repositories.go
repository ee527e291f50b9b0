package repositories

import (
	"context"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
)

// SessionReader defines read operations for checkout sessions
type SessionReader interface {
	// FindSessionByID returns a copy of the session or apperrors.ErrNotFound.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
}

// SessionWriter defines write operations for checkout sessions
type SessionWriter interface {
	// SaveSession inserts or replaces a session.
	SaveSession(ctx context.Context, session domain.CheckoutSession) error

	// DeleteSession removes a session; apperrors.ErrNotFound if it does not exist.
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionRepositoryFacade combines all session-related repository interfaces
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
