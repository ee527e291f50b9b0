package services

import (
	"context"
	"time"
)

// AuthSvc authenticates crew operators.
type AuthSvc interface {
	// Login checks the operator PIN and issues a signed access token.
	Login(ctx context.Context, operatorID string, pin string) (token string, expiresAt time.Time, err error)
}
