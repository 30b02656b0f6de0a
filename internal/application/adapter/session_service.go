package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session holds the identity carried by a validated session token.
type Session struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// SessionService validates session tokens issued by the external auth
// service.
type SessionService interface {
	// Resolve validates the token and returns the session it carries.
	// Returns domain auth errors when the token is invalid or revoked.
	Resolve(ctx context.Context, token string) (*Session, error)
}
