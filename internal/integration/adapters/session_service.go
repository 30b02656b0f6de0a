// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// revokedKeyPrefix namespaces the revocation entries the auth service
// writes. We only read them.
const revokedKeyPrefix = "session:revoked:"

// SessionClaims represents the claims carried by session tokens issued by
// the external auth service.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// sessionService implements the adapter.SessionService interface. Tokens
// are issued elsewhere; this service only verifies the shared-secret
// signature and checks the revocation list.
type sessionService struct {
	secret []byte
	redis  *redis.Client
}

// NewSessionService creates a new session service instance.
func NewSessionService(secret string, redisClient *redis.Client) adapter.SessionService {
	return &sessionService{
		secret: []byte(secret),
		redis:  redisClient,
	}
}

// Resolve validates the token and returns the session it carries.
func (s *sessionService) Resolve(ctx context.Context, token string) (*adapter.Session, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	revoked, err := s.isRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session revocation: %w", err)
	}
	if revoked {
		return nil, domainerror.ErrSessionRevoked
	}

	session := &adapter.Session{
		UserID: userID,
		Email:  claims.Email,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// parseJWT parses and validates a session token.
func (s *sessionService) parseJWT(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// isRevoked checks the revocation list. A token without a jti cannot have
// been revoked individually.
func (s *sessionService) isRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	_, err := s.redis.Get(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
