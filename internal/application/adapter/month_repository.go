// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// MonthRepository defines the interface for month persistence operations.
type MonthRepository interface {
	// GetOrCreate returns the user's row for (month, year), creating it when
	// absent. Concurrent creations of the same period must converge on a
	// single row.
	GetOrCreate(ctx context.Context, userID uuid.UUID, month, year int) (*entity.Month, error)

	// Find returns the user's row for (month, year), or nil when absent.
	Find(ctx context.Context, userID uuid.UUID, month, year int) (*entity.Month, error)

	// ListRecent returns up to limit months ordered newest first
	// (year desc, month desc).
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Month, error)

	// ListThrough returns every month up to and including (month, year),
	// ordered newest first.
	ListThrough(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Month, error)
}
