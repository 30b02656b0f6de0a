// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Month identifies a (user, calendar month, calendar year) bucket under which
// income, expense and savings activity is recorded. Months are created lazily
// on first access to a period and never mutated afterwards.
type Month struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Month     int
	Year      int
	CreatedAt time.Time
}

// NewMonth creates a new Month entity.
func NewMonth(userID uuid.UUID, month, year int) *Month {
	return &Month{
		ID:        uuid.New(),
		UserID:    userID,
		Month:     month,
		Year:      year,
		CreatedAt: time.Now().UTC(),
	}
}

// Label returns the human-readable period label, e.g. "Jan 2025".
func (m *Month) Label() string {
	return fmt.Sprintf("%s %d", time.Month(m.Month).String()[:3], m.Year)
}

// PreviousPeriod returns the calendar period immediately preceding
// (month, year); January rolls over to December of the previous year.
func PreviousPeriod(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// ValidMonth reports whether month is a valid calendar month number.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}
