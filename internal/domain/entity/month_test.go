package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		month int
		year  int
		want  string
	}{
		{1, 2025, "Jan 2025"},
		{9, 2024, "Sep 2024"},
		{12, 1999, "Dec 1999"},
	}

	for _, tt := range tests {
		m := &Month{ID: uuid.New(), Month: tt.month, Year: tt.year}
		if got := m.Label(); got != tt.want {
			t.Errorf("Label(%d, %d) = %q, want %q", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestPreviousPeriod(t *testing.T) {
	t.Run("mid-year steps back one month", func(t *testing.T) {
		month, year := PreviousPeriod(6, 2025)
		if month != 5 || year != 2025 {
			t.Errorf("PreviousPeriod(6, 2025) = (%d, %d), want (5, 2025)", month, year)
		}
	})

	t.Run("january rolls over to december", func(t *testing.T) {
		month, year := PreviousPeriod(1, 2025)
		if month != 12 || year != 2024 {
			t.Errorf("PreviousPeriod(1, 2025) = (%d, %d), want (12, 2024)", month, year)
		}
	})
}

func TestValidMonth(t *testing.T) {
	for _, valid := range []int{1, 6, 12} {
		if !ValidMonth(valid) {
			t.Errorf("ValidMonth(%d) = false, want true", valid)
		}
	}
	for _, invalid := range []int{0, 13, -1} {
		if ValidMonth(invalid) {
			t.Errorf("ValidMonth(%d) = true, want false", invalid)
		}
	}
}
