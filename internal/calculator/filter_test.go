package calculator

import (
	"errors"
	"testing"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

func datedExpenses() []models.Expense {
	return []models.Expense{
		{ID: "1", Description: "Rent", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Description: "Dinner", Date: time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)},
		{ID: "3", Description: "Taxi", Date: time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)},
		{ID: "4", Description: "Lunch", Date: time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)},
		{ID: "5", Description: "Movies", Date: time.Date(2024, 4, 2, 21, 0, 0, 0, time.UTC)},
	}
}

func ids(expenses []models.Expense) []string {
	out := make([]string, len(expenses))
	for i, e := range expenses {
		out[i] = e.ID
	}
	return out
}

func TestFilterByDate(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []string
	}{
		{
			name:  "inclusive on both ends",
			start: date(2024, 3, 1),
			end:   date(2024, 3, 15),
			want:  []string{"1", "2", "3", "4"},
		},
		{
			name:  "single day returns only that day",
			start: date(2024, 3, 15),
			end:   date(2024, 3, 15),
			want:  []string{"3", "4"},
		},
		{
			name:  "time of day on bounds is ignored",
			start: time.Date(2024, 3, 14, 23, 59, 59, 0, time.UTC),
			end:   time.Date(2024, 3, 14, 0, 0, 1, 0, time.UTC),
			want:  []string{"2"},
		},
		{
			name:  "inverted range is empty",
			start: date(2024, 4, 30),
			end:   date(2024, 3, 1),
			want:  []string{},
		},
		{
			name:  "range outside all expenses",
			start: date(2023, 1, 1),
			end:   date(2023, 12, 31),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterByDate(datedExpenses(), DateRange{Start: tt.start, End: tt.end}))
			if len(got) != len(tt.want) {
				t.Fatalf("FilterByDate() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("FilterByDate()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterByDate_EmptyInput(t *testing.T) {
	got := FilterByDate(nil, DateRange{Start: date(2024, 1, 1), End: date(2024, 12, 31)})
	if got == nil || len(got) != 0 {
		t.Errorf("FilterByDate(nil) = %v, want empty slice", got)
	}
}

func TestParseDateRange(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

	t.Run("explicit bounds", func(t *testing.T) {
		r, err := ParseDateRange("2024-01-01", "2024-01-31", now)
		if err != nil {
			t.Fatalf("ParseDateRange error = %v", err)
		}
		if got := r.Start.Format(DateLayout); got != "2024-01-01" {
			t.Errorf("Start = %s, want 2024-01-01", got)
		}
		if got := r.End.Format(DateLayout); got != "2024-01-31" {
			t.Errorf("End = %s, want 2024-01-31", got)
		}
	})

	t.Run("missing bounds default to the last month", func(t *testing.T) {
		r, err := ParseDateRange("", "", now)
		if err != nil {
			t.Fatalf("ParseDateRange error = %v", err)
		}
		if got := r.Start.Format(DateLayout); got != "2024-04-20" {
			t.Errorf("Start = %s, want 2024-04-20", got)
		}
		if got := r.End.Format(DateLayout); got != "2024-05-20" {
			t.Errorf("End = %s, want 2024-05-20", got)
		}
	})

	t.Run("malformed bound", func(t *testing.T) {
		_, err := ParseDateRange("20/05/2024", "", now)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("error = %v, want ErrInvalidDate", err)
		}
	})
}
