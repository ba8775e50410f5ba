package calculator

import (
	"testing"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Dinner with Bob", "dinner"},
		{"dinner at home", "dinner"},
		{"  Taxi   to airport", "taxi"},
		{"GROCERIES", "groceries"},
		{"Café downtown", "café"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := Category(tt.description); got != tt.want {
				t.Errorf("Category(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(date(2024, time.March, 9)); got != "3/2024" {
		t.Errorf("MonthKey = %s, want 3/2024", got)
	}
	if got := MonthKey(date(2023, time.December, 31)); got != "12/2023" {
		t.Errorf("MonthKey = %s, want 12/2023", got)
	}
}

func TestCategoryAndMonthlyTotals(t *testing.T) {
	expenses := []models.Expense{
		{Description: "Dinner with Bob", Date: date(2024, 3, 2), Amount: dec("40"), SplitType: models.SplitCustom,
			Participants: []models.Participant{{Name: "Alice", Share: dec("5")}}},
		{Description: "dinner at home", Date: date(2024, 3, 20), Amount: dec("15.50")},
		{Description: "Taxi", Date: date(2024, 4, 1), Amount: dec("22"), Participants: people("Alice", "Bob")},
	}

	categories := CategoryTotals(expenses)
	assertTotalsEqual(t, "categories", categories, totals{
		"dinner": "55.50",
		"taxi":   "22",
	}.decimals())

	months := MonthlyTotals(expenses)
	assertTotalsEqual(t, "months", months, totals{
		"3/2024": "55.50",
		"4/2024": "22",
	}.decimals())
}

func TestCalculateStats(t *testing.T) {
	expenses := []models.Expense{
		{Description: "Rent April", Date: date(2024, 4, 1), Amount: dec("900"), Status: models.StatusPaid,
			Participants: people("Alice", "Bob", "Charlie")},
		{Description: "Groceries", Date: date(2024, 4, 3), Amount: dec("60"), Status: models.StatusPending,
			Participants: []models.Participant{{Name: "Alice", HasPaid: true}, {Name: "Bob"}}},
		{Description: "Rent May", Date: date(2024, 5, 1), Amount: dec("900"), Status: models.StatusPending,
			Participants: people("Alice", "Bob", "Charlie")},
	}

	stats := CalculateStats(expenses)

	if stats.ExpenseCount != 3 {
		t.Errorf("ExpenseCount = %d, want 3", stats.ExpenseCount)
	}
	if !stats.TotalAmount.Equal(dec("1860")) {
		t.Errorf("TotalAmount = %s, want 1860", stats.TotalAmount)
	}
	if !stats.PaidAmount.Equal(dec("900")) {
		t.Errorf("PaidAmount = %s, want 900", stats.PaidAmount)
	}
	if !stats.PendingAmount.Equal(dec("960")) {
		t.Errorf("PendingAmount = %s, want 960", stats.PendingAmount)
	}
	if !stats.AverageAmount.Equal(dec("620")) {
		t.Errorf("AverageAmount = %s, want 620", stats.AverageAmount)
	}
	if !stats.Categories["rent"].Equal(dec("1800")) {
		t.Errorf("Categories[rent] = %s, want 1800", stats.Categories["rent"])
	}
	if len(stats.Months) != 2 {
		t.Errorf("Months = %v, want 2 entries", stats.Months)
	}

	alice, ok := stats.Participants.Get("Alice")
	if !ok {
		t.Fatal("missing Alice")
	}
	if alice.ExpenseCount != 3 {
		t.Errorf("Alice ExpenseCount = %d, want 3", alice.ExpenseCount)
	}
	if !alice.TotalPaid.Equal(dec("30")) || !alice.TotalOwed.Equal(dec("600")) {
		t.Errorf("Alice = paid %s owed %s, want paid 30 owed 600", alice.TotalPaid, alice.TotalOwed)
	}
}

func TestCalculateStats_Empty(t *testing.T) {
	stats := CalculateStats(nil)

	if !stats.TotalAmount.IsZero() || !stats.PaidAmount.IsZero() || !stats.PendingAmount.IsZero() || !stats.AverageAmount.IsZero() {
		t.Errorf("amounts = %s/%s/%s/%s, want all zero",
			stats.TotalAmount, stats.PaidAmount, stats.PendingAmount, stats.AverageAmount)
	}
	if len(stats.Categories) != 0 || len(stats.Months) != 0 {
		t.Errorf("breakdowns = %v / %v, want empty", stats.Categories, stats.Months)
	}
	if stats.Participants.Len() != 0 {
		t.Errorf("participants = %d, want 0", stats.Participants.Len())
	}
}

func TestCalculateStats_DegenerateExpenseStillCounted(t *testing.T) {
	expenses := []models.Expense{
		{Description: "Parking", Date: date(2024, 6, 1), Amount: dec("12")},
	}

	stats := CalculateStats(expenses)
	if !stats.Categories["parking"].Equal(dec("12")) {
		t.Errorf("Categories[parking] = %s, want 12", stats.Categories["parking"])
	}
	if !stats.Months["6/2024"].Equal(dec("12")) {
		t.Errorf("Months[6/2024] = %s, want 12", stats.Months["6/2024"])
	}
	if stats.Participants.Len() != 0 {
		t.Errorf("participants = %d, want 0", stats.Participants.Len())
	}
}

func TestSortedBreakdowns(t *testing.T) {
	months := SortedMonths(totals{
		"11/2023": "1",
		"2/2024":  "1",
		"10/2023": "1",
		"1/2024":  "1",
	}.decimals())
	wantMonths := []string{"10/2023", "11/2023", "1/2024", "2/2024"}
	for i, want := range wantMonths {
		if months[i].Key != want {
			t.Errorf("SortedMonths[%d] = %s, want %s", i, months[i].Key, want)
		}
	}

	categories := SortedCategories(totals{
		"taxi":   "10",
		"rent":   "900",
		"dinner": "10",
	}.decimals())
	wantCategories := []string{"rent", "dinner", "taxi"}
	for i, want := range wantCategories {
		if categories[i].Key != want {
			t.Errorf("SortedCategories[%d] = %s, want %s", i, categories[i].Key, want)
		}
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(dec("25"), dec("200")); !got.Equal(dec("12.5")) {
		t.Errorf("Percentage = %s, want 12.5", got)
	}
	if got := Percentage(dec("25"), dec("0")); !got.IsZero() {
		t.Errorf("Percentage over zero total = %s, want 0", got)
	}
}
