package calculator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmynk/splitledger/internal/models"
)

// Stats summarizes a set of expenses.
type Stats struct {
	ExpenseCount  int
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal // Expenses whose status is Paid
	PendingAmount decimal.Decimal // TotalAmount - PaidAmount
	AverageAmount decimal.Decimal

	Categories   map[string]decimal.Decimal
	Months       map[string]decimal.Decimal
	Participants *Balances
}

// Total is one keyed amount of a category or month breakdown.
type Total struct {
	Key    string
	Amount decimal.Decimal
}

// CalculateStats computes totals, breakdowns and participant balances.
// An empty input yields zero amounts and empty breakdowns.
func CalculateStats(expenses []models.Expense) Stats {
	stats := Stats{
		ExpenseCount: len(expenses),
		Categories:   CategoryTotals(expenses),
		Months:       MonthlyTotals(expenses),
		Participants: CalculateBalances(expenses),
	}
	for _, expense := range expenses {
		stats.TotalAmount = stats.TotalAmount.Add(expense.Amount)
		if expense.Status == models.StatusPaid {
			stats.PaidAmount = stats.PaidAmount.Add(expense.Amount)
		}
	}
	stats.PendingAmount = stats.TotalAmount.Sub(stats.PaidAmount)
	if len(expenses) > 0 {
		stats.AverageAmount = stats.TotalAmount.Div(decimal.NewFromInt(int64(len(expenses))))
	}
	return stats
}

// Category derives the category of an expense from its description: the
// first whitespace-delimited word, lower-cased. Blank descriptions map to "".
func Category(description string) string {
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return ""
	}
	return cases.Lower(language.Und).String(fields[0])
}

// CategoryTotals sums expense amounts per category.
func CategoryTotals(expenses []models.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		category := Category(expense.Description)
		totals[category] = totals[category].Add(expense.Amount)
	}
	return totals
}

// MonthKey formats t as "M/YYYY" with a 1-indexed month, e.g. "3/2024".
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}

// MonthlyTotals sums expense amounts per MonthKey.
func MonthlyTotals(expenses []models.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		key := MonthKey(expense.Date)
		totals[key] = totals[key].Add(expense.Amount)
	}
	return totals
}

// Percentage returns part as a percentage of total, or zero when total is zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100))
}

// SortedCategories orders category totals by amount, largest first,
// breaking ties by name.
func SortedCategories(totals map[string]decimal.Decimal) []Total {
	list := toTotals(totals)
	sort.Slice(list, func(i, j int) bool {
		if c := list[i].Amount.Cmp(list[j].Amount); c != 0 {
			return c > 0
		}
		return list[i].Key < list[j].Key
	})
	return list
}

// SortedMonths orders month totals chronologically.
func SortedMonths(totals map[string]decimal.Decimal) []Total {
	list := toTotals(totals)
	sort.Slice(list, func(i, j int) bool {
		yi, mi := splitMonthKey(list[i].Key)
		yj, mj := splitMonthKey(list[j].Key)
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})
	return list
}

func toTotals(totals map[string]decimal.Decimal) []Total {
	list := make([]Total, 0, len(totals))
	for key, amount := range totals {
		list = append(list, Total{Key: key, Amount: amount})
	}
	return list
}

// splitMonthKey parses a MonthKey back into year and month.
// Malformed keys sort first.
func splitMonthKey(key string) (year, month int) {
	m, y, ok := strings.Cut(key, "/")
	if !ok {
		return 0, 0
	}
	month, _ = strconv.Atoi(m)
	year, _ = strconv.Atoi(y)
	return year, month
}
