package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Participant is one person sharing an expense.
type Participant struct {
	Name    string          `json:"name"`
	Share   decimal.Decimal `json:"share"`
	HasPaid bool            `json:"hasPaid"`
}

// Expense is the wire form of an expense record.
// Status is "Paid" or "Pending"; SplitType is "equal" or "custom"
// and defaults to "equal" when empty.
type Expense struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	SplitType    string          `json:"splitType,omitempty"`
	Participants []Participant   `json:"participants"`
	CreatedAt    int64           `json:"createdAt,omitempty"`
	UpdatedAt    int64           `json:"updatedAt,omitempty"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type GetExpenseRequest struct {
	ID string `json:"id"`
}

type GetExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type CreateExpenseRequest struct {
	Expense Expense `json:"expense"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	Expense Expense `json:"expense"`
}

type UpdateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

// DateRangeFilter bounds reports and stats. Dates are YYYY-MM-DD; an empty
// bound defaults to the last month up to today.
type DateRangeFilter struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type GetStatsRequest struct {
	DateRangeFilter
}

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// MonthTotal is the amount spent in one "M/YYYY" month.
type MonthTotal struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// ParticipantStats is one person's position across the filtered expenses.
type ParticipantStats struct {
	Name         string          `json:"name"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalOwed    decimal.Decimal `json:"totalOwed"`
	Balance      decimal.Decimal `json:"balance"`
	ExpenseCount int             `json:"expenseCount"`
}

type GetStatsResponse struct {
	StartDate     string             `json:"startDate"`
	EndDate       string             `json:"endDate"`
	ExpenseCount  int                `json:"expenseCount"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	PaidAmount    decimal.Decimal    `json:"paidAmount"`
	PendingAmount decimal.Decimal    `json:"pendingAmount"`
	AverageAmount decimal.Decimal    `json:"averageAmount"`
	Categories    []CategoryTotal    `json:"categories"`
	Months        []MonthTotal       `json:"months"`
	Participants  []ParticipantStats `json:"participants"`
}

type GetReportRequest struct {
	Kind string `json:"kind"`
	DateRangeFilter
}

// GetReportResponse is a ready-to-render table. Rows hold the same
// formatted values as the CSV download.
type GetReportResponse struct {
	Kind      string     `json:"kind"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Empty     bool       `json:"empty"`
	Filename  string     `json:"filename"`
}

// User is the public view of an account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by Register and Login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}
