// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for expense and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// ListExpenses returns every expense in insertion order.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// GetExpense retrieves an expense by its ID.
	// Returns an error wrapping ErrNotFound if the expense does not exist.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// CreateExpense persists a new expense.
	// The expense.ID and timestamps will be populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// UpdateExpense replaces an existing expense, participants included.
	// Returns an error wrapping ErrNotFound if the expense does not exist.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense and its participants.
	// Returns an error wrapping ErrNotFound if the expense does not exist.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateUser inserts a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns an error wrapping ErrNotFound for unknown emails.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns an error wrapping ErrNotFound for unknown IDs.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
