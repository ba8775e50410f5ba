package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

var (
	errAuthRequired     = errors.New("authentication required")
	errMissingID        = errors.New("expense id is required")
	errMissingDesc      = errors.New("description is required")
	errMissingDate      = errors.New("date is required")
	errNegativeAmount   = errors.New("amount must not be negative")
	errBlankParticipant = errors.New("participant name must not be empty")
)

var _ api.ExpenseServiceHandler = (*ExpenseService)(nil)

// ExpenseService implements the ExpenseService RPC interface.
type ExpenseService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store, logger *slog.Logger) *ExpenseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseService{store: store, logger: logger}
}

// requireUser returns the caller's ID or an Unauthenticated error.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errAuthRequired)
	}
	return userID, nil
}

// validateExpense applies the input checks shared by create and update.
// Custom shares are not required to add up to the amount.
func validateExpense(e *models.Expense) error {
	if e.Description == "" {
		return errMissingDesc
	}
	if e.Date.IsZero() {
		return errMissingDate
	}
	if e.Amount.IsNegative() {
		return errNegativeAmount
	}
	for i, p := range e.Participants {
		if p.Name == "" {
			return fmt.Errorf("%w (participant %d)", errBlankParticipant, i+1)
		}
	}
	return nil
}

// storageError maps a storage failure onto a Connect error.
func storageError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// ListExpenses returns every stored expense in insertion order.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		s.logger.Error("ListExpenses failed", "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: toAPIExpenses(expenses)}), nil
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ID)
	if err != nil {
		s.logger.Warn("GetExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// CreateExpense validates and persists a new expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	expense := fromAPIExpense(req.Msg.Expense)
	expense.ID = ""
	if err := validateExpense(expense); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		s.logger.Error("CreateExpense failed", "error", err)
		return nil, storageError(err)
	}

	s.logger.Info("Expense created",
		"expense_id", expense.ID,
		"user_id", userID,
		"participants", len(expense.Participants),
	)
	return connect.NewResponse(&api.CreateExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// UpdateExpense replaces an existing expense, participants included.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	expense := fromAPIExpense(req.Msg.Expense)
	if expense.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}
	if err := validateExpense(expense); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		s.logger.Warn("UpdateExpense failed", "expense_id", expense.ID, "error", err)
		return nil, storageError(err)
	}

	s.logger.Info("Expense updated", "expense_id", expense.ID, "user_id", userID)
	return connect.NewResponse(&api.UpdateExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}

	if err := s.store.DeleteExpense(ctx, req.Msg.ID); err != nil {
		s.logger.Warn("DeleteExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, storageError(err)
	}

	s.logger.Info("Expense deleted", "expense_id", req.Msg.ID, "user_id", userID)
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}
