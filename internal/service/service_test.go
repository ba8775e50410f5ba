package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	"github.com/mmynk/splitledger/pkg/api"
)

// testNow is the fixed clock used by report tests.
var testNow = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

// testAuthInterceptor returns a Connect interceptor that sets a test user ID in the context.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			return next(middleware.WithUser(ctx, "user-alice", "alice@example.com"), req)
		}
	}
}

type testServer struct {
	expenses *api.ExpenseServiceClient
	reports  *api.ReportServiceClient
	url      string
	store    *sqlite.SQLiteStore
}

// setupTestServer creates a test server backed by a temporary SQLite database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	authInterceptor := connect.WithInterceptors(testAuthInterceptor())

	reportSvc := NewReportService(store, nil)
	reportSvc.now = func() time.Time { return testNow }

	mux := http.NewServeMux()
	mux.Handle(api.NewExpenseServiceHandler(NewExpenseService(store, nil), authInterceptor))
	mux.Handle(api.NewReportServiceHandler(reportSvc, authInterceptor))
	mux.Handle(ExportPattern, NewExportHandler(reportSvc, nil))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testServer{
		expenses: api.NewExpenseServiceClient(http.DefaultClient, server.URL),
		reports:  api.NewReportServiceClient(http.DefaultClient, server.URL),
		url:      server.URL,
		store:    store,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// createExpense stores an expense through the API and returns it.
func (s *testServer) createExpense(t *testing.T, e api.Expense) api.Expense {
	t.Helper()
	resp, err := s.expenses.CreateExpense(context.Background(), connect.NewRequest(&api.CreateExpenseRequest{Expense: e}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	return resp.Msg.Expense
}

// seedMarch stores two expenses in March 2024 and one in January.
func (s *testServer) seedMarch(t *testing.T) {
	t.Helper()
	s.createExpense(t, api.Expense{
		Description: "Groceries weekly",
		Date:        day(2024, 3, 5),
		Amount:      dec("100"),
		Status:      "Paid",
		Participants: []api.Participant{
			{Name: "Alice", HasPaid: true},
			{Name: "Bob"},
		},
	})
	s.createExpense(t, api.Expense{
		Description: "Dinner out",
		Date:        day(2024, 3, 20),
		Amount:      dec("90"),
		Status:      "pending",
		SplitType:   "custom",
		Participants: []api.Participant{
			{Name: "Alice", Share: dec("20")},
			{Name: "Bob", Share: dec("30"), HasPaid: true},
			{Name: "Charlie", Share: dec("40")},
		},
	})
	s.createExpense(t, api.Expense{
		Description:  "Groceries monthly",
		Date:         day(2024, 1, 10),
		Amount:       dec("60"),
		Participants: []api.Participant{{Name: "Alice"}, {Name: "Bob", HasPaid: true}},
	})
}
