package service

import (
	"strings"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

func toAPIExpense(e *models.Expense) api.Expense {
	participants := make([]api.Participant, len(e.Participants))
	for i, p := range e.Participants {
		participants[i] = api.Participant{Name: p.Name, Share: p.Share, HasPaid: p.HasPaid}
	}
	return api.Expense{
		ID:           e.ID,
		Description:  e.Description,
		Date:         e.Date,
		Amount:       e.Amount,
		Status:       string(e.Status),
		SplitType:    string(e.EffectiveSplitType()),
		Participants: participants,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toAPIExpenses(expenses []models.Expense) []api.Expense {
	out := make([]api.Expense, len(expenses))
	for i := range expenses {
		out[i] = toAPIExpense(&expenses[i])
	}
	return out
}

// fromAPIExpense builds a model, normalizing status, split type and names.
func fromAPIExpense(e api.Expense) *models.Expense {
	participants := make([]models.Participant, len(e.Participants))
	for i, p := range e.Participants {
		participants[i] = models.Participant{Name: strings.TrimSpace(p.Name), Share: p.Share, HasPaid: p.HasPaid}
	}
	return &models.Expense{
		ID:           e.ID,
		Description:  strings.TrimSpace(e.Description),
		Date:         e.Date.UTC(),
		Amount:       e.Amount,
		Status:       models.ParseStatus(e.Status),
		SplitType:    models.ParseSplitType(e.SplitType),
		Participants: participants,
	}
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toAPIStats(r calculator.DateRange, stats calculator.Stats) *api.GetStatsResponse {
	resp := &api.GetStatsResponse{
		StartDate:     r.Start.Format(calculator.DateLayout),
		EndDate:       r.End.Format(calculator.DateLayout),
		ExpenseCount:  stats.ExpenseCount,
		TotalAmount:   stats.TotalAmount,
		PaidAmount:    stats.PaidAmount,
		PendingAmount: stats.PendingAmount,
		AverageAmount: stats.AverageAmount.Round(2),
		Categories:    []api.CategoryTotal{},
		Months:        []api.MonthTotal{},
		Participants:  []api.ParticipantStats{},
	}
	for _, c := range calculator.SortedCategories(stats.Categories) {
		resp.Categories = append(resp.Categories, api.CategoryTotal{
			Category:   c.Key,
			Amount:     c.Amount,
			Percentage: calculator.Percentage(c.Amount, stats.TotalAmount).Round(1),
		})
	}
	for _, m := range calculator.SortedMonths(stats.Months) {
		resp.Months = append(resp.Months, api.MonthTotal{Month: m.Key, Amount: m.Amount})
	}
	for _, p := range stats.Participants.List() {
		resp.Participants = append(resp.Participants, api.ParticipantStats{
			Name:         p.Name,
			TotalPaid:    p.TotalPaid,
			TotalOwed:    p.TotalOwed,
			Balance:      p.Balance(),
			ExpenseCount: p.ExpenseCount,
		})
	}
	return resp
}
