package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrNoParticipants is returned when an equal split is requested for an
// expense without participants.
var ErrNoParticipants = errors.New("expense has no participants")

// EffectiveShare computes the amount attributed to one participant of an expense.
//
// Equal splits divide the amount by the participant count and ignore the
// stored share. Custom splits return the stored share unchanged; shares are
// not checked against the expense amount.
func EffectiveShare(expense *models.Expense, participant models.Participant) (decimal.Decimal, error) {
	if expense.EffectiveSplitType() == models.SplitCustom {
		return participant.Share, nil
	}
	if len(expense.Participants) == 0 {
		return decimal.Zero, ErrNoParticipants
	}
	return expense.Amount.Div(decimal.NewFromInt(int64(len(expense.Participants)))), nil
}

// shareOrZero is EffectiveShare for aggregations: degenerate expenses
// contribute nothing instead of failing the whole run.
func shareOrZero(expense *models.Expense, participant models.Participant) decimal.Decimal {
	share, err := EffectiveShare(expense, participant)
	if err != nil {
		return decimal.Zero
	}
	return share
}
