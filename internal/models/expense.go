package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the whole-expense payment status.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
)

// ParseStatus normalizes a stored or user-supplied status.
// Anything other than "paid" (case-insensitive) is treated as pending.
func ParseStatus(s string) Status {
	if strings.EqualFold(strings.TrimSpace(s), string(StatusPaid)) {
		return StatusPaid
	}
	return StatusPending
}

// SplitType is the policy for dividing an expense among its participants.
type SplitType string

const (
	SplitEqual  SplitType = "equal"
	SplitCustom SplitType = "custom"
)

// ParseSplitType normalizes a split type. A missing or unrecognised value
// falls back to an equal split.
func ParseSplitType(s string) SplitType {
	if strings.EqualFold(strings.TrimSpace(s), string(SplitCustom)) {
		return SplitCustom
	}
	return SplitEqual
}

// Expense is one shared cost event.
// Expenses are read as snapshots and never mutated by the aggregation code.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Description is a free-text label. Its first word doubles as the
	// expense category in statistics.
	Description string

	// Date is when the expense happened.
	Date time.Time

	// Amount is the total cost of the expense. Never negative.
	Amount decimal.Decimal

	// Status is the payment status of the expense as a whole,
	// independent of each participant's HasPaid flag.
	Status Status

	// SplitType decides how Amount is attributed to participants.
	// The zero value behaves like SplitEqual.
	SplitType SplitType

	// Participants is the ordered list of people sharing the expense.
	Participants []Participant

	// CreatedAt is the Unix timestamp when the expense was first stored.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last update.
	UpdatedAt int64
}

// EffectiveSplitType returns the split type with the equal-split default applied.
func (e *Expense) EffectiveSplitType() SplitType {
	return ParseSplitType(string(e.SplitType))
}

// ParticipantNames returns the participant names in order.
func (e *Expense) ParticipantNames() []string {
	names := make([]string, len(e.Participants))
	for i, p := range e.Participants {
		names[i] = p.Name
	}
	return names
}

// Participant is a named party of an expense. It has no identity beyond
// its name: the same name on two expenses is the same person.
type Participant struct {
	Name string

	// Share is the amount owed by this participant. Only used when the
	// expense has a custom split.
	Share decimal.Decimal

	// HasPaid reports whether this participant settled their share.
	HasPaid bool
}
