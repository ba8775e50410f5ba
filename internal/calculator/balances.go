package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// MemberBalance holds one participant's accumulated shares.
type MemberBalance struct {
	Name         string
	TotalPaid    decimal.Decimal // Shares this person has settled
	TotalOwed    decimal.Decimal // Shares this person still owes
	ExpenseCount int
}

// Balance returns TotalPaid - TotalOwed. Positive means settled up.
func (m MemberBalance) Balance() decimal.Decimal {
	return m.TotalPaid.Sub(m.TotalOwed)
}

// Balances maps participant names to their balances, remembering the order
// in which names were first seen.
type Balances struct {
	order   []string
	members map[string]*MemberBalance
}

func newBalances() *Balances {
	return &Balances{members: make(map[string]*MemberBalance)}
}

func (b *Balances) member(name string) *MemberBalance {
	m, ok := b.members[name]
	if !ok {
		m = &MemberBalance{Name: name}
		b.members[name] = m
		b.order = append(b.order, name)
	}
	return m
}

// CalculateBalances aggregates per-participant paid and owed totals.
//
// Algorithm:
// - For each expense, for each participant: count the expense
// - Compute the participant's effective share
// - Add it to TotalPaid if the participant has paid, TotalOwed otherwise
//
// Sums are exact decimals, so the result does not depend on input order.
func CalculateBalances(expenses []models.Expense) *Balances {
	balances := newBalances()
	for i := range expenses {
		expense := &expenses[i]
		for _, participant := range expense.Participants {
			m := balances.member(participant.Name)
			m.ExpenseCount++

			share := shareOrZero(expense, participant)
			if participant.HasPaid {
				m.TotalPaid = m.TotalPaid.Add(share)
			} else {
				m.TotalOwed = m.TotalOwed.Add(share)
			}
		}
	}
	return balances
}

// Len returns the number of distinct participants.
func (b *Balances) Len() int {
	return len(b.order)
}

// Names returns participant names in first-seen order.
func (b *Balances) Names() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

// Get returns the balance for name.
func (b *Balances) Get(name string) (MemberBalance, bool) {
	m, ok := b.members[name]
	if !ok {
		return MemberBalance{}, false
	}
	return *m, true
}

// List returns all balances in first-seen order.
func (b *Balances) List() []MemberBalance {
	list := make([]MemberBalance, 0, len(b.order))
	for _, name := range b.order {
		list = append(list, *b.members[name])
	}
	return list
}

// Totals sums paid and owed amounts over all participants.
func (b *Balances) Totals() (paid, owed decimal.Decimal) {
	for _, m := range b.members {
		paid = paid.Add(m.TotalPaid)
		owed = owed.Add(m.TotalOwed)
	}
	return paid, owed
}
