package models

import "github.com/shopspring/decimal"

// IndividualAmount tracks one participant's side of the settlement.
type IndividualAmount struct {
	// Paid is the sum of every bill this participant paid for.
	Paid decimal.Decimal `json:"paid"`

	// NeedsToPay is the sum of this participant's shares across allocated bills.
	NeedsToPay decimal.Decimal `json:"needsToPay"`
}

// Balance returns Paid - NeedsToPay.
// Positive = owed money, negative = owes money.
func (a IndividualAmount) Balance() decimal.Decimal {
	return a.Paid.Sub(a.NeedsToPay)
}

// IndividualAmounts maps participant name to that participant's totals.
// An entry always carries both fields; Ensure is the only place entries are created.
type IndividualAmounts map[string]IndividualAmount

// Clone returns an independent copy of the map.
func (m IndividualAmounts) Clone() IndividualAmounts {
	out := make(IndividualAmounts, len(m))
	for name, amt := range m {
		out[name] = amt
	}
	return out
}

// Ensure returns the entry for name, creating a zeroed one if it is missing.
func (m IndividualAmounts) Ensure(name string) IndividualAmount {
	amt, ok := m[name]
	if !ok {
		amt = IndividualAmount{Paid: decimal.Zero, NeedsToPay: decimal.Zero}
		m[name] = amt
	}
	return amt
}
