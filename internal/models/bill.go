package models

import "github.com/shopspring/decimal"

// Bill represents one shared expense entered in the wizard.
type Bill struct {
	// Description names the bill (e.g., "Dinner", "Taxi").
	// It is unique within a session and used as the bill's identity.
	Description string `json:"description"`

	// Amount is the final charged amount, after any surcharge multiplier.
	// Serialized as a decimal string ("11.77").
	Amount decimal.Decimal `json:"amount"`

	// PaidBy is the name of the participant who paid the bill.
	PaidBy string `json:"paidBy"`
}

// CloneBills returns a copy of bills that shares no backing array with the input.
func CloneBills(bills []Bill) []Bill {
	out := make([]Bill, len(bills))
	copy(out, bills)
	return out
}
