package models

import "github.com/shopspring/decimal"

// Transfer represents one payment that settles part of the group's debts.
type Transfer struct {
	// From is the participant who owes money.
	From string

	// To is the participant who is owed money.
	To string

	// Amount is the payment amount.
	Amount decimal.Decimal
}

// PersonBalance is one row of the settlement table.
type PersonBalance struct {
	Name       string
	Paid       decimal.Decimal
	NeedsToPay decimal.Decimal
	Balance    decimal.Decimal // Positive = owed money, negative = owes money
}

// Summary is the final settlement table.
type Summary struct {
	Rows      []PersonBalance
	Transfers []Transfer
}
