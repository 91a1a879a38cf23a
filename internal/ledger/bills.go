package ledger

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitwizard/internal/calculator"
	"github.com/mmynk/splitwizard/internal/models"
)

// BillInput is the raw bill form as entered by the user.
type BillInput struct {
	Description string
	Amount      decimal.Decimal // before surcharge
	Surcharge   models.Surcharge
	PaidBy      string
}

// AddBill validates in and appends a bill whose Amount is the raw amount
// multiplied by the surcharge.
func AddBill(bills []models.Bill, in BillInput) ([]models.Bill, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" || in.PaidBy == "" {
		return bills, Invalid(KindEmptyField, "Please fill in all fields!")
	}

	total := calculator.ApplySurcharge(in.Amount, in.Surcharge.Multiplier())
	if total.IsZero() {
		return bills, Invalid(KindEmptyField, "Please fill in all fields!")
	}
	if total.IsNegative() {
		return bills, Invalid(KindInvalidAmount, "Amount cannot be negative!")
	}

	for _, b := range bills {
		if b.Description == description {
			return bills, Invalid(KindDuplicateName, "This bill name already exists!")
		}
	}

	out := models.CloneBills(bills)
	return append(out, models.Bill{
		Description: description,
		Amount:      total,
		PaidBy:      in.PaidBy,
	}), nil
}

// RemoveBill removes the bill at index. Out-of-range indexes return bills unchanged.
func RemoveBill(bills []models.Bill, index int) []models.Bill {
	if index < 0 || index >= len(bills) {
		return bills
	}
	return slices.Delete(models.CloneBills(bills), index, index+1)
}
