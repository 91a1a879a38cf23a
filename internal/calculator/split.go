package calculator

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitwizard/internal/models"
)

// ErrNoParticipants is returned when a bill is allocated to nobody.
var ErrNoParticipants = errors.New("must select at least one participant")

// ApplySurcharge returns the final bill amount for a raw amount and multiplier.
func ApplySurcharge(raw, multiplier decimal.Decimal) decimal.Decimal {
	return raw.Mul(multiplier)
}

// Share returns one participant's equal share of amount split n ways.
func Share(amount decimal.Decimal, n int) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(int64(n)))
}

// AllocateBill splits bill.Amount equally among selected and adds each share to
// that participant's NeedsToPay. Duplicate names in selected count once.
// The input map is not modified.
func AllocateBill(current models.IndividualAmounts, bill models.Bill, selected []string) (models.IndividualAmounts, error) {
	owing := uniqueNames(selected)
	if len(owing) == 0 {
		return current, ErrNoParticipants
	}

	share := Share(bill.Amount, len(owing))
	updated := current.Clone()
	for _, name := range owing {
		amt := updated.Ensure(name)
		amt.NeedsToPay = amt.NeedsToPay.Add(share)
		updated[name] = amt
	}
	return updated, nil
}

func uniqueNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}
