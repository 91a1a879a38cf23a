package calculator

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitwizard/internal/models"
)

// halfCent is the smallest remainder worth a transfer.
var halfCent = decimal.New(5, -3)

// ComputePaidTotals aggregates what each payer paid across bills.
// Every payer gets an entry with NeedsToPay = 0; nobody else appears.
func ComputePaidTotals(bills []models.Bill) models.IndividualAmounts {
	totals := make(models.IndividualAmounts)
	for _, bill := range bills {
		amt := totals.Ensure(bill.PaidBy)
		amt.Paid = amt.Paid.Add(bill.Amount)
		totals[bill.PaidBy] = amt
	}
	return totals
}

// ComputeBalance returns paid - needsToPay for name, or zero if name has no entry.
func ComputeBalance(totals models.IndividualAmounts, name string) decimal.Decimal {
	amt, ok := totals[name]
	if !ok {
		return decimal.Zero
	}
	return amt.Balance()
}

// Summarize builds the settlement table.
//
// Rows follow the order of names. Anyone present in totals but missing from
// names (a payer removed after their bill was recorded) is appended in
// alphabetical order so the balances always net to zero.
func Summarize(names []string, totals models.IndividualAmounts) models.Summary {
	rows := make([]models.PersonBalance, 0, len(totals))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
		rows = append(rows, row(name, totals))
	}

	var orphans []string
	for name := range totals {
		if !seen[name] {
			orphans = append(orphans, name)
		}
	}
	slices.Sort(orphans)
	for _, name := range orphans {
		rows = append(rows, row(name, totals))
	}

	return models.Summary{
		Rows:      rows,
		Transfers: SimplifyDebts(rows),
	}
}

func row(name string, totals models.IndividualAmounts) models.PersonBalance {
	amt, ok := totals[name]
	if !ok {
		return models.PersonBalance{Name: name}
	}
	return models.PersonBalance{
		Name:       name,
		Paid:       amt.Paid,
		NeedsToPay: amt.NeedsToPay,
		Balance:    amt.Balance(),
	}
}

// SimplifyDebts turns net balances into a short list of transfers.
//
// Algorithm:
// - Split members into creditors (balance > 0) and debtors (balance < 0)
// - Sort both by amount, largest first, ties broken by name
// - Greedily match the current debtor with the current creditor for the
//   smaller of the two remaining amounts
// - Remainders under half a cent are treated as settled
func SimplifyDebts(balances []models.PersonBalance) []models.Transfer {
	type party struct {
		name      string
		remaining decimal.Decimal
	}

	var creditors, debtors []party
	for _, b := range balances {
		switch {
		case b.Balance.GreaterThanOrEqual(halfCent):
			creditors = append(creditors, party{b.Name, b.Balance})
		case b.Balance.Neg().GreaterThanOrEqual(halfCent):
			debtors = append(debtors, party{b.Name, b.Balance.Neg()})
		}
	}

	byLargest := func(a, b party) int {
		if c := b.remaining.Cmp(a.remaining); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	}
	slices.SortFunc(creditors, byLargest)
	slices.SortFunc(debtors, byLargest)

	var transfers []models.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		amount := decimal.Min(debtor.remaining, creditor.remaining)
		if amount.GreaterThanOrEqual(halfCent) {
			transfers = append(transfers, models.Transfer{
				From:   debtor.name,
				To:     creditor.name,
				Amount: amount.Round(2),
			})
		}

		debtor.remaining = debtor.remaining.Sub(amount)
		creditor.remaining = creditor.remaining.Sub(amount)

		if debtor.remaining.LessThan(halfCent) {
			i++
		}
		if creditor.remaining.LessThan(halfCent) {
			j++
		}
	}

	return transfers
}
