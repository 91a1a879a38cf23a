package workflow

import (
	"errors"
	"slices"

	"github.com/mmynk/splitwizard/internal/calculator"
	"github.com/mmynk/splitwizard/internal/ledger"
	"github.com/mmynk/splitwizard/internal/models"
)

// Session is the whole mutable state of one wizard run. Every mutation goes
// through a ledger or calculator function and is written back only on success,
// so a rejected action leaves the session exactly as it was.
type Session struct {
	Names  []string
	Bills  []models.Bill
	Totals models.IndividualAmounts
	State  State
}

// NewSession starts a session in CollectNames with the given restored lists.
func NewSession(names []string, bills []models.Bill) *Session {
	return &Session{
		Names:  names,
		Bills:  bills,
		Totals: models.IndividualAmounts{},
		State:  Initial(),
	}
}

// CurrentBill returns the bill being allocated, if any.
func (s *Session) CurrentBill() (models.Bill, bool) {
	if s.State.Step != AllocateBills || s.State.BillIndex >= len(s.Bills) {
		return models.Bill{}, false
	}
	return s.Bills[s.State.BillIndex], true
}

// IsLastBill reports whether the current bill is the final one to allocate.
func (s *Session) IsLastBill() bool {
	return s.State.Step == AllocateBills && s.State.BillIndex == len(s.Bills)-1
}

// AddParticipant appends a participant name.
func (s *Session) AddParticipant(name string) error {
	names, err := ledger.AddParticipant(s.Names, name)
	if err != nil {
		return err
	}
	s.Names = names
	return nil
}

// RemoveParticipant removes the participant at index.
func (s *Session) RemoveParticipant(index int) {
	s.Names = ledger.RemoveParticipant(s.Names, index)
}

// AddBill validates and appends a bill. The payer must be a current participant.
func (s *Session) AddBill(in ledger.BillInput) error {
	if in.PaidBy != "" && !slices.Contains(s.Names, in.PaidBy) {
		return ledger.Invalid(ledger.KindEmptyField, "Please choose who paid!")
	}
	bills, err := ledger.AddBill(s.Bills, in)
	if err != nil {
		return err
	}
	s.Bills = bills
	return nil
}

// RemoveBill removes the bill at index.
func (s *Session) RemoveBill(index int) {
	s.Bills = ledger.RemoveBill(s.Bills, index)
}

// ResetPaidTotals replaces the totals with paid amounts derived from the full
// bill list. Every owed amount starts at zero.
func (s *Session) ResetPaidTotals() {
	s.Totals = calculator.ComputePaidTotals(s.Bills)
}

// ApplyAllocation folds one allocation event into the totals.
func (s *Session) ApplyAllocation(bill models.Bill, selected []string) error {
	totals, err := calculator.AllocateBill(s.Totals, bill, selected)
	if errors.Is(err, calculator.ErrNoParticipants) {
		return ledger.Invalid(ledger.KindEmptySelection, "Please select at least 1 person!")
	}
	if err != nil {
		return err
	}
	s.Totals = totals
	return nil
}

// AllocateCurrentBill allocates the current bill among selected and moves to
// the next bill, or to Summary after the last one.
func (s *Session) AllocateCurrentBill(selected []string) error {
	bill, ok := s.CurrentBill()
	if !ok {
		return ledger.Invalid(ledger.KindEmptyCollection, "There are no bills to allocate!")
	}
	if err := s.ApplyAllocation(bill, selected); err != nil {
		return err
	}

	s.State.BillIndex++
	if s.State.BillIndex >= len(s.Bills) {
		s.State = State{Step: Summary}
	}
	return nil
}

// Advance moves to the next step if its guard passes. Within AllocateBills
// progress happens through AllocateCurrentBill, and Summary has no next step,
// so advancing from either is a no-op.
func (s *Session) Advance() error {
	switch s.State.Step {
	case CollectNames:
		if len(s.Names) == 0 {
			return ledger.Invalid(ledger.KindEmptyCollection, "Please input at least 1 name!")
		}
		s.State = State{Step: CollectBills}
	case CollectBills:
		if len(s.Bills) == 0 {
			return ledger.Invalid(ledger.KindEmptyCollection, "Please input at least 1 bill!")
		}
		s.enterAllocation()
	}
	return nil
}

// Retreat steps back to the preceding top-level step without touching the
// participant or bill lists. Landing on AllocateBills runs its entry action.
func (s *Session) Retreat() {
	switch s.State.Step {
	case CollectBills:
		s.State = State{Step: CollectNames}
	case AllocateBills:
		s.State = State{Step: CollectBills}
	case Summary:
		s.enterAllocation()
	}
}

// Restart clears everything and returns to CollectNames.
func (s *Session) Restart() {
	s.Names = []string{}
	s.Bills = []models.Bill{}
	s.Totals = models.IndividualAmounts{}
	s.State = Initial()
}

// Summary computes the settlement table from the current totals.
func (s *Session) Summary() models.Summary {
	return calculator.Summarize(s.Names, s.Totals)
}

func (s *Session) enterAllocation() {
	s.ResetPaidTotals()
	s.State = State{Step: AllocateBills, BillIndex: 0}
}
