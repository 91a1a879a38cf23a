// Package workflow holds the wizard's session state and its linear state machine:
// CollectNames -> CollectBills -> AllocateBills -> Summary.
package workflow

// Step is one top-level screen of the wizard.
type Step int

const (
	CollectNames Step = iota
	CollectBills
	AllocateBills
	Summary
)

func (s Step) String() string {
	switch s {
	case CollectNames:
		return "collect_names"
	case CollectBills:
		return "collect_bills"
	case AllocateBills:
		return "allocate_bills"
	case Summary:
		return "summary"
	default:
		return "unknown"
	}
}

// State is the current step. BillIndex is only meaningful in AllocateBills,
// where it points at the bill being allocated.
type State struct {
	Step      Step
	BillIndex int
}

// Initial is the state a new or restarted session starts in.
func Initial() State {
	return State{Step: CollectNames}
}
