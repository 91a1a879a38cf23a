package ledger

import (
	"slices"
	"strings"
)

// AddParticipant appends name to names. Empty names (after trimming) and names
// already present are rejected.
func AddParticipant(names []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return names, Invalid(KindEmptyField, "Please enter a name!")
	}
	if slices.Contains(names, name) {
		return names, Invalid(KindDuplicateName, "This name already exists!")
	}

	out := make([]string, 0, len(names)+1)
	out = append(out, names...)
	return append(out, name), nil
}

// RemoveParticipant removes the participant at index. Out-of-range indexes
// return names unchanged.
func RemoveParticipant(names []string, index int) []string {
	if index < 0 || index >= len(names) {
		return names
	}
	return slices.Delete(slices.Clone(names), index, index+1)
}
