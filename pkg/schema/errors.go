package schema

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps field names to human-readable validation messages.
// An empty (or nil) map means the entity passed.
type FieldErrors map[string]string

// Error renders the map as a deterministic, sorted message list.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, k := range keys {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, k, e[k])
	}
	return sb.String()
}

// Fields returns the failing field names in sorted order.
func (e FieldErrors) Fields() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
