package domain

import "fmt"

// Severity classifies a finding. Errors close the deploy gate; warnings are
// advisory and never block.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single validation diagnostic tied to one entity. Field is
// empty for entity-level findings (dangling references, orphan warnings).
type Finding struct {
	Kind     Kind     `json:"kind"`
	EntityID string   `json:"entity_id"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// EntityKey returns the namespaced key ("kind-id") used to index findings.
// Raw IDs are only unique within a type, so the kind prefix keeps a Branch
// and a CTA with the same raw ID from merging.
func (f Finding) EntityKey() string {
	return EntityKey(f.Kind, f.EntityID)
}

// EntityKey builds the namespaced entity key for a kind/ID pair.
func EntityKey(kind Kind, id string) string {
	return fmt.Sprintf("%s-%s", kind, id)
}

func (f Finding) String() string {
	if f.Field != "" {
		return fmt.Sprintf("[%s] %s %s.%s: %s", f.Severity, f.Kind, f.EntityID, f.Field, f.Message)
	}
	return fmt.Sprintf("[%s] %s %s: %s", f.Severity, f.Kind, f.EntityID, f.Message)
}

// ErrorFinding builds an error-severity finding.
func ErrorFinding(kind Kind, entityID, field, message string) Finding {
	return Finding{Kind: kind, EntityID: entityID, Field: field, Message: message, Severity: SeverityError}
}

// WarningFinding builds a warning-severity finding.
func WarningFinding(kind Kind, entityID, field, message string) Finding {
	return Finding{Kind: kind, EntityID: entityID, Field: field, Message: message, Severity: SeverityWarning}
}
