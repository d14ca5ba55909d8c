package schema

import "fmt"

// Context carries the editing situation a validation runs under. The zero
// value means "create mode with no known siblings".
type Context struct {
	// IsEditMode is true when the entity existed before this save.
	IsEditMode bool

	// OriginalID is the entity's ID before the current edit. Only
	// consulted when IsEditMode is true.
	OriginalID string

	// ExistingIDs is the set of IDs already present in the entity's own
	// type namespace.
	ExistingIDs map[string]bool
}

// EditOf returns a Context for editing an existing entity within the given
// ID namespace.
func EditOf(originalID string, existingIDs map[string]bool) Context {
	return Context{IsEditMode: true, OriginalID: originalID, ExistingIDs: existingIDs}
}

// CreateIn returns a Context for creating a new entity within the given ID
// namespace.
func CreateIn(existingIDs map[string]bool) Context {
	return Context{ExistingIDs: existingIDs}
}

// CheckUniqueID reports a duplicate-ID message iff id is already taken in
// the namespace and the collision is not the entity's own prior ID during
// an edit. The second return is true when the ID is acceptable.
func CheckUniqueID(id string, vctx Context) (string, bool) {
	if !vctx.ExistingIDs[id] {
		return "", true
	}
	if vctx.IsEditMode && id == vctx.OriginalID {
		// Re-saving an unchanged ID is not a duplicate.
		return "", true
	}
	return fmt.Sprintf("ID %q is already in use", id), false
}
