package schema

import "testing"

func TestCheckUniqueID_CreateMode(t *testing.T) {
	ids := map[string]bool{"prog_1": true, "prog_2": true}

	if msg, ok := CheckUniqueID("prog_1", CreateIn(ids)); ok {
		t.Errorf("duplicate in create mode should be rejected, got ok (msg=%q)", msg)
	}
	if _, ok := CheckUniqueID("prog_3", CreateIn(ids)); !ok {
		t.Error("fresh ID in create mode should be accepted")
	}
}

func TestCheckUniqueID_EditModeOwnID(t *testing.T) {
	ids := map[string]bool{"prog_1": true, "prog_2": true}

	// Re-saving an entity with its own unchanged ID is never a duplicate.
	if msg, ok := CheckUniqueID("prog_1", EditOf("prog_1", ids)); !ok {
		t.Errorf("unchanged ID in edit mode flagged: %q", msg)
	}

	// Renaming onto a sibling's ID still is.
	if _, ok := CheckUniqueID("prog_2", EditOf("prog_1", ids)); ok {
		t.Error("rename onto existing sibling ID should be rejected")
	}

	// Renaming to a fresh ID is fine.
	if _, ok := CheckUniqueID("prog_9", EditOf("prog_1", ids)); !ok {
		t.Error("rename to fresh ID should be accepted")
	}
}

func TestCheckUniqueID_NilSet(t *testing.T) {
	if _, ok := CheckUniqueID("anything", Context{}); !ok {
		t.Error("empty namespace should accept any ID")
	}
}

func TestValidateEntityDuplicateViaContext(t *testing.T) {
	// Two programs submitted with the same ID in create mode: the second
	// sees the first in ExistingIDs and is flagged.
	ids := map[string]bool{}
	first := CreateIn(ids)
	if msg, ok := CheckUniqueID("program_id", first); !ok {
		t.Fatalf("first submission rejected: %q", msg)
	}
	ids["program_id"] = true

	second := CreateIn(ids)
	if _, ok := CheckUniqueID("program_id", second); ok {
		t.Error("second submission with identical ID should be flagged")
	}
}
