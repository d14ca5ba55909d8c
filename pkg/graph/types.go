// Package graph projects a tenant's entity collections into a directed
// dependency graph and runs the analyses (orphan detection, broken-reference
// detection) the dashboard and the deploy gate consume.
//
// Only Action Chips, Branches, CTAs and Forms become nodes; Programs and
// Showcase Items are referenced entities without graph presence in this
// projection. Node IDs are namespaced as "{type}-{entityID}" so a Branch and
// a CTA that share a raw ID never collide.
package graph

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/domain"
)

// NodeType enumerates the entity kinds represented as graph nodes.
type NodeType string

const (
	NodeActionChip NodeType = "chip"
	NodeBranch     NodeType = "branch"
	NodeCTA        NodeType = "cta"
	NodeForm       NodeType = "form"
)

// rootTypes are never reported as orphaned: Action Chips are conversation
// entry points with no expected incoming edges.
var rootTypes = map[NodeType]bool{
	NodeActionChip: true,
}

// NodeID builds the namespaced node identifier for a type/entity pair.
func NodeID(t NodeType, entityID string) string {
	return fmt.Sprintf("%s-%s", t, entityID)
}

// Node is one entity in the dependency graph. IsOrphaned and BrokenRefs are
// presentation decorations applied by Decorate; Build leaves them zero.
type Node struct {
	ID         string            `json:"id"`
	Type       NodeType          `json:"type"`
	EntityID   string            `json:"entity_id"`
	Label      string            `json:"label"`
	IsOrphaned bool              `json:"is_orphaned,omitempty"`
	BrokenRefs []BrokenReference `json:"broken_refs,omitempty"`
}

// EdgeKind names the reference a graph edge was projected from.
type EdgeKind string

const (
	EdgeChipTarget   EdgeKind = "chip_target"   // ActionChip → Branch
	EdgePrimaryCTA   EdgeKind = "primary_cta"   // Branch → CTA
	EdgeSecondaryCTA EdgeKind = "secondary_cta" // Branch → CTA
	EdgeStartsForm   EdgeKind = "starts_form"   // CTA → Form
	EdgeTargetBranch EdgeKind = "target_branch" // CTA → Branch
	EdgeCompletion   EdgeKind = "completion"    // Form → Branch
)

// Edge is a typed, labeled connection between two nodes.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
}

// Graph is the full projection of one configuration snapshot.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeSet returns the set of node IDs, for membership checks.
func (g Graph) NodeSet() map[string]bool {
	set := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		set[n.ID] = true
	}
	return set
}

// BrokenReference is a declared reference whose target does not exist.
// NodeID carries the namespaced ID of the declaring entity; Severity mirrors
// the relationship validator (error everywhere except Form→Program).
type BrokenReference struct {
	NodeID        string          `json:"node_id"`
	ReferenceType string          `json:"reference_type"`
	ReferencedID  string          `json:"referenced_id"`
	Severity      domain.Severity `json:"severity"`
}
