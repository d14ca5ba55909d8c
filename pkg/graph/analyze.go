package graph

import (
	"github.com/aretw0/canopy/pkg/domain"
)

// DetectOrphans returns the set of node IDs with no incoming edges,
// excluding root node types. A node is orphaned when it never appears as an
// edge target. O(V + E).
func DetectOrphans(g Graph) map[string]bool {
	referenced := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		referenced[e.Target] = true
	}

	orphans := make(map[string]bool)
	for _, n := range g.Nodes {
		if rootTypes[n.Type] {
			continue
		}
		if !referenced[n.ID] {
			orphans[n.ID] = true
		}
	}
	return orphans
}

// DetectBrokenReferences re-scans the raw entity collections for declared
// references whose target entity does not exist. It reports against the
// target collection (equivalently, the node-ID set for graph-typed
// targets), which also covers references to non-node entities: Programs
// (warning severity) and Showcase Items (error severity).
//
// Broken-reference detection and orphan detection are independent: a node
// can be orphaned without being broken, and can carry broken outgoing
// references while still receiving incoming edges.
func DetectBrokenReferences(c domain.Collections) []BrokenReference {
	var broken []BrokenReference

	report := func(nodeID, refType, referencedID string, severity domain.Severity) {
		broken = append(broken, BrokenReference{
			NodeID:        nodeID,
			ReferenceType: refType,
			ReferencedID:  referencedID,
			Severity:      severity,
		})
	}

	for _, id := range sortedKeys(c.Chips) {
		chip := c.Chips[id]
		if chip.TargetBranch != "" {
			if _, ok := c.Branch(chip.TargetBranch); !ok {
				report(NodeID(NodeActionChip, id), "target_branch", chip.TargetBranch, domain.SeverityError)
			}
		}
		if chip.TargetShowcaseID != "" {
			if _, ok := c.ShowcaseItem(chip.TargetShowcaseID); !ok {
				report(NodeID(NodeActionChip, id), "target_showcase", chip.TargetShowcaseID, domain.SeverityError)
			}
		}
	}

	for _, id := range sortedKeys(c.Branches) {
		branch := c.Branches[id]
		nodeID := NodeID(NodeBranch, id)
		if primary := branch.AvailableCTAs.Primary; primary != "" {
			if _, ok := c.CTA(primary); !ok {
				report(nodeID, "primary_cta", primary, domain.SeverityError)
			}
		}
		for _, ctaID := range branch.AvailableCTAs.CleanSecondary() {
			if _, ok := c.CTA(ctaID); !ok {
				report(nodeID, "secondary_cta", ctaID, domain.SeverityError)
			}
		}
	}

	for _, id := range sortedKeys(c.CTAs) {
		cta := c.CTAs[id]
		nodeID := NodeID(NodeCTA, id)
		switch cta.Action {
		case domain.CTAStartForm:
			if cta.FormID != "" {
				if _, ok := c.Form(cta.FormID); !ok {
					report(nodeID, "form", cta.FormID, domain.SeverityError)
				}
			}
		case domain.CTATargetBranch:
			if cta.TargetBranch != "" {
				if _, ok := c.Branch(cta.TargetBranch); !ok {
					report(nodeID, "target_branch", cta.TargetBranch, domain.SeverityError)
				}
			}
		case domain.CTAShowShowcase:
			if cta.TargetShowcaseID != "" {
				if _, ok := c.ShowcaseItem(cta.TargetShowcaseID); !ok {
					report(nodeID, "target_showcase", cta.TargetShowcaseID, domain.SeverityError)
				}
			}
		}
	}

	for _, id := range sortedKeys(c.Forms) {
		form := c.Forms[id]
		nodeID := NodeID(NodeForm, id)
		if form.Program != "" {
			if _, ok := c.Program(form.Program); !ok {
				// Form→Program stays warning severity, consistent with the
				// relationship validator.
				report(nodeID, "program", form.Program, domain.SeverityWarning)
			}
		}
		if form.CompletionBranch != "" {
			if _, ok := c.Branch(form.CompletionBranch); !ok {
				report(nodeID, "completion_branch", form.CompletionBranch, domain.SeverityError)
			}
		}
	}

	for _, item := range c.Showcase {
		if item.Action != nil && item.Action.Type == domain.ShowcaseCTA && item.Action.CTAID != "" {
			if _, ok := c.CTA(item.Action.CTAID); !ok {
				report(domain.EntityKey(domain.KindShowcase, item.ID), "action_cta", item.Action.CTAID, domain.SeverityError)
			}
		}
	}

	return broken
}

// Decorate returns a copy of g whose nodes carry the orphan flag and their
// broken outgoing references. Inputs are never mutated; callers can keep
// the undecorated graph around.
func Decorate(g Graph, orphans map[string]bool, broken []BrokenReference) Graph {
	byNode := make(map[string][]BrokenReference)
	for _, b := range broken {
		byNode[b.NodeID] = append(byNode[b.NodeID], b)
	}

	nodes := make([]Node, len(g.Nodes))
	for i, n := range g.Nodes {
		n.IsOrphaned = orphans[n.ID]
		n.BrokenRefs = byNode[n.ID]
		nodes[i] = n
	}

	edges := make([]Edge, len(g.Edges))
	copy(edges, g.Edges)

	return Graph{Nodes: nodes, Edges: edges}
}
