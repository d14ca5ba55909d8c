package graph

import (
	"fmt"
	"sort"

	"github.com/aretw0/canopy/pkg/domain"
)

// Build projects the chip, branch, CTA and form collections into nodes and
// edges. An edge is created only when the source declares the reference and
// the target node exists in the node set; edges with absent targets are
// simply omitted. Build emits no diagnostics; distinguishing "no edge
// because none was declared" from "no edge because it is broken" is
// DetectBrokenReferences' job, over the same raw collections.
func Build(c domain.Collections) Graph {
	var g Graph

	for _, id := range sortedKeys(c.Chips) {
		chip := c.Chips[id]
		g.Nodes = append(g.Nodes, Node{
			ID:       NodeID(NodeActionChip, id),
			Type:     NodeActionChip,
			EntityID: id,
			Label:    chip.Label,
		})
	}
	for _, id := range sortedKeys(c.Branches) {
		g.Nodes = append(g.Nodes, Node{
			ID:       NodeID(NodeBranch, id),
			Type:     NodeBranch,
			EntityID: id,
			Label:    id,
		})
	}
	for _, id := range sortedKeys(c.CTAs) {
		g.Nodes = append(g.Nodes, Node{
			ID:       NodeID(NodeCTA, id),
			Type:     NodeCTA,
			EntityID: id,
			Label:    c.CTAs[id].Label,
		})
	}
	for _, id := range sortedKeys(c.Forms) {
		g.Nodes = append(g.Nodes, Node{
			ID:       NodeID(NodeForm, id),
			Type:     NodeForm,
			EntityID: id,
			Label:    c.Forms[id].Title,
		})
	}

	exists := g.NodeSet()
	addEdge := func(id, source, target string, kind EdgeKind) {
		if exists[target] {
			g.Edges = append(g.Edges, Edge{ID: id, Source: source, Target: target, Kind: kind})
		}
	}

	for _, id := range sortedKeys(c.Chips) {
		chip := c.Chips[id]
		if chip.TargetBranch != "" {
			source := NodeID(NodeActionChip, id)
			addEdge(fmt.Sprintf("e-%s-%s", EdgeChipTarget, id),
				source, NodeID(NodeBranch, chip.TargetBranch), EdgeChipTarget)
		}
	}

	for _, id := range sortedKeys(c.Branches) {
		branch := c.Branches[id]
		source := NodeID(NodeBranch, id)
		if branch.AvailableCTAs.Primary != "" {
			addEdge(fmt.Sprintf("e-%s-%s", EdgePrimaryCTA, id),
				source, NodeID(NodeCTA, branch.AvailableCTAs.Primary), EdgePrimaryCTA)
		}
		// One edge per secondary CTA; the index keeps edge IDs distinct
		// when a branch declares several.
		for i, ctaID := range branch.AvailableCTAs.CleanSecondary() {
			addEdge(fmt.Sprintf("e-%s-%s-%d", EdgeSecondaryCTA, id, i),
				source, NodeID(NodeCTA, ctaID), EdgeSecondaryCTA)
		}
	}

	for _, id := range sortedKeys(c.CTAs) {
		cta := c.CTAs[id]
		source := NodeID(NodeCTA, id)
		switch cta.Action {
		case domain.CTAStartForm:
			if cta.FormID != "" {
				addEdge(fmt.Sprintf("e-%s-%s", EdgeStartsForm, id),
					source, NodeID(NodeForm, cta.FormID), EdgeStartsForm)
			}
		case domain.CTATargetBranch:
			if cta.TargetBranch != "" {
				addEdge(fmt.Sprintf("e-%s-%s", EdgeTargetBranch, id),
					source, NodeID(NodeBranch, cta.TargetBranch), EdgeTargetBranch)
			}
		}
	}

	for _, id := range sortedKeys(c.Forms) {
		form := c.Forms[id]
		if form.CompletionBranch != "" {
			addEdge(fmt.Sprintf("e-%s-%s", EdgeCompletion, id),
				NodeID(NodeForm, id), NodeID(NodeBranch, form.CompletionBranch), EdgeCompletion)
		}
	}

	return g
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
