package graph

import (
	"fmt"
	"strings"

	enginegraph "github.com/aretw0/canopy/pkg/graph"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a
// decorated dependency graph. It applies semantic styling:
// - Action Chip: ((Circle)), the conversation entry point
// - CTA: [[Subroutine]]
// - Form: [/Parallelogram/] (input)
// - Branch: [Rectangle]
// Orphaned nodes and nodes with broken references get overlay classes.
func GenerateMermaid(g enginegraph.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch node.Type {
		case enginegraph.NodeActionChip:
			opener, closer = "((", "))"
		case enginegraph.NodeCTA:
			opener, closer = "[[", "]]"
		case enginegraph.NodeForm:
			opener, closer = "[/", "/]"
		}

		label := node.Label
		if label == "" {
			label = node.EntityID
		}
		if len(node.BrokenRefs) > 0 {
			label = fmt.Sprintf("%s <br/> ⚠ %d broken", label, len(node.BrokenRefs))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaidLabel(label), closer))
	}

	for _, edge := range g.Edges {
		safeSource := sanitizeMermaidID(edge.Source)
		safeTarget := sanitizeMermaidID(edge.Target)
		arrow := fmt.Sprintf("-- \"%s\" -->", edge.Kind)
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeSource, arrow, safeTarget))
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme.
	sb.WriteString("    classDef orphaned fill:#fff3e0,stroke:#e65100,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef broken fill:#ffebee,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

	for _, node := range g.Nodes {
		safeID := sanitizeMermaidID(node.ID)
		// Broken wins over orphaned when both apply.
		if len(node.BrokenRefs) > 0 {
			sb.WriteString(fmt.Sprintf("    class %s broken;\n", safeID))
		} else if node.IsOrphaned {
			sb.WriteString(fmt.Sprintf("    class %s orphaned;\n", safeID))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
