package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/canopy/pkg/domain"
	enginegraph "github.com/aretw0/canopy/pkg/graph"
)

func TestGenerateMermaid(t *testing.T) {
	c := domain.Collections{
		Chips: map[string]domain.ActionChip{
			"ch1": {ID: "ch1", Label: "Sign up", Action: domain.ChipExplicitRouting, TargetBranch: "b1"},
		},
		Branches: map[string]domain.ConversationBranch{
			"b1": {ID: "b1", AvailableCTAs: domain.AvailableCTAs{Primary: "c1"}},
		},
		CTAs: map[string]domain.CTADefinition{
			"c1": {ID: "c1", Label: "Start", Action: domain.CTAStartForm, FormID: "f1"},
		},
		Forms: map[string]domain.ConversationalForm{
			"f1": {ID: "f1", Title: "Signup"},
		},
	}

	g := enginegraph.Build(c)
	out := GenerateMermaid(g)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `chip_ch1(("Sign up"))`)
	assert.Contains(t, out, `cta_c1[["Start"]]`)
	assert.Contains(t, out, `form_f1[/"Signup"/]`)
	assert.Contains(t, out, `branch_b1["b1"]`)
	assert.Contains(t, out, `chip_ch1 -- "chip_target" --> branch_b1`)
}

func TestGenerateMermaid_OverlayClasses(t *testing.T) {
	c := domain.Collections{
		Branches: map[string]domain.ConversationBranch{
			"b2": {ID: "b2", AvailableCTAs: domain.AvailableCTAs{Primary: "missing"}},
		},
	}

	g := enginegraph.Build(c)
	decorated := enginegraph.Decorate(g,
		enginegraph.DetectOrphans(g),
		enginegraph.DetectBrokenReferences(c))

	out := GenerateMermaid(decorated)

	// Broken styling wins over orphaned when both apply.
	assert.Contains(t, out, "class branch_b2 broken;")
	assert.NotContains(t, out, "class branch_b2 orphaned;")
	assert.Contains(t, out, "1 broken")
}
