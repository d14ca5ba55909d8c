package relations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/domain"
)

// wellFormed returns a snapshot with every reference resolvable.
func wellFormed() domain.Collections {
	return domain.Collections{
		Programs: map[string]domain.Program{
			"p1": {ID: "p1", Name: "Onboarding"},
		},
		Forms: map[string]domain.ConversationalForm{
			"f1": {ID: "f1", Title: "Signup", Description: "d", Program: "p1", CompletionBranch: "b1"},
		},
		CTAs: map[string]domain.CTADefinition{
			"c1": {ID: "c1", Label: "Start", Action: domain.CTAStartForm, FormID: "f1"},
			"c2": {ID: "c2", Label: "More", Action: domain.CTATargetBranch, TargetBranch: "b1"},
		},
		Branches: map[string]domain.ConversationBranch{
			"b1": {ID: "b1", DetectionKeywords: []string{"signup"},
				AvailableCTAs: domain.AvailableCTAs{Primary: "c1", Secondary: []string{"c2"}}},
		},
		Chips: map[string]domain.ActionChip{
			"ch1": {ID: "ch1", Label: "Sign up", Action: domain.ChipExplicitRouting, TargetBranch: "b1"},
		},
		Showcase: []domain.ShowcaseItem{
			{ID: "s1", Name: "Kit", Tagline: "t", Description: "d", Type: "bundle",
				Action: &domain.ShowcaseAction{Label: "Go", Type: domain.ShowcaseCTA, CTAID: "c1"}},
		},
	}
}

func TestValidate_WellFormed(t *testing.T) {
	res := Validate(wellFormed())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidate_BranchPrimaryDangling(t *testing.T) {
	c := wellFormed()
	b := c.Branches["b1"]
	b.AvailableCTAs.Primary = "nonexistent_cta"
	c.Branches["b1"] = b

	res := Validate(c)

	assert.False(t, res.Valid)
	found := false
	for _, e := range res.Errors {
		if e.Kind == domain.KindBranch && e.EntityID == "b1" {
			assert.Contains(t, e.Message, "nonexistent_cta")
			found = true
		}
	}
	assert.True(t, found, "dangling primary CTA should be reported against b1")
}

func TestValidate_BranchPrimaryEmpty(t *testing.T) {
	c := wellFormed()
	b := c.Branches["b1"]
	b.AvailableCTAs.Primary = ""
	c.Branches["b1"] = b

	res := Validate(c)

	require.False(t, res.Valid)
	assert.Equal(t, "Primary CTA is required", res.Errors[0].Message)
}

func TestValidate_SecondaryFilteredOfEmpties(t *testing.T) {
	c := wellFormed()
	b := c.Branches["b1"]
	b.AvailableCTAs.Secondary = []string{"", "c2", ""}
	c.Branches["b1"] = b

	res := Validate(c)
	assert.True(t, res.Valid, "empty secondary entries must be filtered, got %v", res.Errors)
}

func TestValidate_FormProgramSeverityAsymmetry(t *testing.T) {
	// Form→Program failures are warnings, never errors; CTA→Form stays an
	// error. The asymmetry is an intentional product decision.
	c := wellFormed()

	f := c.Forms["f1"]
	f.Program = ""
	c.Forms["f1"] = f

	res := Validate(c)
	assert.True(t, res.Valid, "missing program reference must not close the gate")

	var programWarnings []domain.Finding
	for _, w := range res.Warnings {
		if w.Kind == domain.KindForm && w.Field == "program" {
			programWarnings = append(programWarnings, w)
		}
	}
	require.Len(t, programWarnings, 1)
	assert.Equal(t, "Program reference is required", programWarnings[0].Message)

	// Unresolved program is still only a warning.
	f.Program = "ghost"
	c.Forms["f1"] = f
	res = Validate(c)
	assert.True(t, res.Valid)
}

func TestValidate_CTAStartFormMissingFormID(t *testing.T) {
	c := wellFormed()
	cta := c.CTAs["c1"]
	cta.FormID = ""
	c.CTAs["c1"] = cta

	res := Validate(c)

	require.False(t, res.Valid)
	found := false
	for _, e := range res.Errors {
		if e.Kind == domain.KindCTA && e.EntityID == "c1" {
			assert.Contains(t, e.Message, "Form ID is required")
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_FormCompletionBranchDangling(t *testing.T) {
	c := wellFormed()
	f := c.Forms["f1"]
	f.CompletionBranch = "gone"
	c.Forms["f1"] = f

	res := Validate(c)

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors[0].Message, `"gone"`)
}

func TestValidate_ChipExplicitRoutingRequiresBranch(t *testing.T) {
	c := wellFormed()
	ch := c.Chips["ch1"]
	ch.TargetBranch = ""
	c.Chips["ch1"] = ch

	res := Validate(c)
	require.False(t, res.Valid)
	assert.Equal(t, "Target branch is required", res.Errors[0].Message)
}

func TestValidate_UnusedEntityWarnings(t *testing.T) {
	c := wellFormed()
	c.Programs["p2"] = domain.Program{ID: "p2", Name: "Idle"}
	c.CTAs["c3"] = domain.CTADefinition{ID: "c3", Label: "Lonely", Action: domain.CTASendQuery, Query: "q"}

	res := Validate(c)

	assert.True(t, res.Valid, "unused entities are warnings, not errors")

	var unusedProgram, unusedCTA int
	for _, w := range res.Warnings {
		if w.Kind == domain.KindProgram && w.EntityID == "p2" {
			unusedProgram++
		}
		if w.Kind == domain.KindCTA && w.EntityID == "c3" {
			unusedCTA++
		}
	}
	assert.Equal(t, 1, unusedProgram, "unused program reported once")
	assert.Equal(t, 1, unusedCTA, "unused CTA reported once")
}

func TestValidate_Deterministic(t *testing.T) {
	c := wellFormed()
	c.Programs["p2"] = domain.Program{ID: "p2", Name: "Idle"}

	first := Validate(c)
	second := Validate(c)

	assert.Equal(t, first, second)
}
