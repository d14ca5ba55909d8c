package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/graph"
	"github.com/aretw0/canopy/pkg/relations"
	"github.com/aretw0/canopy/pkg/schema"
)

func TestAggregate_CleanConfigMayDeploy(t *testing.T) {
	s := Aggregate(nil, relations.Result{Valid: true}, nil)

	assert.True(t, s.MayDeploy)
	assert.Zero(t, s.TotalErrors)
	assert.Zero(t, s.TotalWarnings)
	assert.Empty(t, s.ByEntity)
}

func TestAggregate_FieldErrorsCloseGate(t *testing.T) {
	findings := SchemaFindings{
		domain.KindCTA: {
			"c1": schema.FieldErrors{"url": "URL is required for external_link action"},
		},
	}

	s := Aggregate(findings, relations.Result{Valid: true}, nil)

	assert.False(t, s.MayDeploy)
	assert.Equal(t, 1, s.TotalErrors)

	entity := s.Entity(domain.KindCTA, "c1")
	require.Len(t, entity.Errors, 1)
	assert.Equal(t, "url", entity.Errors[0].Field)
}

func TestAggregate_WarningsNeverBlock(t *testing.T) {
	rel := relations.Result{
		Valid: true,
		Warnings: []domain.Finding{
			domain.WarningFinding(domain.KindForm, "f1", "program", "Program reference is required"),
		},
	}
	broken := []graph.BrokenReference{
		{NodeID: "form-f1", ReferenceType: "program", ReferencedID: "ghost", Severity: domain.SeverityWarning},
	}

	s := Aggregate(nil, rel, broken)

	assert.True(t, s.MayDeploy, "warnings are advisory")
	assert.Equal(t, 2, s.TotalWarnings)
	assert.Zero(t, s.TotalErrors)
}

func TestAggregate_BrokenRefErrorKeyedByEntity(t *testing.T) {
	broken := []graph.BrokenReference{
		{NodeID: "branch-b1", ReferenceType: "primary_cta", ReferencedID: "nonexistent_cta", Severity: domain.SeverityError},
	}

	s := Aggregate(nil, relations.Result{Valid: true}, broken)

	assert.False(t, s.MayDeploy)
	entity := s.Entity(domain.KindBranch, "b1")
	require.Len(t, entity.Errors, 1)
	assert.Contains(t, entity.Errors[0].Message, "nonexistent_cta")
}

func TestAggregate_CrossTypeIDsStaySeparate(t *testing.T) {
	rel := relations.Result{
		Errors: []domain.Finding{
			domain.ErrorFinding(domain.KindBranch, "dup", "available_ctas.primary", "Primary CTA is required"),
			domain.ErrorFinding(domain.KindCTA, "dup", "form_id", "Form ID is required"),
		},
	}

	s := Aggregate(nil, rel, nil)

	assert.Len(t, s.Entity(domain.KindBranch, "dup").Errors, 1)
	assert.Len(t, s.Entity(domain.KindCTA, "dup").Errors, 1)
}

func TestSnapshot_AllErrors(t *testing.T) {
	rel := relations.Result{
		Errors: []domain.Finding{
			domain.ErrorFinding(domain.KindCTA, "c2", "form_id", "Form ID is required"),
			domain.ErrorFinding(domain.KindBranch, "b1", "available_ctas.primary", "Primary CTA is required"),
		},
		Warnings: []domain.Finding{
			domain.WarningFinding(domain.KindProgram, "p1", "", "Program is not referenced by any form"),
		},
	}

	s := Aggregate(nil, rel, nil)

	all := s.AllErrors()
	require.Len(t, all, 2, "warnings are excluded from the error list")
	// Sorted by entity key: branch-b1 before cta-c2.
	assert.Equal(t, "b1", all[0].EntityID)
	assert.Equal(t, "c2", all[1].EntityID)
}
