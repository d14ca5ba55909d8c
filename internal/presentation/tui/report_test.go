package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/report"
)

func TestBuildReport_Clean(t *testing.T) {
	out := BuildReport(report.Snapshot{MayDeploy: true})

	assert.Contains(t, out, "Verdict: PASS")
	assert.Contains(t, out, "No findings")
}

func TestBuildReport_GateClosed(t *testing.T) {
	snap := report.Snapshot{
		MayDeploy:   false,
		TotalErrors: 1,
		ByEntity: map[string]report.EntityFindings{
			"branch-b1": {
				Errors: []domain.Finding{
					{Field: "available_ctas.primary", Message: "Primary CTA is required"},
				},
			},
		},
	}

	out := BuildReport(snap)

	assert.Contains(t, out, "Verdict: FAIL")
	assert.Contains(t, out, "## branch-b1")
	assert.Contains(t, out, "Primary CTA is required")
	assert.Contains(t, out, "`available_ctas.primary`")
}
