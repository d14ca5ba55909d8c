package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/canopy/pkg/report"
)

// BuildReport renders a validation snapshot as markdown, suitable for the
// glamour renderer or for plain output when no TTY is attached.
func BuildReport(snap report.Snapshot) string {
	var sb strings.Builder

	sb.WriteString("# Validation Report\n\n")
	if snap.MayDeploy {
		sb.WriteString("**Verdict: PASS** (configuration may deploy)\n\n")
	} else {
		sb.WriteString("**Verdict: FAIL** (deploy gate is closed)\n\n")
	}
	sb.WriteString(fmt.Sprintf("- Errors: %d\n- Warnings: %d\n\n", snap.TotalErrors, snap.TotalWarnings))

	keys := make([]string, 0, len(snap.ByEntity))
	for k := range snap.ByEntity {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entry := snap.ByEntity[key]
		if len(entry.Errors) == 0 && len(entry.Warnings) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", key))
		for _, f := range entry.Errors {
			sb.WriteString(fmt.Sprintf("- ❌ %s\n", describe(f.Field, f.Message)))
		}
		for _, f := range entry.Warnings {
			sb.WriteString(fmt.Sprintf("- ⚠️ %s\n", describe(f.Field, f.Message)))
		}
		sb.WriteString("\n")
	}

	if snap.TotalErrors == 0 && snap.TotalWarnings == 0 {
		sb.WriteString("No findings. 🎉\n")
	}

	return sb.String()
}

func describe(field, message string) string {
	if field == "" {
		return message
	}
	return fmt.Sprintf("`%s`: %s", field, message)
}
