// Package relations validates referential integrity across a tenant's
// entity collections.
//
// Every declared reference is resolved against its target collection.
// Missing required references and dangling references are errors, with one
// deliberate exception: Form→Program resolves to a warning, because forms
// may exist in a pre-publish or shared state before programs are finalized.
// The package also emits content-hygiene warnings (unused Programs and
// CTAs) and a heuristic warning for forms whose confirmation message could
// re-trigger the form itself.
//
// Validate is a pure function over its inputs: same collections in, same
// result out. It performs no caching and no incremental diffing.
package relations

import (
	"fmt"
	"sort"

	"github.com/aretw0/canopy/pkg/domain"
)

// Result is the outcome of one relationship-validation pass.
type Result struct {
	Valid    bool             `json:"valid"`
	Errors   []domain.Finding `json:"errors"`
	Warnings []domain.Finding `json:"warnings"`
}

// Validate checks every cross-entity reference in the snapshot.
func Validate(c domain.Collections) Result {
	var errors, warnings []domain.Finding

	addError := func(f domain.Finding) { errors = append(errors, f) }
	addWarning := func(f domain.Finding) { warnings = append(warnings, f) }

	validateForms(c, addError, addWarning)
	validateCTAs(c, addError)
	validateBranches(c, addError)
	validateChips(c, addError)
	validateShowcase(c, addError)
	reportUnused(c, addWarning)

	return Result{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func validateForms(c domain.Collections, addError, addWarning func(domain.Finding)) {
	for _, id := range sortedKeys(c.Forms) {
		form := c.Forms[id]

		// Form→Program is warning severity in both directions of failure:
		// absent and unresolved. See the package comment for the rationale.
		if form.Program == "" {
			addWarning(domain.WarningFinding(domain.KindForm, id, "program",
				"Program reference is required"))
		} else if _, ok := c.Program(form.Program); !ok {
			addWarning(domain.WarningFinding(domain.KindForm, id, "program",
				fmt.Sprintf("References unknown program %q", form.Program)))
		}

		if form.CompletionBranch != "" {
			if _, ok := c.Branch(form.CompletionBranch); !ok {
				addError(domain.ErrorFinding(domain.KindForm, id, "completion_branch",
					fmt.Sprintf("References unknown branch %q", form.CompletionBranch)))
			}
		}

		if w, ok := detectTriggerLoop(form); ok {
			addWarning(w)
		}
	}
}

func validateCTAs(c domain.Collections, addError func(domain.Finding)) {
	for _, id := range sortedKeys(c.CTAs) {
		cta := c.CTAs[id]
		switch cta.Action {
		case domain.CTAStartForm:
			if cta.FormID == "" {
				addError(domain.ErrorFinding(domain.KindCTA, id, "form_id",
					"Form ID is required"))
			} else if _, ok := c.Form(cta.FormID); !ok {
				addError(domain.ErrorFinding(domain.KindCTA, id, "form_id",
					fmt.Sprintf("References unknown form %q", cta.FormID)))
			}
		case domain.CTATargetBranch:
			if cta.TargetBranch == "" {
				addError(domain.ErrorFinding(domain.KindCTA, id, "target_branch",
					"Target branch is required"))
			} else if _, ok := c.Branch(cta.TargetBranch); !ok {
				addError(domain.ErrorFinding(domain.KindCTA, id, "target_branch",
					fmt.Sprintf("References unknown branch %q", cta.TargetBranch)))
			}
		case domain.CTAShowShowcase:
			if cta.TargetShowcaseID == "" {
				addError(domain.ErrorFinding(domain.KindCTA, id, "target_showcase_id",
					"Target showcase is required"))
			} else if _, ok := c.ShowcaseItem(cta.TargetShowcaseID); !ok {
				addError(domain.ErrorFinding(domain.KindCTA, id, "target_showcase_id",
					fmt.Sprintf("References unknown showcase item %q", cta.TargetShowcaseID)))
			}
		}
		// external_link URLs are validated syntactically by the schema
		// package and never as a graph edge.
	}
}

func validateBranches(c domain.Collections, addError func(domain.Finding)) {
	for _, id := range sortedKeys(c.Branches) {
		branch := c.Branches[id]

		if branch.AvailableCTAs.Primary == "" {
			addError(domain.ErrorFinding(domain.KindBranch, id, "available_ctas.primary",
				"Primary CTA is required"))
		} else if _, ok := c.CTA(branch.AvailableCTAs.Primary); !ok {
			addError(domain.ErrorFinding(domain.KindBranch, id, "available_ctas.primary",
				fmt.Sprintf("References unknown CTA %q", branch.AvailableCTAs.Primary)))
		}

		for i, ctaID := range branch.AvailableCTAs.CleanSecondary() {
			if _, ok := c.CTA(ctaID); !ok {
				addError(domain.ErrorFinding(domain.KindBranch, id,
					fmt.Sprintf("available_ctas.secondary[%d]", i),
					fmt.Sprintf("References unknown CTA %q", ctaID)))
			}
		}
	}
}

func validateChips(c domain.Collections, addError func(domain.Finding)) {
	for _, id := range sortedKeys(c.Chips) {
		chip := c.Chips[id]

		if chip.TargetBranch != "" {
			if _, ok := c.Branch(chip.TargetBranch); !ok {
				addError(domain.ErrorFinding(domain.KindChip, id, "target_branch",
					fmt.Sprintf("References unknown branch %q", chip.TargetBranch)))
			}
		} else if chip.Action == domain.ChipExplicitRouting {
			addError(domain.ErrorFinding(domain.KindChip, id, "target_branch",
				"Target branch is required"))
		}

		if chip.TargetShowcaseID != "" {
			if _, ok := c.ShowcaseItem(chip.TargetShowcaseID); !ok {
				addError(domain.ErrorFinding(domain.KindChip, id, "target_showcase_id",
					fmt.Sprintf("References unknown showcase item %q", chip.TargetShowcaseID)))
			}
		} else if chip.Action == domain.ChipShowShowcase {
			addError(domain.ErrorFinding(domain.KindChip, id, "target_showcase_id",
				"Target showcase is required"))
		}
	}
}

func validateShowcase(c domain.Collections, addError func(domain.Finding)) {
	for _, item := range c.Showcase {
		if item.Action == nil || item.Action.Type != domain.ShowcaseCTA {
			continue
		}
		if item.Action.CTAID == "" {
			addError(domain.ErrorFinding(domain.KindShowcase, item.ID, "action.cta_id",
				"Action CTA is required"))
		} else if _, ok := c.CTA(item.Action.CTAID); !ok {
			addError(domain.ErrorFinding(domain.KindShowcase, item.ID, "action.cta_id",
				fmt.Sprintf("References unknown CTA %q", item.Action.CTAID)))
		}
	}
}

// reportUnused emits one content-hygiene warning per entity that nothing
// points to: Programs no form references, and CTAs no branch or showcase
// action references. This is computed directly over the relational
// collections, distinct from graph-level orphan detection.
func reportUnused(c domain.Collections, addWarning func(domain.Finding)) {
	usedPrograms := make(map[string]bool)
	for _, form := range c.Forms {
		if form.Program != "" {
			usedPrograms[form.Program] = true
		}
	}
	for _, id := range sortedKeys(c.Programs) {
		if !usedPrograms[id] {
			addWarning(domain.WarningFinding(domain.KindProgram, id, "",
				"Program is not referenced by any form"))
		}
	}

	usedCTAs := make(map[string]bool)
	for _, branch := range c.Branches {
		if branch.AvailableCTAs.Primary != "" {
			usedCTAs[branch.AvailableCTAs.Primary] = true
		}
		for _, ctaID := range branch.AvailableCTAs.CleanSecondary() {
			usedCTAs[ctaID] = true
		}
	}
	for _, item := range c.Showcase {
		if item.Action != nil && item.Action.Type == domain.ShowcaseCTA && item.Action.CTAID != "" {
			usedCTAs[item.Action.CTAID] = true
		}
	}
	for _, id := range sortedKeys(c.CTAs) {
		if !usedCTAs[id] {
			addWarning(domain.WarningFinding(domain.KindCTA, id, "",
				"CTA is not referenced by any branch or showcase item"))
		}
	}
}

// sortedKeys keeps finding order deterministic across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
