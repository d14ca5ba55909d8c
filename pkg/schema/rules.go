package schema

import (
	"fmt"
	"net/url"

	"github.com/aretw0/canopy/pkg/domain"
)

// Length caps shared by all entity types.
const (
	MaxIDLength          = 64
	MaxLabelLength       = 80
	MaxTitleLength       = 120
	MaxDescriptionLength = 500
	MaxPhraseLength      = 200
)

// ActionRule declares the required-field set for one discriminant value.
// Required names the fields that must be non-empty; URLFields additionally
// must parse under the standard URL grammar with a scheme and host.
type ActionRule struct {
	Required  []string
	URLFields []string
}

// CTARules is the per-action required-field table for CTA Definitions.
// The discriminant decides the rule; the validator only walks the table.
var CTARules = map[domain.CTAAction]ActionRule{
	domain.CTAStartForm:    {Required: []string{"form_id"}},
	domain.CTAExternalLink: {Required: []string{"url"}, URLFields: []string{"url"}},
	domain.CTASendQuery:    {Required: []string{"query"}},
	domain.CTAShowInfo:     {Required: []string{"prompt"}},
	domain.CTATargetBranch: {Required: []string{"target_branch"}},
	domain.CTAShowShowcase: {Required: []string{"target_showcase_id"}},
}

// ChipRules is the per-action required-field table for Action Chips.
// show_showcase requires a target showcase instead of a value.
var ChipRules = map[domain.ChipAction]ActionRule{
	domain.ChipSendQuery:       {Required: []string{"value"}},
	domain.ChipExplicitRouting: {Required: []string{"target_branch"}},
	domain.ChipShowShowcase:    {Required: []string{"target_showcase_id"}},
}

// ShowcaseActionRules is the per-type required-field table for a showcase
// item's optional action.
var ShowcaseActionRules = map[domain.ShowcaseActionType]ActionRule{
	domain.ShowcasePrompt: {Required: []string{"action.prompt"}},
	domain.ShowcaseURL:    {Required: []string{"action.url"}, URLFields: []string{"action.url"}},
	domain.ShowcaseCTA:    {Required: []string{"action.cta_id"}},
}

// validURL reports whether raw parses under the standard URL grammar and
// carries both a scheme and a host.
func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// requireID validates the shared ID constraints: non-empty, grammar, length
// and namespace uniqueness.
func requireID(id string, vctx Context, errs FieldErrors) {
	switch {
	case id == "":
		errs["id"] = "ID is required"
	case !domain.IDPattern.MatchString(id):
		errs["id"] = "ID may only contain letters, digits, underscores and hyphens"
	case len(id) > MaxIDLength:
		errs["id"] = fmt.Sprintf("ID must be at most %d characters", MaxIDLength)
	default:
		if msg, ok := CheckUniqueID(id, vctx); !ok {
			errs["id"] = msg
		}
	}
}

// requireString enforces presence and a length cap on a free-text field.
func requireString(field, value, label string, max int, errs FieldErrors) {
	if value == "" {
		errs[field] = fmt.Sprintf("%s is required", label)
		return
	}
	capString(field, value, label, max, errs)
}

// capString enforces only the length cap, for optional fields.
func capString(field, value, label string, max int, errs FieldErrors) {
	if len(value) > max {
		errs[field] = fmt.Sprintf("%s must be at most %d characters", label, max)
	}
}
