package schema

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/domain"
)

// fieldLabels maps wire field names to the labels used in messages.
var fieldLabels = map[string]string{
	"form_id":            "Form ID",
	"url":                "URL",
	"query":              "Query",
	"prompt":             "Prompt",
	"target_branch":      "Target branch",
	"target_showcase_id": "Target showcase",
	"value":              "Value",
	"action.prompt":      "Action prompt",
	"action.url":         "Action URL",
	"action.cta_id":      "Action CTA",
}

func fieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// applyActionRule checks one discriminant-conditioned rule: every required
// field must be non-empty, and URL fields must parse.
func applyActionRule(action string, rule ActionRule, get func(string) string, errs FieldErrors) {
	for _, field := range rule.Required {
		if get(field) == "" {
			errs[field] = fmt.Sprintf("%s is required for %s action", fieldLabel(field), action)
		}
	}
	for _, field := range rule.URLFields {
		if v := get(field); v != "" && !validURL(v) {
			errs[field] = fmt.Sprintf("%s must be a valid URL", fieldLabel(field))
		}
	}
}

// ValidateProgram checks a Program's own fields.
func ValidateProgram(p domain.Program, vctx Context) FieldErrors {
	errs := FieldErrors{}
	requireID(p.ID, vctx, errs)
	requireString("name", p.Name, "Name", MaxLabelLength, errs)
	capString("description", p.Description, "Description", MaxDescriptionLength, errs)
	return errs
}

// ValidateForm checks a Conversational Form's own fields. Cross-entity
// references (program, completion branch) are the relations package's job.
func ValidateForm(f domain.ConversationalForm, vctx Context) FieldErrors {
	errs := FieldErrors{}
	requireID(f.ID, vctx, errs)
	requireString("title", f.Title, "Title", MaxTitleLength, errs)
	requireString("description", f.Description, "Description", MaxDescriptionLength, errs)
	for i, field := range f.Fields {
		if field.ID == "" {
			errs[fmt.Sprintf("fields[%d].id", i)] = "Field ID is required"
		}
		if field.Label == "" {
			errs[fmt.Sprintf("fields[%d].label", i)] = "Field label is required"
		}
	}
	for i, phrase := range f.TriggerPhrases {
		if len(phrase) > MaxPhraseLength {
			errs[fmt.Sprintf("trigger_phrases[%d]", i)] = fmt.Sprintf("Trigger phrase must be at most %d characters", MaxPhraseLength)
		}
	}
	return errs
}

// ValidateCTA checks a CTA Definition's own fields. The action discriminant
// selects the required-field rule from CTARules.
func ValidateCTA(c domain.CTADefinition, vctx Context) FieldErrors {
	errs := FieldErrors{}
	requireID(c.ID, vctx, errs)
	requireString("label", c.Label, "Label", MaxLabelLength, errs)

	rule, known := CTARules[c.Action]
	if !known {
		if c.Action == "" {
			errs["action"] = "Action is required"
		} else {
			errs["action"] = fmt.Sprintf("Unknown action %q", c.Action)
		}
		return errs
	}

	applyActionRule(string(c.Action), rule, func(field string) string {
		switch field {
		case "form_id":
			return c.FormID
		case "url":
			return c.URL
		case "query":
			return c.Query
		case "prompt":
			return c.Prompt
		case "target_branch":
			return c.TargetBranch
		case "target_showcase_id":
			return c.TargetShowcaseID
		}
		return ""
	}, errs)
	return errs
}

// ValidateBranch checks a Conversation Branch's own fields. The primary CTA
// reference must always be declared; whether it resolves is checked by the
// relations package.
func ValidateBranch(b domain.ConversationBranch, vctx Context) FieldErrors {
	errs := FieldErrors{}
	requireID(b.ID, vctx, errs)
	if len(b.DetectionKeywords) == 0 {
		errs["detection_keywords"] = "At least one detection keyword is required"
	}
	if b.AvailableCTAs.Primary == "" {
		errs["available_ctas.primary"] = "Primary CTA is required"
	}
	return errs
}

// ValidateChip checks an Action Chip's own fields against ChipRules.
func ValidateChip(ch domain.ActionChip, vctx Context) FieldErrors {
	errs := FieldErrors{}
	requireID(ch.ID, vctx, errs)
	requireString("label", ch.Label, "Label", MaxLabelLength, errs)

	rule, known := ChipRules[ch.Action]
	if !known {
		if ch.Action == "" {
			errs["action"] = "Action is required"
		} else {
			errs["action"] = fmt.Sprintf("Unknown action %q", ch.Action)
		}
		return errs
	}

	applyActionRule(string(ch.Action), rule, func(field string) string {
		switch field {
		case "value":
			return ch.Value
		case "target_branch":
			return ch.TargetBranch
		case "target_showcase_id":
			return ch.TargetShowcaseID
		}
		return ""
	}, errs)
	return errs
}

// ValidateShowcaseItem checks a Showcase Item's own fields, including the
// optional action's discriminant-conditioned requirements.
func ValidateShowcaseItem(s domain.ShowcaseItem, vctx Context) FieldErrors {
	errs := FieldErrors{}
	requireID(s.ID, vctx, errs)
	requireString("name", s.Name, "Name", MaxLabelLength, errs)
	requireString("tagline", s.Tagline, "Tagline", MaxTitleLength, errs)
	requireString("description", s.Description, "Description", MaxDescriptionLength, errs)
	requireString("type", s.Type, "Type", MaxLabelLength, errs)
	if s.ImageURL != "" && !validURL(s.ImageURL) {
		errs["image_url"] = "Image URL must be a valid URL"
	}

	if s.Action == nil {
		return errs
	}
	if s.Action.Label == "" {
		errs["action.label"] = "Action label is required"
	}
	rule, known := ShowcaseActionRules[s.Action.Type]
	if !known {
		if s.Action.Type == "" {
			errs["action.type"] = "Action type is required"
		} else {
			errs["action.type"] = fmt.Sprintf("Unknown action type %q", s.Action.Type)
		}
		return errs
	}
	applyActionRule(string(s.Action.Type), rule, func(field string) string {
		switch field {
		case "action.prompt":
			return s.Action.Prompt
		case "action.url":
			return s.Action.URL
		case "action.cta_id":
			return s.Action.CTAID
		}
		return ""
	}, errs)
	return errs
}

// ValidateEntity dispatches to the validator for the given kind. The entity
// must be the matching domain type; a mismatch is a programmer error and
// reported as such rather than silently passing.
func ValidateEntity(kind domain.Kind, entity any, vctx Context) FieldErrors {
	switch kind {
	case domain.KindProgram:
		if p, ok := entity.(domain.Program); ok {
			return ValidateProgram(p, vctx)
		}
	case domain.KindForm:
		if f, ok := entity.(domain.ConversationalForm); ok {
			return ValidateForm(f, vctx)
		}
	case domain.KindCTA:
		if c, ok := entity.(domain.CTADefinition); ok {
			return ValidateCTA(c, vctx)
		}
	case domain.KindBranch:
		if b, ok := entity.(domain.ConversationBranch); ok {
			return ValidateBranch(b, vctx)
		}
	case domain.KindChip:
		if ch, ok := entity.(domain.ActionChip); ok {
			return ValidateChip(ch, vctx)
		}
	case domain.KindShowcase:
		if s, ok := entity.(domain.ShowcaseItem); ok {
			return ValidateShowcaseItem(s, vctx)
		}
	default:
		return FieldErrors{"kind": fmt.Sprintf("unknown entity kind %q", kind)}
	}
	return FieldErrors{"kind": fmt.Sprintf("entity value %T does not match kind %q", entity, kind)}
}
