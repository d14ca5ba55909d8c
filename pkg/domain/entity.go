package domain

// Kind identifies an entity type. It doubles as the namespace prefix for
// graph node IDs, so a Branch and a CTA that coincidentally share a raw ID
// never collide.
type Kind string

const (
	KindProgram  Kind = "program"
	KindForm     Kind = "form"
	KindCTA      Kind = "cta"
	KindBranch   Kind = "branch"
	KindChip     Kind = "chip"
	KindShowcase Kind = "showcase"
)

// Program is a top-level content grouping. Programs are referenced by forms
// but declare no outgoing references themselves.
type Program struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// FormField is a single input field inside a conversational form.
type FormField struct {
	ID       string `json:"id" yaml:"id" mapstructure:"id"`
	Label    string `json:"label" yaml:"label" mapstructure:"label"`
	Type     string `json:"type" yaml:"type" mapstructure:"type"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required"`
}

// PostSubmission describes what the assistant says once a form completes.
type PostSubmission struct {
	ConfirmationMessage string `json:"confirmation_message,omitempty" yaml:"confirmation_message,omitempty" mapstructure:"confirmation_message"`
}

// ConversationalForm is a multi-field data-capture flow.
//
// Program is an optional (but recommended) reference to a Program;
// CompletionBranch optionally routes the conversation after submission.
type ConversationalForm struct {
	ID               string          `json:"id" yaml:"id" mapstructure:"id"`
	Title            string          `json:"title" yaml:"title" mapstructure:"title"`
	Description      string          `json:"description" yaml:"description" mapstructure:"description"`
	Program          string          `json:"program,omitempty" yaml:"program,omitempty" mapstructure:"program"`
	Fields           []FormField     `json:"fields,omitempty" yaml:"fields,omitempty" mapstructure:"fields"`
	TriggerPhrases   []string        `json:"trigger_phrases,omitempty" yaml:"trigger_phrases,omitempty" mapstructure:"trigger_phrases"`
	CompletionBranch string          `json:"completion_branch,omitempty" yaml:"completion_branch,omitempty" mapstructure:"completion_branch"`
	PostSubmission   *PostSubmission `json:"post_submission,omitempty" yaml:"post_submission,omitempty" mapstructure:"post_submission"`
}

// CTAAction is the discriminant of a CTADefinition: it determines which of
// the action-conditioned fields must be present.
type CTAAction string

const (
	CTAStartForm    CTAAction = "start_form"
	CTAExternalLink CTAAction = "external_link"
	CTASendQuery    CTAAction = "send_query"
	CTAShowInfo     CTAAction = "show_info"
	CTATargetBranch CTAAction = "target_branch"
	CTAShowShowcase CTAAction = "show_showcase"
)

// CTAActions lists every valid CTA action, in a stable order.
var CTAActions = []CTAAction{
	CTAStartForm,
	CTAExternalLink,
	CTASendQuery,
	CTAShowInfo,
	CTATargetBranch,
	CTAShowShowcase,
}

// CTADefinition is a call-to-action. Exactly the fields relevant to its
// Action are required; the schema package owns the per-action rule table.
type CTADefinition struct {
	ID               string    `json:"id" yaml:"id" mapstructure:"id"`
	Label            string    `json:"label" yaml:"label" mapstructure:"label"`
	Action           CTAAction `json:"action" yaml:"action" mapstructure:"action"`
	FormID           string    `json:"form_id,omitempty" yaml:"form_id,omitempty" mapstructure:"form_id"`
	URL              string    `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
	Query            string    `json:"query,omitempty" yaml:"query,omitempty" mapstructure:"query"`
	Prompt           string    `json:"prompt,omitempty" yaml:"prompt,omitempty" mapstructure:"prompt"`
	TargetBranch     string    `json:"target_branch,omitempty" yaml:"target_branch,omitempty" mapstructure:"target_branch"`
	TargetShowcaseID string    `json:"target_showcase_id,omitempty" yaml:"target_showcase_id,omitempty" mapstructure:"target_showcase_id"`
}

// AvailableCTAs holds the CTA references a branch offers. Primary is
// mandatory; Secondary entries are optional and cleaned of empties before
// validation.
type AvailableCTAs struct {
	Primary   string   `json:"primary" yaml:"primary" mapstructure:"primary"`
	Secondary []string `json:"secondary,omitempty" yaml:"secondary,omitempty" mapstructure:"secondary"`
}

// CleanSecondary returns Secondary with empty entries removed.
func (a AvailableCTAs) CleanSecondary() []string {
	out := make([]string, 0, len(a.Secondary))
	for _, id := range a.Secondary {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// ConversationBranch routes the conversation when one of its detection
// keywords matches.
type ConversationBranch struct {
	ID                string        `json:"id" yaml:"id" mapstructure:"id"`
	DetectionKeywords []string      `json:"detection_keywords,omitempty" yaml:"detection_keywords,omitempty" mapstructure:"detection_keywords"`
	AvailableCTAs     AvailableCTAs `json:"available_ctas" yaml:"available_ctas" mapstructure:"available_ctas"`
}

// ChipAction is the discriminant of an ActionChip.
type ChipAction string

const (
	ChipSendQuery       ChipAction = "send_query"
	ChipExplicitRouting ChipAction = "explicit_routing"
	ChipShowShowcase    ChipAction = "show_showcase"
)

// ChipActions lists every valid chip action, in a stable order.
var ChipActions = []ChipAction{ChipSendQuery, ChipExplicitRouting, ChipShowShowcase}

// ActionChip is a conversation entry point. Chips are graph roots: they are
// never reported as orphaned regardless of incoming-edge count.
type ActionChip struct {
	ID               string     `json:"id" yaml:"id" mapstructure:"id"`
	Label            string     `json:"label" yaml:"label" mapstructure:"label"`
	Value            string     `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
	Action           ChipAction `json:"action" yaml:"action" mapstructure:"action"`
	TargetBranch     string     `json:"target_branch,omitempty" yaml:"target_branch,omitempty" mapstructure:"target_branch"`
	TargetShowcaseID string     `json:"target_showcase_id,omitempty" yaml:"target_showcase_id,omitempty" mapstructure:"target_showcase_id"`
}

// ShowcaseActionType discriminates a showcase item's optional action.
type ShowcaseActionType string

const (
	ShowcasePrompt ShowcaseActionType = "prompt"
	ShowcaseURL    ShowcaseActionType = "url"
	ShowcaseCTA    ShowcaseActionType = "cta"
)

// ShowcaseActionTypes lists every valid showcase action type.
var ShowcaseActionTypes = []ShowcaseActionType{ShowcasePrompt, ShowcaseURL, ShowcaseCTA}

// ShowcaseAction is the optional interaction attached to a showcase item.
type ShowcaseAction struct {
	Label  string             `json:"label" yaml:"label" mapstructure:"label"`
	Type   ShowcaseActionType `json:"type" yaml:"type" mapstructure:"type"`
	Prompt string             `json:"prompt,omitempty" yaml:"prompt,omitempty" mapstructure:"prompt"`
	URL    string             `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
	CTAID  string             `json:"cta_id,omitempty" yaml:"cta_id,omitempty" mapstructure:"cta_id"`
}

// ShowcaseItem is a promotable piece of content. Items live in an ordered
// list; identity is carried by the ID field rather than a map key.
type ShowcaseItem struct {
	ID          string          `json:"id" yaml:"id" mapstructure:"id"`
	Name        string          `json:"name" yaml:"name" mapstructure:"name"`
	Tagline     string          `json:"tagline" yaml:"tagline" mapstructure:"tagline"`
	Description string          `json:"description" yaml:"description" mapstructure:"description"`
	Type        string          `json:"type" yaml:"type" mapstructure:"type"`
	Keywords    []string        `json:"keywords,omitempty" yaml:"keywords,omitempty" mapstructure:"keywords"`
	ImageURL    string          `json:"image_url,omitempty" yaml:"image_url,omitempty" mapstructure:"image_url"`
	Action      *ShowcaseAction `json:"action,omitempty" yaml:"action,omitempty" mapstructure:"action"`
}
