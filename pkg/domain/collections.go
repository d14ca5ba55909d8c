package domain

import "regexp"

// IDPattern is the grammar every entity ID must match.
var IDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Collections is a full snapshot of one tenant's configuration. The engine
// never mutates a snapshot; every evaluation receives one and derives a
// fresh result from it.
//
// Programs, Forms, CTAs, Branches and Chips are keyed by entity ID.
// Showcase is an ordered list because item identity is carried by the ID
// field rather than the map key.
type Collections struct {
	Programs map[string]Program            `json:"programs,omitempty" yaml:"programs,omitempty" mapstructure:"programs"`
	Forms    map[string]ConversationalForm `json:"forms,omitempty" yaml:"forms,omitempty" mapstructure:"forms"`
	CTAs     map[string]CTADefinition      `json:"ctas,omitempty" yaml:"ctas,omitempty" mapstructure:"ctas"`
	Branches map[string]ConversationBranch `json:"branches,omitempty" yaml:"branches,omitempty" mapstructure:"branches"`
	Chips    map[string]ActionChip         `json:"chips,omitempty" yaml:"chips,omitempty" mapstructure:"chips"`
	Showcase []ShowcaseItem                `json:"showcase,omitempty" yaml:"showcase,omitempty" mapstructure:"showcase"`
}

// Lookup functions return the entity and whether the reference resolved, so
// "reference present but unresolved" stays a distinct, testable state from
// "reference absent". Nil maps behave as empty.

// Program resolves a program reference.
func (c Collections) Program(id string) (Program, bool) {
	p, ok := c.Programs[id]
	return p, ok
}

// Form resolves a form reference.
func (c Collections) Form(id string) (ConversationalForm, bool) {
	f, ok := c.Forms[id]
	return f, ok
}

// CTA resolves a CTA reference.
func (c Collections) CTA(id string) (CTADefinition, bool) {
	t, ok := c.CTAs[id]
	return t, ok
}

// Branch resolves a branch reference.
func (c Collections) Branch(id string) (ConversationBranch, bool) {
	b, ok := c.Branches[id]
	return b, ok
}

// Chip resolves an action-chip reference.
func (c Collections) Chip(id string) (ActionChip, bool) {
	ch, ok := c.Chips[id]
	return ch, ok
}

// ShowcaseItem resolves a showcase reference by scanning the ordered list.
func (c Collections) ShowcaseItem(id string) (ShowcaseItem, bool) {
	for _, item := range c.Showcase {
		if item.ID == id {
			return item, true
		}
	}
	return ShowcaseItem{}, false
}

// EntityCount returns the total number of entities across all six
// collections. Used for logging and metrics only.
func (c Collections) EntityCount() int {
	return len(c.Programs) + len(c.Forms) + len(c.CTAs) +
		len(c.Branches) + len(c.Chips) + len(c.Showcase)
}
