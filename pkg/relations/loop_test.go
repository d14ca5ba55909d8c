package relations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/canopy/pkg/domain"
)

func loopForm(triggers []string, confirmation string) domain.ConversationalForm {
	return domain.ConversationalForm{
		ID:             "f1",
		Title:          "Demo",
		TriggerPhrases: triggers,
		PostSubmission: &domain.PostSubmission{ConfirmationMessage: confirmation},
	}
}

func TestDetectTriggerLoop_Match(t *testing.T) {
	form := loopForm([]string{"book a demo"}, "Thanks! Want to book a demo with another team?")

	finding, ok := detectTriggerLoop(form)

	assert.True(t, ok)
	assert.Equal(t, domain.SeverityWarning, finding.Severity)
	assert.Contains(t, finding.Message, "book a demo")
}

func TestDetectTriggerLoop_CaseInsensitive(t *testing.T) {
	form := loopForm([]string{"Book A Demo"}, "thanks, you can BOOK a demo again")

	_, ok := detectTriggerLoop(form)
	assert.True(t, ok)
}

func TestDetectTriggerLoop_ShortPhrasesIgnored(t *testing.T) {
	// Phrases under the meaningful-length floor match everything and are
	// skipped.
	form := loopForm([]string{"hi", "ok"}, "hi there, all done. ok?")

	_, ok := detectTriggerLoop(form)
	assert.False(t, ok)
}

func TestDetectTriggerLoop_NoPostSubmission(t *testing.T) {
	form := domain.ConversationalForm{ID: "f1", TriggerPhrases: []string{"book a demo"}}

	_, ok := detectTriggerLoop(form)
	assert.False(t, ok)
}

func TestDetectTriggerLoop_NoOverlap(t *testing.T) {
	form := loopForm([]string{"book a demo"}, "Thanks, we will reach out shortly.")

	_, ok := detectTriggerLoop(form)
	assert.False(t, ok)
}
