package relations

import (
	"fmt"
	"strings"

	"github.com/aretw0/canopy/pkg/domain"
)

// minMeaningfulPhrase is the shortest trigger phrase the loop heuristic
// considers. Shorter phrases ("hi", "ok") show up in almost any
// confirmation text and would drown the signal in false positives.
const minMeaningfulPhrase = 5

// detectTriggerLoop flags a possible conversational loop: a form whose
// post-submission confirmation message textually contains one of its own
// trigger phrases, so completing the form could immediately re-trigger it.
//
// This is a heuristic over two text fields of a single entity, not a graph
// cycle check.
func detectTriggerLoop(form domain.ConversationalForm) (domain.Finding, bool) {
	if form.PostSubmission == nil || form.PostSubmission.ConfirmationMessage == "" {
		return domain.Finding{}, false
	}
	message := strings.ToLower(form.PostSubmission.ConfirmationMessage)

	for _, phrase := range form.TriggerPhrases {
		trimmed := strings.TrimSpace(phrase)
		if len(trimmed) < minMeaningfulPhrase {
			continue
		}
		if strings.Contains(message, strings.ToLower(trimmed)) {
			return domain.WarningFinding(domain.KindForm, form.ID,
				"post_submission.confirmation_message",
				fmt.Sprintf("Confirmation message contains trigger phrase %q and may re-trigger this form", trimmed)), true
		}
	}
	return domain.Finding{}, false
}
