package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"duebot-backend/models"
)

// decodeStrict parses exactly one JSON object into v. Unknown fields,
// type mismatches and trailing content are all rejected rather than
// trusting the model's output implicitly.
func decodeStrict(raw string, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode model response: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("trailing content after JSON object")
	}
	return nil
}

// reminderDraft is the two-field shape the drafting prompt demands.
type reminderDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// parseReminderDraft validates the model's drafting response: valid
// JSON with non-empty subject and body.
func parseReminderDraft(raw string) (*reminderDraft, error) {
	draft := &reminderDraft{}
	if err := decodeStrict(raw, draft); err != nil {
		return nil, err
	}
	if strings.TrimSpace(draft.Subject) == "" || strings.TrimSpace(draft.Body) == "" {
		return nil, fmt.Errorf("missing subject or body")
	}
	return draft, nil
}

// parseExtractedInvoice validates the model's extraction response
// against the fixed six-field candidate shape.
func parseExtractedInvoice(raw string) (*models.ExtractedInvoice, error) {
	candidate := &models.ExtractedInvoice{}
	if err := decodeStrict(raw, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}
