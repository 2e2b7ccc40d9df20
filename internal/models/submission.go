package models

import (
	"encoding/json"
	"fmt"
)

// FormType is the closed category of a lead submission, determining its
// required field shape.
type FormType string

const (
	FormTypeQuote       FormType = "quote"
	FormTypeSample      FormType = "sample"
	FormTypeSpecs       FormType = "specs"
	FormTypePartnership FormType = "partnership"
	FormTypeTransit     FormType = "transit"
	FormTypeContact     FormType = "contact"
	FormTypeQC          FormType = "qc"
)

// ValidFormTypes lists every accepted form type, in display order.
func ValidFormTypes() []string {
	return []string{
		string(FormTypeQuote),
		string(FormTypeSample),
		string(FormTypeSpecs),
		string(FormTypePartnership),
		string(FormTypeTransit),
		string(FormTypeContact),
		string(FormTypeQC),
	}
}

// ParseFormType validates a raw form type value.
func ParseFormType(raw string) (FormType, error) {
	switch FormType(raw) {
	case FormTypeQuote, FormTypeSample, FormTypeSpecs, FormTypePartnership,
		FormTypeTransit, FormTypeContact, FormTypeQC:
		return FormType(raw), nil
	default:
		return "", fmt.Errorf("unrecognized form type %q", raw)
	}
}

// Control field keys stripped from the open field mapping during decoding.
// They steer the pipeline and never appear in notification emails.
const (
	keyFormType       = "formType"
	keyRecaptchaToken = "recaptchaToken"
	keyLocale         = "locale"
	keyHoneypot       = "website"
	keySubmittedAt    = "submittedAt"
)

// Submission is a single inbound lead request. It is transient: constructed
// from the request body, validated once, never persisted.
type Submission struct {
	FormType       string
	RecaptchaToken string
	Locale         string
	Honeypot       string
	Fields         map[string]any
}

// UnmarshalJSON splits the flat request payload into control fields and the
// open form-specific field mapping.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw[keyFormType].(string); ok {
		s.FormType = v
	}
	if v, ok := raw[keyRecaptchaToken].(string); ok {
		s.RecaptchaToken = v
	}
	if v, ok := raw[keyLocale].(string); ok {
		s.Locale = v
	}
	if v, ok := raw[keyHoneypot].(string); ok {
		s.Honeypot = v
	}

	delete(raw, keyFormType)
	delete(raw, keyRecaptchaToken)
	delete(raw, keyLocale)
	delete(raw, keyHoneypot)
	delete(raw, keySubmittedAt)

	s.Fields = raw
	return nil
}

// EmailStatus reports the per-channel delivery outcome of a submission.
type EmailStatus struct {
	Notification bool `json:"notification"`
	Confirmation bool `json:"confirmation"`
}

// SubmitResponse is the success payload returned to the caller. The
// submission succeeds once it passes validation and abuse checks; email
// delivery is best-effort and reported per channel.
type SubmitResponse struct {
	Success  bool        `json:"success"`
	FormType string      `json:"formType"`
	Emails   EmailStatus `json:"emails"`
}
