package models

import "strings"

// LegacyContactRequest is the older contact endpoint payload, kept for
// frontend versions that predate the per-form-type submission shape.
type LegacyContactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	ProductType    string `json:"productType"`
	Description    string `json:"description"`
	RecaptchaToken string `json:"recaptchaToken"`
	Locale         string `json:"locale"`
	Website        string `json:"website"`
}

// ToSubmission remaps the legacy shape onto a canonical contact submission:
// the single name field is split into first/last, productType becomes the
// subject and description becomes the message.
func (r *LegacyContactRequest) ToSubmission() *Submission {
	firstName, lastName := splitFullName(r.Name)

	fields := map[string]any{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     r.Email,
		"subject":   r.ProductType,
		"message":   r.Description,
	}
	if r.Phone != "" {
		fields["phone"] = r.Phone
	}
	if r.Company != "" {
		fields["company"] = r.Company
	}

	return &Submission{
		FormType:       string(FormTypeContact),
		RecaptchaToken: r.RecaptchaToken,
		Locale:         r.Locale,
		Honeypot:       r.Website,
		Fields:         fields,
	}
}

// splitFullName splits a full name on the first whitespace run. A
// single-token name is used for both parts so downstream validation does not
// reject legacy submitters who only provided one name.
func splitFullName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
