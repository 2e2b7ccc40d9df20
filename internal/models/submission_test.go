package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tropicacao/leads-api/internal/models"
)

func TestSubmission_UnmarshalJSON_SplitsControlFields(t *testing.T) {
	payload := `{
		"formType": "quote",
		"recaptchaToken": "tok-123",
		"locale": "en",
		"website": "",
		"submittedAt": "2026-03-14T09:30:00Z",
		"firstName": "Awa",
		"company": "ChocoCI Trading",
		"quantity": 12
	}`

	var sub models.Submission
	require.NoError(t, json.Unmarshal([]byte(payload), &sub))

	assert.Equal(t, "quote", sub.FormType)
	assert.Equal(t, "tok-123", sub.RecaptchaToken)
	assert.Equal(t, "en", sub.Locale)
	assert.Empty(t, sub.Honeypot)

	// Control fields never leak into the open field mapping
	assert.NotContains(t, sub.Fields, "formType")
	assert.NotContains(t, sub.Fields, "recaptchaToken")
	assert.NotContains(t, sub.Fields, "locale")
	assert.NotContains(t, sub.Fields, "website")
	assert.NotContains(t, sub.Fields, "submittedAt")

	assert.Equal(t, "Awa", sub.Fields["firstName"])
	assert.Equal(t, float64(12), sub.Fields["quantity"])
}

func TestSubmission_UnmarshalJSON_HoneypotCaptured(t *testing.T) {
	var sub models.Submission
	require.NoError(t, json.Unmarshal([]byte(`{"formType":"contact","website":"https://spam.example"}`), &sub))
	assert.Equal(t, "https://spam.example", sub.Honeypot)
}

func TestParseFormType(t *testing.T) {
	for _, raw := range models.ValidFormTypes() {
		ft, err := models.ParseFormType(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, string(ft))
	}

	_, err := models.ParseFormType("newsletter")
	assert.Error(t, err)
}
