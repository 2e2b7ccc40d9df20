package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tropicacao/leads-api/internal/models"
)

func TestLegacyContactRequest_ToSubmission(t *testing.T) {
	req := &models.LegacyContactRequest{
		Name:           "Awa Diabaté",
		Email:          "awa@chococi.example",
		Phone:          "+225 07 08 09 10 11",
		Company:        "ChocoCI Trading",
		ProductType:    "beurre",
		Description:    "Interested in a yearly supply contract.",
		RecaptchaToken: "tok-123",
		Locale:         "fr",
	}

	sub := req.ToSubmission()

	assert.Equal(t, "contact", sub.FormType)
	assert.Equal(t, "tok-123", sub.RecaptchaToken)
	assert.Equal(t, "fr", sub.Locale)
	assert.Equal(t, "Awa", sub.Fields["firstName"])
	assert.Equal(t, "Diabaté", sub.Fields["lastName"])
	assert.Equal(t, "beurre", sub.Fields["subject"])
	assert.Equal(t, "Interested in a yearly supply contract.", sub.Fields["message"])
	assert.Equal(t, "+225 07 08 09 10 11", sub.Fields["phone"])
	assert.Equal(t, "ChocoCI Trading", sub.Fields["company"])
}

func TestLegacyContactRequest_SingleName(t *testing.T) {
	req := &models.LegacyContactRequest{Name: "Awa"}
	sub := req.ToSubmission()

	// A single token fills both parts so validation does not reject it
	assert.Equal(t, "Awa", sub.Fields["firstName"])
	assert.Equal(t, "Awa", sub.Fields["lastName"])
}

func TestLegacyContactRequest_HoneypotPassedThrough(t *testing.T) {
	req := &models.LegacyContactRequest{Name: "Awa Diabaté", Website: "https://spam.example"}
	assert.Equal(t, "https://spam.example", req.ToSubmission().Honeypot)
}

func TestLegacyContactRequest_OmitsEmptyOptionals(t *testing.T) {
	req := &models.LegacyContactRequest{Name: "Awa Diabaté", Email: "awa@chococi.example"}
	sub := req.ToSubmission()

	assert.NotContains(t, sub.Fields, "phone")
	assert.NotContains(t, sub.Fields, "company")
}
