package mailer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tropicacao/leads-api/internal/mailer"
	"github.com/tropicacao/leads-api/internal/models"
)

func quoteFields() map[string]string {
	return map[string]string{
		"firstName": "Awa",
		"lastName":  "Diabaté",
		"email":     "awa@chococi.example",
		"company":   "ChocoCI Trading",
		"product":   "liqueur",
		"quantity":  "12 tonnes",
	}
}

func TestBuildNotification(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	msg := mailer.BuildNotification(models.FormTypeQuote, quoteFields(),
		"leads@tropicacao.com", "sales@tropicacao.com", "203.0.113.7", at)

	require.NotNil(t, msg)
	assert.Equal(t, "sales@tropicacao.com", msg.To)
	assert.Equal(t, "awa@chococi.example", msg.ReplyTo)

	// Team notifications are always in French
	assert.Equal(t, "[Demande de devis] ChocoCI Trading", msg.Subject)

	assert.Contains(t, msg.HTML, "ChocoCI Trading")
	assert.Contains(t, msg.HTML, "liqueur")
	assert.Contains(t, msg.HTML, "12 tonnes")
	assert.Contains(t, msg.HTML, "203.0.113.7")
	assert.Contains(t, msg.Text, "Produit: liqueur")
}

func TestBuildNotification_EscapesHTML(t *testing.T) {
	fields := quoteFields()
	fields["company"] = `<script>alert("x")</script>`

	msg := mailer.BuildNotification(models.FormTypeQuote, fields,
		"leads@tropicacao.com", "sales@tropicacao.com", "203.0.113.7", time.Now())

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestBuildConfirmation_Locales(t *testing.T) {
	fr := mailer.BuildConfirmation(models.FormTypeQuote, quoteFields(),
		"leads@tropicacao.com", "fr", "https://tropicacao.com")
	require.NotNil(t, fr)
	assert.Equal(t, "awa@chococi.example", fr.To)
	assert.Contains(t, fr.HTML, "Bonjour Awa,")
	assert.Contains(t, fr.Subject, "Demande de devis")

	en := mailer.BuildConfirmation(models.FormTypeQuote, quoteFields(),
		"leads@tropicacao.com", "en", "https://tropicacao.com")
	require.NotNil(t, en)
	assert.Contains(t, en.HTML, "Hello Awa,")
	assert.Contains(t, en.Subject, "Quote request")
	assert.Contains(t, en.HTML, "https://tropicacao.com/products")
}

func TestBuildConfirmation_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	msg := mailer.BuildConfirmation(models.FormTypeContact, map[string]string{
		"firstName": "Jan",
		"email":     "jan@example.com",
		"company":   "Kakao GmbH",
		"subject":   "Pricing",
		"message":   "Looking forward to your catalogue.",
	}, "leads@tropicacao.com", "de", "https://tropicacao.com")

	require.NotNil(t, msg)
	assert.Contains(t, msg.HTML, "Hello Jan,")
}

func TestBuildConfirmation_NilWithoutEmail(t *testing.T) {
	fields := quoteFields()
	delete(fields, "email")

	msg := mailer.BuildConfirmation(models.FormTypeQuote, fields,
		"leads@tropicacao.com", "fr", "https://tropicacao.com")
	assert.Nil(t, msg)
}
