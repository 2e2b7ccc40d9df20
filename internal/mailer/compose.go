package mailer

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/tropicacao/leads-api/internal/models"
)

// The operations team works in French regardless of the submitter's locale.
const opsLocale = "fr"

var formTypeLabels = map[models.FormType]map[string]string{
	models.FormTypeQuote:       {"fr": "Demande de devis", "en": "Quote request"},
	models.FormTypeSample:      {"fr": "Demande d'échantillon", "en": "Sample request"},
	models.FormTypeSpecs:       {"fr": "Demande de fiches techniques", "en": "Specification request"},
	models.FormTypePartnership: {"fr": "Demande de partenariat", "en": "Partnership inquiry"},
	models.FormTypeTransit:     {"fr": "Demande de transit", "en": "Transit inquiry"},
	models.FormTypeContact:     {"fr": "Message de contact", "en": "Contact message"},
	models.FormTypeQC:          {"fr": "Demande qualité", "en": "Quality inquiry"},
}

var fieldLabels = map[string]map[string]string{
	"firstName":       {"fr": "Prénom", "en": "First name"},
	"lastName":        {"fr": "Nom", "en": "Last name"},
	"email":           {"fr": "Email", "en": "Email"},
	"phone":           {"fr": "Téléphone", "en": "Phone"},
	"company":         {"fr": "Société", "en": "Company"},
	"country":         {"fr": "Pays", "en": "Country"},
	"product":         {"fr": "Produit", "en": "Product"},
	"quantity":        {"fr": "Quantité", "en": "Quantity"},
	"incoterm":        {"fr": "Incoterm", "en": "Incoterm"},
	"purpose":         {"fr": "Usage prévu", "en": "Intended use"},
	"shippingAddress": {"fr": "Adresse de livraison", "en": "Shipping address"},
	"application":     {"fr": "Application", "en": "Application"},
	"certifications":  {"fr": "Certifications", "en": "Certifications"},
	"partnershipType": {"fr": "Type de partenariat", "en": "Partnership type"},
	"annualVolume":    {"fr": "Volume annuel", "en": "Annual volume"},
	"commodity":       {"fr": "Marchandise", "en": "Commodity"},
	"origin":          {"fr": "Origine", "en": "Origin"},
	"destination":     {"fr": "Destination", "en": "Destination"},
	"volume":          {"fr": "Volume", "en": "Volume"},
	"subject":         {"fr": "Objet", "en": "Subject"},
	"topic":           {"fr": "Sujet", "en": "Topic"},
	"message":         {"fr": "Message", "en": "Message"},
}

// fieldOrder fixes the row order of the summary tables.
var fieldOrder = []string{
	"firstName", "lastName", "email", "phone", "company", "country",
	"product", "quantity", "incoterm", "purpose", "shippingAddress",
	"application", "certifications", "partnershipType", "annualVolume",
	"commodity", "origin", "destination", "volume", "subject", "topic",
	"message",
}

// FormTypeLabel returns the localized display label for a form type.
func FormTypeLabel(ft models.FormType, locale string) string {
	labels, ok := formTypeLabels[ft]
	if !ok {
		return string(ft)
	}
	if label, ok := labels[locale]; ok {
		return label
	}
	return labels["en"]
}

func fieldLabel(key, locale string) string {
	if labels, ok := fieldLabels[key]; ok {
		if label, ok := labels[locale]; ok {
			return label
		}
	}
	return key
}

// orderedKeys returns the submitted field keys in canonical display order,
// with unknown extras appended alphabetically.
func orderedKeys(fields map[string]string) []string {
	seen := make(map[string]bool, len(fields))
	keys := make([]string, 0, len(fields))

	for _, key := range fieldOrder {
		if v, ok := fields[key]; ok && v != "" {
			keys = append(keys, key)
			seen[key] = true
		}
	}

	var extras []string
	for key, v := range fields {
		if !seen[key] && v != "" {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)

	return append(keys, extras...)
}

func fieldTable(fields map[string]string, locale string) (string, string) {
	var htmlRows, textRows strings.Builder

	for _, key := range orderedKeys(fields) {
		label := fieldLabel(key, locale)
		value := fields[key]

		htmlRows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:6px 12px;font-weight:bold;vertical-align:top">%s</td><td style="padding:6px 12px">%s</td></tr>`,
			html.EscapeString(label), html.EscapeString(value)))
		htmlRows.WriteString("\n")

		textRows.WriteString(label + ": " + value + "\n")
	}

	table := `<table style="border-collapse:collapse;border:1px solid #e0d8cc">` + "\n" +
		htmlRows.String() + "</table>"
	return table, textRows.String()
}

// BuildNotification composes the team-facing email for a validated
// submission: subject with form label and company, the submitted fields,
// the client IP and time, and a pre-addressed reply action.
func BuildNotification(ft models.FormType, fields map[string]string, from, to, clientIP string, at time.Time) *Message {
	label := FormTypeLabel(ft, opsLocale)
	company := fields["company"]
	subject := fmt.Sprintf("[%s] %s", label, company)

	table, text := fieldTable(fields, opsLocale)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(label)))
	b.WriteString(table)
	b.WriteString(fmt.Sprintf("\n<p>IP&nbsp;: %s<br>Reçu le&nbsp;: %s</p>\n",
		html.EscapeString(clientIP), at.Format("02/01/2006 15:04 MST")))

	if email := fields["email"]; email != "" {
		b.WriteString(fmt.Sprintf(`<p><a href="mailto:%s">Répondre à %s</a></p>`,
			html.EscapeString(email), html.EscapeString(email)))
		b.WriteString("\n")
	}

	plain := label + "\n\n" + text +
		fmt.Sprintf("\nIP : %s\nReçu le : %s\n", clientIP, at.Format("02/01/2006 15:04 MST"))

	return &Message{
		From:    from,
		To:      to,
		ReplyTo: fields["email"],
		Subject: subject,
		HTML:    b.String(),
		Text:    plain,
		Tags:    []string{"lead-notification", string(ft)},
	}
}

var confirmationStrings = map[string]struct {
	greeting string
	intro    string
	outro    string
	cta      string
}{
	"fr": {
		greeting: "Bonjour %s,",
		intro:    "Nous avons bien reçu votre demande. Notre équipe commerciale vous répondra sous 24 heures ouvrées.",
		outro:    "Récapitulatif de votre demande :",
		cta:      "Découvrir nos produits",
	},
	"en": {
		greeting: "Hello %s,",
		intro:    "We have received your inquiry. Our sales team will get back to you within 24 business hours.",
		outro:    "Summary of your inquiry:",
		cta:      "Explore our products",
	},
}

// BuildConfirmation composes the submitter-facing acknowledgement in the
// submitter's locale. Returns nil when no submitter email is present.
func BuildConfirmation(ft models.FormType, fields map[string]string, from, locale, baseURL string) *Message {
	email := fields["email"]
	if email == "" {
		return nil
	}

	strs, ok := confirmationStrings[locale]
	if !ok {
		strs = confirmationStrings["en"]
		locale = "en"
	}

	name := strings.TrimSpace(fields["firstName"])
	if name == "" {
		name = fields["company"]
	}

	label := FormTypeLabel(ft, locale)
	subject := label + " — TropiCacao"

	table, text := fieldTable(fields, locale)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(fmt.Sprintf(strs.greeting, name))))
	b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(strs.intro)))
	b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(strs.outro)))
	b.WriteString(table)
	b.WriteString(fmt.Sprintf("\n<p><a href=\"%s/products\">%s</a></p>\n",
		html.EscapeString(baseURL), html.EscapeString(strs.cta)))

	plain := fmt.Sprintf(strs.greeting, name) + "\n\n" + strs.intro + "\n\n" +
		strs.outro + "\n" + text + "\n" + strs.cta + ": " + baseURL + "/products\n"

	return &Message{
		From:    from,
		To:      email,
		Subject: subject,
		HTML:    b.String(),
		Text:    plain,
		Tags:    []string{"lead-confirmation", string(ft)},
	}
}
