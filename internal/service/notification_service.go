package service

import (
	"html"
	"sort"
	"strings"
	"unicode"

	"github.com/automotiveconsulting/site-api/internal/api/dto/v1/submission"
)

const (
	subjectContact     = "Nuevo mensaje de contacto - Automotive Consulting"
	subjectConsignment = "Nueva solicitud de consignación - Automotive Consulting"

	titleContact     = "Formulario de Contacto"
	titleConsignment = "Formulario de Consignación"
)

// fieldOrder fixes the row order for known fields; anything else is
// appended alphabetically. Map iteration alone would make the body
// non-deterministic.
var fieldOrder = []string{
	submission.FieldName,
	submission.FieldEmail,
	submission.FieldPhone,
	submission.FieldCarBrand,
	submission.FieldCarModel,
	submission.FieldCarYear,
	submission.FieldCarMileage,
	submission.FieldMessage,
}

// NotificationService renders submission notifications and addresses
// them to the configured recipients.
type NotificationService struct {
	from string
	to   []string
	cc   []string
}

func NewNotificationService(from string, to, cc []string) *NotificationService {
	return &NotificationService{
		from: from,
		to:   to,
		cc:   cc,
	}
}

// Compose builds the notification for one submission. The verification
// token (under tokenField) and the form discriminator never appear in
// the body. The submitter's email becomes the reply-to address.
func (s *NotificationService) Compose(fields submission.Fields, tokenField string) *Message {
	subject := subjectContact
	if fields.IsConsignment() {
		subject = subjectConsignment
	}

	return &Message{
		From:    s.from,
		To:      s.to,
		Cc:      s.cc,
		Subject: subject,
		HTML:    buildHTML(fields, tokenField),
		ReplyTo: fields.Get(submission.FieldEmail),
	}
}

func buildHTML(fields submission.Fields, tokenField string) string {
	title := titleContact
	if fields.IsConsignment() {
		title = titleConsignment
	}

	var b strings.Builder
	b.WriteString(`<h1 style="margin:0 0 12px;">`)
	b.WriteString(title)
	b.WriteString("</h1>")
	b.WriteString(`<table style="border-collapse:collapse;font-family:sans-serif;font-size:14px;width:100%;">`)

	for _, key := range bodyKeys(fields, tokenField) {
		b.WriteString(`<tr><td style="padding:4px 8px;font-weight:600;">`)
		b.WriteString(html.EscapeString(fieldLabel(key)))
		b.WriteString(`</td><td style="padding:4px 8px;">`)
		b.WriteString(cellHTML(fields.Get(key)))
		b.WriteString("</td></tr>")
	}

	b.WriteString("</table>")
	return b.String()
}

// bodyKeys returns the field names to render, known fields first in
// their fixed order, then the rest alphabetically.
func bodyKeys(fields submission.Fields, tokenField string) []string {
	rendered := make(map[string]bool, len(fields))
	keys := make([]string, 0, len(fields))

	for _, key := range fieldOrder {
		if _, ok := fields[key]; ok {
			keys = append(keys, key)
			rendered[key] = true
		}
	}

	var rest []string
	for key := range fields {
		if rendered[key] || key == tokenField || key == submission.FieldFormType {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)

	return append(keys, rest...)
}

// fieldLabel derives a human label from a camelCase field name by
// inserting spaces before capitals and capitalizing the first letter,
// e.g. "carBrand" becomes "Car Brand".
func fieldLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cellHTML escapes a value and renders each text line as its own visual
// line. Blank lines keep their vertical space.
func cellHTML(value string) string {
	lines := strings.Split(html.EscapeString(value), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = "<br>"
		}
	}
	return strings.Join(lines, "<br>")
}
