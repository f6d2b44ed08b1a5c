package service

import (
	"strings"
	"testing"

	"github.com/automotiveconsulting/site-api/internal/api/dto/v1/submission"

	"github.com/stretchr/testify/assert"
)

const testTokenField = "g-recaptcha-response"

func newTestNotificationService() *NotificationService {
	return NewNotificationService(
		"Automotive Consulting <noreply@automotiveconsulting.cl>",
		[]string{"roco.solange@automotiveconsulting.cl", "maravena@eserp.cl"},
		nil,
	)
}

func TestComposeContactMessage(t *testing.T) {
	s := newTestNotificationService()

	fields := submission.Fields{
		"name":        "Ana",
		"email":       "ana@x.com",
		"message":     "Hola",
		testTokenField: "tok1",
	}

	msg := s.Compose(fields, testTokenField)

	assert.Equal(t, "Nuevo mensaje de contacto - Automotive Consulting", msg.Subject)
	assert.Equal(t, "ana@x.com", msg.ReplyTo)
	assert.Equal(t, []string{"roco.solange@automotiveconsulting.cl", "maravena@eserp.cl"}, msg.To)
	assert.Contains(t, msg.HTML, "Formulario de Contacto")
	assert.Contains(t, msg.HTML, "Ana")
	assert.NotContains(t, msg.HTML, "tok1")
}

func TestComposeConsignmentMessage(t *testing.T) {
	s := newTestNotificationService()

	fields := submission.Fields{
		"name":       "Pedro",
		"email":      "pedro@x.cl",
		"message":    "Quiero consignar mi auto",
		"formType":   "consignacion",
		"carBrand":   "Toyota",
		"carModel":   "Yaris",
		"carYear":    "2019",
		"carMileage": "45000",
	}

	msg := s.Compose(fields, testTokenField)

	assert.Equal(t, "Nueva solicitud de consignación - Automotive Consulting", msg.Subject)
	assert.Contains(t, msg.HTML, "Formulario de Consignación")
	assert.Contains(t, msg.HTML, "Car Brand")
	assert.Contains(t, msg.HTML, "Toyota")
	// The discriminator drives the subject but never appears as a row
	assert.NotContains(t, msg.HTML, "consignacion")
	assert.NotContains(t, msg.HTML, "Form Type")
}

func TestBuildHTMLMultilineValues(t *testing.T) {
	fields := submission.Fields{
		"name":    "Ana",
		"message": "Primera línea\n\nTercera línea",
	}

	html := buildHTML(fields, testTokenField)

	assert.Contains(t, html, "Primera línea<br><br><br>Tercera línea")
	assert.NotContains(t, html, "\n")
}

func TestBuildHTMLEscapesValues(t *testing.T) {
	fields := submission.Fields{
		"name":    "<script>alert(1)</script>",
		"message": "a & b",
	}

	html := buildHTML(fields, testTokenField)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &amp; b")
}

func TestBuildHTMLDeterministicOrder(t *testing.T) {
	fields := submission.Fields{
		"message": "Hola",
		"zExtra":  "valor",
		"email":   "ana@x.com",
		"name":    "Ana",
	}

	html := buildHTML(fields, testTokenField)

	name := strings.Index(html, "Ana")
	email := strings.Index(html, "ana@x.com")
	message := strings.Index(html, "Hola")
	extra := strings.Index(html, "valor")

	assert.True(t, name < email, "name row before email row")
	assert.True(t, email < message, "email row before message row")
	assert.True(t, message < extra, "known fields before unknown fields")

	// Same fields, same output
	assert.Equal(t, html, buildHTML(fields, testTokenField))
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"name", "Name"},
		{"carBrand", "Car Brand"},
		{"carMileage", "Car Mileage"},
		{"email", "Email"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := fieldLabel(tt.key); got != tt.want {
				t.Errorf("fieldLabel(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
