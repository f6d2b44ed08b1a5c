package submission

import "strings"

// Well-known payload keys.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldMessage    = "message"
	FieldFormType   = "formType"
	FieldCarBrand   = "carBrand"
	FieldCarModel   = "carModel"
	FieldCarYear    = "carYear"
	FieldCarMileage = "carMileage"
)

// FormTypeConsignment marks a vehicle consignment submission. Anything
// else is treated as a plain contact submission.
const FormTypeConsignment = "consignacion"

// Payload is the submission body as received: a flat key/value mapping.
// It lives for the duration of one request and is never persisted.
type Payload map[string]interface{}

// Fields is the normalized view of a Payload: every value is a string
// with no leading or trailing whitespace.
type Fields map[string]string

// Normalize trims every string value of p and drops everything else.
// Non-string values are omitted, never coerced.
func Normalize(p Payload) Fields {
	fields := make(Fields, len(p))
	for key, value := range p {
		s, ok := value.(string)
		if !ok {
			continue
		}
		fields[key] = strings.TrimSpace(s)
	}
	return fields
}

// Get returns the value for key, or the empty string when absent.
func (f Fields) Get(key string) string {
	return f[key]
}

// IsConsignment reports whether the submission is a consignment request.
func (f Fields) IsConsignment() bool {
	return f.Get(FieldFormType) == FormTypeConsignment
}

// Receipt echoes the provider delivery identifier back to the caller.
type Receipt struct {
	ID string `json:"id,omitempty"`
}
