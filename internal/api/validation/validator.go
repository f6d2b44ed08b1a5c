package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// submissionEmailRegex accepts "non-whitespace @ non-whitespace . non-whitespace".
// Deliberately loose: the reply-to address only has to be deliverable-looking.
var submissionEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// New returns a validator with the submission validators registered.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("submission_email", validateSubmissionEmail)
	return v
}

func validateSubmissionEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// IsValidEmail checks if the provided string is a valid reply address.
func IsValidEmail(email string) bool {
	return submissionEmailRegex.MatchString(email)
}
