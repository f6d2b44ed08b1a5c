package service

import (
	"fmt"
	"net/http"
	"slices"
)

// ErrorKind classifies submission pipeline failures.
type ErrorKind string

const (
	ErrKindConfiguration       ErrorKind = "CONFIGURATION"
	ErrKindMalformedRequest    ErrorKind = "MALFORMED_REQUEST"
	ErrKindMissingToken        ErrorKind = "MISSING_TOKEN"
	ErrKindVerificationService ErrorKind = "VERIFICATION_SERVICE"
	ErrKindVerificationFailed  ErrorKind = "VERIFICATION_FAILED"
	ErrKindMissingField        ErrorKind = "MISSING_FIELD"
	ErrKindInvalidEmail        ErrorKind = "INVALID_EMAIL"
	ErrKindDelivery            ErrorKind = "DELIVERY"
)

// Error is a terminal submission failure. Message is user-safe and goes
// to the caller; Err is the internal cause and goes to the log only.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ErrConfiguration(err error) *Error {
	return &Error{
		Kind:    ErrKindConfiguration,
		Status:  http.StatusInternalServerError,
		Message: "Configuración del servidor incompleta.",
		Err:     err,
	}
}

func ErrMalformedRequest(err error) *Error {
	return &Error{
		Kind:    ErrKindMalformedRequest,
		Status:  http.StatusBadRequest,
		Message: "Datos inválidos.",
		Err:     err,
	}
}

func ErrMissingToken() *Error {
	return &Error{
		Kind:    ErrKindMissingToken,
		Status:  http.StatusBadRequest,
		Message: "Token de verificación CAPTCHA faltante.",
	}
}

func ErrVerificationService(err error) *Error {
	return &Error{
		Kind:    ErrKindVerificationService,
		Status:  http.StatusInternalServerError,
		Message: "Error al validar el CAPTCHA. Intenta nuevamente.",
		Err:     err,
	}
}

func ErrVerificationFailed(errorCodes []string) *Error {
	message := "No pudimos validar el CAPTCHA."
	if slices.Contains(errorCodes, "invalid-input-response") {
		message = "Verificación CAPTCHA inválida o expirada."
	}
	return &Error{
		Kind:    ErrKindVerificationFailed,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func ErrMissingField(field string) *Error {
	return &Error{
		Kind:    ErrKindMissingField,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("El campo %s es obligatorio.", field),
	}
}

func ErrInvalidEmail() *Error {
	return &Error{
		Kind:    ErrKindInvalidEmail,
		Status:  http.StatusBadRequest,
		Message: "El correo ingresado no es válido.",
	}
}

func ErrDelivery(err error) *Error {
	return &Error{
		Kind:    ErrKindDelivery,
		Status:  http.StatusBadGateway,
		Message: "No se pudo enviar el correo.",
		Err:     err,
	}
}
