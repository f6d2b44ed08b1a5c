package service

import (
	"context"
	"strings"

	"github.com/automotiveconsulting/site-api/internal/api/dto/v1/submission"
	"github.com/automotiveconsulting/site-api/internal/api/validation"
	"github.com/automotiveconsulting/site-api/internal/logging"

	"github.com/go-playground/validator/v10"
)

// SubmissionService runs the submission pipeline: token extraction,
// captcha verification, normalization, field validation, composition and
// dispatch. Stages run strictly in that order and the first failure is
// terminal; nothing is retried or persisted.
type SubmissionService struct {
	captcha        CaptchaVerifier
	notifications  *NotificationService
	sender         Sender
	validate       *validator.Validate
	requiredFields []string
}

func NewSubmissionService(captcha CaptchaVerifier, notifications *NotificationService, sender Sender, requiredFields []string) *SubmissionService {
	return &SubmissionService{
		captcha:        captcha,
		notifications:  notifications,
		sender:         sender,
		validate:       validation.New(),
		requiredFields: requiredFields,
	}
}

// Process handles one parsed submission payload. It returns a receipt on
// success or a typed *Error carrying the caller-facing status and
// message.
func (s *SubmissionService) Process(ctx context.Context, payload submission.Payload) (*submission.Receipt, *Error) {
	logger := logging.GetGlobalLogger()

	raw, _ := payload[s.captcha.TokenField()].(string)
	token := strings.TrimSpace(raw)
	if token == "" {
		return nil, ErrMissingToken()
	}

	verdict, err := s.captcha.Verify(ctx, token)
	if err != nil {
		return nil, ErrVerificationService(err)
	}
	if !verdict.Success {
		logger.Warn("captcha verification rejected: %v", verdict.ErrorCodes)
		return nil, ErrVerificationFailed(verdict.ErrorCodes)
	}

	fields := submission.Normalize(payload)

	for _, field := range s.requiredFields {
		if err := s.validate.Var(fields.Get(field), "required"); err != nil {
			return nil, ErrMissingField(field)
		}
	}

	// The syntax check applies whenever an address is present; required
	// presence is governed by the configured field set above.
	if email := fields.Get(submission.FieldEmail); email != "" {
		if err := s.validate.Var(email, "submission_email"); err != nil {
			return nil, ErrInvalidEmail()
		}
	}

	msg := s.notifications.Compose(fields, s.captcha.TokenField())

	receipt, err := s.sender.Send(ctx, msg)
	if err != nil {
		return nil, ErrDelivery(err)
	}

	logger.Info("submission relayed, delivery id %q", receipt.ID)
	return &submission.Receipt{ID: receipt.ID}, nil
}
