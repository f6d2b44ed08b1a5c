package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Message is a fully-prepared notification email. It is never mutated
// after composition and is consumed exactly once by the sender.
type Message struct {
	From    string
	To      []string
	Cc      []string
	Subject string
	HTML    string
	ReplyTo string
}

// DeliveryReceipt identifies a delivered message at the provider.
type DeliveryReceipt struct {
	ID string
}

// Sender delivers a prepared message through an email provider. The
// abstraction keeps the provider swappable and lets tests record calls.
type Sender interface {
	Send(ctx context.Context, msg *Message) (*DeliveryReceipt, error)
}

// ResendSender delivers messages through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a sender with the given API key. The client is
// constructed once and is safe for concurrent use.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
	}
}

func (s *ResendSender) Send(ctx context.Context, msg *Message) (*DeliveryReceipt, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Cc:      msg.Cc,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("resend delivery failed: %w", err)
	}

	return &DeliveryReceipt{ID: sent.Id}, nil
}
