package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// EmailMessage is one outgoing HTML email with an optional attachment.
type EmailMessage struct {
	To             string
	Subject        string
	HTML           string
	Attachment     []byte
	AttachmentName string
}

// EmailSender delivers a single message.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

var ErrEmailNotConfigured = errors.New("email delivery is not configured")

// ════════════════════════════════════════════════════════════
// Resend
// ════════════════════════════════════════════════════════════

type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}

func (r *ResendSender) Send(ctx context.Context, msg EmailMessage) error {
	req := &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if len(msg.Attachment) > 0 {
		req.Attachments = []*resend.Attachment{{
			Content:  msg.Attachment,
			Filename: msg.AttachmentName,
		}}
	}

	sent, err := r.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	log.Debug().Str("op", "email.resend").Str("id", sent.Id).Str("to", msg.To).Msg("email accepted")
	return nil
}

// ════════════════════════════════════════════════════════════
// SMTP
// ════════════════════════════════════════════════════════════

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send dials per message. gomail has no context support, so ctx is only
// checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	if len(msg.Attachment) > 0 {
		content := msg.Attachment
		m.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var emailSender EmailSender

// InitEmailSender picks the provider named by EMAIL_PROVIDER. Missing
// credentials leave email disabled; checkout still succeeds.
func InitEmailSender(provider, resendAPIKey, from, smtpHost string, smtpPort int, smtpUser, smtpPassword string) error {
	switch provider {
	case "", "resend":
		if resendAPIKey == "" {
			emailSender = nil
			return nil
		}
		emailSender = NewResendSender(resendAPIKey, from)
	case "smtp":
		if smtpHost == "" {
			emailSender = nil
			return nil
		}
		emailSender = NewSMTPSender(smtpHost, smtpPort, smtpUser, smtpPassword, from)
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q", provider)
	}
	return nil
}

func GetEmailSender() (EmailSender, error) {
	if emailSender == nil {
		return nil, ErrEmailNotConfigured
	}
	return emailSender, nil
}

// SetEmailSender replaces the sender. Tests use it to inject fakes.
func SetEmailSender(s EmailSender) {
	emailSender = s
}
