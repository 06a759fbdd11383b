package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"gymdesk-backend/config"
	"gymdesk-backend/internal/models"
	"gymdesk-backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Email struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer delivers a single e-mail.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (s *SMTPMailer) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)
	for _, a := range email.Attachments {
		data := a.Data
		msg.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp delivery to %s failed: %w", strings.Join(email.To, ","), err)
	}
	return nil
}

var (
	mailerMu      sync.RWMutex
	defaultMailer Mailer
)

// SetMailer installs the mailer used by the e-mail and reminder services. Nil
// disables delivery.
func SetMailer(m Mailer) {
	mailerMu.Lock()
	defer mailerMu.Unlock()
	defaultMailer = m
}

func currentMailer() Mailer {
	mailerMu.RLock()
	defer mailerMu.RUnlock()
	return defaultMailer
}

// SendRegistrationEmail mails the registration sheet of member id. The
// recipient is to when given, otherwise the member's own address.
func SendRegistrationEmail(ctx context.Context, id uint, to string) error {
	member, err := GetMember(ctx, id)
	if err != nil {
		return err
	}

	recipient := strings.TrimSpace(to)
	if recipient == "" {
		recipient = member.Email
	}
	if recipient == "" {
		return models.NewValidationError("email", "no recipient: the member has no email address and none was given", "email format")
	}

	mailer := currentMailer()
	if mailer == nil {
		return ErrMailerNotConfigured
	}

	attachment, err := GenerateRegistrationPDF(member)
	if err != nil {
		return err
	}

	gym := CurrentSettings().GymName
	err = mailer.Send(ctx, Email{
		To:      []string{recipient},
		Subject: fmt.Sprintf("Welcome to %s", gym),
		Body: fmt.Sprintf("Hello %s,\n\nThank you for joining %s. Your registration details are attached.\n\nRegards,\n%s\n",
			member.Name, gym, gym),
		Attachments: []Attachment{{
			Filename:    fmt.Sprintf("registration-%d.pdf", member.SerialNumber),
			ContentType: "application/pdf",
			Data:        attachment,
		}},
	})
	if err != nil {
		logger.L().Error("Failed to send registration email", zap.Uint("member_id", id), zap.Error(err))
		return err
	}

	logger.L().Info("Registration email sent", zap.Uint("member_id", id), zap.String("to", recipient))
	return nil
}
