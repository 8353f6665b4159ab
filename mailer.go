package main

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/mailgun/mailgun-go/v4"
)

// Email is what the relay hands to a provider.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer sends one email through an external provider.
type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// NewMailer builds the provider selected by MAIL_PROVIDER. Credentials are
// not checked here; a misconfigured provider fails on Send.
func NewMailer(cfg Config) (Mailer, error) {
	switch cfg.MailProvider {
	case "", "mailgun":
		return NewMailgunMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase), nil
	case "smtp":
		return &SMTPMailer{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
		}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}

// MailgunMailer sends through the Mailgun HTTP API.
type MailgunMailer struct {
	mg mailgun.Mailgun
}

func NewMailgunMailer(domain, apiKey, apiBase string) *MailgunMailer {
	mg := mailgun.NewMailgun(domain, apiKey)
	if apiBase != "" {
		mg.SetAPIBase(apiBase)
	}
	return &MailgunMailer{mg: mg}
}

func (m *MailgunMailer) Send(ctx context.Context, e Email) error {
	msg := m.mg.NewMessage(e.From, e.Subject, e.Text, e.To)
	if e.ReplyTo != "" {
		msg.SetReplyTo(e.ReplyTo)
	}
	resp, id, err := m.mg.Send(ctx, msg)
	if err != nil {
		return err
	}
	log.Printf("Mailgun accepted message %s: %s", id, resp)
	return nil
}

// SMTPMailer sends with PLAIN auth over SMTP.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
}

// Send ignores ctx: net/smtp has no cancellation.
func (m *SMTPMailer) Send(_ context.Context, e Email) error {
	from := e.From
	if from == "" {
		from = m.User
	}
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	if err := smtp.SendMail(m.Host+":"+m.Port, auth, from, []string{e.To}, composeSMTPMessage(from, e)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// composeSMTPMessage strips CR and LF from header values so a submitted
// name cannot add headers.
func composeSMTPMessage(from string, e Email) []byte {
	clean := strings.NewReplacer("\r", " ", "\n", " ")
	headers := "To: " + clean.Replace(e.To) + "\r\n" +
		"Subject: " + clean.Replace(e.Subject) + "\r\n" +
		"From: " + clean.Replace(from) + "\r\n"
	if e.ReplyTo != "" {
		headers += "Reply-To: " + clean.Replace(e.ReplyTo) + "\r\n"
	}
	return []byte(headers + "\r\n" + e.Text + "\r\n")
}
