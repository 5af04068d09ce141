package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

// SMTPMailer sends account emails over SMTP.
type SMTPMailer struct {
	host      string
	port      string
	username  string
	password  string
	from      string
	baseURL   string
	templates *template.Template
}

// Opt configures an SMTPMailer.
type Opt func(*SMTPMailer)

// WithAddr sets the SMTP server host and port.
func WithAddr(host, port string) Opt {
	return func(m *SMTPMailer) {
		m.host = host
		m.port = port
	}
}

// WithCredentials sets the SMTP auth credentials.
func WithCredentials(username, password string) Opt {
	return func(m *SMTPMailer) {
		m.username = username
		m.password = password
	}
}

// WithFrom sets the sender address.
func WithFrom(from string) Opt {
	return func(m *SMTPMailer) {
		m.from = from
	}
}

// WithBaseURL sets the public base URL used to build confirmation links.
func WithBaseURL(baseURL string) Opt {
	return func(m *SMTPMailer) {
		m.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// New creates an SMTPMailer with parsed templates.
func New(opts ...Opt) (*SMTPMailer, error) {
	tmpl, err := template.New("emails").Parse(emailTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	m := &SMTPMailer{templates: tmpl}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type confirmationData struct {
	ConfirmURL string
}

// SendConfirmation sends an email confirmation link containing the token.
func (m *SMTPMailer) SendConfirmation(ctx context.Context, to string, token string) error {
	data := confirmationData{
		ConfirmURL: fmt.Sprintf("%s/api/auth/confirm/%s", m.baseURL, token),
	}

	body, err := m.render("confirmation", data)
	if err != nil {
		return fmt.Errorf("render confirmation template: %w", err)
	}

	return m.send(ctx, to, "Confirm your email", body)
}

func (m *SMTPMailer) send(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func (m *SMTPMailer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
