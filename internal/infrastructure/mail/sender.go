// Package mail delivers reminder emails over SMTP as multipart messages
// with plain-text and HTML alternatives.
package mail

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// Config captures SMTP connection and sender identity settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	BaseURL  string
}

// Sender implements ports.ReminderSender over gomail.
type Sender struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
	html    *htmltemplate.Template
	text    *texttemplate.Template
	log     zerolog.Logger
}

type templateData struct {
	UserName   string
	TotalItems int
	Plural     string
	Items      []ports.ReminderItem
	BaseURL    string
}

// NewSender builds a Sender. Template parsing happens once, at startup.
func NewSender(cfg Config, log zerolog.Logger) (*Sender, error) {
	html, err := htmltemplate.New("reminders").Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	text, err := texttemplate.New("reminders").Parse(textTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}

	return &Sender{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		baseURL: cfg.BaseURL,
		html:    html,
		text:    text,
		log:     log,
	}, nil
}

// SendDailyReminders renders and dispatches one reminder email. An empty
// item list is a no-op.
func (s *Sender) SendDailyReminders(ctx context.Context, toEmail, userName string, items []ports.ReminderItem) error {
	if len(items) == 0 {
		return nil
	}

	data := templateData{
		UserName:   userName,
		TotalItems: len(items),
		Plural:     plural(len(items)),
		Items:      items,
		BaseURL:    s.baseURL,
	}

	var htmlBody, textBody bytes.Buffer
	if err := s.html.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("render html body: %w", err)
	}
	if err := s.text.Execute(&textBody, data); err != nil {
		return fmt.Errorf("render text body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Daily Reminders - %d action%s due", len(items), plural(len(items))))
	msg.SetBody("text/plain", textBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reminder email: %w", err)
	}

	s.log.Info().Str("to", toEmail).Int("items", len(items)).Msg("reminder email sent")
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
