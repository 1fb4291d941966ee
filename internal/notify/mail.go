package notify

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wneessen/go-mail"

	applog "omoro/internal/log"
	"omoro/internal/validate"
)

// Email is a rendered message ready for delivery.
type Email struct {
	FromName string
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// Compose renders m into an Email using the "email/enquiry" view for the HTML part.
func Compose(views fiber.Views, m Message) (Email, error) {
	subject := strings.TrimSpace(m.Subject)
	if subject == "" {
		subject = DefaultSubject
	}
	e := Email{
		FromName: "Omoro Website",
		Subject:  subject,
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s",
			m.Name, m.Email, m.Phone, m.Message),
	}
	if addr, ok := validate.Email(m.Email); ok {
		e.ReplyTo = addr
	}
	if views != nil {
		var buf bytes.Buffer
		if err := views.Render(&buf, "email/enquiry", fiber.Map{
			"Subject": subject, "Name": m.Name, "Email": m.Email, "Phone": m.Phone,
			"Lines": strings.Split(m.Message, "\n"),
		}); err != nil {
			return e, fmt.Errorf("render email: %w", err)
		}
		e.HTML = buf.String()
	}
	return e, nil
}

// MailerNotifier composes each message and hands it to Mailer without an HTTP hop.
type MailerNotifier struct {
	Mailer Mailer
	Views  fiber.Views
}

func (n *MailerNotifier) Notify(ctx context.Context, m Message) error {
	e, err := Compose(n.Views, m)
	if err != nil {
		return err
	}
	if err := n.Mailer.Send(ctx, e); err != nil {
		return fmt.Errorf("send %q: %w", e.Subject, err)
	}
	return nil
}

// SMTPMailer delivers through an authenticated SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

func (s *SMTPMailer) Send(ctx context.Context, e Email) error {
	m := mail.NewMsg()
	from := s.From
	if from == "" {
		from = s.Username
	}
	if err := m.FromFormat(e.FromName, from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	to := e.To
	if len(to) == 0 {
		to = []string{s.To}
		if s.To == "" {
			to = []string{from}
		}
	}
	if err := m.To(to...); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	if e.ReplyTo != "" {
		if err := m.ReplyTo(e.ReplyTo); err != nil {
			return fmt.Errorf("mail reply-to: %w", err)
		}
	}
	m.Subject(e.Subject)
	m.SetBodyString(mail.TypeTextPlain, e.Text)
	if e.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, e.HTML)
	}

	opts := []mail.Option{mail.WithPort(s.Port), mail.WithTLSPolicy(mail.TLSMandatory)}
	if s.Username != "" {
		opts = append(opts, mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username), mail.WithPassword(s.Password))
	}
	c, err := mail.NewClient(s.Host, opts...)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}
	done := applog.Started("mail.smtp.send")
	err = c.DialAndSendWithContext(ctx, m)
	done(err, map[string]any{"host": s.Host, "subject": e.Subject})
	return err
}

// LogMailer writes the email to the log instead of sending it.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, e Email) error {
	applog.Info(nil, "mail.log.send", map[string]any{
		"subject": e.Subject, "reply_to": e.ReplyTo, "text": e.Text,
	})
	return nil
}
