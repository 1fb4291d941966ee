// Package notify delivers enquiry notifications, either straight through a
// Mailer or as a JSON hop to an external contact endpoint.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "omoro/internal/log"
)

const DefaultSubject = "New Enquiry from Omoro Website"

// Message is the body accepted by POST /api/contact.
type Message struct {
	Subject string `json:"subject"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Notifier sends one notification. Implementations do not retry.
type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, m Message) error

func (f NotifierFunc) Notify(ctx context.Context, m Message) error { return f(ctx, m) }

// HTTPNotifier posts messages to a contact endpoint.
type HTTPNotifier struct {
	URL     string
	Timeout time.Duration
}

type contactReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (n *HTTPNotifier) Notify(ctx context.Context, m Message) error {
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return context.DeadlineExceeded
	}

	done := applog.Started("notify.http")
	a := fiber.Post(n.URL).JSON(m).Timeout(timeout)
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		err := fmt.Errorf("notify %s: %w", n.URL, errors.Join(errs...))
		done(err, nil)
		return err
	}
	if code < 200 || code > 299 {
		var reply contactReply
		_ = json.Unmarshal(body, &reply)
		msg := reply.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", code)
		}
		err := fmt.Errorf("notify %s: %s", n.URL, msg)
		done(err, map[string]any{"status": code})
		return err
	}
	done(nil, map[string]any{"status": code})
	return nil
}
