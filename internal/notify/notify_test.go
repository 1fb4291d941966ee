package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	html "github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPNotifierPostsJSON(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Email sent successfully"}`))
	}))
	defer srv.Close()

	n := &HTTPNotifier{URL: srv.URL, Timeout: 2 * time.Second}
	msg := Message{Subject: "Enquiry: general", Name: "Asha K", Email: "asha@example.in", Phone: "9847012345", Message: "Hi"}
	require.NoError(t, n.Notify(context.Background(), msg))
	assert.Equal(t, msg, got)
}

func TestHTTPNotifierNonSuccessIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Failed to send email","error":"auth"}`))
	}))
	defer srv.Close()

	err := (&HTTPNotifier{URL: srv.URL, Timeout: time.Second}).Notify(context.Background(), Message{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to send email")
}

func TestHTTPNotifierUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := (&HTTPNotifier{URL: url, Timeout: time.Second}).Notify(context.Background(), Message{})
	assert.Error(t, err)
}

func TestHTTPNotifierExpiredContext(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	err := (&HTTPNotifier{URL: "http://127.0.0.1:1/api/contact"}).Notify(ctx, Message{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestComposeRendersBothParts(t *testing.T) {
	views := html.New("../../web/templates", ".html")
	e, err := Compose(views, Message{
		Name: "Ravi", Email: "ravi@example.in", Phone: "+91 90000 00000",
		Message: "Type: dealership\nLocation: Calicut",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultSubject, e.Subject)
	assert.Equal(t, "Omoro Website", e.FromName)
	assert.Equal(t, "ravi@example.in", e.ReplyTo)
	assert.True(t, strings.HasPrefix(e.Text, "Name: Ravi\nEmail: ravi@example.in"))
	assert.Contains(t, e.HTML, "Ravi")
	assert.Contains(t, e.HTML, "Location: Calicut")
}

func TestComposeSkipsInvalidReplyTo(t *testing.T) {
	e, err := Compose(nil, Message{Subject: "Product Enquiry: Beam", Email: "Not Provided"})
	require.NoError(t, err)
	assert.Empty(t, e.ReplyTo)
	assert.Empty(t, e.HTML)
	assert.Equal(t, "Product Enquiry: Beam", e.Subject)
}

func TestLogMailerSucceeds(t *testing.T) {
	assert.NoError(t, LogMailer{}.Send(context.Background(), Email{Subject: "s"}))
}

type stubMailer struct {
	got []Email
	err error
}

func (s *stubMailer) Send(_ context.Context, e Email) error {
	s.got = append(s.got, e)
	return s.err
}

func TestMailerNotifierComposesAndSends(t *testing.T) {
	m := &stubMailer{}
	n := &MailerNotifier{Mailer: m, Views: html.New("../../web/templates", ".html")}

	require.NoError(t, n.Notify(context.Background(), Message{
		Subject: "Enquiry: project", Name: "Meera", Email: "meera@example.com", Message: "Location: Kochi",
	}))
	require.Len(t, m.got, 1)
	assert.Equal(t, "Enquiry: project", m.got[0].Subject)
	assert.Equal(t, "meera@example.com", m.got[0].ReplyTo)
	assert.Contains(t, m.got[0].HTML, "Location: Kochi")
}

func TestMailerNotifierPropagatesSendError(t *testing.T) {
	cause := errors.New("smtp: 535 auth failed")
	n := &MailerNotifier{Mailer: &stubMailer{err: cause}}

	err := n.Notify(context.Background(), Message{Name: "A"})
	assert.ErrorIs(t, err, cause)
}
