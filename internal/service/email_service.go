package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/formgate/formgate/internal/api/sanitization"
	"github.com/formgate/formgate/internal/config"

	"github.com/resend/resend-go/v2"
)

// senderIdentity is the fixed From address for contact notifications.
// The domain must be verified with Resend.
const senderIdentity = "Formgate <notifications@formgate.dev>"

// ContactEmail carries one submission to the notification recipient
type ContactEmail struct {
	Name       string
	Email      string
	Service    string
	Message    string
	ReceivedAt time.Time
}

// EmailSender delivers contact notifications. Delivery is best effort:
// callers log send errors and never fail the request over them.
type EmailSender interface {
	Send(msg *ContactEmail) error
}

// ResendEmailService sends contact notifications through the Resend API
type ResendEmailService struct {
	client *resend.Client
	to     string
}

// NewResendEmailService creates an email service from config. The caller
// is expected to check that an API key is configured.
func NewResendEmailService(cfg *config.Config) *ResendEmailService {
	return &ResendEmailService{
		client: resend.NewCustomClient(&http.Client{
			Timeout: 10 * time.Second,
		}, cfg.ResendAPIKey),
		to: cfg.ContactRecipient,
	}
}

// Send forwards one submission as an HTML email
func (s *ResendEmailService) Send(msg *ContactEmail) error {
	params := &resend.SendEmailRequest{
		From:    senderIdentity,
		To:      []string{s.to},
		Subject: contactSubject(msg.Name),
		Html:    renderContactEmail(msg),
		// Replies go straight to the submitter. This is the raw address,
		// never the escaped one embedded in the body.
		ReplyTo: msg.Email,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}

func contactSubject(name string) string {
	return fmt.Sprintf("New contact form submission from %s", name)
}

// renderContactEmail builds the HTML notification body. Every user-supplied
// field is escaped before embedding; message newlines become <br> tags.
func renderContactEmail(msg *ContactEmail) string {
	message := strings.ReplaceAll(sanitization.EscapeHTML(msg.Message), "\n", "<br>")

	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString("<h2>New contact form submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", sanitization.EscapeHTML(msg.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", sanitization.EscapeHTML(msg.Email))
	fmt.Fprintf(&b, "<p><strong>Service:</strong> %s</p>", sanitization.EscapeHTML(msg.Service))
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p><p>%s</p>", message)
	fmt.Fprintf(&b, "<hr><p><em>Received %s</em></p>", msg.ReceivedAt.Format("January 2, 2006 at 3:04 PM MST"))
	b.WriteString("</body></html>")
	return b.String()
}
