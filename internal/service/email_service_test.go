package service

import (
	"testing"
	"time"

	"github.com/formgate/formgate/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestRenderContactEmailEscapesFields(t *testing.T) {
	msg := &ContactEmail{
		Name:       `<script>"x"</script>`,
		Email:      "jane@example.com",
		Service:    "A & B",
		Message:    "line one\nline two",
		ReceivedAt: time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC),
	}

	html := renderContactEmail(msg)

	assert.Contains(t, html, "&lt;script&gt;&quot;x&quot;&lt;/script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "A &amp; B")
	assert.Contains(t, html, "line one<br>line two")
	assert.Contains(t, html, "Received March 14, 2025")
}

func TestContactSubject(t *testing.T) {
	assert.Equal(t, "New contact form submission from Jane", contactSubject("Jane"))
}

func TestNewResendEmailServiceUsesConfiguredRecipient(t *testing.T) {
	cfg := &config.Config{
		ResendAPIKey:     "re_test_key",
		ContactRecipient: "ops@example.com",
	}

	svc := NewResendEmailService(cfg)
	assert.Equal(t, "ops@example.com", svc.to)
	assert.NotNil(t, svc.client)
}
