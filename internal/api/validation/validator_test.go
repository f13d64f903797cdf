package validation

import (
	"strings"
	"testing"

	"github.com/formgate/formgate/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestContactEmailShape(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.co.uk", true},
		{"a@b.c", true},
		{"foo", false},
		{"a@b", false},    // no dot in domain
		{"@b.com", false}, // empty local part
		{"a@", false},
		{"a b@example.com", false}, // whitespace
		{"a@b@c.com", false},       // second @
		{"jane@example.", false},   // empty TLD
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := v.Var(tt.email, "contact_email")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestContactErrorMessagePrecedence(t *testing.T) {
	v := newTestValidator(t)

	longName := strings.Repeat("n", 101)
	longMessage := strings.Repeat("m", 5001)

	tests := []struct {
		name string
		req  contact.ContactRequest
		want string
	}{
		{
			name: "all fields missing",
			req:  contact.ContactRequest{},
			want: MsgMissingFields,
		},
		{
			name: "missing message wins over bad email",
			req:  contact.ContactRequest{Name: "Jane", Email: "not-an-email"},
			want: MsgMissingFields,
		},
		{
			name: "bad email wins over long name",
			req:  contact.ContactRequest{Name: longName, Email: "not-an-email", Message: "hi"},
			want: MsgInvalidEmail,
		},
		{
			name: "long name wins over long message",
			req:  contact.ContactRequest{Name: longName, Email: "jane@example.com", Message: longMessage},
			want: MsgNameTooLong,
		},
		{
			name: "long message alone",
			req:  contact.ContactRequest{Name: "Jane", Email: "jane@example.com", Message: longMessage},
			want: MsgMessageTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, ContactErrorMessage(err))
		})
	}
}

func TestContactValidationBoundaries(t *testing.T) {
	v := newTestValidator(t)

	req := contact.ContactRequest{
		Name:    strings.Repeat("n", 100),
		Email:   "jane@example.com",
		Message: strings.Repeat("m", 5000),
	}
	assert.NoError(t, v.Struct(req))
}
