package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailRegex accepts the local@domain.tld shape: no whitespace or extra @
// on either side of the separator, at least one dot in the domain part.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contact_email", validateContactEmail)
}

// validateContactEmail checks if the email has a plausible shape
func validateContactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// Validation error messages reported to clients, in precedence order
const (
	MsgMissingFields  = "Missing required fields"
	MsgInvalidEmail   = "Invalid email format"
	MsgNameTooLong    = "Name too long"
	MsgMessageTooLong = "Message too long"
	MsgInvalidRequest = "Invalid request"
)

// ContactErrorMessage maps validator output for a contact submission to
// the single error message reported to the client. When several rules are
// violated at once, only the highest-precedence one is reported: missing
// fields, then email format, then name length, then message length.
func ContactErrorMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return MsgInvalidRequest
	}

	for _, e := range verrs {
		if e.Tag() == "required" {
			return MsgMissingFields
		}
	}
	for _, field := range []string{"Email", "Name", "Message"} {
		for _, e := range verrs {
			if e.Field() != field {
				continue
			}
			switch field {
			case "Email":
				return MsgInvalidEmail
			case "Name":
				return MsgNameTooLong
			case "Message":
				return MsgMessageTooLong
			}
		}
	}
	return MsgInvalidRequest
}
