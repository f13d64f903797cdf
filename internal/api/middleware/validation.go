package middleware

import (
	"bytes"
	"io"

	"github.com/formgate/formgate/internal/api/constants"
	"github.com/formgate/formgate/internal/api/dto/v1/contact"
	"github.com/formgate/formgate/internal/api/validation"
	"github.com/formgate/formgate/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request binding and validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// Validate exposes the shared validator instance
func (m *ValidationMiddleware) Validate() *validator.Validate {
	return m.validate
}

// ValidateContactRequest binds the contact submission body and stores it in
// the context. A body that cannot be read or parsed is treated like any
// other unexpected failure and collapses to the generic 500 response.
// Field validation happens in the handler after the honeypot check, so bot
// traffic is never told which rule it tripped.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Read raw body first
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.HandleInternalError(c, err)
			c.Abort()
			return
		}

		// Restore body for binding
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleInternalError(c, err)
			c.Abort()
			return
		}

		// Restore body again for the handler
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
