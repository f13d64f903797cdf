package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/formgate/formgate/internal/api/constants"
	"github.com/formgate/formgate/internal/api/dto/common"
	"github.com/formgate/formgate/internal/api/dto/v1/contact"
	"github.com/formgate/formgate/internal/api/validation"
	"github.com/formgate/formgate/internal/config"
	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/internal/service"
	"github.com/formgate/formgate/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	cfg      *config.Config
	validate *validator.Validate
	sender   service.EmailSender
}

// NewContactHandler creates a contact handler. A nil sender disables
// outbound email; submissions are still accepted and logged.
func NewContactHandler(cfg *config.Config, validate *validator.Validate, sender service.EmailSender) *ContactHandler {
	return &ContactHandler{
		cfg:      cfg,
		validate: validate,
		sender:   sender,
	}
}

// Submit processes one contact form submission. The log record written
// here is the durable record of the submission; email delivery on top of
// it is best effort.
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()

	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleInternalError(c, errors.New("contact data not found in context"))
		return
	}

	req, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleInternalError(c, errors.New("invalid contact data format"))
		return
	}

	// Honeypot check: the hidden website field is only ever filled by
	// bots. Accept and discard so the detection is not revealed.
	if req.Website != "" {
		logger.Debug("Honeypot triggered, discarding submission from %s", utils.GetRealIP(c))
		c.JSON(http.StatusOK, contact.ContactResponse{Success: true})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(validation.ContactErrorMessage(err)))
		return
	}

	svc := req.Service
	logService := svc
	if svc == "" {
		svc = "unspecified"
		logService = "Not specified"
	}

	receivedAt := time.Now()
	logger.Info("==================== NEW CONTACT SUBMISSION ====================")
	logger.Info("Name:     %s", req.Name)
	logger.Info("Email:    %s", req.Email)
	logger.Info("Service:  %s", logService)
	logger.Info("Message:  %s", req.Message)
	logger.Info("Received: %s", receivedAt.Format(time.RFC3339))
	logger.Info("================================================================")

	if h.sender != nil {
		msg := &service.ContactEmail{
			Name:       req.Name,
			Email:      req.Email,
			Service:    svc,
			Message:    req.Message,
			ReceivedAt: receivedAt,
		}
		if err := h.sender.Send(msg); err != nil {
			// Non-fatal: the submission is already logged above
			logger.Error("Failed to send contact notification email: %v", err)
		}
	}

	c.JSON(http.StatusOK, contact.ContactResponse{
		Success: true,
		Message: "Message received successfully",
	})
}
