package utils

import (
	"net/http"

	"github.com/formgate/formgate/internal/api/dto/common"
	"github.com/formgate/formgate/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs the error and writes a flat {"error": message} body.
// Error details are never included in the response.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(message))
}

// HandleInternalError collapses any unexpected failure to the generic 500
// response without leaking internals to the caller.
func HandleInternalError(c *gin.Context, err error) {
	HandleAPIError(c, err, http.StatusInternalServerError, common.MsgInternalServer)
}
