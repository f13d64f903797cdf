package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/formgate/formgate/internal/api/constants"
	"github.com/formgate/formgate/internal/api/dto/common"
	"github.com/formgate/formgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// PreserveRequestBody reads the request body once, caps its size, and
// restores it so later middleware and handlers can read it again.
func PreserveRequestBody(maxBodySize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize+1))
		if err != nil {
			utils.HandleInternalError(c, err)
			c.Abort()
			return
		}

		if int64(len(bodyBytes)) > maxBodySize {
			c.JSON(http.StatusRequestEntityTooLarge, common.NewErrorResponse(common.MsgBodyTooLarge))
			c.Abort()
			return
		}

		// Restore the body for subsequent middleware
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		c.Set(constants.ContextKeyRawBody, bodyBytes)

		c.Next()
	}
}
