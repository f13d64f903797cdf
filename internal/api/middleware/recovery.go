package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/formgate/formgate/internal/api/constants"
	"github.com/formgate/formgate/internal/api/dto/common"
	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the generic 500 response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := logging.GetLogger()
				logger.Error("[PANIC] %s | %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					utils.GetRealIP(c),
					c.GetString(constants.ContextKeyRequestID),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse(common.MsgInternalServer))
			}
		}()

		c.Next()
	}
}
