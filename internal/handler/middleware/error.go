package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"hotel-management/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error left by a handler that did not
// write a body itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic",
					"error", fmt.Sprint(r),
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown routes with the same envelope as handler errors.
func NotFound(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusNotFound}
	resp.Error.Message = "Route not found"
	c.JSON(http.StatusNotFound, resp)
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
