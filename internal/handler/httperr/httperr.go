package httperr

import (
	"net/http"

	"hotel-management/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var kindStatus = []struct {
	kind   error
	status int
}{
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrValidation, http.StatusBadRequest},
	{errs.ErrInvalidTransition, http.StatusUnprocessableEntity},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrDuplicateKey, http.StatusConflict},
	{errs.ErrReferenced, http.StatusConflict},
}

// StatusOf maps a marked error to its HTTP status; unmarked errors are 500.
func StatusOf(err error) int {
	for _, ks := range kindStatus {
		if errs.Is(err, ks.kind) {
			return ks.status
		}
	}
	return http.StatusInternalServerError
}

// Abort renders a use case error. Marked errors carry a client-safe message,
// anything else is reported as an internal error.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), nil)
}

// AbortBinding reports request binding failures as 400 with field details.
func AbortBinding(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", FieldErrors(err))
}
