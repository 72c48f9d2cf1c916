package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mukundan1989/baebyzleep/internal"
	"github.com/mukundan1989/baebyzleep/internal/apperror"
	"github.com/mukundan1989/baebyzleep/internal/response"
)

// HandleError logs err and answers with status. A 400 lists the offending
// fields; anything else is reported as a 500 carrying only msg.
func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString(requestIDKey)
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	if status == http.StatusBadRequest {
		c.JSON(status, response.BadRequest(msg, map[string]any{"fields": apperror.CustomValidationError(err)}))
		return
	}
	c.JSON(http.StatusInternalServerError, response.InternalError(msg))
}

func HandleSuccess(c *gin.Context, logger internal.Logger, status int, data interface{}, meta map[string]any) {
	requestID := c.GetString(requestIDKey)
	logger.Debugf("[request_id=%s] Success", requestID)
	c.JSON(status, response.Success(data, meta))
}

// fieldMessages flattens a binding or validation error for display in a form.
func fieldMessages(err error) []string {
	fields := apperror.CustomValidationError(err)
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}
	return out
}
