package handlers

import (
	"net/http"

	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondMessage sends the standard {message, success} envelope, optionally
// with extra payload fields.
func RespondMessage(c *gin.Context, status int, message string, success bool, extra gin.H) {
	payload := gin.H{
		"message": message,
		"success": success,
	}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(status, payload)
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"message":    message,
		"success":    false,
		"request_id": middleware.GetRequestID(c),
	})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "Request body is required.")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request payload.")
		return false
	}
	return true
}

// idPayload is the delete/update body carrying the record id.
type idPayload struct {
	ID int64 `json:"id"`
}
