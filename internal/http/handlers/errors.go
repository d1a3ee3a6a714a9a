package handlers

import (
	"net/http"

	"backend/internal/domain"
	"backend/internal/http/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Duplicates answer
// 400 rather than 409: the forms surface them the same way as missing fields.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err), domain.IsConflict(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error())
	default:
		// Infrastructure failure: log detail, leak nothing.
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		RespondError(c, http.StatusInternalServerError, "Server error")
	}
}
