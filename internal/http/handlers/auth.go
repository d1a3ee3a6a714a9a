package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

var jwtSecret []byte

// SetJWTSecret wires the session signing key at router construction.
func SetJWTSecret(secret []byte) {
	jwtSecret = secret
}

const sessionCookieMaxAge = 24 * 60 * 60

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{Secret: jwtSecret, RequestID: middleware.GetRequestID(c)}
	user, token, err := svc.Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{RequestID: middleware.GetRequestID(c)}
	user, err := svc.Register(models.User{Name: req.Name, Email: req.Email}, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusCreated, "Registration successful.", true, gin.H{"user": user})
}

// POST /api/auth/logout — clearing the cookie is the whole logout flow.
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	RespondMessage(c, http.StatusOK, "Signed out.", true, nil)
}
