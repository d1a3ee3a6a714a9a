package services

import (
	"errors"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Session lifetime is whatever the token carries; no server-side state.
const sessionTTL = 24 * time.Hour

// AuthService verifies credentials and mints role-bearing session tokens.
// Passwords are stored as bcrypt hashes; the site this replaces compared
// plaintext, which was a placeholder, not a design.
type AuthService struct {
	Users     repositories.UserRepository
	Secret    []byte
	RequestID string
}

// Login looks the account up by email and verifies the password. The two
// failure modes are reported separately to match the login form's copy.
func (s AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", domain.UnauthorizedError{Msg: "This email doesn't exist."}
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", domain.UnauthorizedError{Msg: "Email or Password is incorrect!"}
	}

	token, err := s.MintToken(user)
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "failed to create session token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", "user_id ok")
	return user, token, nil
}

// Register creates an account with role "user". Admin accounts are promoted
// directly in the store.
func (s AuthService) Register(u models.User, password string) (models.User, error) {
	u.Normalize()
	u.Role = domain.RoleUser
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	if password == "" {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "is required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	u.PasswordHash = string(hash)

	created, err := s.Users.Create(u)
	if err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", "account created")
	return created, nil
}

// MintToken signs an HS256 session token carrying subject and role claims.
func (s AuthService) MintToken(u models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  time.Now().Add(sessionTTL).Unix(),
	})
	return token.SignedString(s.Secret)
}

// ParseToken validates a session token and extracts the session claims.
func ParseToken(tokenString string, secret []byte) (domain.Session, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, domain.UnauthorizedError{Msg: "invalid session", Err: err}
	}

	var sess domain.Session
	if sub, ok := claims["sub"].(float64); ok {
		sess.UserID = int64(sub)
	}
	if role, ok := claims["role"].(string); ok {
		sess.Role = role
	}
	if sess.UserID == 0 || sess.Role == "" {
		return domain.Session{}, domain.UnauthorizedError{Msg: "invalid session"}
	}
	return sess, nil
}
