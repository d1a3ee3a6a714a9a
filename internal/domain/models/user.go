package models

import (
	"strings"

	"backend/internal/domain"
)

// User is a back-office account. PasswordHash is bcrypt and never serialized.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Role = strings.ToLower(strings.TrimSpace(u.Role))
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
}

func (u User) Validate() error {
	if u.Name == "" || u.Email == "" {
		return domain.ValidationError{Msg: "All fields are required."}
	}
	if len(u.Name) < 3 || len(u.Name) > 32 {
		return domain.ValidationError{Field: "name", Msg: "must be between 3 and 32 characters"}
	}
	if !strings.Contains(u.Email, "@") {
		return domain.ValidationError{Field: "email", Msg: "must be a valid email address"}
	}
	if u.Role != domain.RoleAdmin && u.Role != domain.RoleUser {
		return domain.ValidationError{Field: "role", Msg: "unknown role"}
	}
	return nil
}
