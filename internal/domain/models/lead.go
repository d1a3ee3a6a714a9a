package models

import (
	"strings"

	"backend/internal/domain"
)

// Lead is a visitor-submitted contact/inquiry record.
type Lead struct {
	ID         int64  `json:"id"`
	EnquiryFor string `json:"enquiryFor,omitempty"` // optional: which trip/service the inquiry concerns
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

func (l *Lead) Normalize() {
	l.EnquiryFor = strings.TrimSpace(l.EnquiryFor)
	l.Name = strings.TrimSpace(l.Name)
	l.Email = strings.TrimSpace(l.Email)
	l.Subject = strings.TrimSpace(l.Subject)
	l.Message = strings.TrimSpace(l.Message)
}

func (l Lead) Validate() error {
	if l.Name == "" || l.Email == "" || l.Subject == "" || l.Message == "" {
		return domain.ValidationError{Msg: "Please fill all the required fields."}
	}
	if len(l.Name) < 3 || len(l.Name) > 32 {
		return domain.ValidationError{Field: "name", Msg: "must be between 3 and 32 characters"}
	}
	if !strings.Contains(l.Email, "@") {
		return domain.ValidationError{Field: "email", Msg: "must be a valid email address"}
	}
	if len(l.Message) > 1000 {
		return domain.ValidationError{Field: "message", Msg: "can't exceed 1000 characters"}
	}
	return nil
}
