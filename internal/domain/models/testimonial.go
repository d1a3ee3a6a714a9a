package models

import (
	"strings"

	"backend/internal/domain"
)

// Testimonial is visitor feedback shown on the testimonials page.
type Testimonial struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (t *Testimonial) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Location = strings.TrimSpace(t.Location)
	t.Feedback = strings.TrimSpace(t.Feedback)
}

func (t Testimonial) Validate() error {
	if t.Name == "" || t.Location == "" || t.Rating == 0 || t.Feedback == "" {
		return domain.ValidationError{Msg: "Please fill all the required fields."}
	}
	if len(t.Name) < 3 || len(t.Name) > 32 {
		return domain.ValidationError{Field: "name", Msg: "must be between 3 and 32 characters"}
	}
	if t.Rating < 1 || t.Rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	if len(t.Feedback) > 1000 {
		return domain.ValidationError{Field: "feedback", Msg: "can't exceed 1000 characters"}
	}
	return nil
}
