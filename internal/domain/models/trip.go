package models

import (
	"strings"
	"time"

	"backend/internal/domain"
)

// Trip is a scheduled package offering. Destination doubles as the natural
// key: the operator never sells two packages for the same destination.
type Trip struct {
	ID          int64  `json:"id"`
	Destination string `json:"destination"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
	Image       Image  `json:"image"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

func (t *Trip) Normalize() {
	t.Destination = strings.TrimSpace(t.Destination)
	t.Date = strings.TrimSpace(t.Date)
	t.Description = strings.TrimSpace(t.Description)
	t.Duration = strings.TrimSpace(t.Duration)
	t.Price = strings.TrimSpace(t.Price)
	t.Image.Src = strings.TrimSpace(t.Image.Src)
	t.Image.Alt = strings.TrimSpace(t.Image.Alt)
}

func (t Trip) Validate() error {
	if t.Destination == "" || t.Date == "" || t.Description == "" ||
		t.Duration == "" || t.Price == "" || t.Image.Src == "" || t.Image.Alt == "" {
		return domain.ValidationError{Msg: "All fields are required."}
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return domain.ValidationError{Field: "date", Msg: "must be a valid date (YYYY-MM-DD)", Err: err}
	}
	return nil
}
