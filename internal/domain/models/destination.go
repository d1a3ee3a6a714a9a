package models

import (
	"strings"

	"backend/internal/domain"
)

// Cities a destination may belong to.
const (
	CityMecca   = "Mecca"
	CityMadinah = "Madinah"
)

// Destination is a landmark shown on the destinations page.
type Destination struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Significance string `json:"significance"`
	Image        string `json:"image"`
	City         string `json:"city"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (d *Destination) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Significance = strings.TrimSpace(d.Significance)
	d.Image = strings.TrimSpace(d.Image)
	d.City = strings.TrimSpace(d.City)
}

func (d Destination) Validate() error {
	if d.Name == "" || d.Description == "" || d.Significance == "" || d.Image == "" || d.City == "" {
		return domain.ValidationError{Msg: "All fields are required."}
	}
	if len(d.Name) < 3 || len(d.Name) > 100 {
		return domain.ValidationError{Field: "name", Msg: "must be between 3 and 100 characters"}
	}
	if len(d.Description) > 500 {
		return domain.ValidationError{Field: "description", Msg: "can't exceed 500 characters"}
	}
	if len(d.Significance) > 200 {
		return domain.ValidationError{Field: "significance", Msg: "can't exceed 200 characters"}
	}
	if d.City != CityMecca && d.City != CityMadinah {
		return domain.ValidationError{Field: "city", Msg: "must be Mecca or Madinah"}
	}
	return nil
}
