package models

import (
	"strings"

	"backend/internal/domain"
)

// Icon and color names the frontend knows how to render.
var (
	ServiceIcons  = []string{"Calendar", "Star", "Plane", "MessageCircle", "Users", "Shield"}
	ServiceColors = []string{"yellow", "green", "blue", "purple", "red"}
)

// Service is a pilgrimage service offering (visa handling, guidance, ...).
type Service struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

func (s *Service) Normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)
	s.Icon = strings.TrimSpace(s.Icon)
	s.Color = strings.TrimSpace(s.Color)

	features := make([]string, 0, len(s.Features))
	for _, f := range s.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	s.Features = features
}

func (s Service) Validate() error {
	if s.Title == "" || s.Description == "" || s.Icon == "" || s.Color == "" {
		return domain.ValidationError{Msg: "All fields are required."}
	}
	if len(s.Title) < 3 || len(s.Title) > 100 {
		return domain.ValidationError{Field: "title", Msg: "must be between 3 and 100 characters"}
	}
	if len(s.Description) > 500 {
		return domain.ValidationError{Field: "description", Msg: "can't exceed 500 characters"}
	}
	if len(s.Features) < 1 || len(s.Features) > 10 {
		return domain.ValidationError{Field: "features", Msg: "must have at least 1 and at most 10 items"}
	}
	if !containsString(ServiceIcons, s.Icon) {
		return domain.ValidationError{Field: "icon", Msg: "unknown icon"}
	}
	if !containsString(ServiceColors, s.Color) {
		return domain.ValidationError{Field: "color", Msg: "unknown color"}
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
