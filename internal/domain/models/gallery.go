package models

import (
	"strings"

	"backend/internal/domain"
)

// GalleryItem groups images under a named category. Category is the natural
// key; submitting to an existing category grows or replaces its images.
type GalleryItem struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Images   []Image `json:"images"`
}

func (g *GalleryItem) Normalize() {
	g.Category = strings.TrimSpace(g.Category)
	images := make([]Image, 0, len(g.Images))
	for _, img := range g.Images {
		img.Src = strings.TrimSpace(img.Src)
		img.Alt = strings.TrimSpace(img.Alt)
		if !img.IsZero() {
			images = append(images, img)
		}
	}
	g.Images = images
}

func (g GalleryItem) Validate() error {
	if g.Category == "" || len(g.Images) == 0 {
		return domain.ValidationError{Msg: "Category (string) and images (non-empty array) are required."}
	}
	for _, img := range g.Images {
		if img.Src == "" || img.Alt == "" {
			return domain.ValidationError{Field: "images", Msg: "every image needs src and alt"}
		}
	}
	return nil
}
