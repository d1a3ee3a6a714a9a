package models

import "strings"

// Image is a stored asset reference. The upload widget lives outside this
// service; only the final URL and alt text ever reach us.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

func (i Image) IsZero() bool {
	return strings.TrimSpace(i.Src) == "" && strings.TrimSpace(i.Alt) == ""
}
