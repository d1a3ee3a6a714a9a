package models

import (
	"testing"

	"backend/internal/domain"
)

func validTrip() Trip {
	return Trip{
		Destination: "Madinah Explorer",
		Date:        "2026-03-01",
		Description: "Seven days around the holy sites.",
		Image:       Image{Src: "http://x/y.jpg", Alt: "a"},
		Duration:    "7 days",
		Price:       "1500.00",
	}
}

func TestTripValidate_OK(t *testing.T) {
	trip := validTrip()
	trip.Normalize()
	if err := trip.Validate(); err != nil {
		t.Fatalf("expected valid trip, got %v", err)
	}
}

func TestTripValidate_MissingImageAlt(t *testing.T) {
	trip := validTrip()
	trip.Image.Alt = "  "
	trip.Normalize()
	err := trip.Validate()
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTripValidate_BadDate(t *testing.T) {
	trip := validTrip()
	trip.Date = "March 1st"
	trip.Normalize()
	if err := trip.Validate(); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for date, got %v", err)
	}
}

func TestTestimonialRatingBounds(t *testing.T) {
	base := Testimonial{Name: "Ahmed", Location: "Jakarta", Feedback: "Alhamdulillah, smooth trip."}

	for _, rating := range []int{-1, 0, 6, 99} {
		tm := base
		tm.Rating = rating
		tm.Normalize()
		if err := tm.Validate(); !domain.IsValidation(err) {
			t.Fatalf("rating %d should be rejected, got %v", rating, err)
		}
	}
	for _, rating := range []int{1, 5} {
		tm := base
		tm.Rating = rating
		tm.Normalize()
		if err := tm.Validate(); err != nil {
			t.Fatalf("rating %d should be accepted, got %v", rating, err)
		}
	}
}

func TestDestinationCityEnum(t *testing.T) {
	d := Destination{
		Name:         "Masjid an-Nabawi",
		Description:  "The Prophet's Mosque.",
		Significance: "Second holiest site.",
		Image:        "http://x/m.jpg",
		City:         "Jeddah",
	}
	d.Normalize()
	if err := d.Validate(); !domain.IsValidation(err) {
		t.Fatalf("unknown city should be rejected, got %v", err)
	}

	d.City = CityMadinah
	if err := d.Validate(); err != nil {
		t.Fatalf("Madinah should be accepted, got %v", err)
	}
}

func TestServiceEnumsAndFeatures(t *testing.T) {
	s := Service{
		Title:       "Visa Processing",
		Description: "We handle the paperwork.",
		Features:    []string{"Fast turnaround"},
		Icon:        "Plane",
		Color:       "green",
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid service, got %v", err)
	}

	bad := s
	bad.Icon = "Rocket"
	if err := bad.Validate(); !domain.IsValidation(err) {
		t.Fatalf("unknown icon should be rejected, got %v", err)
	}

	bad = s
	bad.Color = "magenta"
	if err := bad.Validate(); !domain.IsValidation(err) {
		t.Fatalf("unknown color should be rejected, got %v", err)
	}

	bad = s
	bad.Features = nil
	if err := bad.Validate(); !domain.IsValidation(err) {
		t.Fatalf("empty features should be rejected, got %v", err)
	}

	bad = s
	bad.Features = make([]string, 11)
	for i := range bad.Features {
		bad.Features[i] = "feature"
	}
	if err := bad.Validate(); !domain.IsValidation(err) {
		t.Fatalf("11 features should be rejected, got %v", err)
	}
}

func TestLeadEnquiryForOptional(t *testing.T) {
	l := Lead{Name: "Fatimah", Email: "fatimah@example.com", Subject: "Umrah package", Message: "Please call me."}
	l.Normalize()
	if err := l.Validate(); err != nil {
		t.Fatalf("lead without enquiryFor should be valid, got %v", err)
	}

	l.Email = ""
	if err := l.Validate(); !domain.IsValidation(err) {
		t.Fatalf("missing email should be rejected, got %v", err)
	}
}

func TestGalleryItemValidate(t *testing.T) {
	g := GalleryItem{Category: "Mecca"}
	g.Normalize()
	if err := g.Validate(); !domain.IsValidation(err) {
		t.Fatalf("empty images should be rejected, got %v", err)
	}

	g.Images = []Image{{Src: "http://x/1.jpg", Alt: "kaaba"}}
	if err := g.Validate(); err != nil {
		t.Fatalf("expected valid gallery item, got %v", err)
	}
}
