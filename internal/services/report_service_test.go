package services

import (
	"bytes"
	"testing"
	"time"

	"backend/internal/domain/models"
)

func TestLeadsReportPDF(t *testing.T) {
	now := time.Date(2026, 4, 10, 14, 30, 0, 0, time.Local)
	leads := []models.Lead{
		{ID: 1, Name: "Fatimah", Email: "fatimah@example.com", Subject: "Umrah package", Message: "Please call me.", EnquiryFor: "Umrah 2026", CreatedAt: "2026-04-01 09:00:00"},
		{ID: 2, Name: "Yusuf", Email: "yusuf@example.com", Subject: "Group booking", Message: "Fifteen travellers."},
	}

	pdf, filename, err := buildLeadsReportPDF(leads, now)
	if err != nil {
		t.Fatalf("report generation failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:min(len(pdf), 8)])
	}
	if filename != "INQUIRIES_20260410.pdf" {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

func TestLeadsReportPDF_Empty(t *testing.T) {
	pdf, _, err := buildLeadsReportPDF(nil, time.Now())
	if err != nil {
		t.Fatalf("empty report should still render: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected PDF bytes")
	}
}
