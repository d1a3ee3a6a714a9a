package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders the inbound inquiry list as a printable PDF for the
// back office.
type ReportService struct {
	Leads     repositories.LeadRepository
	RequestID string
}

func (s ReportService) GenerateLeadsReport() ([]byte, string, error) {
	leads, err := s.Leads.List()
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "report", "leads_pdf", fmt.Sprintf("count=%d", len(leads)))
	return buildLeadsReportPDF(leads, time.Now())
}

func buildLeadsReportPDF(leads []models.Lead, now time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Inquiry Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INQUIRY REPORT")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Generated : "+now.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Inquiries : %d", len(leads)))
	pdf.Ln(10)

	for i, lead := range leads {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("%d) %s <%s>", i+1, safe(lead.Name, "-"), safe(lead.Email, "-")))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 11)
		if strings.TrimSpace(lead.EnquiryFor) != "" {
			pdf.Cell(0, 6, "Enquiry for : "+lead.EnquiryFor)
			pdf.Ln(6)
		}
		pdf.Cell(0, 6, "Subject     : "+safe(lead.Subject, "-"))
		pdf.Ln(6)
		pdf.Cell(0, 6, "Received    : "+safe(lead.CreatedAt, "-"))
		pdf.Ln(6)
		pdf.MultiCell(0, 6, "Message     : "+safe(lead.Message, "-"), "", "", false)
		pdf.Ln(4)
	}

	if len(leads) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 7, "No inquiries recorded.")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INQUIRIES_%s.pdf", now.Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
