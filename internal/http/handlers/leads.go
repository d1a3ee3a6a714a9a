package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// The public contact form posts {formData: {...}}.
type leadForm struct {
	FormData models.Lead `json:"formData"`
}

// POST /api/lead — public inquiry submission.
func SubmitLead(c *gin.Context) {
	var req leadForm
	if !BindJSONOrError(c, &req) {
		return
	}

	lead := req.FormData
	lead.Normalize()
	if err := lead.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	if _, err := (repositories.LeadRepository{}).Create(lead); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Thanks, we have got your details, we will get back to you soon", true, nil)
}

// GET /api/admin/clients — inbound inquiry list for the back office.
func GetLeads(c *gin.Context) {
	leads, err := repositories.LeadRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// DELETE /api/admin/clients
func DeleteLead(c *gin.Context) {
	var req idPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := (repositories.LeadRepository{}).Delete(req.ID); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Lead deleted successfully.", true, nil)
}

// GET /api/admin/clients/export — inquiry list as PDF.
func ExportLeadsPDF(c *gin.Context) {
	svc := services.ReportService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateLeadsReport()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
