package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// The public feedback form posts {formData: {...}}.
type testimonialForm struct {
	FormData models.Testimonial `json:"formData"`
}

// GET /api/testimonials and /api/admin/testimonials
func GetTestimonials(c *gin.Context) {
	repo := repositories.TestimonialRepository{}

	if idStr := strings.TrimSpace(c.Query("id")); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "Invalid id.")
			return
		}
		testimonial, err := repo.GetByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, testimonial)
		return
	}

	testimonials, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// POST /api/testimonials — public submission from the feedback form.
func SubmitTestimonial(c *gin.Context) {
	var req testimonialForm
	if !BindJSONOrError(c, &req) {
		return
	}

	testimonial := req.FormData
	testimonial.Normalize()
	if err := testimonial.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	if _, err := (repositories.TestimonialRepository{}).Create(testimonial); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Thanks for your feedback, it has been submitted successfully.", true, nil)
}

// POST /api/admin/testimonials
func CreateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if !BindJSONOrError(c, &testimonial) {
		return
	}

	testimonial.Normalize()
	if err := testimonial.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.TestimonialRepository{}.Create(testimonial)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Testimonial created successfully.", true, gin.H{"testimonial": created})
}

// PUT /api/admin/testimonials
func UpdateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if !BindJSONOrError(c, &testimonial) {
		return
	}
	if testimonial.ID <= 0 {
		RespondError(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	testimonial.Normalize()
	if err := testimonial.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repositories.TestimonialRepository{}.Update(testimonial)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Testimonial updated successfully.", true, gin.H{"testimonial": updated})
}

// DELETE /api/admin/testimonials
func DeleteTestimonial(c *gin.Context) {
	var req idPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := (repositories.TestimonialRepository{}).Delete(req.ID); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Testimonial deleted successfully.", true, nil)
}
