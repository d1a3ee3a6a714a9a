package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/gallery and /api/admin/gallery
func GetGalleryItems(c *gin.Context) {
	galleryItems, err := repositories.GalleryRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"galleryItems": galleryItems})
}

// POST /api/admin/gallery — appends to an existing category, creates it
// otherwise. Keyed by category, not id.
func AppendGalleryImages(c *gin.Context) {
	var item models.GalleryItem
	if !BindJSONOrError(c, &item) {
		return
	}

	item.Normalize()
	if err := item.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	stored, existed, err := repositories.GalleryRepository{}.AppendImages(item.Category, item.Images)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	message := "Gallery item created successfully."
	if existed {
		message = "Images added to existing category successfully."
	}
	RespondMessage(c, http.StatusOK, message, true, gin.H{"galleryItem": stored})
}

// PUT /api/admin/gallery — replaces the category's images wholesale.
func ReplaceGalleryImages(c *gin.Context) {
	var item models.GalleryItem
	if !BindJSONOrError(c, &item) {
		return
	}

	item.Normalize()
	if err := item.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	stored, existed, err := repositories.GalleryRepository{}.ReplaceImages(item.Category, item.Images)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	message := "Gallery item created successfully."
	if existed {
		message = "Gallery item updated successfully."
	}
	RespondMessage(c, http.StatusOK, message, true, gin.H{"galleryItem": stored})
}

// DELETE /api/admin/gallery
func DeleteGalleryItem(c *gin.Context) {
	var req idPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := (repositories.GalleryRepository{}).Delete(req.ID); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Gallery item deleted successfully.", true, nil)
}
