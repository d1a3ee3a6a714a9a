package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/destinations and /api/admin/destinations
func GetDestinations(c *gin.Context) {
	repo := repositories.DestinationRepository{}

	if idStr := strings.TrimSpace(c.Query("id")); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "Invalid id.")
			return
		}
		destination, err := repo.GetByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, destination)
		return
	}

	destinations, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

// POST /api/admin/destinations
func CreateDestination(c *gin.Context) {
	var destination models.Destination
	if !BindJSONOrError(c, &destination) {
		return
	}

	destination.Normalize()
	if err := destination.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.DestinationRepository{}.Create(destination)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Destination created successfully.", true, gin.H{"destination": created})
}

// PUT /api/admin/destinations
func UpdateDestination(c *gin.Context) {
	var destination models.Destination
	if !BindJSONOrError(c, &destination) {
		return
	}
	if destination.ID <= 0 {
		RespondError(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	destination.Normalize()
	if err := destination.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repositories.DestinationRepository{}.Update(destination)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Destination updated successfully.", true, gin.H{"destination": updated})
}

// DELETE /api/admin/destinations
func DeleteDestination(c *gin.Context) {
	var req idPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := (repositories.DestinationRepository{}).Delete(req.ID); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Destination deleted successfully.", true, nil)
}
