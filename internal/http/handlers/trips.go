package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/trips and /api/admin/trips
// Single record via ?id=, otherwise the full list.
func GetTrips(c *gin.Context) {
	repo := repositories.TripRepository{}

	if idStr := strings.TrimSpace(c.Query("id")); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "Invalid id.")
			return
		}
		trip, err := repo.GetByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, trip)
		return
	}

	trips, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// POST /api/admin/trips
func CreateTrip(c *gin.Context) {
	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}

	trip.Normalize()
	if err := trip.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.TripRepository{}.Create(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Trip created successfully.", true, gin.H{"trip": created})
}

// PUT /api/admin/trips — id travels in the body.
func UpdateTrip(c *gin.Context) {
	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}
	if trip.ID <= 0 {
		RespondError(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	trip.Normalize()
	if err := trip.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repositories.TripRepository{}.Update(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Trip updated successfully.", true, gin.H{"trip": updated})
}

// DELETE /api/admin/trips — id travels in the body.
func DeleteTrip(c *gin.Context) {
	var req idPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := (repositories.TripRepository{}).Delete(req.ID); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Trip deleted successfully.", true, nil)
}
