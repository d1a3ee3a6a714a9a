package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/service and /api/admin/service
func GetServices(c *gin.Context) {
	repo := repositories.ServiceRepository{}

	if idStr := strings.TrimSpace(c.Query("id")); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "Invalid id.")
			return
		}
		service, err := repo.GetByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
		return
	}

	services, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// POST /api/admin/service
func CreateService(c *gin.Context) {
	var service models.Service
	if !BindJSONOrError(c, &service) {
		return
	}

	service.Normalize()
	if err := service.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.ServiceRepository{}.Create(service)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Service created successfully.", true, gin.H{"service": created})
}

// PUT /api/admin/service
func UpdateService(c *gin.Context) {
	var service models.Service
	if !BindJSONOrError(c, &service) {
		return
	}
	if service.ID <= 0 {
		RespondError(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	service.Normalize()
	if err := service.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repositories.ServiceRepository{}.Update(service)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Service updated successfully.", true, gin.H{"service": updated})
}

// DELETE /api/admin/service
func DeleteService(c *gin.Context) {
	var req idPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := (repositories.ServiceRepository{}).Delete(req.ID); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "Service deleted successfully.", true, nil)
}
