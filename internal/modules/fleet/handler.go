package fleet

import (
	"errors"
	"net/http"
	"strconv"

	"camperrent/internal/domain"
	"camperrent/internal/middleware"
	"camperrent/internal/pkg/response"
	pkgvalidator "camperrent/internal/pkg/validator"
	"camperrent/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.ListVehicles)
	rg.GET("/vehicles/:id", h.GetVehicle)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	providerOnly := middleware.ProviderOnly()
	rg.POST("/vehicles", providerOnly, h.CreateVehicle)
	// static "mine" would clash with the ":id" wildcard, hence /my/vehicles
	rg.GET("/my/vehicles", providerOnly, h.ListMyVehicles)
	rg.PUT("/vehicles/:id", providerOnly, h.UpdateVehicle)
	rg.DELETE("/vehicles/:id", providerOnly, h.DeleteVehicle)
}

func actorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetInt64("user_id"),
		Role: domain.UserRole(c.GetString("role")),
	}
}

// ListVehicles handles GET /api/v1/vehicles with an optional provider
// filter and pagination.
func (h *Handler) ListVehicles(c *gin.Context) {
	var f repository.VehicleFilters

	if providerID := c.Query("provider_id"); providerID != "" {
		if val, err := strconv.ParseInt(providerID, 10, 64); err == nil {
			f.ProviderID = val
		}
	}

	f.Limit = 20
	if limit := c.Query("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 && val <= 100 {
			f.Limit = val
		}
	}
	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			f.Offset = (val - 1) * f.Limit
		}
	}

	vehicles, total, err := h.service.ListVehicles(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"vehicles": vehicles,
		"total":    total,
	})
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	v, err := h.service.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body",
			pkgvalidator.Validate(req))
		return
	}

	v, err := h.service.CreateVehicle(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"vehicle": v})
}

func (h *Handler) ListMyVehicles(c *gin.Context) {
	vehicles, err := h.service.ListMyVehicles(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.UpdateVehicle(c.Request.Context(), actorFromContext(c), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	if err := h.service.DeleteVehicle(c.Request.Context(), actorFromContext(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidFuelType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this vehicle")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
	case errors.Is(err, ErrHasBookings):
		response.Error(c, http.StatusConflict, "VEHICLE_HAS_BOOKINGS", "Vehicle has active bookings")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
