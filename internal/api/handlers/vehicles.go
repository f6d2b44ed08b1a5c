package handlers

import (
	"net/http"
	"strconv"

	"github.com/automotiveconsulting/site-api/internal/api/dto/common"
	"github.com/automotiveconsulting/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// VehicleHandler serves the public vehicle catalog.
type VehicleHandler struct {
	vehicles *service.VehicleService
}

func NewVehicleHandler(vehicles *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// List handles GET /api/v1/vehicles with optional brand and available
// query filters.
func (h *VehicleHandler) List(c *gin.Context) {
	var available *bool
	if raw := c.Query("available"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Parámetro available inválido."))
			return
		}
		available = &value
	}

	listings := h.vehicles.List(c.Query("brand"), available)
	c.JSON(http.StatusOK, common.NewSuccessResponse("", listings))
}

// Get handles GET /api/v1/vehicles/:id.
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Identificador inválido."))
		return
	}

	listing, ok := h.vehicles.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Vehículo no encontrado."))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse("", listing))
}
