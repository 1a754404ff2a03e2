package handlers

import (
	"net/http"

	"broker-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DistributionHandler handles HTTP requests for lead distribution settings
type DistributionHandler struct {
	distributionService service.DistributionServiceInterface
}

// NewDistributionHandler creates a new distribution handler
func NewDistributionHandler(distributionService service.DistributionServiceInterface) *DistributionHandler {
	return &DistributionHandler{distributionService: distributionService}
}

// GetSettings handles GET /settings/lead-distribution
// @Summary Get lead distribution settings
// @Description Get a broker's distribution flag and allocation percentages
// @Tags distribution
// @Produce json
// @Param broker_id query string true "Broker ID (UUID)"
// @Success 200 {object} service.DistributionSettingsResponse "Current settings"
// @Failure 400 {object} map[string]interface{} "Invalid broker ID"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /settings/lead-distribution [get]
func (h *DistributionHandler) GetSettings(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Query("broker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	resp, err := h.distributionService.GetSettings(brokerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSettings handles PUT /settings/lead-distribution
// @Summary Update lead distribution settings
// @Description Replace a broker's allocation list. Active percentages must sum to exactly 100.
// @Tags distribution
// @Accept json
// @Produce json
// @Param broker_id query string true "Broker ID (UUID)"
// @Param request body service.UpdateDistributionRequest true "New settings"
// @Success 200 {object} service.DistributionSettingsResponse "Updated settings"
// @Failure 400 {object} map[string]interface{} "Percentages do not sum to 100"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /settings/lead-distribution [put]
func (h *DistributionHandler) UpdateSettings(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Query("broker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	var req service.UpdateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.distributionService.UpdateSettings(brokerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
