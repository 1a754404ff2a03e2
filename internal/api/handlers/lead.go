package handlers

import (
	"net/http"

	"broker-crm-backend/internal/database/models"
	"broker-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles HTTP requests for leads
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead handles POST /leads
// @Summary Create a lead
// @Description Add a single lead manually
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} service.LeadResponse "Successfully created lead"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description Get a broker's leads, newest first, optionally filtered by status
// @Tags leads
// @Produce json
// @Param broker_id query string true "Broker ID (UUID)"
// @Param status query string false "Filter by status" Enums(new, no_answer, call_back, pending, bad_lead, settled)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LeadListResponse "Successfully retrieved leads"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Query("broker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	var status *models.LeadStatus
	if raw := c.Query("status"); raw != "" {
		s := models.LeadStatus(raw)
		status = &s
	}

	page, pageSize := parsePagination(c)

	resp, err := h.leadService.List(brokerID, status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLead handles GET /leads/:id
// @Summary Get lead by ID
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param broker_id query string true "Broker ID (UUID)"
// @Success 200 {object} service.LeadResponse "Successfully retrieved lead"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID"})
		return
	}
	brokerID, err := uuid.Parse(c.Query("broker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	lead, err := h.leadService.GetByID(brokerID, leadID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLeadStatus handles PATCH /leads/:id/status
// @Summary Update lead status
// @Description Move a lead to a new pipeline status. Sub-status is only valid
// @Description for pending and bad_lead and must belong to the target status.
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param broker_id query string true "Broker ID (UUID)"
// @Param request body service.UpdateLeadStatusRequest true "New status"
// @Success 200 {object} service.LeadResponse "Successfully updated lead"
// @Failure 400 {object} map[string]interface{} "Invalid status transition"
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Security BearerAuth
// @Router /leads/{id}/status [patch]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID"})
		return
	}
	brokerID, err := uuid.Parse(c.Query("broker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	var req service.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.UpdateStatus(brokerID, leadID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// BulkDeleteLeads handles POST /leads/bulk-delete
// @Summary Bulk delete leads
// @Description Delete a set of a broker's leads along with their call logs and dial cooldowns
// @Tags leads
// @Accept json
// @Produce json
// @Param request body service.BulkDeleteRequest true "Lead IDs to delete"
// @Success 200 {object} service.BulkDeleteResponse "Deletion summary"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /leads/bulk-delete [post]
func (h *LeadHandler) BulkDeleteLeads(c *gin.Context) {
	var req service.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.leadService.BulkDelete(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
