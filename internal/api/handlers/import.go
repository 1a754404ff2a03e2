package handlers

import (
	"net/http"

	"broker-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImportHandler handles CSV lead import requests
type ImportHandler struct {
	importService service.LeadImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService service.LeadImportServiceInterface) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportLeads handles POST /admin/import
// @Summary Import CSV leads
// @Description Import column-mapped CSV rows for a broker. Rows with a known
// @Description identity (external id, email or phone) are skipped as duplicates;
// @Description rows missing a full name are reported as errors. Partial success
// @Description is normal and the response carries exact per-row accounting.
// @Tags import
// @Accept json
// @Produce json
// @Param request body service.ImportRequest true "Import payload"
// @Success 200 {object} service.ImportResponse "Import completed"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /admin/import [post]
func (h *ImportHandler) ImportLeads(c *gin.Context) {
	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	importedBy := authenticatedUserID(c)

	resp, err := h.importService.Run(&req, importedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PreviewStatuses handles POST /admin/import/status-preview
// @Summary Preview CSV status mapping
// @Description Show how raw CSV status values will map onto pipeline statuses before importing
// @Tags import
// @Accept json
// @Produce json
// @Param request body service.StatusPreviewRequest true "Distinct status values"
// @Success 200 {array} service.StatusMappingPreview "Resolved mappings"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /admin/import/status-preview [post]
func (h *ImportHandler) PreviewStatuses(c *gin.Context) {
	var req service.StatusPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	previews, err := h.importService.PreviewStatuses(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, previews)
}

// ImportHistory handles GET /admin/imports
// @Summary List import history
// @Description Get a broker's past CSV imports, newest first
// @Tags import
// @Produce json
// @Param broker_id query string true "Broker ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ImportHistoryResponse "Import history"
// @Failure 400 {object} map[string]interface{} "Invalid broker ID"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /admin/imports [get]
func (h *ImportHandler) ImportHistory(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Query("broker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.importService.History(brokerID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// authenticatedUserID returns the caller's user id set by the auth middleware
func authenticatedUserID(c *gin.Context) uuid.UUID {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil
	}
	return id
}
