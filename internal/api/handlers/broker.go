package handlers

import (
	"net/http"

	"broker-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BrokerHandler handles HTTP requests for broker accounts
type BrokerHandler struct {
	brokerService service.BrokerServiceInterface
}

// NewBrokerHandler creates a new broker handler
func NewBrokerHandler(brokerService service.BrokerServiceInterface) *BrokerHandler {
	return &BrokerHandler{brokerService: brokerService}
}

// CreateBroker handles POST /admin/brokers
// @Summary Create a broker
// @Description Register a new broker account
// @Tags brokers
// @Accept json
// @Produce json
// @Param broker body service.CreateBrokerRequest true "Broker data"
// @Success 201 {object} service.BrokerResponse "Successfully created broker"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Broker email already registered"
// @Security BearerAuth
// @Router /admin/brokers [post]
func (h *BrokerHandler) CreateBroker(c *gin.Context) {
	var req service.CreateBrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	broker, err := h.brokerService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, broker)
}

// GetBroker handles GET /admin/brokers/:id
// @Summary Get broker by ID
// @Tags brokers
// @Produce json
// @Param id path string true "Broker ID (UUID)"
// @Success 200 {object} service.BrokerResponse "Successfully retrieved broker"
// @Failure 400 {object} map[string]interface{} "Invalid broker ID"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /admin/brokers/{id} [get]
func (h *BrokerHandler) GetBroker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	broker, err := h.brokerService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, broker)
}

// ListBrokers handles GET /admin/brokers
// @Summary List brokers
// @Description Get all brokers with pagination, newest first
// @Tags brokers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BrokerListResponse "Successfully retrieved brokers"
// @Security BearerAuth
// @Router /admin/brokers [get]
func (h *BrokerHandler) ListBrokers(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.brokerService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateBroker handles PUT /admin/brokers/:id
// @Summary Update a broker
// @Description Apply partial changes to a broker account
// @Tags brokers
// @Accept json
// @Produce json
// @Param id path string true "Broker ID (UUID)"
// @Param broker body service.UpdateBrokerRequest true "Fields to update"
// @Success 200 {object} service.BrokerResponse "Successfully updated broker"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /admin/brokers/{id} [put]
func (h *BrokerHandler) UpdateBroker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	var req service.UpdateBrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	broker, err := h.brokerService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, broker)
}

// DeleteBroker handles DELETE /admin/brokers/:id
// @Summary Delete a broker
// @Description Remove a broker and all dependent records
// @Tags brokers
// @Produce json
// @Param id path string true "Broker ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted broker"
// @Failure 400 {object} map[string]interface{} "Invalid broker ID"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /admin/brokers/{id} [delete]
func (h *BrokerHandler) DeleteBroker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	if err := h.brokerService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Broker deleted successfully"})
}
