package handlers

import (
	"net/http"

	"broker-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamMemberHandler handles HTTP requests for team rosters
type TeamMemberHandler struct {
	teamMemberService service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(teamMemberService service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{teamMemberService: teamMemberService}
}

// CreateTeamMember handles POST /team-members
// @Summary Add a team member
// @Description Attach a user to a broker's team
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} service.TeamMemberResponse "Successfully added team member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Failure 409 {object} map[string]interface{} "User already on a team"
// @Security BearerAuth
// @Router /team-members [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamMemberService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListTeamMembers handles GET /team-members
// @Summary List team members
// @Description Get a broker's team roster in join order
// @Tags team-members
// @Produce json
// @Param broker_id query string true "Broker ID (UUID)"
// @Success 200 {object} service.TeamListResponse "Team roster"
// @Failure 400 {object} map[string]interface{} "Invalid broker ID"
// @Failure 404 {object} map[string]interface{} "Broker not found"
// @Security BearerAuth
// @Router /team-members [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Query("broker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	resp, err := h.teamMemberService.List(brokerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTeamMember handles DELETE /team-members/:id
// @Summary Remove a team member
// @Tags team-members
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param broker_id query string true "Broker ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully removed team member"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id} [delete]
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
		return
	}
	brokerID, err := uuid.Parse(c.Query("broker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	if err := h.teamMemberService.Delete(brokerID, memberID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member removed successfully"})
}
