package service

import (
	"errors"
	"fmt"
	"time"

	"broker-crm-backend/internal/database/models"
	apperrors "broker-crm-backend/internal/errors"
	"broker-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberService manages a broker's team roster
type TeamMemberService struct {
	brokerRepo     repository.BrokerRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	validator      *validator.Validate
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(
	brokerRepo repository.BrokerRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	validator *validator.Validate,
) *TeamMemberService {
	return &TeamMemberService{
		brokerRepo:     brokerRepo,
		teamMemberRepo: teamMemberRepo,
		validator:      validator,
	}
}

// CreateTeamMemberRequest attaches a user to a broker's team
type CreateTeamMemberRequest struct {
	BrokerID uuid.UUID `json:"broker_id" validate:"required"`
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Name     string    `json:"name" validate:"required,min=1,max=200"`
	Email    string    `json:"email" validate:"required,email,max=200"`
	Phone    string    `json:"phone" validate:"max=50"`
}

// TeamMemberResponse is the API representation of a team member
type TeamMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	BrokerID  uuid.UUID `json:"broker_id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamListResponse is a broker's full team roster
type TeamListResponse struct {
	Members []TeamMemberResponse `json:"members"`
	Total   int                  `json:"total"`
}

func teamMemberResponse(member *models.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:        member.ID,
		BrokerID:  member.BrokerID,
		UserID:    member.UserID,
		Name:      member.Name,
		Email:     member.Email,
		Phone:     member.Phone,
		CreatedAt: member.CreatedAt,
	}
}

// Create adds a user to a broker's team
func (s *TeamMemberService) Create(req *CreateTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.brokerRepo.GetByID(req.BrokerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	if _, err := s.teamMemberRepo.GetByUserID(req.UserID); err == nil {
		return nil, apperrors.ErrTeamMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}

	member := &models.TeamMember{
		BrokerID: req.BrokerID,
		UserID:   req.UserID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.teamMemberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return teamMemberResponse(member), nil
}

// List returns the broker's team roster in join order
func (s *TeamMemberService) List(brokerID uuid.UUID) (*TeamListResponse, error) {
	if _, err := s.brokerRepo.GetByID(brokerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	members, err := s.teamMemberRepo.GetByBrokerID(brokerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *teamMemberResponse(&members[i])
	}

	return &TeamListResponse{Members: responses, Total: len(responses)}, nil
}

// Delete removes a member from the broker's team
func (s *TeamMemberService) Delete(brokerID, memberID uuid.UUID) error {
	member, err := s.teamMemberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to fetch team member: %w", err)
	}
	if member.BrokerID != brokerID {
		return apperrors.ErrTeamMemberNotFound
	}

	if err := s.teamMemberRepo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
