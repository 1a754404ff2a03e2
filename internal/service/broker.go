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

// BrokerService handles broker account management
type BrokerService struct {
	brokerRepo repository.BrokerRepositoryInterface
	validator  *validator.Validate
}

// NewBrokerService creates a new broker service
func NewBrokerService(brokerRepo repository.BrokerRepositoryInterface, validator *validator.Validate) *BrokerService {
	return &BrokerService{
		brokerRepo: brokerRepo,
		validator:  validator,
	}
}

// CreateBrokerRequest is a request to create a broker account
type CreateBrokerRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email,max=200"`
	Phone       string `json:"phone" validate:"max=50"`
	CompanyName string `json:"company_name" validate:"max=200"`
}

// UpdateBrokerRequest is a request to update a broker account. Nil fields
// are left unchanged.
type UpdateBrokerRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
}

// BrokerResponse is the API representation of a broker
type BrokerResponse struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Email                   string    `json:"email"`
	Phone                   string    `json:"phone,omitempty"`
	CompanyName             string    `json:"company_name,omitempty"`
	LeadDistributionEnabled bool      `json:"lead_distribution_enabled"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// BrokerListResponse is a paginated list of brokers
type BrokerListResponse struct {
	Brokers  []BrokerResponse `json:"brokers"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

func brokerResponse(broker *models.Broker) *BrokerResponse {
	return &BrokerResponse{
		ID:                      broker.ID,
		Name:                    broker.Name,
		Email:                   broker.Email,
		Phone:                   broker.Phone,
		CompanyName:             broker.CompanyName,
		LeadDistributionEnabled: broker.LeadDistributionEnabled,
		CreatedAt:               broker.CreatedAt,
		UpdatedAt:               broker.UpdatedAt,
	}
}

// Create registers a new broker account
func (s *BrokerService) Create(req *CreateBrokerRequest) (*BrokerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.brokerRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrBrokerExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check broker email: %w", err)
	}

	broker := &models.Broker{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
	}
	if err := s.brokerRepo.Create(broker); err != nil {
		return nil, fmt.Errorf("failed to create broker: %w", err)
	}

	return brokerResponse(broker), nil
}

// GetByID fetches one broker
func (s *BrokerService) GetByID(id uuid.UUID) (*BrokerResponse, error) {
	broker, err := s.brokerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}
	return brokerResponse(broker), nil
}

// List returns brokers ordered by creation time, newest first
func (s *BrokerService) List(page, pageSize int) (*BrokerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	brokers, total, err := s.brokerRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list brokers: %w", err)
	}

	responses := make([]BrokerResponse, len(brokers))
	for i := range brokers {
		responses[i] = *brokerResponse(&brokers[i])
	}

	return &BrokerListResponse{
		Brokers:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies partial changes to a broker account
func (s *BrokerService) Update(id uuid.UUID, req *UpdateBrokerRequest) (*BrokerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	broker, err := s.brokerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	if req.Name != nil {
		broker.Name = *req.Name
	}
	if req.Phone != nil {
		broker.Phone = *req.Phone
	}
	if req.CompanyName != nil {
		broker.CompanyName = *req.CompanyName
	}

	if err := s.brokerRepo.Update(broker); err != nil {
		return nil, fmt.Errorf("failed to update broker: %w", err)
	}

	return brokerResponse(broker), nil
}

// Delete removes a broker and all of its dependent records
func (s *BrokerService) Delete(id uuid.UUID) error {
	if _, err := s.brokerRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBrokerNotFound
		}
		return fmt.Errorf("failed to fetch broker: %w", err)
	}

	if err := s.brokerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete broker: %w", err)
	}
	return nil
}
