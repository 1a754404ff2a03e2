package service

import (
	"errors"
	"fmt"

	"broker-crm-backend/internal/database/models"
	apperrors "broker-crm-backend/internal/errors"
	"broker-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DistributionService manages a broker's lead distribution settings
type DistributionService struct {
	brokerRepo       repository.BrokerRepositoryInterface
	distributionRepo repository.DistributionRepositoryInterface
	validator        *validator.Validate
}

// NewDistributionService creates a new distribution service
func NewDistributionService(
	brokerRepo repository.BrokerRepositoryInterface,
	distributionRepo repository.DistributionRepositoryInterface,
	validator *validator.Validate,
) *DistributionService {
	return &DistributionService{
		brokerRepo:       brokerRepo,
		distributionRepo: distributionRepo,
		validator:        validator,
	}
}

// AllocationEntry is one user's share of incoming leads
type AllocationEntry struct {
	UserID     uuid.UUID `json:"user_id" validate:"required"`
	UserName   string    `json:"user_name" validate:"required,max=200"`
	Percentage int       `json:"percentage" validate:"min=0,max=100"`
}

// DistributionSettingsResponse is a broker's current distribution configuration
type DistributionSettingsResponse struct {
	BrokerID    uuid.UUID         `json:"broker_id"`
	Enabled     bool              `json:"enabled"`
	Allocations []AllocationEntry `json:"allocations"`
}

// UpdateDistributionRequest replaces a broker's distribution configuration
type UpdateDistributionRequest struct {
	Enabled     bool              `json:"enabled"`
	Allocations []AllocationEntry `json:"allocations" validate:"dive"`
}

// GetSettings returns the broker's distribution flag and allocation list
func (s *DistributionService) GetSettings(brokerID uuid.UUID) (*DistributionSettingsResponse, error) {
	broker, err := s.brokerRepo.GetByID(brokerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	allocations, err := s.distributionRepo.GetAllocations(brokerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch allocations: %w", err)
	}

	entries := make([]AllocationEntry, len(allocations))
	for i, a := range allocations {
		entries[i] = AllocationEntry{
			UserID:     a.UserID,
			UserName:   a.UserName,
			Percentage: a.Percentage,
		}
	}

	return &DistributionSettingsResponse{
		BrokerID:    broker.ID,
		Enabled:     broker.LeadDistributionEnabled,
		Allocations: entries,
	}, nil
}

// UpdateSettings replaces the broker's allocation list and toggles the
// distribution flag. Zero-percentage entries are dropped before validation;
// the remaining percentages must sum to exactly 100 unless the list is empty.
func (s *DistributionService) UpdateSettings(brokerID uuid.UUID, req *UpdateDistributionRequest) (*DistributionSettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.brokerRepo.GetByID(brokerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	active := make([]AllocationEntry, 0, len(req.Allocations))
	sum := 0
	for _, entry := range req.Allocations {
		if entry.Percentage == 0 {
			continue
		}
		active = append(active, entry)
		sum += entry.Percentage
	}
	if len(active) > 0 && sum != 100 {
		return nil, apperrors.ErrAllocationSumNot100
	}

	allocations := make([]models.LeadDistributionAllocation, len(active))
	for i, entry := range active {
		allocations[i] = models.LeadDistributionAllocation{
			BrokerID:   brokerID,
			UserID:     entry.UserID,
			UserName:   entry.UserName,
			Percentage: entry.Percentage,
		}
	}

	if err := s.distributionRepo.ReplaceAllocations(brokerID, allocations); err != nil {
		return nil, fmt.Errorf("failed to replace allocations: %w", err)
	}

	if err := s.brokerRepo.SetDistributionEnabled(brokerID, req.Enabled); err != nil {
		return nil, fmt.Errorf("failed to update distribution flag: %w", err)
	}

	return s.GetSettings(brokerID)
}
