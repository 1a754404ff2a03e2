package repository

import (
	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// BrokerRepositoryInterface defines the interface for broker repository operations
type BrokerRepositoryInterface interface {
	Create(broker *models.Broker) error
	GetByID(id uuid.UUID) (*models.Broker, error)
	GetByEmail(email string) (*models.Broker, error)
	GetAll(limit, offset int) ([]models.Broker, int64, error)
	Update(broker *models.Broker) error
	SetDistributionEnabled(id uuid.UUID, enabled bool) error
	Delete(id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByUserID(userID uuid.UUID) (*models.TeamMember, error)
	GetByBrokerID(brokerID uuid.UUID) ([]models.TeamMember, error)
	Delete(id uuid.UUID) error
}

// LeadIdentity carries the three identity fields used for duplicate detection
type LeadIdentity struct {
	ExternalID string
	Email      string
	Phone      string
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	CreateBatch(leads []*models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	GetByBrokerID(brokerID uuid.UUID, status *models.LeadStatus, limit, offset int) ([]models.Lead, int64, error)
	GetIdentities(brokerID uuid.UUID) ([]LeadIdentity, error)
	Update(lead *models.Lead) error
	DeleteByIDs(brokerID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// DistributionRepositoryInterface defines the interface for lead distribution storage
type DistributionRepositoryInterface interface {
	GetAllocations(brokerID uuid.UUID) ([]models.LeadDistributionAllocation, error)
	ReplaceAllocations(brokerID uuid.UUID, allocations []models.LeadDistributionAllocation) error
	GetCounter(brokerID uuid.UUID) (int, error)
	UpsertCounter(brokerID uuid.UUID, counter int) error
}

// CsvImportRepositoryInterface defines the interface for import audit records
type CsvImportRepositoryInterface interface {
	Create(record *models.CsvImport) error
	GetByID(id uuid.UUID) (*models.CsvImport, error)
	GetByBrokerID(brokerID uuid.UUID, limit, offset int) ([]models.CsvImport, int64, error)
}
