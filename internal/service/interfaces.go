package service

import (
	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeadImportServiceInterface defines the interface for CSV lead imports
type LeadImportServiceInterface interface {
	Run(req *ImportRequest, importedBy uuid.UUID) (*ImportResponse, error)
	History(brokerID uuid.UUID, page, pageSize int) (*ImportHistoryResponse, error)
	PreviewStatuses(req *StatusPreviewRequest) ([]StatusMappingPreview, error)
}

// BrokerServiceInterface defines the interface for broker management
type BrokerServiceInterface interface {
	Create(req *CreateBrokerRequest) (*BrokerResponse, error)
	GetByID(id uuid.UUID) (*BrokerResponse, error)
	List(page, pageSize int) (*BrokerListResponse, error)
	Update(id uuid.UUID, req *UpdateBrokerRequest) (*BrokerResponse, error)
	Delete(id uuid.UUID) error
}

// LeadServiceInterface defines the interface for lead operations
type LeadServiceInterface interface {
	Create(req *CreateLeadRequest) (*LeadResponse, error)
	GetByID(brokerID, leadID uuid.UUID) (*LeadResponse, error)
	List(brokerID uuid.UUID, status *models.LeadStatus, page, pageSize int) (*LeadListResponse, error)
	UpdateStatus(brokerID, leadID uuid.UUID, req *UpdateLeadStatusRequest) (*LeadResponse, error)
	BulkDelete(req *BulkDeleteRequest) (*BulkDeleteResponse, error)
}

// DistributionServiceInterface defines the interface for distribution settings
type DistributionServiceInterface interface {
	GetSettings(brokerID uuid.UUID) (*DistributionSettingsResponse, error)
	UpdateSettings(brokerID uuid.UUID, req *UpdateDistributionRequest) (*DistributionSettingsResponse, error)
}

// TeamMemberServiceInterface defines the interface for team roster management
type TeamMemberServiceInterface interface {
	Create(req *CreateTeamMemberRequest) (*TeamMemberResponse, error)
	List(brokerID uuid.UUID) (*TeamListResponse, error)
	Delete(brokerID, memberID uuid.UUID) error
}
