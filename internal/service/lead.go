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

// LeadService handles lead lifecycle operations outside of CSV import
type LeadService struct {
	brokerRepo repository.BrokerRepositoryInterface
	leadRepo   repository.LeadRepositoryInterface
	validator  *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(
	brokerRepo repository.BrokerRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	validator *validator.Validate,
) *LeadService {
	return &LeadService{
		brokerRepo: brokerRepo,
		leadRepo:   leadRepo,
		validator:  validator,
	}
}

// CreateLeadRequest is a request to create a single lead manually
type CreateLeadRequest struct {
	BrokerID        uuid.UUID  `json:"broker_id" validate:"required"`
	FullName        string     `json:"full_name" validate:"required,min=1,max=200"`
	Email           string     `json:"email" validate:"omitempty,email,max=200"`
	Phone           string     `json:"phone" validate:"max=50"`
	BusinessName    string     `json:"business_name" validate:"max=200"`
	LoanAmount      string     `json:"loan_amount" validate:"max=100"`
	LoanPurpose     string     `json:"loan_purpose" validate:"max=200"`
	LoanTerm        string     `json:"loan_term" validate:"max=100"`
	MonthlyTurnover string     `json:"monthly_turnover" validate:"max=100"`
	MoneyTimeline   string     `json:"money_timeline" validate:"max=100"`
	PropertyType    string     `json:"property_type" validate:"max=100"`
	Notes           string     `json:"notes"`
	Source          string     `json:"source" validate:"max=100"`
	Tags            []string   `json:"tags"`
	AssignedTo      *uuid.UUID `json:"assigned_to,omitempty"`
}

// UpdateLeadStatusRequest moves a lead to a new pipeline status
type UpdateLeadStatusRequest struct {
	Status    models.LeadStatus     `json:"status" validate:"required"`
	SubStatus *models.LeadSubStatus `json:"sub_status,omitempty"`
}

// BulkDeleteRequest deletes a set of a broker's leads
type BulkDeleteRequest struct {
	BrokerID uuid.UUID   `json:"broker_id" validate:"required"`
	LeadIDs  []uuid.UUID `json:"lead_ids"`
}

// BulkDeleteResponse reports how many leads were removed
type BulkDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// LeadResponse is the API representation of a lead. LoanAmountValue is the
// parsed numeric reading of the free-text loan amount.
type LeadResponse struct {
	ID              uuid.UUID             `json:"id"`
	BrokerID        uuid.UUID             `json:"broker_id"`
	FullName        string                `json:"full_name"`
	Email           string                `json:"email,omitempty"`
	Phone           string                `json:"phone,omitempty"`
	BusinessName    string                `json:"business_name,omitempty"`
	LoanAmount      string                `json:"loan_amount,omitempty"`
	LoanAmountValue float64               `json:"loan_amount_value"`
	LoanPurpose     string                `json:"loan_purpose,omitempty"`
	LoanTerm        string                `json:"loan_term,omitempty"`
	MonthlyTurnover string                `json:"monthly_turnover,omitempty"`
	MoneyTimeline   string                `json:"money_timeline,omitempty"`
	PropertyType    string                `json:"property_type,omitempty"`
	Status          models.LeadStatus     `json:"status"`
	SubStatus       *models.LeadSubStatus `json:"sub_status,omitempty"`
	CallCount       int                   `json:"call_count"`
	Tags            []string              `json:"tags,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Source          string                `json:"source,omitempty"`
	ExternalID      string                `json:"external_id,omitempty"`
	AssignedTo      *uuid.UUID            `json:"assigned_to,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// LeadListResponse is a paginated, optionally status-filtered list of leads
type LeadListResponse struct {
	Leads    []LeadResponse `json:"leads"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func leadResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:              lead.ID,
		BrokerID:        lead.BrokerID,
		FullName:        lead.FullName,
		Email:           lead.Email,
		Phone:           lead.Phone,
		BusinessName:    lead.BusinessName,
		LoanAmount:      lead.LoanAmount,
		LoanAmountValue: ParseLoanAmount(lead.LoanAmount),
		LoanPurpose:     lead.LoanPurpose,
		LoanTerm:        lead.LoanTerm,
		MonthlyTurnover: lead.MonthlyTurnover,
		MoneyTimeline:   lead.MoneyTimeline,
		PropertyType:    lead.PropertyType,
		Status:          lead.Status,
		SubStatus:       lead.SubStatus,
		CallCount:       lead.CallCount,
		Tags:            lead.TagList(),
		Notes:           lead.Notes,
		Source:          lead.Source,
		ExternalID:      lead.ExternalID,
		AssignedTo:      lead.AssignedTo,
		CreatedAt:       lead.CreatedAt,
		UpdatedAt:       lead.UpdatedAt,
	}
}

// Create adds a single lead manually
func (s *LeadService) Create(req *CreateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.brokerRepo.GetByID(req.BrokerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	lead := &models.Lead{
		BrokerID:        req.BrokerID,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		BusinessName:    req.BusinessName,
		LoanAmount:      req.LoanAmount,
		LoanPurpose:     req.LoanPurpose,
		LoanTerm:        req.LoanTerm,
		MonthlyTurnover: req.MonthlyTurnover,
		MoneyTimeline:   req.MoneyTimeline,
		PropertyType:    req.PropertyType,
		Status:          models.LeadStatusNew,
		Notes:           req.Notes,
		Source:          source,
		AssignedTo:      req.AssignedTo,
	}
	if err := lead.SetTags(req.Tags); err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	if err := s.leadRepo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return leadResponse(lead), nil
}

// GetByID fetches one lead, scoped to the given broker
func (s *LeadService) GetByID(brokerID, leadID uuid.UUID) (*LeadResponse, error) {
	lead, err := s.fetchBrokerLead(brokerID, leadID)
	if err != nil {
		return nil, err
	}
	return leadResponse(lead), nil
}

// List returns a broker's leads, newest first, optionally filtered by status
func (s *LeadService) List(brokerID uuid.UUID, status *models.LeadStatus, page, pageSize int) (*LeadListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	leads, total, err := s.leadRepo.GetByBrokerID(brokerID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	responses := make([]LeadResponse, len(leads))
	for i := range leads {
		responses[i] = *leadResponse(&leads[i])
	}

	return &LeadListResponse{
		Leads:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStatus moves a lead through the pipeline. Sub status is only legal
// on statuses that carry one and must belong to the target status; moving to
// a status without sub statuses clears any existing sub status.
func (s *LeadService) UpdateStatus(brokerID, leadID uuid.UUID, req *UpdateLeadStatusRequest) (*LeadResponse, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.SubStatus != nil {
		if !req.Status.AllowsSubStatus() || !req.SubStatus.IsValidFor(req.Status) {
			return nil, apperrors.ErrInvalidSubStatus
		}
	}

	lead, err := s.fetchBrokerLead(brokerID, leadID)
	if err != nil {
		return nil, err
	}

	lead.Status = req.Status
	if req.Status.AllowsSubStatus() {
		lead.SubStatus = req.SubStatus
	} else {
		lead.SubStatus = nil
	}

	if err := s.leadRepo.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return leadResponse(lead), nil
}

// BulkDelete removes the given leads and their call history
func (s *LeadService) BulkDelete(req *BulkDeleteRequest) (*BulkDeleteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.LeadIDs) == 0 {
		return nil, apperrors.ErrNoLeadsSelected
	}

	if _, err := s.brokerRepo.GetByID(req.BrokerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	deleted, err := s.leadRepo.DeleteByIDs(req.BrokerID, req.LeadIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to delete leads: %w", err)
	}

	return &BulkDeleteResponse{DeletedCount: deleted}, nil
}

func (s *LeadService) fetchBrokerLead(brokerID, leadID uuid.UUID) (*models.Lead, error) {
	lead, err := s.leadRepo.GetByID(leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	if lead.BrokerID != brokerID {
		return nil, apperrors.ErrLeadNotFound
	}
	return lead, nil
}
