package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"broker-crm-backend/internal/database/models"
	apperrors "broker-crm-backend/internal/errors"
	"broker-crm-backend/internal/logger"
	"broker-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadImportService runs CSV lead imports for a broker: per-row validation,
// duplicate detection, status mapping, assignment resolution and batched
// storage, ending with one write-once audit record.
type LeadImportService struct {
	brokerRepo       repository.BrokerRepositoryInterface
	teamMemberRepo   repository.TeamMemberRepositoryInterface
	leadRepo         repository.LeadRepositoryInterface
	distributionRepo repository.DistributionRepositoryInterface
	csvImportRepo    repository.CsvImportRepositoryInterface
	validator        *validator.Validate
	log              *logger.Logger
	batchSize        int
	maxRows          int
}

// NewLeadImportService creates a new lead import service
func NewLeadImportService(
	brokerRepo repository.BrokerRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	distributionRepo repository.DistributionRepositoryInterface,
	csvImportRepo repository.CsvImportRepositoryInterface,
	validator *validator.Validate,
	batchSize int,
	maxRows int,
) *LeadImportService {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &LeadImportService{
		brokerRepo:       brokerRepo,
		teamMemberRepo:   teamMemberRepo,
		leadRepo:         leadRepo,
		distributionRepo: distributionRepo,
		csvImportRepo:    csvImportRepo,
		validator:        validator,
		log:              logger.New(),
		batchSize:        batchSize,
		maxRows:          maxRows,
	}
}

// LeadRow is one column-mapped CSV row. Field names match the normalized
// mapping produced by the importer UI; empty strings mean the column was
// absent or blank.
type LeadRow struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	BusinessName    string `json:"business_name"`
	LoanAmount      string `json:"loan_amount"`
	LoanPurpose     string `json:"loan_purpose"`
	LoanTerm        string `json:"loan_term"`
	MonthlyTurnover string `json:"monthly_turnover"`
	MoneyTimeline   string `json:"money_timeline"`
	PropertyType    string `json:"property_type"`
	ExternalID      string `json:"external_id"`
	Notes           string `json:"notes"`
	Source          string `json:"source"`
	Tags            string `json:"tags"`
	CallCount       string `json:"call_count"`
	CreatedAt       string `json:"created_at"`
	Status          string `json:"status"`
	BrokerEmail     string `json:"broker_email"`
	BrokerName      string `json:"broker_name"`
}

// ImportRowError is one row-level failure in an import run
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportRequest is a request to import column-mapped CSV rows for a broker
type ImportRequest struct {
	BrokerID uuid.UUID `json:"broker_id" validate:"required"`
	Filename string    `json:"filename" validate:"required,max=255"`
	Leads    []LeadRow `json:"leads" validate:"required"`
}

// ImportResponse summarizes one import run. Every row resolves to exactly
// one of imported, skipped or errored.
type ImportResponse struct {
	Success       bool             `json:"success"`
	ImportedCount int              `json:"imported_count"`
	SkippedCount  int              `json:"skipped_count"`
	ErrorCount    int              `json:"error_count"`
	Errors        []ImportRowError `json:"errors"`
}

// Run imports the given rows for a broker. Rows are processed sequentially
// because duplicate detection and the distribution counter are order
// dependent. Partial success is expected; the response always carries exact
// counts.
func (s *LeadImportService) Run(req *ImportRequest, importedBy uuid.UUID) (*ImportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if s.maxRows > 0 && len(req.Leads) > s.maxRows {
		return nil, apperrors.ErrImportTooLarge
	}

	broker, err := s.brokerRepo.GetByID(req.BrokerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	resolver, allocator, err := s.buildResolver(broker)
	if err != nil {
		return nil, err
	}

	identities, err := s.leadRepo.GetIdentities(broker.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing lead identities: %w", err)
	}
	detector := NewDuplicateDetector(identities)

	resp := &ImportResponse{Errors: []ImportRowError{}}

	pending := make([]*models.Lead, 0, len(req.Leads))
	rowNumbers := make([]int, 0, len(req.Leads))

	for i, row := range req.Leads {
		// First data row is row 2: 1-indexed plus the header row
		rowNum := i + 2

		fullName := strings.TrimSpace(row.FullName)
		if fullName == "" {
			resp.Errors = append(resp.Errors, ImportRowError{Row: rowNum, Message: "Missing full name"})
			resp.ErrorCount++
			continue
		}

		if detector.IsDuplicate(row.ExternalID, row.Email, row.Phone) {
			resp.SkippedCount++
			continue
		}

		lead := s.buildLead(broker.ID, fullName, row, resolver)
		pending = append(pending, lead)
		rowNumbers = append(rowNumbers, rowNum)

		// Catch duplicates later in this same import
		detector.Record(row.ExternalID, row.Email, row.Phone)
	}

	s.insertBatches(pending, rowNumbers, resp)

	if allocator != nil && allocator.Used() {
		if err := s.distributionRepo.UpsertCounter(broker.ID, allocator.Counter()); err != nil {
			s.log.WithField("broker_id", broker.ID).Warnf("failed to persist distribution counter: %v", err)
		}
	}

	s.recordImport(broker.ID, importedBy, req, resp)

	s.log.WithFields(map[string]interface{}{
		"broker_id": broker.ID,
		"filename":  req.Filename,
		"imported":  resp.ImportedCount,
		"skipped":   resp.SkippedCount,
		"errors":    resp.ErrorCount,
	}).Info("csv import completed")

	resp.Success = true
	return resp, nil
}

// buildResolver assembles the assignable users list (owner first, then team
// members) and the distribution allocator when the broker has distribution
// enabled with active allocations.
func (s *LeadImportService) buildResolver(broker *models.Broker) (*AssigneeResolver, *DistributionAllocator, error) {
	users := []AssignableUser{}
	if broker.Email != "" {
		users = append(users, AssignableUser{UserID: broker.ID, Email: broker.Email, Name: broker.Name})
	}

	members, err := s.teamMemberRepo.GetByBrokerID(broker.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load team members: %w", err)
	}
	for _, m := range members {
		name := m.Name
		if name == "" {
			name = m.Email
		}
		users = append(users, AssignableUser{UserID: m.UserID, Email: m.Email, Name: name})
	}

	var allocator *DistributionAllocator
	if broker.LeadDistributionEnabled {
		allocations, err := s.distributionRepo.GetAllocations(broker.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load distribution allocations: %w", err)
		}
		if len(allocations) > 0 {
			counter, err := s.distributionRepo.GetCounter(broker.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to load distribution counter: %w", err)
			}
			allocator = NewDistributionAllocator(allocations, counter)
		}
	}

	return NewAssigneeResolver(users, allocator), allocator, nil
}

// buildLead converts one accepted CSV row into a lead record
func (s *LeadImportService) buildLead(brokerID uuid.UUID, fullName string, row LeadRow, resolver *AssigneeResolver) *models.Lead {
	status, subStatus := MapStatus(row.Status)

	source := strings.TrimSpace(row.Source)
	if source == "" {
		source = "csv_import"
	}

	lead := &models.Lead{
		BrokerID:        brokerID,
		FullName:        fullName,
		Email:           strings.TrimSpace(row.Email),
		Phone:           strings.TrimSpace(row.Phone),
		BusinessName:    strings.TrimSpace(row.BusinessName),
		LoanAmount:      strings.TrimSpace(row.LoanAmount),
		LoanPurpose:     strings.TrimSpace(row.LoanPurpose),
		LoanTerm:        strings.TrimSpace(row.LoanTerm),
		MonthlyTurnover: strings.TrimSpace(row.MonthlyTurnover),
		MoneyTimeline:   strings.TrimSpace(row.MoneyTimeline),
		PropertyType:    strings.TrimSpace(row.PropertyType),
		ExternalID:      strings.TrimSpace(row.ExternalID),
		Notes:           strings.TrimSpace(row.Notes),
		Source:          source,
		Status:          status,
		SubStatus:       subStatus,
		CallCount:       ParseCallCount(row.CallCount),
		AssignedTo:      resolver.Resolve(row.BrokerEmail, row.BrokerName),
	}
	_ = lead.SetTags(ParseTags(row.Tags))
	if createdAt := ParseDate(row.CreatedAt); createdAt != nil {
		lead.CreatedAt = *createdAt
	}
	return lead
}

// insertBatches persists pending leads in fixed-size batches. A batch that
// fails as a whole degrades to row-by-row inserts so success and failure are
// attributed per row; rows are never silently dropped.
func (s *LeadImportService) insertBatches(pending []*models.Lead, rowNumbers []int, resp *ImportResponse) {
	for start := 0; start < len(pending); start += s.batchSize {
		end := start + s.batchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		if err := s.leadRepo.CreateBatch(batch); err != nil {
			s.log.Warnf("lead batch insert failed, retrying rows individually: %v", err)
			for j, lead := range batch {
				if rowErr := s.leadRepo.Create(lead); rowErr != nil {
					resp.Errors = append(resp.Errors, ImportRowError{Row: rowNumbers[start+j], Message: rowErr.Error()})
					resp.ErrorCount++
				} else {
					resp.ImportedCount++
				}
			}
			continue
		}
		resp.ImportedCount += len(batch)
	}
}

// recordImport writes the run's audit record. Failure to record never fails
// the import itself.
func (s *LeadImportService) recordImport(brokerID, importedBy uuid.UUID, req *ImportRequest, resp *ImportResponse) {
	var errorsJSON json.RawMessage
	if len(resp.Errors) > 0 {
		if raw, err := json.Marshal(resp.Errors); err == nil {
			errorsJSON = raw
		}
	}

	record := &models.CsvImport{
		BrokerID:      brokerID,
		Filename:      req.Filename,
		TotalRows:     len(req.Leads),
		ImportedCount: resp.ImportedCount,
		SkippedCount:  resp.SkippedCount,
		ErrorCount:    resp.ErrorCount,
		Errors:        errorsJSON,
		ImportedBy:    importedBy,
	}
	if err := s.csvImportRepo.Create(record); err != nil {
		s.log.WithField("broker_id", brokerID).Warnf("failed to record import: %v", err)
	}
}

// ImportRecordResponse is one entry in a broker's import history
type ImportRecordResponse struct {
	ID            uuid.UUID        `json:"id"`
	BrokerID      uuid.UUID        `json:"broker_id"`
	Filename      string           `json:"filename"`
	TotalRows     int              `json:"total_rows"`
	ImportedCount int              `json:"imported_count"`
	SkippedCount  int              `json:"skipped_count"`
	ErrorCount    int              `json:"error_count"`
	Errors        []ImportRowError `json:"errors,omitempty"`
	ImportedBy    uuid.UUID        `json:"imported_by"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ImportHistoryResponse is a paginated list of import records
type ImportHistoryResponse struct {
	Imports  []ImportRecordResponse `json:"imports"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// History lists a broker's past imports, newest first
func (s *LeadImportService) History(brokerID uuid.UUID, page, pageSize int) (*ImportHistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.brokerRepo.GetByID(brokerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}

	records, total, err := s.csvImportRepo.GetByBrokerID(brokerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch import history: %w", err)
	}

	imports := make([]ImportRecordResponse, len(records))
	for i, record := range records {
		var rowErrors []ImportRowError
		if len(record.Errors) > 0 {
			_ = json.Unmarshal(record.Errors, &rowErrors)
		}
		imports[i] = ImportRecordResponse{
			ID:            record.ID,
			BrokerID:      record.BrokerID,
			Filename:      record.Filename,
			TotalRows:     record.TotalRows,
			ImportedCount: record.ImportedCount,
			SkippedCount:  record.SkippedCount,
			ErrorCount:    record.ErrorCount,
			Errors:        rowErrors,
			ImportedBy:    record.ImportedBy,
			CreatedAt:     record.CreatedAt,
		}
	}

	return &ImportHistoryResponse{
		Imports:  imports,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// StatusPreviewRequest asks how CSV status values will be mapped
type StatusPreviewRequest struct {
	Statuses []string `json:"statuses" validate:"required"`
}

// PreviewStatuses resolves the distinct status values of a CSV before import
func (s *LeadImportService) PreviewStatuses(req *StatusPreviewRequest) ([]StatusMappingPreview, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return PreviewStatusMappings(req.Statuses), nil
}
