package repository

import (
	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CsvImportRepository handles database operations for import audit records
type CsvImportRepository struct {
	db *gorm.DB
}

// NewCsvImportRepository creates a new csv import repository
func NewCsvImportRepository(db *gorm.DB) *CsvImportRepository {
	return &CsvImportRepository{db: db}
}

// Create creates a new import record
func (r *CsvImportRepository) Create(record *models.CsvImport) error {
	return r.db.Create(record).Error
}

// GetByID retrieves an import record by ID
func (r *CsvImportRepository) GetByID(id uuid.UUID) (*models.CsvImport, error) {
	var record models.CsvImport
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByBrokerID retrieves a broker's import history, newest first
func (r *CsvImportRepository) GetByBrokerID(brokerID uuid.UUID, limit, offset int) ([]models.CsvImport, int64, error) {
	var records []models.CsvImport
	var total int64

	if err := r.db.Model(&models.CsvImport{}).Where("broker_id = ?", brokerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("broker_id = ?", brokerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
