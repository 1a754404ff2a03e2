package repository

import (
	"errors"

	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DistributionRepository handles storage for lead distribution allocations
// and the per-broker round-robin counter
type DistributionRepository struct {
	db *gorm.DB
}

// NewDistributionRepository creates a new distribution repository
func NewDistributionRepository(db *gorm.DB) *DistributionRepository {
	return &DistributionRepository{db: db}
}

// GetAllocations retrieves a broker's allocations ordered by user id, the
// same order used to build the slot array so counters stay meaningful
// between runs.
func (r *DistributionRepository) GetAllocations(brokerID uuid.UUID) ([]models.LeadDistributionAllocation, error) {
	var allocations []models.LeadDistributionAllocation
	err := r.db.Where("broker_id = ?", brokerID).Order("user_id ASC").Find(&allocations).Error
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

// ReplaceAllocations replaces a broker's allocation set wholesale
func (r *DistributionRepository) ReplaceAllocations(brokerID uuid.UUID, allocations []models.LeadDistributionAllocation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.LeadDistributionAllocation{}, "broker_id = ?", brokerID).Error; err != nil {
			return err
		}
		if len(allocations) == 0 {
			return nil
		}
		return tx.Create(&allocations).Error
	})
}

// GetCounter retrieves the broker's distribution counter, defaulting to 0
// when none has been persisted yet.
func (r *DistributionRepository) GetCounter(brokerID uuid.UUID) (int, error) {
	var counter models.LeadDistributionCounter
	err := r.db.First(&counter, "broker_id = ?", brokerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return counter.Counter, nil
}

// UpsertCounter persists the broker's distribution counter
func (r *DistributionRepository) UpsertCounter(brokerID uuid.UUID, value int) error {
	counter := models.LeadDistributionCounter{
		BrokerID: brokerID,
		Counter:  value,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "broker_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"counter", "updated_at"}),
	}).Create(&counter).Error
}
