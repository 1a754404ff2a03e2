package repository

import (
	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// CreateBatch inserts a batch of leads in one statement. All-or-nothing: a
// failing row fails the whole batch, which callers recover from by retrying
// row by row.
func (r *LeadRepository) CreateBatch(leads []*models.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	return r.db.Create(leads).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByBrokerID retrieves a broker's leads with optional status filter and pagination
func (r *LeadRepository) GetByBrokerID(brokerID uuid.UUID, status *models.LeadStatus, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{}).Where("broker_id = ?", brokerID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// GetIdentities retrieves the identity fields of all of a broker's leads,
// used to seed duplicate detection before an import run.
func (r *LeadRepository) GetIdentities(brokerID uuid.UUID) ([]LeadIdentity, error) {
	var identities []LeadIdentity
	err := r.db.Model(&models.Lead{}).
		Select("external_id, email, phone").
		Where("broker_id = ?", brokerID).
		Scan(&identities).Error
	if err != nil {
		return nil, err
	}
	return identities, nil
}

// Update updates a lead
func (r *LeadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

// DeleteByIDs deletes a broker's leads by id, cascading to call logs and dial
// cooldowns. Returns the number of leads removed.
func (r *LeadRepository) DeleteByIDs(brokerID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CallLog{}, "broker_id = ? AND lead_id IN ?", brokerID, ids).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.DialCooldown{}, "broker_id = ? AND lead_id IN ?", brokerID, ids).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Lead{}, "broker_id = ? AND id IN ?", brokerID, ids)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
