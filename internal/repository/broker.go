package repository

import (
	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrokerRepository handles database operations for brokers
type BrokerRepository struct {
	db *gorm.DB
}

// NewBrokerRepository creates a new broker repository
func NewBrokerRepository(db *gorm.DB) *BrokerRepository {
	return &BrokerRepository{db: db}
}

// Create creates a new broker
func (r *BrokerRepository) Create(broker *models.Broker) error {
	return r.db.Create(broker).Error
}

// GetByID retrieves a broker by ID
func (r *BrokerRepository) GetByID(id uuid.UUID) (*models.Broker, error) {
	var broker models.Broker
	err := r.db.First(&broker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &broker, nil
}

// GetByEmail retrieves a broker by email
func (r *BrokerRepository) GetByEmail(email string) (*models.Broker, error) {
	var broker models.Broker
	err := r.db.First(&broker, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &broker, nil
}

// GetAll retrieves all brokers with pagination
func (r *BrokerRepository) GetAll(limit, offset int) ([]models.Broker, int64, error) {
	var brokers []models.Broker
	var total int64

	if err := r.db.Model(&models.Broker{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&brokers).Error
	if err != nil {
		return nil, 0, err
	}

	return brokers, total, nil
}

// Update updates a broker
func (r *BrokerRepository) Update(broker *models.Broker) error {
	return r.db.Save(broker).Error
}

// SetDistributionEnabled toggles the lead distribution flag for a broker
func (r *BrokerRepository) SetDistributionEnabled(id uuid.UUID, enabled bool) error {
	return r.db.Model(&models.Broker{}).
		Where("id = ?", id).
		Update("lead_distribution_enabled", enabled).Error
}

// Delete deletes a broker and all tenant-scoped rows that hang off it
func (r *BrokerRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&models.CallLog{},
			&models.DialCooldown{},
			&models.Lead{},
			&models.LeadDistributionAllocation{},
			&models.LeadDistributionCounter{},
			&models.CsvImport{},
			&models.TeamMember{},
		} {
			if err := tx.Delete(m, "broker_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Broker{}, "id = ?", id).Error
	})
}
