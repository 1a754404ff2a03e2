package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadDistributionAllocation is a (user, percentage) pair in a broker's
// weighted round-robin distribution. Across one broker's allocation set the
// percentages sum to exactly 100 when distribution is enabled; zero-percentage
// rows are never persisted.
type LeadDistributionAllocation struct {
	BaseModel
	BrokerID   uuid.UUID `json:"broker_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null" validate:"required"`
	UserName   string    `json:"user_name" gorm:"size:100;not null" validate:"required,max=100"`
	Percentage int       `json:"percentage" gorm:"not null" validate:"required,min=1,max=100"`
}

// TableName returns the table name for LeadDistributionAllocation
func (LeadDistributionAllocation) TableName() string {
	return "lead_distribution_allocations"
}

// LeadDistributionCounter is the persisted cursor into a broker's round-robin
// slot array. Always 0 <= Counter < 100; advances by one per distributed
// assignment and survives process restarts and import sessions.
type LeadDistributionCounter struct {
	BrokerID  uuid.UUID `json:"broker_id" gorm:"type:uuid;primary_key"`
	Counter   int       `json:"counter" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for LeadDistributionCounter
func (LeadDistributionCounter) TableName() string {
	return "lead_distribution_counters"
}
