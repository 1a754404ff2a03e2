package models

import (
	"time"

	"github.com/google/uuid"
)

// CallLog records one dialer call against a lead. Deleted when the lead is
// bulk-deleted.
type CallLog struct {
	BaseModel
	BrokerID uuid.UUID   `json:"broker_id" gorm:"type:uuid;not null;index" validate:"required"`
	LeadID   uuid.UUID   `json:"lead_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID   uuid.UUID   `json:"user_id" gorm:"type:uuid;not null" validate:"required"`
	Outcome  CallOutcome `json:"outcome" gorm:"size:20;not null"`
	Notes    string      `json:"notes,omitempty" gorm:"type:text"`
}

// TableName returns the table name for CallLog
func (CallLog) TableName() string {
	return "call_logs"
}

// DialCooldown keeps a lead out of the speed-dialer queue until ExpiresAt.
// Deleted when the lead is bulk-deleted.
type DialCooldown struct {
	BaseModel
	BrokerID  uuid.UUID `json:"broker_id" gorm:"type:uuid;not null;index" validate:"required"`
	LeadID    uuid.UUID `json:"lead_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// TableName returns the table name for DialCooldown
func (DialCooldown) TableName() string {
	return "dial_cooldowns"
}
