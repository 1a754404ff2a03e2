package models

import (
	"github.com/google/uuid"
)

// TeamMember represents a user belonging to a broker's team
type TeamMember struct {
	BaseModel
	BrokerID uuid.UUID `json:"broker_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	Name     string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email    string    `json:"email" gorm:"size:100;not null" validate:"required,email,max=100"`
	Phone    string    `json:"phone" gorm:"size:30"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
