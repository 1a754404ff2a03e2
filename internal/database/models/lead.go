package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Lead represents one prospective customer moving through the sales pipeline.
// Loan amount and turnover stay free text: CSV sources ship ranges like
// "$20,000 - $30,000" and the parsed numeric value is derived on demand.
type Lead struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BrokerID uuid.UUID `json:"broker_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Contact fields
	FullName     string `json:"full_name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Email        string `json:"email,omitempty" gorm:"size:200;index"`
	Phone        string `json:"phone,omitempty" gorm:"size:50;index"`
	BusinessName string `json:"business_name,omitempty" gorm:"size:200"`

	// Loan fields
	LoanAmount      string `json:"loan_amount,omitempty" gorm:"size:100"`
	LoanPurpose     string `json:"loan_purpose,omitempty" gorm:"size:200"`
	LoanTerm        string `json:"loan_term,omitempty" gorm:"size:100"`
	MonthlyTurnover string `json:"monthly_turnover,omitempty" gorm:"size:100"`
	MoneyTimeline   string `json:"money_timeline,omitempty" gorm:"size:100"`
	PropertyType    string `json:"property_type,omitempty" gorm:"size:100"`

	// Pipeline fields
	Status    LeadStatus      `json:"status" gorm:"size:20;not null;default:'new';index"`
	SubStatus *LeadSubStatus  `json:"sub_status,omitempty" gorm:"size:40"`
	CallCount int             `json:"call_count" gorm:"not null;default:0"`
	Tags      json.RawMessage `json:"tags,omitempty" gorm:"type:jsonb"`
	Notes     string          `json:"notes,omitempty" gorm:"type:text"`
	Source    string          `json:"source,omitempty" gorm:"size:100"`

	ExternalID string     `json:"external_id,omitempty" gorm:"size:200;index"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty" gorm:"type:uuid;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// SetTags marshals a tag list into the jsonb column. A nil or empty list
// clears the column.
func (l *Lead) SetTags(tags []string) error {
	if len(tags) == 0 {
		l.Tags = nil
		return nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	l.Tags = raw
	return nil
}

// TagList unmarshals the jsonb tags column; returns nil when unset.
func (l *Lead) TagList() []string {
	if len(l.Tags) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(l.Tags, &tags); err != nil {
		return nil
	}
	return tags
}
