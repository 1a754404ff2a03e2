package models

// Broker represents a broker sub-account (tenant). The broker's ID doubles as
// the owner's user id, so the owner is always assignable.
type Broker struct {
	BaseModel
	Name                    string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email                   string `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,email,max=100"`
	Phone                   string `json:"phone" gorm:"size:30"`
	CompanyName             string `json:"company_name" gorm:"size:100"`
	LeadDistributionEnabled bool   `json:"lead_distribution_enabled" gorm:"not null;default:false"`

	// Relationships
	TeamMembers []TeamMember `json:"team_members,omitempty" gorm:"foreignKey:BrokerID"`
	Leads       []Lead       `json:"leads,omitempty" gorm:"foreignKey:BrokerID"`
}

// TableName returns the table name for Broker
func (Broker) TableName() string {
	return "brokers"
}
