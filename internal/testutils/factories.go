package testutils

import (
	"time"

	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// BrokerFactory provides methods to create test Broker data
type BrokerFactory struct{}

// NewBrokerFactory creates a new BrokerFactory
func NewBrokerFactory() *BrokerFactory {
	return &BrokerFactory{}
}

// Create creates a test Broker with default values
func (f *BrokerFactory) Create() *models.Broker {
	id := uuid.New()
	return &models.Broker{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Broker",
		// Unique email per instance so suites can create several brokers
		Email:       "broker-" + id.String()[:8] + "@test.com",
		Phone:       "+61 400 000 000",
		CompanyName: "Test Brokerage Pty Ltd",
	}
}

// WithEmail sets a custom email for the broker
func (f *BrokerFactory) WithEmail(email string) *models.Broker {
	broker := f.Create()
	broker.Email = email
	return broker
}

// WithDistributionEnabled turns on lead distribution for the broker
func (f *BrokerFactory) WithDistributionEnabled() *models.Broker {
	broker := f.Create()
	broker.LeadDistributionEnabled = true
	return broker
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	id := uuid.New()
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BrokerID: uuid.New(),
		UserID:   uuid.New(),
		Name:     "Jamie Smith",
		Email:    "member-" + id.String()[:8] + "@test.com",
		Phone:    "+61 400 111 222",
	}
}

// WithBroker sets the broker ID for the team member
func (f *TeamMemberFactory) WithBroker(brokerID uuid.UUID) *models.TeamMember {
	member := f.Create()
	member.BrokerID = brokerID
	return member
}

// WithName sets a custom name for the team member
func (f *TeamMemberFactory) WithName(name string) *models.TeamMember {
	member := f.Create()
	member.Name = name
	return member
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	return &models.Lead{
		ID:           id,
		BrokerID:     uuid.New(),
		FullName:     "Alex Morgan",
		Email:        "lead-" + id.String()[:8] + "@test.com",
		Phone:        "0412345678",
		BusinessName: "Morgan Holdings",
		LoanAmount:   "$50,000",
		LoanPurpose:  "Working capital",
		Status:       models.LeadStatusNew,
		Source:       "csv_import",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// WithBroker sets the broker ID for the lead
func (f *LeadFactory) WithBroker(brokerID uuid.UUID) *models.Lead {
	lead := f.Create()
	lead.BrokerID = brokerID
	return lead
}

// WithStatus sets a custom status for the lead
func (f *LeadFactory) WithStatus(status models.LeadStatus) *models.Lead {
	lead := f.Create()
	lead.Status = status
	return lead
}

// WithIdentity sets the three duplicate-detection identity fields
func (f *LeadFactory) WithIdentity(externalID, email, phone string) *models.Lead {
	lead := f.Create()
	lead.ExternalID = externalID
	lead.Email = email
	lead.Phone = phone
	return lead
}

// AllocationFactory provides methods to create test allocation data
type AllocationFactory struct{}

// NewAllocationFactory creates a new AllocationFactory
func NewAllocationFactory() *AllocationFactory {
	return &AllocationFactory{}
}

// Create creates a test allocation with default values
func (f *AllocationFactory) Create() *models.LeadDistributionAllocation {
	return &models.LeadDistributionAllocation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BrokerID:   uuid.New(),
		UserID:     uuid.New(),
		UserName:   "Jamie Smith",
		Percentage: 100,
	}
}

// For builds an allocation for a specific broker, user and share
func (f *AllocationFactory) For(brokerID, userID uuid.UUID, userName string, percentage int) *models.LeadDistributionAllocation {
	alloc := f.Create()
	alloc.BrokerID = brokerID
	alloc.UserID = userID
	alloc.UserName = userName
	alloc.Percentage = percentage
	return alloc
}

// FactorySet provides access to all factories
type FactorySet struct {
	Broker     *BrokerFactory
	TeamMember *TeamMemberFactory
	Lead       *LeadFactory
	Allocation *AllocationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Broker:     NewBrokerFactory(),
		TeamMember: NewTeamMemberFactory(),
		Lead:       NewLeadFactory(),
		Allocation: NewAllocationFactory(),
	}
}
