//go:build integration
// +build integration

package repository

import (
	"testing"

	"broker-crm-backend/internal/database/models"
	"broker-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadRepositoryTestSuite tests the LeadRepository
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadRepository
	factories     *testutils.FactorySet

	broker *models.Broker
}

// SetupSuite runs before all tests in the suite
func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeadRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.broker = suite.factories.Broker.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.broker).Error)
}

// TearDownTest runs after each test
func (suite *LeadRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LeadRepositoryTestSuite) createLead(lead *models.Lead) *models.Lead {
	suite.NoError(suite.baseTestSuite.DB.Create(lead).Error)
	return lead
}

// TestCreate tests inserting a single lead
func (suite *LeadRepositoryTestSuite) TestCreate() {
	lead := suite.factories.Lead.WithBroker(suite.broker.ID)

	err := suite.repo.Create(lead)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, lead.ID)

	retrieved, err := suite.repo.GetByID(lead.ID)
	suite.NoError(err)
	suite.Equal(lead.FullName, retrieved.FullName)
	suite.Equal(suite.broker.ID, retrieved.BrokerID)
}

// TestCreateBatch tests inserting multiple leads in one statement
func (suite *LeadRepositoryTestSuite) TestCreateBatch() {
	leads := []*models.Lead{
		suite.factories.Lead.WithBroker(suite.broker.ID),
		suite.factories.Lead.WithBroker(suite.broker.ID),
		suite.factories.Lead.WithBroker(suite.broker.ID),
	}

	err := suite.repo.CreateBatch(leads)

	suite.NoError(err)

	_, total, err := suite.repo.GetByBrokerID(suite.broker.ID, nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
}

// TestCreateBatchEmpty tests that an empty batch is a no-op
func (suite *LeadRepositoryTestSuite) TestCreateBatchEmpty() {
	suite.NoError(suite.repo.CreateBatch(nil))
}

// TestGetByIDNotFound tests retrieving a non-existent lead
func (suite *LeadRepositoryTestSuite) TestGetByIDNotFound() {
	lead, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(lead)
}

// TestGetByBrokerIDStatusFilter tests the optional status filter
func (suite *LeadRepositoryTestSuite) TestGetByBrokerIDStatusFilter() {
	pending := suite.factories.Lead.WithBroker(suite.broker.ID)
	pending.Status = models.LeadStatusPending
	suite.createLead(pending)

	fresh := suite.factories.Lead.WithBroker(suite.broker.ID)
	suite.createLead(fresh)

	status := models.LeadStatusPending
	leads, total, err := suite.repo.GetByBrokerID(suite.broker.ID, &status, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(leads, 1)
	suite.Equal(pending.ID, leads[0].ID)
}

// TestGetByBrokerIDScoping tests that another broker's leads are not returned
func (suite *LeadRepositoryTestSuite) TestGetByBrokerIDScoping() {
	other := suite.factories.Broker.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	suite.createLead(suite.factories.Lead.WithBroker(other.ID))
	suite.createLead(suite.factories.Lead.WithBroker(suite.broker.ID))

	leads, total, err := suite.repo.GetByBrokerID(suite.broker.ID, nil, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(leads, 1)
	suite.Equal(suite.broker.ID, leads[0].BrokerID)
}

// TestGetIdentities tests loading identity fields for duplicate detection
func (suite *LeadRepositoryTestSuite) TestGetIdentities() {
	lead := suite.factories.Lead.WithBroker(suite.broker.ID)
	lead.ExternalID = "ext-42"
	lead.Email = "known@example.com"
	lead.Phone = "0412345678"
	suite.createLead(lead)

	// Another broker's lead must not leak into this broker's identity set
	other := suite.factories.Broker.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	suite.createLead(suite.factories.Lead.WithBroker(other.ID))

	identities, err := suite.repo.GetIdentities(suite.broker.ID)

	suite.NoError(err)
	suite.Len(identities, 1)
	suite.Equal("ext-42", identities[0].ExternalID)
	suite.Equal("known@example.com", identities[0].Email)
	suite.Equal("0412345678", identities[0].Phone)
}

// TestUpdate tests saving changes to a lead
func (suite *LeadRepositoryTestSuite) TestUpdate() {
	lead := suite.createLead(suite.factories.Lead.WithBroker(suite.broker.ID))

	subStatus := models.SubStatusDocsOut
	lead.Status = models.LeadStatusPending
	lead.SubStatus = &subStatus
	err := suite.repo.Update(lead)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(lead.ID)
	suite.NoError(err)
	suite.Equal(models.LeadStatusPending, retrieved.Status)
	suite.NotNil(retrieved.SubStatus)
	suite.Equal(subStatus, *retrieved.SubStatus)
}

// TestDeleteByIDs tests bulk deletion with call log and cooldown cleanup
func (suite *LeadRepositoryTestSuite) TestDeleteByIDs() {
	lead := suite.createLead(suite.factories.Lead.WithBroker(suite.broker.ID))
	kept := suite.createLead(suite.factories.Lead.WithBroker(suite.broker.ID))

	callLog := &models.CallLog{
		BrokerID: suite.broker.ID,
		LeadID:   lead.ID,
		UserID:   uuid.New(),
		Outcome:  models.CallOutcomeNoAnswer,
	}
	suite.NoError(suite.baseTestSuite.DB.Create(callLog).Error)

	deleted, err := suite.repo.DeleteByIDs(suite.broker.ID, []uuid.UUID{lead.ID})

	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repo.GetByID(lead.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	_, err = suite.repo.GetByID(kept.ID)
	suite.NoError(err)

	var logCount int64
	suite.baseTestSuite.DB.Model(&models.CallLog{}).Where("lead_id = ?", lead.ID).Count(&logCount)
	suite.Equal(int64(0), logCount)
}

// TestDeleteByIDsScoping tests that another broker's lead ids are ignored
func (suite *LeadRepositoryTestSuite) TestDeleteByIDsScoping() {
	other := suite.factories.Broker.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	foreign := suite.createLead(suite.factories.Lead.WithBroker(other.ID))

	deleted, err := suite.repo.DeleteByIDs(suite.broker.ID, []uuid.UUID{foreign.ID})

	suite.NoError(err)
	suite.Equal(int64(0), deleted)

	_, err = suite.repo.GetByID(foreign.ID)
	suite.NoError(err)
}

func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}
