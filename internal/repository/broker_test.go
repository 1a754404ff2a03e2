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

// BrokerRepositoryTestSuite tests the BrokerRepository
type BrokerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BrokerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BrokerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBrokerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BrokerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BrokerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BrokerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByEmail tests broker creation and email lookup
func (suite *BrokerRepositoryTestSuite) TestCreateAndGetByEmail() {
	broker := suite.factories.Broker.WithEmail("lookup@firm.com")

	suite.NoError(suite.repo.Create(broker))

	retrieved, err := suite.repo.GetByEmail("lookup@firm.com")
	suite.NoError(err)
	suite.Equal(broker.ID, retrieved.ID)
}

// TestGetByEmailNotFound tests looking up an unregistered email
func (suite *BrokerRepositoryTestSuite) TestGetByEmailNotFound() {
	broker, err := suite.repo.GetByEmail("nobody@firm.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(broker)
}

// TestSetDistributionEnabled tests toggling the distribution flag
func (suite *BrokerRepositoryTestSuite) TestSetDistributionEnabled() {
	broker := suite.factories.Broker.Create()
	suite.NoError(suite.repo.Create(broker))
	suite.False(broker.LeadDistributionEnabled)

	suite.NoError(suite.repo.SetDistributionEnabled(broker.ID, true))

	retrieved, err := suite.repo.GetByID(broker.ID)
	suite.NoError(err)
	suite.True(retrieved.LeadDistributionEnabled)
}

// TestDeleteCascades tests that deleting a broker removes tenant-scoped rows
func (suite *BrokerRepositoryTestSuite) TestDeleteCascades() {
	broker := suite.factories.Broker.Create()
	suite.NoError(suite.repo.Create(broker))

	lead := suite.factories.Lead.WithBroker(broker.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(lead).Error)

	member := suite.factories.TeamMember.WithBroker(broker.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(member).Error)

	alloc := suite.factories.Allocation.For(broker.ID, member.UserID, member.Name, 100)
	suite.NoError(suite.baseTestSuite.DB.Create(alloc).Error)

	record := &models.CsvImport{
		BrokerID:   broker.ID,
		Filename:   "leads.csv",
		ImportedBy: uuid.New(),
	}
	suite.NoError(suite.baseTestSuite.DB.Create(record).Error)

	suite.NoError(suite.repo.Delete(broker.ID))

	_, err := suite.repo.GetByID(broker.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	for _, check := range []struct {
		model interface{}
		name  string
	}{
		{&models.Lead{}, "leads"},
		{&models.TeamMember{}, "team members"},
		{&models.LeadDistributionAllocation{}, "allocations"},
		{&models.CsvImport{}, "import records"},
	} {
		var count int64
		suite.baseTestSuite.DB.Model(check.model).Where("broker_id = ?", broker.ID).Count(&count)
		suite.Equal(int64(0), count, "expected no %s left for deleted broker", check.name)
	}
}

// TestGetAllPagination tests listing brokers with pagination
func (suite *BrokerRepositoryTestSuite) TestGetAllPagination() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Broker.Create()))
	}

	brokers, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(brokers, 2)
}

func TestBrokerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BrokerRepositoryTestSuite))
}
