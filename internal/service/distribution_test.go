package service_test

import (
	"testing"

	"broker-crm-backend/internal/database/models"
	apperrors "broker-crm-backend/internal/errors"
	"broker-crm-backend/internal/mocks"
	"broker-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DistributionServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockBrokerRepo       *mocks.MockBrokerRepositoryInterface
	mockDistributionRepo *mocks.MockDistributionRepositoryInterface
	distributionService  *service.DistributionService

	broker *models.Broker
}

func (suite *DistributionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBrokerRepo = mocks.NewMockBrokerRepositoryInterface(suite.ctrl)
	suite.mockDistributionRepo = mocks.NewMockDistributionRepositoryInterface(suite.ctrl)
	suite.distributionService = service.NewDistributionService(
		suite.mockBrokerRepo,
		suite.mockDistributionRepo,
		validator.New(),
	)

	suite.broker = &models.Broker{
		BaseModel:               models.BaseModel{ID: uuid.New()},
		Name:                    "Owner Broker",
		Email:                   "owner@firm.com",
		LeadDistributionEnabled: true,
	}
}

func (suite *DistributionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DistributionServiceTestSuite) TestGetSettings() {
	userID := uuid.New()
	suite.mockBrokerRepo.EXPECT().GetByID(suite.broker.ID).Return(suite.broker, nil)
	suite.mockDistributionRepo.EXPECT().GetAllocations(suite.broker.ID).Return([]models.LeadDistributionAllocation{
		{BrokerID: suite.broker.ID, UserID: userID, UserName: "Jamie Smith", Percentage: 100},
	}, nil)

	settings, err := suite.distributionService.GetSettings(suite.broker.ID)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), settings.Enabled)
	require.Len(suite.T(), settings.Allocations, 1)
	assert.Equal(suite.T(), userID, settings.Allocations[0].UserID)
	assert.Equal(suite.T(), 100, settings.Allocations[0].Percentage)
}

func (suite *DistributionServiceTestSuite) TestGetSettings_BrokerNotFound() {
	missing := uuid.New()
	suite.mockBrokerRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	settings, err := suite.distributionService.GetSettings(missing)

	assert.Nil(suite.T(), settings)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBrokerNotFound)
}

func (suite *DistributionServiceTestSuite) TestUpdateSettings_ReplacesAllocations() {
	userA := uuid.New()
	userB := uuid.New()

	suite.mockBrokerRepo.EXPECT().GetByID(suite.broker.ID).Return(suite.broker, nil).Times(2)

	var stored []models.LeadDistributionAllocation
	suite.mockDistributionRepo.EXPECT().ReplaceAllocations(suite.broker.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, allocations []models.LeadDistributionAllocation) error {
			stored = allocations
			return nil
		})
	suite.mockBrokerRepo.EXPECT().SetDistributionEnabled(suite.broker.ID, true).Return(nil)
	suite.mockDistributionRepo.EXPECT().GetAllocations(suite.broker.ID).
		DoAndReturn(func(uuid.UUID) ([]models.LeadDistributionAllocation, error) {
			return stored, nil
		})

	settings, err := suite.distributionService.UpdateSettings(suite.broker.ID, &service.UpdateDistributionRequest{
		Enabled: true,
		Allocations: []service.AllocationEntry{
			{UserID: userA, UserName: "Jamie Smith", Percentage: 60},
			{UserID: userB, UserName: "Robin Chen", Percentage: 40},
		},
	})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), settings.Allocations, 2)
	assert.Equal(suite.T(), 60, settings.Allocations[0].Percentage)
	assert.Equal(suite.T(), 40, settings.Allocations[1].Percentage)
}

func (suite *DistributionServiceTestSuite) TestUpdateSettings_DropsZeroPercentageEntries() {
	userA := uuid.New()
	userB := uuid.New()

	suite.mockBrokerRepo.EXPECT().GetByID(suite.broker.ID).Return(suite.broker, nil).Times(2)
	suite.mockDistributionRepo.EXPECT().ReplaceAllocations(suite.broker.ID, gomock.Len(1)).Return(nil)
	suite.mockBrokerRepo.EXPECT().SetDistributionEnabled(suite.broker.ID, true).Return(nil)
	suite.mockDistributionRepo.EXPECT().GetAllocations(suite.broker.ID).Return(nil, nil)

	_, err := suite.distributionService.UpdateSettings(suite.broker.ID, &service.UpdateDistributionRequest{
		Enabled: true,
		Allocations: []service.AllocationEntry{
			{UserID: userA, UserName: "Jamie Smith", Percentage: 100},
			{UserID: userB, UserName: "Robin Chen", Percentage: 0},
		},
	})

	require.NoError(suite.T(), err)
}

func (suite *DistributionServiceTestSuite) TestUpdateSettings_SumMustBe100() {
	suite.mockBrokerRepo.EXPECT().GetByID(suite.broker.ID).Return(suite.broker, nil)

	settings, err := suite.distributionService.UpdateSettings(suite.broker.ID, &service.UpdateDistributionRequest{
		Enabled: true,
		Allocations: []service.AllocationEntry{
			{UserID: uuid.New(), UserName: "Jamie Smith", Percentage: 60},
			{UserID: uuid.New(), UserName: "Robin Chen", Percentage: 30},
		},
	})

	assert.Nil(suite.T(), settings)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAllocationSumNot100)
}

func (suite *DistributionServiceTestSuite) TestUpdateSettings_EmptyListAllowed() {
	suite.mockBrokerRepo.EXPECT().GetByID(suite.broker.ID).Return(suite.broker, nil).Times(2)
	suite.mockDistributionRepo.EXPECT().ReplaceAllocations(suite.broker.ID, gomock.Len(0)).Return(nil)
	suite.mockBrokerRepo.EXPECT().SetDistributionEnabled(suite.broker.ID, false).Return(nil)
	suite.mockDistributionRepo.EXPECT().GetAllocations(suite.broker.ID).Return(nil, nil)

	settings, err := suite.distributionService.UpdateSettings(suite.broker.ID, &service.UpdateDistributionRequest{
		Enabled:     false,
		Allocations: []service.AllocationEntry{},
	})

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), settings.Allocations)
}

func (suite *DistributionServiceTestSuite) TestUpdateSettings_InvalidPercentageRejected() {
	settings, err := suite.distributionService.UpdateSettings(suite.broker.ID, &service.UpdateDistributionRequest{
		Enabled: true,
		Allocations: []service.AllocationEntry{
			{UserID: uuid.New(), UserName: "Jamie Smith", Percentage: 120},
		},
	})

	assert.Nil(suite.T(), settings)
	assert.Error(suite.T(), err)
}

func TestDistributionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DistributionServiceTestSuite))
}
