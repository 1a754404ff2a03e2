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

type BrokerServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBrokerRepo *mocks.MockBrokerRepositoryInterface
	brokerService  *service.BrokerService
}

func (suite *BrokerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBrokerRepo = mocks.NewMockBrokerRepositoryInterface(suite.ctrl)
	suite.brokerService = service.NewBrokerService(suite.mockBrokerRepo, validator.New())
}

func (suite *BrokerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BrokerServiceTestSuite) TestCreate_Success() {
	suite.mockBrokerRepo.EXPECT().GetByEmail("owner@firm.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockBrokerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(broker *models.Broker) error {
		broker.ID = uuid.New()
		return nil
	})

	resp, err := suite.brokerService.Create(&service.CreateBrokerRequest{
		Name:  "Owner Broker",
		Email: "owner@firm.com",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Owner Broker", resp.Name)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
	assert.False(suite.T(), resp.LeadDistributionEnabled)
}

func (suite *BrokerServiceTestSuite) TestCreate_DuplicateEmail() {
	suite.mockBrokerRepo.EXPECT().GetByEmail("owner@firm.com").Return(&models.Broker{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "owner@firm.com",
	}, nil)

	resp, err := suite.brokerService.Create(&service.CreateBrokerRequest{
		Name:  "Owner Broker",
		Email: "owner@firm.com",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBrokerExists)
}

func (suite *BrokerServiceTestSuite) TestCreate_InvalidEmail() {
	resp, err := suite.brokerService.Create(&service.CreateBrokerRequest{
		Name:  "Owner Broker",
		Email: "not-an-email",
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *BrokerServiceTestSuite) TestUpdate_PartialFields() {
	broker := &models.Broker{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Owner Broker",
		Email:       "owner@firm.com",
		Phone:       "+61 400 000 000",
		CompanyName: "Old Name Pty Ltd",
	}
	suite.mockBrokerRepo.EXPECT().GetByID(broker.ID).Return(broker, nil)
	suite.mockBrokerRepo.EXPECT().Update(broker).Return(nil)

	company := "New Name Pty Ltd"
	resp, err := suite.brokerService.Update(broker.ID, &service.UpdateBrokerRequest{
		CompanyName: &company,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name Pty Ltd", resp.CompanyName)
	// Untouched fields keep their values
	assert.Equal(suite.T(), "Owner Broker", resp.Name)
	assert.Equal(suite.T(), "+61 400 000 000", resp.Phone)
}

func (suite *BrokerServiceTestSuite) TestDelete_NotFound() {
	missing := uuid.New()
	suite.mockBrokerRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	err := suite.brokerService.Delete(missing)

	assert.ErrorIs(suite.T(), err, apperrors.ErrBrokerNotFound)
}

func (suite *BrokerServiceTestSuite) TestList_NormalizesPagination() {
	suite.mockBrokerRepo.EXPECT().GetAll(20, 0).Return([]models.Broker{}, int64(0), nil)

	resp, err := suite.brokerService.List(0, 500)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

func TestBrokerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BrokerServiceTestSuite))
}
