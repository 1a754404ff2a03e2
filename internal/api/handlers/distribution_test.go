package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"broker-crm-backend/internal/api/handlers"
	apperrors "broker-crm-backend/internal/errors"
	"broker-crm-backend/internal/mocks"
	"broker-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DistributionHandlerTestSuite defines the test suite for DistributionHandler
type DistributionHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockDistributionSvc *mocks.MockDistributionServiceInterface
	handler             *handlers.DistributionHandler
	router              *gin.Engine
}

func (suite *DistributionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDistributionSvc = mocks.NewMockDistributionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDistributionHandler(suite.mockDistributionSvc)

	suite.router = gin.New()
	suite.router.GET("/settings/lead-distribution", suite.handler.GetSettings)
	suite.router.PUT("/settings/lead-distribution", suite.handler.UpdateSettings)
}

func (suite *DistributionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DistributionHandlerTestSuite) TestGetSettings_Success() {
	brokerID := uuid.New()
	suite.mockDistributionSvc.EXPECT().GetSettings(brokerID).Return(&service.DistributionSettingsResponse{
		BrokerID: brokerID,
		Enabled:  true,
		Allocations: []service.AllocationEntry{
			{UserID: uuid.New(), UserName: "Jamie Smith", Percentage: 100},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/settings/lead-distribution?broker_id="+brokerID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.DistributionSettingsResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Enabled)
	assert.Len(suite.T(), got.Allocations, 1)
}

func (suite *DistributionHandlerTestSuite) TestGetSettings_MissingBrokerID() {
	req := httptest.NewRequest(http.MethodGet, "/settings/lead-distribution", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *DistributionHandlerTestSuite) TestUpdateSettings_Success() {
	brokerID := uuid.New()
	userID := uuid.New()
	suite.mockDistributionSvc.EXPECT().UpdateSettings(brokerID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateDistributionRequest) (*service.DistributionSettingsResponse, error) {
			assert.True(suite.T(), req.Enabled)
			require.Len(suite.T(), req.Allocations, 1)
			assert.Equal(suite.T(), 100, req.Allocations[0].Percentage)
			return &service.DistributionSettingsResponse{
				BrokerID:    brokerID,
				Enabled:     true,
				Allocations: []service.AllocationEntry{{UserID: userID, UserName: "Jamie Smith", Percentage: 100}},
			}, nil
		})

	body, _ := json.Marshal(gin.H{
		"enabled": true,
		"allocations": []gin.H{
			{"user_id": userID, "user_name": "Jamie Smith", "percentage": 100},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/settings/lead-distribution?broker_id="+brokerID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *DistributionHandlerTestSuite) TestUpdateSettings_SumNot100() {
	brokerID := uuid.New()
	suite.mockDistributionSvc.EXPECT().UpdateSettings(brokerID, gomock.Any()).
		Return(nil, apperrors.ErrAllocationSumNot100)

	body, _ := json.Marshal(gin.H{
		"enabled": true,
		"allocations": []gin.H{
			{"user_id": uuid.New(), "user_name": "Jamie Smith", "percentage": 60},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/settings/lead-distribution?broker_id="+brokerID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "100")
}

func (suite *DistributionHandlerTestSuite) TestUpdateSettings_BrokerNotFound() {
	brokerID := uuid.New()
	suite.mockDistributionSvc.EXPECT().UpdateSettings(brokerID, gomock.Any()).
		Return(nil, apperrors.ErrBrokerNotFound)

	body, _ := json.Marshal(gin.H{"enabled": false, "allocations": []gin.H{}})
	req := httptest.NewRequest(http.MethodPut, "/settings/lead-distribution?broker_id="+brokerID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestDistributionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DistributionHandlerTestSuite))
}
