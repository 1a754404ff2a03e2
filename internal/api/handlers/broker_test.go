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

// BrokerHandlerTestSuite defines the test suite for BrokerHandler
type BrokerHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockBrokerSvc *mocks.MockBrokerServiceInterface
	handler       *handlers.BrokerHandler
	router        *gin.Engine
}

func (suite *BrokerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBrokerSvc = mocks.NewMockBrokerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBrokerHandler(suite.mockBrokerSvc)

	suite.router = gin.New()
	suite.router.GET("/admin/brokers", suite.handler.ListBrokers)
	suite.router.POST("/admin/brokers", suite.handler.CreateBroker)
	suite.router.GET("/admin/brokers/:id", suite.handler.GetBroker)
	suite.router.PUT("/admin/brokers/:id", suite.handler.UpdateBroker)
	suite.router.DELETE("/admin/brokers/:id", suite.handler.DeleteBroker)
}

func (suite *BrokerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BrokerHandlerTestSuite) TestCreateBroker_Success() {
	created := &service.BrokerResponse{
		ID:    uuid.New(),
		Name:  "Owner Broker",
		Email: "owner@firm.com",
	}
	suite.mockBrokerSvc.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateBrokerRequest) (*service.BrokerResponse, error) {
			assert.Equal(suite.T(), "Owner Broker", req.Name)
			assert.Equal(suite.T(), "owner@firm.com", req.Email)
			return created, nil
		})

	body, _ := json.Marshal(gin.H{"name": "Owner Broker", "email": "owner@firm.com"})
	req := httptest.NewRequest(http.MethodPost, "/admin/brokers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.BrokerResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), created.ID, got.ID)
}

func (suite *BrokerHandlerTestSuite) TestCreateBroker_DuplicateEmail() {
	suite.mockBrokerSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrBrokerExists)

	body, _ := json.Marshal(gin.H{"name": "Owner Broker", "email": "owner@firm.com"})
	req := httptest.NewRequest(http.MethodPost, "/admin/brokers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *BrokerHandlerTestSuite) TestGetBroker_Success() {
	id := uuid.New()
	suite.mockBrokerSvc.EXPECT().GetByID(id).Return(&service.BrokerResponse{ID: id, Name: "Owner Broker"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/brokers/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BrokerHandlerTestSuite) TestGetBroker_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/admin/brokers/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BrokerHandlerTestSuite) TestGetBroker_NotFound() {
	id := uuid.New()
	suite.mockBrokerSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrBrokerNotFound)

	req := httptest.NewRequest(http.MethodGet, "/admin/brokers/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *BrokerHandlerTestSuite) TestListBrokers_Pagination() {
	suite.mockBrokerSvc.EXPECT().List(3, 5).Return(&service.BrokerListResponse{
		Brokers:  []service.BrokerResponse{},
		Total:    0,
		Page:     3,
		PageSize: 5,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/brokers?page=3&page_size=5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BrokerHandlerTestSuite) TestUpdateBroker_Success() {
	id := uuid.New()
	suite.mockBrokerSvc.EXPECT().Update(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateBrokerRequest) (*service.BrokerResponse, error) {
			require.NotNil(suite.T(), req.Name)
			assert.Equal(suite.T(), "Renamed Broker", *req.Name)
			assert.Nil(suite.T(), req.Phone)
			return &service.BrokerResponse{ID: id, Name: *req.Name}, nil
		})

	body, _ := json.Marshal(gin.H{"name": "Renamed Broker"})
	req := httptest.NewRequest(http.MethodPut, "/admin/brokers/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BrokerHandlerTestSuite) TestDeleteBroker_Success() {
	id := uuid.New()
	suite.mockBrokerSvc.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/brokers/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestBrokerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BrokerHandlerTestSuite))
}
