package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"seating-planner-backend/internal/api/handlers"
	"seating-planner-backend/internal/auth"
	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/mocks"
	"seating-planner-backend/internal/service"
	"seating-planner-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func organizerActor() service.Actor {
	id := uuid.New()
	return service.Actor{UserID: id, OwnerID: id, Role: models.RoleSuperUser, Email: "organizer@example.com"}
}

// withActor stands in for auth.RequireAuth
func withActor(actor service.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetActor(c, actor)
		c.Next()
	}
}

// GuestHandlerTestSuite defines the test suite for GuestHandler
type GuestHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGuestServiceInterface
	handler     *handlers.GuestHandler
	httpSuite   *testutils.HTTPTestSuite
	actor       service.Actor
}

// SetupTest sets up the test suite
func (suite *GuestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGuestServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGuestHandler(suite.mockService)
	suite.actor = organizerActor()

	suite.httpSuite = testutils.SetupHTTPTest()
	guests := suite.httpSuite.Router.Group("/api/v1/guests", withActor(suite.actor))
	{
		guests.GET("", suite.handler.ListGuests)
		guests.GET("/stats", suite.handler.GetGuestStats)
		guests.GET("/:id", suite.handler.GetGuest)
		guests.POST("", suite.handler.CreateGuest)
		guests.PUT("/:id", suite.handler.UpdateGuest)
		guests.DELETE("/:id", suite.handler.DeleteGuest)
	}
}

// TearDownTest cleans up after each test
func (suite *GuestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListGuests passes the query filter to the service
func (suite *GuestHandlerTestSuite) TestListGuests() {
	guest := models.Guest{FirstName: "Anna", LastName: "Lee", Status: models.GuestStatusAccepted}
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.actor, service.GuestFilter{Query: "ann", Status: "accepted"}).
		Return([]models.Guest{guest}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/guests?q=ann&status=accepted", nil)

	var response []models.Guest
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("Anna", response[0].FirstName)
}

// TestListGuests_StoreFailure answers 503
func (suite *GuestHandlerTestSuite) TestListGuests_StoreFailure() {
	suite.mockService.EXPECT().List(gomock.Any(), suite.actor, gomock.Any()).
		Return([]models.Guest{}, apperrors.NewStoreError("list guests", errors.New("down")))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/guests", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusServiceUnavailable, "Store unavailable")
}

// TestGetGuestStats returns the counts
func (suite *GuestHandlerTestSuite) TestGetGuestStats() {
	suite.mockService.EXPECT().Stats(gomock.Any(), suite.actor).
		Return(&service.GuestStats{Total: 3, Accepted: 1, Declined: 1, NoResponse: 1}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/guests/stats", nil)

	var response service.GuestStats
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(3, response.Total)
}

// TestGetGuest covers found, missing and malformed ids
func (suite *GuestHandlerTestSuite) TestGetGuest() {
	id := uuid.New()
	missing := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), suite.actor, id).Return(&models.Guest{FirstName: "Anna"}, nil)
	suite.mockService.EXPECT().Get(gomock.Any(), suite.actor, missing).Return(nil, apperrors.ErrGuestNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/guests/"+id.String(), nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, nil)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/guests/"+missing.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "guest not found")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/guests/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid guest ID")
}

// TestCreateGuest maps service errors to status codes
func (suite *GuestHandlerTestSuite) TestCreateGuest() {
	body := map[string]interface{}{"first_name": "Anna", "last_name": "Lee", "table_number": "Table 1"}

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any(), suite.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Actor, req *service.CreateGuestRequest) (*models.Guest, error) {
				assert.Equal(t, "Anna", req.FirstName)
				assert.Equal(t, "Table 1", *req.TableNumber)
				return &models.Guest{FirstName: "Anna", LastName: "Lee"}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/guests", body)
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, nil)
	})

	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"Duplicate", apperrors.NewDuplicateNameError("guest", "anna lee"), http.StatusConflict, "already exists"},
		{"TableFull", apperrors.NewCapacityExceededError("Table 1", 2), http.StatusConflict, "is full"},
		{"Validation", apperrors.NewValidationError("first_name", "is required"), http.StatusBadRequest, "first_name"},
		{"GuestRole", apperrors.ErrOrganizerRequired, http.StatusForbidden, "only the organizer"},
		{"UnknownTable", apperrors.ErrTableNotFound, http.StatusNotFound, "table not found"},
	}
	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().Create(gomock.Any(), suite.actor, gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/guests", body)
			testutils.AssertErrorResponse(t, recorder, tc.status, tc.message)
		})
	}

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/guests", "not an object")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpdateGuest forwards the partial update
func (suite *GuestHandlerTestSuite) TestUpdateGuest() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(gomock.Any(), suite.actor, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, _ uuid.UUID, req *service.UpdateGuestRequest) (*models.Guest, error) {
			suite.Nil(req.FirstName)
			suite.Require().NotNil(req.Status)
			suite.Equal(models.GuestStatusDeclined, *req.Status)
			suite.Require().NotNil(req.Version)
			suite.Equal(2, *req.Version)
			return &models.Guest{Status: models.GuestStatusDeclined}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/guests/"+id.String(), map[string]interface{}{
		"status":  "declined",
		"version": 2,
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, nil)
}

// TestUpdateGuest_Conflict answers 409 on a stale version
func (suite *GuestHandlerTestSuite) TestUpdateGuest_Conflict() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(gomock.Any(), suite.actor, id, gomock.Any()).Return(nil, apperrors.ErrGuestModified)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/guests/"+id.String(), map[string]interface{}{"first_name": "Ann"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "modified")
}

// TestDeleteGuest answers 204
func (suite *GuestHandlerTestSuite) TestDeleteGuest() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.actor, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/guests/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestGuestHandlerTestSuite runs the test suite
func TestGuestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GuestHandlerTestSuite))
}

func TestGuestHandler_RequiresActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := handlers.NewGuestHandler(mocks.NewMockGuestServiceInterface(ctrl))
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/guests", handler.ListGuests)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/guests", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Authentication required")
}
