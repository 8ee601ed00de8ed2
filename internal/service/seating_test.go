package service_test

import (
	"context"
	"errors"
	"testing"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/mocks"
	"seating-planner-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestBuildSeatingChart(t *testing.T) {
	owner := uuid.New()
	head := newTable(owner, "Head", 2)
	side := newTable(owner, "Side", 3)
	gone := newTable(owner, "Gone", 5)

	anna := newGuest(owner, "Anna", "Lee", models.GuestStatusAccepted)
	anna.SetTable(&head)
	bob := newGuest(owner, "Bob", "Lee", models.GuestStatusAccepted)
	bob.SetTable(&head)
	cara := newGuest(owner, "Cara", "Lee", models.GuestStatusNoResponse)
	dan := newGuest(owner, "Dan", "Orphan", models.GuestStatusDeclined)
	dan.SetTable(&gone)

	chart := service.BuildSeatingChart([]models.Guest{anna, bob, cara, dan}, []models.Table{head, side})

	require.Len(t, chart.Tables, 2)
	assert.Equal(t, "Head", chart.Tables[0].Name)
	assert.Equal(t, []service.SeatedGuest{
		{ID: anna.ID, FirstName: "Anna", LastName: "Lee"},
		{ID: bob.ID, FirstName: "Bob", LastName: "Lee"},
	}, chart.Tables[0].Guests)
	assert.Equal(t, 0, chart.Tables[0].FreeSeats)
	assert.True(t, chart.Tables[0].IsFull())

	assert.NotNil(t, chart.Tables[1].Guests)
	assert.Empty(t, chart.Tables[1].Guests)
	assert.Equal(t, 3, chart.Tables[1].FreeSeats)

	require.Len(t, chart.Unassigned, 2)
	assert.Equal(t, cara.ID, chart.Unassigned[0].ID)
	assert.Equal(t, dan.ID, chart.Unassigned[1].ID)

	assert.NotNil(t, chart.Table(side.ID))
	assert.Nil(t, chart.Table(gone.ID))
}

func TestBuildSeatingChart_OverCapacityFloorsFreeSeats(t *testing.T) {
	owner := uuid.New()
	small := newTable(owner, "Small", 1)
	a := newGuest(owner, "A", "A", models.GuestStatusAccepted)
	a.SetTable(&small)
	b := newGuest(owner, "B", "B", models.GuestStatusAccepted)
	b.SetTable(&small)

	chart := service.BuildSeatingChart([]models.Guest{a, b}, []models.Table{small})
	assert.Len(t, chart.Tables[0].Guests, 2)
	assert.Equal(t, 0, chart.Tables[0].FreeSeats)
}

func TestBuildSeatingChart_Empty(t *testing.T) {
	chart := service.BuildSeatingChart(nil, nil)
	assert.NotNil(t, chart.Tables)
	assert.NotNil(t, chart.Unassigned)
	assert.Empty(t, chart.Tables)
	assert.Empty(t, chart.Unassigned)
}

// SeatingServiceTestSuite defines the test suite for SeatingService
type SeatingServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockGuests     *mocks.MockGuestServiceInterface
	mockTables     *mocks.MockTableServiceInterface
	seatingService *service.SeatingService
	ctx            context.Context
	actor          service.Actor

	table models.Table
	anna  models.Guest
	bob   models.Guest
	cara  models.Guest
}

// SetupTest sets up a full two-seat table and one unseated guest
func (suite *SeatingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGuests = mocks.NewMockGuestServiceInterface(suite.ctrl)
	suite.mockTables = mocks.NewMockTableServiceInterface(suite.ctrl)
	suite.seatingService = service.NewSeatingService(suite.mockGuests, suite.mockTables)
	suite.ctx = context.Background()
	suite.actor = organizer()

	owner := suite.actor.OwnerID
	suite.table = newTable(owner, "Table 1", 2)
	suite.anna = newGuest(owner, "Anna", "Lee", models.GuestStatusAccepted)
	suite.anna.SetTable(&suite.table)
	suite.bob = newGuest(owner, "Bob", "Lee", models.GuestStatusAccepted)
	suite.bob.SetTable(&suite.table)
	suite.cara = newGuest(owner, "Cara", "Lee", models.GuestStatusAccepted)
}

// TearDownTest cleans up after each test
func (suite *SeatingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SeatingServiceTestSuite) expectChart(times int, guests ...models.Guest) {
	suite.mockGuests.EXPECT().List(gomock.Any(), suite.actor, service.GuestFilter{}).Return(guests, nil).Times(times)
	suite.mockTables.EXPECT().List(gomock.Any(), suite.actor).Return([]models.Table{suite.table}, nil).Times(times)
}

// TestAssign_TableFull rejects a third guest at a two-seat table
func (suite *SeatingServiceTestSuite) TestAssign_TableFull() {
	suite.expectChart(1, suite.anna, suite.bob, suite.cara)

	_, err := suite.seatingService.Assign(suite.ctx, suite.actor, suite.cara.ID, suite.table.ID)

	var full *apperrors.CapacityExceededError
	suite.Require().True(errors.As(err, &full))
	suite.Equal("Table 1", full.Table)
	suite.Equal(2, full.Capacity)
}

// TestAssign_Success updates the guest and returns the new chart
func (suite *SeatingServiceTestSuite) TestAssign_Success() {
	seated := suite.cara
	seated.SetTable(&suite.table)

	suite.mockGuests.EXPECT().List(gomock.Any(), suite.actor, service.GuestFilter{}).Return([]models.Guest{suite.anna, suite.cara}, nil)
	suite.mockGuests.EXPECT().List(gomock.Any(), suite.actor, service.GuestFilter{}).Return([]models.Guest{suite.anna, seated}, nil)
	suite.mockTables.EXPECT().List(gomock.Any(), suite.actor).Return([]models.Table{suite.table}, nil).Times(2)
	suite.mockGuests.EXPECT().Update(gomock.Any(), suite.actor, suite.cara.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, _ uuid.UUID, req *service.UpdateGuestRequest) (*models.Guest, error) {
			suite.Require().NotNil(req.TableID)
			suite.Equal(suite.table.ID, *req.TableID)
			suite.Nil(req.FirstName)
			suite.Nil(req.Status)
			return &seated, nil
		})

	chart, err := suite.seatingService.Assign(suite.ctx, suite.actor, suite.cara.ID, suite.table.ID)
	suite.Require().NoError(err)
	suite.Len(chart.Tables[0].Guests, 2)
	suite.Empty(chart.Unassigned)
}

// TestAssign_SameTable is a no-op even when the table is full
func (suite *SeatingServiceTestSuite) TestAssign_SameTable() {
	suite.expectChart(1, suite.anna, suite.bob)

	chart, err := suite.seatingService.Assign(suite.ctx, suite.actor, suite.anna.ID, suite.table.ID)
	suite.NoError(err)
	suite.Len(chart.Tables[0].Guests, 2)
}

// TestAssign_UnknownTable fails before touching the guest
func (suite *SeatingServiceTestSuite) TestAssign_UnknownTable() {
	suite.expectChart(1, suite.cara)

	_, err := suite.seatingService.Assign(suite.ctx, suite.actor, suite.cara.ID, uuid.New())
	suite.ErrorIs(err, apperrors.ErrTableNotFound)
}

// TestAssign_UnknownGuest fails before touching the store
func (suite *SeatingServiceTestSuite) TestAssign_UnknownGuest() {
	suite.expectChart(1, suite.cara)

	_, err := suite.seatingService.Assign(suite.ctx, suite.actor, uuid.New(), suite.table.ID)
	suite.ErrorIs(err, apperrors.ErrGuestNotFound)
}

// TestAssign_StoreRejectsCapacity passes the store's capacity check through
func (suite *SeatingServiceTestSuite) TestAssign_StoreRejectsCapacity() {
	suite.expectChart(1, suite.anna, suite.cara)
	suite.mockGuests.EXPECT().Update(gomock.Any(), suite.actor, suite.cara.ID, gomock.Any()).
		Return(nil, apperrors.NewCapacityExceededError("Table 1", 2))

	_, err := suite.seatingService.Assign(suite.ctx, suite.actor, suite.cara.ID, suite.table.ID)
	suite.True(apperrors.IsCapacityExceeded(err))
}

// TestAssign_ChartLoadFailure surfaces the store error
func (suite *SeatingServiceTestSuite) TestAssign_ChartLoadFailure() {
	suite.mockGuests.EXPECT().List(gomock.Any(), suite.actor, service.GuestFilter{}).
		Return([]models.Guest{}, apperrors.NewStoreError("list guests", errors.New("down")))
	suite.mockTables.EXPECT().List(gomock.Any(), suite.actor).Return([]models.Table{suite.table}, nil).AnyTimes()

	_, err := suite.seatingService.Assign(suite.ctx, suite.actor, suite.cara.ID, suite.table.ID)
	suite.True(apperrors.IsStore(err))
}

// TestUnassign clears the seat with the nil table id
func (suite *SeatingServiceTestSuite) TestUnassign() {
	unseated := suite.anna
	unseated.SetTable(nil)

	suite.mockGuests.EXPECT().Update(gomock.Any(), suite.actor, suite.anna.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, _ uuid.UUID, req *service.UpdateGuestRequest) (*models.Guest, error) {
			suite.Require().NotNil(req.TableID)
			suite.Equal(uuid.Nil, *req.TableID)
			return &unseated, nil
		})
	suite.expectChart(1, unseated, suite.bob)

	chart, err := suite.seatingService.Unassign(suite.ctx, suite.actor, suite.anna.ID)
	suite.Require().NoError(err)
	suite.Len(chart.Tables[0].Guests, 1)
	suite.Require().Len(chart.Unassigned, 1)
	suite.Equal(suite.anna.ID, chart.Unassigned[0].ID)
}

// TestGuestRoleNotAuthorized rejects seat changes from guests
func (suite *SeatingServiceTestSuite) TestGuestRoleNotAuthorized() {
	actor := service.Actor{UserID: uuid.New(), OwnerID: suite.actor.OwnerID, Role: models.RoleGuest}

	_, err := suite.seatingService.Assign(suite.ctx, actor, suite.cara.ID, suite.table.ID)
	suite.True(apperrors.IsNotAuthorized(err))
	_, err = suite.seatingService.Unassign(suite.ctx, actor, suite.anna.ID)
	suite.True(apperrors.IsNotAuthorized(err))
}

// TestChart_GuestRoleCanRead lets guests view their organizer's chart
func (suite *SeatingServiceTestSuite) TestChart_GuestRoleCanRead() {
	actor := service.Actor{UserID: uuid.New(), OwnerID: suite.actor.OwnerID, Role: models.RoleGuest}
	suite.mockGuests.EXPECT().List(gomock.Any(), actor, service.GuestFilter{}).Return([]models.Guest{suite.anna}, nil)
	suite.mockTables.EXPECT().List(gomock.Any(), actor).Return([]models.Table{suite.table}, nil)

	chart, err := suite.seatingService.Chart(suite.ctx, actor)
	suite.Require().NoError(err)
	suite.Equal(1, chart.Tables[0].FreeSeats)
}

// TestSeatingServiceTestSuite runs the test suite
func TestSeatingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeatingServiceTestSuite))
}
