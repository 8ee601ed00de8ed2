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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TableServiceTestSuite defines the test suite for TableService
type TableServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTableRepo *mocks.MockTableRepositoryInterface
	mockGuestRepo *mocks.MockGuestRepositoryInterface
	mockGuests    *mocks.MockGuestServiceInterface
	tableService  *service.TableService
	ctx           context.Context
	actor         service.Actor
}

// SetupTest sets up the test suite
func (suite *TableServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTableRepo = mocks.NewMockTableRepositoryInterface(suite.ctrl)
	suite.mockGuestRepo = mocks.NewMockGuestRepositoryInterface(suite.ctrl)
	suite.mockGuests = mocks.NewMockGuestServiceInterface(suite.ctrl)
	suite.tableService = service.NewTableService(suite.mockTableRepo, suite.mockGuestRepo, suite.mockGuests, service.NewValidator())
	suite.ctx = context.Background()
	suite.actor = organizer()
}

// TearDownTest cleans up after each test
func (suite *TableServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate_Defaults fills capacity and a random position on the floor plan
func (suite *TableServiceTestSuite) TestCreate_Defaults() {
	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).Return([]models.Table{}, nil)
	suite.mockTableRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	table, err := suite.tableService.Create(suite.ctx, suite.actor, &service.CreateTableRequest{Name: " Table 1 "})
	suite.Require().NoError(err)
	suite.Equal("Table 1", table.Name)
	suite.Equal(service.DefaultTableCapacity, table.Capacity)
	suite.Equal(suite.actor.OwnerID, table.OwnerID)
	suite.GreaterOrEqual(table.Position.X, 0.0)
	suite.Less(table.Position.X, 400.0)
	suite.GreaterOrEqual(table.Position.Y, 0.0)
	suite.Less(table.Position.Y, 300.0)
}

// TestCreate_ExplicitValues keeps the given capacity and position
func (suite *TableServiceTestSuite) TestCreate_ExplicitValues() {
	capacity := 10
	position := models.Position{X: 12.5, Y: 40}
	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).Return([]models.Table{}, nil)
	suite.mockTableRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *models.Table) error {
			suite.Equal(10, t.Capacity)
			suite.Equal(position, t.Position)
			return nil
		})

	_, err := suite.tableService.Create(suite.ctx, suite.actor, &service.CreateTableRequest{
		Name:     "Família Ávila",
		Capacity: &capacity,
		Position: &position,
	})
	suite.NoError(err)
}

// TestCreate_DuplicateName compares names trimmed and case-insensitively
func (suite *TableServiceTestSuite) TestCreate_DuplicateName() {
	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).
		Return([]models.Table{newTable(suite.actor.OwnerID, "Table 1", 6)}, nil)

	_, err := suite.tableService.Create(suite.ctx, suite.actor, &service.CreateTableRequest{Name: "TABLE 1  "})
	var dup *apperrors.DuplicateNameError
	suite.Require().True(errors.As(err, &dup))
	suite.Equal("table", dup.Entity)
	suite.Equal("TABLE 1", dup.Name)
}

// TestCreate_Validation covers the name pattern and capacity bounds
func (suite *TableServiceTestSuite) TestCreate_Validation() {
	zero, tooMany := 0, 21
	testCases := []struct {
		name  string
		req   *service.CreateTableRequest
		field string
	}{
		{name: "empty name", req: &service.CreateTableRequest{Name: "  "}, field: "name"},
		{name: "punctuation", req: &service.CreateTableRequest{Name: "Table #1"}, field: "name"},
		{name: "zero capacity", req: &service.CreateTableRequest{Name: "Table 1", Capacity: &zero}, field: "capacity"},
		{name: "capacity above limit", req: &service.CreateTableRequest{Name: "Table 1", Capacity: &tooMany}, field: "capacity"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.tableService.Create(suite.ctx, suite.actor, tc.req)
			var verr *apperrors.ValidationError
			suite.Require().True(errors.As(err, &verr))
			suite.Equal(tc.field, verr.Field)
		})
	}
}

// TestCreate_GuestRoleNotAuthorized rejects writes from guests
func (suite *TableServiceTestSuite) TestCreate_GuestRoleNotAuthorized() {
	actor := service.Actor{UserID: uuid.New(), OwnerID: suite.actor.OwnerID, Role: models.RoleGuest}

	_, err := suite.tableService.Create(suite.ctx, actor, &service.CreateTableRequest{Name: "Table 1"})
	suite.ErrorIs(err, apperrors.ErrOrganizerRequired)
	suite.ErrorIs(suite.tableService.Delete(suite.ctx, actor, uuid.New()), apperrors.ErrOrganizerRequired)
}

// TestUpdate_RenameInvalidatesGuests drops cached guests whose table_number changed
func (suite *TableServiceTestSuite) TestUpdate_RenameInvalidatesGuests() {
	table := newTable(suite.actor.OwnerID, "Table 1", 6)
	suite.mockTableRepo.EXPECT().GetByID(gomock.Any(), suite.actor.OwnerID, table.ID).Return(&table, nil)
	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).Return([]models.Table{table}, nil)
	suite.mockTableRepo.EXPECT().Update(gomock.Any(), gomock.Any(), 1).
		DoAndReturn(func(_ context.Context, t *models.Table, _ int) error {
			suite.Equal("Head Table", t.Name)
			return nil
		})
	suite.mockGuests.EXPECT().Invalidate(suite.actor.OwnerID)

	version := 1
	updated, err := suite.tableService.Update(suite.ctx, suite.actor, table.ID, &service.UpdateTableRequest{
		Name:    strPtr(" Head Table "),
		Version: &version,
	})
	suite.NoError(err)
	suite.Equal("Head Table", updated.Name)
}

// TestUpdate_CaseOnlyRenameOfItself is allowed
func (suite *TableServiceTestSuite) TestUpdate_CaseOnlyRenameOfItself() {
	table := newTable(suite.actor.OwnerID, "Table 1", 6)
	suite.mockTableRepo.EXPECT().GetByID(gomock.Any(), suite.actor.OwnerID, table.ID).Return(&table, nil)
	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).Return([]models.Table{table}, nil)
	suite.mockTableRepo.EXPECT().Update(gomock.Any(), gomock.Any(), 0).Return(nil)
	suite.mockGuests.EXPECT().Invalidate(suite.actor.OwnerID)

	_, err := suite.tableService.Update(suite.ctx, suite.actor, table.ID, &service.UpdateTableRequest{Name: strPtr("TABLE 1")})
	suite.NoError(err)
}

// TestUpdate_RenameOntoAnotherTable is rejected
func (suite *TableServiceTestSuite) TestUpdate_RenameOntoAnotherTable() {
	first := newTable(suite.actor.OwnerID, "Table 1", 6)
	second := newTable(suite.actor.OwnerID, "Table 2", 6)
	suite.mockTableRepo.EXPECT().GetByID(gomock.Any(), suite.actor.OwnerID, second.ID).Return(&second, nil)
	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).Return([]models.Table{second, first}, nil)

	_, err := suite.tableService.Update(suite.ctx, suite.actor, second.ID, &service.UpdateTableRequest{Name: strPtr("table 1")})
	suite.True(apperrors.IsDuplicateName(err))
}

// TestUpdate_CapacityOnly leaves the guest cache alone
func (suite *TableServiceTestSuite) TestUpdate_CapacityOnly() {
	table := newTable(suite.actor.OwnerID, "Table 1", 6)
	capacity := 8
	suite.mockTableRepo.EXPECT().GetByID(gomock.Any(), suite.actor.OwnerID, table.ID).Return(&table, nil)
	suite.mockTableRepo.EXPECT().Update(gomock.Any(), gomock.Any(), 0).
		DoAndReturn(func(_ context.Context, t *models.Table, _ int) error {
			suite.Equal(8, t.Capacity)
			return nil
		})

	_, err := suite.tableService.Update(suite.ctx, suite.actor, table.ID, &service.UpdateTableRequest{Capacity: &capacity})
	suite.NoError(err)
}

// TestUpdate_StaleVersion surfaces the conflict
func (suite *TableServiceTestSuite) TestUpdate_StaleVersion() {
	table := newTable(suite.actor.OwnerID, "Table 1", 6)
	capacity := 4
	version := 1
	suite.mockTableRepo.EXPECT().GetByID(gomock.Any(), suite.actor.OwnerID, table.ID).Return(&table, nil)
	suite.mockTableRepo.EXPECT().Update(gomock.Any(), gomock.Any(), 1).Return(apperrors.ErrTableModified)

	_, err := suite.tableService.Update(suite.ctx, suite.actor, table.ID, &service.UpdateTableRequest{Capacity: &capacity, Version: &version})
	suite.ErrorIs(err, apperrors.ErrTableModified)
}

// TestDelete_InvalidatesGuests refreshes guests unseated by the delete
func (suite *TableServiceTestSuite) TestDelete_InvalidatesGuests() {
	id := uuid.New()
	suite.mockTableRepo.EXPECT().Delete(gomock.Any(), suite.actor.OwnerID, id).Return(int64(2), nil)
	suite.mockGuests.EXPECT().Invalidate(suite.actor.OwnerID)

	suite.NoError(suite.tableService.Delete(suite.ctx, suite.actor, id))
}

// TestDelete_StoreFailure leaves every cache untouched
func (suite *TableServiceTestSuite) TestDelete_StoreFailure() {
	id := uuid.New()
	suite.mockTableRepo.EXPECT().Delete(gomock.Any(), suite.actor.OwnerID, id).Return(int64(0), errors.New("tx aborted"))

	err := suite.tableService.Delete(suite.ctx, suite.actor, id)
	suite.True(apperrors.IsStore(err))
}

// TestDelete_NotFound maps a missing table
func (suite *TableServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockTableRepo.EXPECT().Delete(gomock.Any(), suite.actor.OwnerID, id).Return(int64(0), gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.tableService.Delete(suite.ctx, suite.actor, id), apperrors.ErrTableNotFound)
}

// TestList_StoreFailure returns an empty list and a StoreError
func (suite *TableServiceTestSuite) TestList_StoreFailure() {
	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).Return(nil, errors.New("boom"))

	tables, err := suite.tableService.List(suite.ctx, suite.actor)
	suite.NotNil(tables)
	suite.Empty(tables)
	suite.True(apperrors.IsStore(err))
}

// TestList_StaleFetchKeepsConcurrentCreate keeps a table created during a slow
// list fetch visible to the duplicate-name check
func (suite *TableServiceTestSuite) TestList_StaleFetchKeepsConcurrentCreate() {
	owner := suite.actor.OwnerID
	head := newTable(owner, "Head", 2)

	gomock.InOrder(
		suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), owner).Return([]models.Table{head}, nil),
		suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), owner).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID) ([]models.Table, error) {
				_, err := suite.tableService.Create(ctx, suite.actor, &service.CreateTableRequest{Name: "Side"})
				suite.Require().NoError(err)
				return []models.Table{head}, nil
			}),
	)
	suite.mockTableRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *models.Table) error {
			t.ID = uuid.New()
			return nil
		})

	_, err := suite.tableService.List(suite.ctx, suite.actor)
	suite.Require().NoError(err)
	tables, err := suite.tableService.List(suite.ctx, suite.actor)
	suite.Require().NoError(err)
	suite.Len(tables, 1)

	_, err = suite.tableService.Create(suite.ctx, suite.actor, &service.CreateTableRequest{Name: "SIDE"})
	var dup *apperrors.DuplicateNameError
	suite.True(errors.As(err, &dup))
}

// TestWithGuests groups guests under their tables
func (suite *TableServiceTestSuite) TestWithGuests() {
	owner := suite.actor.OwnerID
	head := newTable(owner, "Head", 2)
	side := newTable(owner, "Side", 4)
	anna := newGuest(owner, "Anna", "Lee", models.GuestStatusAccepted)
	anna.SetTable(&head)
	bob := newGuest(owner, "Bob", "Lee", models.GuestStatusAccepted)

	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), owner).Return([]models.Table{head, side}, nil)
	suite.mockGuestRepo.EXPECT().ListByOwner(gomock.Any(), owner).Return([]models.Guest{anna, bob}, nil)

	tables, err := suite.tableService.WithGuests(suite.ctx, suite.actor)
	suite.Require().NoError(err)
	suite.Require().Len(tables, 2)
	suite.Equal([]service.SeatedGuest{{ID: anna.ID, FirstName: "Anna", LastName: "Lee"}}, tables[0].Guests)
	suite.Equal(1, tables[0].FreeSeats)
	suite.Empty(tables[1].Guests)
	suite.Equal(4, tables[1].FreeSeats)
}

// TestWithGuests_StoreFailure returns an empty list and a StoreError
func (suite *TableServiceTestSuite) TestWithGuests_StoreFailure() {
	suite.mockTableRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).Return([]models.Table{}, nil).AnyTimes()
	suite.mockGuestRepo.EXPECT().ListByOwner(gomock.Any(), suite.actor.OwnerID).Return(nil, errors.New("boom"))

	tables, err := suite.tableService.WithGuests(suite.ctx, suite.actor)
	suite.NotNil(tables)
	suite.Empty(tables)
	suite.True(apperrors.IsStore(err))
}

// TestTableServiceTestSuite runs the test suite
func TestTableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TableServiceTestSuite))
}
