//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TableRepositoryTestSuite tests the TableRepository
type TableRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TableRepository
	guests        *GuestRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	owner         uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *TableRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTableRepository(suite.baseTestSuite.DB)
	suite.guests = NewGuestRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TableRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TableRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.owner = uuid.New()
}

// TearDownTest runs after each test
func (suite *TableRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByName looks a table up by a case/whitespace variant of its name
func (suite *TableRepositoryTestSuite) TestCreateAndGetByName() {
	table := suite.factories.Table.WithName(suite.owner, "Table 1", 8)
	table.Position = models.Position{X: 120.5, Y: 42}
	suite.NoError(suite.repo.Create(suite.ctx, table))

	found, err := suite.repo.GetByName(suite.ctx, suite.owner, "  table 1 ")
	suite.NoError(err)
	suite.Equal(table.ID, found.ID)
	suite.Equal(8, found.Capacity)
	suite.Equal(models.Position{X: 120.5, Y: 42}, found.Position)

	_, err = suite.repo.GetByName(suite.ctx, uuid.New(), "Table 1")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCreateDuplicateName relies on the unique index
func (suite *TableRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.Table.WithName(suite.owner, "Table 1", 4)))

	err := suite.repo.Create(suite.ctx, suite.factories.Table.WithName(suite.owner, "TABLE 1 ", 4))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCapacityCheckConstraint rejects a zero-seat table
func (suite *TableRepositoryTestSuite) TestCapacityCheckConstraint() {
	err := suite.repo.Create(suite.ctx, suite.factories.Table.WithName(suite.owner, "Empty", 0))
	suite.Error(err)
}

// TestUpdateVersion bumps the version and rejects stale writes
func (suite *TableRepositoryTestSuite) TestUpdateVersion() {
	table := suite.factories.Table.Create(suite.owner)
	suite.NoError(suite.repo.Create(suite.ctx, table))

	table.Capacity = 10
	suite.NoError(suite.repo.Update(suite.ctx, table, 1))
	suite.Equal(2, table.Version)
	suite.Equal(10, table.Capacity)

	table.Capacity = 3
	err := suite.repo.Update(suite.ctx, table, 1)
	suite.True(apperrors.IsConflict(err))
}

// TestDeleteCascadesGuests clears seats and deletes the table atomically
func (suite *TableRepositoryTestSuite) TestDeleteCascadesGuests() {
	table := suite.factories.Table.WithName(suite.owner, "T1", 4)
	suite.NoError(suite.repo.Create(suite.ctx, table))
	other := suite.factories.Table.WithName(suite.owner, "T2", 4)
	suite.NoError(suite.repo.Create(suite.ctx, other))

	xy := suite.factories.Guest.AtTable(suite.owner, table)
	xy.FirstName, xy.LastName = "X", "Y"
	suite.NoError(suite.guests.Create(suite.ctx, xy))
	stay := suite.factories.Guest.AtTable(suite.owner, other)
	suite.NoError(suite.guests.Create(suite.ctx, stay))

	unseated, err := suite.repo.Delete(suite.ctx, suite.owner, table.ID)
	suite.NoError(err)
	suite.Equal(int64(1), unseated)

	_, err = suite.repo.GetByID(suite.ctx, suite.owner, table.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	refetched, err := suite.guests.GetByID(suite.ctx, suite.owner, xy.ID)
	suite.NoError(err)
	suite.Nil(refetched.TableID)
	suite.Nil(refetched.TableNumber)

	kept, err := suite.guests.GetByID(suite.ctx, suite.owner, stay.ID)
	suite.NoError(err)
	suite.Require().NotNil(kept.TableNumber)
	suite.Equal("T2", *kept.TableNumber)
}

// TestDeleteMissing leaves guests untouched when the table does not exist
func (suite *TableRepositoryTestSuite) TestDeleteMissing() {
	_, err := suite.repo.Delete(suite.ctx, suite.owner, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTableRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TableRepositoryTestSuite))
}
