package service_test

import (
	"testing"

	"seating-planner-backend/internal/database/models"
	"seating-planner-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidator_TableName(t *testing.T) {
	v := service.NewValidator()

	valid := []string{"Table 1", "Mesa de Niños", "Família Ávila", "12", "Head\tTable"}
	for _, name := range valid {
		assert.NoError(t, v.Var(name, "tablename"), name)
	}

	invalid := []string{"Table #1", "VIP!", "Tisch-2", "桌子", "Table_1"}
	for _, name := range invalid {
		assert.Error(t, v.Var(name, "tablename"), name)
	}
}

func TestActor_CanModify(t *testing.T) {
	owner := uuid.New()

	assert.True(t, service.Actor{OwnerID: owner, Role: models.RoleSuperUser}.CanModify())
	assert.False(t, service.Actor{OwnerID: owner, Role: models.RoleGuest}.CanModify())
	assert.False(t, service.Actor{Role: models.RoleSuperUser}.CanModify())
}
