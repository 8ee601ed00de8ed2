package testutils

import (
	"fmt"
	"time"

	"seating-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// GuestFactory provides methods to create test Guest data
type GuestFactory struct {
	seq int
}

// NewGuestFactory creates a new GuestFactory
func NewGuestFactory() *GuestFactory {
	return &GuestFactory{}
}

// Create creates an unseated guest with a unique name
func (f *GuestFactory) Create(ownerID uuid.UUID) *models.Guest {
	f.seq++
	now := time.Now()
	return &models.Guest{
		OwnedModel: models.OwnedModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			OwnerID: ownerID,
			Version: 1,
		},
		FirstName: fmt.Sprintf("Guest%d", f.seq),
		LastName:  "Test",
		Status:    models.GuestStatusNoResponse,
	}
}

// WithName creates a guest with the given name
func (f *GuestFactory) WithName(ownerID uuid.UUID, firstName, lastName string) *models.Guest {
	guest := f.Create(ownerID)
	guest.FirstName = firstName
	guest.LastName = lastName
	return guest
}

// AtTable creates a guest seated at table
func (f *GuestFactory) AtTable(ownerID uuid.UUID, table *models.Table) *models.Guest {
	guest := f.Create(ownerID)
	guest.SetTable(table)
	return guest
}

// TableFactory provides methods to create test Table data
type TableFactory struct {
	seq int
}

// NewTableFactory creates a new TableFactory
func NewTableFactory() *TableFactory {
	return &TableFactory{}
}

// Create creates a table seating six
func (f *TableFactory) Create(ownerID uuid.UUID) *models.Table {
	f.seq++
	now := time.Now()
	return &models.Table{
		OwnedModel: models.OwnedModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			OwnerID: ownerID,
			Version: 1,
		},
		Name:     fmt.Sprintf("Table %d", f.seq),
		Capacity: 6,
		Position: models.Position{X: float64(40 * f.seq), Y: 60},
	}
}

// WithName creates a table with the given name and capacity
func (f *TableFactory) WithName(ownerID uuid.UUID, name string, capacity int) *models.Table {
	table := f.Create(ownerID)
	table.Name = name
	table.Capacity = capacity
	return table
}

// UserFactory provides methods to create test accounts
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a user with a unique email and a placeholder hash
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        "user-" + id.String()[:8] + "@example.com",
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold",
	}
}

// Profile builds a profile for user with role
func (f *UserFactory) Profile(user *models.User, role models.Role) *models.Profile {
	return &models.Profile{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
	}
}

// FactorySet provides easy access to all factories
type FactorySet struct {
	Guest *GuestFactory
	Table *TableFactory
	User  *UserFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Guest: NewGuestFactory(),
		Table: NewTableFactory(),
		User:  NewUserFactory(),
	}
}
