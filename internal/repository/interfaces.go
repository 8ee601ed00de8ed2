package repository

import (
	"context"

	"seating-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GuestRepositoryInterface defines the interface for guest repository operations.
// Every call is scoped to one owner.
type GuestRepositoryInterface interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Guest, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Guest, error)
	Create(ctx context.Context, guest *models.Guest) error
	Update(ctx context.Context, guest *models.Guest, expectedVersion int) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TableRepositoryInterface defines the interface for table repository operations
type TableRepositoryInterface interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Table, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Table, error)
	GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Table, error)
	Create(ctx context.Context, table *models.Table) error
	Update(ctx context.Context, table *models.Table, expectedVersion int) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for account and profile operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
	UpdateProfile(ctx context.Context, profile *models.Profile) error
}

// Ensure repositories implement interfaces
var (
	_ GuestRepositoryInterface = (*GuestRepository)(nil)
	_ TableRepositoryInterface = (*TableRepository)(nil)
	_ UserRepositoryInterface  = (*UserRepository)(nil)
)
