package service

import (
	"context"

	"seating-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GuestServiceInterface defines the interface for guest service
type GuestServiceInterface interface {
	List(ctx context.Context, actor Actor, filter GuestFilter) ([]models.Guest, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*models.Guest, error)
	Create(ctx context.Context, actor Actor, req *CreateGuestRequest) (*models.Guest, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateGuestRequest) (*models.Guest, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	Stats(ctx context.Context, actor Actor) (*GuestStats, error)
	Invalidate(ownerID uuid.UUID)
}

// TableServiceInterface defines the interface for table service
type TableServiceInterface interface {
	List(ctx context.Context, actor Actor) ([]models.Table, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*models.Table, error)
	Create(ctx context.Context, actor Actor, req *CreateTableRequest) (*models.Table, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateTableRequest) (*models.Table, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	WithGuests(ctx context.Context, actor Actor) ([]TableWithGuests, error)
}

// SeatingServiceInterface defines the interface for the seating chart
type SeatingServiceInterface interface {
	Chart(ctx context.Context, actor Actor) (*SeatingChart, error)
	Assign(ctx context.Context, actor Actor, guestID, tableID uuid.UUID) (*SeatingChart, error)
	Unassign(ctx context.Context, actor Actor, guestID uuid.UUID) (*SeatingChart, error)
}

// Ensure services implement interfaces
var (
	_ GuestServiceInterface   = (*GuestService)(nil)
	_ TableServiceInterface   = (*TableService)(nil)
	_ SeatingServiceInterface = (*SeatingService)(nil)
)
