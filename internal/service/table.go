package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/logger"
	"seating-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// DefaultTableCapacity is used when a table is created without a capacity
	DefaultTableCapacity = 6

	floorWidth  = 400
	floorHeight = 300
)

// TableService handles business logic for tables
type TableService struct {
	repo      repository.TableRepositoryInterface
	guestRepo repository.GuestRepositoryInterface
	guests    GuestServiceInterface
	validator *validator.Validate
	cache     *ownerCache[models.Table]
}

// NewTableService creates a new table service. guests is told to drop its
// cache whenever a table change alters what guests display.
func NewTableService(repo repository.TableRepositoryInterface, guestRepo repository.GuestRepositoryInterface, guests GuestServiceInterface, validator *validator.Validate) *TableService {
	return &TableService{
		repo:      repo,
		guestRepo: guestRepo,
		guests:    guests,
		validator: validator,
		cache:     newOwnerCache[models.Table](),
	}
}

// CreateTableRequest represents the request to create a table. Capacity
// defaults to 6; a missing position is placed randomly on the floor plan.
type CreateTableRequest struct {
	Name     string           `json:"name" validate:"required,max=100,tablename"`
	Capacity *int             `json:"capacity,omitempty" validate:"omitempty,min=1,max=20"`
	Position *models.Position `json:"position,omitempty"`
}

// UpdateTableRequest represents a partial update of a table
type UpdateTableRequest struct {
	Name     *string          `json:"name,omitempty"`
	Capacity *int             `json:"capacity,omitempty" validate:"omitempty,min=1,max=20"`
	Position *models.Position `json:"position,omitempty"`
	Version  *int             `json:"version,omitempty" validate:"omitempty,min=1"`
}

// List returns the actor's tables newest first and refreshes the cache. On a
// store failure it returns an empty list together with a StoreError.
func (s *TableService) List(ctx context.Context, actor Actor) ([]models.Table, error) {
	if actor.OwnerID == uuid.Nil {
		return []models.Table{}, nil
	}
	gen := s.cache.generation(actor.OwnerID)
	tables, err := s.repo.ListByOwner(ctx, actor.OwnerID)
	if err != nil {
		return []models.Table{}, storeFailure(ctx, "list tables", err)
	}
	s.cache.storeIfCurrent(actor.OwnerID, gen, tables)
	return tables, nil
}

// Get returns one table of the actor's organizer
func (s *TableService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*models.Table, error) {
	table, err := s.repo.GetByID(ctx, actor.OwnerID, id)
	if err != nil {
		return nil, s.translate(ctx, "get table", err, "")
	}
	return table, nil
}

// Create adds a table after checking that the organizer has no table with the
// same name, compared trimmed and case-insensitively.
func (s *TableService) Create(ctx context.Context, actor Actor, req *CreateTableRequest) (*models.Table, error) {
	if err := requireOrganizer(actor); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.loaded(ctx, actor.OwnerID)
	if err != nil {
		return nil, err
	}
	if findTableByName(existing, models.TableNameKey(req.Name), uuid.Nil) != nil {
		return nil, apperrors.NewDuplicateNameError("table", req.Name)
	}

	capacity := DefaultTableCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	position := randomPosition()
	if req.Position != nil {
		position = *req.Position
	}

	table := &models.Table{
		OwnedModel: models.OwnedModel{OwnerID: actor.OwnerID},
		Name:       req.Name,
		Capacity:   capacity,
		Position:   position,
	}
	if err := s.repo.Create(ctx, table); err != nil {
		return nil, s.translate(ctx, "create table", err, req.Name)
	}

	s.cache.prepend(actor.OwnerID, sameTable(table.ID), *table)
	logger.WithContext(ctx).Infof("table %q created", table.Name)
	return table, nil
}

// Update applies a partial update. A rename is checked for duplicates
// excluding the table itself; seated guests follow the table by id.
func (s *TableService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateTableRequest) (*models.Table, error) {
	if err := requireOrganizer(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	current, err := s.repo.GetByID(ctx, actor.OwnerID, id)
	if err != nil {
		return nil, s.translate(ctx, "get table", err, "")
	}

	next := *current
	renamed := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := s.validator.Var(name, "required,max=100,tablename"); err != nil {
			return nil, fieldValidationError("name", err)
		}
		renamed = name != current.Name
		next.Name = name
	}
	if req.Capacity != nil {
		next.Capacity = *req.Capacity
	}
	if req.Position != nil {
		next.Position = *req.Position
	}

	if renamed {
		existing, err := s.loaded(ctx, actor.OwnerID)
		if err != nil {
			return nil, err
		}
		if findTableByName(existing, next.NameKey(), id) != nil {
			return nil, apperrors.NewDuplicateNameError("table", next.Name)
		}
	}

	expectedVersion := 0
	if req.Version != nil {
		expectedVersion = *req.Version
	}
	if err := s.repo.Update(ctx, &next, expectedVersion); err != nil {
		return nil, s.translate(ctx, "update table", err, next.Name)
	}

	s.cache.replace(actor.OwnerID, sameTable(id), next)
	if renamed {
		s.guests.Invalidate(actor.OwnerID)
	}
	return &next, nil
}

// Delete unseats the table's guests and deletes the table in one store
// transaction; either both happen or neither does.
func (s *TableService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := requireOrganizer(actor); err != nil {
		return err
	}

	unseated, err := s.repo.Delete(ctx, actor.OwnerID, id)
	if err != nil {
		return s.translate(ctx, "delete table", err, "")
	}

	s.cache.remove(actor.OwnerID, sameTable(id))
	s.guests.Invalidate(actor.OwnerID)
	logger.WithContext(ctx).Infof("table %s deleted, %d guests unseated", id, unseated)
	return nil
}

// WithGuests returns every table with the guests seated at it
func (s *TableService) WithGuests(ctx context.Context, actor Actor) ([]TableWithGuests, error) {
	if actor.OwnerID == uuid.Nil {
		return []TableWithGuests{}, nil
	}

	var (
		tables []models.Table
		guests []models.Guest
	)
	gen := s.cache.generation(actor.OwnerID)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tables, err = s.repo.ListByOwner(gctx, actor.OwnerID)
		return err
	})
	g.Go(func() error {
		var err error
		guests, err = s.guestRepo.ListByOwner(gctx, actor.OwnerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return []TableWithGuests{}, storeFailure(ctx, "list tables with guests", err)
	}

	s.cache.storeIfCurrent(actor.OwnerID, gen, tables)
	return BuildSeatingChart(guests, tables).Tables, nil
}

func (s *TableService) loaded(ctx context.Context, owner uuid.UUID) ([]models.Table, error) {
	if tables, ok := s.cache.get(owner); ok {
		return tables, nil
	}
	gen := s.cache.generation(owner)
	tables, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, storeFailure(ctx, "list tables", err)
	}
	s.cache.storeIfCurrent(owner, gen, tables)
	return tables, nil
}

func (s *TableService) translate(ctx context.Context, op string, err error, name string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrTableNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewDuplicateNameError("table", name)
	case isDomainError(err):
		return err
	default:
		return storeFailure(ctx, op, err)
	}
}

func randomPosition() models.Position {
	return models.Position{
		X: rand.Float64() * floorWidth,
		Y: rand.Float64() * floorHeight,
	}
}

func findTableByName(tables []models.Table, key string, exclude uuid.UUID) *models.Table {
	for i := range tables {
		if tables[i].ID != exclude && tables[i].NameKey() == key {
			return &tables[i]
		}
	}
	return nil
}

func sameTable(id uuid.UUID) func(models.Table) bool {
	return func(t models.Table) bool { return t.ID == id }
}
