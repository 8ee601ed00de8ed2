package service

import (
	"context"
	"errors"
	"strings"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/logger"
	"seating-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuestService handles business logic for guests
type GuestService struct {
	repo      repository.GuestRepositoryInterface
	tableRepo repository.TableRepositoryInterface
	validator *validator.Validate
	cache     *ownerCache[models.Guest]
}

// NewGuestService creates a new guest service
func NewGuestService(repo repository.GuestRepositoryInterface, tableRepo repository.TableRepositoryInterface, validator *validator.Validate) *GuestService {
	return &GuestService{
		repo:      repo,
		tableRepo: tableRepo,
		validator: validator,
		cache:     newOwnerCache[models.Guest](),
	}
}

// CreateGuestRequest represents the request to create a guest. The seat is
// given either by table_id or by table_number (the table's name).
type CreateGuestRequest struct {
	FirstName   string             `json:"first_name" validate:"required,max=100"`
	LastName    string             `json:"last_name" validate:"required,max=100"`
	Status      models.GuestStatus `json:"status" validate:"omitempty,oneof=no-response accepted declined"`
	TableID     *uuid.UUID         `json:"table_id,omitempty"`
	TableNumber *string            `json:"table_number,omitempty"`
}

// UpdateGuestRequest represents a partial update of a guest. Absent fields
// keep their current value. A nil-UUID table_id or an empty table_number
// clears the seat. Version, when set, must match the stored version.
type UpdateGuestRequest struct {
	FirstName   *string             `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string             `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Status      *models.GuestStatus `json:"status,omitempty" validate:"omitempty,oneof=no-response accepted declined"`
	TableID     *uuid.UUID          `json:"table_id,omitempty"`
	TableNumber *string             `json:"table_number,omitempty"`
	Version     *int                `json:"version,omitempty" validate:"omitempty,min=1"`
}

// GuestFilter narrows a guest list. Query matches a case-insensitive
// substring of the first or last name; Status is "all" or a guest status.
type GuestFilter struct {
	Query  string `form:"q"`
	Status string `form:"status"`
}

// GuestStats counts guests by RSVP status
type GuestStats struct {
	Total      int `json:"total"`
	Accepted   int `json:"accepted"`
	Declined   int `json:"declined"`
	NoResponse int `json:"no_response"`
}

// Matches reports whether guest passes the filter
func (f GuestFilter) Matches(guest *models.Guest) bool {
	if f.Status != "" && f.Status != "all" && string(guest.Status) != f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(guest.FirstName), q) ||
		strings.Contains(strings.ToLower(guest.LastName), q)
}

func (f GuestFilter) validate() error {
	if f.Status == "" || f.Status == "all" || models.GuestStatus(f.Status).IsValid() {
		return nil
	}
	return apperrors.NewValidationError("status", "must be one of: all no-response accepted declined")
}

// CountGuests aggregates guests by status
func CountGuests(guests []models.Guest) *GuestStats {
	stats := &GuestStats{Total: len(guests)}
	for i := range guests {
		switch guests[i].Status {
		case models.GuestStatusAccepted:
			stats.Accepted++
		case models.GuestStatusDeclined:
			stats.Declined++
		default:
			stats.NoResponse++
		}
	}
	return stats
}

// List returns the actor's guests newest first and refreshes the cache. On a
// store failure it returns an empty list together with a StoreError.
func (s *GuestService) List(ctx context.Context, actor Actor, filter GuestFilter) ([]models.Guest, error) {
	if err := filter.validate(); err != nil {
		return []models.Guest{}, err
	}
	if actor.OwnerID == uuid.Nil {
		return []models.Guest{}, nil
	}

	gen := s.cache.generation(actor.OwnerID)
	guests, err := s.repo.ListByOwner(ctx, actor.OwnerID)
	if err != nil {
		return []models.Guest{}, storeFailure(ctx, "list guests", err)
	}
	s.cache.storeIfCurrent(actor.OwnerID, gen, guests)

	filtered := make([]models.Guest, 0, len(guests))
	for i := range guests {
		if filter.Matches(&guests[i]) {
			filtered = append(filtered, guests[i])
		}
	}
	return filtered, nil
}

// Get returns one guest of the actor's organizer
func (s *GuestService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*models.Guest, error) {
	guest, err := s.repo.GetByID(ctx, actor.OwnerID, id)
	if err != nil {
		return nil, s.translate(ctx, "get guest", err, "")
	}
	return guest, nil
}

// Create adds a guest after checking that no guest of the organizer has the
// same name, compared trimmed and case-insensitively.
func (s *GuestService) Create(ctx context.Context, actor Actor, req *CreateGuestRequest) (*models.Guest, error) {
	if err := requireOrganizer(actor); err != nil {
		return nil, err
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	fullName := req.FirstName + " " + req.LastName
	existing, err := s.loaded(ctx, actor.OwnerID)
	if err != nil {
		return nil, err
	}
	if findGuestByName(existing, models.GuestNameKey(req.FirstName, req.LastName), uuid.Nil) != nil {
		return nil, apperrors.NewDuplicateNameError("guest", fullName)
	}

	status := req.Status
	if status == "" {
		status = models.GuestStatusNoResponse
	}

	guest := &models.Guest{
		OwnedModel: models.OwnedModel{OwnerID: actor.OwnerID},
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Status:     status,
	}

	table, _, err := s.resolveTable(ctx, actor.OwnerID, req.TableID, req.TableNumber)
	if err != nil {
		return nil, err
	}
	if table != nil {
		guest.SetTable(table)
	}

	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, s.translate(ctx, "create guest", err, fullName)
	}

	s.cache.prepend(actor.OwnerID, sameGuest(guest.ID), *guest)
	logger.WithContext(ctx).Infof("guest %s created", guest.ID)
	return guest, nil
}

// Update applies a partial update. The duplicate-name check runs against the
// resulting name, excluding the guest itself.
func (s *GuestService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateGuestRequest) (*models.Guest, error) {
	if err := requireOrganizer(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	current, err := s.repo.GetByID(ctx, actor.OwnerID, id)
	if err != nil {
		return nil, s.translate(ctx, "get guest", err, "")
	}

	next := *current
	if req.FirstName != nil {
		next.FirstName = strings.TrimSpace(*req.FirstName)
		if next.FirstName == "" {
			return nil, apperrors.NewValidationError("first_name", "is required")
		}
	}
	if req.LastName != nil {
		next.LastName = strings.TrimSpace(*req.LastName)
		if next.LastName == "" {
			return nil, apperrors.NewValidationError("last_name", "is required")
		}
	}
	if req.Status != nil {
		next.Status = *req.Status
	}

	table, changed, err := s.resolveTable(ctx, actor.OwnerID, req.TableID, req.TableNumber)
	if err != nil {
		return nil, err
	}
	if changed {
		next.SetTable(table)
	}

	existing, err := s.loaded(ctx, actor.OwnerID)
	if err != nil {
		return nil, err
	}
	if findGuestByName(existing, next.NameKey(), id) != nil {
		return nil, apperrors.NewDuplicateNameError("guest", next.FullName())
	}

	expectedVersion := 0
	if req.Version != nil {
		expectedVersion = *req.Version
	}
	if err := s.repo.Update(ctx, &next, expectedVersion); err != nil {
		return nil, s.translate(ctx, "update guest", err, next.FullName())
	}

	s.cache.replace(actor.OwnerID, sameGuest(id), next)
	return &next, nil
}

// Delete removes a guest. The cache is left untouched when the store fails.
func (s *GuestService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := requireOrganizer(actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, actor.OwnerID, id); err != nil {
		return s.translate(ctx, "delete guest", err, "")
	}
	s.cache.remove(actor.OwnerID, sameGuest(id))
	logger.WithContext(ctx).Infof("guest %s deleted", id)
	return nil
}

// Stats counts the organizer's guests by status, loading the list on first use
func (s *GuestService) Stats(ctx context.Context, actor Actor) (*GuestStats, error) {
	if actor.OwnerID == uuid.Nil {
		return &GuestStats{}, nil
	}
	guests, err := s.loaded(ctx, actor.OwnerID)
	if err != nil {
		return nil, err
	}
	return CountGuests(guests), nil
}

// Invalidate drops the cached list of an organizer
func (s *GuestService) Invalidate(ownerID uuid.UUID) {
	s.cache.invalidate(ownerID)
}

// loaded returns the cached list of owner, fetching it on a miss
func (s *GuestService) loaded(ctx context.Context, owner uuid.UUID) ([]models.Guest, error) {
	if guests, ok := s.cache.get(owner); ok {
		return guests, nil
	}
	gen := s.cache.generation(owner)
	guests, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, storeFailure(ctx, "list guests", err)
	}
	s.cache.storeIfCurrent(owner, gen, guests)
	return guests, nil
}

// resolveTable turns a table_id or table_number into the owner's table. The
// bool reports whether the request names a seat at all; a nil table with
// changed=true clears the seat.
func (s *GuestService) resolveTable(ctx context.Context, owner uuid.UUID, tableID *uuid.UUID, tableName *string) (*models.Table, bool, error) {
	var (
		table *models.Table
		err   error
	)
	switch {
	case tableID != nil:
		if *tableID == uuid.Nil {
			return nil, true, nil
		}
		table, err = s.tableRepo.GetByID(ctx, owner, *tableID)
	case tableName != nil:
		if strings.TrimSpace(*tableName) == "" {
			return nil, true, nil
		}
		table, err = s.tableRepo.GetByName(ctx, owner, *tableName)
	default:
		return nil, false, nil
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrTableNotFound
		}
		return nil, false, storeFailure(ctx, "get table", err)
	}
	return table, true, nil
}

func (s *GuestService) translate(ctx context.Context, op string, err error, name string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrGuestNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewDuplicateNameError("guest", name)
	case isDomainError(err):
		return err
	default:
		return storeFailure(ctx, op, err)
	}
}

func findGuestByName(guests []models.Guest, key string, exclude uuid.UUID) *models.Guest {
	for i := range guests {
		if guests[i].ID != exclude && guests[i].NameKey() == key {
			return &guests[i]
		}
	}
	return nil
}

func sameGuest(id uuid.UUID) func(models.Guest) bool {
	return func(g models.Guest) bool { return g.ID == id }
}
