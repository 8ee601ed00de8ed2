package repository

import (
	"context"
	"errors"
	"time"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GuestRepository handles database operations for guests
type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// ListByOwner returns the owner's guests, newest first, with table names resolved
func (r *GuestRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Guest, error) {
	guests := []models.Guest{}
	err := r.db.WithContext(ctx).
		Preload("Table").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

// GetByID retrieves one of the owner's guests
func (r *GuestRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.WithContext(ctx).
		Preload("Table").
		First(&guest, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// Create inserts a guest. When the guest is seated, the target table is locked
// and its occupancy checked in the same transaction.
func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if guest.IsSeated() {
			if err := reserveSeat(tx, guest.OwnerID, *guest.TableID, guest.ID); err != nil {
				return err
			}
		}
		// Table is an association; never upsert it from here
		if err := tx.Omit(clause.Associations).Create(guest).Error; err != nil {
			return err
		}
		return reloadGuest(tx, guest)
	})
}

// Update writes first/last name, status and table reference of an existing
// guest. A positive expectedVersion must match the stored version. Moving the
// guest to a different table re-checks that table's occupancy under a row lock.
func (r *GuestRepository) Update(ctx context.Context, guest *models.Guest, expectedVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Guest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, "id = ? AND owner_id = ?", guest.ID, guest.OwnerID).Error
		if err != nil {
			return err
		}
		if expectedVersion > 0 && current.Version != expectedVersion {
			return apperrors.ErrGuestModified
		}

		if guest.IsSeated() && !sameTable(current.TableID, guest.TableID) {
			if err := reserveSeat(tx, guest.OwnerID, *guest.TableID, guest.ID); err != nil {
				return err
			}
		}

		var tableRef interface{}
		if guest.IsSeated() {
			tableRef = *guest.TableID
		}
		err = tx.Model(&models.Guest{}).
			Where("id = ? AND owner_id = ?", guest.ID, guest.OwnerID).
			Updates(map[string]interface{}{
				"first_name": guest.FirstName,
				"last_name":  guest.LastName,
				"status":     guest.Status,
				"table_id":   tableRef,
				"version":    current.Version + 1,
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return err
		}
		return reloadGuest(tx, guest)
	})
}

// Delete removes one of the owner's guests
func (r *GuestRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Guest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// reserveSeat locks the owner's table and fails when seating guestID there
// would exceed its capacity. The guest itself is not counted.
func reserveSeat(tx *gorm.DB, ownerID, tableID, guestID uuid.UUID) error {
	var table models.Table
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&table, "id = ? AND owner_id = ?", tableID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTableNotFound
		}
		return err
	}

	var seated int64
	err = tx.Model(&models.Guest{}).
		Where("table_id = ? AND id <> ?", tableID, guestID).
		Count(&seated).Error
	if err != nil {
		return err
	}
	if seated >= int64(table.Capacity) {
		return apperrors.NewCapacityExceededError(table.Name, table.Capacity)
	}
	return nil
}

func reloadGuest(tx *gorm.DB, guest *models.Guest) error {
	var fresh models.Guest
	if err := tx.Preload("Table").First(&fresh, "id = ?", guest.ID).Error; err != nil {
		return err
	}
	*guest = fresh
	return nil
}

func sameTable(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
