package repository

import (
	"context"
	"time"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableRepository handles database operations for tables
type TableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

// ListByOwner returns the owner's tables, newest first
func (r *TableRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Table, error) {
	tables := []models.Table{}
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// GetByID retrieves one of the owner's tables
func (r *TableRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Table, error) {
	var table models.Table
	err := r.db.WithContext(ctx).First(&table, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// GetByName retrieves one of the owner's tables by name, trimmed and case-insensitive
func (r *TableRepository) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Table, error) {
	var table models.Table
	err := r.db.WithContext(ctx).
		First(&table, "owner_id = ? AND lower(btrim(name)) = ?", ownerID, models.TableNameKey(name)).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// Create inserts a table
func (r *TableRepository) Create(ctx context.Context, table *models.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

// Update writes name, capacity and position. A positive expectedVersion must
// match the stored version.
func (r *TableRepository) Update(ctx context.Context, table *models.Table, expectedVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Table
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, "id = ? AND owner_id = ?", table.ID, table.OwnerID).Error
		if err != nil {
			return err
		}
		if expectedVersion > 0 && current.Version != expectedVersion {
			return apperrors.ErrTableModified
		}

		err = tx.Model(&models.Table{}).
			Where("id = ? AND owner_id = ?", table.ID, table.OwnerID).
			Updates(map[string]interface{}{
				"name":       table.Name,
				"capacity":   table.Capacity,
				"position":   table.Position,
				"version":    current.Version + 1,
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return err
		}
		return tx.First(table, "id = ?", table.ID).Error
	})
}

// Delete unseats every guest of the table and removes the table in one
// transaction. It returns the number of guests that were unseated.
func (r *TableRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (int64, error) {
	var unseated int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&table, "id = ? AND owner_id = ?", id, ownerID).Error
		if err != nil {
			return err
		}

		res := tx.Model(&models.Guest{}).
			Where("owner_id = ? AND table_id = ?", ownerID, id).
			Updates(map[string]interface{}{
				"table_id":   nil,
				"version":    gorm.Expr("version + 1"),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		unseated = res.RowsAffected

		return tx.Delete(&table).Error
	})
	if err != nil {
		return 0, err
	}
	return unseated, nil
}
