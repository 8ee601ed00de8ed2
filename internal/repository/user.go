package repository

import (
	"context"
	"strings"

	"seating-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for accounts and their profiles
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and, when given, its profile in one transaction
func (r *UserRepository) Create(ctx context.Context, user *models.User, profile *models.Profile) error {
	user.Email = normalizeEmail(user.Email)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if profile == nil {
			return nil
		}
		profile.UserID = user.ID
		profile.Email = user.Email
		return tx.Create(profile).Error
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitive
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", normalizeEmail(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile retrieves the profile of a user
func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateProfile inserts a profile. A concurrent insert for the same user is
// not an error; the stored profile is loaded into profile instead.
func (r *UserRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	db := r.db.WithContext(ctx)
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(profile)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return db.First(profile, "user_id = ?", profile.UserID).Error
	}
	return nil
}

// UpdateProfile writes role and organizer link of a profile
func (r *UserRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	var organizer interface{}
	if profile.OrganizerID != nil {
		organizer = *profile.OrganizerID
	}
	return r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"role":         profile.Role,
			"organizer_id": organizer,
		}).Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
