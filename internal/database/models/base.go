package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// OwnedModel is a record that belongs to one organizer and carries an
// optimistic-concurrency version.
type OwnedModel struct {
	BaseModel
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Version int       `json:"version" gorm:"not null;default:1"`
}
