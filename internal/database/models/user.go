package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the identity provider
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Profile holds the role attribute of a user. A guest-role profile sees the
// data of the organizer it is linked to.
type Profile struct {
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;primary_key"`
	Email       string     `json:"email" gorm:"size:255;not null"`
	Role        Role       `json:"role" gorm:"type:varchar(20);not null;default:'guest'"`
	OrganizerID *uuid.UUID `json:"organizer_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// OwnerScope is the organizer whose guests and tables this profile works on.
// An unlinked guest-role profile yields uuid.Nil, which matches no rows.
func (p *Profile) OwnerScope() uuid.UUID {
	if p.Role == RoleSuperUser {
		return p.UserID
	}
	if p.OrganizerID != nil {
		return *p.OrganizerID
	}
	return uuid.Nil
}
