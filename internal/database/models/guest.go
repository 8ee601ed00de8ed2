package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest is an invitee of an organizer's event
type Guest struct {
	OwnedModel
	FirstName string      `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName  string      `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Status    GuestStatus `json:"status" gorm:"type:varchar(20);not null;default:'no-response'"`
	TableID   *uuid.UUID  `json:"table_id" gorm:"type:uuid;index"`
	Table     *Table      `json:"-" gorm:"foreignKey:TableID;constraint:OnDelete:SET NULL"`

	// TableNumber is the current name of the referenced table. It is never
	// stored; it is filled from Table after every load.
	TableNumber *string `json:"table_number" gorm:"-"`
}

// TableName returns the table name for Guest
func (Guest) TableName() string {
	return "guests"
}

// FullName returns "first last"
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// NameKey is the normalized name used for duplicate detection
func (g *Guest) NameKey() string {
	return GuestNameKey(g.FirstName, g.LastName)
}

// IsSeated reports whether the guest references a table
func (g *Guest) IsSeated() bool {
	return g.TableID != nil && *g.TableID != uuid.Nil
}

// SetTable points the guest at t (or at no table when t is nil) and refreshes
// the derived table name.
func (g *Guest) SetTable(t *Table) {
	g.Table = t
	if t == nil {
		g.TableID = nil
		g.TableNumber = nil
		return
	}
	id := t.ID
	name := t.Name
	g.TableID = &id
	g.TableNumber = &name
}

// AfterFind resolves TableNumber from the preloaded table
func (g *Guest) AfterFind(tx *gorm.DB) error {
	if g.Table != nil {
		name := g.Table.Name
		g.TableNumber = &name
	} else {
		g.TableNumber = nil
	}
	return nil
}

// GuestNameKey normalizes a first/last name pair: trimmed and case-folded
func GuestNameKey(firstName, lastName string) string {
	return strings.ToLower(strings.TrimSpace(firstName)) + "\x00" + strings.ToLower(strings.TrimSpace(lastName))
}
