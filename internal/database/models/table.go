package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Position is the location of a table on the floor plan
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Value implements driver.Valuer, storing the position as jsonb
func (p Position) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *Position) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = Position{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into Position", value)
	}
}

// Table is a seating unit with a fixed capacity
type Table struct {
	OwnedModel
	Name     string   `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Capacity int      `json:"capacity" gorm:"not null;check:chk_tables_capacity,capacity >= 1" validate:"required,min=1"`
	Position Position `json:"position" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for Table
func (Table) TableName() string {
	return "tables"
}

// NameKey is the normalized name used for duplicate detection
func (t *Table) NameKey() string {
	return TableNameKey(t.Name)
}

// TableNameKey normalizes a table name: trimmed and case-folded
func TableNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
