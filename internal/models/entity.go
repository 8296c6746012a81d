package models

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the columns every persisted entity carries. The timestamps stay
// nil until the store has assigned them.
type Base struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// Fields is a partial entity keyed by column name. A missing key leaves the
// column untouched, a key holding nil clears it.
type Fields map[string]any

// Record is one parsed import row: trimmed header -> trimmed cell, nil when empty.
type Record map[string]*string

// EntityID exposes the primary key to generic code.
func (b Base) EntityID() uuid.UUID {
	return b.ID
}
