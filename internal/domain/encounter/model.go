package encounter

import (
	"time"

	"github.com/google/uuid"
)

// EncounterType maps to the encounter_type table. One row exists per
// distinct document class code; the code doubles as the type name.
type EncounterType struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
