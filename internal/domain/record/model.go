package record

import (
	"time"

	"github.com/google/uuid"
)

// Record is a stored health record item: a typed XML fragment owned by a
// patient, kept in canonical form alongside its one-line summary.
type Record struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	TypeID    uuid.UUID `db:"type_id" json:"type_id"`
	TypeName  string    `db:"type_name" json:"type_name"`
	Payload   string    `db:"payload" json:"payload"`
	Summary   string    `db:"summary" json:"summary"`
	VersionID int       `db:"version_id" json:"version_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
