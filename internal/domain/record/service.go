package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
	"github.com/healthrec/healthrec/internal/platform/vocab"
)

// Service parses, validates, and canonicalizes item payloads before they
// reach storage. Every stored payload is the output of health.Marshal, so
// reading a record back and re-serializing it is byte-identical.
type Service struct {
	records Repository
	vocabs  *vocab.Registry
}

func NewService(records Repository, vocabs *vocab.Registry) *Service {
	return &Service{records: records, vocabs: vocabs}
}

func (s *Service) Create(ctx context.Context, rec *Record) error {
	if rec.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if err := s.canonicalize(rec); err != nil {
		return err
	}
	return s.records.Create(ctx, rec)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.records.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, rec *Record) error {
	existing, err := s.records.GetByID(ctx, rec.ID)
	if err != nil {
		return err
	}
	if err := s.canonicalize(rec); err != nil {
		return err
	}
	// The item type of a record is fixed at creation.
	if rec.TypeID != existing.TypeID {
		return fmt.Errorf("cannot change record type from %s to %s", existing.TypeName, rec.TypeName)
	}
	return s.records.Update(ctx, rec)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.records.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Record, int, error) {
	return s.records.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByPatientAndType(ctx context.Context, patientID, typeID uuid.UUID, limit, offset int) ([]*Record, int, error) {
	return s.records.ListByPatientAndType(ctx, patientID, typeID, limit, offset)
}

// Parse decodes a payload into its typed item without touching storage.
func (s *Service) Parse(payload []byte) (health.Data, error) {
	return health.Unmarshal(payload)
}

// canonicalize decodes the payload, validates it, and replaces it with the
// canonical serialized form, filling in the type and summary columns.
func (s *Service) canonicalize(rec *Record) error {
	if len(rec.Payload) == 0 {
		return fmt.Errorf("payload is required")
	}

	item, err := health.Unmarshal([]byte(rec.Payload))
	if err != nil {
		return fmt.Errorf("invalid item payload: %w", err)
	}

	if coded, ok := item.(health.CodedItem); ok && s.vocabs != nil {
		for _, cv := range coded.Codables() {
			if err := s.vocabs.Check(cv); err != nil {
				return fmt.Errorf("vocabulary check: %w", err)
			}
		}
	}

	canonical, err := health.Marshal(item)
	if err != nil {
		return fmt.Errorf("canonicalize item payload: %w", err)
	}

	reg, _ := health.Lookup(item.TypeID())
	rec.TypeID = item.TypeID()
	rec.TypeName = reg.Name
	rec.Payload = string(canonical)
	rec.Summary = item.Summary()
	return nil
}
