// Package labs holds the laboratory measurement item types: blood glucose,
// cholesterol profile, and HbA1C.
package labs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var BloodGlucoseTypeID = uuid.MustParse("879e7c04-4e8a-4707-9ad3-b054df467ce4")

// Normalcy grades a reading relative to the patient's usual range.
const (
	NormalcyWellBelow = 1
	NormalcyBelow     = 2
	NormalcyNormal    = 3
	NormalcyAbove     = 4
	NormalcyWellAbove = 5
)

func init() {
	health.Register(BloodGlucoseTypeID, "blood-glucose", "BloodGlucose",
		func() health.Data { return &BloodGlucose{} })
}

// BloodGlucose is a glucose reading together with how it was taken.
type BloodGlucose struct {
	When                 health.DateTime          `xml:"when"`
	Value                health.BloodGlucoseValue `xml:"value"`
	MeasurementType      health.CodableValue      `xml:"glucose-measurement-type"`
	OutsideOperatingTemp *bool                    `xml:"outside-operating-temp,omitempty"`
	IsControlTest        *bool                    `xml:"is-control-test,omitempty"`
	Normalcy             *int                     `xml:"normalcy,omitempty"`
	MeasurementContext   *health.CodableValue     `xml:"measurement-context,omitempty"`
}

func (b *BloodGlucose) TypeID() uuid.UUID   { return BloodGlucoseTypeID }
func (b *BloodGlucose) RootElement() string { return "blood-glucose" }

func (b *BloodGlucose) Validate() error {
	if err := b.When.Validate(); err != nil {
		return err
	}
	if err := b.Value.Validate(); err != nil {
		return err
	}
	if err := b.MeasurementType.Validate(); err != nil {
		return fmt.Errorf("glucose-measurement-type: %w", err)
	}
	if b.Normalcy != nil && (*b.Normalcy < NormalcyWellBelow || *b.Normalcy > NormalcyWellAbove) {
		return fmt.Errorf("normalcy %d out of range 1-5", *b.Normalcy)
	}
	if b.MeasurementContext != nil {
		if err := b.MeasurementContext.Validate(); err != nil {
			return fmt.Errorf("measurement-context: %w", err)
		}
	}
	return nil
}

func (b *BloodGlucose) Summary() string { return b.Value.String() }

func (b *BloodGlucose) Codables() []health.CodableValue {
	return append([]health.CodableValue{b.MeasurementType},
		health.CollectCodables(b.MeasurementContext)...)
}
