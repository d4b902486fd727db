// Package vitals holds the vital sign item types: blood pressure, heart
// rate, weight, height, body temperature, and peak flow.
package vitals

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var BloodPressureTypeID = uuid.MustParse("ca3c57f4-f4c1-4e15-be67-0a3caf5414ed")

func init() {
	health.Register(BloodPressureTypeID, "blood-pressure", "BloodPressure",
		func() health.Data { return &BloodPressure{} })
}

// mmHgBound is the representable pressure interval for a cuff reading.
var mmHgBound = health.Int32Range{Minimum: 0, Maximum: 1000}

// BloodPressure is a single blood pressure reading in mmHg.
type BloodPressure struct {
	When               health.DateTime `xml:"when"`
	Systolic           int             `xml:"systolic"`
	Diastolic          int             `xml:"diastolic"`
	Pulse              *int            `xml:"pulse,omitempty"`
	IrregularHeartbeat *bool           `xml:"irregular-heartbeat,omitempty"`
}

func (b *BloodPressure) TypeID() uuid.UUID   { return BloodPressureTypeID }
func (b *BloodPressure) RootElement() string { return "blood-pressure" }

func (b *BloodPressure) Validate() error {
	if err := b.When.Validate(); err != nil {
		return err
	}
	if !mmHgBound.Contains(int32(b.Systolic)) {
		return fmt.Errorf("systolic %d out of range %d-%d", b.Systolic, mmHgBound.Minimum, mmHgBound.Maximum)
	}
	if !mmHgBound.Contains(int32(b.Diastolic)) {
		return fmt.Errorf("diastolic %d out of range %d-%d", b.Diastolic, mmHgBound.Minimum, mmHgBound.Maximum)
	}
	if b.Pulse != nil && *b.Pulse < 0 {
		return fmt.Errorf("pulse must not be negative, got %d", *b.Pulse)
	}
	return nil
}

func (b *BloodPressure) Summary() string {
	s := fmt.Sprintf("%d/%d mmHg", b.Systolic, b.Diastolic)
	if b.Pulse != nil {
		s += fmt.Sprintf(", pulse %d bpm", *b.Pulse)
	}
	return s
}
