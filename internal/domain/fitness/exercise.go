// Package fitness holds the activity item types: exercise sessions and the
// morning sleep journal.
package fitness

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var ExerciseTypeID = uuid.MustParse("85a21ddb-db20-4c65-8d30-33c899ccf612")

func init() {
	health.Register(ExerciseTypeID, "exercise", "Exercise",
		func() health.Data { return &Exercise{} })
}

// StructuredMeasurement is a named numeric reading with coded units, used by
// exercise details (power, cadence, elevation gain, ...).
type StructuredMeasurement struct {
	Value float64             `xml:"value"`
	Units health.CodableValue `xml:"units"`
}

func (m *StructuredMeasurement) Validate() error {
	return m.Units.Validate()
}

// ExerciseDetail is one named measurement captured during a session.
type ExerciseDetail struct {
	Name  health.CodedValue     `xml:"name"`
	Value StructuredMeasurement `xml:"value"`
}

// Exercise is a single activity session.
type Exercise struct {
	When     health.ApproxDateTime `xml:"when"`
	Activity health.CodableValue   `xml:"activity"`
	Title    string                `xml:"title,omitempty"`
	Distance *health.LengthValue   `xml:"distance,omitempty"`
	Minutes  *float64              `xml:"duration,omitempty"`
	Details  []ExerciseDetail      `xml:"detail,omitempty"`
}

func (e *Exercise) TypeID() uuid.UUID   { return ExerciseTypeID }
func (e *Exercise) RootElement() string { return "exercise" }

func (e *Exercise) Validate() error {
	if err := e.When.Validate(); err != nil {
		return fmt.Errorf("when: %w", err)
	}
	if err := e.Activity.Validate(); err != nil {
		return fmt.Errorf("activity: %w", err)
	}
	if e.Distance != nil {
		if err := e.Distance.Validate(); err != nil {
			return fmt.Errorf("distance: %w", err)
		}
	}
	if e.Minutes != nil && *e.Minutes <= 0 {
		return fmt.Errorf("duration must be positive, got %g", *e.Minutes)
	}
	for i := range e.Details {
		if err := e.Details[i].Name.Validate(); err != nil {
			return fmt.Errorf("detail %d name: %w", i+1, err)
		}
		if err := e.Details[i].Value.Validate(); err != nil {
			return fmt.Errorf("detail %d value: %w", i+1, err)
		}
	}
	return nil
}

func (e *Exercise) Codables() []health.CodableValue {
	out := []health.CodableValue{e.Activity}
	for i := range e.Details {
		out = append(out, e.Details[i].Value.Units)
	}
	return out
}

func (e *Exercise) Summary() string {
	s := e.Activity.Text
	if e.Title != "" {
		s = e.Title + " (" + s + ")"
	}
	if e.Minutes != nil {
		s += fmt.Sprintf(", %g min", *e.Minutes)
	}
	if e.Distance != nil {
		s += ", " + e.Distance.String()
	}
	return s
}
