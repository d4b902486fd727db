package clinical

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var MedicationTypeID = uuid.MustParse("30cafccc-047d-4288-94ef-643571f7919d")

func init() {
	health.Register(MedicationTypeID, "medication", "Medication",
		func() health.Data { return &Medication{} })
}

// Dose is a medication dose as either a structured amount or free text.
type Dose struct {
	Amount *health.DoubleRange `xml:"structured,omitempty"`
	Text   string              `xml:"description,omitempty"`
}

func (d *Dose) Validate() error {
	if d.Amount == nil && strings.TrimSpace(d.Text) == "" {
		return fmt.Errorf("dose requires a structured amount or a description")
	}
	if d.Amount != nil {
		if err := d.Amount.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Medication records a drug the patient takes or has taken.
type Medication struct {
	Name        health.CodableValue    `xml:"name"`
	GenericName *health.CodableValue   `xml:"generic-name,omitempty"`
	Dose        *Dose                  `xml:"dose,omitempty"`
	Strength    string                 `xml:"strength,omitempty"`
	Frequency   *health.CodableValue   `xml:"frequency,omitempty"`
	Route       *health.CodableValue   `xml:"route,omitempty"`
	Indication  *health.CodableValue   `xml:"indication,omitempty"`
	StartDate   *health.ApproxDateTime `xml:"date-started,omitempty"`
	StopDate    *health.ApproxDateTime `xml:"date-discontinued,omitempty"`
	Prescribed  *health.CodableValue   `xml:"prescribed,omitempty"`
}

func (m *Medication) TypeID() uuid.UUID   { return MedicationTypeID }
func (m *Medication) RootElement() string { return "medication" }

func (m *Medication) Validate() error {
	if err := m.Name.Validate(); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	for name, cv := range map[string]*health.CodableValue{
		"generic-name": m.GenericName, "frequency": m.Frequency, "route": m.Route,
		"indication": m.Indication, "prescribed": m.Prescribed,
	} {
		if cv != nil {
			if err := cv.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	if m.Dose != nil {
		if err := m.Dose.Validate(); err != nil {
			return fmt.Errorf("dose: %w", err)
		}
	}
	if m.StartDate != nil {
		if err := m.StartDate.Validate(); err != nil {
			return fmt.Errorf("date-started: %w", err)
		}
	}
	if m.StopDate != nil {
		if err := m.StopDate.Validate(); err != nil {
			return fmt.Errorf("date-discontinued: %w", err)
		}
	}
	return nil
}

func (m *Medication) Codables() []health.CodableValue {
	return append([]health.CodableValue{m.Name},
		health.CollectCodables(m.GenericName, m.Frequency, m.Route, m.Indication, m.Prescribed)...)
}

func (m *Medication) Summary() string {
	s := m.Name.Text
	if m.Strength != "" {
		s += " " + m.Strength
	}
	if m.Frequency != nil {
		s += ", " + m.Frequency.Text
	}
	return s
}
