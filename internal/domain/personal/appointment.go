package personal

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var AppointmentTypeID = uuid.MustParse("4b18aeb6-5f01-444c-8c70-dbf13a2f510b")

func init() {
	health.Register(AppointmentTypeID, "appointment", "Appointment",
		func() health.Data { return &Appointment{} })
}

// Appointment is a scheduled visit with a care provider.
type Appointment struct {
	When      health.DateTime      `xml:"when"`
	Duration  *health.Duration     `xml:"duration,omitempty"`
	Service   *health.CodableValue `xml:"service,omitempty"`
	Clinic    *health.Person       `xml:"clinic,omitempty"`
	Specialty *health.CodableValue `xml:"specialty,omitempty"`
	Status    *health.CodableValue `xml:"status,omitempty"`
	CareClass *health.CodableValue `xml:"care-class,omitempty"`
}

func (a *Appointment) TypeID() uuid.UUID   { return AppointmentTypeID }
func (a *Appointment) RootElement() string { return "appointment" }

func (a *Appointment) Validate() error {
	if err := a.When.Validate(); err != nil {
		return err
	}
	if a.Duration != nil {
		if err := a.Duration.Validate(); err != nil {
			return err
		}
	}
	for name, cv := range map[string]*health.CodableValue{
		"service": a.Service, "specialty": a.Specialty,
		"status": a.Status, "care-class": a.CareClass,
	} {
		if cv != nil {
			if err := cv.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	if a.Clinic != nil {
		if err := a.Clinic.Validate(); err != nil {
			return fmt.Errorf("clinic: %w", err)
		}
	}
	return nil
}

func (a *Appointment) Codables() []health.CodableValue {
	return health.CollectCodables(a.Service, a.Specialty, a.Status, a.CareClass)
}

func (a *Appointment) Summary() string {
	s := a.When.String()
	if a.Service != nil {
		s += ": " + a.Service.Text
	}
	if a.Clinic != nil {
		s += " with " + a.Clinic.Name.Full
	}
	return s
}
