package clinical

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var ImmunizationTypeID = uuid.MustParse("cd3587b5-b6e1-4565-ab3b-1c3ad45eb04f")

func init() {
	health.Register(ImmunizationTypeID, "immunization", "Immunization",
		func() health.Data { return &Immunization{} })
}

// Immunization records a vaccination and its administration details.
type Immunization struct {
	Name               health.CodableValue    `xml:"name"`
	AdministrationDate *health.ApproxDateTime `xml:"administration-date,omitempty"`
	Administrator      *health.Person         `xml:"administrator,omitempty"`
	Manufacturer       *health.CodableValue   `xml:"manufacturer,omitempty"`
	Lot                string                 `xml:"lot,omitempty"`
	Route              *health.CodableValue   `xml:"route,omitempty"`
	ExpirationDate     *health.ApproxDate     `xml:"expiration-date,omitempty"`
	Sequence           string                 `xml:"sequence,omitempty"`
	AnatomicSurface    *health.CodableValue   `xml:"anatomic-surface,omitempty"`
	AdverseEvent       string                 `xml:"adverse-event,omitempty"`
	Consent            string                 `xml:"consent,omitempty"`
}

func (im *Immunization) TypeID() uuid.UUID   { return ImmunizationTypeID }
func (im *Immunization) RootElement() string { return "immunization" }

func (im *Immunization) Validate() error {
	if err := im.Name.Validate(); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if im.AdministrationDate != nil {
		if err := im.AdministrationDate.Validate(); err != nil {
			return fmt.Errorf("administration-date: %w", err)
		}
	}
	if im.Administrator != nil {
		if err := im.Administrator.Validate(); err != nil {
			return fmt.Errorf("administrator: %w", err)
		}
	}
	for name, cv := range map[string]*health.CodableValue{
		"manufacturer": im.Manufacturer, "route": im.Route, "anatomic-surface": im.AnatomicSurface,
	} {
		if cv != nil {
			if err := cv.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	if im.ExpirationDate != nil {
		if err := im.ExpirationDate.Validate(); err != nil {
			return fmt.Errorf("expiration-date: %w", err)
		}
	}
	return nil
}

func (im *Immunization) Codables() []health.CodableValue {
	return append([]health.CodableValue{im.Name},
		health.CollectCodables(im.Manufacturer, im.Route, im.AnatomicSurface)...)
}

func (im *Immunization) Summary() string {
	s := im.Name.Text
	if im.AdministrationDate != nil {
		s += " on " + im.AdministrationDate.String()
	}
	return s
}
