package clinical

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var ProcedureTypeID = uuid.MustParse("df4db479-a1ba-42a2-8714-2b083b88150f")

func init() {
	health.Register(ProcedureTypeID, "procedure", "Procedure",
		func() health.Data { return &Procedure{} })
}

// Procedure records a medical or surgical procedure.
type Procedure struct {
	When              health.ApproxDateTime `xml:"when"`
	Name              health.CodableValue   `xml:"name"`
	AnatomicLocation  *health.CodableValue  `xml:"anatomic-location,omitempty"`
	PrimaryProvider   *health.Person        `xml:"primary-provider,omitempty"`
	SecondaryProvider *health.Person        `xml:"secondary-provider,omitempty"`
}

func (p *Procedure) TypeID() uuid.UUID   { return ProcedureTypeID }
func (p *Procedure) RootElement() string { return "procedure" }

func (p *Procedure) Validate() error {
	if err := p.When.Validate(); err != nil {
		return fmt.Errorf("when: %w", err)
	}
	if err := p.Name.Validate(); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if p.AnatomicLocation != nil {
		if err := p.AnatomicLocation.Validate(); err != nil {
			return fmt.Errorf("anatomic-location: %w", err)
		}
	}
	if p.PrimaryProvider != nil {
		if err := p.PrimaryProvider.Validate(); err != nil {
			return fmt.Errorf("primary-provider: %w", err)
		}
	}
	if p.SecondaryProvider != nil {
		if err := p.SecondaryProvider.Validate(); err != nil {
			return fmt.Errorf("secondary-provider: %w", err)
		}
	}
	return nil
}

func (p *Procedure) Codables() []health.CodableValue {
	return append([]health.CodableValue{p.Name}, health.CollectCodables(p.AnatomicLocation)...)
}

func (p *Procedure) Summary() string {
	return p.Name.Text + " (" + p.When.String() + ")"
}
