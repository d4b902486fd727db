package clinical

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var AllergyTypeID = uuid.MustParse("52bf9104-2c5e-4f1f-a66d-552ebcc53df7")

func init() {
	health.Register(AllergyTypeID, "allergy", "Allergy",
		func() health.Data { return &Allergy{} })
}

// Allergy records a sensitivity to a substance and how it is treated.
type Allergy struct {
	Name              health.CodableValue    `xml:"name"`
	Reaction          *health.CodableValue   `xml:"reaction,omitempty"`
	FirstObserved     *health.ApproxDateTime `xml:"first-observed,omitempty"`
	AllergenType      *health.CodableValue   `xml:"allergen-type,omitempty"`
	AllergenCode      *health.CodableValue   `xml:"allergen-code,omitempty"`
	TreatmentProvider *health.Person         `xml:"treatment-provider,omitempty"`
	Treatment         *health.CodableValue   `xml:"treatment,omitempty"`
	IsNegated         *bool                  `xml:"is-negated,omitempty"`
}

func (a *Allergy) TypeID() uuid.UUID   { return AllergyTypeID }
func (a *Allergy) RootElement() string { return "allergy" }

func (a *Allergy) Validate() error {
	if err := a.Name.Validate(); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	for name, cv := range map[string]*health.CodableValue{
		"reaction": a.Reaction, "allergen-type": a.AllergenType,
		"allergen-code": a.AllergenCode, "treatment": a.Treatment,
	} {
		if cv != nil {
			if err := cv.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	if a.FirstObserved != nil {
		if err := a.FirstObserved.Validate(); err != nil {
			return fmt.Errorf("first-observed: %w", err)
		}
	}
	if a.TreatmentProvider != nil {
		if err := a.TreatmentProvider.Validate(); err != nil {
			return fmt.Errorf("treatment-provider: %w", err)
		}
	}
	return nil
}

func (a *Allergy) Codables() []health.CodableValue {
	return append([]health.CodableValue{a.Name},
		health.CollectCodables(a.Reaction, a.AllergenType, a.AllergenCode, a.Treatment)...)
}

func (a *Allergy) Summary() string {
	s := a.Name.Text
	if a.Reaction != nil {
		s += ": " + a.Reaction.Text
	}
	if a.IsNegated != nil && *a.IsNegated {
		s += " (negated)"
	}
	return s
}
