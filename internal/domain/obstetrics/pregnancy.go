// Package obstetrics holds the pregnancy item type and its delivery
// sub-records.
package obstetrics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var PregnancyTypeID = uuid.MustParse("46d485cf-2b84-429d-9159-83152ba801f4")

func init() {
	health.Register(PregnancyTypeID, "pregnancy", "Pregnancy",
		func() health.Data { return &Pregnancy{} })
}

// Delivery records the birth of one child within a pregnancy.
type Delivery struct {
	Location      string                 `xml:"location,omitempty"`
	Time          *health.ApproxDateTime `xml:"time-of-delivery,omitempty"`
	LaborHours    *float64               `xml:"labor-duration,omitempty"`
	Complications *health.CodableValue   `xml:"complications,omitempty"`
	Anesthesia    *health.CodableValue   `xml:"anesthesia,omitempty"`
	Method        *health.CodableValue   `xml:"delivery-method,omitempty"`
	Outcome       *health.CodableValue   `xml:"outcome,omitempty"`
	BabyName      *health.Name           `xml:"baby-name,omitempty"`
	BabyWeight    *health.WeightValue    `xml:"baby-weight,omitempty"`
	Note          string                 `xml:"note,omitempty"`
}

func (d *Delivery) Validate() error {
	if d.Time != nil {
		if err := d.Time.Validate(); err != nil {
			return fmt.Errorf("time-of-delivery: %w", err)
		}
	}
	if d.LaborHours != nil && *d.LaborHours < 0 {
		return fmt.Errorf("labor-duration must not be negative, got %g", *d.LaborHours)
	}
	for name, cv := range map[string]*health.CodableValue{
		"complications": d.Complications, "anesthesia": d.Anesthesia,
		"delivery-method": d.Method, "outcome": d.Outcome,
	} {
		if cv != nil {
			if err := cv.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	if d.BabyName != nil {
		if err := d.BabyName.Validate(); err != nil {
			return fmt.Errorf("baby-name: %w", err)
		}
	}
	if d.BabyWeight != nil {
		if err := d.BabyWeight.Validate(); err != nil {
			return fmt.Errorf("baby-weight: %w", err)
		}
	}
	return nil
}

// Pregnancy records a pregnancy. Either the due date or the last menstrual
// period must be present to anchor the record in time.
type Pregnancy struct {
	DueDate             *health.ApproxDate   `xml:"due-date,omitempty"`
	LastMenstrualPeriod *health.ApproxDate   `xml:"last-menstrual-period,omitempty"`
	ConceptionMethod    *health.CodableValue `xml:"conception-method,omitempty"`
	FetusCount          *int                 `xml:"fetus-count,omitempty"`
	GestationalAge      *int                 `xml:"gestational-age,omitempty"`
	Deliveries          []Delivery           `xml:"delivery,omitempty"`
}

func (p *Pregnancy) TypeID() uuid.UUID   { return PregnancyTypeID }
func (p *Pregnancy) RootElement() string { return "pregnancy" }

func (p *Pregnancy) Validate() error {
	if p.DueDate == nil && p.LastMenstrualPeriod == nil {
		return fmt.Errorf("pregnancy requires a due date or last menstrual period")
	}
	if p.DueDate != nil {
		if err := p.DueDate.Validate(); err != nil {
			return fmt.Errorf("due-date: %w", err)
		}
	}
	if p.LastMenstrualPeriod != nil {
		if err := p.LastMenstrualPeriod.Validate(); err != nil {
			return fmt.Errorf("last-menstrual-period: %w", err)
		}
	}
	if p.ConceptionMethod != nil {
		if err := p.ConceptionMethod.Validate(); err != nil {
			return fmt.Errorf("conception-method: %w", err)
		}
	}
	if p.FetusCount != nil && *p.FetusCount < 0 {
		return fmt.Errorf("fetus-count must not be negative, got %d", *p.FetusCount)
	}
	if p.GestationalAge != nil && *p.GestationalAge <= 0 {
		return fmt.Errorf("gestational-age must be positive, got %d", *p.GestationalAge)
	}
	for i := range p.Deliveries {
		if err := p.Deliveries[i].Validate(); err != nil {
			return fmt.Errorf("delivery %d: %w", i+1, err)
		}
	}
	return nil
}

func (p *Pregnancy) Codables() []health.CodableValue {
	out := health.CollectCodables(p.ConceptionMethod)
	for i := range p.Deliveries {
		d := &p.Deliveries[i]
		out = append(out, health.CollectCodables(d.Complications, d.Anesthesia, d.Method, d.Outcome)...)
	}
	return out
}

func (p *Pregnancy) Summary() string {
	if p.DueDate != nil {
		return "due " + p.DueDate.String()
	}
	return "last menstrual period " + p.LastMenstrualPeriod.String()
}
