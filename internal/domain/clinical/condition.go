// Package clinical holds the clinical history item types: conditions,
// allergies, immunizations, medications, and procedures.
package clinical

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var ConditionTypeID = uuid.MustParse("7ea7a1f9-880b-4bd4-b593-f5660f20eda8")

func init() {
	health.Register(ConditionTypeID, "condition", "Condition",
		func() health.Data { return &Condition{} })
}

// Condition is a medical problem or diagnosis.
type Condition struct {
	Name       health.CodableValue    `xml:"name"`
	OnsetDate  *health.ApproxDateTime `xml:"onset-date,omitempty"`
	Status     *health.CodableValue   `xml:"status,omitempty"`
	StopDate   *health.ApproxDateTime `xml:"stop-date,omitempty"`
	StopReason string                 `xml:"stop-reason,omitempty"`
}

func (c *Condition) TypeID() uuid.UUID   { return ConditionTypeID }
func (c *Condition) RootElement() string { return "condition" }

func (c *Condition) Validate() error {
	if err := c.Name.Validate(); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if c.OnsetDate != nil {
		if err := c.OnsetDate.Validate(); err != nil {
			return fmt.Errorf("onset-date: %w", err)
		}
	}
	if c.Status != nil {
		if err := c.Status.Validate(); err != nil {
			return fmt.Errorf("status: %w", err)
		}
	}
	if c.StopDate != nil {
		if err := c.StopDate.Validate(); err != nil {
			return fmt.Errorf("stop-date: %w", err)
		}
	}
	return nil
}

func (c *Condition) Codables() []health.CodableValue {
	return append([]health.CodableValue{c.Name}, health.CollectCodables(c.Status)...)
}

func (c *Condition) Summary() string {
	s := c.Name.Text
	if c.Status != nil {
		s += " (" + c.Status.Text + ")"
	}
	return s
}
