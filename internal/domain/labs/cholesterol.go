package labs

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var CholesterolProfileTypeID = uuid.MustParse("98f76958-e34f-459b-a760-83c1699add38")

func init() {
	health.Register(CholesterolProfileTypeID, "cholesterol-profile", "CholesterolProfile",
		func() health.Data { return &CholesterolProfile{} })
}

// CholesterolProfile is a lipid panel. Every component is optional but at
// least one must be present.
type CholesterolProfile struct {
	When         health.DateTime            `xml:"when"`
	LDL          *health.ConcentrationValue `xml:"ldl,omitempty"`
	HDL          *health.ConcentrationValue `xml:"hdl,omitempty"`
	Total        *health.ConcentrationValue `xml:"total-cholesterol,omitempty"`
	Triglyceride *health.ConcentrationValue `xml:"triglyceride,omitempty"`
}

func (c *CholesterolProfile) TypeID() uuid.UUID   { return CholesterolProfileTypeID }
func (c *CholesterolProfile) RootElement() string { return "cholesterol-profile" }

func (c *CholesterolProfile) Validate() error {
	if err := c.When.Validate(); err != nil {
		return err
	}
	if c.LDL == nil && c.HDL == nil && c.Total == nil && c.Triglyceride == nil {
		return fmt.Errorf("cholesterol profile requires at least one component")
	}
	for name, v := range map[string]*health.ConcentrationValue{
		"ldl": c.LDL, "hdl": c.HDL, "total-cholesterol": c.Total, "triglyceride": c.Triglyceride,
	} {
		if v != nil {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func (c *CholesterolProfile) Summary() string {
	var parts []string
	if c.Total != nil {
		parts = append(parts, "total "+c.Total.String())
	}
	if c.LDL != nil {
		parts = append(parts, "LDL "+c.LDL.String())
	}
	if c.HDL != nil {
		parts = append(parts, "HDL "+c.HDL.String())
	}
	if c.Triglyceride != nil {
		parts = append(parts, "triglycerides "+c.Triglyceride.String())
	}
	return strings.Join(parts, ", ")
}
