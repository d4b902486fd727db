package labs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var HbA1CTypeID = uuid.MustParse("227f55fb-1001-4d4e-9f6a-8d893e07b451")

func init() {
	health.Register(HbA1CTypeID, "HbA1C", "HbA1C",
		func() health.Data { return &HbA1C{} })
}

// HbA1C is a glycated hemoglobin result expressed as a fraction of total
// hemoglobin.
type HbA1C struct {
	When        health.DateTime      `xml:"when"`
	Value       health.Percentage    `xml:"value"`
	AssayMethod *health.CodableValue `xml:"HbA1C-assay-method,omitempty"`
}

func (h *HbA1C) TypeID() uuid.UUID   { return HbA1CTypeID }
func (h *HbA1C) RootElement() string { return "HbA1C" }

func (h *HbA1C) Validate() error {
	if err := h.When.Validate(); err != nil {
		return err
	}
	if err := h.Value.Validate(); err != nil {
		return err
	}
	if h.AssayMethod != nil {
		if err := h.AssayMethod.Validate(); err != nil {
			return fmt.Errorf("HbA1C-assay-method: %w", err)
		}
	}
	return nil
}

func (h *HbA1C) Summary() string { return h.Value.String() }

func (h *HbA1C) Codables() []health.CodableValue {
	return health.CollectCodables(h.AssayMethod)
}
