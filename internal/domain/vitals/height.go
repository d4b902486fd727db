package vitals

import (
	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var HeightTypeID = uuid.MustParse("40750a6a-89b2-455c-bd8d-b420a4cb500b")

func init() {
	health.Register(HeightTypeID, "height", "Height",
		func() health.Data { return &Height{} })
}

// Height is a body height measurement.
type Height struct {
	When  health.DateTime    `xml:"when"`
	Value health.LengthValue `xml:"value"`
}

func (h *Height) TypeID() uuid.UUID   { return HeightTypeID }
func (h *Height) RootElement() string { return "height" }

func (h *Height) Validate() error {
	if err := h.When.Validate(); err != nil {
		return err
	}
	return h.Value.Validate()
}

func (h *Height) Summary() string { return h.Value.String() }
