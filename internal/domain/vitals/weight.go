package vitals

import (
	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var WeightTypeID = uuid.MustParse("3d34d87e-7fc1-4153-800f-f56592cb0d17")

func init() {
	health.Register(WeightTypeID, "weight", "Weight",
		func() health.Data { return &Weight{} })
}

// Weight is a body weight measurement.
type Weight struct {
	When  health.DateTime    `xml:"when"`
	Value health.WeightValue `xml:"value"`
}

func (w *Weight) TypeID() uuid.UUID   { return WeightTypeID }
func (w *Weight) RootElement() string { return "weight" }

func (w *Weight) Validate() error {
	if err := w.When.Validate(); err != nil {
		return err
	}
	return w.Value.Validate()
}

func (w *Weight) Summary() string { return w.Value.String() }
