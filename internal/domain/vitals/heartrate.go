package vitals

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var HeartRateTypeID = uuid.MustParse("b81eb4a6-6eac-4292-ae93-3872d6870994")

func init() {
	health.Register(HeartRateTypeID, "heart-rate", "HeartRate",
		func() health.Data { return &HeartRate{} })
}

// HeartRate is a heart rate measurement in beats per minute.
type HeartRate struct {
	When                  health.DateTime      `xml:"when"`
	Value                 int                  `xml:"value"`
	MeasurementMethod     *health.CodableValue `xml:"measurement-method,omitempty"`
	MeasurementConditions *health.CodableValue `xml:"measurement-conditions,omitempty"`
	MeasurementFlags      *health.CodableValue `xml:"measurement-flags,omitempty"`
}

func (h *HeartRate) TypeID() uuid.UUID   { return HeartRateTypeID }
func (h *HeartRate) RootElement() string { return "heart-rate" }

func (h *HeartRate) Validate() error {
	if err := h.When.Validate(); err != nil {
		return err
	}
	if h.Value <= 0 {
		return fmt.Errorf("heart rate must be positive, got %d", h.Value)
	}
	for _, cv := range []*health.CodableValue{h.MeasurementMethod, h.MeasurementConditions, h.MeasurementFlags} {
		if cv != nil {
			if err := cv.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *HeartRate) Summary() string {
	return fmt.Sprintf("%d bpm", h.Value)
}

func (h *HeartRate) Codables() []health.CodableValue {
	return health.CollectCodables(h.MeasurementMethod, h.MeasurementConditions, h.MeasurementFlags)
}
