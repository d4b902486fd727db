package vitals

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var PeakFlowTypeID = uuid.MustParse("5d8419af-90f0-4875-a370-0f881c18f6b3")

func init() {
	health.Register(PeakFlowTypeID, "peak-flow", "PeakFlow",
		func() health.Data { return &PeakFlow{} })
}

// PeakFlow is a peak expiratory flow reading from a spirometer or flow meter.
type PeakFlow struct {
	When             health.ApproxDateTime `xml:"when"`
	Pef              health.FlowValue      `xml:"pef"`
	MeasurementFlags *health.CodableValue  `xml:"measurement-flags,omitempty"`
}

func (p *PeakFlow) TypeID() uuid.UUID   { return PeakFlowTypeID }
func (p *PeakFlow) RootElement() string { return "peak-flow" }

func (p *PeakFlow) Validate() error {
	if err := p.When.Validate(); err != nil {
		return err
	}
	if err := p.Pef.Validate(); err != nil {
		return err
	}
	if p.Pef.LitersPerSecond == 0 {
		return fmt.Errorf("peak expiratory flow must be positive")
	}
	if p.MeasurementFlags != nil {
		if err := p.MeasurementFlags.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *PeakFlow) Summary() string { return p.Pef.String() }

func (p *PeakFlow) Codables() []health.CodableValue {
	return health.CollectCodables(p.MeasurementFlags)
}
