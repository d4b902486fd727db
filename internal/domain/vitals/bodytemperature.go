package vitals

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var BodyTemperatureTypeID = uuid.MustParse("08d06cf6-0b16-4f2e-b538-7da5b3e1e54d")

// thermometerBound is the band a clinical thermometer can report. Readings
// outside it are device errors, not vital signs.
var thermometerBound = health.TemperatureRange{
	Minimum: health.TemperatureValue{Celsius: 20},
	Maximum: health.TemperatureValue{Celsius: 45},
}

func init() {
	health.Register(BodyTemperatureTypeID, "body-temperature", "BodyTemperature",
		func() health.Data { return &BodyTemperature{} })
}

// BodyTemperature is a body temperature reading.
type BodyTemperature struct {
	When  health.DateTime         `xml:"when"`
	Value health.TemperatureValue `xml:"value"`
	Site  *health.CodableValue    `xml:"measurement-site,omitempty"`
}

func (b *BodyTemperature) TypeID() uuid.UUID   { return BodyTemperatureTypeID }
func (b *BodyTemperature) RootElement() string { return "body-temperature" }

func (b *BodyTemperature) Validate() error {
	if err := b.When.Validate(); err != nil {
		return err
	}
	if err := b.Value.Validate(); err != nil {
		return err
	}
	if !thermometerBound.Contains(b.Value) {
		return fmt.Errorf("temperature %g outside the readable band %g-%g",
			b.Value.Celsius, thermometerBound.Minimum.Celsius, thermometerBound.Maximum.Celsius)
	}
	if b.Site != nil {
		if err := b.Site.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (b *BodyTemperature) Summary() string { return b.Value.String() }

func (b *BodyTemperature) Codables() []health.CodableValue {
	return health.CollectCodables(b.Site)
}
