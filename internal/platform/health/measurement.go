package health

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// DisplayValue carries the value as the user entered it, in their chosen
// units, alongside the canonical metric value stored by the measurement.
type DisplayValue struct {
	Value     float64
	Units     string
	UnitsCode string
	Text      string
}

// MarshalXML writes the value as character data with units attributes,
// matching the display element shape used throughout the catalogue.
func (d DisplayValue) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = start.Attr[:0]
	if d.Units != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "units"}, Value: d.Units})
	}
	if d.UnitsCode != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "units-code"}, Value: d.UnitsCode})
	}
	if d.Text != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "text"}, Value: d.Text})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	val := strconv.FormatFloat(d.Value, 'g', -1, 64)
	if err := e.EncodeToken(xml.CharData(val)); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML reads the display element produced by MarshalXML.
func (d *DisplayValue) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "units":
			d.Units = attr.Value
		case "units-code":
			d.UnitsCode = attr.Value
		case "text":
			d.Text = attr.Value
		}
	}
	var raw string
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("display value %q is not a number: %w", raw, err)
	}
	d.Value = v
	return nil
}

func (d *DisplayValue) Validate() error {
	if isBlank(d.Units) {
		return fmt.Errorf("display: units must not be empty")
	}
	return nil
}

// WeightValue is a mass stored canonically in kilograms.
type WeightValue struct {
	Kilograms float64       `xml:"kg"`
	Display   *DisplayValue `xml:"display,omitempty"`
}

func (w *WeightValue) Validate() error {
	if w.Kilograms <= 0 {
		return fmt.Errorf("weight: kilograms must be positive, got %g", w.Kilograms)
	}
	return validateDisplay(w.Display)
}

func (w WeightValue) String() string {
	if w.Display != nil {
		return fmt.Sprintf("%g %s", w.Display.Value, w.Display.Units)
	}
	return fmt.Sprintf("%g kg", w.Kilograms)
}

// LengthValue is a length stored canonically in meters.
type LengthValue struct {
	Meters  float64       `xml:"m"`
	Display *DisplayValue `xml:"display,omitempty"`
}

func (l *LengthValue) Validate() error {
	if l.Meters <= 0 {
		return fmt.Errorf("length: meters must be positive, got %g", l.Meters)
	}
	return validateDisplay(l.Display)
}

func (l LengthValue) String() string {
	if l.Display != nil {
		return fmt.Sprintf("%g %s", l.Display.Value, l.Display.Units)
	}
	return fmt.Sprintf("%g m", l.Meters)
}

// TemperatureValue is a temperature stored canonically in degrees Celsius.
type TemperatureValue struct {
	Celsius float64       `xml:"celsius"`
	Display *DisplayValue `xml:"display,omitempty"`
}

func (t *TemperatureValue) Validate() error {
	// Absolute zero bounds the physically meaningful range.
	if t.Celsius < -273.15 {
		return fmt.Errorf("temperature: %g below absolute zero", t.Celsius)
	}
	return validateDisplay(t.Display)
}

func (t TemperatureValue) String() string {
	if t.Display != nil {
		return fmt.Sprintf("%g %s", t.Display.Value, t.Display.Units)
	}
	return fmt.Sprintf("%g C", t.Celsius)
}

// BloodGlucoseValue is a glucose concentration stored in mmol/L.
type BloodGlucoseValue struct {
	MmolPerL float64       `xml:"mmolPerL"`
	Display  *DisplayValue `xml:"display,omitempty"`
}

func (b *BloodGlucoseValue) Validate() error {
	if b.MmolPerL < 0 {
		return fmt.Errorf("blood-glucose: mmol/L must not be negative, got %g", b.MmolPerL)
	}
	return validateDisplay(b.Display)
}

func (b BloodGlucoseValue) String() string {
	if b.Display != nil {
		return fmt.Sprintf("%g %s", b.Display.Value, b.Display.Units)
	}
	return fmt.Sprintf("%g mmol/L", b.MmolPerL)
}

// ConcentrationValue is a generic substance concentration in mmol/L, used by
// the cholesterol profile.
type ConcentrationValue struct {
	MmolPerL float64       `xml:"mmolPerL"`
	Display  *DisplayValue `xml:"display,omitempty"`
}

func (c *ConcentrationValue) Validate() error {
	if c.MmolPerL < 0 {
		return fmt.Errorf("concentration: mmol/L must not be negative, got %g", c.MmolPerL)
	}
	return validateDisplay(c.Display)
}

func (c ConcentrationValue) String() string {
	if c.Display != nil {
		return fmt.Sprintf("%g %s", c.Display.Value, c.Display.Units)
	}
	return fmt.Sprintf("%g mmol/L", c.MmolPerL)
}

// FlowValue is a volumetric flow in liters per second.
type FlowValue struct {
	LitersPerSecond float64       `xml:"liters-per-second"`
	Display         *DisplayValue `xml:"display,omitempty"`
}

func (f *FlowValue) Validate() error {
	if f.LitersPerSecond < 0 {
		return fmt.Errorf("flow: liters-per-second must not be negative, got %g", f.LitersPerSecond)
	}
	return validateDisplay(f.Display)
}

func (f FlowValue) String() string {
	if f.Display != nil {
		return fmt.Sprintf("%g %s", f.Display.Value, f.Display.Units)
	}
	return fmt.Sprintf("%g L/s", f.LitersPerSecond)
}

// Percentage is a fraction constrained to 0.0 through 1.0 inclusive.
type Percentage float64

func (p Percentage) Validate() error {
	if p < 0.0 || p > 1.0 {
		return fmt.Errorf("percentage: %g out of range 0.0-1.0", float64(p))
	}
	return nil
}

func (p Percentage) String() string {
	return fmt.Sprintf("%.1f%%", float64(p)*100)
}

func validateDisplay(d *DisplayValue) error {
	if d == nil {
		return nil
	}
	return d.Validate()
}
