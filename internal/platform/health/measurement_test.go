package health

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestDisplayValue_RoundTrip(t *testing.T) {
	type wrapper struct {
		Display DisplayValue `xml:"display"`
	}

	in := wrapper{Display: DisplayValue{Value: 159.8, Units: "lb", UnitsCode: "lb"}}
	data, err := xml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	s := string(data)
	if !strings.Contains(s, `units="lb"`) {
		t.Errorf("expected units attribute, got %s", s)
	}
	if !strings.Contains(s, ">159.8<") {
		t.Errorf("expected value as character data, got %s", s)
	}

	var out wrapper
	if err := xml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.Display.Value != 159.8 {
		t.Errorf("expected value 159.8, got %g", out.Display.Value)
	}
	if out.Display.Units != "lb" {
		t.Errorf("expected units 'lb', got %q", out.Display.Units)
	}
	if out.Display.UnitsCode != "lb" {
		t.Errorf("expected units-code 'lb', got %q", out.Display.UnitsCode)
	}
}

func TestDisplayValue_Unmarshal_BadNumber(t *testing.T) {
	type wrapper struct {
		Display DisplayValue `xml:"display"`
	}
	var out wrapper
	err := xml.Unmarshal([]byte(`<wrapper><display units="kg">heavy</display></wrapper>`), &out)
	if err == nil {
		t.Fatal("expected error for non-numeric display value")
	}
}

func TestWeightValue_Validate(t *testing.T) {
	w := WeightValue{Kilograms: 72.5}
	if err := w.Validate(); err != nil {
		t.Errorf("expected valid weight, got %v", err)
	}

	w = WeightValue{Kilograms: 0}
	if err := w.Validate(); err == nil {
		t.Error("expected error for zero weight")
	}

	w = WeightValue{Kilograms: -1}
	if err := w.Validate(); err == nil {
		t.Error("expected error for negative weight")
	}
}

func TestWeightValue_String_PrefersDisplay(t *testing.T) {
	w := WeightValue{
		Kilograms: 72.5,
		Display:   &DisplayValue{Value: 159.8, Units: "lb"},
	}
	if got := w.String(); got != "159.8 lb" {
		t.Errorf("expected '159.8 lb', got %q", got)
	}

	w.Display = nil
	if got := w.String(); got != "72.5 kg" {
		t.Errorf("expected '72.5 kg', got %q", got)
	}
}

func TestTemperatureValue_Validate(t *testing.T) {
	v := TemperatureValue{Celsius: 37.2}
	if err := v.Validate(); err != nil {
		t.Errorf("expected valid temperature, got %v", err)
	}

	v = TemperatureValue{Celsius: -300}
	if err := v.Validate(); err == nil {
		t.Error("expected error below absolute zero")
	}
}

func TestBloodGlucoseValue_Validate(t *testing.T) {
	v := BloodGlucoseValue{MmolPerL: 5.5}
	if err := v.Validate(); err != nil {
		t.Errorf("expected valid glucose value, got %v", err)
	}

	v = BloodGlucoseValue{MmolPerL: -0.1}
	if err := v.Validate(); err == nil {
		t.Error("expected error for negative glucose value")
	}
}

func TestPercentage_Validate(t *testing.T) {
	for _, p := range []Percentage{0.0, 0.5, 1.0} {
		if err := p.Validate(); err != nil {
			t.Errorf("expected %g valid, got %v", float64(p), err)
		}
	}
	for _, p := range []Percentage{-0.01, 1.01} {
		if err := p.Validate(); err == nil {
			t.Errorf("expected error for %g", float64(p))
		}
	}
}

func TestDisplayValue_Validate_RequiresUnits(t *testing.T) {
	d := DisplayValue{Value: 5}
	if err := d.Validate(); err == nil {
		t.Error("expected error for display without units")
	}
}
