package health

import (
	"cmp"
	"fmt"
)

// Range is an inclusive interval over any ordered scalar.
type Range[T cmp.Ordered] struct {
	Minimum T `xml:"minimum-value"`
	Maximum T `xml:"maximum-value"`
}

func (r *Range[T]) Validate() error {
	if r.Minimum > r.Maximum {
		return fmt.Errorf("range: minimum %v greater than maximum %v", r.Minimum, r.Maximum)
	}
	return nil
}

// Contains reports whether v falls inside the range, inclusive at both ends.
func (r Range[T]) Contains(v T) bool {
	return v >= r.Minimum && v <= r.Maximum
}

// DoubleRange is an inclusive range of floating point values.
type DoubleRange = Range[float64]

// Int32Range is an inclusive range of integer values.
type Int32Range = Range[int32]

// TemperatureRange is an inclusive temperature interval, such as the band a
// measuring device can report within.
type TemperatureRange struct {
	Minimum TemperatureValue `xml:"minimum-temperature"`
	Maximum TemperatureValue `xml:"maximum-temperature"`
}

func (r *TemperatureRange) Validate() error {
	if err := r.Minimum.Validate(); err != nil {
		return err
	}
	if err := r.Maximum.Validate(); err != nil {
		return err
	}
	if r.Minimum.Celsius > r.Maximum.Celsius {
		return fmt.Errorf("temperature-range: minimum %g greater than maximum %g",
			r.Minimum.Celsius, r.Maximum.Celsius)
	}
	return nil
}

// Contains reports whether t falls inside the range, inclusive at both ends.
func (r TemperatureRange) Contains(t TemperatureValue) bool {
	return t.Celsius >= r.Minimum.Celsius && t.Celsius <= r.Maximum.Celsius
}
