package health

import (
	"fmt"
	"time"
)

// Date is an exact calendar date.
type Date struct {
	Year  int `xml:"y"`
	Month int `xml:"m"`
	Day   int `xml:"d"`
}

func (d *Date) Validate() error {
	if d.Year < 1000 || d.Year > 9999 {
		return fmt.Errorf("date: year %d out of range 1000-9999", d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("date: month %d out of range 1-12", d.Month)
	}
	if d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("date: day %d out of range 1-31", d.Day)
	}
	return nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time is an exact time of day. Seconds and milliseconds are optional.
type Time struct {
	Hour   int  `xml:"h"`
	Minute int  `xml:"m"`
	Second *int `xml:"s,omitempty"`
	Millis *int `xml:"f,omitempty"`
}

func (t *Time) Validate() error {
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("time: hour %d out of range 0-23", t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("time: minute %d out of range 0-59", t.Minute)
	}
	if t.Second != nil && (*t.Second < 0 || *t.Second > 59) {
		return fmt.Errorf("time: second %d out of range 0-59", *t.Second)
	}
	if t.Millis != nil && (*t.Millis < 0 || *t.Millis > 999) {
		return fmt.Errorf("time: millisecond %d out of range 0-999", *t.Millis)
	}
	return nil
}

func (t Time) String() string {
	if t.Second != nil {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, *t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// DateTime is the exact "when" timestamp carried by measurement items.
type DateTime struct {
	Date Date          `xml:"date"`
	Time *Time         `xml:"time,omitempty"`
	TZ   *CodableValue `xml:"tz,omitempty"`
}

// NewDateTime builds a DateTime from a time.Time, truncated to seconds.
func NewDateTime(t time.Time) DateTime {
	sec := t.Second()
	return DateTime{
		Date: Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()},
		Time: &Time{Hour: t.Hour(), Minute: t.Minute(), Second: &sec},
	}
}

func (dt *DateTime) Validate() error {
	if err := dt.Date.Validate(); err != nil {
		return err
	}
	if dt.Time != nil {
		if err := dt.Time.Validate(); err != nil {
			return err
		}
	}
	if dt.TZ != nil {
		if err := dt.TZ.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (dt DateTime) String() string {
	if dt.Time != nil {
		return dt.Date.String() + " " + dt.Time.String()
	}
	return dt.Date.String()
}

// ApproxDate is a partially specified calendar date: the year is required,
// month and day narrow it down when known.
type ApproxDate struct {
	Year  int  `xml:"y"`
	Month *int `xml:"m,omitempty"`
	Day   *int `xml:"d,omitempty"`
}

func (d *ApproxDate) Validate() error {
	if d.Year < 1000 || d.Year > 9999 {
		return fmt.Errorf("approx-date: year %d out of range 1000-9999", d.Year)
	}
	if d.Month != nil && (*d.Month < 1 || *d.Month > 12) {
		return fmt.Errorf("approx-date: month %d out of range 1-12", *d.Month)
	}
	if d.Day != nil {
		if d.Month == nil {
			return fmt.Errorf("approx-date: day requires a month")
		}
		if *d.Day < 1 || *d.Day > 31 {
			return fmt.Errorf("approx-date: day %d out of range 1-31", *d.Day)
		}
	}
	return nil
}

func (d ApproxDate) String() string {
	switch {
	case d.Day != nil:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, *d.Month, *d.Day)
	case d.Month != nil:
		return fmt.Sprintf("%04d-%02d", d.Year, *d.Month)
	default:
		return fmt.Sprintf("%04d", d.Year)
	}
}

// ApproxTime is a partially specified time of day.
type ApproxTime struct {
	Hour   int  `xml:"h"`
	Minute int  `xml:"m"`
	Second *int `xml:"s,omitempty"`
	Millis *int `xml:"f,omitempty"`
}

func (t *ApproxTime) Validate() error {
	exact := Time{Hour: t.Hour, Minute: t.Minute, Second: t.Second, Millis: t.Millis}
	return exact.Validate()
}

func (t ApproxTime) String() string {
	return Time{Hour: t.Hour, Minute: t.Minute, Second: t.Second}.String()
}

// StructuredApprox is the structured arm of an ApproxDateTime.
type StructuredApprox struct {
	Date ApproxDate    `xml:"date"`
	Time *ApproxTime   `xml:"time,omitempty"`
	TZ   *CodableValue `xml:"tz,omitempty"`
}

// ApproxDateTime is a calendar value that is either structured (a partial
// date, optionally with time and zone) or purely descriptive ("last summer").
// Exactly one of the two arms must be present.
type ApproxDateTime struct {
	Structured  *StructuredApprox `xml:"structured,omitempty"`
	Descriptive string            `xml:"descriptive,omitempty"`
}

// NewApproxDateTime returns a structured ApproxDateTime for the given year,
// month, and day. Zero month or day leaves the value partial.
func NewApproxDateTime(year, month, day int) ApproxDateTime {
	d := ApproxDate{Year: year}
	if month > 0 {
		d.Month = &month
		if day > 0 {
			d.Day = &day
		}
	}
	return ApproxDateTime{Structured: &StructuredApprox{Date: d}}
}

func (a *ApproxDateTime) Validate() error {
	if a.Structured == nil && isBlank(a.Descriptive) {
		return fmt.Errorf("approx-date-time: either structured or descriptive is required")
	}
	if a.Structured != nil && a.Descriptive != "" {
		return fmt.Errorf("approx-date-time: structured and descriptive are mutually exclusive")
	}
	if a.Structured != nil {
		if err := a.Structured.Date.Validate(); err != nil {
			return err
		}
		if a.Structured.Time != nil {
			if err := a.Structured.Time.Validate(); err != nil {
				return err
			}
		}
		if a.Structured.TZ != nil {
			if err := a.Structured.TZ.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a ApproxDateTime) String() string {
	if a.Structured == nil {
		return a.Descriptive
	}
	s := a.Structured.Date.String()
	if a.Structured.Time != nil {
		s += " " + a.Structured.Time.String()
	}
	return s
}

// Duration is an approximate interval with a required start and optional end.
type Duration struct {
	Start ApproxDateTime  `xml:"start-date"`
	End   *ApproxDateTime `xml:"end-date,omitempty"`
}

func (d *Duration) Validate() error {
	if err := d.Start.Validate(); err != nil {
		return fmt.Errorf("duration start: %w", err)
	}
	if d.End != nil {
		if err := d.End.Validate(); err != nil {
			return fmt.Errorf("duration end: %w", err)
		}
	}
	return nil
}
