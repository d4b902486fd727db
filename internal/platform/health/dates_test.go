package health

import (
	"testing"
	"time"
)

func TestDate_Validate_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		d    Date
		ok   bool
	}{
		{"valid", Date{Year: 2020, Month: 6, Day: 15}, true},
		{"min year", Date{Year: 1000, Month: 1, Day: 1}, true},
		{"max year", Date{Year: 9999, Month: 12, Day: 31}, true},
		{"year too small", Date{Year: 999, Month: 1, Day: 1}, false},
		{"year too large", Date{Year: 10000, Month: 1, Day: 1}, false},
		{"month zero", Date{Year: 2020, Month: 0, Day: 1}, false},
		{"month thirteen", Date{Year: 2020, Month: 13, Day: 1}, false},
		{"day zero", Date{Year: 2020, Month: 1, Day: 0}, false},
		{"day thirty-two", Date{Year: 2020, Month: 1, Day: 32}, false},
	}

	for _, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: expected valid, got %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestNewDateTime(t *testing.T) {
	ts := time.Date(2023, time.March, 14, 9, 26, 53, 0, time.UTC)
	dt := NewDateTime(ts)

	if dt.Date.Year != 2023 || dt.Date.Month != 3 || dt.Date.Day != 14 {
		t.Errorf("expected date 2023-03-14, got %s", dt.Date)
	}
	if dt.Time == nil {
		t.Fatal("expected time to be set")
	}
	if dt.Time.Hour != 9 || dt.Time.Minute != 26 {
		t.Errorf("expected time 09:26, got %s", dt.Time)
	}
	if dt.Time.Second == nil || *dt.Time.Second != 53 {
		t.Error("expected seconds 53")
	}
	if got := dt.String(); got != "2023-03-14 09:26:53" {
		t.Errorf("expected '2023-03-14 09:26:53', got %q", got)
	}
}

func TestApproxDate_Validate(t *testing.T) {
	month := 5
	day := 20

	d := ApproxDate{Year: 2021}
	if err := d.Validate(); err != nil {
		t.Errorf("year-only date should be valid, got %v", err)
	}

	d = ApproxDate{Year: 2021, Month: &month, Day: &day}
	if err := d.Validate(); err != nil {
		t.Errorf("full date should be valid, got %v", err)
	}

	d = ApproxDate{Year: 2021, Day: &day}
	if err := d.Validate(); err == nil {
		t.Error("expected error for day without month")
	}
}

func TestApproxDate_String(t *testing.T) {
	month := 5
	day := 2

	if got := (ApproxDate{Year: 2021}).String(); got != "2021" {
		t.Errorf("expected '2021', got %q", got)
	}
	if got := (ApproxDate{Year: 2021, Month: &month}).String(); got != "2021-05" {
		t.Errorf("expected '2021-05', got %q", got)
	}
	if got := (ApproxDate{Year: 2021, Month: &month, Day: &day}).String(); got != "2021-05-02" {
		t.Errorf("expected '2021-05-02', got %q", got)
	}
}

func TestApproxDateTime_Validate_MutuallyExclusive(t *testing.T) {
	a := ApproxDateTime{}
	if err := a.Validate(); err == nil {
		t.Error("expected error when both arms are empty")
	}

	a = NewApproxDateTime(2022, 0, 0)
	a.Descriptive = "sometime in 2022"
	if err := a.Validate(); err == nil {
		t.Error("expected error when both arms are set")
	}

	a = ApproxDateTime{Descriptive: "last summer"}
	if err := a.Validate(); err != nil {
		t.Errorf("descriptive-only should be valid, got %v", err)
	}
	if a.String() != "last summer" {
		t.Errorf("expected 'last summer', got %q", a.String())
	}
}

func TestTime_Validate_Boundaries(t *testing.T) {
	bad := []Time{
		{Hour: -1, Minute: 0},
		{Hour: 24, Minute: 0},
		{Hour: 0, Minute: 60},
	}
	for _, tm := range bad {
		if err := tm.Validate(); err == nil {
			t.Errorf("expected error for %+v", tm)
		}
	}

	sec := 61
	tm := Time{Hour: 1, Minute: 2, Second: &sec}
	if err := tm.Validate(); err == nil {
		t.Error("expected error for second out of range")
	}
}

func TestDuration_Validate(t *testing.T) {
	d := Duration{Start: NewApproxDateTime(2020, 1, 1)}
	if err := d.Validate(); err != nil {
		t.Errorf("expected valid duration, got %v", err)
	}

	end := ApproxDateTime{}
	d.End = &end
	if err := d.Validate(); err == nil {
		t.Error("expected error for invalid end date")
	}
}
