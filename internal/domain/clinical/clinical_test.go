package clinical

import (
	"strings"
	"testing"

	"github.com/healthrec/healthrec/internal/platform/health"
)

func TestCondition_RoundTrip(t *testing.T) {
	onset := health.NewApproxDateTime(2019, 11, 0)
	status := health.NewCodedValue("Active", "active", "condition-occurrence", "wc")
	in := &Condition{
		Name:      health.NewCodedValue("Migraine", "37796009", "SNOMED CT", "snomed"),
		OnsetDate: &onset,
		Status:    &status,
	}

	data, err := health.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	item, err := health.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	out := item.(*Condition)
	if out.Name.Text != "Migraine" {
		t.Errorf("expected name 'Migraine', got %q", out.Name.Text)
	}
	if out.OnsetDate == nil || out.OnsetDate.String() != "2019-11" {
		t.Error("expected partial onset date to survive round trip")
	}
	if out.Summary() != "Migraine (Active)" {
		t.Errorf("unexpected summary %q", out.Summary())
	}
}

func TestCondition_Validate_RequiresName(t *testing.T) {
	c := &Condition{}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for condition without name")
	}
}

func TestCondition_StopReasonOptional(t *testing.T) {
	in := &Condition{Name: health.NewCodableValue("Asthma"), StopReason: "resolved in childhood"}

	data, err := health.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	item, err := health.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if item.(*Condition).StopReason != "resolved in childhood" {
		t.Error("expected stop reason to survive round trip")
	}
}

func TestAllergy_RoundTrip(t *testing.T) {
	reaction := health.NewCodableValue("Hives")
	provider := health.Person{Name: health.Name{Full: "Dr. Philip Marlowe"}, Organization: "Bay Clinic"}
	in := &Allergy{
		Name:              health.NewCodedValue("Penicillin", "7980", "RxNorm", "wc"),
		Reaction:          &reaction,
		TreatmentProvider: &provider,
	}

	data, err := health.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	item, err := health.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	out := item.(*Allergy)
	if out.TreatmentProvider == nil || out.TreatmentProvider.Name.Full != "Dr. Philip Marlowe" {
		t.Error("expected treatment provider to survive round trip")
	}
	if out.Summary() != "Penicillin: Hives" {
		t.Errorf("unexpected summary %q", out.Summary())
	}
}

func TestAllergy_Validate_ProviderNeedsName(t *testing.T) {
	a := &Allergy{
		Name:              health.NewCodableValue("Peanuts"),
		TreatmentProvider: &health.Person{},
	}
	err := a.Validate()
	if err == nil {
		t.Fatal("expected error for provider without name")
	}
	if !strings.Contains(err.Error(), "treatment-provider") {
		t.Errorf("expected error to name the element, got %q", err)
	}
}

func TestImmunization_RoundTrip(t *testing.T) {
	adminDate := health.NewApproxDateTime(2021, 4, 15)
	route := health.NewCodedValue("Intramuscular", "im", "medication-routes", "wc")
	expiration := health.ApproxDate{Year: 2022}
	in := &Immunization{
		Name:               health.NewCodedValue("Influenza vaccine", "88", "CVX", "wc"),
		AdministrationDate: &adminDate,
		Administrator:      &health.Person{Name: health.Name{Full: "Nurse Joy"}},
		Lot:                "AX-204",
		Route:              &route,
		ExpirationDate:     &expiration,
		Sequence:           "1",
	}

	data, err := health.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	item, err := health.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	out := item.(*Immunization)
	if out.Lot != "AX-204" {
		t.Errorf("expected lot 'AX-204', got %q", out.Lot)
	}
	if out.ExpirationDate == nil || out.ExpirationDate.Year != 2022 {
		t.Error("expected expiration date to survive round trip")
	}
	if out.Summary() != "Influenza vaccine on 2021-04-15" {
		t.Errorf("unexpected summary %q", out.Summary())
	}
}

func TestImmunization_Validate_BadExpiration(t *testing.T) {
	im := &Immunization{
		Name:           health.NewCodableValue("Tetanus"),
		ExpirationDate: &health.ApproxDate{Year: 99},
	}
	if err := im.Validate(); err == nil {
		t.Fatal("expected error for out-of-range expiration year")
	}
}

func TestMedication_RoundTrip(t *testing.T) {
	freq := health.NewCodableValue("Twice daily")
	in := &Medication{
		Name:      health.NewCodedValue("Metformin", "6809", "RxNorm", "wc"),
		Strength:  "500 mg",
		Frequency: &freq,
		Dose:      &Dose{Text: "1 tablet"},
	}

	data, err := health.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	item, err := health.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	out := item.(*Medication)
	if out.Dose == nil || out.Dose.Text != "1 tablet" {
		t.Error("expected dose description to survive round trip")
	}
	if out.Summary() != "Metformin 500 mg, Twice daily" {
		t.Errorf("unexpected summary %q", out.Summary())
	}
}

func TestMedication_Dose_Validate(t *testing.T) {
	d := &Dose{}
	if err := d.Validate(); err == nil {
		t.Error("expected error for empty dose")
	}

	d = &Dose{Amount: &health.DoubleRange{Minimum: 2, Maximum: 1}}
	if err := d.Validate(); err == nil {
		t.Error("expected error for inverted dose range")
	}

	d = &Dose{Amount: &health.DoubleRange{Minimum: 1, Maximum: 2}}
	if err := d.Validate(); err != nil {
		t.Errorf("expected valid dose, got %v", err)
	}
}

func TestProcedure_RoundTrip(t *testing.T) {
	in := &Procedure{
		When: health.NewApproxDateTime(2020, 7, 2),
		Name: health.NewCodedValue("Appendectomy", "80146002", "SNOMED CT", "snomed"),
	}

	data, err := health.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	item, err := health.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	out := item.(*Procedure)
	if out.Name.Text != "Appendectomy" {
		t.Errorf("expected name 'Appendectomy', got %q", out.Name.Text)
	}
	if out.Summary() != "Appendectomy (2020-07-02)" {
		t.Errorf("unexpected summary %q", out.Summary())
	}
}

func TestProcedure_Validate_RequiresWhen(t *testing.T) {
	p := &Procedure{Name: health.NewCodableValue("Appendectomy")}
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for procedure without when")
	}
}
