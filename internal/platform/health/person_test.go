package health

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestName_Validate_BlankFull(t *testing.T) {
	n := Name{Full: "  "}
	if err := n.Validate(); err == nil {
		t.Fatal("expected error for blank full name")
	}
}

func TestPerson_Validate(t *testing.T) {
	p := Person{
		Name:         Name{Full: "Dr. Ada Osei"},
		Organization: "Lakeview Medical",
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPerson_Validate_EmptyContact(t *testing.T) {
	p := Person{
		Name:    Name{Full: "Dr. Ada Osei"},
		Contact: &Contact{},
	}
	err := p.Validate()
	if err == nil {
		t.Fatal("expected error for contact with no fields")
	}
	if !strings.Contains(err.Error(), "contact") {
		t.Errorf("expected contact error, got %q", err.Error())
	}
}

func TestPerson_RoundTrip_WithContact(t *testing.T) {
	p := Person{
		Name:                 Name{Full: "Dr. Philip Marlowe", First: "Philip", Last: "Marlowe"},
		Organization:         "Bay Clinic",
		ProfessionalTraining: "MD",
		Contact: &Contact{
			Phone: "+1 555 0100",
			Email: "marlowe@bayclinic.example",
		},
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := xml.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got Person
	if err := xml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if got.Name.Full != "Dr. Philip Marlowe" {
		t.Errorf("expected full name 'Dr. Philip Marlowe', got %q", got.Name.Full)
	}
	if got.Contact == nil {
		t.Fatal("expected contact to survive the round trip")
	}
	if got.Contact.Phone != "+1 555 0100" {
		t.Errorf("expected phone '+1 555 0100', got %q", got.Contact.Phone)
	}
	if got.Contact.Email != "marlowe@bayclinic.example" {
		t.Errorf("expected email 'marlowe@bayclinic.example', got %q", got.Contact.Email)
	}
	if got.Contact.Address != "" {
		t.Errorf("expected empty address, got %q", got.Contact.Address)
	}
}

func TestPerson_RoundTrip_OmitsAbsentContact(t *testing.T) {
	p := Person{Name: Name{Full: "Nurse Joy"}}

	data, err := xml.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "<contact>") {
		t.Errorf("expected no contact element, got %s", data)
	}
}
