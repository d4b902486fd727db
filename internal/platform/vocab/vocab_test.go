package vocab

import (
	"testing"

	"github.com/healthrec/healthrec/internal/platform/health"
)

func TestRegistry_Check_KnownVocabulary(t *testing.T) {
	r := Default()

	cv := health.NewCodedValue("Intramuscular", "im", "medication-routes", FamilyWC)
	if err := r.Check(cv); err != nil {
		t.Errorf("expected known code to pass, got %v", err)
	}

	cv = health.NewCodedValue("Sideways", "sideways", "medication-routes", FamilyWC)
	if err := r.Check(cv); err == nil {
		t.Error("expected error for unknown code in registered vocabulary")
	}
}

func TestRegistry_Check_UnregisteredVocabularyPasses(t *testing.T) {
	r := Default()

	cv := health.NewCodedValue("Migraine", "37796009", "SNOMED CT", FamilySNOMED)
	if err := r.Check(cv); err != nil {
		t.Errorf("expected unregistered vocabulary to pass unchecked, got %v", err)
	}
}

func TestRegistry_Check_TextOnlyPasses(t *testing.T) {
	r := Default()
	if err := r.Check(health.NewCodableValue("free text only")); err != nil {
		t.Errorf("expected text-only value to pass, got %v", err)
	}
}

func TestRegistry_Display(t *testing.T) {
	r := Default()

	display, ok := r.Display(Key{Family: FamilyWC, Name: "glucose-measurement-type"}, "wb")
	if !ok {
		t.Fatal("expected code 'wb' to be known")
	}
	if display != "Whole blood" {
		t.Errorf("expected 'Whole blood', got %q", display)
	}

	if _, ok := r.Display(Key{Family: FamilyWC, Name: "no-such-set"}, "x"); ok {
		t.Error("expected unknown vocabulary to miss")
	}
}

func TestRegistry_Add_Merges(t *testing.T) {
	r := NewRegistry()
	key := Key{Family: FamilyWC, Name: "custom"}
	r.Add(key, map[string]string{"a": "A"})
	r.Add(key, map[string]string{"b": "B"})

	if _, ok := r.Display(key, "a"); !ok {
		t.Error("expected code 'a' to survive merge")
	}
	if _, ok := r.Display(key, "b"); !ok {
		t.Error("expected code 'b' to be added")
	}
}
