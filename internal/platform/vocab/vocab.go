// Package vocab provides vocabulary lookup for codable values: a registry
// of known code sets keyed by family and name, plus checks that flag codes
// claiming membership in a registered vocabulary that do not exist there.
package vocab

import (
	"fmt"
	"sync"

	"github.com/healthrec/healthrec/internal/platform/health"
)

// Code system OIDs shared across clinical document formats.
const (
	OIDLOINC  = "2.16.840.1.113883.6.1"
	OIDSNOMED = "2.16.840.1.113883.6.96"
	OIDRxNorm = "2.16.840.1.113883.6.88"
	OIDICD10  = "2.16.840.1.113883.6.90"
	OIDCVX    = "2.16.840.1.113883.12.292"
)

// Families used by the built-in vocabularies.
const (
	FamilyWC     = "wc"
	FamilySNOMED = "snomed"
	FamilyHL7    = "hl7"
)

// Key identifies a vocabulary within the registry.
type Key struct {
	Family string
	Name   string
}

func (k Key) String() string { return k.Family + ":" + k.Name }

// Registry holds code sets and checks codable values against them.
// Vocabularies that are not registered pass unchecked: the catalogue is
// open-world, and callers register only the sets they want enforced.
type Registry struct {
	mu   sync.RWMutex
	sets map[Key]map[string]string // key -> code -> display
}

func NewRegistry() *Registry {
	return &Registry{sets: make(map[Key]map[string]string)}
}

// Add registers the codes of a vocabulary. Calling Add again for the same
// key merges the codes into the existing set.
func (r *Registry) Add(key Key, codes map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[key]
	if !ok {
		set = make(map[string]string, len(codes))
		r.sets[key] = set
	}
	for code, display := range codes {
		set[code] = display
	}
}

// Display returns the display text of a code, if the vocabulary and code are
// known.
func (r *Registry) Display(key Key, code string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.sets[key]
	if !ok {
		return "", false
	}
	display, ok := set[code]
	return display, ok
}

// Check verifies each coding of a codable value whose vocabulary is
// registered. Codes from unregistered vocabularies are ignored.
func (r *Registry) Check(cv health.CodableValue) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, code := range cv.Codes {
		key := Key{Family: code.Family, Name: code.Type}
		set, known := r.sets[key]
		if !known {
			continue
		}
		if _, ok := set[code.Value]; !ok {
			return fmt.Errorf("code %q not found in vocabulary %s", code.Value, key)
		}
	}
	return nil
}

// Default returns a registry seeded with the enumerations the item catalogue
// relies on.
func Default() *Registry {
	r := NewRegistry()

	r.Add(Key{Family: FamilyWC, Name: "glucose-measurement-type"}, map[string]string{
		"wb": "Whole blood",
		"p":  "Plasma",
	})
	r.Add(Key{Family: FamilyWC, Name: "glucose-measurement-context"}, map[string]string{
		"BeforeMeal":    "Before meal",
		"AfterMeal":     "After meal",
		"Fasting":       "Fasting",
		"BeforeBedtime": "Before bedtime",
	})
	r.Add(Key{Family: FamilyWC, Name: "condition-occurrence"}, map[string]string{
		"active":       "Active",
		"intermittent": "Intermittent",
		"resolved":     "Resolved",
		"chronic":      "Chronic",
	})
	r.Add(Key{Family: FamilyWC, Name: "medication-routes"}, map[string]string{
		"po": "By mouth",
		"im": "Intramuscular",
		"sc": "Subcutaneous",
		"iv": "Intravenous",
	})
	r.Add(Key{Family: FamilyWC, Name: "appointment-status"}, map[string]string{
		"scheduled": "Scheduled",
		"confirmed": "Confirmed",
		"completed": "Completed",
		"cancelled": "Cancelled",
	})

	return r
}
