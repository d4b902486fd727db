// Package health defines the typed health record item catalogue: the value
// types shared by every item (codable values, approximate dates,
// measurements, ranges), the item registry, and the XML codec that parses
// and serializes item fragments.
package health

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Data is implemented by every item type in the catalogue. An item holds
// strongly typed fields, knows the XML root element of its fragment, checks
// its own invariants, and describes itself in one line.
type Data interface {
	// TypeID returns the stable identifier of the item type.
	TypeID() uuid.UUID
	// RootElement returns the XML root element name of the item fragment.
	RootElement() string
	// Validate checks every field invariant of the item.
	Validate() error
	// Summary returns a short human-readable description of the item.
	Summary() string
}

// CodedItem is implemented by item types that carry codable values. It lets
// callers check those values against a vocabulary registry without knowing
// the item's concrete type.
type CodedItem interface {
	// Codables returns every codable value currently set on the item.
	Codables() []CodableValue
}

// Registration describes one registered item type.
type Registration struct {
	TypeID uuid.UUID
	Root   string
	Name   string
	New    func() Data
}

var (
	regMu     sync.RWMutex
	byTypeID  = map[uuid.UUID]Registration{}
	byElement = map[string]Registration{}
)

// Register adds an item type to the catalogue. Each catalogue package calls
// Register from init for the types it defines. Registering the same type ID
// or root element twice panics.
func Register(typeID uuid.UUID, root, name string, factory func() Data) {
	regMu.Lock()
	defer regMu.Unlock()

	if _, dup := byTypeID[typeID]; dup {
		panic(fmt.Sprintf("health: duplicate item type ID %s", typeID))
	}
	if _, dup := byElement[root]; dup {
		panic(fmt.Sprintf("health: duplicate item root element %q", root))
	}
	reg := Registration{TypeID: typeID, Root: root, Name: name, New: factory}
	byTypeID[typeID] = reg
	byElement[root] = reg
}

// Lookup returns the registration for a type ID.
func Lookup(typeID uuid.UUID) (Registration, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	reg, ok := byTypeID[typeID]
	return reg, ok
}

// LookupElement returns the registration for an XML root element name.
func LookupElement(root string) (Registration, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	reg, ok := byElement[root]
	return reg, ok
}

// Types returns all registered item types sorted by name.
func Types() []Registration {
	regMu.RLock()
	defer regMu.RUnlock()

	out := make([]Registration, 0, len(byTypeID))
	for _, reg := range byTypeID {
		out = append(out, reg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
