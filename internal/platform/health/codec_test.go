package health

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

// testNote is a minimal item type registered only for codec tests.
type testNote struct {
	When    DateTime `xml:"when"`
	Content string   `xml:"content"`
}

var testNoteTypeID = uuid.MustParse("11111111-2222-3333-4444-555555555555")

func (n *testNote) TypeID() uuid.UUID   { return testNoteTypeID }
func (n *testNote) RootElement() string { return "test-note" }

func (n *testNote) Validate() error {
	if err := n.When.Validate(); err != nil {
		return err
	}
	if isBlank(n.Content) {
		return fmt.Errorf("content must not be empty")
	}
	return nil
}

func (n *testNote) Summary() string { return n.Content }

func init() {
	Register(testNoteTypeID, "test-note", "TestNote", func() Data { return &testNote{} })
}

func validTestNote() *testNote {
	return &testNote{
		When:    DateTime{Date: Date{Year: 2024, Month: 2, Day: 29}},
		Content: "follow up in two weeks",
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	data, err := Marshal(validTestNote())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	item, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	note, ok := item.(*testNote)
	if !ok {
		t.Fatalf("expected *testNote, got %T", item)
	}
	if note.Content != "follow up in two weeks" {
		t.Errorf("expected content to survive round trip, got %q", note.Content)
	}
	if note.When.Date.Year != 2024 {
		t.Errorf("expected year 2024, got %d", note.When.Date.Year)
	}
}

func TestCodec_CanonicalFormIsStable(t *testing.T) {
	first, err := Marshal(validTestNote())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	item, err := Unmarshal(first)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	second, err := Marshal(item)
	if err != nil {
		t.Fatalf("second marshal failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("canonical form changed across round trip:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestCodec_Marshal_RejectsInvalid(t *testing.T) {
	n := validTestNote()
	n.Content = "   "
	if _, err := Marshal(n); err == nil {
		t.Fatal("expected validation error from marshal")
	}
}

func TestCodec_Unmarshal_UnknownElement(t *testing.T) {
	_, err := Unmarshal([]byte(`<no-such-item><a>1</a></no-such-item>`))
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestCodec_Unmarshal_Empty(t *testing.T) {
	_, err := Unmarshal(nil)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestCodec_UnmarshalAs(t *testing.T) {
	data, err := Marshal(validTestNote())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if _, err := UnmarshalAs(testNoteTypeID, data); err != nil {
		t.Errorf("expected UnmarshalAs to succeed, got %v", err)
	}

	if _, err := UnmarshalAs(uuid.New(), data); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType for random type ID, got %v", err)
	}
}

func TestCodec_UnmarshalAs_WrongElement(t *testing.T) {
	_, err := UnmarshalAs(testNoteTypeID, []byte(`<other><content>x</content></other>`))
	if err == nil {
		t.Fatal("expected error for mismatched root element")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg, ok := Lookup(testNoteTypeID)
	if !ok {
		t.Fatal("expected registration for test note type")
	}
	if reg.Root != "test-note" {
		t.Errorf("expected root 'test-note', got %q", reg.Root)
	}

	if _, ok := LookupElement("test-note"); !ok {
		t.Error("expected lookup by element to succeed")
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(testNoteTypeID, "test-note-dup", "TestNoteDup", func() Data { return &testNote{} })
}
