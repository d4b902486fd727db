package health

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

var (
	// ErrUnknownType is returned when a fragment's root element or a type ID
	// does not match any registered item type.
	ErrUnknownType = errors.New("unknown item type")
	// ErrEmptyDocument is returned when the input holds no XML element.
	ErrEmptyDocument = errors.New("empty item document")
)

// Marshal validates the item and serializes it under its registered root
// element. The output of Marshal is the canonical form: unmarshalling it and
// marshalling again yields identical bytes.
func Marshal(item Data) ([]byte, error) {
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", item.RootElement(), err)
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	start := xml.StartElement{Name: xml.Name{Local: item.RootElement()}}
	if err := enc.EncodeElement(item, start); err != nil {
		return nil, fmt.Errorf("encode %s: %w", item.RootElement(), err)
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal sniffs the fragment's root element, instantiates the matching
// item type from the registry, decodes into it, and validates the result.
func Unmarshal(data []byte) (Data, error) {
	root, err := rootElement(data)
	if err != nil {
		return nil, err
	}
	reg, ok := LookupElement(root)
	if !ok {
		return nil, fmt.Errorf("%w: element <%s>", ErrUnknownType, root)
	}
	return decode(reg, data)
}

// UnmarshalAs decodes a fragment whose type is already known, rejecting
// fragments whose root element does not belong to that type.
func UnmarshalAs(typeID uuid.UUID, data []byte) (Data, error) {
	reg, ok := Lookup(typeID)
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrUnknownType, typeID)
	}
	root, err := rootElement(data)
	if err != nil {
		return nil, err
	}
	if root != reg.Root {
		return nil, fmt.Errorf("expected <%s> for type %s, got <%s>", reg.Root, reg.Name, root)
	}
	return decode(reg, data)
}

func decode(reg Registration, data []byte) (Data, error) {
	item := reg.New()
	if err := xml.Unmarshal(data, item); err != nil {
		return nil, fmt.Errorf("decode %s: %w", reg.Root, err)
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", reg.Root, err)
	}
	return item, nil
}

// rootElement returns the local name of the first start element in data.
func rootElement(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", ErrEmptyDocument
		}
		if err != nil {
			return "", fmt.Errorf("scan item document: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}
