package health

import (
	"fmt"
	"strings"
)

// CodedValue is a single code taken from a named vocabulary.
type CodedValue struct {
	Value   string `xml:"value"`
	Family  string `xml:"family,omitempty"`
	Type    string `xml:"type"`
	Version string `xml:"version,omitempty"`
}

// Validate checks that the code carries both a value and a vocabulary name.
func (cv *CodedValue) Validate() error {
	if isBlank(cv.Value) {
		return fmt.Errorf("coded-value: value must not be empty")
	}
	if isBlank(cv.Type) {
		return fmt.Errorf("coded-value: vocabulary name must not be empty")
	}
	return nil
}

// CodableValue is a display string optionally backed by one or more
// vocabulary codes. It is the workhorse type for every coded field in the
// item catalogue (vaccine names, condition names, routes, statuses, ...).
type CodableValue struct {
	Text  string       `xml:"text"`
	Codes []CodedValue `xml:"code,omitempty"`
}

// NewCodableValue returns a CodableValue holding only display text.
func NewCodableValue(text string) CodableValue {
	return CodableValue{Text: text}
}

// NewCodedValue returns a CodableValue with display text and a single code.
func NewCodedValue(text, code, vocabulary, family string) CodableValue {
	return CodableValue{
		Text:  text,
		Codes: []CodedValue{{Value: code, Type: vocabulary, Family: family}},
	}
}

func (c *CodableValue) Validate() error {
	if isBlank(c.Text) {
		return fmt.Errorf("codable-value: text must not be empty or whitespace")
	}
	for i := range c.Codes {
		if err := c.Codes[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the display text.
func (c CodableValue) String() string { return c.Text }

// CollectCodables gathers the non-nil values into a slice. Item types use it
// to implement CodedItem over their optional coded fields.
func CollectCodables(values ...*CodableValue) []CodableValue {
	var out []CodableValue
	for _, v := range values {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
