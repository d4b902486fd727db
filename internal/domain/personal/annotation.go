// Package personal holds the patient-authored item types: annotations and
// appointments.
package personal

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var AnnotationTypeID = uuid.MustParse("7ab3e662-cc5b-4be2-bf38-78f8aad5b161")

func init() {
	health.Register(AnnotationTypeID, "annotation", "Annotation",
		func() health.Data { return &Annotation{} })
}

// Annotation is a free-text note attached to the record. At least one of
// content, author, or classification must be present.
type Annotation struct {
	When           health.DateTime `xml:"when"`
	Content        string          `xml:"content,omitempty"`
	Author         *health.Person  `xml:"author,omitempty"`
	Classification string          `xml:"classification,omitempty"`
	Index          string          `xml:"index,omitempty"`
	Version        string          `xml:"version,omitempty"`
}

func (a *Annotation) TypeID() uuid.UUID   { return AnnotationTypeID }
func (a *Annotation) RootElement() string { return "annotation" }

func (a *Annotation) Validate() error {
	if err := a.When.Validate(); err != nil {
		return err
	}
	if a.Content == "" && a.Author == nil && a.Classification == "" {
		return fmt.Errorf("annotation requires content, author, or classification")
	}
	if a.Author != nil {
		if err := a.Author.Validate(); err != nil {
			return fmt.Errorf("author: %w", err)
		}
	}
	return nil
}

func (a *Annotation) Summary() string {
	if a.Content != "" {
		return a.Content
	}
	if a.Classification != "" {
		return a.Classification
	}
	return "note by " + a.Author.Name.Full
}
