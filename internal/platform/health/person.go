package health

import "fmt"

// Name is a person's name. The full form is required; the parts are
// optional refinements.
type Name struct {
	Full   string        `xml:"full"`
	Title  *CodableValue `xml:"title,omitempty"`
	First  string        `xml:"first,omitempty"`
	Middle string        `xml:"middle,omitempty"`
	Last   string        `xml:"last,omitempty"`
	Suffix *CodableValue `xml:"suffix,omitempty"`
}

func (n *Name) Validate() error {
	if isBlank(n.Full) {
		return fmt.Errorf("name: full name must not be empty")
	}
	if n.Title != nil {
		if err := n.Title.Validate(); err != nil {
			return err
		}
	}
	if n.Suffix != nil {
		if err := n.Suffix.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Contact is how a person can be reached. Every field is optional, but a
// contact present on an item must carry at least one of them.
type Contact struct {
	Address string `xml:"address,omitempty"`
	Phone   string `xml:"phone,omitempty"`
	Email   string `xml:"email,omitempty"`
}

func (c *Contact) Validate() error {
	if isBlank(c.Address) && isBlank(c.Phone) && isBlank(c.Email) {
		return fmt.Errorf("contact: at least one of address, phone, email required")
	}
	return nil
}

// Person identifies a clinician, author, or contact attached to an item.
type Person struct {
	Name                 Name     `xml:"name"`
	Organization         string   `xml:"organization,omitempty"`
	ProfessionalTraining string   `xml:"professional-training,omitempty"`
	ID                   string   `xml:"id,omitempty"`
	Contact              *Contact `xml:"contact,omitempty"`
}

func (p *Person) Validate() error {
	if err := p.Name.Validate(); err != nil {
		return fmt.Errorf("person: %w", err)
	}
	if p.Contact != nil {
		if err := p.Contact.Validate(); err != nil {
			return fmt.Errorf("person: %w", err)
		}
	}
	return nil
}

func (p Person) String() string { return p.Name.Full }
