// Package models contains data models for the information service.
package models

import (
	"encoding/xml"
	"sort"
)

// Information is the record returned by the information endpoint
type Information struct {
	XMLName xml.Name `json:"-" xml:"information"`

	// Display name of the person
	Name string `json:"name" xml:"name"`

	// Yearly salary, zero when unknown
	Salary int `json:"salary" xml:"salary"`

	// Contact details keyed by label, nil when unknown
	Contact Contact `json:"contact" xml:"contact,omitempty"`
}

// Contact maps a label such as "Email" or "Phone Number" to its value
type Contact map[string]string

// contactEntry is the XML form of a single contact label/value pair
type contactEntry struct {
	Label string `xml:"label,attr"`
	Value string `xml:",chardata"`
}

// MarshalXML writes the contact map as <entry label="..."> elements sorted by label.
// encoding/xml cannot encode maps directly.
func (c Contact) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	labels := make([]string, 0, len(c))
	for label := range c {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, label := range labels {
		entry := contactEntry{Label: label, Value: c[label]}
		if err := e.EncodeElement(entry, xml.StartElement{Name: xml.Name{Local: "entry"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML reads the <entry label="..."> form produced by MarshalXML
func (c *Contact) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var wrapper struct {
		Entries []contactEntry `xml:"entry"`
	}
	if err := d.DecodeElement(&wrapper, &start); err != nil {
		return err
	}

	contact := make(Contact, len(wrapper.Entries))
	for _, entry := range wrapper.Entries {
		contact[entry.Label] = entry.Value
	}
	*c = contact
	return nil
}

// Clone returns a deep copy so callers never share the contact map
func (i Information) Clone() Information {
	out := i
	if i.Contact != nil {
		out.Contact = make(Contact, len(i.Contact))
		for label, value := range i.Contact {
			out.Contact[label] = value
		}
	}
	return out
}
