package enums

import "fmt"

// PreferredContact is how the customer asked to be reached about an inquiry.
type PreferredContact string

const (
	PreferredContactEmail PreferredContact = "email"
	PreferredContactCall  PreferredContact = "call"
	PreferredContactText  PreferredContact = "text"
)

var validPreferredContacts = []PreferredContact{
	PreferredContactEmail,
	PreferredContactCall,
	PreferredContactText,
}

// String implements fmt.Stringer.
func (p PreferredContact) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PreferredContact.
func (p PreferredContact) IsValid() bool {
	for _, candidate := range validPreferredContacts {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePreferredContact converts raw input into a PreferredContact.
func ParsePreferredContact(value string) (PreferredContact, error) {
	for _, candidate := range validPreferredContacts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid preferred contact %q", value)
}
