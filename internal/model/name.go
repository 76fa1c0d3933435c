package model

import "regexp"

// NameConstraints describes the accepted name format.
const NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)

// Name is a client's full name. The zero value is not a valid name.
type Name struct {
	value string
}

// NewName validates raw and wraps it as a Name.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, constraintError("name", NameConstraints)
	}
	return Name{value: raw}, nil
}

// IsValidName reports whether s is an acceptable name.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

func (n Name) String() string { return n.value }

// Equal reports whether both names hold the same text.
func (n Name) Equal(other Name) bool { return n.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) { return []byte(n.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler, validating the input.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := NewName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
