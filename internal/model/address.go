package model

import "regexp"

// AddressConstraints describes the accepted address format.
const AddressConstraints = "Addresses can take any values, and it should not be blank"

// The first character must not be whitespace, otherwise " " would be accepted.
var addressRegex = regexp.MustCompile(`^\S(?s:.*)$`)

// Address is a client's postal address.
type Address struct {
	value string
}

// NewAddress validates raw and wraps it as an Address.
func NewAddress(raw string) (Address, error) {
	if !IsValidAddress(raw) {
		return Address{}, constraintError("address", AddressConstraints)
	}
	return Address{value: raw}, nil
}

// IsValidAddress reports whether s is an acceptable address.
func IsValidAddress(s string) bool {
	return addressRegex.MatchString(s)
}

func (a Address) String() string { return a.value }

// Equal reports whether both addresses hold the same text.
func (a Address) Equal(other Address) bool { return a.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler, validating the input.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := NewAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
