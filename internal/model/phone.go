package model

import "regexp"

// PhoneConstraints describes the accepted phone number format.
const PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

var phoneRegex = regexp.MustCompile(`^\d{3,}$`)

// Phone is a client's phone number.
type Phone struct {
	value string
}

// NewPhone validates raw and wraps it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, constraintError("phone", PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

// IsValidPhone reports whether s is an acceptable phone number.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

func (p Phone) String() string { return p.value }

// Equal reports whether both numbers hold the same digits.
func (p Phone) Equal(other Phone) bool { return p.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (p Phone) MarshalText() ([]byte, error) { return []byte(p.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler, validating the input.
func (p *Phone) UnmarshalText(text []byte) error {
	parsed, err := NewPhone(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
