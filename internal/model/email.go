package model

import "regexp"

// EmailConstraints describes the accepted email format.
const EmailConstraints = "Emails should be of the format local-part@domain " +
	"and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, " +
	"excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
	"separated by periods.\n" +
	"The domain name must:\n" +
	"    - end with a domain label at least 2 characters long\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

const (
	emailLocalPart  = `[a-zA-Z0-9]+([+_.-][a-zA-Z0-9]+)*`
	emailDomainPart = `[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*`
	emailLastPart   = `[a-zA-Z0-9]{2,}`
)

// The domain must contain at least one period.
var emailRegex = regexp.MustCompile(`^` + emailLocalPart + `@(` + emailDomainPart + `\.)+` + emailLastPart + `$`)

// Email is a client's email address.
type Email struct {
	value string
}

// NewEmail validates raw and wraps it as an Email.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, constraintError("email", EmailConstraints)
	}
	return Email{value: raw}, nil
}

// IsValidEmail reports whether s is an acceptable email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func (e Email) String() string { return e.value }

// Equal reports whether both addresses hold the same text.
func (e Email) Equal(other Email) bool { return e.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (e Email) MarshalText() ([]byte, error) { return []byte(e.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler, validating the input.
func (e *Email) UnmarshalText(text []byte) error {
	parsed, err := NewEmail(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
