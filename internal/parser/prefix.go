// Package parser splits a command's argument string into a preamble and
// prefixed field values.
package parser

// Prefix marks the start of one field's value within a command line,
// e.g. "n/" in "edit 1 n/Amy".
type Prefix struct {
	marker string
}

// NewPrefix creates a prefix for the given marker text.
func NewPrefix(marker string) Prefix {
	return Prefix{marker: marker}
}

// Marker returns the literal marker text.
func (p Prefix) Marker() string { return p.marker }

func (p Prefix) String() string { return p.marker }

// Prefixes understood by the client book commands.
var (
	PrefixName    = NewPrefix("n/")
	PrefixPhone   = NewPrefix("p/")
	PrefixEmail   = NewPrefix("e/")
	PrefixAddress = NewPrefix("a/")
)
