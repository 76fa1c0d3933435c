package parser

// ArgumentMap is the result of tokenizing one argument string: the preamble
// plus every value seen for each prefix, in input order.
//
// A prefix that never occurred reads as absent; lookups never fail.
type ArgumentMap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the text before the first recognised prefix.
func (m ArgumentMap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for p. When a prefix is repeated the
// last occurrence wins.
func (m ArgumentMap) Value(p Prefix) (string, bool) {
	values := m.values[p]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// AllValues returns every value given for p, oldest first.
func (m ArgumentMap) AllValues(p Prefix) []string {
	values := m.values[p]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// IsPresent reports whether p occurred at least once.
func (m ArgumentMap) IsPresent(p Prefix) bool {
	return len(m.values[p]) > 0
}

// ArePresent reports whether every prefix in ps occurred.
func (m ArgumentMap) ArePresent(ps ...Prefix) bool {
	for _, p := range ps {
		if !m.IsPresent(p) {
			return false
		}
	}
	return true
}

// Equal reports whether both maps hold the same preamble and values.
func (m ArgumentMap) Equal(other ArgumentMap) bool {
	if m.preamble != other.preamble {
		return false
	}
	if len(m.values) != len(other.values) {
		return false
	}
	for p, values := range m.values {
		otherValues, ok := other.values[p]
		if !ok || len(values) != len(otherValues) {
			return false
		}
		for i := range values {
			if values[i] != otherValues[i] {
				return false
			}
		}
	}
	return true
}
