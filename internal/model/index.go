package model

import (
	"strconv"
	"strings"
)

// IndexConstraints describes the accepted index format.
const IndexConstraints = "Index is not a non-zero unsigned integer."

// Index is a position in a displayed list of clients. It is stored
// zero-based but users always see it one-based.
type Index struct {
	zeroBased int
}

// IndexFromOneBased builds an Index from a one-based position.
func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, constraintError("index", IndexConstraints)
	}
	return Index{zeroBased: n - 1}, nil
}

// IndexFromZeroBased builds an Index from a zero-based position.
func IndexFromZeroBased(n int) (Index, error) {
	if n < 0 {
		return Index{}, constraintError("index", IndexConstraints)
	}
	return Index{zeroBased: n}, nil
}

// ParseIndex parses a token of decimal digits into an Index.
// Signs, spaces, and values that overflow int are rejected.
func ParseIndex(raw string) (Index, error) {
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return Index{}, constraintError("index", IndexConstraints)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Index{}, constraintError("index", IndexConstraints)
	}
	return IndexFromOneBased(n)
}

// ZeroBased returns the position counting from 0.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the position counting from 1.
func (i Index) OneBased() int { return i.zeroBased + 1 }

func (i Index) String() string { return strconv.Itoa(i.OneBased()) }

// MarshalJSON renders the index as its one-based number.
func (i Index) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(i.OneBased())), nil
}
