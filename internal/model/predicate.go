package model

import (
	"strings"
	"unicode"
)

// Predicate selects clients for the displayed list.
type Predicate func(Client) bool

// ShowAll matches every client.
func ShowAll(Client) bool { return true }

// NameContainsKeywords matches clients whose name contains any keyword as a
// whole word, ignoring case.
func NameContainsKeywords(keywords []string) Predicate {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			lowered = append(lowered, strings.ToLower(k))
		}
	}
	return func(c Client) bool {
		words := strings.FieldsFunc(strings.ToLower(c.Name.String()), unicode.IsSpace)
		for _, k := range lowered {
			for _, w := range words {
				if w == k {
					return true
				}
			}
		}
		return false
	}
}
