// Package slugs turns client names into file name components.
package slugs

import (
	"strconv"
	"strings"

	goslug "github.com/gosimple/slug"
)

// ComponentSlug converts a string to a slug safe for a single path component.
// A trailing ".md" is ignored.
func ComponentSlug(s string) string {
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	}
	return slugged
}

// Allocator hands out slugs that are unique within one run. A repeated
// slug gets "-2", "-3", ... appended.
type Allocator struct {
	taken map[string]bool
}

// NewAllocator returns an Allocator with no slugs taken.
func NewAllocator() *Allocator {
	return &Allocator{taken: make(map[string]bool)}
}

// Next returns a unique slug for s.
func (a *Allocator) Next(s string) string {
	base := ComponentSlug(s)
	if base == "" {
		base = "client"
	}
	candidate := base
	for n := 2; a.taken[candidate]; n++ {
		candidate = base + "-" + strconv.Itoa(n)
	}
	a.taken[candidate] = true
	return candidate
}
