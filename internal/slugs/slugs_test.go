package slugs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComponentSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice Pauline", "alice-pauline"},
		{"  Benson   Meier ", "benson-meier"},
		{"Carl Kurz 2", "carl-kurz-2"},
		{"notes.md", "notes"},
	}
	for _, tt := range tests {
		if got := ComponentSlug(tt.in); got != tt.want {
			t.Errorf("ComponentSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAllocator(t *testing.T) {
	a := NewAllocator()
	var got []string
	for _, name := range []string{"Amy Bee", "Amy Bee 2", "amy bee", "Bob Choo", "AMY BEE"} {
		got = append(got, a.Next(name))
	}
	want := []string{"amy-bee", "amy-bee-2", "amy-bee-3", "bob-choo", "amy-bee-4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("slugs mismatch (-want +got):\n%s", diff)
	}
}
