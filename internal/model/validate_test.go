package model

import (
	"errors"
	"testing"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{" ", false},
		{"^", false},
		{"peter*", false},
		{"INVALID_NAME", false},
		{"James&", false},
		{"peter jack", true},
		{"12345", true},
		{"peter the 2nd", true},
		{"Capital Tan", true},
		{"David Roger Jackson Ray Jr 2nd", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidName(tt.in); got != tt.want {
				t.Fatalf("IsValidName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{" ", false},
		{"91", false},
		{"phone", false},
		{"9011p041", false},
		{"9312 1534", false},
		{"+6591234567", false},
		{"911", true},
		{"93121534", true},
		{"124293842033123", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidPhone(tt.in); got != tt.want {
				t.Fatalf("IsValidPhone(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{" ", false},
		{"@example.com", false},
		{"peterjackexample.com", false},
		{"peterjack@", false},
		{"bob!yahoo", false},
		{"peterjack@example", false},
		{"peter jack@example.com", false},
		{"peterjack@exam_ple.com", false},
		{"-peterjack@example.com", false},
		{"peterjack-@example.com", false},
		{"peterjack@example.c", false},
		{"peterjack@-example.com", false},
		{"peterjack@example-.com", false},
		{"peterjack@example..com", false},
		{"amy@example.com", true},
		{"PeterJack_1190@example.com", true},
		{"a.b+c-d@example.com", true},
		{"test@localhost.io", true},
		{"123@145.sg", true},
		{"peter_jack@very-very-very-long-example.com", true},
		{"if.you.dream.it_you.can.do.it@example.com", true},
		{"e1@sub.domain.example.org", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidEmail(tt.in); got != tt.want {
				t.Fatalf("IsValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{" ", false},
		{"Blk 456, Den Road, #01-355", true},
		{"-", true},
		{"Leng Inc; 1234 Market St; San Francisco CA 2349879; USA", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidAddress(tt.in); got != tt.want {
				t.Fatalf("IsValidAddress(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConstructorsReportField(t *testing.T) {
	tests := []struct {
		name      string
		construct func() error
		field     string
		message   string
	}{
		{"name", func() error { _, err := NewName("James&"); return err }, "name", NameConstraints},
		{"phone", func() error { _, err := NewPhone("911a"); return err }, "phone", PhoneConstraints},
		{"email", func() error { _, err := NewEmail("bob!yahoo"); return err }, "email", EmailConstraints},
		{"address", func() error { _, err := NewAddress(""); return err }, "address", AddressConstraints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.construct()
			var ce *ConstraintError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ConstraintError, got %T (%v)", err, err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestUnmarshalTextValidates(t *testing.T) {
	var n Name
	if err := n.UnmarshalText([]byte("Amy Bee")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "Amy Bee" {
		t.Errorf("got %q", n.String())
	}

	var p Phone
	if err := p.UnmarshalText([]byte("12")); err == nil {
		t.Fatal("expected error for short phone number")
	}
}
