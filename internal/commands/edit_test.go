package commands

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/parser"
)

func namePtr(t *testing.T, raw string) *model.Name {
	t.Helper()
	v, err := model.NewName(raw)
	if err != nil {
		t.Fatalf("name %q: %v", raw, err)
	}
	return &v
}

func phonePtr(t *testing.T, raw string) *model.Phone {
	t.Helper()
	v, err := model.NewPhone(raw)
	if err != nil {
		t.Fatalf("phone %q: %v", raw, err)
	}
	return &v
}

func emailPtr(t *testing.T, raw string) *model.Email {
	t.Helper()
	v, err := model.NewEmail(raw)
	if err != nil {
		t.Fatalf("email %q: %v", raw, err)
	}
	return &v
}

func addressPtr(t *testing.T, raw string) *model.Address {
	t.Helper()
	v, err := model.NewAddress(raw)
	if err != nil {
		t.Fatalf("address %q: %v", raw, err)
	}
	return &v
}

func assertFormatError(t *testing.T, err error, word string) {
	t.Helper()
	var fe *parser.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T: %v", err, err)
	}
	if fe.Usage != Usage(word) {
		t.Errorf("usage = %q, want usage of %q", fe.Usage, word)
	}
}

func assertConstraintError(t *testing.T, err error, field string) {
	t.Helper()
	var ce *model.ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConstraintError for %s, got %T: %v", field, err, err)
	}
	if ce.Field != field {
		t.Errorf("constraint field = %q, want %q (message %q)", ce.Field, field, ce.Message)
	}
}

func TestParseEditSuccess(t *testing.T) {
	tests := []struct {
		name  string
		args  string
		index int
		want  EditDescriptor
	}{
		{
			name:  "all fields in any order",
			args:  " 2 p/22222222 e/amy@example.com a/Block 312, Amy Street 1 n/Amy Bee",
			index: 2,
			want: EditDescriptor{
				Name:    namePtr(t, "Amy Bee"),
				Phone:   phonePtr(t, "22222222"),
				Email:   emailPtr(t, "amy@example.com"),
				Address: addressPtr(t, "Block 312, Amy Street 1"),
			},
		},
		{
			name:  "some fields",
			args:  " 1 p/98765432 e/amy@example.com",
			index: 1,
			want: EditDescriptor{
				Phone: phonePtr(t, "98765432"),
				Email: emailPtr(t, "amy@example.com"),
			},
		},
		{
			name:  "name only",
			args:  " 3 n/Amy Bee",
			index: 3,
			want:  EditDescriptor{Name: namePtr(t, "Amy Bee")},
		},
		{
			name:  "address only",
			args:  " 3 a/Block 312, Amy Street 1",
			index: 3,
			want:  EditDescriptor{Address: addressPtr(t, "Block 312, Amy Street 1")},
		},
		{
			name:  "repeated prefix keeps last value",
			args:  " 1 p/111 p/222",
			index: 1,
			want:  EditDescriptor{Phone: phonePtr(t, "222")},
		},
		{
			name:  "invalid value followed by valid value",
			args:  " 1 p/abc p/98765432",
			index: 1,
			want:  EditDescriptor{Phone: phonePtr(t, "98765432")},
		},
		{
			name:  "values are trimmed",
			args:  "   4    n/  Amy Bee   ",
			index: 4,
			want:  EditDescriptor{Name: namePtr(t, "Amy Bee")},
		},
		{
			name:  "prefix directly after keyword",
			args:  "7 e/amy@example.com",
			index: 7,
			want:  EditDescriptor{Email: emailPtr(t, "amy@example.com")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdit(tt.args)
			if err != nil {
				t.Fatalf("ParseEdit(%q) error: %v", tt.args, err)
			}
			if got.Index.OneBased() != tt.index {
				t.Errorf("index = %d, want %d", got.Index.OneBased(), tt.index)
			}
			if diff := cmp.Diff(tt.want, got.Descriptor); diff != "" {
				t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEditFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"no index", " n/Amy Bee"},
		{"negative index", " -5 n/Amy Bee"},
		{"zero index", " 0 n/Amy Bee"},
		{"signed index", " +1 n/Amy Bee"},
		{"random preamble", " 1 some random string"},
		{"unknown prefix", " 1 i/ string"},
		{"index overflows int", " 99999999999999999999999 n/Amy Bee"},
		{"bad index beats bad field", " x n/James& p/abc"},
		{"bad index beats missing fields", " x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEdit(tt.args)
			assertFormatError(t, err, "edit")
		})
	}
}

func TestParseEditConstraintErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  string
		field string
	}{
		{"invalid name", " 1 n/James&", "name"},
		{"invalid phone", " 1 p/abc", "phone"},
		{"invalid email", " 1 e/alice!yahoo", "email"},
		{"empty address", " 1 a/", "address"},
		{"empty name", " 1 n/", "name"},
		{"invalid phone before valid email", " 1 p/abc e/amy@example.com", "phone"},
		{"valid phone then invalid phone", " 1 p/911 p/abc", "phone"},
		{"name reported before email", " 1 e/alice!yahoo n/James&", "name"},
		{"first invalid in field order", " 1 n/James& e/alice!yahoo a/valid p/abc", "name"},
		{"phone before email and address", " 1 a/ e/alice!yahoo p/12", "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEdit(tt.args)
			assertConstraintError(t, err, tt.field)
		})
	}
}

func TestParseEditNoFields(t *testing.T) {
	for _, args := range []string{" 1", "1", " 1   ", " 12"} {
		_, err := ParseEdit(args)
		if !errors.Is(err, ErrNotEdited) {
			t.Errorf("ParseEdit(%q) error = %v, want ErrNotEdited", args, err)
		}
	}
}

func TestEditDescriptorArgsRoundTrip(t *testing.T) {
	descriptors := []EditDescriptor{
		{Name: namePtr(t, "Amy Bee")},
		{Phone: phonePtr(t, "98765432"), Email: emailPtr(t, "amy@example.com")},
		{
			Name:    namePtr(t, "Bob Choo"),
			Phone:   phonePtr(t, "22222222"),
			Email:   emailPtr(t, "bob@example.com"),
			Address: addressPtr(t, "Block 123, Bobby Street 3"),
		},
	}

	for _, want := range descriptors {
		line := "1 " + want.Args()
		got, err := ParseEdit(line)
		if err != nil {
			t.Fatalf("ParseEdit(%q) error: %v", line, err)
		}
		if diff := cmp.Diff(want, got.Descriptor); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", line, diff)
		}
	}
}

func TestEditDescriptorApply(t *testing.T) {
	original := model.NewClient(*namePtr(t, "Alice Pauline"), *phonePtr(t, "94351253"),
		*emailPtr(t, "alice@example.com"), *addressPtr(t, "wall street"))

	d := EditDescriptor{Phone: phonePtr(t, "11111111")}
	got := d.Apply(original)

	want := model.NewClient(*namePtr(t, "Alice Pauline"), *phonePtr(t, "11111111"),
		*emailPtr(t, "alice@example.com"), *addressPtr(t, "wall street"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
	if !original.Phone.Equal(*phonePtr(t, "94351253")) {
		t.Error("Apply modified its input")
	}

	if (EditDescriptor{}).IsAnyFieldEdited() {
		t.Error("empty descriptor reports an edited field")
	}
	if !d.IsAnyFieldEdited() {
		t.Error("descriptor with phone reports no edited field")
	}
}
