package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aidanlsb/clientbook/internal/parser"
	"github.com/aidanlsb/clientbook/internal/testutil"
)

func TestParseAdd(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		got, err := ParseAdd(" n/Bob Choo p/22222222 e/bob@example.com a/Block 123, Bobby Street 3")
		if err != nil {
			t.Fatalf("ParseAdd error: %v", err)
		}
		if diff := cmp.Diff(testutil.Bob(t), got.Client); diff != "" {
			t.Errorf("client mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("repeated prefix keeps last value", func(t *testing.T) {
		got, err := ParseAdd(" n/Amy Bee n/Bob Choo p/22222222 e/bob@example.com a/Block 123, Bobby Street 3")
		if err != nil {
			t.Fatalf("ParseAdd error: %v", err)
		}
		if got.Client.Name.String() != "Bob Choo" {
			t.Errorf("name = %q, want %q", got.Client.Name, "Bob Choo")
		}
	})

	formatCases := []struct {
		name string
		args string
	}{
		{"missing name", " p/22222222 e/bob@example.com a/Block 123"},
		{"missing phone", " n/Bob Choo e/bob@example.com a/Block 123"},
		{"missing email", " n/Bob Choo p/22222222 a/Block 123"},
		{"missing address", " n/Bob Choo p/22222222 e/bob@example.com"},
		{"non-empty preamble", " some preamble n/Bob Choo p/22222222 e/bob@example.com a/Block 123"},
		{"empty", ""},
	}
	for _, tt := range formatCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdd(tt.args)
			assertFormatError(t, err, "add")
		})
	}

	constraintCases := []struct {
		name  string
		args  string
		field string
	}{
		{"invalid name", " n/James& p/22222222 e/bob@example.com a/Block 123", "name"},
		{"invalid phone", " n/Bob Choo p/911a e/bob@example.com a/Block 123", "phone"},
		{"invalid email", " n/Bob Choo p/22222222 e/bob!yahoo a/Block 123", "email"},
		{"invalid address", " n/Bob Choo p/22222222 e/bob@example.com a/", "address"},
		{"name reported first", " n/James& p/abc e/bob!yahoo a/", "name"},
	}
	for _, tt := range constraintCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdd(tt.args)
			assertConstraintError(t, err, tt.field)
		})
	}
}

func TestParseDelete(t *testing.T) {
	got, err := ParseDelete(" 1 ")
	if err != nil {
		t.Fatalf("ParseDelete error: %v", err)
	}
	if got.Index.OneBased() != 1 {
		t.Errorf("index = %d, want 1", got.Index.OneBased())
	}

	for _, args := range []string{"", " a", " 0", " -1", " 1 2"} {
		_, err := ParseDelete(args)
		assertFormatError(t, err, "delete")
	}
}

func TestParseFind(t *testing.T) {
	got, err := ParseFind("  Alice \t Bob  ")
	if err != nil {
		t.Fatalf("ParseFind error: %v", err)
	}
	if diff := cmp.Diff([]string{"Alice", "Bob"}, got.Keywords); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}

	_, err = ParseFind("   ")
	assertFormatError(t, err, "find")
}

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"add n/Bob Choo p/22222222 e/bob@example.com a/Block 123", "add"},
		{"edit 1 n/Amy Bee", "edit"},
		{"delete 3", "delete"},
		{"find alice", "find"},
		{"list", "list"},
		{"list 3", "list"},
		{"  clear  ", "clear"},
		{"help me", "help"},
		{"exit", "exit"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.line, err)
			}
			if cmd.Word() != tt.want {
				t.Errorf("Word() = %q, want %q", cmd.Word(), tt.want)
			}
		})
	}
}

func TestParseDispatchErrors(t *testing.T) {
	t.Run("blank line", func(t *testing.T) {
		cmd, err := Parse("   ")
		if cmd != nil {
			t.Errorf("expected nil command, got %#v", cmd)
		}
		assertFormatError(t, err, "help")
		if !strings.HasPrefix(err.Error(), "Invalid command format! \n") {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("argument error surfaces unchanged", func(t *testing.T) {
		cmd, err := Parse("edit 1")
		if cmd != nil {
			t.Errorf("expected nil command, got %#v", cmd)
		}
		if !errors.Is(err, ErrNotEdited) {
			t.Errorf("error = %v, want ErrNotEdited", err)
		}
	})

	unknown := []struct {
		line    string
		closest string
	}{
		{"ad n/Amy", "add"},
		{"lst", "list"},
		{"ADD n/Amy", "add"},
		{"deleet 1", "delete"},
		{"edti 1 n/Amy", "edit"},
		{"xyz", ""},
	}
	for _, tt := range unknown {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			var ue *UnknownCommandError
			if !errors.As(err, &ue) {
				t.Fatalf("expected UnknownCommandError, got %T: %v", err, err)
			}
			if ue.Error() != MessageUnknownCommand {
				t.Errorf("message = %q, want %q", ue.Error(), MessageUnknownCommand)
			}
			if ue.Closest != tt.closest {
				t.Errorf("closest = %q, want %q", ue.Closest, tt.closest)
			}
			if tt.closest != "" && !strings.Contains(ue.Suggestion(), tt.closest) {
				t.Errorf("suggestion %q does not mention %q", ue.Suggestion(), tt.closest)
			}
		})
	}
}

func TestFormatErrorCarriesUsage(t *testing.T) {
	_, err := Parse("delete")
	var fe *parser.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T", err)
	}
	want := "Invalid command format! \n" + Usage("delete")
	if err.Error() != want {
		t.Errorf("message mismatch:\n got %q\nwant %q", err.Error(), want)
	}
}
