package transfer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/testutil"
)

func writeNote(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMarkdownDirRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")
	clients := testutil.TypicalClients(t)

	paths, err := ExportMarkdownDir(dir, clients)
	if err != nil {
		t.Fatalf("ExportMarkdownDir: %v", err)
	}
	if len(paths) != len(clients) {
		t.Fatalf("wrote %d files, want %d", len(paths), len(clients))
	}
	if filepath.Base(paths[0]) != "alice-pauline.md" {
		t.Errorf("first file = %q", filepath.Base(paths[0]))
	}

	content, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(content), "---\nname: Alice Pauline\n") {
		t.Errorf("unexpected note:\n%s", content)
	}
	if !strings.HasSuffix(string(content), "\n# Alice Pauline\n") {
		t.Errorf("note does not end with heading:\n%s", content)
	}

	got, err := ImportMarkdownDir(dir)
	if err != nil {
		t.Fatalf("ImportMarkdownDir: %v", err)
	}
	// Import is in file name order, which for these names matches insertion order.
	if diff := cmp.Diff(clients, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportMarkdownDirDeduplicatesSlugs(t *testing.T) {
	dir := t.TempDir()
	clients := []model.Client{
		testutil.Client(t, "Amy Bee", "111", "a@example.com", "x"),
		testutil.Client(t, "amy bee", "222", "b@example.com", "y"),
	}

	paths, err := ExportMarkdownDir(dir, clients)
	if err != nil {
		t.Fatalf("ExportMarkdownDir: %v", err)
	}
	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	if diff := cmp.Diff([]string{"amy-bee.md", "amy-bee-2.md"}, names); diff != "" {
		t.Errorf("file names mismatch (-want +got):\n%s", diff)
	}
}

func TestImportMarkdownDir(t *testing.T) {
	t.Run("name falls back to heading", func(t *testing.T) {
		dir := t.TempDir()
		writeNote(t, dir, "amy.md", `---
phone: 11111111
email: amy@example.com
address: Block 312, Amy Street 1
---

# Amy *Bee*

Met at the conference.
`)
		writeNote(t, dir, "notes.txt", "ignored")
		if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0o755); err != nil {
			t.Fatal(err)
		}

		got, err := ImportMarkdownDir(dir)
		if err != nil {
			t.Fatalf("ImportMarkdownDir: %v", err)
		}
		if diff := cmp.Diff([]model.Client{testutil.Amy(t)}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("frontmatter name wins over heading", func(t *testing.T) {
		dir := t.TempDir()
		writeNote(t, dir, "bob.md", "---\nname: Bob Choo\nphone: \"22222222\"\nemail: bob@example.com\naddress: Block 123, Bobby Street 3\n---\n# Someone Else\n")
		got, err := ImportMarkdownDir(dir)
		if err != nil {
			t.Fatalf("ImportMarkdownDir: %v", err)
		}
		if diff := cmp.Diff([]model.Client{testutil.Bob(t)}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid note names the file", func(t *testing.T) {
		dir := t.TempDir()
		writeNote(t, dir, "bad.md", "---\nname: Bad&Name\nphone: \"123\"\nemail: a@example.com\naddress: x\n---\n")
		_, err := ImportMarkdownDir(dir)
		var re *RecordError
		if !errors.As(err, &re) || re.Source != "bad.md" {
			t.Fatalf("expected RecordError for bad.md, got %v", err)
		}
		var ce *model.ConstraintError
		if !errors.As(err, &ce) || ce.Field != "name" {
			t.Errorf("expected name constraint error, got %v", err)
		}
	})

	t.Run("unclosed frontmatter", func(t *testing.T) {
		dir := t.TempDir()
		writeNote(t, dir, "open.md", "---\nname: Amy Bee\n")
		if _, err := ImportMarkdownDir(dir); err == nil {
			t.Error("expected error for unclosed frontmatter")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := ImportMarkdownDir(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"# Amy Bee\n", "Amy Bee"},
		{"## Sub\n\n# Main\n", "Main"},
		{"Intro\n\n#   Spaced   \n", "Spaced"},
		{"# [Linked](http://example.com) Name\n", "Linked Name"},
		{"no heading", ""},
	}
	for _, tt := range tests {
		if got := firstHeading(tt.body, 1); got != tt.want {
			t.Errorf("firstHeading(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}
