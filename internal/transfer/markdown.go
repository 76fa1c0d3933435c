package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aidanlsb/clientbook/internal/atomicfile"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/slugs"
)

// ExportMarkdownDir writes one "<slug>.md" note per client into dir,
// creating dir if needed. It returns the written paths in client order.
func ExportMarkdownDir(dir string, clients []model.Client) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	alloc := slugs.NewAllocator()
	paths := make([]string, 0, len(clients))
	for _, c := range clients {
		path := filepath.Join(dir, alloc.Next(c.Name.String())+".md")
		note, err := renderNote(c)
		if err != nil {
			return paths, fmt.Errorf("render %s: %w", c.Name, err)
		}
		err = atomicfile.Write(path, 0o644, func(w io.Writer) error {
			_, err := io.WriteString(w, note)
			return err
		})
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func renderNote(c model.Client) (string, error) {
	fm, err := renderFrontmatter(FromClient(c))
	if err != nil {
		return "", err
	}
	return fm + "\n# " + c.Name.String() + "\n", nil
}

// ImportMarkdownDir reads every "*.md" note directly inside dir, in file
// name order. Fields come from the frontmatter; a missing name falls back
// to the note's first level-1 heading.
func ImportMarkdownDir(dir string) ([]model.Client, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read import directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	clients := make([]model.Client, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		c, err := parseNote(string(content))
		if err != nil {
			return nil, &RecordError{Source: name, Err: err}
		}
		clients = append(clients, c)
	}
	return clients, nil
}

func parseNote(content string) (model.Client, error) {
	rec, body, err := splitFrontmatter(content)
	if err != nil {
		return model.Client{}, err
	}
	if strings.TrimSpace(rec.Name) == "" {
		rec.Name = firstHeading(body, 1)
	}
	return rec.ToClient()
}
