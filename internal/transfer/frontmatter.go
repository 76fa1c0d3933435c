package transfer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterBounds returns the index of the closing '---' line. It only
// detects frontmatter when the first line is '---'. If frontmatter is
// present but unclosed, end is -1.
func frontmatterBounds(lines []string) (end int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return -1, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return i, true
		}
	}
	return -1, true
}

// splitFrontmatter decodes the frontmatter of a note into a Record and
// returns the body that follows it. A note without frontmatter yields an
// empty Record and the whole content as body.
func splitFrontmatter(content string) (Record, string, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	end, ok := frontmatterBounds(lines)
	if !ok {
		return Record{}, content, nil
	}
	if end == -1 {
		return Record{}, "", fmt.Errorf("frontmatter is not closed with '---'")
	}

	var rec Record
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &rec); err != nil {
		return Record{}, "", fmt.Errorf("failed to parse frontmatter as YAML: %w", err)
	}
	return rec, strings.Join(lines[end+1:], "\n"), nil
}

// renderFrontmatter renders rec between '---' fences.
func renderFrontmatter(rec Record) (string, error) {
	var sb strings.Builder
	sb.WriteString("---\n")
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	sb.WriteString("---\n")
	return sb.String(), nil
}
