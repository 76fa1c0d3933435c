package ui

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

const defaultCodeTheme = "monokai"

var (
	accentColor       string
	markdownCodeTheme = defaultCodeTheme
)

// ConfigureTheme applies the configured accent color. An empty or invalid
// value, or one of "none", "off", "default", disables the accent.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = Accent.Bold(true)
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// ConfigureMarkdownCodeTheme selects the chroma theme used for code blocks
// in rendered markdown. Unknown names fall back to the default.
func ConfigureMarkdownCodeTheme(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := styles.Registry[name]; !ok {
		name = defaultCodeTheme
	}
	markdownCodeTheme = name
}

func normalizeAccentColor(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return "", false
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", false
		}
		return "#" + hex, true
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return strconv.Itoa(n), true
}
