package commands

import (
	"strings"

	"github.com/aidanlsb/clientbook/internal/parser"
)

// HelpMarkdown renders the command reference as markdown.
func HelpMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Client book commands\n\n")
	sb.WriteString("Fields are introduced by prefixes: ")
	sb.WriteString(strings.Join([]string{
		"`" + parser.PrefixName.Marker() + "` name",
		"`" + parser.PrefixPhone.Marker() + "` phone",
		"`" + parser.PrefixEmail.Marker() + "` email",
		"`" + parser.PrefixAddress.Marker() + "` address",
	}, ", "))
	sb.WriteString(". When a prefix is repeated the last value is used.\n")

	for _, word := range Words() {
		meta := Registry[word]
		sb.WriteString("\n## ")
		sb.WriteString(word)
		sb.WriteString("\n\n")
		sb.WriteString(meta.Description)
		sb.WriteString("\n\n")
		if meta.Parameters != "" {
			sb.WriteString("- Parameters: `")
			sb.WriteString(meta.Parameters)
			sb.WriteString("`\n")
		}
		if meta.Example != "" {
			sb.WriteString("- Example: `")
			sb.WriteString(meta.Example)
			sb.WriteString("`\n")
		}
	}
	return sb.String()
}
