// Package shellquote renders command lines that can be pasted into a POSIX shell.
package shellquote

import "strings"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// shellSpecial holds characters a shell would interpret or split on.
const shellSpecial = " \t\n#[]()|&;<>$`\\!\"'*?~{}"

// QuoteIfNeeded quotes s only when a shell would not pass it through verbatim.
func QuoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, shellSpecial) {
		return Quote(s)
	}
	return s
}

// Join quotes each word as needed and joins them with spaces.
func Join(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = QuoteIfNeeded(w)
	}
	return strings.Join(quoted, " ")
}
