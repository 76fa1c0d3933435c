package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// prefixPosition records where one occurrence of a prefix starts.
type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits input into a preamble and the values that follow each
// occurrence of the given prefixes.
//
// A prefix is recognised at the start of input or directly after whitespace.
// There is no escaping: a value containing " e/" is split there.
func Tokenize(input string, prefixes ...Prefix) ArgumentMap {
	positions := findPrefixPositions(input, prefixes)
	return extractArguments(input, positions)
}

// findPrefixPositions scans left to right, so positions come out sorted.
func findPrefixPositions(input string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition

	for i := range input {
		if i > 0 {
			prev, _ := utf8.DecodeLastRuneInString(input[:i])
			if !unicode.IsSpace(prev) {
				continue
			}
		}

		// Longest marker wins when several match at the same position.
		best := -1
		for j, p := range prefixes {
			if p.marker == "" || !strings.HasPrefix(input[i:], p.marker) {
				continue
			}
			if best == -1 || len(p.marker) > len(prefixes[best].marker) {
				best = j
			}
		}
		if best != -1 {
			positions = append(positions, prefixPosition{prefix: prefixes[best], start: i})
		}
	}
	return positions
}

func extractArguments(input string, positions []prefixPosition) ArgumentMap {
	m := ArgumentMap{values: make(map[Prefix][]string)}

	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(input)
		return m
	}

	m.preamble = strings.TrimSpace(input[:positions[0].start])
	for k, pos := range positions {
		end := len(input)
		if k+1 < len(positions) {
			end = positions[k+1].start
		}
		valueStart := pos.start + len(pos.prefix.marker)
		if valueStart > end {
			valueStart = end
		}
		value := strings.TrimSpace(input[valueStart:end])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}
