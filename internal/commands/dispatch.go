package commands

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/parser"
)

// Execute parses line and executes the command against b.
func Execute(ctx context.Context, b *book.Book, line string) (Result, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return cmd.Execute(ctx, b)
}

// Parse turns one line of user input into a command.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, parser.NewFormatError(Usage("help"))
	}

	word, args := splitCommandWord(trimmed)

	switch word {
	case "add":
		return wrap(ParseAdd(args))
	case "edit":
		return wrap(ParseEdit(args))
	case "delete":
		return wrap(ParseDelete(args))
	case "find":
		return wrap(ParseFind(args))
	case "list":
		return ListCommand{}, nil
	case "clear":
		return ClearCommand{}, nil
	case "help":
		return HelpCommand{}, nil
	case "exit":
		return ExitCommand{}, nil
	default:
		return nil, &UnknownCommandError{Word: word, Closest: closestWord(word)}
	}
}

// splitCommandWord separates the keyword from the rest of the line. The
// arguments keep their leading whitespace so a prefix right after the
// keyword is still recognised.
func splitCommandWord(line string) (word, args string) {
	end := strings.IndexFunc(line, unicode.IsSpace)
	if end == -1 {
		return line, ""
	}
	return line[:end], line[end:]
}

// wrap converts a concrete parse result to the Command interface without
// turning a failed parse into a non-nil interface holding a zero value.
func wrap[C Command](cmd C, err error) (Command, error) {
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// maxTypoDistance bounds the edit distance of a suggestion for words that
// are not a subsequence of any keyword.
const maxTypoDistance = 2

func closestWord(word string) string {
	words := Words()
	ranks := fuzzy.RankFindFold(word, words)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	folded := strings.ToLower(word)
	best, bestDist := "", maxTypoDistance+1
	for _, w := range words {
		if d := fuzzy.LevenshteinDistance(folded, w); d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}
