package tui

import (
	"strings"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

// Tokenize splits an input line at whitespace. Double quotes group words
// into one token; "" yields an empty token.
func Tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
		started bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				tokens = append(tokens, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if inQuote {
		return nil, mdwerror.New("unterminated quote").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("tui.Tokenize").
			WithDetail("input", line)
	}
	if started {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}
