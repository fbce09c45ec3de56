// Package parse splits console lines into tokens and tracks the position of a parser
// within a token list.
package parse

import (
	"strings"

	"github.com/google/shlex"
)

// Split tokenizes a console line. Tokens are separated by unquoted spaces. A double quote
// toggles quoting and is dropped, so `""` yields an empty token. `\"` yields a literal
// quote. Outside quotes a caret is dropped unless it is doubled (`^^` yields `^`) or is
// the last character of the line. Split never fails; the error is always nil so that it
// can be used wherever a tokenizer is expected.
func Split(line string) ([]string, error) {
	var (
		tokens     []string
		current    strings.Builder
		started    bool
		quoted     bool
		escaped    bool
		allowCaret bool
	)

	runes := []rune(line)
	for i, r := range runes {
		hasNext := i+1 < len(runes)
		switch {
		case r == '^' && !quoted:
			switch {
			case allowCaret:
				current.WriteRune(r)
				started = true
				escaped = false
				allowCaret = false
			case hasNext && runes[i+1] == '^':
				allowCaret = true
			case !hasNext:
				current.WriteRune(r)
				started = true
			}
		case escaped:
			current.WriteRune(r)
			started = true
			escaped = false
		case r == '"':
			quoted = !quoted
			started = true
		case r == '\\' && hasNext && runes[i+1] == '"':
			escaped = true
		case r == ' ' && !quoted:
			if started {
				tokens = append(tokens, current.String())
			}
			current.Reset()
			started = false
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if started {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}

// Quote returns token written so that Split yields it back as a single token. Tokens
// without spaces, quotes or carets are returned unchanged.
func Quote(token string) string {
	if token != "" && !strings.ContainsAny(token, " \t\"^") {
		return token
	}

	return `"` + strings.ReplaceAll(token, `"`, `\"`) + `"`
}

// ShellSplit tokenizes a line using POSIX shell quoting rules
func ShellSplit(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, err
	}

	return args, nil
}
