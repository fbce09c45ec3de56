package main

import (
	"sort"
	"strings"

	"github.com/stoker-console/stoker"
	"github.com/stoker-console/stoker/parse"
)

// completeInput expands the word under the cursor at the end of line. The first word
// completes against command names, later words against the command's suggestions.
// It returns the new line and the sorted candidates that were considered.
func completeInput(registry *stoker.Registry, line string) (string, []string) {
	tokens, start, ok := currentWord(registry, line)
	if !ok {
		return line, nil
	}

	word := ""
	args := tokens
	if start < len(line) {
		word = tokens[len(tokens)-1]
		args = tokens[:len(tokens)-1]
	}

	var candidates []string
	if len(args) == 0 {
		candidates = registry.CommandNames(word)
	} else {
		candidates = registry.CompleteArgs(tokens[0], tokens[1:])
		sort.Strings(candidates)
	}

	return expand(line, start, word, candidates), candidates
}

// currentWord tokenizes line with the registry's tokenizer and finds where the word under
// the cursor starts. start is len(line) when the cursor begins a new word.
func currentWord(registry *stoker.Registry, line string) (tokens []string, start int, ok bool) {
	tokens, ok = splitOpen(registry, line)
	if !ok {
		return nil, 0, false
	}
	probe, ok := splitOpen(registry, line+"x")
	if !ok {
		return nil, 0, false
	}
	if len(probe) > len(tokens) {
		return tokens, len(line), true
	}

	for i := len(line) - 1; i >= 0; i-- {
		if line[i] != ' ' {
			continue
		}
		head, err := registry.Split(line[:i])
		if err == nil && len(head) == len(tokens)-1 {
			return tokens, i + 1, true
		}
	}

	return tokens, 0, true
}

// splitOpen tokenizes line, closing a quote left open at its end
func splitOpen(registry *stoker.Registry, line string) ([]string, bool) {
	for _, closing := range []string{"", `"`, "'"} {
		if tokens, err := registry.Split(line + closing); err == nil {
			return tokens, true
		}
	}
	return nil, false
}

// expand replaces the word starting at start with the candidate it selects. A single
// matching candidate is completed in full; several are completed up to their common
// prefix, leaving a quote open if the prefix needs one.
func expand(line string, start int, word string, candidates []string) string {
	if len(candidates) == 0 {
		return line
	}

	var matching []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(word)) {
			matching = append(matching, c)
		}
	}

	if len(matching) == 0 {
		// nothing continues the word, candidates are new words
		if len(candidates) != 1 {
			return line
		}
		if start < len(line) {
			line += " "
		}
		return line + parse.Quote(candidates[0]) + " "
	}

	if len(matching) == 1 {
		return line[:start] + parse.Quote(matching[0]) + " "
	}

	prefix := commonPrefix(matching)
	if len(prefix) <= len(word) {
		return line
	}

	quoted := parse.Quote(prefix)
	if quoted != prefix {
		quoted = strings.TrimSuffix(quoted, `"`)
	}

	return line[:start] + quoted
}

func commonPrefix(values []string) string {
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
