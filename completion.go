package stoker

import (
	"strings"
)

// Complete returns completion candidates for tokens, the words typed after the command's
// name. The last token may be a partially typed word. Complete never executes anything
// and never fails: a misbehaving suggestion provider only contributes nothing.
//
// Candidates are de-duplicated case-insensitively and returned in the order found;
// callers should not rely on that order.
func (c *Command) Complete(tokens []string) []string {
	s := newSuggestionSet()

	if len(tokens) == 0 && len(c.Subcommands) > 0 {
		for _, sub := range c.Subcommands {
			s.add(sub.Name)
		}
		return s.values()
	}

	if len(tokens) > 0 {
		if sub := c.Subcommand(tokens[0]); sub != nil {
			return sub.Complete(tokens[1:])
		}
	}

	last := ""
	if len(tokens) > 0 {
		last = tokens[len(tokens)-1]
	}

	if len(tokens) > 0 {
		for _, sub := range c.Subcommands {
			if hasPrefixFold(sub.Name, tokens[0]) {
				s.add(sub.Name)
			}
		}
	}

	consumed, used := c.scanOptions(tokens)
	current := len(tokens) - consumed

	if !isOptionToken(last) {
		c.addArgumentSuggestions(s, current, last)
		c.addArgumentSuggestions(s, current-1, last)
	}

	if isOptionToken(last) {
		partial := trimOptionToken(last)
		if o := c.optionNamed(partial); o != nil {
			s.add(o.Suggest()...)
		} else {
			for _, o := range c.Options {
				def := o.Definition()
				if !used[def.Name] && def.hasPrefix(partial) {
					s.add("--" + def.Name)
				}
			}
		}
	} else if len(tokens) > 1 {
		before := tokens[len(tokens)-2]
		if isOptionToken(before) {
			if o := c.Option(trimOptionToken(before)); o != nil && !isFlag(o) {
				addFiltered(s, o.Suggest(), last)
			}
		}
	}

	if current >= len(c.Arguments) {
		for _, o := range c.Options {
			name := o.Definition().Name
			if !used[name] {
				s.add("--" + name)
			}
		}
	}

	if s.len() == 0 {
		word := trimOptionToken(last)
		if word != "" {
			for _, sub := range c.Subcommands {
				if containsFold(sub.Name, word) {
					s.add(sub.Name)
				}
			}
			for _, o := range c.Options {
				if name := o.Definition().Name; containsFold(name, word) {
					s.add("--" + name)
				}
			}
		}
	}

	return s.values()
}

// scanOptions counts the tokens taken by options and records which options were used.
// Unknown options count as one token. A non-flag option also takes the following token
// unless it starts with '-'. The last token may still be a partial name, so it marks an
// option as used only when it spells the canonical name.
func (c *Command) scanOptions(tokens []string) (int, map[string]bool) {
	consumed := 0
	used := make(map[string]bool)

	for i := 0; i < len(tokens); i++ {
		if !isOptionToken(tokens[i]) {
			continue
		}
		consumed++

		o := c.Option(trimOptionToken(tokens[i]))
		if o == nil {
			continue
		}
		name := o.Definition().Name
		if i < len(tokens)-1 || strings.EqualFold(name, trimOptionToken(tokens[i])) {
			used[name] = true
		}

		if !isFlag(o) && i+1 < len(tokens) && !isOptionToken(tokens[i+1]) {
			consumed++
			i++
		}
	}

	return consumed, used
}

// optionNamed returns the option whose canonical name is name, ignoring aliases
func (c *Command) optionNamed(name string) OptionSpec {
	for _, o := range c.Options {
		if strings.EqualFold(o.Definition().Name, name) {
			return o
		}
	}
	return nil
}

func (c *Command) addArgumentSuggestions(s *suggestionSet, index int, partial string) {
	if index < 0 || index >= len(c.Arguments) {
		return
	}
	addFiltered(s, c.Arguments[index].Suggest(), partial)
}

// addFiltered adds the candidates starting with partial, leaving out partial itself
func addFiltered(s *suggestionSet, candidates []string, partial string) {
	for _, candidate := range candidates {
		if hasPrefixFold(candidate, partial) && !strings.EqualFold(candidate, partial) {
			s.add(candidate)
		}
	}
}

type suggestionSet struct {
	seen  map[string]struct{}
	items []string
}

func newSuggestionSet() *suggestionSet {
	return &suggestionSet{seen: make(map[string]struct{})}
}

func (s *suggestionSet) add(values ...string) {
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := s.seen[key]; ok {
			continue
		}
		s.seen[key] = struct{}{}
		s.items = append(s.items, v)
	}
}

func (s *suggestionSet) len() int {
	return len(s.items)
}

func (s *suggestionSet) values() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
