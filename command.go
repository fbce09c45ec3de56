package stoker

import (
	"context"
	"strings"

	"github.com/stoker-console/stoker/errs"
	"github.com/stoker-console/stoker/parse"
)

// AddArgument appends a positional argument. Arguments are filled in the order they were added.
func (c *Command) AddArgument(argument ArgumentSpec) {
	if argument == nil {
		return
	}
	c.Arguments = append(c.Arguments, argument)
}

// AddOption appends an option
func (c *Command) AddOption(option OptionSpec) {
	if option == nil {
		return
	}
	c.Options = append(c.Options, option)
}

// AddSubcommand appends a child command
func (c *Command) AddSubcommand(sub *Command) {
	if sub == nil {
		return
	}
	c.Subcommands = append(c.Subcommands, sub)
}

// SetHandler replaces the command's handler. Middleware added with Use is kept.
func (c *Command) SetHandler(handler Handler) {
	c.Handler = handler
}

// Use wraps the handler with middleware. The first middleware given is the outermost.
func (c *Command) Use(middleware ...Middleware) {
	for _, mw := range middleware {
		if mw != nil {
			c.middleware = append(c.middleware, mw)
		}
	}
}

// Subcommand returns the child whose name matches name case-insensitively, or nil
func (c *Command) Subcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if strings.EqualFold(sub.Name, name) {
			return sub
		}
	}

	return nil
}

// Option returns the option matching name (without dashes) by name or alias, or nil
func (c *Command) Option(name string) OptionSpec {
	for _, o := range c.Options {
		if o.Definition().matches(name) {
			return o
		}
	}

	return nil
}

// Parse parses tokens against the command's schema.
//
// Defaults are applied first. Tokens starting with '-' are options: the following token is
// their value unless it starts with '-' too, in which case the option's default value is
// parsed instead. A token naming a subcommand stops the scan and hands the remaining
// tokens over in UnparsedArgs; required options are then left for the subcommand to check.
// Any other token fills the next positional argument.
func (c *Command) Parse(tokens []string) (*ParsedArgs, error) {
	result := NewParsedArgs()

	for _, o := range c.Options {
		def := o.Definition()
		if def.DefaultValue == "" {
			continue
		}
		v, err := o.ParseValue(def.DefaultValue)
		if err != nil {
			return nil, errs.ErrInvalidValue.WithArgs(def.DefaultValue, "--"+def.Name).Wrap(err)
		}
		result.Options.Set(def.Name, v)
	}

	values := make([]any, len(c.Arguments))
	filled := make([]bool, len(c.Arguments))
	for i, a := range c.Arguments {
		def := a.Definition()
		if def.DefaultValue == "" {
			continue
		}
		v, err := a.ParseValue(def.DefaultValue)
		if err != nil {
			return nil, errs.ErrInvalidValue.WithArgs(def.DefaultValue, "<"+def.Name+">").Wrap(err)
		}
		values[i], filled[i] = v, true
	}

	seen := make(map[string]bool)
	position := 0
	state := parse.NewState(tokens)

scan:
	for state.Advance() {
		token := state.CurrentArg()

		switch {
		case isOptionToken(token):
			o := c.Option(trimOptionToken(token))
			if o == nil {
				return nil, errs.ErrUnknownOption.WithArgs(token)
			}
			def := o.Definition()
			raw := def.DefaultValue
			if state.HasNext() && !isOptionToken(state.Peek()) {
				state.Advance()
				raw = state.CurrentArg()
			}
			v, err := o.ParseValue(raw)
			if err != nil {
				return nil, errs.ErrInvalidValue.WithArgs(raw, "--"+def.Name).Wrap(err)
			}
			result.Options.Set(def.Name, v)
			seen[def.Name] = true

		case c.Subcommand(token) != nil:
			result.SubCommand = token
			result.UnparsedArgs = state.Remaining()
			break scan

		default:
			if position >= len(c.Arguments) {
				return nil, errs.ErrTooManyArguments.WithArgs(token)
			}
			a := c.Arguments[position]
			v, err := a.ParseValue(token)
			if err != nil {
				return nil, errs.ErrInvalidValue.WithArgs(token, "<"+a.Definition().Name+">").Wrap(err)
			}
			values[position], filled[position] = v, true
			position++
		}
	}

	for i, a := range c.Arguments {
		if filled[i] {
			result.Arguments.Set(a.Definition().Name, values[i])
		}
	}

	if result.SubCommand != "" {
		return result, nil
	}

	var missing []string
	for _, o := range c.Options {
		def := o.Definition()
		if def.Required && !seen[def.Name] {
			missing = append(missing, def.Name)
		}
	}
	if len(missing) > 0 {
		return nil, errs.ErrMissingRequiredOptions.WithArgs(strings.Join(missing, ", "))
	}

	return result, nil
}

// Execute parses tokens and dispatches: to the matched subcommand if there is one,
// otherwise to the command's handler wrapped in its middleware. Handler errors are
// returned unchanged.
func (c *Command) Execute(ctx context.Context, tokens []string) error {
	args, err := c.Parse(tokens)
	if err != nil {
		return err
	}

	if args.SubCommand != "" {
		return c.Subcommand(args.SubCommand).Execute(ctx, args.UnparsedArgs)
	}

	handler := c.handler()
	if handler == nil {
		return errs.ErrNoHandler.WithArgs(c.Name)
	}

	return handler(ctx, args)
}

func (c *Command) handler() Handler {
	h := c.Handler
	for i := len(c.middleware) - 1; i >= 0; i-- {
		h = c.middleware[i](h)
	}

	return h
}
