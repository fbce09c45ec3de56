package stoker

import (
	"context"
)

// HelpOptionName is the option added by UseHelp
const HelpOptionName = "help"

// UseHelp adds a `-h/--help` option to the command, unless it already has one, and a
// middleware logging the command's help text to logger. The help text is also logged when
// the command is run without a handler of its own.
func (c *Command) UseHelp(logger Logger) {
	if c.Option(HelpOptionName) == nil {
		c.AddOption(NewOption(HelpOptionName, parsePresence,
			WithAliases("h"),
			WithDescription("Show help information")))
	}
	c.Use(HelpMiddleware(c, NewRenderer(), logger))
}

// HelpMiddleware logs the help text of c instead of running the wrapped handler when
// help was requested or when there is no handler to run
func HelpMiddleware(c *Command, renderer Renderer, logger Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, args *ParsedArgs) error {
			if next == nil || HelpRequested(args) {
				logger.Log(renderer.CommandHelp(c))
				return nil
			}

			return next(ctx, args)
		}
	}
}

// HelpRequested reports whether --help was given
func HelpRequested(args *ParsedArgs) bool {
	requested, ok := OptionAs[bool](args, HelpOptionName)
	return ok && requested
}

// parsePresence treats any value, including none, as true
func parsePresence(string) (bool, error) {
	return true, nil
}
