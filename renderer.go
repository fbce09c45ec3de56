package stoker

import (
	"fmt"
	"strings"
)

// DefaultRenderer renders usage lines and docopt-style help text
type DefaultRenderer struct{}

// NewRenderer returns the default renderer
func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{}
}

// OptionName returns the option as written on the command line, with its default value if any
func (r *DefaultRenderer) OptionName(o OptionSpec) string {
	def := o.Definition()
	if def.DefaultValue == "" {
		return "--" + def.Name
	}

	return fmt.Sprintf("--%s=<%s>", def.Name, def.DefaultValue)
}

// OptionFlags returns the aliases and name of an option, e.g. "-h, --help"
func (r *DefaultRenderer) OptionFlags(o OptionSpec) string {
	def := o.Definition()
	flags := make([]string, 0, len(def.Aliases)+1)
	for _, alias := range def.Aliases {
		flags = append(flags, "-"+alias)
	}
	flags = append(flags, "--"+def.Name)

	return strings.Join(flags, ", ")
}

// CommandUsage generates the usage line of a command:
//
//	name [--a --b=<default>] <arg1> <arg2>
//	name [options] <arg1>
//	name ...
//
// Options are listed inline when there are at most two of them.
func (r *DefaultRenderer) CommandUsage(c *Command) string {
	var usage strings.Builder
	usage.WriteString(c.Name)

	switch n := len(c.Options); {
	case n == 0:
	case n < 3:
		names := make([]string, 0, n)
		for _, o := range c.Options {
			names = append(names, r.OptionName(o))
		}
		usage.WriteString(" [" + strings.Join(names, " ") + "]")
	default:
		usage.WriteString(" [options]")
	}

	if len(c.Arguments) == 0 && len(c.Options) == 0 {
		usage.WriteString(" ...")
	}

	for _, a := range c.Arguments {
		usage.WriteString(" <" + a.Definition().Name + ">")
	}

	return usage.String()
}

// CommandHelp generates the help text of a command: its name and description, one usage
// line per subcommand followed by its own, and a table of its options.
func (r *DefaultRenderer) CommandHelp(c *Command) string {
	var help strings.Builder

	fmt.Fprintf(&help, "%s.\n\n", c.Name)
	fmt.Fprintf(&help, "%s\n\n", c.Description)

	help.WriteString("Usage:\n")
	for _, sub := range c.Subcommands {
		fmt.Fprintf(&help, "  %s %s\n", c.Name, r.CommandUsage(sub))
	}
	fmt.Fprintf(&help, "  %s\n", r.CommandUsage(c))

	if len(c.Options) > 0 {
		help.WriteString("\nOptions:\n")
		for _, o := range c.Options {
			def := o.Definition()
			fmt.Fprintf(&help, "  %-30s %s  [default: %s]\n", r.OptionFlags(o), def.Description, def.DefaultValue)
		}
	}

	return help.String()
}
