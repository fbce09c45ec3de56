package stoker

import (
	"context"
	"reflect"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Logger is the sink the registry reports to. Log receives the echo of every
// invocation and the output of built-in commands, Error receives failures.
type Logger interface {
	Log(message string)
	Error(message string)
}

// Handler is the unit of work bound to a command. It runs once parsing succeeded and
// no subcommand took over the remaining tokens.
type Handler func(ctx context.Context, args *ParsedArgs) error

// Middleware wraps a Handler. next may be nil when the command has no handler of its own.
type Middleware func(next Handler) Handler

// ParseFunc converts the raw string form of an argument or option into T
type ParseFunc[T any] func(value string) (T, error)

// SuggestFunc lazily returns the completion candidates of an argument or option
type SuggestFunc func() []string

// Tokenizer splits a raw line into tokens - see parse.Split and parse.ShellSplit
type Tokenizer func(line string) ([]string, error)

// ConfigureRegistryFunc is used when configuring a Registry with NewRegistry
type ConfigureRegistryFunc func(registry *Registry, err *error)

// ConfigureCommandFunc is used when defining commands with NewCommand
type ConfigureCommandFunc func(command *Command)

// ConfigureSpecFunc is used when defining arguments and options
type ConfigureSpecFunc func(spec *Spec)

// Spec is the schema shared by positional arguments and options
type Spec struct {
	Name         string
	Description  string
	DefaultValue string // empty means no default
	Suggestions  SuggestFunc
	// Aliases are alternative option names, matched like Name. Unused on arguments.
	Aliases []string
	// Required options must appear on the command line. Unused on arguments.
	Required bool
}

// ValueSpec is the type-erased view of an Argument or Option used by Command
type ValueSpec interface {
	// Definition returns the schema
	Definition() *Spec
	// ParseValue converts a raw value with the spec's parser
	ParseValue(value string) (any, error)
	// ValueType returns the static type produced by ParseValue
	ValueType() reflect.Type
	// Suggest returns the completion candidates, never panics
	Suggest() []string
}

// ArgumentSpec is a positional argument of any value type
type ArgumentSpec interface {
	ValueSpec
	isArgument()
}

// OptionSpec is a flagged option of any value type
type OptionSpec interface {
	ValueSpec
	isOption()
}

// Command is a node of the command tree. Its shape is set up before the command is
// registered and must not change while the registry is in use.
type Command struct {
	Name        string
	Description string
	Arguments   []ArgumentSpec
	Options     []OptionSpec
	Subcommands []*Command
	Handler     Handler
	middleware  []Middleware
}

// Renderer turns a command's schema into usage and help text
type Renderer interface {
	CommandUsage(c *Command) string
	CommandHelp(c *Command) string
}

// Registry is the root executor: it owns the top-level commands, tokenizes raw lines and
// reports every outcome to its Logger.
type Registry struct {
	mu        sync.RWMutex
	commands  []*Command
	logger    Logger
	tokenizer Tokenizer
	sem       *semaphore.Weighted
}
