package stoker

import (
	"github.com/stoker-console/stoker/errs"
)

// WithLogger sets the sink receiving invocation echoes, command output and errors
func WithLogger(logger Logger) ConfigureRegistryFunc {
	return func(registry *Registry, err *error) {
		registry.logger = logger
	}
}

// WithTokenizer replaces the line tokenizer, e.g. WithTokenizer(parse.ShellSplit)
func WithTokenizer(tokenizer Tokenizer) ConfigureRegistryFunc {
	return func(registry *Registry, err *error) {
		if tokenizer == nil {
			*err = errs.ErrNilTokenizer
			return
		}
		registry.tokenizer = tokenizer
	}
}

// WithCommand registers a top-level command. Registration fails on duplicate names.
func WithCommand(command *Command) ConfigureRegistryFunc {
	return func(registry *Registry, err *error) {
		*err = registry.addCommand(command)
	}
}

// WithCommands registers several top-level commands
func WithCommands(commands ...*Command) ConfigureRegistryFunc {
	return func(registry *Registry, err *error) {
		for _, command := range commands {
			if *err = registry.addCommand(command); *err != nil {
				return
			}
		}
	}
}
