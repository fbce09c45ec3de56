// Package stoker is an embeddable command interpreter: a tree of named commands with
// positional arguments, options, subcommands, defaults and context-sensitive completion.
//
// A Registry owns the top-level commands. Execute tokenizes a raw line, dispatches it to
// the matching command and reports every outcome, including failures, to the registry's
// Logger. Complete computes completion candidates for a partial line without running
// anything.
package stoker

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/stoker-console/stoker/errs"
	"github.com/stoker-console/stoker/parse"
	"github.com/stoker-console/stoker/sink"
	"golang.org/x/sync/semaphore"
)

// NewRegistry creates a Registry configured with configs. By default lines are split with
// parse.Split and output goes to a charmbracelet/log logger on stderr.
func NewRegistry(configs ...ConfigureRegistryFunc) (*Registry, error) {
	r := &Registry{
		tokenizer: parse.Split,
		sem:       semaphore.NewWeighted(1),
	}

	var err error
	for _, config := range configs {
		config(r, &err)
		if err != nil {
			return nil, err
		}
	}

	if r.logger == nil {
		r.logger = sink.New(log.NewWithOptions(os.Stderr, log.Options{}))
	}

	return r, nil
}

// AddCommand registers a top-level command. It returns false when a command with the
// same name is already registered, or when the command is nil or unnamed.
func (r *Registry) AddCommand(command *Command) bool {
	return r.addCommand(command) == nil
}

func (r *Registry) addCommand(command *Command) error {
	if command == nil {
		return errs.ErrNilCommand
	}
	if command.Name == "" {
		return errs.ErrEmptyCommandName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.commands {
		if c.Name == command.Name {
			return errs.ErrCommandExists.WithArgs(command.Name)
		}
	}
	r.commands = append(r.commands, command)

	return nil
}

// ContainsCommand reports whether a top-level command is registered under name.
// Names are compared case-sensitively.
func (r *Registry) ContainsCommand(name string) bool {
	return r.lookup(name) != nil
}

// Command returns the top-level command registered under name, or nil
func (r *Registry) Command(name string) *Command {
	return r.lookup(name)
}

// Commands returns the top-level commands in registration order
func (r *Registry) Commands() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]*Command, len(r.commands))
	copy(commands, r.commands)

	return commands
}

// CommandNames returns the sorted names of the top-level commands starting with prefix,
// compared case-insensitively
func (r *Registry) CommandNames(prefix string) []string {
	var names []string
	for _, c := range r.Commands() {
		if hasPrefixFold(c.Name, prefix) {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)

	return names
}

// Logger returns the sink the registry reports to
func (r *Registry) Logger() Logger {
	return r.logger
}

func (r *Registry) lookup(name string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.commands {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// Execute runs a raw line. Blank lines are ignored. Errors are never returned: unknown
// commands, parse failures, handler errors and handler panics are all reported to the
// Logger. Handlers run one at a time; a handler must not call Execute on its own
// registry, as it would wait for itself.
func (r *Registry) Execute(ctx context.Context, line string) {
	tokens, ok := r.tokenize(line)
	if !ok || len(tokens) == 0 {
		return
	}

	r.ExecuteArgs(ctx, tokens[0], tokens[1:])
}

// ExecuteArgs runs the top-level command name with already split args, see Execute
func (r *Registry) ExecuteArgs(ctx context.Context, name string, args []string) {
	command := r.lookup(name)
	if command == nil {
		r.logger.Error(errs.ErrCommandNotFound.WithArgs(name).Error())
		return
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		r.logger.Error(err.Error())
		return
	}
	defer r.sem.Release(1)

	r.logger.Log("> " + strings.Join(append([]string{name}, args...), " "))

	if err := r.run(ctx, command, args); err != nil {
		r.logger.Error(err.Error())
	}
}

// ExecuteAsync runs Execute on its own goroutine. The returned channel is closed once the
// line has been handled.
func (r *Registry) ExecuteAsync(ctx context.Context, line string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Execute(ctx, line)
	}()

	return done
}

func (r *Registry) run(ctx context.Context, command *Command, args []string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errs.ErrHandlerPanic.WithArgs(command.Name, p)
		}
	}()

	return command.Execute(ctx, args)
}

// Complete returns completion candidates for a raw line whose first word is a registered
// command. It returns an empty slice for blank lines, unknown commands and lines the
// tokenizer rejects. Nothing is logged.
func (r *Registry) Complete(line string) []string {
	tokens, err := r.Split(line)
	if err != nil || len(tokens) == 0 {
		return []string{}
	}

	return r.CompleteArgs(tokens[0], tokens[1:])
}

// CompleteArgs returns completion candidates for args typed after the command name
func (r *Registry) CompleteArgs(name string, args []string) []string {
	command := r.lookup(name)
	if command == nil {
		return []string{}
	}

	return command.Complete(args)
}

// Split runs the registry's tokenizer over line without reporting failures
func (r *Registry) Split(line string) ([]string, error) {
	return r.tokenizer(line)
}

func (r *Registry) tokenize(line string) ([]string, bool) {
	tokens, err := r.Split(line)
	if err != nil {
		r.logger.Error(errs.ErrTokenize.Wrap(err).Error())
		return nil, false
	}

	return tokens, true
}
