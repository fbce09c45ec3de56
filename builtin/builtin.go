// Package builtin provides commands useful in any stoker console
package builtin

import (
	"context"
	"fmt"
	"sort"

	"github.com/stoker-console/stoker"
)

// Help returns the `help` command listing the commands registered in registry, sorted
// by name. Output goes to logger.
func Help(registry *stoker.Registry, logger stoker.Logger) *stoker.Command {
	return stoker.NewBuilder("help").
		WithDescription("Display help information").
		Handle(func(ctx context.Context, args *stoker.ParsedArgs) error {
			commands := registry.Commands()
			sort.Slice(commands, func(i, j int) bool {
				return commands[i].Name < commands[j].Name
			})

			logger.Log("Available commands:")
			for _, c := range commands {
				logger.Log(fmt.Sprintf("  %-12s - %s", c.Name, c.Description))
			}

			return nil
		}).
		UseHelp(logger).
		Build()
}

// Echo returns the `echo <message>` command logging its argument
func Echo(logger stoker.Logger) *stoker.Command {
	return stoker.NewBuilder("echo").
		WithDescription("Echo a message").
		StringArgument("message").WithDescription("The message to echo").Parent().
		Handle(func(ctx context.Context, args *stoker.ParsedArgs) error {
			message, err := stoker.RequireArgument[string](args, "message")
			if err != nil {
				return err
			}
			logger.Log(message)

			return nil
		}).
		UseHelp(logger).
		Build()
}

// Register adds the built-in commands to registry. It returns false if any of their
// names is already taken.
func Register(registry *stoker.Registry, logger stoker.Logger) bool {
	ok := registry.AddCommand(Help(registry, logger))
	return registry.AddCommand(Echo(logger)) && ok
}
