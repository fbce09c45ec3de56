package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stoker-console/stoker/internal/config"
)

var (
	errBuiltinClash  = errors.New("a built-in command name is already taken")
	errCommandFailed = errors.New("command failed")
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "stoker",
		Short:        "An interactive command console",
		Long:         "An interactive command console with tab completion, driving an in-memory card deck.",
		SilenceUsage: true,
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")

	load := func(out io.Writer) (*app, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return newApp(cfg, out)
	}

	root.AddCommand(
		newReplCmd(load),
		newExecCmd(load),
		newCompleteCmd(load),
	)

	return root
}

type loadFunc func(out io.Writer) (*app, error)

func newReplCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(contextOf(cmd), load, os.Stdin, cmd.OutOrStdout())
		},
	}
}

func newExecCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <line>...",
		Short: "Run one console line",
		Long:  "Run one console line. The arguments are joined with spaces and split again by the console tokenizer.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.registry.Execute(contextOf(cmd), strings.Join(args, " "))
			if a.failed() {
				return errCommandFailed
			}

			return nil
		},
	}
}

func newCompleteCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <line>...",
		Short: "Print the completion candidates of a console line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			line := strings.Join(args, " ")
			var candidates []string
			if len(args) == 1 && !strings.Contains(line, " ") {
				candidates = a.registry.CommandNames(line)
			} else {
				candidates = a.registry.Complete(line)
				sort.Strings(candidates)
			}

			for _, c := range candidates {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}

			return nil
		},
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
