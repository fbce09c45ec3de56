package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// errNotTerminal is returned when the raw console is requested on a non-interactive input
var errNotTerminal = errors.New("not attached to a terminal")

func isExit(line string) bool {
	switch strings.TrimSpace(line) {
	case "exit", "quit":
		return true
	}
	return false
}

// runConsole reads lines until exit or end of input. An interactive stdin gets a raw
// terminal with tab completion; anything else is read line by line.
func runConsole(ctx context.Context, load loadFunc, in *os.File, out io.Writer) error {
	if term.IsTerminal(int(in.Fd())) {
		return runTerminal(ctx, load, in)
	}

	a, err := load(out)
	if err != nil {
		return err
	}

	return readLines(ctx, a, in)
}

func readLines(ctx context.Context, a *app, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if isExit(line) {
			return nil
		}
		a.registry.Execute(ctx, line)
	}

	return scanner.Err()
}

func runTerminal(ctx context.Context, load loadFunc, in *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	screen := struct {
		io.Reader
		io.Writer
	}{in, os.Stdout}
	t := term.NewTerminal(screen, "")

	a, err := load(t)
	if err != nil {
		return err
	}
	t.SetPrompt(a.cfg.Prompt)

	t.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
		if key != '\t' || pos != len(line) {
			return "", 0, false
		}
		newLine, candidates := completeInput(a.registry, line)
		if len(candidates) > 1 {
			fmt.Fprintln(t, strings.Join(candidates, "  "))
		}
		if newLine == line {
			return "", 0, false
		}
		return newLine, len(newLine), true
	}

	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if isExit(line) {
			return nil
		}
		a.registry.Execute(ctx, line)
	}
}
