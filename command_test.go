package stoker

import (
	"context"
	"errors"
	"testing"

	"github.com/stoker-console/stoker/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Parse_Defaults(t *testing.T) {
	cmd := NewCommand(
		WithName("list"),
		WithArguments(
			NewArgument("kind", ParseString, WithDefaultValue("all")),
			NewArgument("limit", ParseInt, WithDefaultValue("5"))),
		WithOptions(
			NewOption("page", ParseInt, WithDefaultValue("1")),
			NewOption("page-size", ParseInt, WithDefaultValue("10")),
			NewOption("verbose", ParseFlag)),
	)

	args, err := cmd.Parse([]string{})
	require.NoError(t, err)

	assert.Equal(t, []string{"kind", "limit"}, args.ArgumentNames())
	assert.Equal(t, []string{"page", "page-size"}, args.OptionNames())

	kind, _ := ArgumentAs[string](args, "kind")
	limit, _ := ArgumentAs[int](args, "limit")
	page, _ := OptionAs[int](args, "page")
	assert.Equal(t, "all", kind)
	assert.Equal(t, 5, limit)
	assert.Equal(t, 1, page)
	assert.False(t, args.HasOption("verbose"))
	assert.Empty(t, args.SubCommand)
	assert.Empty(t, args.UnparsedArgs)
}

func TestCommand_Parse_Tokens(t *testing.T) {
	cmd := NewCommand(
		WithName("add"),
		WithArguments(
			NewArgument("name", ParseString),
			NewArgument("amount", ParseInt, WithDefaultValue("1"))),
		WithOptions(
			NewOption("pile", ParseInt, WithDefaultValue("1"), WithAliases("p")),
			NewOption("verbose", ParseFlag)),
	)

	args, err := cmd.Parse([]string{"--PILE", "3", "fireball"})
	require.NoError(t, err)

	name, _ := ArgumentAs[string](args, "name")
	pile, _ := OptionAs[int](args, "pile")
	assert.Equal(t, "fireball", name)
	assert.Equal(t, 3, pile)

	// "2" is taken as the value of -verbose, which is not a valid bool
	_, err = cmd.Parse([]string{"fireball", "-verbose", "2"})
	assert.True(t, errors.Is(err, errs.ErrInvalidValue))

	args, err = cmd.Parse([]string{"fireball", "--verbose", "--pile", "2", "4"})
	require.NoError(t, err)
	verbose, _ := OptionAs[bool](args, "verbose")
	amount, _ := ArgumentAs[int](args, "amount")
	pile, _ = OptionAs[int](args, "pile")
	assert.True(t, verbose)
	assert.Equal(t, 4, amount)
	assert.Equal(t, 2, pile)

	// arguments stay in declaration order whatever order they were filled in
	assert.Equal(t, []string{"name", "amount"}, args.ArgumentNames())
}

func TestCommand_Parse_Alias(t *testing.T) {
	cmd := NewCommand(
		WithName("list"),
		WithOptions(NewOption("page", ParseInt, WithAliases("p"))),
	)

	args, err := cmd.Parse([]string{"-p", "4"})
	require.NoError(t, err)

	page, ok := OptionAs[int](args, "page")
	assert.True(t, ok)
	assert.Equal(t, 4, page)
}

func TestCommand_Parse_FlagFollowedByFlag(t *testing.T) {
	cmd := NewCommand(
		WithName("run"),
		WithOptions(
			NewOption("help", ParseFlag),
			NewOption("verbose", ParseFlag),
			NewOption("level", ParseInt, WithDefaultValue("2"))),
	)

	args, err := cmd.Parse([]string{"--help", "--verbose"})
	require.NoError(t, err)

	help, _ := OptionAs[bool](args, "help")
	verbose, _ := OptionAs[bool](args, "verbose")
	assert.True(t, help)
	assert.True(t, verbose)

	// a missing value falls back to the default
	args, err = cmd.Parse([]string{"--level", "--help"})
	require.NoError(t, err)
	level, _ := OptionAs[int](args, "level")
	assert.Equal(t, 2, level)
}

func TestCommand_Parse_Errors(t *testing.T) {
	cmd := NewCommand(
		WithName("echo"),
		WithArguments(NewArgument("message", ParseString)),
		WithOptions(
			NewOption("times", ParseInt),
			NewOption("target", ParseString, SetRequired(true)),
			NewOption("channel", ParseString, SetRequired(true))),
	)

	tests := []struct {
		name   string
		tokens []string
		want   error
		msg    string
	}{
		{
			name:   "unknown option",
			tokens: []string{"--loud"},
			want:   errs.ErrUnknownOption,
			msg:    "unknown option: --loud",
		},
		{
			name:   "too many arguments",
			tokens: []string{"hello", "world", "--target", "a", "--channel", "b"},
			want:   errs.ErrTooManyArguments,
			msg:    "one too many arguments: world",
		},
		{
			name:   "missing required options",
			tokens: []string{"hello"},
			want:   errs.ErrMissingRequiredOptions,
			msg:    "missing required options: target, channel",
		},
		{
			name:   "one required option missing",
			tokens: []string{"--channel", "b", "hello"},
			want:   errs.ErrMissingRequiredOptions,
			msg:    "missing required options: target",
		},
		{
			name:   "invalid value",
			tokens: []string{"--times", "many"},
			want:   errs.ErrInvalidValue,
		},
		{
			name:   "lone dash is an unknown option",
			tokens: []string{"-"},
			want:   errs.ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.Parse(tt.tokens)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}

	// required options may appear anywhere
	_, err := cmd.Parse([]string{"hello", "--target", "a", "--channel", "b"})
	assert.NoError(t, err)
	_, err = cmd.Parse([]string{"--target", "a", "hello", "--channel", "b"})
	assert.NoError(t, err)
}

func TestCommand_Parse_InvalidDefault(t *testing.T) {
	cmd := NewCommand(
		WithName("bad"),
		WithOptions(NewOption("n", ParseInt, WithDefaultValue("x"))),
	)

	_, err := cmd.Parse(nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidValue))
}

func TestCommand_Parse_NilParser(t *testing.T) {
	cmd := NewCommand(
		WithName("raw"),
		WithArguments(NewArgument[int]("n", nil)),
	)

	args, err := cmd.Parse([]string{"whatever"})
	require.NoError(t, err)
	n, ok := ArgumentAs[int](args, "n")
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestCommand_Parse_SubCommand(t *testing.T) {
	card := NewCommand(
		WithName("card"),
		WithOptions(NewOption("deck", ParseString, SetRequired(true))),
		WithSubcommands(NewCommand(WithName("add"))),
	)

	args, err := card.Parse([]string{"ADD", "fireball", "--unknown"})
	require.NoError(t, err, "required options and the rest are left to the subcommand")

	assert.Equal(t, "ADD", args.SubCommand)
	assert.Equal(t, []string{"fireball", "--unknown"}, args.UnparsedArgs)
}

func TestCommand_Execute(t *testing.T) {
	var got string
	card := NewCommand(
		WithName("card"),
		WithSubcommands(
			NewCommand(
				WithName("add"),
				WithArguments(NewArgument("name", ParseString)),
				WithHandler(func(ctx context.Context, args *ParsedArgs) error {
					got, _ = ArgumentAs[string](args, "name")
					return nil
				})),
			NewCommand(WithName("remove"))),
	)

	require.NoError(t, card.Execute(context.Background(), []string{"add", "icebolt"}))
	assert.Equal(t, "icebolt", got)

	err := card.Execute(context.Background(), []string{"remove"})
	assert.True(t, errors.Is(err, errs.ErrNoHandler))
	assert.Equal(t, "no handler set for command remove", err.Error())

	err = card.Execute(context.Background(), nil)
	assert.True(t, errors.Is(err, errs.ErrNoHandler))

	err = card.Execute(context.Background(), []string{"add", "a", "b"})
	assert.True(t, errors.Is(err, errs.ErrTooManyArguments))
}

func TestCommand_Execute_HandlerError(t *testing.T) {
	failure := errors.New("deck is full")
	cmd := NewCommand(
		WithName("add"),
		WithHandler(func(ctx context.Context, args *ParsedArgs) error {
			return failure
		}),
	)

	assert.Equal(t, failure, cmd.Execute(context.Background(), nil))
}

func TestCommand_Use(t *testing.T) {
	var trace []string
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, args *ParsedArgs) error {
				trace = append(trace, name)
				if next == nil {
					return nil
				}
				return next(ctx, args)
			}
		}
	}

	cmd := NewCommand(
		WithName("run"),
		WithMiddleware(mark("outer"), mark("inner")),
	)

	require.NoError(t, cmd.Execute(context.Background(), nil), "middleware runs without a handler")
	assert.Equal(t, []string{"outer", "inner"}, trace)

	trace = nil
	cmd.SetHandler(func(ctx context.Context, args *ParsedArgs) error {
		trace = append(trace, "handler")
		return nil
	})
	require.NoError(t, cmd.Execute(context.Background(), nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, trace)
}

func TestCommand_AddIgnoresNil(t *testing.T) {
	cmd := NewCommand(WithName("x"))
	cmd.AddArgument(nil)
	cmd.AddOption(nil)
	cmd.AddSubcommand(nil)
	cmd.Use(nil)

	assert.Empty(t, cmd.Arguments)
	assert.Empty(t, cmd.Options)
	assert.Empty(t, cmd.Subcommands)
	assert.True(t, errors.Is(cmd.Execute(context.Background(), nil), errs.ErrNoHandler))
}
