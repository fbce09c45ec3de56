package stoker

// CommandBuilder fluently builds a command tree. SubCommand descends into a new child and
// Parent ascends back; the link to the parent only lives in the builder.
//
//	card := NewBuilder("card").
//		WithDescription("Manage cards").
//		UseHelp(logger).
//		SubCommand("add").
//			WithDescription("Add a card").
//			StringArgument("name").WithValues(catalog...).Parent().
//			IntOption("pile").WithDefaultValue("1").Parent().
//			Handle(addCard).
//			UseHelp(logger).
//			Parent().
//		Build()
type CommandBuilder struct {
	command *Command
	parent  *CommandBuilder
}

// NewBuilder starts building a command named name
func NewBuilder(name string) *CommandBuilder {
	return &CommandBuilder{command: NewCommand(WithName(name))}
}

// WithDescription sets the command's description
func (b *CommandBuilder) WithDescription(description string) *CommandBuilder {
	b.command.Description = description
	return b
}

// SubCommand adds a child command and returns its builder
func (b *CommandBuilder) SubCommand(name string) *CommandBuilder {
	child := NewCommand(WithName(name))
	b.command.AddSubcommand(child)

	return &CommandBuilder{command: child, parent: b}
}

// Handle sets the command's handler
func (b *CommandBuilder) Handle(handler Handler) *CommandBuilder {
	b.command.SetHandler(handler)
	return b
}

// Use wraps the command's handler with middleware
func (b *CommandBuilder) Use(middleware ...Middleware) *CommandBuilder {
	b.command.Use(middleware...)
	return b
}

// UseHelp adds -h/--help to the command, see Command.UseHelp
func (b *CommandBuilder) UseHelp(logger Logger) *CommandBuilder {
	b.command.UseHelp(logger)
	return b
}

// Parent returns the builder of the enclosing command. The root builder returns itself.
func (b *CommandBuilder) Parent() *CommandBuilder {
	if b.parent == nil {
		return b
	}
	return b.parent
}

// Command returns the command being built by this builder
func (b *CommandBuilder) Command() *Command {
	return b.command
}

// Build returns the root command of the tree
func (b *CommandBuilder) Build() *Command {
	root := b
	for root.parent != nil {
		root = root.parent
	}

	return root.command
}

// Usage returns the usage line of the command being built
func (b *CommandBuilder) Usage() string {
	return NewRenderer().CommandUsage(b.command)
}

// StringArgument adds a string argument
func (b *CommandBuilder) StringArgument(name string) *ArgumentBuilder[string] {
	return ArgumentFor(b, name, ParseString)
}

// IntArgument adds an int argument
func (b *CommandBuilder) IntArgument(name string) *ArgumentBuilder[int] {
	return ArgumentFor(b, name, ParseInt)
}

// StringOption adds a string option
func (b *CommandBuilder) StringOption(name string) *OptionBuilder[string] {
	return OptionFor(b, name, ParseString)
}

// IntOption adds an int option
func (b *CommandBuilder) IntOption(name string) *OptionBuilder[int] {
	return OptionFor(b, name, ParseInt)
}

// FlagOption adds a boolean option
func (b *CommandBuilder) FlagOption(name string) *OptionBuilder[bool] {
	return OptionFor(b, name, ParseFlag)
}

// ArgumentBuilder configures an argument added by a CommandBuilder
type ArgumentBuilder[T any] struct {
	argument *Argument[T]
	parent   *CommandBuilder
}

// ArgumentFor adds an argument of type T to the command being built by b
func ArgumentFor[T any](b *CommandBuilder, name string, parser ParseFunc[T]) *ArgumentBuilder[T] {
	a := NewArgument(name, parser)
	b.command.AddArgument(a)

	return &ArgumentBuilder[T]{argument: a, parent: b}
}

// WithDescription sets the argument's help text
func (ab *ArgumentBuilder[T]) WithDescription(description string) *ArgumentBuilder[T] {
	ab.argument.Set(WithDescription(description))
	return ab
}

// WithDefaultValue sets the raw value parsed when the argument is not given
func (ab *ArgumentBuilder[T]) WithDefaultValue(defaultValue string) *ArgumentBuilder[T] {
	ab.argument.Set(WithDefaultValue(defaultValue))
	return ab
}

// WithParser replaces the function converting the raw token into T
func (ab *ArgumentBuilder[T]) WithParser(parser ParseFunc[T]) *ArgumentBuilder[T] {
	ab.argument.Parser = parser
	return ab
}

// WithSuggestions sets the lazy provider of completion candidates
func (ab *ArgumentBuilder[T]) WithSuggestions(provider SuggestFunc) *ArgumentBuilder[T] {
	ab.argument.Set(WithSuggestions(provider))
	return ab
}

// WithValues suggests a fixed list of values
func (ab *ArgumentBuilder[T]) WithValues(values ...string) *ArgumentBuilder[T] {
	ab.argument.Set(WithValues(values...))
	return ab
}

// Build returns the argument
func (ab *ArgumentBuilder[T]) Build() *Argument[T] {
	return ab.argument
}

// Parent returns the builder of the command owning the argument
func (ab *ArgumentBuilder[T]) Parent() *CommandBuilder {
	return ab.parent
}

// OptionBuilder configures an option added by a CommandBuilder
type OptionBuilder[T any] struct {
	option *Option[T]
	parent *CommandBuilder
}

// OptionFor adds an option of type T to the command being built by b
func OptionFor[T any](b *CommandBuilder, name string, parser ParseFunc[T]) *OptionBuilder[T] {
	o := NewOption(name, parser)
	b.command.AddOption(o)

	return &OptionBuilder[T]{option: o, parent: b}
}

// WithDescription sets the option's help text
func (ob *OptionBuilder[T]) WithDescription(description string) *OptionBuilder[T] {
	ob.option.Set(WithDescription(description))
	return ob
}

// WithDefaultValue sets the raw value parsed when the option is absent or has no value
func (ob *OptionBuilder[T]) WithDefaultValue(defaultValue string) *OptionBuilder[T] {
	ob.option.Set(WithDefaultValue(defaultValue))
	return ob
}

// WithParser replaces the function converting the raw value into T
func (ob *OptionBuilder[T]) WithParser(parser ParseFunc[T]) *OptionBuilder[T] {
	ob.option.Parser = parser
	return ob
}

// WithSuggestions sets the lazy provider of completion candidates for the option's value
func (ob *OptionBuilder[T]) WithSuggestions(provider SuggestFunc) *OptionBuilder[T] {
	ob.option.Set(WithSuggestions(provider))
	return ob
}

// WithValues suggests a fixed list of values
func (ob *OptionBuilder[T]) WithValues(values ...string) *OptionBuilder[T] {
	ob.option.Set(WithValues(values...))
	return ob
}

// WithAliases adds alternative names, matched like the option's name
func (ob *OptionBuilder[T]) WithAliases(aliases ...string) *OptionBuilder[T] {
	ob.option.Set(WithAliases(aliases...))
	return ob
}

// Required marks the option as required
func (ob *OptionBuilder[T]) Required() *OptionBuilder[T] {
	ob.option.Set(SetRequired(true))
	return ob
}

// Build returns the option
func (ob *OptionBuilder[T]) Build() *Option[T] {
	return ob.option
}

// Parent returns the builder of the command owning the option
func (ob *OptionBuilder[T]) Parent() *CommandBuilder {
	return ob.parent
}
