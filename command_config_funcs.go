package stoker

// NewCommand creates and returns a new Command object. This function takes variadic `ConfigureCommandFunc` functions to customize the created command.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	cmd.Set(configs...)

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithName sets the name used to invoke the command
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithCommandDescription sets the description for the command. This description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithArguments appends positional arguments in the order given
func WithArguments(arguments ...ArgumentSpec) ConfigureCommandFunc {
	return func(command *Command) {
		for _, a := range arguments {
			command.AddArgument(a)
		}
	}
}

// WithOptions appends options
func WithOptions(options ...OptionSpec) ConfigureCommandFunc {
	return func(command *Command) {
		for _, o := range options {
			command.AddOption(o)
		}
	}
}

// WithSubcommands function takes a list of subcommands and associates them with a command.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		for _, sub := range subcommands {
			command.AddSubcommand(sub)
		}
	}
}

// WithHandler sets the function run when the command is executed
func WithHandler(handler Handler) ConfigureCommandFunc {
	return func(command *Command) {
		command.Handler = handler
	}
}

// WithMiddleware wraps the command's handler, see Command.Use
func WithMiddleware(middleware ...Middleware) ConfigureCommandFunc {
	return func(command *Command) {
		command.Use(middleware...)
	}
}

// WithHelp adds a --help option which logs the command's help text to logger, see Command.UseHelp
func WithHelp(logger Logger) ConfigureCommandFunc {
	return func(command *Command) {
		command.UseHelp(logger)
	}
}
