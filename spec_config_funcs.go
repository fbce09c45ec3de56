package stoker

// WithDescription sets the description shown in help output
func WithDescription(description string) ConfigureSpecFunc {
	return func(spec *Spec) {
		spec.Description = description
	}
}

// WithDefaultValue sets the raw value parsed when the argument or option is not given.
// An option given without a value also falls back to it.
func WithDefaultValue(defaultValue string) ConfigureSpecFunc {
	return func(spec *Spec) {
		spec.DefaultValue = defaultValue
	}
}

// WithSuggestions sets the provider queried during completion. The provider must be fast:
// completion calls it synchronously.
func WithSuggestions(provider SuggestFunc) ConfigureSpecFunc {
	return func(spec *Spec) {
		spec.Suggestions = provider
	}
}

// WithValues suggests a fixed list of values
func WithValues(values ...string) ConfigureSpecFunc {
	fixed := append([]string(nil), values...)
	return func(spec *Spec) {
		spec.Suggestions = func() []string {
			return fixed
		}
	}
}

// WithAliases adds alternative option names, typically a short form such as "h"
func WithAliases(aliases ...string) ConfigureSpecFunc {
	return func(spec *Spec) {
		spec.Aliases = append(spec.Aliases, aliases...)
	}
}

// SetRequired marks an option as required
func SetRequired(required bool) ConfigureSpecFunc {
	return func(spec *Spec) {
		spec.Required = required
	}
}
