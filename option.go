package stoker

import (
	"reflect"
	"strings"
)

// Option is a flagged value (`-name value` or `--name value`) producing values of type T.
// An Option[bool] is a flag: completion never expects a value after it.
type Option[T any] struct {
	Spec
	Parser ParseFunc[T]
}

// NewOption creates an option. A nil parser always yields the zero value of T.
func NewOption[T any](name string, parser ParseFunc[T], configs ...ConfigureSpecFunc) *Option[T] {
	o := &Option[T]{
		Spec:   Spec{Name: name},
		Parser: parser,
	}
	o.Set(configs...)

	return o
}

// Set applies configs to the option's schema
func (o *Option[T]) Set(configs ...ConfigureSpecFunc) {
	for _, config := range configs {
		config(&o.Spec)
	}
}

// Definition returns the option's schema
func (o *Option[T]) Definition() *Spec {
	return &o.Spec
}

// Parse converts value to T
func (o *Option[T]) Parse(value string) (T, error) {
	return parseWith(o.Parser, value)
}

// ParseValue converts value to T and returns it as any
func (o *Option[T]) ParseValue(value string) (any, error) {
	v, err := o.Parse(value)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// ValueType returns the type of T
func (o *Option[T]) ValueType() reflect.Type {
	return typeOf[T]()
}

// Suggest returns the option's completion candidates
func (o *Option[T]) Suggest() []string {
	return o.Spec.suggest()
}

// Value returns the parsed value of the option from args
func (o *Option[T]) Value(args *ParsedArgs) (T, bool) {
	return OptionAs[T](args, o.Name)
}

func (o *Option[T]) isOption() {}

// matches reports whether name (without dashes) is the option's name or one of its aliases
func (s *Spec) matches(name string) bool {
	if strings.EqualFold(s.Name, name) {
		return true
	}
	for _, alias := range s.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}

	return false
}

// hasPrefix reports whether the option's name or one of its aliases starts with prefix
func (s *Spec) hasPrefix(prefix string) bool {
	if hasPrefixFold(s.Name, prefix) {
		return true
	}
	for _, alias := range s.Aliases {
		if hasPrefixFold(alias, prefix) {
			return true
		}
	}

	return false
}

func isFlag(o OptionSpec) bool {
	return o.ValueType().Kind() == reflect.Bool
}

func isOptionToken(token string) bool {
	return strings.HasPrefix(token, "-")
}

func trimOptionToken(token string) string {
	return strings.TrimLeft(token, "-")
}
