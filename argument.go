package stoker

import (
	"reflect"
)

// Argument is a positional argument producing values of type T
type Argument[T any] struct {
	Spec
	Parser ParseFunc[T]
}

// NewArgument creates a positional argument. A nil parser always yields the zero value of T.
func NewArgument[T any](name string, parser ParseFunc[T], configs ...ConfigureSpecFunc) *Argument[T] {
	a := &Argument[T]{
		Spec:   Spec{Name: name},
		Parser: parser,
	}
	a.Set(configs...)

	return a
}

// Set applies configs to the argument's schema
func (a *Argument[T]) Set(configs ...ConfigureSpecFunc) {
	for _, config := range configs {
		config(&a.Spec)
	}
}

// Definition returns the argument's schema
func (a *Argument[T]) Definition() *Spec {
	return &a.Spec
}

// Parse converts value to T
func (a *Argument[T]) Parse(value string) (T, error) {
	return parseWith(a.Parser, value)
}

// ParseValue converts value to T and returns it as any
func (a *Argument[T]) ParseValue(value string) (any, error) {
	v, err := a.Parse(value)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// ValueType returns the type of T
func (a *Argument[T]) ValueType() reflect.Type {
	return typeOf[T]()
}

// Suggest returns the argument's completion candidates
func (a *Argument[T]) Suggest() []string {
	return a.Spec.suggest()
}

// Value returns the parsed value of the argument from args
func (a *Argument[T]) Value(args *ParsedArgs) (T, bool) {
	return ArgumentAs[T](args, a.Name)
}

func (a *Argument[T]) isArgument() {}

func parseWith[T any](parser ParseFunc[T], value string) (T, error) {
	if parser == nil {
		var zero T
		return zero, nil
	}

	return parser(value)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (s *Spec) suggest() (suggestions []string) {
	if s.Suggestions == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			suggestions = nil
		}
	}()

	return s.Suggestions()
}
