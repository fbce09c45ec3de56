package stoker

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/stoker-console/stoker/errs"
	orderedmap "github.com/wk8/go-ordered-map"
)

// BindTag names the struct tag read by ParsedArgs.Bind
const BindTag = "stoker"

// ParsedArgs is the result of parsing one invocation of a command.
// Arguments are kept in declaration order, Options in the order they were first set.
type ParsedArgs struct {
	Arguments *orderedmap.OrderedMap
	Options   *orderedmap.OrderedMap
	// SubCommand is the token naming the child command which received UnparsedArgs
	SubCommand   string
	UnparsedArgs []string
}

// NewParsedArgs returns an empty ParsedArgs
func NewParsedArgs() *ParsedArgs {
	return &ParsedArgs{
		Arguments:    orderedmap.New(),
		Options:      orderedmap.New(),
		UnparsedArgs: []string{},
	}
}

// Argument returns the value of the named argument
func (p *ParsedArgs) Argument(name string) (any, bool) {
	if p == nil || p.Arguments == nil {
		return nil, false
	}

	return p.Arguments.Get(name)
}

// Option returns the value of the named option
func (p *ParsedArgs) Option(name string) (any, bool) {
	if p == nil || p.Options == nil {
		return nil, false
	}

	return p.Options.Get(name)
}

// HasArgument reports whether the named argument has a value
func (p *ParsedArgs) HasArgument(name string) bool {
	_, ok := p.Argument(name)
	return ok
}

// HasOption reports whether the named option has a value, either given or defaulted
func (p *ParsedArgs) HasOption(name string) bool {
	_, ok := p.Option(name)
	return ok
}

// ArgumentNames returns the names of the arguments with a value, in declaration order
func (p *ParsedArgs) ArgumentNames() []string {
	if p == nil {
		return nil
	}
	return keysOf(p.Arguments)
}

// OptionNames returns the names of the options with a value
func (p *ParsedArgs) OptionNames() []string {
	if p == nil {
		return nil
	}
	return keysOf(p.Options)
}

func keysOf(m *orderedmap.OrderedMap) []string {
	if m == nil {
		return nil
	}

	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if k, ok := pair.Key.(string); ok {
			keys = append(keys, k)
		}
	}

	return keys
}

// ArgumentAs returns the named argument as T. ok is false when the argument has no value
// or holds a value of another type.
func ArgumentAs[T any](p *ParsedArgs, name string) (T, bool) {
	v, found := p.Argument(name)
	if !found {
		var zero T
		return zero, false
	}
	t, ok := v.(T)

	return t, ok
}

// OptionAs returns the named option as T
func OptionAs[T any](p *ParsedArgs, name string) (T, bool) {
	v, found := p.Option(name)
	if !found {
		var zero T
		return zero, false
	}
	t, ok := v.(T)

	return t, ok
}

// RequireArgument returns the named argument as T for use in handlers.
// It fails with errs.ErrMissingArgument or errs.ErrInvalidArgument.
func RequireArgument[T any](p *ParsedArgs, name string) (T, error) {
	v, found := p.Argument(name)
	if !found || v == nil {
		var zero T
		return zero, errs.ErrMissingArgument.WithArgs(name)
	}
	t, ok := v.(T)
	if !ok {
		return t, errs.ErrInvalidArgument.WithArgs(name)
	}

	return t, nil
}

// RequireNonEmptyArgument is RequireArgument for strings which also rejects blank values
// with errs.ErrEmptyArgument
func RequireNonEmptyArgument(p *ParsedArgs, name string) (string, error) {
	s, err := RequireArgument[string](p, name)
	if err != nil {
		return s, err
	}
	if strings.TrimSpace(s) == "" {
		return s, errs.ErrEmptyArgument.WithArgs(name)
	}

	return s, nil
}

// RequireOption returns the named option as T for use in handlers.
// It fails with errs.ErrMissingOption or errs.ErrInvalidOption.
func RequireOption[T any](p *ParsedArgs, name string) (T, error) {
	v, found := p.Option(name)
	if !found || v == nil {
		var zero T
		return zero, errs.ErrMissingOption.WithArgs(name)
	}
	t, ok := v.(T)
	if !ok {
		return t, errs.ErrInvalidOption.WithArgs(name)
	}

	return t, nil
}

// Bind copies argument and option values into the fields of the struct dst points to.
// A field is matched by its `stoker:"name"` tag, or by its name in kebab case
// (PageSize matches page-size). Fields tagged `stoker:"-"` and fields without a value are
// left untouched. Arguments take precedence over options of the same name.
func (p *ParsedArgs) Bind(dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errs.ErrBindTarget
	}

	target := rv.Elem()
	st := target.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get(BindTag)
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToKebab(field.Name)
		}

		value, ok := p.Argument(name)
		if !ok {
			value, ok = p.Option(name)
		}
		if !ok || value == nil {
			continue
		}

		if err := assignValue(target.Field(i), value); err != nil {
			return errs.ErrUnsupportedBindType.WithArgs(name, field.Name, field.Type).Wrap(err)
		}
	}

	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func assignValue(field reflect.Value, value any) error {
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(field.Type()) {
		field.Set(v)
		return nil
	}

	if s, ok := value.(string); ok {
		return assignString(field, s)
	}

	if isNumeric(v.Kind()) && isNumeric(field.Kind()) && field.Type() != durationType {
		field.Set(v.Convert(field.Type()))
		return nil
	}

	return strconv.ErrSyntax
}

func assignString(field reflect.Value, s string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Bool:
		b, err := ParseFlag(s)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return strconv.ErrSyntax
	}

	return nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}
