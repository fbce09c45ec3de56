package i18n

import (
	"fmt"
	"sync/atomic"
)

// TranslatableError represents an error whose message comes from a MessageProvider
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider returns the message template stored under a key
type MessageProvider interface {
	GetMessage(key string) string
}

// Formatter is implemented by providers that format messages themselves. A Bundle formats
// through its golang.org/x/text printer, so numbers follow the bundle's language
// (1500 prints as 1,500 in English).
type Formatter interface {
	T(key string, args ...interface{}) string
}

// TrError is an error identified by a message key. The message is looked up in the
// default provider each time Error is called, so replacing the provider affects errors
// that already exist. Two TrErrors match under errors.Is when their keys are equal,
// whatever their arguments or causes.
//
//	var ErrUnknownCard = i18n.NewError("stoker.deck.unknown_card")
//	return ErrUnknownCard.WithArgs(name).Wrap(err)
type TrError struct {
	key   string
	args  []interface{}
	cause error
}

// NewError returns an error for key without arguments
func NewError(key string) *TrError {
	return &TrError{key: key}
}

// Error returns the formatted message, followed by the cause if there is one
func (e *TrError) Error() string {
	msg := Format(currentProvider(), e.key, e.args...)
	if e.cause == nil {
		return msg
	}

	return msg + ": " + e.cause.Error()
}

// Format renders key with args using p. Providers implementing Formatter format the
// message themselves; for the others the template is passed to fmt.Sprintf. Without args
// the template is returned as is.
func Format(p MessageProvider, key string, args ...interface{}) string {
	if len(args) == 0 {
		return p.GetMessage(key)
	}
	if f, ok := p.(Formatter); ok {
		return f.T(key, args...)
	}

	return fmt.Sprintf(p.GetMessage(key), args...)
}

// WithArgs returns a copy of the error carrying args
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := *e
	c.args = args
	return &c
}

// Wrap returns a copy of the error caused by err
func (e *TrError) Wrap(err error) TranslatableError {
	c := *e
	c.cause = err
	return &c
}

// Is reports whether target is a TrError with the same key
func (e *TrError) Is(target error) bool {
	t, ok := target.(*TrError)
	return ok && t.key == e.key
}

// Key returns the message key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the cause
func (e *TrError) Unwrap() error {
	return e.cause
}

type providerRef struct {
	MessageProvider
}

var defaultProvider atomic.Pointer[providerRef]

// SetDefaultMessageProvider replaces the provider every TrError formats with. nil restores
// the embedded bundle.
func SetDefaultMessageProvider(p MessageProvider) {
	if p == nil {
		defaultProvider.Store(nil)
		return
	}
	defaultProvider.Store(&providerRef{p})
}

func currentProvider() MessageProvider {
	if ref := defaultProvider.Load(); ref != nil {
		return ref.MessageProvider
	}
	return Default()
}
