package errs

import (
	"sync"

	"github.com/stoker-console/stoker/i18n"
)

// Parser and dispatch errors
var (
	ErrUnknownOption          = i18n.NewError(ErrUnknownOptionKey)
	ErrTooManyArguments       = i18n.NewError(ErrTooManyArgumentsKey)
	ErrMissingRequiredOptions = i18n.NewError(ErrMissingRequiredOptionsKey)
	ErrNoHandler              = i18n.NewError(ErrNoHandlerKey)
	ErrCommandNotFound        = i18n.NewError(ErrCommandNotFoundKey)
	ErrInvalidValue           = i18n.NewError(ErrInvalidValueKey)
	ErrHandlerPanic           = i18n.NewError(ErrHandlerPanicKey)
	ErrTokenize               = i18n.NewError(ErrTokenizeKey)
)

// Registration errors
var (
	ErrCommandExists    = i18n.NewError(ErrCommandExistsKey)
	ErrEmptyCommandName = i18n.NewError(ErrEmptyCommandNameKey)
	ErrNilCommand       = i18n.NewError(ErrNilCommandKey)
	ErrNilTokenizer     = i18n.NewError(ErrNilTokenizerKey)
)

// Handler validation errors
var (
	ErrMissingArgument     = i18n.NewError(ErrMissingArgumentKey)
	ErrInvalidArgument     = i18n.NewError(ErrInvalidArgumentKey)
	ErrEmptyArgument       = i18n.NewError(ErrEmptyArgumentKey)
	ErrMissingOption       = i18n.NewError(ErrMissingOptionKey)
	ErrInvalidOption       = i18n.NewError(ErrInvalidOptionKey)
	ErrBindTarget          = i18n.NewError(ErrBindTargetKey)
	ErrUnsupportedBindType = i18n.NewError(ErrUnsupportedBindTypeKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []*i18n.TrError
}

var sysErrors = &builtInErrors{
	All: []*i18n.TrError{
		ErrUnknownOption,
		ErrTooManyArguments,
		ErrMissingRequiredOptions,
		ErrNoHandler,
		ErrCommandNotFound,
		ErrInvalidValue,
		ErrHandlerPanic,
		ErrTokenize,
		ErrCommandExists,
		ErrEmptyCommandName,
		ErrNilCommand,
		ErrNilTokenizer,
		ErrMissingArgument,
		ErrInvalidArgument,
		ErrEmptyArgument,
		ErrMissingOption,
		ErrInvalidOption,
		ErrBindTarget,
		ErrUnsupportedBindType,
	},
}

// Keys returns the message keys of all built-in errors
func Keys() []string {
	sysErrors.mu.Lock()
	defer sysErrors.mu.Unlock()

	keys := make([]string, len(sysErrors.All))
	for i, e := range sysErrors.All {
		keys[i] = e.Key()
	}

	return keys
}
