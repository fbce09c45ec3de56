// Package errs declares the errors returned by stoker.
// This file contains the message keys of those errors.
package errs

const (
	prefixKey = "stoker"
)

const (
	ErrorPrefixKey = prefixKey + ".error"
)

// Parser and dispatch errors
const (
	ErrUnknownOptionKey          = ErrorPrefixKey + ".unknown_option"
	ErrTooManyArgumentsKey       = ErrorPrefixKey + ".too_many_arguments"
	ErrMissingRequiredOptionsKey = ErrorPrefixKey + ".missing_required_options"
	ErrNoHandlerKey              = ErrorPrefixKey + ".no_handler"
	ErrCommandNotFoundKey        = ErrorPrefixKey + ".command_not_found"
	ErrInvalidValueKey           = ErrorPrefixKey + ".invalid_value"
	ErrHandlerPanicKey           = ErrorPrefixKey + ".handler_panic"
	ErrTokenizeKey               = ErrorPrefixKey + ".tokenize"
)

// Registration errors
const (
	ErrCommandExistsKey    = ErrorPrefixKey + ".command_exists"
	ErrEmptyCommandNameKey = ErrorPrefixKey + ".empty_command_name"
	ErrNilCommandKey       = ErrorPrefixKey + ".nil_command"
	ErrNilTokenizerKey     = ErrorPrefixKey + ".nil_tokenizer"
)

// Handler validation errors
const (
	ErrMissingArgumentKey     = ErrorPrefixKey + ".missing_argument"
	ErrInvalidArgumentKey     = ErrorPrefixKey + ".invalid_argument"
	ErrEmptyArgumentKey       = ErrorPrefixKey + ".empty_argument"
	ErrMissingOptionKey       = ErrorPrefixKey + ".missing_option"
	ErrInvalidOptionKey       = ErrorPrefixKey + ".invalid_option"
	ErrBindTargetKey          = ErrorPrefixKey + ".bind_target"
	ErrUnsupportedBindTypeKey = ErrorPrefixKey + ".unsupported_bind_type"
)
