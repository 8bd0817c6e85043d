// Package errs defines the translation keys and sentinel errors reported by optscan.
package errs

// Prefix for all optscan translation keys
const (
	prefixKey = "optscan"
)

// Error prefixes
const (
	ErrorPrefixKey = prefixKey + ".error"
)

// Category keys
const (
	ErrParseKey         = ErrorPrefixKey + ".parse"
	ErrConfigurationKey = ErrorPrefixKey + ".configuration"
)

// Scanner error keys
const (
	ErrInvalidNameRuneKey              = ErrorPrefixKey + ".invalid_name_rune"
	ErrInvalidDeclaredNameKey          = ErrorPrefixKey + ".invalid_declared_name"
	ErrUnrecognizedOptionKey           = ErrorPrefixKey + ".unrecognized_option"
	ErrMissingValueKey                 = ErrorPrefixKey + ".missing_value"
	ErrMissingValueAtEndKey            = ErrorPrefixKey + ".missing_value_at_end"
	ErrMissingValueBeforeTerminatorKey = ErrorPrefixKey + ".missing_value_before_terminator"
	ErrMissingValueBeforeLongOptionKey = ErrorPrefixKey + ".missing_value_before_long_option"
	ErrMissingValueBeforeOptionKey     = ErrorPrefixKey + ".missing_value_before_option"
	ErrLongOptionRequiresValueKey      = ErrorPrefixKey + ".long_option_requires_value"
	ErrValueNotAllowedKey              = ErrorPrefixKey + ".value_not_allowed"
	ErrInvalidBundleKey                = ErrorPrefixKey + ".invalid_bundle"
	ErrDuplicateOptionKey              = ErrorPrefixKey + ".duplicate_option"
)

// Configuration error keys
const (
	ErrNameInUseKey = ErrorPrefixKey + ".name_in_use"
	ErrNilOptionKey = ErrorPrefixKey + ".nil_option"
	ErrEmptyNameKey = ErrorPrefixKey + ".empty_name"
)

// Result and binding error keys
const (
	ErrOptionNotSetKey      = ErrorPrefixKey + ".option_not_set"
	ErrConversionKey        = ErrorPrefixKey + ".conversion"
	ErrNotAStructPointerKey = ErrorPrefixKey + ".not_a_struct_pointer"
	ErrUnsupportedFieldKey  = ErrorPrefixKey + ".unsupported_field"
	ErrInvalidTagFormatKey  = ErrorPrefixKey + ".invalid_tag_format"
	ErrInvalidTagValueKey   = ErrorPrefixKey + ".invalid_tag_value"
	ErrForeignResultKey     = ErrorPrefixKey + ".foreign_result"
)
