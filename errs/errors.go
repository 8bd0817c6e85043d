package errs

import (
	"github.com/napalu/optscan/i18n"
)

// Categories. Every error returned by a parse is errors.Is one of these two.
var (
	// ErrParse is the category of failures caused by the scanned tokens (bad user input)
	ErrParse = i18n.NewError(ErrParseKey)
	// ErrConfiguration is the category of failures caused by the declared options (programmer mistake)
	ErrConfiguration = i18n.NewError(ErrConfigurationKey)
)

// Scanner errors
var (
	ErrInvalidNameRune     = i18n.NewError(ErrInvalidNameRuneKey)
	ErrInvalidDeclaredName = i18n.NewError(ErrInvalidDeclaredNameKey).Under(ErrInvalidNameRune)
	ErrUnrecognizedOption  = i18n.NewError(ErrUnrecognizedOptionKey)
	ErrValueNotAllowed     = i18n.NewError(ErrValueNotAllowedKey)
	ErrInvalidBundle       = i18n.NewError(ErrInvalidBundleKey)
	ErrDuplicateOption     = i18n.NewError(ErrDuplicateOptionKey)
)

// Missing value errors. The situational variants are all errors.Is ErrMissingValue.
var (
	ErrMissingValue                 = i18n.NewError(ErrMissingValueKey)
	ErrMissingValueAtEnd            = i18n.NewError(ErrMissingValueAtEndKey).Under(ErrMissingValue)
	ErrMissingValueBeforeTerminator = i18n.NewError(ErrMissingValueBeforeTerminatorKey).Under(ErrMissingValue)
	ErrMissingValueBeforeLongOption = i18n.NewError(ErrMissingValueBeforeLongOptionKey).Under(ErrMissingValue)
	ErrMissingValueBeforeOption     = i18n.NewError(ErrMissingValueBeforeOptionKey).Under(ErrMissingValue)
	ErrLongOptionRequiresValue      = i18n.NewError(ErrLongOptionRequiresValueKey).Under(ErrMissingValue)
)

// Configuration errors
var (
	ErrNameInUse = i18n.NewError(ErrNameInUseKey)
	ErrNilOption = i18n.NewError(ErrNilOptionKey)
	ErrEmptyName = i18n.NewError(ErrEmptyNameKey)
)

// Result and binding errors
var (
	ErrOptionNotSet      = i18n.NewError(ErrOptionNotSetKey)
	ErrConversion        = i18n.NewError(ErrConversionKey)
	ErrNotAStructPointer = i18n.NewError(ErrNotAStructPointerKey)
	ErrUnsupportedField  = i18n.NewError(ErrUnsupportedFieldKey)
	ErrInvalidTagFormat  = i18n.NewError(ErrInvalidTagFormatKey)
	ErrInvalidTagValue   = i18n.NewError(ErrInvalidTagValueKey)
	ErrForeignResult     = i18n.NewError(ErrForeignResultKey)
)
