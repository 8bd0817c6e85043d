package i18n

import (
	"errors"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is looked up in a Bundle
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
}

// TrError represents a translatable error with optional formatting arguments,
// error wrapping and category membership.
//
// Example usage:
//
//	err := NewError("optscan.error.unrecognized_option")
//	err = err.WithArgs("--foo").Under(ErrSomeCategory)
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The translation key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
	// Errors this error is also considered to be (errors.Is)
	categories []error
	// Language the message is rendered in; the zero Tag means the bundle default
	lang   language.Tag
	bundle *Bundle
}

// NewError creates a new translatable error with a key. The returned value is its own sentinel.
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the translated message, formatted with args if provided
func (e *TrError) Error() string {
	b := e.bundle
	if b == nil {
		b = Default()
	}

	msg := b.TL(e.lang, e.key, e.args...)
	if e.wrapped == nil {
		return msg
	}

	wrapped := e.wrapped
	if tr, ok := wrapped.(*TrError); ok && e.lang != language.Und {
		wrapped = tr.In(e.lang)
	}

	return msg + ": " + wrapped.Error()
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) *TrError {
	c := e.clone()
	c.args = args

	return c
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) *TrError {
	c := e.clone()
	c.wrapped = err

	return c
}

// Under returns a copy of the error which additionally satisfies errors.Is for every category
func (e *TrError) Under(categories ...error) *TrError {
	c := e.clone()
	c.categories = append(c.categories, categories...)

	return c
}

// In returns a copy of the error rendered in lang
func (e *TrError) In(lang language.Tag) *TrError {
	c := e.clone()
	c.lang = lang

	return c
}

// WithBundle returns a copy of the error rendered from bundle instead of the default bundle
func (e *TrError) WithBundle(bundle *Bundle) *TrError {
	c := e.clone()
	c.bundle = bundle

	return c
}

// Is implements errors.Is for comparison with the sentinel error and categories
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok && e.sentinel == t.sentinel {
		return true
	}
	if target == e.sentinel {
		return true
	}
	for _, category := range e.categories {
		if errors.Is(category, target) {
			return true
		}
	}

	return false
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Language returns the language the error is rendered in
func (e *TrError) Language() language.Tag {
	return e.lang
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) clone() *TrError {
	c := *e
	c.categories = append([]error(nil), e.categories...)

	return &c
}
