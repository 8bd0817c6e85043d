package optscan

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Syntax recognized by the scanner
const (
	// Terminator ends option parsing, every following token is positional
	Terminator = "--"
	// ShortPrefix introduces a short option or a group of short options
	ShortPrefix = "-"
	// LongPrefix introduces a long option
	LongPrefix = "--"
	// ValueSeparator splits a long option's name from its value
	ValueSeparator = '='
)

// ValueExpectation describes whether an Option can have or requires a value
type ValueExpectation int

const (
	// Optional denotes an Option which may have a value, but does not require one
	Optional ValueExpectation = iota
	// NotAllowed denotes an Option which must not have a value
	NotAllowed
	// Required denotes an Option which must have a value
	Required
)

// String returns the string representation of a ValueExpectation
func (v ValueExpectation) String() string {
	switch v {
	case Optional:
		return "optional"
	case NotAllowed:
		return "not allowed"
	case Required:
		return "required"
	default:
		return "unknown"
	}
}

// Option describes one option accepted by a Parser. A name made of a single Unicode scalar value
// is a short name (-x), anything longer is a long name (--name). Options are identified by pointer,
// so one Option may own any number of names.
type Option struct {
	Names       []string
	Expectation ValueExpectation
	Description string
}

// Value is what a Result holds for an option which was given
type Value struct {
	// Text is the captured value, meaningful only when HasValue is true
	Text string
	// HasValue is false when the option was given without a value
	HasValue bool
}

// Entry pairs an Option with its Value in Result.Options
type Entry struct {
	Option *Option
	Value  Value
}

// ConfigureParserFunc is used when defining a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureOptionFunc is used when defining an Option with NewOpt
type ConfigureOptionFunc func(option *Option, err *error)

// Parser holds the accepted options and the scanning policy. A Parser is never modified by Parse,
// every call builds its own name registry and scan state, so a configured Parser may be shared
// between goroutines.
type Parser struct {
	options           []*Option
	allowRedefinition bool
	logger            *slog.Logger
	lang              language.Tag
}
