package optscan

import (
	"strings"
	"unicode/utf8"
)

// NewOption convenience initialization method to describe an Option. Alternatively, use NewOpt to
// configure an Option using option functions.
func NewOption(expectation ValueExpectation, names ...string) *Option {
	return &Option{
		Names:       append([]string(nil), names...),
		Expectation: expectation,
	}
}

// ShortNames returns the names made of exactly one Unicode scalar value
func (o *Option) ShortNames() []string {
	var short []string
	for _, name := range o.Names {
		if isShortName(name) {
			short = append(short, name)
		}
	}

	return short
}

// LongNames returns the names longer than one Unicode scalar value
func (o *Option) LongNames() []string {
	var long []string
	for _, name := range o.Names {
		if !isShortName(name) {
			long = append(long, name)
		}
	}

	return long
}

// HasName reports whether name is one of the option's names
func (o *Option) HasName(name string) bool {
	for _, n := range o.Names {
		if n == name {
			return true
		}
	}

	return false
}

// String renders the option the way it is invoked, e.g. "-r|--ratio"
func (o *Option) String() string {
	if o == nil {
		return "<nil>"
	}
	invocations := make([]string, 0, len(o.Names))
	for _, name := range o.Names {
		invocations = append(invocations, displayName(name))
	}

	return strings.Join(invocations, "|")
}

func isShortName(name string) bool {
	return utf8.RuneCountInString(name) == 1
}

// displayName prefixes name with the prefix it is invoked with
func displayName(name string) string {
	if isShortName(name) {
		return ShortPrefix + name
	}

	return LongPrefix + name
}
