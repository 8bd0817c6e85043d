package optscan

import (
	"log/slog"

	"golang.org/x/text/language"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithOption(NewOption(Required, "r", "ratio")),
//		WithOption(NewOpt(
//			WithNames("s", "shouty", "loud"),
//			WithExpectation(Optional))),
//		WithOption(NewOption(NotAllowed, "S", "slow")),
//		WithRedefinition(false))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithOption is a wrapper for AddOption
func WithOption(option *Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddOption(option)
	}
}

// WithOptions adds every option in order, stopping at the first invalid one
func WithOptions(options ...*Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		for _, option := range options {
			if *err = parser.AddOption(option); *err != nil {
				return
			}
		}
	}
}

// WithRedefinition is a wrapper for SetRedefinition
func WithRedefinition(allow bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetRedefinition(allow)
	}
}

// WithLogger is a wrapper for SetLogger
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLogger(logger)
	}
}

// WithLanguage is a wrapper for SetLanguage
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLanguage(lang)
	}
}
