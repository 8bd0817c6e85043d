// Package optscan classifies command-line tokens into options and positional arguments
// following POSIX/GNU conventions.
//
// It recognizes:
//
//	--           terminator, every following token is positional
//	--name       long option
//	--name=value long option with a value
//	-c           short option, its value (if it takes one) may be the next token
//	-cVALUE      short option with a crammed value, when c may take a value
//	-cde         bundle of value-less short options, when c takes no value
//	-            a lone dash, always positional
//
// Each Option declares whether its value is Optional, Required or NotAllowed. Parsing is a single
// synchronous pass which fails on the first malformed token and never returns a partial Result.
package optscan

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/napalu/optscan/i18n"
	"github.com/napalu/optscan/parse"
)

// Parse is a shortcut for building a Parser accepting options and calling Parse on args.
// Redefinition is allowed unless WithRedefinition(false) is passed.
func Parse(args []string, options []*Option, configs ...ConfigureParserFunc) (*Result, error) {
	p, err := NewParserWith(append([]ConfigureParserFunc{WithOptions(options...)}, configs...)...)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

// NewParser returns a Parser accepting no options, allowing redefinition and logging nothing.
// Use NewParserWith to configure it using option functions.
func NewParser() *Parser {
	return &Parser{
		options:           []*Option{},
		allowRedefinition: true,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		lang:              language.English,
	}
}

// AddOption adds opt to the accepted options. The error is a configuration error when opt is invalid
// or one of its names is already taken by another option.
func (p *Parser) AddOption(opt *Option) error {
	candidate := append(append([]*Option(nil), p.options...), opt)
	if _, err := newRegistry(candidate); err != nil {
		return p.localize(err)
	}
	p.options = candidate

	return nil
}

// SetRedefinition sets whether an option may be given more than once. When allowed the last
// assignment wins, otherwise the second assignment fails the parse.
func (p *Parser) SetRedefinition(allow bool) {
	p.allowRedefinition = allow
}

// SetLogger sets the logger receiving debug traces of the scan. A nil logger disables tracing.
func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p.logger = logger
}

// SetLanguage sets the language of the errors returned by Parse and by the Result
func (p *Parser) SetLanguage(lang language.Tag) {
	p.lang = i18n.Default().Match(lang)
}

// Options returns the accepted options in declaration order
func (p *Parser) Options() []*Option {
	return append([]*Option(nil), p.options...)
}

// AllowsRedefinition reports whether an option may be given more than once
func (p *Parser) AllowsRedefinition() bool {
	return p.allowRedefinition
}

// Language returns the language errors are reported in
func (p *Parser) Language() language.Tag {
	return p.lang
}

// Parse scans args once. On success the Result holds every option given, with its value, and every
// positional argument in order. On failure the error is errors.Is errs.ErrParse for bad input or
// errs.ErrConfiguration when the accepted options themselves are invalid.
func (p *Parser) Parse(args []string) (*Result, error) {
	reg, err := newRegistry(p.options)
	if err != nil {
		return nil, p.localize(err)
	}

	s := newScanner(reg, p.allowRedefinition, p.logger)
	if err := s.scan(parse.NewState(args)); err != nil {
		return nil, p.localize(err)
	}

	return s.result(p.lang), nil
}

// ParseString splits argString using shell quoting rules and parses the resulting tokens
func (p *Parser) ParseString(argString string) (*Result, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

func (p *Parser) localize(err error) error {
	if tr, ok := err.(*i18n.TrError); ok {
		return tr.In(p.lang)
	}

	return err
}
