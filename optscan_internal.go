package optscan

import (
	"log/slog"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"

	"github.com/napalu/optscan/errs"
	"github.com/napalu/optscan/i18n"
	"github.com/napalu/optscan/parse"
)

// pendingValue is a short option waiting for the next token to supply its value
type pendingValue struct {
	option *Option
	name   string
}

// scanner carries the state of a single Parse call
type scanner struct {
	reg               registry
	allowRedefinition bool
	logger            *slog.Logger
	values            *orderedmap.OrderedMap
	positional        []string
	pending           *pendingValue
}

func newScanner(reg registry, allowRedefinition bool, logger *slog.Logger) *scanner {
	return &scanner{
		reg:               reg,
		allowRedefinition: allowRedefinition,
		logger:            logger,
		values:            orderedmap.New(),
		positional:        []string{},
	}
}

// scan consumes the whole token stream. It stops at the first error.
func (s *scanner) scan(state parse.State) error {
	for state.Advance() {
		arg := state.CurrentArg()
		s.logger.Debug("token", "pos", state.Pos(), "arg", arg)

		switch {
		case arg == Terminator:
			if err := s.resolvePending(errs.ErrMissingValueBeforeTerminator); err != nil {
				return err
			}
			rest := state.Rest()
			s.logger.Debug("terminator", "positional", len(rest))
			s.positional = append(s.positional, rest...)
		case strings.HasPrefix(arg, LongPrefix):
			if err := s.resolvePending(errs.ErrMissingValueBeforeLongOption); err != nil {
				return err
			}
			if err := s.parseLong(arg); err != nil {
				return err
			}
		case strings.HasPrefix(arg, ShortPrefix) && len(arg) > len(ShortPrefix):
			if err := s.resolvePending(errs.ErrMissingValueBeforeOption); err != nil {
				return err
			}
			if err := s.parseShort(arg); err != nil {
				return err
			}
		case s.pending != nil && s.pending.option.Expectation != NotAllowed:
			p := s.pending
			s.pending = nil
			if err := s.assign(p.option, Value{Text: arg, HasValue: true}, ShortPrefix+p.name); err != nil {
				return err
			}
		default:
			s.positional = append(s.positional, arg)
		}
	}

	return s.resolvePending(errs.ErrMissingValueAtEnd)
}

// resolvePending settles a short option still waiting for a value because the token stream ended or
// the next token is not a value. A Required option fails with missing, anything else is recorded
// without a value.
func (s *scanner) resolvePending(missing *i18n.TrError) error {
	if s.pending == nil {
		return nil
	}

	p := s.pending
	s.pending = nil
	if p.option.Expectation == Required {
		return parseError(missing.WithArgs(ShortPrefix + p.name))
	}

	return s.assign(p.option, Value{}, ShortPrefix+p.name)
}

// parseLong handles --name and --name=value
func (s *scanner) parseLong(arg string) error {
	seq := scalars(arg)[len(LongPrefix):]

	nameEnd := len(seq)
	hasValue := false
	for i, sc := range seq {
		if sc.r == ValueSeparator {
			nameEnd = i
			hasValue = true
			break
		}
		if !IsAllowedInName(sc.r) {
			return parseError(errs.ErrInvalidNameRune.WithArgs(readableRune(sc.r)))
		}
	}

	name := text(arg, seq[:nameEnd])
	opt, found := s.reg.lookup(name)
	if !found {
		return parseError(errs.ErrUnrecognizedOption.WithArgs(LongPrefix + name))
	}

	value := Value{}
	if hasValue {
		value = Value{Text: text(arg, seq[nameEnd+1:]), HasValue: true}
	}

	switch {
	case !hasValue && opt.Expectation == Required:
		return parseError(errs.ErrLongOptionRequiresValue.WithArgs(LongPrefix + name))
	case hasValue && opt.Expectation == NotAllowed:
		return parseError(errs.ErrValueNotAllowed.WithArgs(LongPrefix + name))
	}

	return s.assign(opt, value, LongPrefix+name)
}

// parseShort handles -c, -cVALUE and bundles of value-less options such as -abc
func (s *scanner) parseShort(arg string) error {
	seq := scalars(arg)[len(ShortPrefix):]

	first, name, err := s.lookupShort(arg, seq[0])
	if err != nil {
		return err
	}

	if len(seq) == 1 {
		if first.Expectation == NotAllowed {
			return s.assign(first, Value{}, ShortPrefix+name)
		}
		s.pending = &pendingValue{option: first, name: name}
		s.logger.Debug("awaiting value", "option", ShortPrefix+name)

		return nil
	}

	if first.Expectation != NotAllowed {
		return s.assign(first, Value{Text: text(arg, seq[1:]), HasValue: true}, ShortPrefix+name)
	}

	if err := s.assign(first, Value{}, ShortPrefix+name); err != nil {
		return err
	}
	for _, sc := range seq[1:] {
		opt, name, err := s.lookupShort(arg, sc)
		if err != nil {
			return err
		}
		if opt.Expectation == Required {
			return parseError(errs.ErrInvalidBundle.WithArgs(ShortPrefix + name))
		}
		if err := s.assign(opt, Value{}, ShortPrefix+name); err != nil {
			return err
		}
	}

	return nil
}

func (s *scanner) lookupShort(arg string, sc scalar) (*Option, string, error) {
	if !IsAllowedInName(sc.r) {
		return nil, "", parseError(errs.ErrInvalidNameRune.WithArgs(readableRune(sc.r)))
	}

	name := text(arg, []scalar{sc})
	opt, found := s.reg.lookup(name)
	if !found {
		return nil, "", parseError(errs.ErrUnrecognizedOption.WithArgs(ShortPrefix + name))
	}

	return opt, name, nil
}

// assign records value for opt. used is the invocation reported on duplicates.
func (s *scanner) assign(opt *Option, value Value, used string) error {
	if !s.allowRedefinition {
		if _, exists := s.values.Get(opt); exists {
			return parseError(errs.ErrDuplicateOption.WithArgs(used))
		}
	}

	s.values.Set(opt, value)

	return nil
}

// result freezes the scan state
func (s *scanner) result(lang language.Tag) *Result {
	positional := make([]string, len(s.positional))
	copy(positional, s.positional)

	return &Result{
		values:     s.values,
		positional: positional,
		reg:        s.reg,
		lang:       lang,
	}
}

func parseError(err *i18n.TrError) *i18n.TrError {
	return err.Under(errs.ErrParse)
}
