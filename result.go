package optscan

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"

	"github.com/napalu/optscan/errs"
	"github.com/napalu/optscan/internal/util"
)

// Result is the outcome of a successful Parse: the options which were given, each with its last
// assigned Value, and the positional arguments in their original order. A Result is never modified
// after Parse returns it.
type Result struct {
	values     *orderedmap.OrderedMap
	positional []string
	reg        registry
	lang       language.Tag
}

// Has reports whether opt was given, with or without a value
func (r *Result) Has(opt *Option) bool {
	_, found := r.values.Get(opt)

	return found
}

// Lookup returns the Value recorded for opt. found is false when opt was not given.
func (r *Result) Lookup(opt *Option) (value Value, found bool) {
	v, found := r.values.Get(opt)
	if !found {
		return Value{}, false
	}

	return v.(Value), true
}

// Get returns the text of opt's value. ok is false when opt was not given or was given without a value.
func (r *Result) Get(opt *Option) (text string, ok bool) {
	v, found := r.Lookup(opt)
	if !found || !v.HasValue {
		return "", false
	}

	return v.Text, true
}

// GetOrDefault returns the text of opt's value or defaultValue when there is none
func (r *Result) GetOrDefault(opt *Option, defaultValue string) string {
	if text, ok := r.Get(opt); ok {
		return text
	}

	return defaultValue
}

// Named returns the Value of the option owning name. name is given without prefix, e.g. "r" or "ratio".
func (r *Result) Named(name string) (Value, bool) {
	opt, found := r.reg.lookup(name)
	if !found {
		return Value{}, false
	}

	return r.Lookup(opt)
}

// Options returns every given option with its Value, ordered by first assignment
func (r *Result) Options() []Entry {
	entries := make([]Entry, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{
			Option: pair.Key.(*Option),
			Value:  pair.Value.(Value),
		})
	}

	return entries
}

// Positional returns the positional arguments in order. The slice is a copy.
func (r *Result) Positional() []string {
	positional := make([]string, len(r.positional))
	copy(positional, r.positional)

	return positional
}

// Len returns the number of distinct options given
func (r *Result) Len() int {
	return r.values.Len()
}

// GetBool interprets opt's value as a boolean. An option given without a value is true.
func (r *Result) GetBool(opt *Option) (bool, error) {
	v, found := r.Lookup(opt)
	if !found {
		return false, r.notSet(opt)
	}
	if !v.HasValue {
		return true, nil
	}

	var b bool
	if err := util.ConvertString(v.Text, &b); err != nil {
		return false, r.conversionError(opt, v.Text, "bool", err)
	}

	return b, nil
}

// GetInt interprets opt's value as a base 10 integer
func (r *Result) GetInt(opt *Option) (int, error) {
	var i int
	err := r.convert(opt, "int", &i)

	return i, err
}

// GetFloat interprets opt's value as a 64-bit float
func (r *Result) GetFloat(opt *Option) (float64, error) {
	var f float64
	err := r.convert(opt, "float64", &f)

	return f, err
}

// GetDuration interprets opt's value as a time.Duration such as "1m30s"
func (r *Result) GetDuration(opt *Option) (time.Duration, error) {
	var d time.Duration
	err := r.convert(opt, "duration", &d)

	return d, err
}

// GetTime interprets opt's value as a date and/or time in the local time zone. Most common
// layouts are recognized.
func (r *Result) GetTime(opt *Option) (time.Time, error) {
	var t time.Time
	err := r.convert(opt, "time", &t)

	return t, err
}

func (r *Result) convert(opt *Option, typeName string, data any) error {
	text, ok := r.Get(opt)
	if !ok {
		return r.notSet(opt)
	}
	if err := util.ConvertString(text, data); err != nil {
		return r.conversionError(opt, text, typeName, err)
	}

	return nil
}

func (r *Result) notSet(opt *Option) error {
	return errs.ErrOptionNotSet.WithArgs(opt.String()).In(r.lang)
}

func (r *Result) conversionError(opt *Option, text, typeName string, err error) error {
	return errs.ErrConversion.WithArgs(text, opt.String(), typeName).Wrap(err).In(r.lang)
}
