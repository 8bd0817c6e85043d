package optscan

import (
	"reflect"

	"github.com/iancoleman/strcase"

	"github.com/napalu/optscan/errs"
	"github.com/napalu/optscan/i18n"
	"github.com/napalu/optscan/internal/util"
	"github.com/napalu/optscan/parse"
)

// Binding ties the fields of a struct to the Options declared by their tags
type Binding struct {
	target  reflect.Value
	fields  []boundField
	options []*Option
}

type boundField struct {
	name   string
	index  int
	option *Option
}

// OptionsFromStruct declares one Option per exported field of the struct ptr points to.
//
//	type config struct {
//		Ratio  float64 `optscan:"names:r,ratio;desc:mix ratio"`
//		Slow   bool    `optscan:"names:S,slow"`
//		Output string
//		Skip   string  `optscan:"-"`
//	}
//
// A field without names is known by its kebab-case name (Output becomes --output). bool fields
// default to value:none, every other field to value:required.
func OptionsFromStruct(ptr any) (*Binding, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, errs.ErrNotAStructPointer.WithArgs(describeType(ptr)).Under(errs.ErrConfiguration)
	}

	b := &Binding{target: v.Elem()}
	st := b.target.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}

		config, err := parse.UnmarshalTagFormat(field.Tag.Get(parse.TagName), field)
		if err != nil {
			return nil, configurationError(err)
		}
		if config.Ignore {
			continue
		}
		if !util.CanConvert(field.Type) {
			return nil, errs.ErrUnsupportedField.WithArgs(field.Name, field.Type.String()).Under(errs.ErrConfiguration)
		}

		opt := &Option{
			Names:       config.Names,
			Expectation: fieldExpectation(field.Type, config.Value),
			Description: config.Description,
		}
		if len(opt.Names) == 0 {
			opt.Names = []string{strcase.ToKebab(field.Name)}
		}

		b.fields = append(b.fields, boundField{name: field.Name, index: i, option: opt})
		b.options = append(b.options, opt)
	}

	if _, err := newRegistry(b.options); err != nil {
		return nil, err
	}

	return b, nil
}

// Options returns the declared options in field order
func (b *Binding) Options() []*Option {
	return append([]*Option(nil), b.options...)
}

// Option returns the Option declared for the named struct field
func (b *Binding) Option(fieldName string) (*Option, bool) {
	for _, f := range b.fields {
		if f.name == fieldName {
			return f.option, true
		}
	}

	return nil, false
}

// Apply stores the values of result in the bound struct. Fields of options which were not given keep
// their value. An option given without a value sets a bool field to true and leaves other fields alone.
// result must come from a parse of this Binding's options.
func (b *Binding) Apply(result *Result) error {
	for _, f := range b.fields {
		if owner, found := result.reg.lookup(f.option.Names[0]); !found || owner != f.option {
			return errs.ErrForeignResult.In(result.lang)
		}

		value, found := result.Lookup(f.option)
		if !found {
			continue
		}

		fv := b.target.Field(f.index)
		if !value.HasValue {
			if fv.Kind() == reflect.Bool {
				fv.SetBool(true)
			}
			continue
		}

		if err := util.ConvertValue(value.Text, fv); err != nil {
			return errs.ErrConversion.WithArgs(value.Text, f.option.String(), util.TypeName(fv.Type())).Wrap(err).In(result.lang)
		}
	}

	return nil
}

// Parse parses args against the bound options and applies the Result
func (b *Binding) Parse(args []string, configs ...ConfigureParserFunc) (*Result, error) {
	result, err := Parse(args, b.options, configs...)
	if err != nil {
		return nil, err
	}

	if err := b.Apply(result); err != nil {
		return nil, err
	}

	return result, nil
}

func fieldExpectation(t reflect.Type, value string) ValueExpectation {
	switch value {
	case parse.ValueOptional:
		return Optional
	case parse.ValueRequired:
		return Required
	case parse.ValueNone:
		return NotAllowed
	}

	if t.Kind() == reflect.Bool {
		return NotAllowed
	}

	return Required
}

func describeType(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}

func configurationError(err error) error {
	if tr, ok := err.(*i18n.TrError); ok {
		return tr.Under(errs.ErrConfiguration)
	}

	return err
}
