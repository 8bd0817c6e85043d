package parse

import (
	"reflect"
	"strings"

	"github.com/napalu/optscan/errs"
)

// TagName is the struct tag read by UnmarshalTagFormat
const TagName = "optscan"

// Accepted spellings of the value key
const (
	ValueOptional = "optional"
	ValueRequired = "required"
	ValueNone     = "none"
)

// TagConfig is the declaration found in a struct field's optscan tag
type TagConfig struct {
	Names       []string
	Value       string
	Description string
	// Ignore is set by the tag `optscan:"-"`
	Ignore bool
}

// UnmarshalTagFormat parses tags of the form
//
//	optscan:"names:r,ratio;value:required;desc:mix ratio"
//
// Every key is optional. Empty segments are skipped so a trailing ';' is accepted.
func UnmarshalTagFormat(tag string, field reflect.StructField) (*TagConfig, error) {
	config := &TagConfig{}
	if strings.TrimSpace(tag) == "-" {
		config.Ignore = true
		return config, nil
	}

	for _, part := range strings.Split(tag, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
		}

		switch strings.TrimSpace(key) {
		case "names":
			names, err := Names(value)
			if err != nil {
				return nil, errs.ErrInvalidTagValue.WithArgs("names", field.Name, value)
			}
			config.Names = append(config.Names, names...)
		case "value":
			switch v := strings.ToLower(strings.TrimSpace(value)); v {
			case ValueOptional, ValueRequired, ValueNone:
				config.Value = v
			default:
				return nil, errs.ErrInvalidTagValue.WithArgs("value", field.Name, value)
			}
		case "desc":
			config.Description = value
		default:
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
		}
	}

	return config, nil
}

// Names splits a comma separated list of option names, e.g. "s,shouty,loud"
func Names(list string) ([]string, error) {
	var names []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errs.ErrEmptyName
		}
		names = append(names, name)
	}

	return names, nil
}
