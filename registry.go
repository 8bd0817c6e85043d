package optscan

import (
	"github.com/napalu/optscan/errs"
)

// registry maps every declared name to the Option owning it
type registry map[string]*Option

// newRegistry validates the declared options and indexes them by name. All failures are
// configuration errors.
func newRegistry(options []*Option) (registry, error) {
	reg := make(registry, len(options)*2)
	for i, opt := range options {
		if opt == nil {
			return nil, errs.ErrNilOption.WithArgs(i).Under(errs.ErrConfiguration)
		}

		for _, name := range opt.Names {
			if name == "" {
				return nil, errs.ErrEmptyName.WithArgs(i).Under(errs.ErrConfiguration)
			}
			for _, r := range name {
				if !IsAllowedInName(r) {
					return nil, errs.ErrInvalidDeclaredName.WithArgs(name, readableRune(r)).Under(errs.ErrConfiguration)
				}
			}
			if owner, exists := reg[name]; exists && owner != opt {
				return nil, errs.ErrNameInUse.WithArgs(name).Under(errs.ErrConfiguration)
			}
			reg[name] = opt
		}
	}

	return reg, nil
}

func (r registry) lookup(name string) (*Option, bool) {
	opt, found := r[name]

	return opt, found
}
