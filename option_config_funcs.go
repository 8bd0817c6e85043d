package optscan

// NewOpt convenience initialization method to configure an Option. The default expectation is Optional.
func NewOpt(configs ...ConfigureOptionFunc) *Option {
	option := &Option{}
	_ = option.Set(configs...)

	return option
}

// Set configures the Option instance with the provided ConfigureOptionFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	opt := &Option{}
//	err := opt.Set(
//	    WithNames("r", "ratio"),
//	    WithExpectation(Required),
//	)
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// WithNames appends names to the option. One-scalar names are short (-r), longer ones are long (--ratio).
func WithNames(names ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Names = append(option.Names, names...)
	}
}

// WithExpectation sets whether the option accepts, requires or forbids a value
func WithExpectation(expectation ValueExpectation) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Expectation = expectation
	}
}

// WithDescription the description is informational only, optscan does not render usage
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Description = description
	}
}
