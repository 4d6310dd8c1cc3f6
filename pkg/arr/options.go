package arr

// DefaultSeparator is the notation separator used when none is configured.
const DefaultSeparator = "."

// Option configures a notation operation.
type Option func(*options)

type options struct {
	separator string
}

func newOptions(opts []Option) options {
	o := options{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeparator sets the notation separator.
// An empty separator keeps the default ".".
func WithSeparator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}
