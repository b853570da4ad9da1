// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize bounds the size of user CUE documents (5 MiB).
const DefaultMaxFileSize int64 = 5 << 20

type (
	// Option configures Unify.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
	}
)

func applyOptions(opts []Option) options {
	o := options{
		filename:    "<input>",
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFilename sets the file name used in error messages.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(o *options) {
		o.maxFileSize = n
	}
}

// WithConcrete requires every value of the unified document to be concrete.
func WithConcrete(concrete bool) Option {
	return func(o *options) {
		o.concrete = concrete
	}
}
