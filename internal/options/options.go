// Package options implements the generic functional-option pattern shared by
// the nbt decoder and encoder.
//
// Public packages wrap Option in their own named types so callers never see
// the generic form:
//
//	type DecodeOption = options.Option[*decodeConfig]
//
//	func WithoutRetry() DecodeOption {
//	    return options.NoError(func(c *decodeConfig) { c.retry = false })
//	}
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its argument.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build allocates a config from defaults and applies opts to it.
func Build[T any](defaults func() *T, opts ...Option[*T]) (*T, error) {
	cfg := defaults()
	if err := Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
