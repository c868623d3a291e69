// Package options implements generic functional options.
//
// A configuration type declares its option type as an alias:
//
//	type WriteOption = options.Option[*writeConfig]
//
// and exported constructors return options built with New or NoError.
package options

// Option configures a target of type T. The apply method is unexported so
// options can only be created by this package's constructors.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a function.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option that may fail, e.g. when validating its argument.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates an option that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
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
