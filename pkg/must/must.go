// Package must contains simple functions that panic on errors.
//
// It should only be used in tests and rare places where errors are
// provably impossible.
package must

// OK panics if the error value is not nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 panics if the error value is not nil, and otherwise returns the
// other value.
func OK1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
