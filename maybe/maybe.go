/*
Package maybe provides an optional-value type in the spirit of Elm's

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

A Maybe renders the absence of a value without resorting to pointers or
error values. The queue packages of this module use it for non-failing
peeks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe holds either a value of type T ("Just") or nothing at all.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing denotes the absence of a value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust returns true if m carries a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// Value unwraps m, with ok=false for Nothing.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.just
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to a contained value; Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to a contained value, possibly changing the value's type.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}
