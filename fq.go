/*
Package fq collects small functional helpers shared by the persistent
queue packages of this module.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fq

// Const returns a function that produces a. The queue packages use it as
// an already-evaluated suspension: forcing it never triggers computation.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
