// Package multivector implements the geometric (Clifford) algebra of
// three-dimensional Euclidean space.
//
// A Multivector holds four graded parts over the basis
//
//	1, e1, e2, e3, e2e3, e3e1, e1e2, e1e2e3
//
// The bivector components are ordered cyclically (e2e3, e3e1, e1e2), which
// makes the bivector part of u∧v equal to the ordinary cross product u×v.
//
// Multivectors are plain values. Every operation returns a new value and
// leaves its operands untouched, so values may be shared freely between
// goroutines.
package multivector
