// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

// Map returns f applied to every element of a, in order.
func Map[T any, R any](f func(T) R, a []T) []R {
	b := make([]R, len(a))
	for i, v := range a {
		b[i] = f(v)
	}
	return b
}

func ForEach[T any](f func(T), a []T) {
	for _, v := range a {
		f(v)
	}
}

// Filter returns the elements of a for which keep reports true. The
// result never aliases a.
func Filter[T any](keep func(T) bool, a []T) []T {
	b := make([]T, 0, len(a))
	for _, v := range a {
		if keep(v) {
			b = append(b, v)
		}
	}
	return b
}
