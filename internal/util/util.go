// Package util provides common utility functions.
package util

// Must2 returns v or panics on e.
// It is meant for package-level values built from constant input.
func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}
