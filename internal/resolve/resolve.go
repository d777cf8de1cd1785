// Package resolve picks a value from candidates in priority order.
package resolve

import "sync"

// Candidate yields a value and whether that value is usable.
type Candidate[T any] func() (T, bool)

// First returns the value of the first usable candidate, or fallback when
// none is. Candidates after the first usable one are never called.
func First[T any](fallback T, candidates ...Candidate[T]) T {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if v, ok := c(); ok {
			return v
		}
	}
	return fallback
}

// Once memoizes a candidate so that an expensive lookup shared by several
// resolutions runs at most once.
func Once[T any](c Candidate[T]) Candidate[T] {
	var (
		once sync.Once
		v    T
		ok   bool
	)
	return func() (T, bool) {
		once.Do(func() { v, ok = c() })
		return v, ok
	}
}

// NonEmpty is usable when s is not the empty string.
func NonEmpty(s string) Candidate[string] {
	return func() (string, bool) { return s, s != "" }
}

// Positive is usable when p is set and greater than zero.
func Positive(p *float64) Candidate[float64] {
	return func() (float64, bool) {
		if p == nil || *p <= 0 {
			return 0, false
		}
		return *p, true
	}
}
