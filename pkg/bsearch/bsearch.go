// Package bsearch implements a binary search that, besides reporting an exact
// hit, remembers an element greater than the target seen along the way.
package bsearch

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bounded runs a binary search for target over s, which must be sorted in
// ascending order. It returns the number of probes made and, when ok is
// true, either the matching element or an upper bound for target.
//
// The bound is last write wins: it is the element examined by the most
// recent probe that moved the search into the lower half. For input sorted
// as required that is the element at target's insertion point, but nothing
// checks the ordering, so unsorted input yields an arbitrary larger element.
// When target is not found and the search never moved left, ok is false and
// bound is zero.
func Bounded[T Number](s []T, target T) (iterations int, bound T, ok bool) {
	low, high := 0, len(s)-1
	for low <= high {
		mid := (low + high) / 2
		iterations++
		switch {
		case s[mid] == target:
			return iterations, s[mid], true
		case s[mid] < target:
			low = mid + 1
		default:
			bound, ok = s[mid], true
			high = mid - 1
		}
	}
	return iterations, bound, ok
}

// Index returns the index of target in s, or -1 if it is not present, using
// the same probe sequence as Bounded.
func Index[T Number](s []T, target T) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := (low + high) / 2
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1
}
