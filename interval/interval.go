// Package interval implements set algebra over disjoint half-open
// intervals on the real line.
//
// An Interval covers the points x with Lo ≤ x < Hi; an interval with
// Lo ≥ Hi is empty. Diff and Intersect treat their slice arguments as
// interval sets (expected pairwise disjoint) and return canonical results:
// empties dropped, duplicates removed, sorted by lower bound.
package interval

import (
	"slices"
)

// Interval is the half-open interval [Lo, Hi). Empty when Lo ≥ Hi.
type Interval struct {
	Lo, Hi float64
}

// Empty reports whether the interval covers no points.
func (i Interval) Empty() bool { return i.Lo >= i.Hi }

// diffOne subtracts b from a, yielding zero, one, or two fragments.
func diffOne(a, b Interval) []Interval {
	// No overlap: one lies entirely left of the other.
	if a.Hi <= b.Lo || b.Hi <= a.Lo {
		return compact([]Interval{a})
	}
	// b contained in a: a splits around b.
	if a.Lo <= b.Lo && b.Hi <= a.Hi {
		return compact([]Interval{{a.Lo, b.Lo}, {b.Hi, a.Hi}})
	}
	// a contained in b: nothing survives.
	if b.Lo <= a.Lo && a.Hi <= b.Hi {
		return nil
	}
	// Partial overlap: one fragment survives on one side.
	if a.Lo <= b.Lo {
		return compact([]Interval{{a.Lo, b.Lo}})
	}

	return compact([]Interval{{b.Hi, a.Hi}})
}

// Diff computes the set difference a − b for two sets of disjoint
// intervals. Each interval of b is subtracted in turn from every surviving
// fragment of a.
// Complexity: O(len(a)·len(b)) fragments in the worst case.
func Diff(a, b []Interval) []Interval {
	result := compact(slices.Clone(a))
	for _, i2 := range b {
		var next []Interval
		for _, i1 := range result {
			next = append(next, diffOne(i1, i2)...)
		}
		result = next
	}

	return canonical(result)
}

// Intersect computes the intersection a ∩ b for two sets of disjoint
// intervals as the union of all pairwise overlaps.
// Complexity: O(len(a)·len(b)).
func Intersect(a, b []Interval) []Interval {
	var result []Interval
	for _, i1 := range a {
		for _, i2 := range b {
			if i1.Hi <= i2.Lo || i2.Hi <= i1.Lo {
				continue
			}
			result = append(result, Interval{max(i1.Lo, i2.Lo), min(i1.Hi, i2.Hi)})
		}
	}

	return canonical(result)
}

// compact drops empty intervals in place.
func compact(xs []Interval) []Interval {
	return slices.DeleteFunc(xs, Interval.Empty)
}

// canonical drops empties, deduplicates, and sorts by lower then upper
// bound, so equal sets compare equal.
func canonical(xs []Interval) []Interval {
	xs = compact(xs)
	slices.SortFunc(xs, func(a, b Interval) int {
		if a.Lo != b.Lo {
			if a.Lo < b.Lo {
				return -1
			}

			return 1
		}
		if a.Hi != b.Hi {
			if a.Hi < b.Hi {
				return -1
			}

			return 1
		}

		return 0
	})

	return slices.Compact(xs)
}
