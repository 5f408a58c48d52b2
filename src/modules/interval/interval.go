// Package interval implements the half-open [start, end) interval
// algebra that every availability computation in this service is built
// from: merging overlapping spans, summing their measure, and
// computing the overlap between two already-merged sets.
package interval

import "sort"

// Interval is a half-open span [Start, End). A well-formed interval has
// End > Start; anything else is dropped wherever it would participate
// in Merge, Sum, or Overlap.
type Interval struct {
	Start int64
	End   int64
}

func (iv Interval) valid() bool {
	return iv.End > iv.Start
}

// Set is a non-overlapping, start-ascending sequence of intervals. Only
// Merge (and PushMerged, incrementally) produce a valid Set; Overlap's
// inputs must already be one.
type Set []Interval

// Merge sorts xs by Start ascending and folds overlapping or touching
// intervals together, returning a Set. Invalid intervals (End <= Start)
// are dropped before sorting. Equal Start values collapse into the
// element with the larger End.
func Merge(xs []Interval) Set {
	filtered := make([]Interval, 0, len(xs))
	for _, iv := range xs {
		if iv.valid() {
			filtered = append(filtered, iv)
		}
	}
	if len(filtered) == 0 {
		return Set{}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Start != filtered[j].Start {
			return filtered[i].Start < filtered[j].Start
		}
		return filtered[i].End > filtered[j].End
	})

	result := make(Set, 0, len(filtered))
	result = append(result, filtered[0])
	for _, iv := range filtered[1:] {
		result = pushMergedInto(result, iv)
	}
	return result
}

// Sum returns the total measure of a merged Set: the sum of End-Start
// over every element. Undefined (and not guarded against) on unmerged
// input; callers that hold raw, possibly-overlapping intervals should
// call Merge first — Sum(Merge(xs)) <= Sum(xs) in general.
func (s Set) Sum() int64 {
	var total int64
	for _, iv := range s {
		if d := iv.End - iv.Start; d > 0 {
			total += d
		}
	}
	return total
}

// Overlap computes the total seconds of intersection between two
// already-merged sets via a two-pointer sweep. Both a and b must be
// merged (non-overlapping, start-ascending); behavior on unmerged input
// is undefined. Overlap(a, b) == Overlap(b, a).
func Overlap(a, b Set) int64 {
	var total int64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := max64(a[i].Start, b[j].Start)
		end := min64(a[i].End, b[j].End)
		if end > start {
			total += end - start
		}
		if a[i].End == b[j].End {
			i++
			j++
		} else if a[i].End < b[j].End {
			i++
		} else {
			j++
		}
	}
	return total
}

// PushMerged appends candidate to an in-construction merged Set,
// coalescing it with the last element when candidate.Start <= last.End.
// Invalid candidates (End <= Start) are ignored.
func PushMerged(set Set, candidate Interval) Set {
	if !candidate.valid() {
		return set
	}
	return pushMergedInto(set, candidate)
}

func pushMergedInto(set Set, candidate Interval) Set {
	if len(set) == 0 {
		return append(set, candidate)
	}
	last := &set[len(set)-1]
	if candidate.Start <= last.End {
		if candidate.End > last.End {
			last.End = candidate.End
		}
		return set
	}
	return append(set, candidate)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
