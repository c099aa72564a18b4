// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package data

import "sort"

// DataRange describes a contiguous index run [Begin, End) inside a
// container. It carries indices only; it is not tied to a particular
// container instance.
type DataRange struct {
	Begin, End int
}

// Size returns the number of indices in the range, never negative.
func (r DataRange) Size() int {
	if r.End <= r.Begin {
		return 0
	}
	return r.End - r.Begin
}

// IsEmpty reports whether the range contains no indices.
func (r DataRange) IsEmpty() bool { return r.Size() == 0 }

// IsValid reports whether the range is well formed (Begin <= End, both
// non-negative).
func (r DataRange) IsValid() bool {
	return r.Begin >= 0 && r.End >= r.Begin
}

// Contains reports whether index i lies inside the range.
func (r DataRange) Contains(i int) bool {
	return i >= r.Begin && i < r.End
}

// Intersection returns the overlap of r and other, or an empty range when
// they don't overlap.
func (r DataRange) Intersection(other DataRange) DataRange {
	result := DataRange{Begin: max(r.Begin, other.Begin), End: min(r.End, other.End)}
	if result.IsValid() {
		return result
	}
	return DataRange{}
}

// Bounded returns r limited to the bounds of other. If r doesn't intersect
// other at all, an empty range at the nearer boundary of other is returned,
// so downstream slicing stays in bounds.
func (r DataRange) Bounded(other DataRange) DataRange {
	result := r.Intersection(other)
	if result.IsEmpty() {
		if r.Begin < other.Begin {
			return DataRange{Begin: other.Begin, End: other.Begin}
		}
		return DataRange{Begin: other.End, End: other.End}
	}
	return result
}

// Adjusted returns the range with both boundaries shifted by the given
// deltas.
func (r DataRange) Adjusted(beginDelta, endDelta int) DataRange {
	return DataRange{Begin: r.Begin + beginDelta, End: r.End + endDelta}
}

// Selection is an ordered set of non-overlapping data ranges, describing
// which points of a series are selected. Draw code walks the selection to
// split a series into selected and unselected segments.
type Selection struct {
	ranges []DataRange
}

// Ranges returns the selected ranges, sorted by Begin and non-overlapping.
// The returned slice is a read-only view.
func (s *Selection) Ranges() []DataRange { return s.ranges }

// RangeCount returns the number of disjoint selected ranges.
func (s *Selection) RangeCount() int { return len(s.ranges) }

// TotalSize returns the total number of selected indices.
func (s *Selection) TotalSize() int {
	total := 0
	for _, r := range s.ranges {
		total += r.Size()
	}
	return total
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool { return len(s.ranges) == 0 }

// Clear removes all ranges from the selection.
func (s *Selection) Clear() { s.ranges = nil }

// AddRange adds a range to the selection. Empty ranges are ignored. The
// selection is re-simplified, so overlapping or adjacent ranges merge.
func (s *Selection) AddRange(r DataRange) {
	if r.IsEmpty() {
		return
	}
	s.ranges = append(s.ranges, r)
	s.simplify()
}

// Contains reports whether index i is selected.
func (s *Selection) Contains(i int) bool {
	for _, r := range s.ranges {
		if r.Contains(i) {
			return true
		}
		if r.Begin > i {
			break
		}
	}
	return false
}

// simplify sorts the ranges by Begin and merges overlapping or touching
// neighbors, restoring the ordered non-overlapping invariant.
func (s *Selection) simplify() {
	sort.Slice(s.ranges, func(i, j int) bool {
		return s.ranges[i].Begin < s.ranges[j].Begin
	})
	out := s.ranges[:0]
	for _, r := range s.ranges {
		if len(out) > 0 && r.Begin <= out[len(out)-1].End {
			if r.End > out[len(out)-1].End {
				out[len(out)-1].End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	s.ranges = out
}
