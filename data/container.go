// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package data

import (
	"errors"
	"sort"

	"github.com/gogpu/plot"
)

// SignDomain restricts range queries to one side of zero, so that
// logarithmic axes can rescale to purely positive or purely negative data.
type SignDomain uint8

const (
	// SignBoth places no restriction on the queried coordinates.
	SignBoth SignDomain = iota

	// SignPositive restricts range queries to coordinates > 0.
	SignPositive

	// SignNegative restricts range queries to coordinates < 0.
	SignNegative
)

// ErrIndexOutOfRange is returned by At for indices outside the container.
var ErrIndexOutOfRange = errors.New("data: index out of range")

// Container holds one series' points sorted by their sort key.
//
// Sortedness is an invariant: it holds after every public mutation
// completes. Duplicate sort keys are allowed; among equal keys the relative
// order is the insertion order at the time of the sorted merge.
//
// The zero value is an empty container ready for use; NewContainer merely
// allocates one.
type Container[P Point] struct {
	points []P
}

// NewContainer creates an empty container.
func NewContainer[P Point]() *Container[P] {
	return &Container[P]{}
}

// Size returns the number of points in the container.
func (c *Container[P]) Size() int { return len(c.points) }

// IsEmpty reports whether the container holds no points.
func (c *Container[P]) IsEmpty() bool { return len(c.points) == 0 }

// Clear removes all points. Calling Clear on an empty container is a no-op.
func (c *Container[P]) Clear() {
	c.points = nil
}

// Points returns the sorted points as a read-only view. The returned slice
// shares storage with the container and is invalidated by the next
// mutation; callers must not modify or retain it.
func (c *Container[P]) Points() []P { return c.points }

// At returns the point at index i. Out-of-range indices are a recoverable
// error: a zero point and ErrIndexOutOfRange are returned and a diagnostic
// is logged; the container state is never affected.
func (c *Container[P]) At(i int) (P, error) {
	if i < 0 || i >= len(c.points) {
		var zero P
		plot.Logger().Warn("data: point index out of range",
			"index", i, "size", len(c.points))
		return zero, ErrIndexOutOfRange
	}
	return c.points[i], nil
}

// lowerBound returns the first index whose sort key is >= key.
func (c *Container[P]) lowerBound(key float64) int {
	return sort.Search(len(c.points), func(i int) bool {
		return c.points[i].SortKey() >= key
	})
}

// upperBound returns the first index whose sort key is > key.
func (c *Container[P]) upperBound(key float64) int {
	return sort.Search(len(c.points), func(i int) bool {
		return c.points[i].SortKey() > key
	})
}

// Add merges a batch of points into the container.
//
// If alreadySorted is false the batch is first sorted by sort key (stable,
// ties keep input order) and then merged against the existing content in a
// single pass. A batch whose lowest key is not below the container's
// current highest key degenerates to an append. No points are dropped or
// deduplicated.
func (c *Container[P]) Add(points []P, alreadySorted bool) {
	if len(points) == 0 {
		return
	}
	if c.IsEmpty() {
		c.points = append(c.points, points...)
		if !alreadySorted {
			sort.SliceStable(c.points, func(i, j int) bool {
				return c.points[i].SortKey() < c.points[j].SortKey()
			})
		}
		return
	}

	old := len(c.points)
	c.points = append(c.points, points...)
	added := c.points[old:]
	if !alreadySorted {
		sort.SliceStable(added, func(i, j int) bool {
			return added[i].SortKey() < added[j].SortKey()
		})
	}
	if added[0].SortKey() >= c.points[old-1].SortKey() {
		return // pure append, already sorted
	}
	c.mergeTail(old)
}

// mergeTail merges the sorted tail starting at mid into the sorted head
// [0, mid). Stable: among equal keys, head points precede tail points.
func (c *Container[P]) mergeTail(mid int) {
	merged := make([]P, 0, len(c.points))
	i, j := 0, mid
	for i < mid && j < len(c.points) {
		if c.points[j].SortKey() < c.points[i].SortKey() {
			merged = append(merged, c.points[j])
			j++
		} else {
			merged = append(merged, c.points[i])
			i++
		}
	}
	merged = append(merged, c.points[i:mid]...)
	merged = append(merged, c.points[j:]...)
	c.points = merged
}

// AddOne inserts a single point preserving sort order. A point sorting
// after all existing content is appended directly, anything else is placed
// at its binary-searched insertion position, after any points with the
// same key so ties keep insertion order like Add.
func (c *Container[P]) AddOne(p P) {
	if c.IsEmpty() || p.SortKey() >= c.points[len(c.points)-1].SortKey() {
		c.points = append(c.points, p)
		return
	}
	i := c.upperBound(p.SortKey())
	c.points = append(c.points, p)
	copy(c.points[i+1:], c.points[i:])
	c.points[i] = p
}

// FindBegin returns the index of the first point with sort key >= key.
// With expanded set, the result is moved one point outward where possible,
// so that a point just left of the nominal range is still included; bar and
// curve geometry extends visually beyond the exact data key.
func (c *Container[P]) FindBegin(key float64, expanded bool) int {
	if c.IsEmpty() {
		return 0
	}
	i := c.lowerBound(key)
	if expanded && i > 0 {
		i--
	}
	return i
}

// FindEnd returns the index just past the last point with sort key <= key,
// i.e. the first index with sort key > key. With expanded set, the result
// is moved one point outward where possible.
func (c *Container[P]) FindEnd(key float64, expanded bool) int {
	if c.IsEmpty() {
		return 0
	}
	i := c.upperBound(key)
	if expanded && i < len(c.points) {
		i++
	}
	return i
}

// KeyRange returns the span of main keys in the given sign domain, and
// whether any point contributed. Points with non-finite coordinates are
// skipped. When the sort key is the main key the unrestricted case reads
// the endpoints; otherwise (parametric curves) the container is scanned,
// since sort order says nothing about key order.
func (c *Container[P]) KeyRange(domain SignDomain) (plot.Range, bool) {
	if c.IsEmpty() {
		return plot.Range{}, false
	}
	var zero P
	if domain == SignBoth && zero.SortKeyIsMainKey() {
		var rng plot.Range
		haveLower, haveUpper := false, false
		for i := 0; i < len(c.points); i++ { // first valid from the left
			if c.points[i].Valid() {
				rng.Lower = c.points[i].MainKey()
				haveLower = true
				break
			}
		}
		for i := len(c.points) - 1; i >= 0; i-- { // first valid from the right
			if c.points[i].Valid() {
				rng.Upper = c.points[i].MainKey()
				haveUpper = true
				break
			}
		}
		return rng, haveLower && haveUpper
	}

	var rng plot.Range
	haveLower, haveUpper := false, false
	for _, p := range c.points {
		if !p.Valid() {
			continue
		}
		current := p.MainKey()
		if domain == SignPositive && current <= 0 {
			continue
		}
		if domain == SignNegative && current >= 0 {
			continue
		}
		if current < rng.Lower || !haveLower {
			rng.Lower = current
			haveLower = true
		}
		if current > rng.Upper || !haveUpper {
			rng.Upper = current
			haveUpper = true
		}
	}
	return rng, haveLower && haveUpper
}

// ValueRange returns the span covered by the points' value ranges in the
// given sign domain, and whether any point contributed. Each point
// contributes its full [lower, upper] value span, so OHLC wicks are
// honored. A non-nil inKeyRange restricts the query to points whose main
// key falls inside it; for point types whose sort key is the main key the
// restriction narrows the scan by binary search first.
func (c *Container[P]) ValueRange(domain SignDomain, inKeyRange *plot.Range) (plot.Range, bool) {
	if c.IsEmpty() {
		return plot.Range{}, false
	}
	begin, end := 0, len(c.points)
	var zero P
	if inKeyRange != nil && zero.SortKeyIsMainKey() {
		begin = c.FindBegin(inKeyRange.Lower, false)
		end = c.FindEnd(inKeyRange.Upper, false)
	}

	var rng plot.Range
	haveLower, haveUpper := false, false
	for i := begin; i < end; i++ {
		p := c.points[i]
		if inKeyRange != nil {
			if k := p.MainKey(); k < inKeyRange.Lower || k > inKeyRange.Upper {
				continue
			}
		}
		current := p.ValueRange()
		switch domain {
		case SignBoth:
			if (current.Lower < rng.Lower || !haveLower) && isFinite(current.Lower) {
				rng.Lower = current.Lower
				haveLower = true
			}
			if (current.Upper > rng.Upper || !haveUpper) && isFinite(current.Upper) {
				rng.Upper = current.Upper
				haveUpper = true
			}
		case SignPositive:
			if (current.Lower < rng.Lower || !haveLower) && current.Lower > 0 && isFinite(current.Lower) {
				rng.Lower = current.Lower
				haveLower = true
			}
			if (current.Upper > rng.Upper || !haveUpper) && current.Upper > 0 && isFinite(current.Upper) {
				rng.Upper = current.Upper
				haveUpper = true
			}
		case SignNegative:
			if (current.Lower < rng.Lower || !haveLower) && current.Lower < 0 && isFinite(current.Lower) {
				rng.Lower = current.Lower
				haveLower = true
			}
			if (current.Upper > rng.Upper || !haveUpper) && current.Upper < 0 && isFinite(current.Upper) {
				rng.Upper = current.Upper
				haveUpper = true
			}
		}
	}
	return rng, haveLower && haveUpper
}

// Segment returns the points of r clamped to the container bounds, for
// segmented draw passes over selected and unselected point runs. The
// returned slice is a view with the same lifetime rules as Points.
func (c *Container[P]) Segment(r DataRange) []P {
	r = r.Bounded(DataRange{Begin: 0, End: len(c.points)})
	return c.points[r.Begin:r.End]
}
