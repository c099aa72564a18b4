// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package data

import (
	"math"

	"github.com/gogpu/plot"
)

// Point is the capability set a container element must provide.
//
// SortKey orders the container; MainKey and MainValue are the semantic
// key-axis and value-axis coordinates used for plotting and range queries.
// The two keys coincide for most point types, but not for parametric
// curves, where the sort key is an independent parameter.
//
// All methods must be pure accessors on the value; implementations are
// plain structs with value receivers so the generic container stays free
// of per-point indirection.
type Point interface {
	// SortKey returns the scalar the container is ordered by.
	SortKey() float64

	// MainKey returns the key-axis coordinate of the point.
	MainKey() float64

	// MainValue returns the value-axis coordinate of the point.
	MainValue() float64

	// ValueRange returns the span the point covers on the value axis.
	// For scalar points this is [MainValue, MainValue].
	ValueRange() plot.Range

	// SortKeyIsMainKey reports whether SortKey and MainKey are the same
	// coordinate for this point type. Constant per type; containers use
	// it to decide between endpoint reads and full scans.
	SortKeyIsMainKey() bool

	// Valid reports whether all coordinates of the point are finite.
	// Invalid points are skipped by range computation.
	Valid() bool
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// BarPoint is one bar of a bar series: a value at a key coordinate.
type BarPoint struct {
	Key, Value float64
}

// BarPointFromSortKey creates a BarPoint carrying only the given sort key,
// for use as a search probe.
func BarPointFromSortKey(key float64) BarPoint {
	return BarPoint{Key: key}
}

// SortKey returns the key coordinate.
func (p BarPoint) SortKey() float64 { return p.Key }

// MainKey returns the key coordinate.
func (p BarPoint) MainKey() float64 { return p.Key }

// MainValue returns the bar value.
func (p BarPoint) MainValue() float64 { return p.Value }

// ValueRange returns the degenerate span [Value, Value].
func (p BarPoint) ValueRange() plot.Range {
	return plot.Range{Lower: p.Value, Upper: p.Value}
}

// SortKeyIsMainKey reports true: bar series sort by their key coordinate.
func (BarPoint) SortKeyIsMainKey() bool { return true }

// Valid reports whether key and value are finite.
func (p BarPoint) Valid() bool {
	return isFinite(p.Key) && isFinite(p.Value)
}

// CurvePoint is one point of a parametric curve. T is the curve parameter
// the container sorts by; Key and Value are the plotted coordinates, which
// need not be monotonic in T, so curves may self-intersect.
type CurvePoint struct {
	T, Key, Value float64
}

// CurvePointFromSortKey creates a CurvePoint carrying only the given sort
// key, for use as a search probe.
func CurvePointFromSortKey(t float64) CurvePoint {
	return CurvePoint{T: t}
}

// SortKey returns the curve parameter.
func (p CurvePoint) SortKey() float64 { return p.T }

// MainKey returns the key coordinate.
func (p CurvePoint) MainKey() float64 { return p.Key }

// MainValue returns the value coordinate.
func (p CurvePoint) MainValue() float64 { return p.Value }

// ValueRange returns the degenerate span [Value, Value].
func (p CurvePoint) ValueRange() plot.Range {
	return plot.Range{Lower: p.Value, Upper: p.Value}
}

// SortKeyIsMainKey reports false: curves sort by the independent parameter.
func (CurvePoint) SortKeyIsMainKey() bool { return false }

// Valid reports whether parameter, key and value are all finite.
func (p CurvePoint) Valid() bool {
	return isFinite(p.T) && isFinite(p.Key) && isFinite(p.Value)
}

// OHLCPoint is one open-high-low-close sample of a financial series.
type OHLCPoint struct {
	Key                     float64
	Open, High, Low, Close float64
}

// OHLCPointFromSortKey creates an OHLCPoint carrying only the given sort
// key, for use as a search probe.
func OHLCPointFromSortKey(key float64) OHLCPoint {
	return OHLCPoint{Key: key}
}

// SortKey returns the key coordinate.
func (p OHLCPoint) SortKey() float64 { return p.Key }

// MainKey returns the key coordinate.
func (p OHLCPoint) MainKey() float64 { return p.Key }

// MainValue returns the opening value.
func (p OHLCPoint) MainValue() float64 { return p.Open }

// ValueRange returns the [Low, High] span of the sample.
func (p OHLCPoint) ValueRange() plot.Range {
	return plot.Range{Lower: p.Low, Upper: p.High}
}

// SortKeyIsMainKey reports true: financial series sort by their key.
func (OHLCPoint) SortKeyIsMainKey() bool { return true }

// Valid reports whether every coordinate of the sample is finite.
func (p OHLCPoint) Valid() bool {
	return isFinite(p.Key) && isFinite(p.Open) && isFinite(p.High) &&
		isFinite(p.Low) && isFinite(p.Close)
}
