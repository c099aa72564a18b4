package plot

import "math"

// Range represents the span between two plot coordinates, e.g. an axis
// range or the [low, high] value span of one data point.
type Range struct {
	Lower, Upper float64
}

// NewRange creates a normalized Range from two boundary coordinates.
func NewRange(lower, upper float64) Range {
	return Range{Lower: lower, Upper: upper}.Normalized()
}

// Size returns the extent of the range (Upper - Lower).
func (r Range) Size() float64 {
	return r.Upper - r.Lower
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 {
	return (r.Lower + r.Upper) * 0.5
}

// Contains reports whether the value lies inside the closed range.
func (r Range) Contains(value float64) bool {
	return value >= r.Lower && value <= r.Upper
}

// Normalized returns the range with Lower/Upper swapped if needed so that
// Size is non-negative.
func (r Range) Normalized() Range {
	if r.Lower > r.Upper {
		r.Lower, r.Upper = r.Upper, r.Lower
	}
	return r
}

// Expanded returns the union of r and other.
func (r Range) Expanded(other Range) Range {
	if other.Lower < r.Lower {
		r.Lower = other.Lower
	}
	if other.Upper > r.Upper {
		r.Upper = other.Upper
	}
	return r
}

// IsValid reports whether both boundaries are finite and Lower <= Upper.
func (r Range) IsValid() bool {
	return r.Lower <= r.Upper &&
		!math.IsNaN(r.Lower) && !math.IsInf(r.Lower, 0) &&
		!math.IsNaN(r.Upper) && !math.IsInf(r.Upper, 0)
}
