package plot

import "math"

// Orientation identifies which screen axis a plot axis runs parallel to.
type Orientation uint8

const (
	// Horizontal axes run along the screen X direction.
	Horizontal Orientation = iota

	// Vertical axes run along the screen Y direction.
	Vertical
)

// ScaleType selects the coordinate transform of an axis.
type ScaleType uint8

const (
	// ScaleLinear maps coordinates to pixels linearly.
	ScaleLinear ScaleType = iota

	// ScaleLogarithmic maps coordinates to pixels logarithmically.
	// Only strictly positive (or strictly negative) ranges are meaningful.
	ScaleLogarithmic
)

// Axis is the coordinate transform contract the geometry engines consume.
//
// An Axis maps plot coordinates to pixel positions inside its axis rect and
// back. Implementations may be reversed (increasing coordinates map to
// decreasing pixels) and may use a nonlinear scale; consumers that need
// local pixel metrics (bar widths, group spacings) must measure through
// CoordToPixel rather than assume linearity.
type Axis interface {
	// Orientation returns the screen direction this axis runs parallel to.
	Orientation() Orientation

	// PixelOrientation returns +1 if increasing coordinates map to
	// increasing pixel values, -1 otherwise.
	PixelOrientation() float64

	// RangeReversed reports whether the axis range is displayed reversed.
	RangeReversed() bool

	// Range returns the currently visible coordinate range.
	Range() Range

	// Rect returns the pixel rectangle of the plot area this axis spans.
	Rect() Rect

	// CoordToPixel transforms a plot coordinate to a pixel position.
	CoordToPixel(coord float64) float64

	// PixelToCoord transforms a pixel position to a plot coordinate.
	PixelToCoord(pixel float64) float64
}

// offscreenPad is how far outside the axis rect coordinates that have no
// valid logarithmic pixel position are placed.
const offscreenPad = 200.0

// BasicAxis is the standard Axis implementation: linear or logarithmic,
// horizontal or vertical, optionally reversed.
//
// BasicAxis carries no tick generation, labeling or layout; it is purely
// the coordinate transform of a plot axis.
type BasicAxis struct {
	orientation Orientation
	scaleType   ScaleType
	rng         Range
	rect        Rect
	reversed    bool
}

// NewAxis creates a linear axis with the given orientation, visible range
// and axis rect.
func NewAxis(orientation Orientation, rng Range, rect Rect) *BasicAxis {
	return &BasicAxis{
		orientation: orientation,
		rng:         rng.Normalized(),
		rect:        rect.Normalized(),
	}
}

// Orientation returns the screen direction this axis runs parallel to.
func (a *BasicAxis) Orientation() Orientation { return a.orientation }

// ScaleType returns the coordinate transform type of the axis.
func (a *BasicAxis) ScaleType() ScaleType { return a.scaleType }

// SetScaleType sets the coordinate transform type of the axis.
// For ScaleLogarithmic the range should not span zero.
func (a *BasicAxis) SetScaleType(t ScaleType) { a.scaleType = t }

// RangeReversed reports whether the axis range is displayed reversed.
func (a *BasicAxis) RangeReversed() bool { return a.reversed }

// SetRangeReversed sets whether the axis range is displayed reversed, i.e.
// increasing coordinates map toward the opposite end of the axis rect.
func (a *BasicAxis) SetRangeReversed(reversed bool) { a.reversed = reversed }

// Range returns the currently visible coordinate range.
func (a *BasicAxis) Range() Range { return a.rng }

// SetRange sets the visible coordinate range.
func (a *BasicAxis) SetRange(rng Range) { a.rng = rng.Normalized() }

// Rect returns the pixel rectangle of the plot area this axis spans.
func (a *BasicAxis) Rect() Rect { return a.rect }

// SetRect sets the pixel rectangle of the plot area this axis spans.
func (a *BasicAxis) SetRect(rect Rect) { a.rect = rect.Normalized() }

// PixelOrientation returns +1 if increasing coordinates map to increasing
// pixel values, -1 otherwise. Screen Y grows downward, so a non-reversed
// vertical axis has pixel orientation -1.
func (a *BasicAxis) PixelOrientation() float64 {
	if a.reversed != (a.orientation == Vertical) {
		return -1
	}
	return 1
}

// CoordToPixel transforms a plot coordinate to a pixel position.
//
// On a logarithmic axis, coordinates on the wrong side of zero have no
// pixel position; they are placed well outside the axis rect so dependent
// geometry stays finite.
func (a *BasicAxis) CoordToPixel(coord float64) float64 {
	if a.orientation == Horizontal {
		if a.scaleType == ScaleLinear {
			if !a.reversed {
				return (coord-a.rng.Lower)/a.rng.Size()*a.rect.Width() + a.rect.Min.X
			}
			return (a.rng.Upper-coord)/a.rng.Size()*a.rect.Width() + a.rect.Min.X
		}
		switch {
		case coord >= 0 && a.rng.Upper < 0:
			if !a.reversed {
				return a.rect.Max.X + offscreenPad
			}
			return a.rect.Min.X - offscreenPad
		case coord <= 0 && a.rng.Upper >= 0:
			if !a.reversed {
				return a.rect.Min.X - offscreenPad
			}
			return a.rect.Max.X + offscreenPad
		default:
			if !a.reversed {
				return math.Log(coord/a.rng.Lower)/math.Log(a.rng.Upper/a.rng.Lower)*a.rect.Width() + a.rect.Min.X
			}
			return math.Log(a.rng.Upper/coord)/math.Log(a.rng.Upper/a.rng.Lower)*a.rect.Width() + a.rect.Min.X
		}
	}

	// vertical
	if a.scaleType == ScaleLinear {
		if !a.reversed {
			return a.rect.Max.Y - (coord-a.rng.Lower)/a.rng.Size()*a.rect.Height()
		}
		return a.rect.Max.Y - (a.rng.Upper-coord)/a.rng.Size()*a.rect.Height()
	}
	switch {
	case coord >= 0 && a.rng.Upper < 0:
		if !a.reversed {
			return a.rect.Min.Y - offscreenPad
		}
		return a.rect.Max.Y + offscreenPad
	case coord <= 0 && a.rng.Upper >= 0:
		if !a.reversed {
			return a.rect.Max.Y + offscreenPad
		}
		return a.rect.Min.Y - offscreenPad
	default:
		if !a.reversed {
			return a.rect.Max.Y - math.Log(coord/a.rng.Lower)/math.Log(a.rng.Upper/a.rng.Lower)*a.rect.Height()
		}
		return a.rect.Max.Y - math.Log(a.rng.Upper/coord)/math.Log(a.rng.Upper/a.rng.Lower)*a.rect.Height()
	}
}

// PixelToCoord transforms a pixel position to a plot coordinate.
func (a *BasicAxis) PixelToCoord(pixel float64) float64 {
	if a.orientation == Horizontal {
		if a.scaleType == ScaleLinear {
			if !a.reversed {
				return (pixel-a.rect.Min.X)/a.rect.Width()*a.rng.Size() + a.rng.Lower
			}
			return a.rng.Upper - (pixel-a.rect.Min.X)/a.rect.Width()*a.rng.Size()
		}
		if !a.reversed {
			return math.Pow(a.rng.Upper/a.rng.Lower, (pixel-a.rect.Min.X)/a.rect.Width()) * a.rng.Lower
		}
		return math.Pow(a.rng.Upper/a.rng.Lower, -(pixel-a.rect.Min.X)/a.rect.Width()) * a.rng.Upper
	}

	// vertical
	if a.scaleType == ScaleLinear {
		if !a.reversed {
			return (a.rect.Max.Y-pixel)/a.rect.Height()*a.rng.Size() + a.rng.Lower
		}
		return a.rng.Upper - (a.rect.Max.Y-pixel)/a.rect.Height()*a.rng.Size()
	}
	if !a.reversed {
		return math.Pow(a.rng.Upper/a.rng.Lower, (a.rect.Max.Y-pixel)/a.rect.Height()) * a.rng.Lower
	}
	return math.Pow(a.rng.Upper/a.rng.Lower, -(a.rect.Max.Y-pixel)/a.rect.Height()) * a.rng.Upper
}
