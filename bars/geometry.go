package bars

import (
	"math"

	"github.com/gogpu/plot"
)

// PixelWidth returns the pixel offsets of the lower and upper bar edge
// relative to the nominal key pixel position at keyCoord. "Lower" means
// the edge toward lower keys; on a reversed axis the numeric offsets
// swap sign, so lower may exceed upper.
func (s *Series) PixelWidth(keyCoord float64) (lower, upper float64) {
	switch s.widthType {
	case WidthAbsolute:
		upper = s.width * 0.5 * s.keyAxis.PixelOrientation()
		lower = -upper
	case WidthAxisRectRatio:
		if s.keyAxis.Orientation() == plot.Horizontal {
			upper = s.keyAxis.Rect().Width() * s.width * 0.5 * s.keyAxis.PixelOrientation()
		} else {
			upper = s.keyAxis.Rect().Height() * s.width * 0.5 * s.keyAxis.PixelOrientation()
		}
		lower = -upper
	case WidthPlotCoords:
		keyPixel := s.keyAxis.CoordToPixel(keyCoord)
		lower = s.keyAxis.CoordToPixel(keyCoord-s.width*0.5) - keyPixel
		upper = s.keyAxis.CoordToPixel(keyCoord+s.width*0.5) - keyPixel
	}
	return lower, upper
}

// BarRect returns the normalized pixel rectangle of the bar at (key,
// value): spanning from the stacked base value to base+value on the value
// axis, centered on key plus any group offset on the key axis, reduced by
// the stacking gap when sitting on another bar.
func (s *Series) BarRect(key, value float64) plot.Rect {
	lowerWidth, upperWidth := s.PixelWidth(key)
	base := s.StackedBaseValue(key, value >= 0)
	basePixel := s.valueAxis.CoordToPixel(base)
	valuePixel := s.valueAxis.CoordToPixel(base + value)
	keyPixel := s.keyAxis.CoordToPixel(key)
	if s.group != nil {
		keyPixel += s.group.KeyPixelOffset(s.handle, key)
	}
	var bottomOffset float64
	if s.below != NilHandle && s.stackingGap > 0 {
		sign := 1.0
		if value < 0 {
			sign = -1
		}
		bottomOffset = s.stackingGap * sign * s.valueAxis.PixelOrientation()
		// A bar shorter than the gap collapses to zero height instead of
		// flipping past its value edge.
		if math.Abs(valuePixel-basePixel) <= math.Abs(bottomOffset) {
			bottomOffset = valuePixel - basePixel
		}
	}
	if s.keyAxis.Orientation() == plot.Horizontal {
		return plot.RectFromPoints(
			plot.Pt(keyPixel+lowerWidth, valuePixel),
			plot.Pt(keyPixel+upperWidth, basePixel+bottomOffset))
	}
	return plot.RectFromPoints(
		plot.Pt(valuePixel, keyPixel+lowerWidth),
		plot.Pt(basePixel+bottomOffset, keyPixel+upperWidth))
}

// WidthPixels returns the absolute pixel width of the series' bars at
// keyCoord.
func (s *Series) WidthPixels(keyCoord float64) float64 {
	lower, upper := s.PixelWidth(keyCoord)
	w := upper - lower
	if w < 0 {
		w = -w
	}
	return w
}
