package bars

import (
	"math"
	"slices"

	"github.com/gogpu/plot"
)

// SpacingType defines how a Group's Spacing translates to pixels between
// neighboring bars.
type SpacingType uint8

const (
	// SpacingAbsolute interprets Spacing as a constant pixel distance.
	SpacingAbsolute SpacingType = iota

	// SpacingAxisRectRatio interprets Spacing as a fraction of the axis
	// rect extent along the key axis direction.
	SpacingAxisRectRatio

	// SpacingPlotCoords interprets Spacing in key-axis plot coordinates,
	// measured locally at the queried key so nonlinear scales are honored.
	SpacingPlotCoords
)

// Group lays out several bar series side by side at shared key
// coordinates. Members are referenced by handle in display order; the
// whole block of members (widths plus inter-bar spacings) is centered on
// the nominal key position.
//
// Membership in a stacking chain is orthogonal to group membership:
// offsets are computed per base series, i.e. the bottom-most link of each
// chain, so all series stacked on one slot share one offset.
type Group struct {
	arena       *Arena
	spacingType SpacingType
	spacing     float64
	members     []Handle
}

// NewGroup creates an empty group over the given arena with an absolute
// spacing of 4 pixels.
func NewGroup(arena *Arena) *Group {
	return &Group{
		arena:   arena,
		spacing: 4,
	}
}

// SpacingType returns how Spacing translates to pixels.
func (g *Group) SpacingType() SpacingType { return g.spacingType }

// SetSpacingType sets how Spacing translates to pixels.
func (g *Group) SetSpacingType(t SpacingType) { g.spacingType = t }

// Spacing returns the gap between neighboring bars, per SpacingType.
func (g *Group) Spacing() float64 { return g.spacing }

// SetSpacing sets the gap between neighboring bars, per SpacingType.
func (g *Group) SetSpacing(spacing float64) { g.spacing = spacing }

// Size returns the number of member series.
func (g *Group) Size() int { return len(g.members) }

// IsEmpty reports whether the group has no members.
func (g *Group) IsEmpty() bool { return len(g.members) == 0 }

// Members returns the member handles in display order as a read-only view.
func (g *Group) Members() []Handle { return g.members }

// Contains reports whether the series is a member of this group.
func (g *Group) Contains(h Handle) bool {
	return slices.Contains(g.members, h)
}

// Clear removes all series from the group.
func (g *Group) Clear() {
	for _, h := range slices.Clone(g.members) {
		if s := g.arena.get(h); s != nil {
			s.setGroup(nil)
		}
	}
	g.members = g.members[:0]
}

// Append adds the series at the end of the group. A series may belong to
// at most one group, so it implicitly leaves any previous group. Appending
// a series that is already a member is a no-op with a diagnostic.
func (g *Group) Append(h Handle) {
	s := g.arena.Series(h)
	if s == nil {
		return
	}
	if g.Contains(h) {
		plot.Logger().Warn("bars: series is already in group", "series", int(h))
		return
	}
	s.setGroup(g)
}

// Insert places the series at index i in the group's display order,
// clamped to the valid range. A series that is already a member is moved
// to the new position without being duplicated; a new series joins the
// group first (implicitly leaving any previous group).
func (g *Group) Insert(i int, h Handle) {
	s := g.arena.Series(h)
	if s == nil {
		return
	}
	if !g.Contains(h) {
		s.setGroup(g)
	}
	cur := slices.Index(g.members, h)
	i = min(max(i, 0), len(g.members)-1)
	if cur == i {
		return
	}
	g.members = slices.Delete(g.members, cur, cur+1)
	g.members = slices.Insert(g.members, i, h)
}

// Remove takes the series out of the group. Removing a non-member is a
// no-op with a diagnostic.
func (g *Group) Remove(h Handle) {
	s := g.arena.Series(h)
	if s == nil {
		return
	}
	if !g.Contains(h) {
		plot.Logger().Warn("bars: series is not in group", "series", int(h))
		return
	}
	s.setGroup(nil)
}

// register and unregister maintain the member list; they are only called
// through Series.setGroup so list and back-reference stay in lockstep.
func (g *Group) register(h Handle) {
	if !g.Contains(h) {
		g.members = append(g.members, h)
	}
}

func (g *Group) unregister(h Handle) {
	if i := slices.Index(g.members, h); i >= 0 {
		g.members = slices.Delete(g.members, i, i+1)
	}
}

// KeyPixelOffset returns the pixel offset, relative to the nominal pixel
// position of keyCoord, at which the series' bars are drawn so that all
// group members appear side by side.
//
// The offset is resolved per base series: for each member the bottom-most
// link of its stacking chain is taken, duplicates collapse to one slot. A
// middle slot of an odd-sized group sits exactly on the nominal position;
// every other slot accumulates the half-width of the center (odd) or half
// a spacing (even), plus full widths and spacings of the slots between,
// plus half of its own base's width, signed by walk direction and by the
// key axis' pixel orientation. Widths and spacings are resolved through
// each slot's base series, so stacked members always share their base's
// offset.
func (g *Group) KeyPixelOffset(h Handle, keyCoord float64) float64 {
	s := g.arena.Series(h)
	if s == nil {
		return 0
	}

	// Distinct base series in group order.
	baseBars := make([]Handle, 0, len(g.members))
	for _, m := range g.members {
		b := g.baseOf(m)
		if !slices.Contains(baseBars, b) {
			baseBars = append(baseBars, b)
		}
	}
	thisBase := g.baseOf(h)
	index := slices.Index(baseBars, thisBase)
	if index < 0 {
		return 0
	}
	n := len(baseBars)
	if n%2 == 1 && index == (n-1)/2 {
		return 0 // center slot of an odd group
	}
	base := g.arena.get(thisBase)
	if base == nil {
		return 0
	}

	dir := 1
	if index <= (n-1)/2 {
		dir = -1
	}
	var result float64
	var startIndex int
	if n%2 == 0 {
		startIndex = n / 2
		if dir < 0 {
			startIndex = n/2 - 1
		}
		result += g.PixelSpacing(baseBars[startIndex], keyCoord) * 0.5
	} else {
		mid := (n - 1) / 2
		startIndex = mid + dir
		if m := g.arena.get(baseBars[mid]); m != nil {
			lower, upper := m.PixelWidth(keyCoord)
			result += math.Abs(upper-lower) * 0.5
		}
		result += g.PixelSpacing(baseBars[mid], keyCoord)
	}
	for i := startIndex; i != index; i += dir {
		if b := g.arena.get(baseBars[i]); b != nil {
			lower, upper := b.PixelWidth(keyCoord)
			result += math.Abs(upper - lower)
		}
		result += g.PixelSpacing(baseBars[i], keyCoord)
	}
	lower, upper := base.PixelWidth(keyCoord)
	result += math.Abs(upper-lower) * 0.5

	return result * float64(dir) * base.keyAxis.PixelOrientation()
}

// PixelSpacing resolves the configured spacing into pixels at keyCoord,
// through the queried series' key axis.
func (g *Group) PixelSpacing(h Handle, keyCoord float64) float64 {
	s := g.arena.get(h)
	if s == nil {
		return 0
	}
	switch g.spacingType {
	case SpacingAbsolute:
		return g.spacing
	case SpacingAxisRectRatio:
		if s.keyAxis.Orientation() == plot.Horizontal {
			return s.keyAxis.Rect().Width() * g.spacing
		}
		return s.keyAxis.Rect().Height() * g.spacing
	case SpacingPlotCoords:
		keyPixel := s.keyAxis.CoordToPixel(keyCoord)
		return math.Abs(s.keyAxis.CoordToPixel(keyCoord+g.spacing) - keyPixel)
	}
	return 0
}

// baseOf walks down the below-chain of h to its bottom-most link.
func (g *Group) baseOf(h Handle) Handle {
	s := g.arena.get(h)
	for s != nil && s.below != NilHandle {
		h = s.below
		s = g.arena.get(h)
	}
	return h
}
