package bars

import (
	"errors"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/data"
)

// Handle is a stable identifier of a bar series inside its Arena. Handles
// stay valid until the series is removed; removed handles may be reused by
// later additions.
type Handle int

// NilHandle is the absent series, e.g. the below link of a bottom-most bar.
const NilHandle Handle = -1

// ErrAxisMismatch is returned when two series of different key/value axis
// pairs are asked to stack on each other.
var ErrAxisMismatch = errors.New("bars: series use different axis pairs")

// WidthType defines how the Width of a series translates to pixels.
type WidthType uint8

const (
	// WidthPlotCoords interprets Width in key-axis plot coordinates. Bar
	// edges land at key ± width/2 transformed through the key axis, so
	// widths follow nonlinear scales.
	WidthPlotCoords WidthType = iota

	// WidthAbsolute interprets Width as a constant pixel width.
	WidthAbsolute

	// WidthAxisRectRatio interprets Width as a fraction of the axis rect
	// extent along the key axis direction.
	WidthAxisRectRatio
)

// Series is one bar series: its data container, axis pair, width and base
// configuration, and its position in a stacking chain and group.
//
// Series are created through Arena.Add and referenced elsewhere by Handle.
type Series struct {
	arena  *Arena
	handle Handle

	keyAxis, valueAxis plot.Axis

	pts *data.Container[data.BarPoint]

	width       float64
	widthType   WidthType
	baseValue   float64
	stackingGap float64

	below, above Handle
	group        *Group
}

// Arena owns the bar series of one plot and resolves their handles. The
// stacking relation between series is stored inside the arena's slots, so
// every splice can restore the symmetry invariant in one place.
type Arena struct {
	slots []*Series
	free  []Handle
}

// NewArena creates an empty series arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add creates a new series on the given axis pair and returns it. The
// series starts with an empty container, width 0.75 in plot coordinates,
// base value 0 and a stacking gap of 1 pixel.
func (a *Arena) Add(keyAxis, valueAxis plot.Axis) *Series {
	s := &Series{
		arena:       a,
		keyAxis:     keyAxis,
		valueAxis:   valueAxis,
		pts:         data.NewContainer[data.BarPoint](),
		width:       0.75,
		widthType:   WidthPlotCoords,
		stackingGap: 1,
		below:       NilHandle,
		above:       NilHandle,
	}
	if n := len(a.free); n > 0 {
		s.handle = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[s.handle] = s
	} else {
		s.handle = Handle(len(a.slots))
		a.slots = append(a.slots, s)
	}
	return s
}

// Series resolves a handle to its series. NilHandle and removed or
// out-of-range handles resolve to nil; the latter two log a diagnostic.
func (a *Arena) Series(h Handle) *Series {
	if h == NilHandle {
		return nil
	}
	if int(h) < 0 || int(h) >= len(a.slots) || a.slots[h] == nil {
		plot.Logger().Warn("bars: invalid series handle", "handle", int(h))
		return nil
	}
	return a.slots[h]
}

// get is the internal handle lookup: nil for NilHandle or freed slots,
// without the misuse diagnostic.
func (a *Arena) get(h Handle) *Series {
	if h == NilHandle || int(h) < 0 || int(h) >= len(a.slots) {
		return nil
	}
	return a.slots[h]
}

// Remove destroys the series behind h. Its former below and above
// neighbors become directly linked to each other, and any group membership
// ends. Removing an unknown handle is a no-op with a diagnostic.
func (a *Arena) Remove(h Handle) {
	s := a.Series(h)
	if s == nil {
		return
	}
	a.connect(s.below, s.above)
	s.below, s.above = NilHandle, NilHandle
	s.setGroup(nil)
	s.arena = nil
	a.slots[h] = nil
	a.free = append(a.free, h)
}

// Len returns the number of live series in the arena.
func (a *Arena) Len() int {
	return len(a.slots) - len(a.free)
}

// Handle returns the series' stable handle in its arena.
func (s *Series) Handle() Handle { return s.handle }

// KeyAxis returns the axis the series' keys map through.
func (s *Series) KeyAxis() plot.Axis { return s.keyAxis }

// ValueAxis returns the axis the series' values map through.
func (s *Series) ValueAxis() plot.Axis { return s.valueAxis }

// Data returns the series' point container.
func (s *Series) Data() *data.Container[data.BarPoint] { return s.pts }

// SetData replaces the series' point container. Passing a container that
// another series also holds shares the data between them; passing nil
// installs a fresh empty container.
func (s *Series) SetData(c *data.Container[data.BarPoint]) {
	if c == nil {
		c = data.NewContainer[data.BarPoint]()
	}
	s.pts = c
}

// Width returns the bar width, interpreted per WidthType.
func (s *Series) Width() float64 { return s.width }

// SetWidth sets the bar width, interpreted per WidthType.
func (s *Series) SetWidth(w float64) { s.width = w }

// WidthType returns how Width translates to pixels.
func (s *Series) WidthType() WidthType { return s.widthType }

// SetWidthType sets how Width translates to pixels.
func (s *Series) SetWidthType(t WidthType) { s.widthType = t }

// BaseValue returns the value the bars start from. Only the bottom-most
// series of a stack contributes its base value; for stacked series above
// it the effective base comes from StackedBaseValue.
func (s *Series) BaseValue() float64 { return s.baseValue }

// SetBaseValue sets the value the bars start from.
func (s *Series) SetBaseValue(v float64) { s.baseValue = v }

// StackingGap returns the gap in pixels left between this series' bars and
// the bars below them in a stack.
func (s *Series) StackingGap() float64 { return s.stackingGap }

// SetStackingGap sets the gap in pixels between stacked bars.
func (s *Series) SetStackingGap(gap float64) { s.stackingGap = gap }

// Below returns the handle of the series directly below this one in its
// stack, or NilHandle.
func (s *Series) Below() Handle { return s.below }

// Above returns the handle of the series directly above this one in its
// stack, or NilHandle.
func (s *Series) Above() Handle { return s.above }

// Group returns the group the series belongs to, or nil.
func (s *Series) Group() *Group { return s.group }

// setGroup moves the series into grp, leaving any previous group first.
// Both the member list and the back-reference stay consistent.
func (s *Series) setGroup(grp *Group) {
	if s.group != nil {
		s.group.unregister(s.handle)
	}
	s.group = grp
	if grp != nil {
		grp.register(s.handle)
	}
}
