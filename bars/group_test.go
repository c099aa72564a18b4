package bars

import (
	"math"
	"testing"

	"github.com/gogpu/plot"
)

// groupFixture builds a group of n series with a 10 pixel absolute width
// and the default 4 pixel absolute spacing on a shared axis pair.
func groupFixture(n int) (*Arena, *Group, []*Series) {
	key, value := testAxes()
	a := NewArena()
	g := NewGroup(a)
	series := make([]*Series, n)
	for i := range series {
		s := a.Add(key, value)
		s.SetWidthType(WidthAbsolute)
		s.SetWidth(10)
		g.Append(s.Handle())
		series[i] = s
	}
	return a, g, series
}

func TestGroupMembership(t *testing.T) {
	_, g, series := groupFixture(2)

	if g.Size() != 2 || g.IsEmpty() {
		t.Fatalf("Size() = %d", g.Size())
	}
	for _, s := range series {
		if !g.Contains(s.Handle()) {
			t.Errorf("Contains(%v) = false", s.Handle())
		}
		if s.Group() != g {
			t.Error("series back-reference not set")
		}
	}

	g.Remove(series[0].Handle())
	if g.Contains(series[0].Handle()) || series[0].Group() != nil {
		t.Error("Remove did not detach the series")
	}
	g.Remove(series[0].Handle()) // non-member, no-op
	if g.Size() != 1 {
		t.Errorf("Size() = %d after removing non-member", g.Size())
	}

	g.Clear()
	if !g.IsEmpty() || series[1].Group() != nil {
		t.Error("Clear did not empty the group")
	}
}

func TestGroupAppendDuplicate(t *testing.T) {
	_, g, series := groupFixture(1)
	g.Append(series[0].Handle())
	if g.Size() != 1 {
		t.Errorf("duplicate Append changed Size() to %d", g.Size())
	}
}

func TestGroupSingleMembership(t *testing.T) {
	key, value := testAxes()
	a := NewArena()
	s := a.Add(key, value)
	g1 := NewGroup(a)
	g2 := NewGroup(a)

	g1.Append(s.Handle())
	g2.Append(s.Handle())
	if g1.Contains(s.Handle()) {
		t.Error("series still in first group after joining second")
	}
	if !g2.Contains(s.Handle()) || s.Group() != g2 {
		t.Error("series not in second group")
	}
}

func TestGroupInsert(t *testing.T) {
	_, g, series := groupFixture(3)
	a, b, c := series[0].Handle(), series[1].Handle(), series[2].Handle()

	g.Insert(0, c)
	if m := g.Members(); m[0] != c || m[1] != a || m[2] != b {
		t.Errorf("Members() = %v after Insert(0, c)", m)
	}
	g.Insert(99, a) // clamps to the last position
	if m := g.Members(); m[0] != c || m[1] != b || m[2] != a {
		t.Errorf("Members() = %v after Insert(99, a)", m)
	}
}

func TestGroupInsertJoins(t *testing.T) {
	arena, g, series := groupFixture(2)
	key, value := series[0].KeyAxis(), series[0].ValueAxis()
	s := arena.Add(key, value)

	g.Insert(1, s.Handle())
	if !g.Contains(s.Handle()) || s.Group() != g {
		t.Fatal("Insert did not join the series")
	}
	if m := g.Members(); m[1] != s.Handle() {
		t.Errorf("Members() = %v, want new series at index 1", m)
	}
}

func TestKeyPixelOffsetTwoMembers(t *testing.T) {
	_, g, series := groupFixture(2)

	// Width 10, spacing 4: each member sits half a spacing plus half its
	// own width off center.
	left := g.KeyPixelOffset(series[0].Handle(), 5)
	right := g.KeyPixelOffset(series[1].Handle(), 5)
	if left != -7 || right != 7 {
		t.Errorf("offsets = %v, %v, want -7, 7", left, right)
	}
	if right-left != series[0].WidthPixels(5)+g.Spacing() {
		t.Errorf("separation = %v, want width+spacing", right-left)
	}
}

func TestKeyPixelOffsetOddGroup(t *testing.T) {
	_, g, series := groupFixture(3)

	if got := g.KeyPixelOffset(series[1].Handle(), 5); got != 0 {
		t.Errorf("middle offset = %v, want 0", got)
	}
	left := g.KeyPixelOffset(series[0].Handle(), 5)
	right := g.KeyPixelOffset(series[2].Handle(), 5)
	if left != -14 || right != 14 {
		t.Errorf("outer offsets = %v, %v, want -14, 14", left, right)
	}
}

func TestKeyPixelOffsetSingleMember(t *testing.T) {
	_, g, series := groupFixture(1)
	g.SetSpacing(17)
	g.SetSpacingType(SpacingPlotCoords)
	if got := g.KeyPixelOffset(series[0].Handle(), 5); got != 0 {
		t.Errorf("single member offset = %v, want 0", got)
	}
}

func TestKeyPixelOffsetFourMembers(t *testing.T) {
	_, g, series := groupFixture(4)
	want := []float64{-21, -7, 7, 21}
	for i, s := range series {
		if got := g.KeyPixelOffset(s.Handle(), 5); got != want[i] {
			t.Errorf("offset[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestKeyPixelOffsetVerticalKeyAxis(t *testing.T) {
	// Screen Y grows downward, so on a vertical key axis the offsets
	// mirror.
	rect := plot.RectFromPoints(plot.Pt(0, 0), plot.Pt(100, 100))
	key := plot.NewAxis(plot.Vertical, plot.NewRange(0, 10), rect)
	value := plot.NewAxis(plot.Horizontal, plot.NewRange(0, 10), rect)
	a := NewArena()
	g := NewGroup(a)
	var series []*Series
	for i := 0; i < 2; i++ {
		s := a.Add(key, value)
		s.SetWidthType(WidthAbsolute)
		s.SetWidth(10)
		g.Append(s.Handle())
		series = append(series, s)
	}

	first := g.KeyPixelOffset(series[0].Handle(), 5)
	second := g.KeyPixelOffset(series[1].Handle(), 5)
	if first != 7 || second != -7 {
		t.Errorf("offsets = %v, %v, want 7, -7", first, second)
	}
}

func TestKeyPixelOffsetStackedSharesSlot(t *testing.T) {
	arena, g, series := groupFixture(2)
	key, value := series[0].KeyAxis(), series[0].ValueAxis()

	stacked := arena.Add(key, value)
	stacked.SetWidthType(WidthAbsolute)
	stacked.SetWidth(10)
	if err := stacked.MoveAbove(series[0].Handle()); err != nil {
		t.Fatalf("MoveAbove: %v", err)
	}
	g.Append(stacked.Handle())

	// The stacked series collapses onto its base series' slot: still two
	// slots, and the stacked series shares the base offset.
	base := g.KeyPixelOffset(series[0].Handle(), 5)
	if got := g.KeyPixelOffset(stacked.Handle(), 5); got != base {
		t.Errorf("stacked offset = %v, want base offset %v", got, base)
	}
	if got := g.KeyPixelOffset(series[1].Handle(), 5); got != -base {
		t.Errorf("second slot offset = %v, want %v", got, -base)
	}
}

func TestKeyPixelOffsetStackedUsesBaseWidth(t *testing.T) {
	arena, g, series := groupFixture(2)
	key, value := series[0].KeyAxis(), series[0].ValueAxis()

	stacked := arena.Add(key, value)
	stacked.SetWidthType(WidthAbsolute)
	stacked.SetWidth(30)
	if err := stacked.MoveAbove(series[0].Handle()); err != nil {
		t.Fatalf("MoveAbove: %v", err)
	}
	g.Append(stacked.Handle())

	// Slot geometry is resolved through the base series, so a stacked
	// member with a wider width of its own still lands on its base's
	// offset.
	base := g.KeyPixelOffset(series[0].Handle(), 5)
	if base != -7 {
		t.Fatalf("base offset = %v, want -7", base)
	}
	if got := g.KeyPixelOffset(stacked.Handle(), 5); got != base {
		t.Errorf("stacked offset = %v, want base offset %v", got, base)
	}
}

func TestKeyPixelOffsetSpacingPerSlot(t *testing.T) {
	key, value := testAxes()
	narrow := plot.NewAxis(plot.Horizontal, plot.NewRange(0, 10),
		plot.RectFromPoints(plot.Pt(0, 0), plot.Pt(50, 100)))
	a := NewArena()
	g := NewGroup(a)
	g.SetSpacingType(SpacingAxisRectRatio)
	g.SetSpacing(0.1)
	series := make([]*Series, 3)
	for i := range series {
		ax := key
		if i == 1 {
			ax = narrow
		}
		s := a.Add(ax, value)
		s.SetWidthType(WidthAbsolute)
		s.SetWidth(10)
		g.Append(s.Handle())
		series[i] = s
	}

	// Ratio spacing next to the middle slot resolves through the middle
	// series' axis (50 px rect, so 5 px), not through the queried series'
	// axis: half mid width 5 + spacing 5 + half own width 5.
	if got := g.KeyPixelOffset(series[0].Handle(), 5); got != -15 {
		t.Errorf("left offset = %v, want -15", got)
	}
	if got := g.KeyPixelOffset(series[2].Handle(), 5); got != 15 {
		t.Errorf("right offset = %v, want 15", got)
	}
}

func TestKeyPixelOffsetNonMember(t *testing.T) {
	arena, g, series := groupFixture(2)
	outsider := arena.Add(series[0].KeyAxis(), series[0].ValueAxis())
	if got := g.KeyPixelOffset(outsider.Handle(), 5); got != 0 {
		t.Errorf("non-member offset = %v, want 0", got)
	}
}

func TestPixelSpacing(t *testing.T) {
	_, g, series := groupFixture(1)
	h := series[0].Handle()

	g.SetSpacingType(SpacingAbsolute)
	g.SetSpacing(4)
	if got := g.PixelSpacing(h, 5); got != 4 {
		t.Errorf("absolute spacing = %v, want 4", got)
	}

	g.SetSpacingType(SpacingAxisRectRatio)
	g.SetSpacing(0.1)
	if got := g.PixelSpacing(h, 5); got != 10 {
		t.Errorf("rect ratio spacing = %v, want 10", got)
	}

	// 10 pixels per key unit on the fixture axis.
	g.SetSpacingType(SpacingPlotCoords)
	g.SetSpacing(1)
	if got := g.PixelSpacing(h, 5); math.Abs(got-10) > 1e-9 {
		t.Errorf("plot coords spacing = %v, want 10", got)
	}
}
