package plot

import (
	"math"
	"testing"
)

func TestRangeNormalized(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want Range
	}{
		{"already normalized", Range{1, 2}, Range{1, 2}},
		{"swapped", Range{5, -3}, Range{-3, 5}},
		{"degenerate", Range{4, 4}, Range{4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRangeSizeCenter(t *testing.T) {
	r := NewRange(-2, 6)
	if got := r.Size(); got != 8 {
		t.Errorf("Size() = %v, want 8", got)
	}
	if got := r.Center(); got != 2 {
		t.Errorf("Center() = %v, want 2", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(0, 10)
	for _, v := range []float64{0, 5, 10} {
		if !r.Contains(v) {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{-0.001, 10.001} {
		if r.Contains(v) {
			t.Errorf("Contains(%v) = true, want false", v)
		}
	}
}

func TestRangeExpanded(t *testing.T) {
	got := NewRange(0, 5).Expanded(NewRange(-3, 2))
	if got != (Range{-3, 5}) {
		t.Errorf("Expanded() = %+v, want {-3 5}", got)
	}
	got = NewRange(0, 5).Expanded(NewRange(1, 2))
	if got != (Range{0, 5}) {
		t.Errorf("Expanded() with inner range = %+v, want {0 5}", got)
	}
}

func TestRangeIsValid(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want bool
	}{
		{"normal", Range{0, 1}, true},
		{"degenerate", Range{3, 3}, true},
		{"inverted", Range{2, 1}, false},
		{"nan lower", Range{math.NaN(), 1}, false},
		{"inf upper", Range{0, math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add = %+v", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub = %+v", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{"ordered", Pt(0, 0), Pt(10, 20), Rect{Pt(0, 0), Pt(10, 20)}},
		{"swapped x", Pt(10, 0), Pt(0, 20), Rect{Pt(0, 0), Pt(10, 20)}},
		{"swapped y", Pt(0, 20), Pt(10, 0), Rect{Pt(0, 0), Pt(10, 20)}},
		{"both swapped", Pt(10, 20), Pt(0, 0), Rect{Pt(0, 0), Pt(10, 20)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectFromPoints(tt.a, tt.b); got != tt.want {
				t.Errorf("RectFromPoints = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectMetrics(t *testing.T) {
	r := RectFromPoints(Pt(10, 20), Pt(40, 80))
	if got := r.Width(); got != 30 {
		t.Errorf("Width = %v, want 30", got)
	}
	if got := r.Height(); got != 60 {
		t.Errorf("Height = %v, want 60", got)
	}
	if r.IsEmpty() {
		t.Error("IsEmpty = true for non-empty rect")
	}
	if !(Rect{Pt(5, 5), Pt(5, 9)}).IsEmpty() {
		t.Error("IsEmpty = false for zero-width rect")
	}
	if !r.Contains(Pt(10, 20)) {
		t.Error("Contains(min corner) = false")
	}
	if r.Contains(Pt(40, 80)) {
		t.Error("Contains(max corner) = true, want exclusive")
	}
}
