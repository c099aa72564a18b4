// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package data

import "testing"

func TestDataRangeSize(t *testing.T) {
	tests := []struct {
		name string
		r    DataRange
		want int
	}{
		{"normal", DataRange{Begin: 2, End: 5}, 3},
		{"empty", DataRange{Begin: 4, End: 4}, 0},
		{"inverted clamps to zero", DataRange{Begin: 5, End: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDataRangeIntersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   DataRange
		want   DataRange
	}{
		{"overlap", DataRange{0, 5}, DataRange{3, 8}, DataRange{3, 5}},
		{"contained", DataRange{0, 10}, DataRange{2, 4}, DataRange{2, 4}},
		{"disjoint", DataRange{0, 2}, DataRange{5, 8}, DataRange{}},
		{"touching", DataRange{0, 3}, DataRange{3, 6}, DataRange{3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); got != tt.want {
				t.Errorf("Intersection = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDataRangeBounded(t *testing.T) {
	bounds := DataRange{Begin: 2, End: 8}
	tests := []struct {
		name string
		r    DataRange
		want DataRange
	}{
		{"inside", DataRange{3, 5}, DataRange{3, 5}},
		{"clipped both", DataRange{0, 10}, DataRange{2, 8}},
		{"entirely before", DataRange{0, 1}, DataRange{2, 2}},
		{"entirely after", DataRange{9, 12}, DataRange{8, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Bounded(bounds); got != tt.want {
				t.Errorf("Bounded = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDataRangeAdjusted(t *testing.T) {
	if got := (DataRange{Begin: 2, End: 6}).Adjusted(-1, 2); got != (DataRange{Begin: 1, End: 8}) {
		t.Errorf("Adjusted = %+v", got)
	}
}

func TestSelectionAddRangeMerges(t *testing.T) {
	var s Selection
	s.AddRange(DataRange{Begin: 5, End: 8})
	s.AddRange(DataRange{Begin: 0, End: 2})
	s.AddRange(DataRange{Begin: 7, End: 10}) // overlaps first
	s.AddRange(DataRange{Begin: 2, End: 3})  // touches second

	want := []DataRange{{Begin: 0, End: 3}, {Begin: 5, End: 10}}
	got := s.Ranges()
	if len(got) != len(want) {
		t.Fatalf("Ranges() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if s.TotalSize() != 8 {
		t.Errorf("TotalSize() = %d, want 8", s.TotalSize())
	}
	if s.RangeCount() != 2 {
		t.Errorf("RangeCount() = %d, want 2", s.RangeCount())
	}
}

func TestSelectionAddRangeIgnoresEmpty(t *testing.T) {
	var s Selection
	s.AddRange(DataRange{Begin: 3, End: 3})
	s.AddRange(DataRange{Begin: 5, End: 2})
	if !s.IsEmpty() {
		t.Errorf("Selection with only empty ranges: %+v", s.Ranges())
	}
}

func TestSelectionContains(t *testing.T) {
	var s Selection
	s.AddRange(DataRange{Begin: 1, End: 3})
	s.AddRange(DataRange{Begin: 6, End: 9})

	for _, i := range []int{1, 2, 6, 8} {
		if !s.Contains(i) {
			t.Errorf("Contains(%d) = false, want true", i)
		}
	}
	for _, i := range []int{0, 3, 5, 9} {
		if s.Contains(i) {
			t.Errorf("Contains(%d) = true, want false", i)
		}
	}
}

func TestSelectionClear(t *testing.T) {
	var s Selection
	s.AddRange(DataRange{Begin: 0, End: 4})
	s.Clear()
	if !s.IsEmpty() || s.TotalSize() != 0 {
		t.Error("selection not empty after Clear")
	}
}
