package bars

import (
	"math"

	"github.com/gogpu/plot"
)

// Stack base lookup matches keys within an epsilon window rather than
// exactly, because stacked series are often populated independently with
// keys that are intended to be equal but differ in the last bits.
const (
	// stackEpsilonRel is the relative key-matching tolerance for float64
	// coordinates; at key 0 it is used as an absolute tolerance.
	stackEpsilonRel = 1e-14

	// StackEpsilonSingle is the widened tolerance appropriate when keys
	// round-trip through single-precision storage.
	StackEpsilonSingle = 1e-6
)

// stackEpsilon returns the key-matching window half-width at the given key.
func stackEpsilon(key float64) float64 {
	if key == 0 {
		return stackEpsilonRel
	}
	return math.Abs(key) * stackEpsilonRel
}

// connect establishes lower.above = upper and upper.below = lower. Either
// side may be NilHandle, which disconnects the other side in that
// direction. A pre-existing link is only cleared on its far end when that
// far end actually points back at the series being relinked, so an
// unrelated series' links are never clobbered. The symmetry invariant
// holds again when connect returns.
func (a *Arena) connect(lower, upper Handle) {
	lo, up := a.get(lower), a.get(upper)
	switch {
	case lo == nil && up == nil:
		return
	case lo == nil: // disconnect upper at the bottom
		if b := a.get(up.below); b != nil && b.above == upper {
			b.above = NilHandle
		}
		up.below = NilHandle
	case up == nil: // disconnect lower at the top
		if ab := a.get(lo.above); ab != nil && ab.below == lower {
			ab.below = NilHandle
		}
		lo.above = NilHandle
	default:
		if ab := a.get(lo.above); ab != nil && ab.below == lower {
			ab.below = NilHandle
		}
		if b := a.get(up.below); b != nil && b.above == upper {
			b.above = NilHandle
		}
		lo.above = upper
		up.below = lower
	}
}

// MoveBelow places the series directly below target in a stack. The series
// is first spliced out of its current chain (its former neighbors become
// directly linked), then inserted below target; if target already has a
// series below it, this series ends up between them.
//
// Moving below itself is a no-op. NilHandle detaches the series from any
// stack. A target on a different key/value axis pair is rejected with
// ErrAxisMismatch and a diagnostic; the operation is skipped.
func (s *Series) MoveBelow(target Handle) error {
	if target == s.handle {
		return nil
	}
	t := s.arena.get(target)
	if t != nil && (t.keyAxis != s.keyAxis || t.valueAxis != s.valueAxis) {
		plot.Logger().Warn("bars: move below requires the same axis pair",
			"series", int(s.handle), "target", int(target))
		return ErrAxisMismatch
	}
	// Splice out: the back-link checks in connect clear this series' own
	// below/above as a side effect.
	s.arena.connect(s.below, s.above)
	if t != nil {
		if t.below != NilHandle {
			s.arena.connect(t.below, s.handle)
		}
		s.arena.connect(s.handle, target)
	}
	return nil
}

// MoveAbove places the series directly above target in a stack, with the
// same splice, insertion and rejection semantics as MoveBelow.
func (s *Series) MoveAbove(target Handle) error {
	if target == s.handle {
		return nil
	}
	t := s.arena.get(target)
	if t != nil && (t.keyAxis != s.keyAxis || t.valueAxis != s.valueAxis) {
		plot.Logger().Warn("bars: move above requires the same axis pair",
			"series", int(s.handle), "target", int(target))
		return ErrAxisMismatch
	}
	s.arena.connect(s.below, s.above)
	if t != nil {
		if t.above != NilHandle {
			s.arena.connect(s.handle, t.above)
		}
		s.arena.connect(target, s.handle)
	}
	return nil
}

// StackedBaseValue returns the value coordinate the series' bar at key
// starts from. For a bottom-most series this is its own base value. For a
// stacked series it is the sum, down the below-chain, of each neighbor's
// extreme value among its points within an epsilon window of key: the
// maximum on the positive side, the minimum on the negative side, never
// below/above zero, so positive and negative bars at the same key stack
// independently from the shared baseline. Only the bottom-most series'
// explicit base value enters the sum.
func (s *Series) StackedBaseValue(key float64, positive bool) float64 {
	below := s.arena.get(s.below)
	if below == nil {
		return s.baseValue
	}
	epsilon := stackEpsilon(key)
	extreme := 0.0
	pts := below.pts.Points()
	begin := below.pts.FindBegin(key-epsilon, false)
	end := below.pts.FindEnd(key+epsilon, false)
	for _, p := range pts[begin:end] {
		if p.Key <= key-epsilon || p.Key >= key+epsilon {
			continue
		}
		if (positive && p.Value > extreme) || (!positive && p.Value < extreme) {
			extreme = p.Value
		}
	}
	return extreme + below.StackedBaseValue(key, positive)
}
