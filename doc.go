// Package plot provides the data and geometry foundation for interactive
// 2D charts in the GoGPU ecosystem.
//
// # Overview
//
// plot is a Pure Go charting foundation inspired by QCustomPlot-style plot
// internals. It is not a widget toolkit: it provides the pieces a chart
// widget is built from, and leaves event handling, legends and axis
// decoration to the host application.
//
// The library is organized into:
//   - Root package: axis transforms (linear/logarithmic, reversible, both
//     orientations), pixel geometry types, and the shared logger.
//   - data: generic sorted point containers with fast range queries, and
//     the bar / parametric curve / OHLC point types.
//   - bars: the bar stacking resolver and side-by-side group layout engine.
//   - paintbuf: the paint buffer abstraction (software pixmap and
//     hardware texture buffers behind one lifecycle contract) with a
//     priority-ordered backend registry.
//   - paintbuf/wgpu: GPU buffer backend using gogpu/wgpu.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/plot"
//	    "github.com/gogpu/plot/data"
//	    "github.com/gogpu/plot/bars"
//	)
//
//	key := plot.NewAxis(plot.Horizontal, plot.NewRange(0, 10), rect)
//	value := plot.NewAxis(plot.Vertical, plot.NewRange(0, 100), rect)
//
//	arena := bars.NewArena()
//	revenue := arena.Add(key, value)
//	revenue.Data().Add([]data.BarPoint{{Key: 1, Value: 40}}, true)
//
// # Coordinate System
//
// Pixel space uses standard computer graphics coordinates: origin (0,0) at
// top-left, X increases right, Y increases down. Plot coordinates map into
// pixel space through Axis, which may be reversed or logarithmic.
//
// # Concurrency
//
// All mutable structures (containers, stacking links, group membership,
// paint buffers) are single-threaded by design: confine each to one owning
// goroutine or synchronize externally.
package plot

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
