// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paintbuf

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/plot"
)

// Errors.
var (
	// ErrPainterActive is returned when an operation that requires an
	// idle buffer (Clear, StartPainting) is called while a painter from
	// a prior StartPainting is still live.
	ErrPainterActive = errors.New("paintbuf: a painter is still active")

	// ErrNoDrawContext is returned by StartPainting when the backend
	// cannot currently provide a drawing context. Callers must treat
	// this as "skip this draw pass", not as fatal.
	ErrNoDrawContext = errors.New("paintbuf: backend cannot provide a drawing context")
)

// Size is a buffer extent in logical (device-independent) pixels.
type Size struct {
	Width, Height int
}

// DeviceHandle provides GPU device access from the host application.
// Texture buffer backends receive the device through it instead of
// creating their own, so plot shares GPU resources with its host.
type DeviceHandle = gpucontext.DeviceProvider

// Buffer is an offscreen paint target for one plot layer.
//
// The painting lifecycle is a usage contract enforced structurally: every
// method checks the live-painter state. StartPainting fails while a
// painter is live; Clear fails while a painter is live; SetSize and
// SetDevicePixelRatio reallocate backing storage and invalidate any
// previously issued painter, whose subsequent calls become diagnosed
// no-ops.
type Buffer interface {
	// Size returns the buffer extent in logical pixels.
	Size() Size

	// SetSize resizes the buffer, reallocating backing storage. Any
	// previously issued painter is invalidated.
	SetSize(size Size)

	// DevicePixelRatio returns the backing-store pixels per logical pixel.
	DevicePixelRatio() float64

	// SetDevicePixelRatio changes the backing-store density,
	// reallocating storage and invalidating any previously issued painter.
	SetDevicePixelRatio(ratio float64)

	// StartPainting acquires the buffer's painter. It fails with
	// ErrPainterActive while a previous painter is live, and with
	// ErrNoDrawContext (possibly wrapped) when the backend has no
	// drawing context; in both cases the caller skips this draw pass.
	StartPainting() (*Painter, error)

	// DonePainting retires the painter issued by StartPainting and
	// performs backend-specific cleanup such as unbinding a hardware
	// target. The painter becomes invalid.
	DonePainting()

	// Draw composites this buffer's current contents through the given
	// painter, which belongs to another buffer, into the logical
	// destination rectangle. Used to merge layer buffers onto the final
	// screen surface.
	Draw(target *Painter, dst plot.Rect) error

	// Clear fills the entire buffer with a flat color. It is rejected
	// with ErrPainterActive while a painter is live.
	Clear(c color.Color) error

	// Invalidated reports the dirty flag consumed by a buffered-redraw
	// coordinator to decide whether this buffer needs a fresh render
	// pass.
	Invalidated() bool

	// SetInvalidated sets the dirty flag.
	SetInvalidated(invalidated bool)
}

// Target is the backend-side drawing implementation behind a Painter.
// Coordinates are logical pixels; the target applies its own device pixel
// ratio.
type Target interface {
	// FillRect fills the logical rectangle with a flat color.
	FillRect(r plot.Rect, c color.Color)

	// DrawImage draws img scaled into the logical destination rectangle.
	DrawImage(img image.Image, dst plot.Rect)
}

// Painter is the scoped drawing handle of a buffer. It is valid from
// StartPainting until DonePainting or until the buffer reallocates;
// drawing through an invalid painter is a diagnosed no-op.
type Painter struct {
	target Target
	valid  bool
}

// NewPainter wraps a backend target in a live painter. Backends call this
// from StartPainting; user code receives painters, it does not create them.
func NewPainter(target Target) *Painter {
	return &Painter{target: target, valid: true}
}

// Valid reports whether the painter can still be drawn with.
func (p *Painter) Valid() bool {
	return p != nil && p.valid
}

// Invalidate retires the painter. Called by the owning buffer.
func (p *Painter) Invalidate() {
	if p != nil {
		p.valid = false
	}
}

// FillRect fills the logical rectangle with a flat color.
func (p *Painter) FillRect(r plot.Rect, c color.Color) {
	if !p.Valid() {
		plot.Logger().Warn("paintbuf: draw on invalid painter")
		return
	}
	p.target.FillRect(r, c)
}

// DrawImage draws img scaled into the logical destination rectangle.
func (p *Painter) DrawImage(img image.Image, dst plot.Rect) {
	if !p.Valid() {
		plot.Logger().Warn("paintbuf: draw on invalid painter")
		return
	}
	p.target.DrawImage(img, dst)
}
