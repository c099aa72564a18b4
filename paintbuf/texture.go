// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paintbuf

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/plot"
)

// TextureBackend is the interface GPU implementations provide to back a
// TextureBuffer. The buffer enforces the painting lifecycle; the backend
// owns the actual render target.
//
// Begin and End bracket one painting pass: Begin binds the backend's
// offscreen target and returns the Target to draw through, End unbinds
// and flushes. Begin returning an error means the backend currently has
// no context (device lost, window gone); the buffer surfaces that as
// ErrNoDrawContext and the frame's draw pass is skipped.
type TextureBackend interface {
	// Begin binds the offscreen target and returns the drawing target.
	Begin() (Target, error)

	// End unbinds the offscreen target and flushes pending work.
	End()

	// Blit composites the backend's current contents through the given
	// painter into the logical destination rectangle.
	Blit(target *Painter, dst plot.Rect) error

	// Clear fills the backend's target with a flat color.
	Clear(c color.Color) error

	// Resize reallocates the backend's target storage.
	Resize(size Size, devicePixelRatio float64) error

	// Close releases all backend resources.
	Close() error
}

// TextureBuffer is the hardware paint buffer: lifecycle state machine in
// front of a TextureBackend rendering into an offscreen texture.
//
// Construction follows the teacher pattern of receiving GPU access from
// outside: backends get their device from the host (see DeviceHandle) or
// bring up their own, but the buffer itself never touches GPU APIs.
type TextureBuffer struct {
	size        Size
	ratio       float64
	format      gputypes.TextureFormat
	backend     TextureBackend
	painter     *Painter
	invalidated bool
}

// NewTextureBuffer creates a hardware buffer over the given backend.
// Returns an error if backend is nil.
func NewTextureBuffer(size Size, devicePixelRatio float64, backend TextureBackend) (*TextureBuffer, error) {
	if backend == nil {
		return nil, errors.New("paintbuf: TextureBackend cannot be nil")
	}
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	if err := backend.Resize(size, devicePixelRatio); err != nil {
		return nil, fmt.Errorf("paintbuf: backend rejected initial size: %w", err)
	}
	return &TextureBuffer{
		size:        size,
		ratio:       devicePixelRatio,
		format:      gputypes.TextureFormatRGBA8Unorm,
		backend:     backend,
		invalidated: true,
	}, nil
}

// Size returns the buffer extent in logical pixels.
func (b *TextureBuffer) Size() Size { return b.size }

// Format returns the texture pixel format of the backing target.
func (b *TextureBuffer) Format() gputypes.TextureFormat { return b.format }

// SetSize resizes the buffer, reallocating the backend target and
// invalidating any live painter.
func (b *TextureBuffer) SetSize(size Size) {
	if size == b.size {
		return
	}
	b.size = size
	b.reallocate()
}

// DevicePixelRatio returns the backing-store pixels per logical pixel.
func (b *TextureBuffer) DevicePixelRatio() float64 { return b.ratio }

// SetDevicePixelRatio changes the backing-store density with the same
// reallocation semantics as SetSize.
func (b *TextureBuffer) SetDevicePixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	if ratio == b.ratio {
		return
	}
	b.ratio = ratio
	b.reallocate()
}

func (b *TextureBuffer) reallocate() {
	if err := b.backend.Resize(b.size, b.ratio); err != nil {
		plot.Logger().Warn("paintbuf: texture backend resize failed", "error", err)
	}
	b.painter.Invalidate()
	b.painter = nil
	b.invalidated = true
}

// StartPainting acquires the buffer's painter, binding the backend target.
func (b *TextureBuffer) StartPainting() (*Painter, error) {
	if b.painter.Valid() {
		plot.Logger().Warn("paintbuf: StartPainting while painter active")
		return nil, ErrPainterActive
	}
	target, err := b.backend.Begin()
	if err != nil {
		plot.Logger().Debug("paintbuf: texture backend has no draw context", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNoDrawContext, err)
	}
	b.painter = NewPainter(target)
	return b.painter, nil
}

// DonePainting retires the painter and unbinds the backend target.
func (b *TextureBuffer) DonePainting() {
	if !b.painter.Valid() {
		plot.Logger().Debug("paintbuf: DonePainting without active painter")
		return
	}
	b.painter.Invalidate()
	b.painter = nil
	b.backend.End()
}

// Draw composites the buffer's contents through the given painter into
// the logical destination rectangle.
func (b *TextureBuffer) Draw(target *Painter, dst plot.Rect) error {
	if !target.Valid() {
		plot.Logger().Warn("paintbuf: Draw through invalid painter")
		return ErrNoDrawContext
	}
	return b.backend.Blit(target, dst)
}

// Clear fills the entire buffer with a flat color. Rejected while a
// painter is live.
func (b *TextureBuffer) Clear(c color.Color) error {
	if b.painter.Valid() {
		plot.Logger().Warn("paintbuf: Clear while painter active")
		return ErrPainterActive
	}
	return b.backend.Clear(c)
}

// Invalidated reports the dirty flag.
func (b *TextureBuffer) Invalidated() bool { return b.invalidated }

// SetInvalidated sets the dirty flag.
func (b *TextureBuffer) SetInvalidated(invalidated bool) { b.invalidated = invalidated }

// Close releases the backend's resources. The buffer must not be used
// afterwards.
func (b *TextureBuffer) Close() error {
	b.painter.Invalidate()
	b.painter = nil
	return b.backend.Close()
}
