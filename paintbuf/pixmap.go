// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package paintbuf

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/plot"
)

// ImageTarget is a Target drawing into an *image.RGBA whose backing store
// is scaled by a device pixel ratio. It is the drawing implementation of
// PixmapBuffer and of staging-based texture backends.
type ImageTarget struct {
	img   *image.RGBA
	ratio float64
}

// NewImageTarget creates a target over img; logical coordinates are
// multiplied by ratio to reach backing-store pixels.
func NewImageTarget(img *image.RGBA, ratio float64) *ImageTarget {
	if ratio <= 0 {
		ratio = 1
	}
	return &ImageTarget{img: img, ratio: ratio}
}

// deviceRect converts a logical rectangle to backing-store pixels.
func (t *ImageTarget) deviceRect(r plot.Rect) image.Rectangle {
	r = r.Normalized()
	return image.Rect(
		int(math.Floor(r.Min.X*t.ratio)),
		int(math.Floor(r.Min.Y*t.ratio)),
		int(math.Ceil(r.Max.X*t.ratio)),
		int(math.Ceil(r.Max.Y*t.ratio)),
	)
}

// FillRect fills the logical rectangle with a flat color.
func (t *ImageTarget) FillRect(r plot.Rect, c color.Color) {
	xdraw.Draw(t.img, t.deviceRect(r), image.NewUniform(c), image.Point{}, xdraw.Over)
}

// DrawImage draws img scaled into the logical destination rectangle.
// A source that already matches the destination in backing-store pixels is
// copied without resampling; anything else goes through bilinear scaling.
func (t *ImageTarget) DrawImage(img image.Image, dst plot.Rect) {
	dr := t.deviceRect(dst)
	sb := img.Bounds()
	if sb.Dx() == dr.Dx() && sb.Dy() == dr.Dy() {
		xdraw.Draw(t.img, dr, img, sb.Min, xdraw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(t.img, dr, img, sb, xdraw.Over, nil)
}

// PixmapBuffer is the software paint buffer: an *image.RGBA backing store
// at Size times the device pixel ratio. It is the default backend and is
// always available.
type PixmapBuffer struct {
	size        Size
	ratio       float64
	img         *image.RGBA
	painter     *Painter
	invalidated bool
}

// NewPixmapBuffer creates a software buffer with the given logical size
// and device pixel ratio (values <= 0 fall back to 1). The buffer starts
// invalidated, so the redraw coordinator fills it on the next pass.
func NewPixmapBuffer(size Size, devicePixelRatio float64) *PixmapBuffer {
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	b := &PixmapBuffer{
		size:        size,
		ratio:       devicePixelRatio,
		invalidated: true,
	}
	b.reallocate()
	return b
}

// reallocate replaces the backing store and invalidates any live painter.
func (b *PixmapBuffer) reallocate() {
	w := int(math.Round(float64(b.size.Width) * b.ratio))
	h := int(math.Round(float64(b.size.Height) * b.ratio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	b.painter.Invalidate()
	b.painter = nil
}

// Size returns the buffer extent in logical pixels.
func (b *PixmapBuffer) Size() Size { return b.size }

// SetSize resizes the buffer. The backing store is reallocated, content
// is discarded, any live painter is invalidated and the dirty flag is set.
func (b *PixmapBuffer) SetSize(size Size) {
	if size == b.size {
		return
	}
	b.size = size
	b.reallocate()
	b.invalidated = true
}

// DevicePixelRatio returns the backing-store pixels per logical pixel.
func (b *PixmapBuffer) DevicePixelRatio() float64 { return b.ratio }

// SetDevicePixelRatio changes the backing-store density with the same
// reallocation semantics as SetSize.
func (b *PixmapBuffer) SetDevicePixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	if ratio == b.ratio {
		return
	}
	b.ratio = ratio
	b.reallocate()
	b.invalidated = true
}

// StartPainting acquires the buffer's painter.
func (b *PixmapBuffer) StartPainting() (*Painter, error) {
	if b.painter.Valid() {
		plot.Logger().Warn("paintbuf: StartPainting while painter active")
		return nil, ErrPainterActive
	}
	b.painter = NewPainter(NewImageTarget(b.img, b.ratio))
	return b.painter, nil
}

// DonePainting retires the painter. Calling it without a live painter is
// a diagnosed no-op.
func (b *PixmapBuffer) DonePainting() {
	if !b.painter.Valid() {
		plot.Logger().Debug("paintbuf: DonePainting without active painter")
		return
	}
	b.painter.Invalidate()
	b.painter = nil
}

// Draw composites the buffer's contents through the given painter into
// the logical destination rectangle.
func (b *PixmapBuffer) Draw(target *Painter, dst plot.Rect) error {
	if !target.Valid() {
		plot.Logger().Warn("paintbuf: Draw through invalid painter")
		return ErrNoDrawContext
	}
	target.DrawImage(b.img, dst)
	return nil
}

// Image exposes the backing store, e.g. for snapshot tests or host
// presentation. The returned image is live, not a copy.
func (b *PixmapBuffer) Image() *image.RGBA { return b.img }

// Clear fills the entire buffer with a flat color. Rejected while a
// painter is live.
func (b *PixmapBuffer) Clear(c color.Color) error {
	if b.painter.Valid() {
		plot.Logger().Warn("paintbuf: Clear while painter active")
		return ErrPainterActive
	}
	xdraw.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
	return nil
}

// Invalidated reports the dirty flag.
func (b *PixmapBuffer) Invalidated() bool { return b.invalidated }

// SetInvalidated sets the dirty flag.
func (b *PixmapBuffer) SetInvalidated(invalidated bool) { b.invalidated = invalidated }
