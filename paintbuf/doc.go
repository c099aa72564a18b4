// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paintbuf provides the paint buffer abstraction plot layers are
// rendered into before being composited to screen.
//
// A Buffer is an offscreen render target with a strict painting lifecycle:
// StartPainting hands out a Painter, DonePainting retires it, and sizing
// or clearing operations are rejected while a painter is live. Backends
// are software pixmaps (PixmapBuffer) or hardware textures (TextureBuffer
// over a TextureBackend), selected through a priority-ordered registry
// probed once at startup.
//
// Buffers are NOT thread-safe. Each buffer belongs to the goroutine that
// renders with it.
package paintbuf
