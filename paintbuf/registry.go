// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paintbuf

import (
	"errors"
	"sort"
	"sync"
)

// Options configures buffer creation through the registry.
type Options struct {
	// Size is the buffer extent in logical pixels.
	Size Size

	// DevicePixelRatio is the backing-store pixels per logical pixel.
	// Values <= 0 mean 1.
	DevicePixelRatio float64

	// Device optionally hands the host application's GPU device to
	// texture backends. Backends without it bring up their own device
	// or report themselves unavailable.
	Device DeviceHandle
}

// Option mutates Options during buffer creation.
type Option func(*Options)

// WithDevicePixelRatio sets the backing-store density.
func WithDevicePixelRatio(ratio float64) Option {
	return func(o *Options) { o.DevicePixelRatio = ratio }
}

// WithDevice hands the host's GPU device to texture backends.
func WithDevice(device DeviceHandle) Option {
	return func(o *Options) { o.Device = device }
}

// BufferFactory creates a Buffer for the given options.
type BufferFactory func(opts Options) (Buffer, error)

// RegistryEntry represents a registered buffer backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: hardware texture backends
	//   - 10: software pixmap backend
	Priority int

	// Factory creates buffer instances.
	Factory BufferFactory

	// Available reports whether the backend can run on this system.
	// Probed once at registration; the result is the backend's
	// capability-negotiation value for the process lifetime.
	Available bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered paint buffer backends.
//
// Hardware backends register themselves from their package init (blank
// import enables them), so the core library stays free of GPU imports:
//
//	import _ "github.com/gogpu/plot/paintbuf/wgpu"
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry. Most code uses the global
// registry via Register and NewBuffer.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

// Register adds a backend to the global registry. If available is nil the
// backend is assumed always available; otherwise it is probed once, now.
// Registering an existing name replaces the previous entry.
func Register(name string, priority int, factory BufferFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest
// first).
func List() []string {
	return globalRegistry.List()
}

// Available returns the names of all available backends sorted by
// priority.
func Available() []string {
	return globalRegistry.Available()
}

// NewBuffer creates a buffer using the best available backend.
func NewBuffer(size Size, opts ...Option) (Buffer, error) {
	return globalRegistry.NewBuffer(size, opts...)
}

// NewBufferByName creates a buffer using a specific named backend.
func NewBufferByName(name string, size Size, opts ...Option) (Buffer, error) {
	return globalRegistry.NewBufferByName(name, size, opts...)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory BufferFactory, available func() bool) {
	avail := true
	if available != nil {
		avail = available()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: avail,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(true)
}

// Get returns a copy of a backend's registry entry.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// NewBuffer creates a buffer using the best available backend, falling
// through the priority order until a factory succeeds.
func (r *Registry) NewBuffer(size Size, opts ...Option) (Buffer, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}
	var lastErr error
	for _, name := range available {
		b, err := r.NewBufferByName(name, size, opts...)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewBufferByName creates a buffer using a specific backend.
func (r *Registry) NewBufferByName(name string, size Size, opts ...Option) (Buffer, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available {
		return nil, &BackendUnavailableError{Name: name}
	}
	options := Options{Size: size, DevicePixelRatio: 1}
	for _, opt := range opts {
		opt(&options)
	}
	return entry.Factory(options)
}

// sortedNames returns backend names sorted by priority (highest first).
// Must be called with the lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}
	type entry struct {
		name     string
		priority int
	}
	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// ErrNoBackendAvailable is returned when no buffer backends are
// registered or available on the current system.
var ErrNoBackendAvailable = errors.New("paintbuf: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "paintbuf: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "paintbuf: backend unavailable: " + e.Name
}

// init registers the built-in software pixmap backend.
func init() {
	Register("pixmap", 10, func(opts Options) (Buffer, error) {
		return NewPixmapBuffer(opts.Size, opts.DevicePixelRatio), nil
	}, nil)
}
