// Package wgpu provides the hardware paint buffer backend using
// gogpu/wgpu (Pure Go WebGPU).
//
// Importing the package registers the backend; users opt in via blank
// import:
//
//	import _ "github.com/gogpu/plot/paintbuf/wgpu"
//
// When a GPU adapter is available, paintbuf.NewBuffer prefers this
// backend over the software pixmap backend.
package wgpu

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/paintbuf"
)

// BackendWGPU is the name of the wgpu paint buffer backend.
const BackendWGPU = "wgpu"

// Package errors.
var (
	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("wgpu: backend not initialized")

	// ErrNoGPU is returned when no suitable GPU adapter is found.
	ErrNoGPU = errors.New("wgpu: no GPU adapter available")
)

// Backend is a GPU-backed paintbuf.TextureBackend using gogpu/wgpu.
//
// The backend manages GPU resources (instance, adapter, device, queue)
// and an offscreen target. Rendering currently rasterizes into a CPU
// staging image; uploading the staged pixels into a wgpu texture and
// blitting on-GPU replaces this once texture writes land in gogpu/wgpu.
type Backend struct {
	// GPU resources
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	// Host-provided device access, when the application shares its own
	// GPU context instead of letting the backend bring up a device.
	host paintbuf.DeviceHandle

	gpuInfo *GPUInfo

	// Offscreen target
	size    paintbuf.Size
	ratio   float64
	staging *image.RGBA
	target  *paintbuf.ImageTarget

	painting    bool
	initialized bool
}

// NewBackend creates a new wgpu paint buffer backend. The backend must be
// initialized with Init (or given a host device) before use.
func NewBackend() *Backend {
	return &Backend{ratio: 1}
}

// SetHostDevice hands the host application's GPU device to the backend,
// which then skips its own device bring-up.
func (b *Backend) SetHostDevice(device paintbuf.DeviceHandle) {
	b.host = device
	if device != nil {
		b.initialized = true
	}
}

// Init initializes the backend by creating GPU resources: instance,
// adapter (preferring a high performance GPU), device and queue.
func (b *Backend) Init() error {
	if b.initialized {
		return nil
	}

	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	b.instance = core.NewInstance(desc)

	adapterID, err := b.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	b.adapter = adapterID

	logGPUInfo(adapterID)
	b.gpuInfo, _ = getGPUInfo(adapterID)

	deviceID, err := createDevice(adapterID, "plot-paintbuf-device")
	if err != nil {
		return fmt.Errorf("device creation failed: %w", err)
	}
	b.device = deviceID

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		_ = releaseDevice(deviceID)
		return fmt.Errorf("queue retrieval failed: %w", err)
	}
	b.queue = queueID

	b.initialized = true
	plot.Logger().Info("wgpu: paint buffer backend initialized")
	return nil
}

// GPUInfo returns information about the selected GPU, or nil before Init.
func (b *Backend) GPUInfo() *GPUInfo { return b.gpuInfo }

// Begin binds the offscreen target and returns the drawing target.
func (b *Backend) Begin() (paintbuf.Target, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if b.target == nil {
		return nil, errors.New("wgpu: backend has no target, Resize not called")
	}
	b.painting = true
	return b.target, nil
}

// End unbinds the offscreen target.
func (b *Backend) End() {
	b.painting = false
}

// Blit composites the backend's current contents through the given
// painter into the logical destination rectangle.
func (b *Backend) Blit(target *paintbuf.Painter, dst plot.Rect) error {
	if b.staging == nil {
		return ErrNotInitialized
	}
	target.DrawImage(b.staging, dst)
	return nil
}

// Clear fills the offscreen target with a flat color.
func (b *Backend) Clear(c color.Color) error {
	if b.staging == nil {
		return ErrNotInitialized
	}
	xdraw.Draw(b.staging, b.staging.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
	return nil
}

// Resize reallocates the offscreen target storage.
func (b *Backend) Resize(size paintbuf.Size, devicePixelRatio float64) error {
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	w := int(math.Round(float64(size.Width) * devicePixelRatio))
	h := int(math.Round(float64(size.Height) * devicePixelRatio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.size = size
	b.ratio = devicePixelRatio
	b.staging = image.NewRGBA(image.Rect(0, 0, w, h))
	b.target = paintbuf.NewImageTarget(b.staging, devicePixelRatio)
	return nil
}

// Close releases all GPU resources. Resources are released in reverse
// order of creation; the queue is released with the device.
func (b *Backend) Close() error {
	if !b.initialized {
		return nil
	}
	b.initialized = false
	b.target = nil
	b.staging = nil
	if b.host != nil {
		// The host owns its device; nothing to release here.
		b.host = nil
		return nil
	}
	var firstErr error
	if err := releaseDevice(b.device); err != nil {
		firstErr = err
		plot.Logger().Warn("wgpu: device release failed", "error", err)
	}
	if err := releaseAdapter(b.adapter); err != nil {
		if firstErr == nil {
			firstErr = err
		}
		plot.Logger().Warn("wgpu: adapter release failed", "error", err)
	}
	b.device = core.DeviceID{}
	b.adapter = core.AdapterID{}
	b.instance = nil
	return firstErr
}

// Availability is probed once per process; the result is the backend's
// capability-negotiation value.
var (
	availOnce sync.Once
	avail     bool
)

// Available reports whether a GPU adapter can be acquired on this system.
func Available() bool {
	availOnce.Do(func() {
		instance := core.NewInstance(&gputypes.InstanceDescriptor{
			Backends: gputypes.BackendsPrimary,
		})
		adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
			PowerPreference: gputypes.PowerPreferenceHighPerformance,
		})
		if err != nil {
			plot.Logger().Debug("wgpu: no adapter, backend unavailable", "error", err)
			return
		}
		_ = releaseAdapter(adapterID)
		avail = true
	})
	return avail
}

// init registers the wgpu backend with GPU priority.
func init() {
	paintbuf.Register(BackendWGPU, 100, func(opts paintbuf.Options) (paintbuf.Buffer, error) {
		b := NewBackend()
		if opts.Device != nil {
			b.SetHostDevice(opts.Device)
		} else if err := b.Init(); err != nil {
			return nil, err
		}
		buf, err := paintbuf.NewTextureBuffer(opts.Size, opts.DevicePixelRatio, b)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		return buf, nil
	}, Available)
}
