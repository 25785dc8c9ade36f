package camfx

import (
	"sync"

	"github.com/k38-suzuki/camfx/frame"
)

// Camera is a simulated camera device owned by the host.
//
// CurrentFrame and PublishFrame are called by the orchestrator while it
// holds the camera's frame lock (see sync.Locker below), so implementations
// do not need to lock inside them.
type Camera interface {
	// Name identifies the camera in logs and preview overrides.
	Name() string

	// WorldPosition returns the camera's current position, taken from its
	// owning link.
	WorldPosition() Vec3

	// CurrentFrame returns the last published frame, or nil if the camera
	// has not rendered yet. The orchestrator never mutates it.
	CurrentFrame() *frame.Buffer

	// PublishFrame replaces the published frame.
	PublishFrame(*frame.Buffer)
}

// HasEffectParameters is implemented by cameras that carry their own
// intrinsic effect parameters. Cameras without it use DefaultParams.
type HasEffectParameters interface {
	EffectParameters() Params
}

// FrameSizer is implemented by cameras that declare their frame shape.
// A current frame of any other shape is skipped for the tick.
type FrameSizer interface {
	FrameSize() (width, height, channels int)
}

// Scene enumerates the cameras and zones the orchestrator works on.
// Zones must come back in a stable order.
type Scene interface {
	Cameras() []Camera
	Zones() []Zone
}

// Host is the simulation hook: fn runs once after each dynamics step.
type Host interface {
	AddPostDynamicsFunc(fn func())
}

// FrameSlot holds a camera's published frame and the lock that guards the
// clone-then-publish hand-off. Embed it in a Camera implementation to get
// CurrentFrame, PublishFrame and sync.Locker.
//
// Renderers read with Snapshot or View, which take the read lock, so they
// never observe a frame while it is being swapped.
type FrameSlot struct {
	mu  sync.RWMutex
	buf *frame.Buffer
}

// Lock acquires the slot for the orchestrator's clone or publish step.
func (s *FrameSlot) Lock() { s.mu.Lock() }

// Unlock releases the slot.
func (s *FrameSlot) Unlock() { s.mu.Unlock() }

// CurrentFrame returns the published frame. Callers hold the lock.
func (s *FrameSlot) CurrentFrame() *frame.Buffer { return s.buf }

// PublishFrame replaces the published frame. Callers hold the lock.
func (s *FrameSlot) PublishFrame(buf *frame.Buffer) { s.buf = buf }

// Store publishes buf under the lock. Used by the renderer that produces
// the raw sensor image.
func (s *FrameSlot) Store(buf *frame.Buffer) {
	s.mu.Lock()
	s.buf = buf
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the published frame, or nil.
func (s *FrameSlot) Snapshot() *frame.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Clone()
}

// View calls fn with the published frame while holding the read lock.
// fn must not retain or modify the buffer.
func (s *FrameSlot) View(fn func(*frame.Buffer)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.buf)
}
