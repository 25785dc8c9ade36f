package camfx

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/k38-suzuki/camfx/frame"
	"github.com/k38-suzuki/camfx/internal/noise"
	"github.com/k38-suzuki/camfx/internal/parallel"
)

var (
	// ErrRunning is returned when the mode is changed after the first tick
	// or a second host is attached.
	ErrRunning = errors.New("camfx: orchestrator is running")

	// ErrNilHost is returned by Attach for a nil host.
	ErrNilHost = errors.New("camfx: nil host")
)

// Stats is a snapshot of the orchestrator counters.
type Stats struct {
	Ticks           uint64 // post-dynamics callbacks handled
	Processed       uint64 // frames transformed and published
	SkippedEmpty    uint64 // cameras with no frame yet
	SkippedMismatch uint64 // cameras whose frame shape did not match
	Faults          uint64 // cameras whose pipeline panicked
}

// Orchestrator is the per-tick driver. Once per simulation step it resolves
// the effect parameters of every camera, runs the pipeline on a private copy
// of the camera's frame and publishes the result.
//
// The host calls OnPostDynamics, directly or through Attach. Nothing an
// individual camera does can fail the tick: faults are logged, counted and
// turn into "no change for this camera, this tick".
type Orchestrator struct {
	scene       Scene
	noiseChance float64
	logger      *slog.Logger
	pool        *parallel.WorkerPool

	// tickMu serialises ticks and guards src.
	tickMu sync.Mutex
	src    Source

	// mu guards mode and previews.
	mu       sync.Mutex
	mode     Mode
	previews map[string]Params

	started  atomic.Bool
	attached atomic.Bool

	ticks           atomic.Uint64
	processed       atomic.Uint64
	skippedEmpty    atomic.Uint64
	skippedMismatch atomic.Uint64
	faults          atomic.Uint64
}

// New creates an orchestrator over scene.
//
// Without WithSource or WithSeed the random source is seeded from the
// runtime's entropy.
func New(scene Scene, opts ...Option) *Orchestrator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	orch := &Orchestrator{
		scene:       scene,
		noiseChance: noise.Clamp01(o.noiseChance),
		logger:      o.logger,
		src:         o.src,
		mode:        o.mode,
		previews:    make(map[string]Params),
	}
	if o.workers != 1 {
		orch.pool = parallel.NewWorkerPool(o.workers)
	}
	return orch
}

func (o *Orchestrator) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// Mode returns the orchestration mode.
func (o *Orchestrator) Mode() Mode {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode
}

// SetMode changes the orchestration mode. It fails with ErrRunning once the
// orchestrator has been attached or has handled a tick.
func (o *Orchestrator) SetMode(m Mode) error {
	if !m.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, uint8(m))
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.started.Load() {
		return ErrRunning
	}
	o.mode = m
	return nil
}

// SetPreview overrides the default parameters of the named camera. Zones
// still take precedence over the preview.
func (o *Orchestrator) SetPreview(camera string, p Params) {
	o.mu.Lock()
	o.previews[camera] = p
	o.mu.Unlock()
}

// ClearPreview removes the preview override of the named camera.
func (o *Orchestrator) ClearPreview(camera string) {
	o.mu.Lock()
	delete(o.previews, camera)
	o.mu.Unlock()
}

// Attach registers OnPostDynamics with the host and freezes the mode.
func (o *Orchestrator) Attach(h Host) error {
	if h == nil {
		return ErrNilHost
	}
	if !o.attached.CompareAndSwap(false, true) {
		return ErrRunning
	}
	o.mu.Lock()
	o.started.Store(true)
	mode := o.mode
	o.mu.Unlock()

	h.AddPostDynamicsFunc(o.OnPostDynamics)
	o.log().Info("camfx: orchestrator attached", "mode", mode.String())
	return nil
}

// Stats returns a snapshot of the counters.
func (o *Orchestrator) Stats() Stats {
	return Stats{
		Ticks:           o.ticks.Load(),
		Processed:       o.processed.Load(),
		SkippedEmpty:    o.skippedEmpty.Load(),
		SkippedMismatch: o.skippedMismatch.Load(),
		Faults:          o.faults.Load(),
	}
}

// Close stops the worker pool. It waits for a tick in progress to finish;
// later ticks run on the calling goroutine.
func (o *Orchestrator) Close() {
	o.tickMu.Lock()
	defer o.tickMu.Unlock()
	if o.pool != nil {
		o.pool.Close()
	}
}

// streamSource is a Source that can seed derived streams.
type streamSource interface {
	Source
	Uint64() uint64
}

// OnPostDynamics runs one tick over every camera in the scene.
func (o *Orchestrator) OnPostDynamics() {
	o.tickMu.Lock()
	defer o.tickMu.Unlock()

	o.ticks.Add(1)
	if o.scene == nil {
		return
	}

	o.mu.Lock()
	o.started.Store(true)
	pl := Pipeline{Mode: o.mode, NoiseChance: o.noiseChance}
	var previews map[string]Params
	if len(o.previews) > 0 {
		previews = make(map[string]Params, len(o.previews))
		for k, v := range o.previews {
			previews[k] = v
		}
	}
	o.mu.Unlock()

	cameras, zones, ok := o.enumerate()
	if !ok {
		return
	}
	before := o.processed.Load()

	splitter, ok := o.src.(streamSource)
	if !ok {
		for _, cam := range cameras {
			o.processCamera(cam, pl, zones, previews, o.src)
		}
	} else {
		jobs := make([]func(), 0, len(cameras))
		for _, cam := range cameras {
			// Streams are drawn in enumeration order so a seed gives the
			// same frames for any worker count.
			src := rand.New(rand.NewPCG(splitter.Uint64(), splitter.Uint64()))
			jobs = append(jobs, func() {
				o.processCamera(cam, pl, zones, previews, src)
			})
		}
		if o.pool != nil {
			o.pool.ExecuteAll(jobs)
		} else {
			for _, job := range jobs {
				job()
			}
		}
	}

	o.log().Debug("camfx: tick",
		"tick", o.ticks.Load(),
		"mode", pl.Mode.String(),
		"cameras", len(cameras),
		"processed", o.processed.Load()-before)
}

// enumerate lists the scene's cameras and zones. A panicking scene counts
// as a fault and the tick is skipped.
func (o *Orchestrator) enumerate() (cameras []Camera, zones []Zone, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			o.faults.Add(1)
			o.log().Warn("camfx: scene enumeration fault", "panic", r)
			cameras, zones, ok = nil, nil, false
		}
	}()
	return o.scene.Cameras(), o.scene.Zones(), true
}

// processCamera clones the camera's frame under its lock, transforms the
// clone without the lock and publishes it under the lock again.
func (o *Orchestrator) processCamera(cam Camera, pl Pipeline, zones []Zone, previews map[string]Params, src Source) {
	if cam == nil {
		return
	}
	name := cam.Name()
	log := o.log()

	defer func() {
		if r := recover(); r != nil {
			o.faults.Add(1)
			log.Warn("camfx: camera pipeline fault", "camera", name, "panic", r)
		}
	}()

	var work *frame.Buffer
	withLock(cam, func() {
		work = cam.CurrentFrame().Clone()
	})
	if work.IsEmpty() {
		o.skippedEmpty.Add(1)
		log.Debug("camfx: camera has no frame", "camera", name)
		return
	}

	if fs, ok := cam.(FrameSizer); ok {
		w, h, c := fs.FrameSize()
		if work.Width() != w || work.Height() != h || work.Channels() != c {
			o.skippedMismatch.Add(1)
			log.Warn("camfx: frame size mismatch",
				"camera", name,
				"want", fmt.Sprintf("%dx%dx%d", w, h, c),
				"got", fmt.Sprintf("%dx%dx%d", work.Width(), work.Height(), work.Channels()))
			return
		}
	}

	def := DefaultParams()
	if hp, ok := cam.(HasEffectParameters); ok {
		def = hp.EffectParameters()
	}
	if p, ok := previews[name]; ok {
		def = p
	}
	params := Resolve(cam.WorldPosition(), def, zones)

	w, h, c := work.Width(), work.Height(), work.Channels()
	pl.Apply(work, params, src)
	if work.Width() != w || work.Height() != h || work.Channels() != c {
		o.skippedMismatch.Add(1)
		log.Warn("camfx: pipeline changed frame shape", "camera", name)
		return
	}

	withLock(cam, func() {
		cam.PublishFrame(work)
	})
	o.processed.Add(1)
}

// withLock runs fn while holding cam's lock if it has one. The lock is
// released even if fn panics.
func withLock(cam Camera, fn func()) {
	if l, ok := cam.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}
	fn()
}
