// Package camfx applies per-tick image effects to simulated camera frames.
//
// # Overview
//
// camfx augments simulated camera sensors with visual degradations: colour
// shifts, Gaussian and impulsive noise, blur and edge filters, barrel lens
// distortion, horizontal flip and block pixelation. Once per simulation step
// an Orchestrator resolves the parameters of every camera, runs the effect
// pipeline on a private copy of the camera's frame and publishes the result.
//
// # Quick Start
//
//	import "github.com/k38-suzuki/camfx"
//
//	orch := camfx.New(scene, camfx.WithSeed(1))
//	defer orch.Close()
//
//	// Either drive it from the host's post-dynamics hook...
//	if err := orch.Attach(host); err != nil {
//		return err
//	}
//
//	// ...or call it directly after every step.
//	orch.OnPostDynamics()
//
// # Parameters and zones
//
// Params bundles every effect knob. Each field is independent and its zero
// value is a no-op, except CoefD whose identity is 1. A camera implementing
// HasEffectParameters supplies its own defaults. Zones override the whole
// parameter set when they contain the camera position; when several zones
// contain it, the last one in enumeration order wins (see Resolve).
//
// # Pipeline
//
// In ModeFull the operators run in this order, skipping any whose
// parameters are no-ops:
//
//	HSV, RGB, flip, Gaussian noise, salt/pepper, filter, barrel, mosaic
//
// ModeRandomSalt and ModeRandomMosaic reduce the pipeline to a single
// whole-frame Bernoulli-gated salt or mosaic step. Pepper is not gated by
// any mode; call RandomPepper directly for it.
//
// # Frame hand-off
//
// A camera that also implements sync.Locker (embed FrameSlot) has its frame
// cloned and published under that lock. The transform itself runs without
// the lock, so renderers reading through FrameSlot.Snapshot or
// FrameSlot.View never wait for it and never see a half-written frame.
//
// # Randomness
//
// Every stochastic operator draws from an explicit Source. The orchestrator
// owns one, set with WithSource or WithSeed, and derives a separate stream
// per camera in enumeration order.
//
// # Packages
//
//   - camfx: Orchestrator, Params, zones, pipeline, operator entry points
//   - frame: PixelBuffer type, image conversion, PNG and BMP encoding
//   - cmd/camfxsim: demo host driven by a YAML scene file
package camfx
