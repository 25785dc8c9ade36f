package camfx

import (
	"log/slog"
	"math/rand/v2"
	"runtime"
	"testing"
)

// TestNewDefaults tests the orchestrator configuration without options.
func TestNewDefaults(t *testing.T) {
	orch := New(&testScene{})
	defer orch.Close()

	if orch.Mode() != ModeFull {
		t.Errorf("Mode() = %v, want %v", orch.Mode(), ModeFull)
	}
	if orch.noiseChance != DefaultNoiseChance {
		t.Errorf("noiseChance = %v, want %v", orch.noiseChance, DefaultNoiseChance)
	}
	if orch.src == nil {
		t.Error("src is nil, expected a seeded source")
	}
	if orch.pool != nil {
		t.Error("single worker should not start a pool")
	}
	if orch.log() != Logger() {
		t.Error("log() should fall back to the package logger")
	}
}

func TestOptions(t *testing.T) {
	custom := slog.New(slog.DiscardHandler)
	src := rand.New(rand.NewPCG(1, 2))

	orch := New(&testScene{},
		WithMode(ModeRandomSalt),
		WithMode(Mode(200)), // ignored
		WithSource(src),
		WithWorkers(3),
		WithNoiseChance(4),
		WithLogger(custom),
	)
	defer orch.Close()

	if orch.Mode() != ModeRandomSalt {
		t.Errorf("Mode() = %v, want %v", orch.Mode(), ModeRandomSalt)
	}
	if orch.src != Source(src) {
		t.Error("src is not the injected source")
	}
	if orch.pool == nil || orch.pool.Workers() != 3 {
		t.Error("expected a pool with 3 workers")
	}
	if orch.noiseChance != 1 {
		t.Errorf("noiseChance = %v, want clamped to 1", orch.noiseChance)
	}
	if orch.log() != custom {
		t.Error("log() is not the injected logger")
	}
}

func TestWithWorkersAuto(t *testing.T) {
	orch := New(&testScene{}, WithWorkers(0))
	defer orch.Close()

	if orch.pool == nil || orch.pool.Workers() != runtime.GOMAXPROCS(0) {
		t.Error("WithWorkers(0) should size the pool to GOMAXPROCS")
	}
}

func TestWithSeedReproducible(t *testing.T) {
	a := New(nil, WithSeed(99))
	b := New(nil, WithSeed(99))
	c := New(nil, WithSeed(100))

	x, y, z := a.src.Float64(), b.src.Float64(), c.src.Float64()
	if x != y {
		t.Errorf("same seed gave %v and %v", x, y)
	}
	if x == z {
		t.Error("different seeds gave the same first draw")
	}
}
