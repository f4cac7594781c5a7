package fire

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestSpawnFullSecond(t *testing.T) {
	e := NewEmitter(DefaultConfig(), newTestRand(1))
	ps, n := e.Spawn(1.0, nil)
	if n != 75 || len(ps) != 75 {
		t.Fatalf("expected 75 particles, got n=%d len=%d", n, len(ps))
	}
	if e.Debt() != 0 {
		t.Fatalf("expected no carried debt, got %v", e.Debt())
	}
}

func TestSpawnCarriesFractionalDebt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnRate = 10
	e := NewEmitter(cfg, newTestRand(2))

	ps, n := e.Spawn(0.05, nil)
	if n != 0 {
		t.Fatalf("half a particle owed, expected none spawned, got %d", n)
	}
	ps, n = e.Spawn(0.05, ps)
	if n != 1 || len(ps) != 1 {
		t.Fatalf("debt should reach one particle on the second call, got n=%d len=%d", n, len(ps))
	}
	if e.Debt() < 0 || e.Debt() >= 1 {
		t.Fatalf("debt out of range: %v", e.Debt())
	}
}

func TestSpawnZeroDelta(t *testing.T) {
	e := NewEmitter(DefaultConfig(), newTestRand(3))
	ps, n := e.Spawn(0, nil)
	if n != 0 || len(ps) != 0 {
		t.Fatalf("zero dt must spawn nothing, got %d", n)
	}
}

func TestSpawnRateConverges(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEmitter(cfg, newTestRand(4))

	const dt = float32(1.0 / 60.0)
	var ps []Particle
	total := 0
	elapsed := 0.0
	for i := 0; i < 6000; i++ {
		var n int
		ps, n = e.Spawn(dt, ps[:0])
		total += n
		elapsed += float64(dt)
	}
	expected := elapsed * cfg.SpawnRate
	if diff := math.Abs(float64(total) - expected); diff > 1 {
		t.Fatalf("spawned %d over %.3fs, expected %.3f (diff %.3f)", total, elapsed, expected, diff)
	}
}

func TestSpawnJitteredRate(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEmitter(cfg, newTestRand(5))
	frames := newTestRand(6)

	total := 0
	elapsed := 0.0
	for i := 0; i < 5000; i++ {
		dt := 0.005 + frames.Float32()*0.05
		_, n := e.Spawn(dt, nil)
		total += n
		elapsed += float64(dt)
	}
	expected := elapsed * cfg.SpawnRate
	if diff := math.Abs(float64(total) - expected); diff > 1 {
		t.Fatalf("spawned %d, expected %.3f under jittered frames", total, expected)
	}
}

func TestSpawnedParticlesWithinBands(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEmitter(cfg, newTestRand(7))
	ps, _ := e.Spawn(20, nil)
	if len(ps) != 1500 {
		t.Fatalf("expected 1500 particles, got %d", len(ps))
	}

	const eps = 1e-5
	for i, p := range ps {
		if p.Life != p.MaxLife {
			t.Fatalf("particle %d: life %v differs from max %v at spawn", i, p.Life, p.MaxLife)
		}
		if p.MaxLife < cfg.LifeMin || p.MaxLife > cfg.LifeMax {
			t.Fatalf("particle %d: life %v outside [%v,%v]", i, p.MaxLife, cfg.LifeMin, cfg.LifeMax)
		}
		r := math.Hypot(float64(p.Position[0]), float64(p.Position[2]))
		if r > float64(cfg.SpawnRadius)+eps {
			t.Fatalf("particle %d: horizontal offset %v beyond radius %v", i, r, cfg.SpawnRadius)
		}
		if p.Position[1] < 0 || p.Position[1] > cfg.SpawnHeight {
			t.Fatalf("particle %d: height %v outside band", i, p.Position[1])
		}
		if p.Size < cfg.SizeMin || p.Size > cfg.SizeMax || p.CurrentSize != p.Size {
			t.Fatalf("particle %d: size %v/%v outside band", i, p.Size, p.CurrentSize)
		}
		if p.Rotation < 0 || p.Rotation > 2*math.Pi {
			t.Fatalf("particle %d: rotation %v outside a full turn", i, p.Rotation)
		}
		if p.Velocity[1] < cfg.RiseMin || p.Velocity[1] > cfg.RiseMax {
			t.Fatalf("particle %d: rise %v outside band", i, p.Velocity[1])
		}
		if abs32(p.Velocity[0]) > cfg.Drift || abs32(p.Velocity[2]) > cfg.Drift {
			t.Fatalf("particle %d: drift %v/%v beyond %v", i, p.Velocity[0], p.Velocity[2], cfg.Drift)
		}
	}
}

func TestSpawnAppendsWithoutTouchingExisting(t *testing.T) {
	e := NewEmitter(DefaultConfig(), newTestRand(8))
	existing := []Particle{{Life: 0.3, MaxLife: 1, Size: 42}}
	ps, n := e.Spawn(0.2, existing)
	if len(ps) != 1+n {
		t.Fatalf("expected %d particles, got %d", 1+n, len(ps))
	}
	if ps[0].Size != 42 || ps[0].Life != 0.3 {
		t.Fatalf("existing particle modified: %+v", ps[0])
	}
}
