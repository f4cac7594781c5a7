package campfire

import (
	"slices"
	"testing"

	"campfire/internal/core"

	"github.com/go-gl/mathgl/mgl32"
)

func stepN(s *Scene, n int) {
	for i := 0; i < n; i++ {
		s.Step(1.0 / 60)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fires = 2
	scene := New(cfg)
	scene.SetViewer(mgl32.Vec3{3, 2, 3})

	scene.Reset(0)
	stepN(scene, 90)
	first := scene.Attributes()

	scene.Reset(0)
	stepN(scene, 90)
	second := scene.Attributes()

	if !slices.Equal(first.Positions, second.Positions) || !slices.Equal(first.Sizes, second.Sizes) {
		t.Fatal("Reset with config seed not deterministic")
	}

	scene.Reset(777)
	stepN(scene, 90)
	if slices.Equal(first.Positions, scene.Attributes().Positions) {
		t.Fatal("different seeds should produce different flames")
	}
}

func TestResetClearsParticles(t *testing.T) {
	scene := New(DefaultConfig())
	scene.Reset(0)
	stepN(scene, 30)
	if scene.Stats().Live == 0 {
		t.Fatal("expected live particles after 30 frames")
	}
	scene.Reset(0)
	if scene.Attributes().Len() != 0 || scene.Stats().Live != 0 {
		t.Fatal("Reset must start from an empty store")
	}
}

func TestStepWithoutResetBuildsFires(t *testing.T) {
	scene := New(DefaultConfig())
	scene.Step(0.5)
	if scene.Stats().Spawned == 0 {
		t.Fatal("Step on a fresh scene should spawn particles")
	}
}

func TestAnchorsOnRing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fires = 4
	cfg.RingRadius = 2
	cfg.Center = mgl32.Vec3{1, 0, 1}
	anchors := New(cfg).Anchors()
	if len(anchors) != 4 {
		t.Fatalf("expected 4 anchors, got %d", len(anchors))
	}
	for i, a := range anchors {
		if d := a.Sub(cfg.Center).Len(); d < 1.999 || d > 2.001 {
			t.Fatalf("anchor %d at distance %v from center", i, d)
		}
	}
	single := New(DefaultConfig()).Anchors()
	if len(single) != 1 || single[0] != (mgl32.Vec3{}) {
		t.Fatalf("single fire should sit at the center, got %v", single)
	}
}

func TestMultipleFiresMergedBackToFront(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fires = 3
	scene := NewNamed("campfires", cfg)
	viewer := mgl32.Vec3{3, 2, 3}
	scene.SetViewer(viewer)
	scene.Reset(5)
	stepN(scene, 60)

	a := scene.Attributes()
	st := scene.Stats()
	if a.Len() != st.Live {
		t.Fatalf("snapshot has %d entries, stats report %d live", a.Len(), st.Live)
	}
	for i := 0; i+1 < a.Len(); i++ {
		d0 := a.Positions[i].Sub(viewer).LenSqr()
		d1 := a.Positions[i+1].Sub(viewer).LenSqr()
		if d0 < d1-1e-4 {
			t.Fatalf("entries %d,%d out of order", i, i+1)
		}
	}
	if st.Spawned != st.Expired+uint64(st.Live) {
		t.Fatalf("counters inconsistent: %+v", st)
	}
}

func TestSetFloatParameterRebuilds(t *testing.T) {
	scene := New(DefaultConfig())
	scene.Reset(0)
	stepN(scene, 10)

	if !scene.SetFloatParameter("spawn_rate", 1000) {
		t.Fatal("expected spawn rate to be adjustable")
	}
	if got := scene.Config().Fire.SpawnRate; got != 500 {
		t.Fatalf("expected spawn rate to clamp to 500, got %v", got)
	}
	if scene.Stats().Spawned != 0 {
		t.Fatal("adjusting a parameter should rebuild the fires")
	}
	if scene.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if scene.SetFloatParameter("fires", 2) {
		t.Fatal("int controls must not accept float updates")
	}
}

func TestSetIntParameterFires(t *testing.T) {
	scene := New(DefaultConfig())
	scene.Reset(0)
	if !scene.SetIntParameter("fires", 40) {
		t.Fatal("expected fires to be adjustable")
	}
	if got := len(scene.Anchors()); got != 12 {
		t.Fatalf("expected fires to clamp to 12, got %d", got)
	}
}

func TestParametersSnapshot(t *testing.T) {
	scene := New(FromMap(map[string]string{"drag": "0.8", "color_start": "#ff0000"}))
	snap := scene.Parameters()
	if p, ok := snap.Lookup("drag"); !ok || p.Value != "0.8" {
		t.Fatalf("drag parameter: %+v", p)
	}
	if p, ok := snap.Lookup("color_start"); !ok || p.Value != "#ff0000" {
		t.Fatalf("color_start parameter: %+v", p)
	}
}

func TestFromMapSceneKeys(t *testing.T) {
	c := FromMap(map[string]string{"fires": "5", "ring_radius": "4", "seed": "9", "spawn_rate": "30"})
	if c.Fires != 5 || c.RingRadius != 4 || c.Seed != 9 || c.Fire.SpawnRate != 30 {
		t.Fatalf("unexpected config %+v", c)
	}
	c = FromMap(map[string]string{"fires": "0"})
	if c.Fires != 1 {
		t.Fatalf("non-positive fire count accepted: %d", c.Fires)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"campfire", "campfires"} {
		f, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("%s not registered", name)
		}
		if sim := f(nil); sim.Name() != name {
			t.Fatalf("factory %s built %s", name, sim.Name())
		}
	}
	sim := core.Sims()["campfires"](nil).(*Scene)
	if sim.Config().Fires != 3 {
		t.Fatalf("campfires should default to 3 fires, got %d", sim.Config().Fires)
	}
}
