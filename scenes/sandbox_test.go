package scenes

import (
	"testing"

	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/systems"
	"github.com/automoto/particle-sling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestPopulateSandbox(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	PopulateSandbox(e)

	entry, ok := components.Particle.First(e.World)
	if !ok {
		t.Fatal("no particle")
	}
	p := components.Particle.Get(entry)
	if p.Position != (dmath.Vec2{X: 200, Y: 200}) || p.Size != 10 {
		t.Errorf("particle = %+v, want at (200, 200) size 10", p)
	}
	if p.Velocity != (dmath.Vec2{}) {
		t.Errorf("Velocity = %v, want zero", p.Velocity)
	}

	if g := systems.GetOrCreateSimulation(e).Gravity; g != 0.2 {
		t.Errorf("Gravity = %v, want 0.2", g)
	}

	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		t.Fatal("no arena")
	}
	if a := components.Arena.Get(arenaEntry); a.Radius != cfg.Arena.Radius {
		t.Errorf("Radius = %v, want %v", a.Radius, cfg.Arena.Radius)
	}

	n := 0
	tags.Control.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 3 {
		t.Errorf("controls = %d, want 3", n)
	}
}

func TestSandboxWorldButtonsBlockDrag(t *testing.T) {
	e := NewSandboxWorld()

	// Press on the bottom button, drag into the arena and let go.
	systems.HandlePointer(e, 400, 515, true)
	systems.HandlePointer(e, 200, 100, true)
	systems.HandlePointer(e, 200, 100, false)

	entry, _ := components.Particle.First(e.World)
	p := components.Particle.Get(entry)
	if p.Position != (dmath.Vec2{X: 200, Y: 200}) {
		t.Errorf("Position = %v, want (200, 200)", p.Position)
	}
	if p.Velocity != (dmath.Vec2{}) {
		t.Errorf("Velocity = %v, want zero", p.Velocity)
	}
}

func TestSandboxWorldBounce(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	PopulateSandbox(e)
	systems.RegisterEffects(e.World)

	// Fling straight down and let it hit the floor.
	systems.HandlePointer(e, 200, 200, true)
	systems.HandlePointer(e, 200, 150, true)
	systems.HandlePointer(e, 200, 150, false)

	entry, _ := components.Particle.First(e.World)
	p := components.Particle.Get(entry)
	if p.Velocity != (dmath.Vec2{X: 0, Y: 5}) {
		t.Fatalf("Velocity = %v, want (0, 5)", p.Velocity)
	}

	for i := 0; i < 100 && p.Size == 10; i++ {
		systems.UpdatePhysics(e)
		systems.UpdateEffects(e)
	}

	if p.Size != 12 {
		t.Fatalf("Size = %v, want 12 after the first bounce", p.Size)
	}
	if p.Velocity.Y >= 0 {
		t.Errorf("Velocity = %v, want moving up after the bounce", p.Velocity)
	}
	if systems.GetOrCreateSimulation(e).Bounces != 1 {
		t.Errorf("Bounces = %d, want 1", systems.GetOrCreateSimulation(e).Bounces)
	}
}
