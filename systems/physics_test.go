package systems

import (
	"math"
	"testing"

	"github.com/automoto/particle-sling/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestStepParticle(t *testing.T) {
	arena := &components.ArenaData{Center: dmath.Vec2{X: 200, Y: 200}, Radius: 200}

	tests := []struct {
		name        string
		particle    components.ParticleData
		gravity     float64
		wantPos     dmath.Vec2
		wantVel     dmath.Vec2
		wantSize    float64
		wantLatch   bool
		wantCollide bool
	}{
		{
			name:     "at rest falls",
			particle: components.ParticleData{Position: dmath.Vec2{X: 200, Y: 200}, Size: 10},
			gravity:  0.2,
			wantPos:  dmath.Vec2{X: 200, Y: 200},
			wantVel:  dmath.Vec2{X: 0, Y: 0.2},
			wantSize: 10,
		},
		{
			name:     "position moves by truncated velocity",
			particle: components.ParticleData{Position: dmath.Vec2{X: 200, Y: 200}, Velocity: dmath.Vec2{X: 1.9, Y: -1.9}, Size: 10},
			wantPos:  dmath.Vec2{X: 201, Y: 199},
			wantVel:  dmath.Vec2{X: 1.9, Y: -1.9},
			wantSize: 10,
		},
		{
			name:        "crossing the bottom reflects and grows",
			particle:    components.ParticleData{Position: dmath.Vec2{X: 200, Y: 405}, Velocity: dmath.Vec2{X: 0, Y: 3}, Size: 10},
			wantPos:     dmath.Vec2{X: 200, Y: 408},
			wantVel:     dmath.Vec2{X: 0, Y: -3},
			wantSize:    12,
			wantLatch:   true,
			wantCollide: true,
		},
		{
			name:        "diagonal reflection",
			particle:    components.ParticleData{Position: dmath.Vec2{X: 350, Y: 350}, Velocity: dmath.Vec2{X: 2, Y: 2}, Size: 10},
			wantPos:     dmath.Vec2{X: 352, Y: 352},
			wantVel:     dmath.Vec2{X: -2, Y: -2},
			wantSize:    12,
			wantLatch:   true,
			wantCollide: true,
		},
		{
			name:      "latched particle is not reflected again",
			particle:  components.ParticleData{Position: dmath.Vec2{X: 200, Y: 408}, Velocity: dmath.Vec2{X: 0, Y: -3}, Size: 12, IsColliding: true},
			wantPos:   dmath.Vec2{X: 200, Y: 405},
			wantVel:   dmath.Vec2{X: 0, Y: -3},
			wantSize:  12,
			wantLatch: true,
		},
		{
			name:     "inside clears the latch",
			particle: components.ParticleData{Position: dmath.Vec2{X: 200, Y: 300}, Velocity: dmath.Vec2{X: 3, Y: 4}, Size: 12, IsColliding: true},
			wantPos:  dmath.Vec2{X: 203, Y: 304},
			wantVel:  dmath.Vec2{X: 3, Y: 4},
			wantSize: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.particle
			got := StepParticle(&p, arena, tt.gravity)

			if got != tt.wantCollide {
				t.Errorf("StepParticle() = %v, want %v", got, tt.wantCollide)
			}
			if p.Position != tt.wantPos {
				t.Errorf("Position = %v, want %v", p.Position, tt.wantPos)
			}
			if !approx(p.Velocity.X, tt.wantVel.X) || !approx(p.Velocity.Y, tt.wantVel.Y) {
				t.Errorf("Velocity = %v, want %v", p.Velocity, tt.wantVel)
			}
			if p.Size != tt.wantSize {
				t.Errorf("Size = %v, want %v", p.Size, tt.wantSize)
			}
			if p.IsColliding != tt.wantLatch {
				t.Errorf("IsColliding = %v, want %v", p.IsColliding, tt.wantLatch)
			}
		})
	}
}

func TestStepParticleGravityAccumulates(t *testing.T) {
	arena := &components.ArenaData{Center: dmath.Vec2{X: 200, Y: 200}, Radius: 200}
	p := components.ParticleData{Position: dmath.Vec2{X: 200, Y: 200}, Size: 10}

	for n := 1; n <= 10; n++ {
		if StepParticle(&p, arena, 0.2) {
			t.Fatalf("tick %d: unexpected collision at %v", n, p.Position)
		}
		if want := 0.2 * float64(n); math.Abs(p.Velocity.Y-want) > 1e-9 {
			t.Errorf("tick %d: vy = %v, want %v", n, p.Velocity.Y, want)
		}
	}
	if p.Velocity.X != 0 || p.Position.X != 200 {
		t.Errorf("horizontal state changed: pos %v vel %v", p.Position, p.Velocity)
	}
}

func TestStepParticleDegenerateNormal(t *testing.T) {
	// Boundary smaller than the particle: the center is already "outside".
	arena := &components.ArenaData{Center: dmath.Vec2{X: 200, Y: 200}, Radius: 4}
	p := components.ParticleData{Position: dmath.Vec2{X: 200, Y: 200}, Size: 10}

	if StepParticle(&p, arena, 0) {
		t.Error("StepParticle() = true, want false with no usable normal")
	}
	if !p.IsColliding {
		t.Error("IsColliding = false, want true")
	}
	if p.Size != 10 {
		t.Errorf("Size = %v, want 10", p.Size)
	}
}

func TestUpdatePhysicsPublishesCollision(t *testing.T) {
	e := newTestWorld()
	p := testParticle(e)
	p.Position = dmath.Vec2{X: 200, Y: 405}
	p.Velocity = dmath.Vec2{X: 0, Y: 3}

	var got []components.CollisionEvent
	components.CollisionEventType.Subscribe(e.World, func(w donburi.World, ev components.CollisionEvent) {
		got = append(got, ev)
	})

	UpdatePhysics(e)
	UpdatePhysics(e)
	components.CollisionEventType.ProcessEvents(e.World)

	if len(got) != 1 {
		t.Fatalf("got %d collision events, want 1", len(got))
	}
	if got[0].Size != 12 {
		t.Errorf("event Size = %v, want 12", got[0].Size)
	}

	sim := GetOrCreateSimulation(e)
	if sim.Tick != 2 {
		t.Errorf("Tick = %d, want 2", sim.Tick)
	}
	if sim.Bounces != 1 {
		t.Errorf("Bounces = %d, want 1", sim.Bounces)
	}
}

func TestResetParticleSize(t *testing.T) {
	e := newTestWorld()
	p := testParticle(e)
	p.Size = 24
	p.Position = dmath.Vec2{X: 10, Y: 20}

	ResetParticleSize(e)

	if p.Size != 10 {
		t.Errorf("Size = %v, want 10", p.Size)
	}
	if p.Position != (dmath.Vec2{X: 10, Y: 20}) {
		t.Errorf("Position = %v, want unchanged", p.Position)
	}
}
