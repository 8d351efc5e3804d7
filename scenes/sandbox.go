package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/systems"
	"github.com/automoto/particle-sling/systems/factory"
	"github.com/automoto/particle-sling/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene is the arena with one particle and the gravity controls.
type SandboxScene struct {
	ecs      *ecs.ECS
	controls *ui.ControlsUI
	once     sync.Once
}

// NewSandboxScene creates the scene; the world is built on the first Update.
func NewSandboxScene() *SandboxScene {
	return &SandboxScene{}
}

func (s *SandboxScene) Update() error {
	s.once.Do(s.configure)

	// Buttons fire before the tick so a click is visible in the same frame
	if s.controls != nil {
		s.controls.Update()
	}
	s.ecs.Update()

	if systems.QuitRequested(s.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.White)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)

	if s.controls != nil {
		s.controls.Draw(screen)
	}
}

func (s *SandboxScene) configure() {
	s.ecs = NewSandboxWorld()

	controls, err := ui.NewControlsUI(
		func() { systems.AdjustGravity(s.ecs, cfg.Gravity.Step) },
		func() { systems.AdjustGravity(s.ecs, -cfg.Gravity.Step) },
		func() { systems.ResetParticleSize(s.ecs) },
	)
	if err != nil {
		log.Printf("Warning: Could not build controls: %v", err)
		return
	}
	s.controls = controls
}

// NewSandboxWorld builds the ECS with its systems, renderers and entities.
// It opens no window and loads no assets.
func NewSandboxWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Input first so drags land before physics runs
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateControls)
	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateMessage)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawMessage)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	PopulateSandbox(e)
	systems.RegisterEffects(e.World)

	return e
}

// PopulateSandbox creates the simulation state, the arena, the particle at
// rest in the center, and the pointer hit regions for the buttons.
func PopulateSandbox(e *ecs.ECS) {
	factory.CreateSimulation(e, cfg.Gravity.Default)
	factory.CreateArena(e, cfg.Arena.CenterX, cfg.Arena.CenterY, cfg.Arena.Radius)
	factory.CreateParticle(e, cfg.Particle.StartX, cfg.Particle.StartY)

	factory.CreateSpace(e, cfg.Window.Width, cfg.Window.Height, 10, 10)
	for _, r := range ui.ControlRegions() {
		factory.CreateControlRegion(e,
			float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	}
	factory.CreateProbe(e)
}
