package components

import "github.com/yohamta/donburi"

// SimulationData stores world-wide simulation state (singleton component)
type SimulationData struct {
	Gravity float64 // added to the particle's vertical velocity every tick
	Tick    uint64
	Bounces int // collision transitions since start
}

var Simulation = donburi.NewComponentType[SimulationData]()

// SettingsData stores toggles that only affect presentation (singleton component)
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
