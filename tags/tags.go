package tags

import "github.com/yohamta/donburi"

var (
	Particle = donburi.NewTag().SetName("Particle")
	Arena    = donburi.NewTag().SetName("Arena")
	Control  = donburi.NewTag().SetName("Control")
	Probe    = donburi.NewTag().SetName("Probe")
)

// Resolv tags for pointer hit testing
const (
	ResolvControl = "control"
	ResolvProbe   = "probe"
)
