package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the active status message
type MessageStateData struct {
	Text         string // "" = none
	DisplayTimer int    // Ticks remaining to display current message
}

var MessageState = donburi.NewComponentType[MessageStateData]()
