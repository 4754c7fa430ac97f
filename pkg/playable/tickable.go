package playable

import "time"

// Tickable is a game that advances on its own between player actions
type Tickable interface {
	// Delay is the wait between each tick
	Delay() time.Duration

	// Tick will be called periodically
	// Return true if connected clients should receive the updated state
	Tick() (bool, error)
}
