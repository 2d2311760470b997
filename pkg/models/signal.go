package models

// Signal is an edge-triggered request from the input layer
type Signal int

const (
	SignalToggleCollisions Signal = iota // 'C'
	SignalToggleSlowMode                 // 'S'
	SignalTerminate                      // Escape or window close
)

func (s Signal) String() string {
	switch s {
	case SignalToggleCollisions:
		return "toggle-collisions"
	case SignalToggleSlowMode:
		return "toggle-slow-mode"
	case SignalTerminate:
		return "terminate"
	}
	return "unknown"
}
