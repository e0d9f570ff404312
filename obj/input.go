package obj

// PlayerInput is one frame of player intent, filled from the keyboard and
// gamepad by the game or from a script by the autopilot.
type PlayerInput struct {
	// MoveX and MoveY are in [-1, 1]; the diagonal is normalised.
	MoveX float64
	MoveY float64
	// Focus slows the player for precise dodging.
	Focus bool
	// Fire is true while the fire key is held.
	Fire bool
}
