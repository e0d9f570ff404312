package boss

// Phase is one of the four top-level attack behaviours.
type Phase int

const (
	PhaseBeamSpam Phase = iota
	PhaseBeamSpin
	PhaseDash
	PhaseSpiral

	phaseCount
)

// Next returns the cyclic successor: BeamSpam, BeamSpin, Dash, Spiral, BeamSpam...
func (p Phase) Next() Phase {
	return (p + 1) % phaseCount
}

func (p Phase) String() string {
	switch p {
	case PhaseBeamSpam:
		return "BeamSpam"
	case PhaseBeamSpin:
		return "BeamSpin"
	case PhaseDash:
		return "Dash"
	case PhaseSpiral:
		return "Spiral"
	default:
		return "Unknown"
	}
}

// transition is a phase change that has been requested but not yet committed.
// At most one is pending at a time.
type transition struct {
	to      Phase
	elapsed int
}
