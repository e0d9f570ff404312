package boss

import "github.com/jakecoffman/cp"

// CueKind names a moment the surrounding game may want to play a sound or
// shake the camera for.
type CueKind int

const (
	CuePhaseChange CueKind = iota
	CueBeamsSpawned
	CueWallHit
	CueDashFinish
)

func (k CueKind) String() string {
	switch k {
	case CuePhaseChange:
		return "phase_change"
	case CueBeamsSpawned:
		return "beams_spawned"
	case CueWallHit:
		return "wall_hit"
	case CueDashFinish:
		return "dash_finish"
	default:
		return "unknown"
	}
}

// Cue is emitted during Update and drained by the caller.
type Cue struct {
	Kind  CueKind
	Pos   cp.Vector
	Phase Phase
}

func (b *Boss) cue(kind CueKind) {
	b.cues = append(b.cues, Cue{Kind: kind, Pos: b.pos, Phase: b.phase})
}

// DrainCues returns all cues emitted since the last call and clears them.
func (b *Boss) DrainCues() []Cue {
	if len(b.cues) == 0 {
		return nil
	}
	out := b.cues
	b.cues = nil
	return out
}
