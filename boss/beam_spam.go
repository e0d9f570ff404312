package boss

import "github.com/jakecoffman/cp"

// updateBeamSpam wanders the arena firing random fading beams, with an
// occasional two-beam volley bracketing the player.
func (b *Boss) updateBeamSpam(player cp.Vector) {
	t := b.tuning.BeamSpam
	b.phaseTimer++

	b.pos = b.pos.Add(cp.ForAngle(b.wanderAngle).Mult(t.WanderSpeed))
	b.clamp()

	if b.phaseTimer%t.RerollFrames == 0 {
		b.wanderAngle = b.randomAngle()
	}

	if b.phaseTimer%t.BurstFrames == 0 {
		n := t.BurstMin + b.rng.Intn(t.BurstMax-t.BurstMin+1)
		for i := 0; i < n; i++ {
			b.fireBeam(b.randomAngle())
		}
	}

	// The volley counter is never reset, so volleys drift against the phase
	// clock from one cycle to the next.
	b.volleyCounter++
	if b.volleyCounter%t.VolleyFrames == 0 && b.phaseTimer < t.Duration-t.VolleyCutoff {
		bearing := b.bearingTo(player)
		b.fireBeam(bearing - t.VolleySpread)
		b.fireBeam(bearing + t.VolleySpread)
	}

	if b.phaseTimer >= t.Duration {
		b.enterPhase(PhaseBeamSpin, "beam spam complete")
	}
}
