package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/obj"
)

// updateBeamSpin homes to the screen centre behind a shield, plants a fan of
// rotating beams and turns them until the phase runs out.
func (b *Boss) updateBeamSpin() {
	t := b.tuning.BeamSpin
	b.phaseTimer++

	switch {
	case b.phaseTimer < t.HomingFrames:
		b.homeToCenter()
	case len(b.rotating) == 0:
		b.spawnFan()
	case b.phaseTimer < t.Duration:
		b.spinOffset += b.spinRate()
		for _, rb := range b.rotating {
			rb.Update(b.pos, b.spinOffset)
			rb.SetScreenSize(b.screenW, b.screenH)
		}
		if b.phaseTimer%t.ExtraBeamFrames == 0 && b.phaseTimer > t.ExtraBeamAfter {
			b.fireBeam(b.randomAngle())
			b.fireBeam(b.randomAngle())
		}
		if b.phaseTimer%t.RingFrames == 0 {
			b.fireRing(t.RingSize, b.spinOffset, t.RingSpeed)
		}
	}

	if b.phaseTimer >= t.Duration {
		b.rotating = nil
		b.shield = false
		b.armTransition("beam spin complete")
	}
}

func (b *Boss) homeToCenter() {
	t := b.tuning.BeamSpin
	target := cp.Vector{X: float64(b.screenW / 2), Y: float64(b.screenH / 2)}
	dist := b.pos.Distance(target)
	if dist > t.SnapRadius && dist > 0 {
		b.pos = b.pos.Add(target.Sub(b.pos).Mult(t.HomingSpeed / dist))
		return
	}
	b.pos = target
	b.shield = true
	b.shieldTimer = 0
}

func (b *Boss) spawnFan() {
	t := b.tuning.BeamSpin
	b.rotating = make([]*obj.RotatingBeam, 0, t.FanCount)
	for i := 0; i < t.FanCount; i++ {
		angle := float64(i) * 2 * math.Pi / float64(t.FanCount)
		b.rotating = append(b.rotating, obj.NewRotatingBeam(b.pos, angle, b.screenW, b.screenH))
	}
	b.spinOffset = 0
	b.beamCueTimer = t.CueFrames
	b.logger.Printf("boss: spawned %d rotating beams at (%.0f,%.0f)", t.FanCount, b.pos.X, b.pos.Y)
	b.cue(CueBeamsSpawned)
}

// spinRate speeds the fan up as the boss loses health.
func (b *Boss) spinRate() float64 {
	t := b.tuning.BeamSpin
	hp, maxHP := b.health.Current, b.health.Max
	switch {
	case hp < maxHP/3:
		return t.LowRate
	case hp < maxHP*2/3:
		return t.MidRate
	default:
		return t.BaseRate
	}
}
