package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/common"
)

const finishShotSpeed = 4

// dashState is the nested dash sequence. plan is nil until the sequence has
// been queued.
type dashState struct {
	plan    *DashPlan
	queue   []int
	timer   int
	angle   float64
	speed   float64
	bounces int
}

// Plan returns the current dash sequence plan, if one has been queued.
func (b *Boss) Plan() (DashPlan, bool) {
	if b.dash.plan == nil {
		return DashPlan{}, false
	}
	return *b.dash.plan, true
}

// DashesRemaining is the number of dash tokens still queued.
func (b *Boss) DashesRemaining() int { return len(b.dash.queue) }

func (b *Boss) updateDash(player cp.Vector) {
	t := b.tuning.Dash
	d := &b.dash
	b.phaseTimer++

	if d.plan == nil && len(d.queue) == 0 && b.phaseTimer < t.PlanWindow {
		plan := NewDashPlan(b.health.Current, b.health.Max)
		d.plan = &plan
		d.queue = make([]int, plan.Count)
		for i := range d.queue {
			d.queue[i] = i
		}
		b.logger.Printf("boss: queued %d dashes (bounces=%d, max_frames=%d)", plan.Count, plan.AllowedBounces, plan.MaxFrames)
	}

	if len(d.queue) > 0 {
		if b.highlightTimer < t.HighlightFrames {
			b.highlightTimer++
			return
		}
		if b.dashTick(player) {
			return
		}
	}

	if len(d.queue) == 0 && b.phaseTimer >= t.Duration {
		b.finishSequence(PhaseBeamSpam, "dash sequence timed out")
	}
}

// dashTick moves the boss one frame along the current dash. It reports
// whether the dash phase has ended.
func (b *Boss) dashTick(player cp.Vector) bool {
	t := b.tuning.Dash
	d := &b.dash

	if d.timer == 0 {
		d.angle = b.bearingTo(player)
		d.speed = t.Speed
		d.bounces = 0
		b.trail.Clear()
	}
	d.timer++
	b.rotation = common.WrapAngle(b.rotation + t.Spin)

	b.trail.Push(b.pos)
	b.pos = b.pos.Add(cp.ForAngle(d.angle).Mult(d.speed))

	if d.timer%t.FireFrames == 0 && b.rng.Float64() < t.FireChance {
		if b.rng.Float64() < t.BeamChance {
			b.fireBeam(b.randomAngle())
		} else {
			for i := -1; i <= 1; i++ {
				b.fireShot(d.angle+float64(i)*t.Spread, t.SpreadSpeed)
			}
		}
	}

	if b.bounce() && d.bounces >= d.plan.AllowedBounces {
		if b.retireToken() {
			return true
		}
	}

	if d.timer >= d.plan.MaxFrames {
		d.queue = d.queue[:0]
		b.finishSequence(PhaseSpiral, "dash hit frame cap")
		return true
	}
	return false
}

// bounce reflects the dash off whichever margins the boss has crossed.
// A corner counts as a single bounce.
func (b *Boss) bounce() bool {
	t := b.tuning.Dash
	d := &b.dash
	box := b.margins()

	bounced := false
	if b.pos.X <= box.L {
		b.pos.X = box.L
		d.angle = math.Pi - d.angle
		bounced = true
	} else if b.pos.X >= box.R {
		b.pos.X = box.R
		d.angle = math.Pi - d.angle
		bounced = true
	}
	if b.pos.Y <= box.B {
		b.pos.Y = box.B
		d.angle = -d.angle
		bounced = true
	} else if b.pos.Y >= box.T {
		b.pos.Y = box.T
		d.angle = -d.angle
		bounced = true
	}
	if !bounced {
		return false
	}

	d.bounces++
	d.speed *= t.Decay
	b.pos = b.pos.Add(cp.ForAngle(d.angle).Mult(t.Nudge))

	b.wallHitTimer = t.WallFlashFrames
	b.wallHitPos = b.pos
	for i := 0; i < t.Sparks; i++ {
		b.fireSpark(b.randomAngle(), float64(2+b.rng.Intn(2)))
	}
	b.cue(CueWallHit)
	return true
}

// retireToken pops the finished dash. The next dash starts already charged;
// an empty queue ends the sequence and the phase.
func (b *Boss) retireToken() bool {
	d := &b.dash
	d.queue = d.queue[1:]
	d.timer = 0
	if len(d.queue) > 0 {
		b.highlightTimer = b.tuning.Dash.HighlightFrames
		return false
	}
	b.finishSequence(PhaseSpiral, "dash bounce quota met")
	return true
}

// finishSequence fires the wrap-up burst and jumps straight to next.
func (b *Boss) finishSequence(next Phase, reason string) {
	t := b.tuning.Dash
	b.clamp()
	b.finishTimer = t.FinishFrames
	for i := 0; i < t.FinishBeams; i++ {
		b.fireBeam(b.randomAngle())
	}
	for i := 0; i < t.FinishShots; i++ {
		b.fireShot(b.randomAngle(), finishShotSpeed)
	}
	b.cue(CueDashFinish)
	b.enterPhase(next, reason)
}
