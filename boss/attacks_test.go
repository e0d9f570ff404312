package boss

import (
	"io"
	"log"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/bullethell/obj"
)

// scriptedRand replays fixed values, then falls back to the defaults.
type scriptedRand struct {
	floats []float64
	ints   []int

	floatDefault float64
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.floatDefault
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func newScriptedBoss(x, y float64, w, h int, r *scriptedRand) *Boss {
	return New(x, y, w, h, WithLogger(log.New(io.Discard, "", 0)), WithRand(r))
}

// updateCollect runs one frame and returns the fading beams it added.
func updateCollect(b *Boss, player cp.Vector) []*obj.Beam {
	seen := make(map[Hazard]bool, len(b.beams))
	for _, h := range b.beams {
		seen[h] = true
	}
	b.Update(player.X, player.Y)
	var fired []*obj.Beam
	for _, h := range b.beams {
		if !seen[h] {
			fired = append(fired, h.(*obj.Beam))
		}
	}
	return fired
}

func direction(p *obj.EnemyProjectile) cp.Vector {
	return p.Vel.Normalize()
}

func TestBeamSpamBurstsAndVolleys(t *testing.T) {
	r := &scriptedRand{ints: []int{0, 1, 2, 0, 1, 2, 0}, floatDefault: 0.25}
	b := newScriptedBoss(640, 360, 1280, 720, r)
	// Volleys land on phase frames 70 and 160; the second is past the cutoff.
	b.volleyCounter = 20
	player := cp.Vector{X: 640, Y: 650}

	fired := map[int]int{}
	var volley []*obj.Beam
	var volleyPos cp.Vector
	for frame := 1; frame < 180; frame++ {
		beams := updateCollect(b, player)
		require.Equal(t, PhaseBeamSpam, b.Phase())
		if len(beams) > 0 {
			fired[frame] = len(beams)
		}
		if frame == 70 {
			volley = beams
			volleyPos = b.Position()
		}
	}

	assert.Equal(t, map[int]int{
		25: 2, 50: 3, 70: 2, 75: 4, 100: 2, 125: 3, 150: 4, 175: 2,
	}, fired)

	require.Len(t, volley, 2)
	bearing := math.Atan2(player.Y-volleyPos.Y, player.X-volleyPos.X)
	assert.InDelta(t, bearing-0.6, volley[0].Angle, 1e-9)
	assert.InDelta(t, bearing+0.6, volley[1].Angle, 1e-9)
	assert.Equal(t, volleyPos, volley[0].Origin)
}

func TestBeamSpinRingsAndExtraBeams(t *testing.T) {
	r := &scriptedRand{floatDefault: 0.5}
	b := newScriptedBoss(640, 360, 1280, 720, r)
	b.enterPhase(PhaseBeamSpin, "test")
	player := cp.Vector{X: 100, Y: 100}

	rings := 0
	for frame := 1; frame < 400; frame++ {
		beams := updateCollect(b, player)
		shots := b.DrainProjectiles()

		wantExtra := frame > 100 && frame%50 == 0
		if wantExtra {
			assert.Len(t, beams, 2, "frame %d", frame)
		} else {
			assert.Empty(t, beams, "frame %d", frame)
		}

		if frame <= 100 || frame%30 != 0 {
			assert.Empty(t, shots, "frame %d", frame)
			continue
		}
		rings++
		require.Len(t, shots, 6, "frame %d", frame)
		for i, s := range shots {
			want := cp.ForAngle(b.spinOffset + float64(i)*math.Pi/3)
			got := direction(s)
			assert.InDelta(t, want.X, got.X, 1e-9)
			assert.InDelta(t, want.Y, got.Y, 1e-9)
			assert.InDelta(t, 4.0, s.Vel.Length(), 1e-9)
		}
	}
	assert.Equal(t, 10, rings)
	assert.InDelta(t, 299*0.002, b.spinOffset, 1e-9)
}

func TestDashFireChoice(t *testing.T) {
	cases := []struct {
		name   string
		floats []float64
		beams  int
		shots  []float64
	}{
		{"beam", []float64{0.69, 0.39, 0.5}, 1, nil},
		{"spread", []float64{0.69, 0.4}, 0, []float64{-0.3, 0, 0.3}},
		{"hold_fire", []float64{0.7}, 0, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &scriptedRand{floats: c.floats, floatDefault: 0.99}
			b := newScriptedBoss(50000, 50000, 100000, 100000, r)
			b.enterPhase(PhaseDash, "test")
			player := cp.Vector{X: 60000, Y: 50000}

			// 30 highlight frames, then 19 dash ticks with no fire roll.
			step(b, 49, player)
			require.Empty(t, b.DrainProjectiles())
			require.Empty(t, b.beams)

			beams := updateCollect(b, player)
			require.Equal(t, 20, b.dash.timer)
			assert.Len(t, beams, c.beams)
			if c.beams > 0 {
				assert.InDelta(t, math.Pi, beams[0].Angle, 1e-9)
			}

			shots := b.DrainProjectiles()
			require.Len(t, shots, len(c.shots))
			for i, s := range shots {
				want := cp.ForAngle(c.shots[i])
				got := direction(s)
				assert.InDelta(t, want.X, got.X, 1e-9)
				assert.InDelta(t, want.Y, got.Y, 1e-9)
				assert.InDelta(t, 5.0, s.Vel.Length(), 1e-9)
				assert.Equal(t, shotDamage, s.Damage)
			}
		})
	}
}

func TestBounceReflection(t *testing.T) {
	cases := []struct {
		name      string
		pos       cp.Vector
		angle     float64
		wantAngle float64
		wantWall  cp.Vector
	}{
		{"left_wall", cp.Vector{X: 50, Y: 360}, math.Pi - 0.3, 0.3, cp.Vector{X: 60, Y: 360}},
		{"right_wall", cp.Vector{X: 1230, Y: 360}, 0.3, math.Pi - 0.3, cp.Vector{X: 1220, Y: 360}},
		{"top_wall", cp.Vector{X: 640, Y: 50}, -0.5, 0.5, cp.Vector{X: 640, Y: 60}},
		{"bottom_wall", cp.Vector{X: 640, Y: 670}, 0.5, -0.5, cp.Vector{X: 640, Y: 660}},
		{"corner_counts_once", cp.Vector{X: 50, Y: 50}, -2.5, -(math.Pi + 2.5), cp.Vector{X: 60, Y: 60}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newScriptedBoss(640, 360, 1280, 720, &scriptedRand{floatDefault: 0.5})
			b.pos = c.pos
			b.dash.angle = c.angle
			b.dash.speed = 16

			require.True(t, b.bounce())
			assert.InDelta(t, c.wantAngle, b.dash.angle, 1e-9)
			assert.Equal(t, 1, b.dash.bounces)
			assert.InDelta(t, 16*0.85, b.dash.speed, 1e-9)

			nudged := c.wantWall.Add(cp.ForAngle(c.wantAngle).Mult(8))
			assert.InDelta(t, nudged.X, b.pos.X, 1e-9)
			assert.InDelta(t, nudged.Y, b.pos.Y, 1e-9)
			assert.Equal(t, b.pos, b.wallHitPos)
			assert.Equal(t, 12, b.wallHitTimer)

			sparks := b.DrainProjectiles()
			require.Len(t, sparks, 6)
			for _, s := range sparks {
				assert.Zero(t, s.Damage)
			}
			cues := b.DrainCues()
			require.Len(t, cues, 1)
			assert.Equal(t, CueWallHit, cues[0].Kind)
		})
	}

	t.Run("inside_margins", func(t *testing.T) {
		b := newScriptedBoss(640, 360, 1280, 720, &scriptedRand{})
		b.dash.angle = 1
		b.dash.speed = 16
		assert.False(t, b.bounce())
		assert.Equal(t, 1.0, b.dash.angle)
		assert.Zero(t, b.dash.bounces)
	})
}

func TestDashBounceQuotaEndsInSpiral(t *testing.T) {
	b := newScriptedBoss(640, 360, 1280, 720, &scriptedRand{floatDefault: 0.5})
	b.enterPhase(PhaseDash, "test")
	b.DrainCues()

	b.pos = cp.Vector{X: 1210, Y: 360}
	b.dash.plan = &DashPlan{Count: 1, AllowedBounces: 1, MaxFrames: 1000}
	b.dash.queue = []int{0}
	b.highlightTimer = b.tuning.Dash.HighlightFrames

	beams := updateCollect(b, cp.Vector{X: 2000, Y: 360})

	assert.Equal(t, PhaseSpiral, b.Phase())
	assert.Zero(t, b.DashesRemaining())
	assert.Len(t, beams, 6)
	assert.Equal(t, 20, b.finishTimer)

	var shots, sparks int
	for _, p := range b.DrainProjectiles() {
		if p.Damage > 0 {
			shots++
			assert.InDelta(t, 4.0, p.Vel.Length(), 1e-9)
		} else {
			sparks++
		}
	}
	assert.Equal(t, 8, shots)
	assert.Equal(t, 6, sparks)

	var kinds []CueKind
	for _, c := range b.DrainCues() {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []CueKind{CueWallHit, CueDashFinish, CuePhaseChange}, kinds)
}

func TestValidateRejectsUnsafeFloats(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Tuning)
	}{
		{"negative_snap_radius", func(tn *Tuning) { tn.BeamSpin.SnapRadius = -1 }},
		{"zero_homing_speed", func(tn *Tuning) { tn.BeamSpin.HomingSpeed = 0 }},
		{"zero_dash_speed", func(tn *Tuning) { tn.Dash.Speed = 0 }},
		{"zero_decay", func(tn *Tuning) { tn.Dash.Decay = 0 }},
		{"decay_above_one", func(tn *Tuning) { tn.Dash.Decay = 1.2 }},
		{"nan_idle_spin", func(tn *Tuning) { tn.IdleSpin = math.NaN() }},
		{"inf_low_rate", func(tn *Tuning) { tn.BeamSpin.LowRate = math.Inf(1) }},
		{"nan_decay", func(tn *Tuning) { tn.Dash.Decay = math.NaN() }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning := DefaultTuning()
			c.mod(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidTuning)

			b := newTestBoss(640, 360, 1280, 720)
			assert.ErrorIs(t, b.SetTuning(tuning), ErrInvalidTuning)
			assert.Equal(t, DefaultTuning(), b.Tuning())
		})
	}
	assert.NoError(t, DefaultTuning().Validate())
}

func TestHomingAtCentreStaysFinite(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	// Bypasses Validate so the boss is already on the target when homing.
	b.tuning.BeamSpin.SnapRadius = -1
	b.enterPhase(PhaseBeamSpin, "test")

	step(b, 5, cp.Vector{X: 100, Y: 100})
	assert.Equal(t, cp.Vector{X: 640, Y: 360}, b.Position())
	assert.True(t, b.ShieldActive())
	assert.True(t, inMargins(b))
}
