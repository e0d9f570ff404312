package boss

import (
	"io"
	"log"
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/bullethell/render"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func newTestBoss(x, y float64, w, h int, opts ...Option) *Boss {
	base := []Option{WithLogger(log.New(io.Discard, "", 0)), WithRand(testRNG())}
	return New(x, y, w, h, append(base, opts...)...)
}

func step(b *Boss, n int, player cp.Vector) {
	for i := 0; i < n; i++ {
		b.Update(player.X, player.Y)
	}
}

func inMargins(b *Boss) bool {
	box := b.margins()
	return b.pos.X >= box.L && b.pos.X <= box.R && b.pos.Y >= box.B && b.pos.Y <= box.T
}

func TestApplyDamage(t *testing.T) {
	cases := []struct {
		name     string
		shield   bool
		amount   int
		applied  bool
		expected int
	}{
		{"unshielded", false, 10, true, 240},
		{"shielded_blocks_all", true, 10, false, 250},
		{"zero", false, 0, false, 250},
		{"overkill_clamps", false, 1000, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newTestBoss(640, 360, 1280, 720)
			b.shield = c.shield
			assert.Equal(t, c.applied, b.ApplyDamage(c.amount))
			assert.Equal(t, c.expected, b.Health())
			assert.Equal(t, 250, b.MaxHealth())
			assert.Equal(t, c.expected <= 0, b.IsDead())
		})
	}
}

func TestApplyDamageNeverRaisesHealth(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	require.True(t, b.ApplyDamage(250))
	assert.False(t, b.ApplyDamage(5))
	assert.False(t, b.ApplyDamage(-5))
	assert.Equal(t, 0, b.Health())
}

func TestBeamSpamJumpsDirectlyToBeamSpin(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	player := cp.Vector{X: 200, Y: 600}

	step(b, 179, player)
	require.Equal(t, PhaseBeamSpam, b.Phase())

	step(b, 1, player)
	assert.Equal(t, PhaseBeamSpin, b.Phase())
	assert.False(t, b.TransitionPending())
	assert.Equal(t, 0, b.phaseTimer)
}

func TestBeamSpinHomesAndSpawnsFan(t *testing.T) {
	b := newTestBoss(400, 300, 1280, 720)
	b.enterPhase(PhaseBeamSpin, "test")
	b.DrainCues()
	player := cp.Vector{X: 100, Y: 100}

	step(b, 99, player)
	require.Empty(t, b.rotating)
	assert.Equal(t, cp.Vector{X: 640, Y: 360}, b.Position())
	assert.True(t, b.ShieldActive())

	step(b, 1, player)
	require.Len(t, b.rotating, 6)
	for i, rb := range b.rotating {
		assert.InDelta(t, float64(i)*math.Pi/3, rb.BaseAngle, 1e-9)
		assert.Equal(t, b.Position(), rb.Center)
	}
	assert.Equal(t, b.tuning.BeamSpin.CueFrames-1, b.beamCueTimer)

	kinds := map[CueKind]bool{}
	for _, c := range b.DrainCues() {
		kinds[c.Kind] = true
	}
	assert.True(t, kinds[CueBeamsSpawned])
}

func TestBeamSpinArmsDelayedTransition(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	b.enterPhase(PhaseBeamSpin, "test")
	player := cp.Vector{X: 100, Y: 100}

	step(b, 399, player)
	require.False(t, b.TransitionPending())
	require.Len(t, b.rotating, 6)

	step(b, 1, player)
	require.True(t, b.TransitionPending())
	assert.Empty(t, b.rotating)
	assert.False(t, b.ShieldActive())

	step(b, 59, player)
	assert.Equal(t, PhaseBeamSpin, b.Phase())

	step(b, 1, player)
	assert.Equal(t, PhaseDash, b.Phase())
	assert.False(t, b.TransitionPending())
}

func TestSpiralRingSizeGrows(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	b.enterPhase(PhaseSpiral, "test")
	player := cp.Vector{X: 100, Y: 100}

	for frame := 1; frame <= 180; frame++ {
		b.Update(player.X, player.Y)
		got := len(b.DrainProjectiles())
		if frame%8 == 0 {
			assert.Equal(t, 8+frame/30, got, "frame %d", frame)
		} else {
			assert.Zero(t, got, "frame %d", frame)
		}
	}
	assert.InDelta(t, 22*0.2, b.spiralAngle, 1e-9)
	require.True(t, b.TransitionPending())

	step(b, 60, player)
	assert.Equal(t, PhaseBeamSpam, b.Phase())
}

func TestPhaseCycleOrder(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	player := cp.Vector{X: 200, Y: 600}

	seen := map[Phase]bool{PhaseBeamSpam: true}
	changes := 0
	prev := b.Phase()
	for i := 0; i < 5000; i++ {
		b.Update(player.X, player.Y)
		require.True(t, inMargins(b), "frame %d pos %v", i, b.Position())
		if b.Phase() != prev {
			require.Equal(t, prev.Next(), b.Phase(), "frame %d", i)
			prev = b.Phase()
			seen[prev] = true
			changes++
		}
	}
	assert.GreaterOrEqual(t, changes, 4)
	assert.Len(t, seen, 4)
}

func TestPositionStaysInMargins(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New(-300, 5000, 1280, 720, WithLogger(log.New(io.Discard, "", 0)), WithRand(testRNG()))

	b.Update(0, 0)
	require.True(t, inMargins(b))

	for i := 0; i < 3000; i++ {
		if i == 1500 {
			b.Resize(640, 480)
		}
		b.Update(rng.Float64()*1280, rng.Float64()*720)
		require.True(t, inMargins(b), "frame %d pos %v", i, b.Position())
	}
}

func TestDashBounceDecaysSpeed(t *testing.T) {
	b := newTestBoss(100, 100, 200, 200)
	b.health.Current = 40
	b.enterPhase(PhaseDash, "test")
	player := cp.Vector{X: 1000, Y: 100}

	bounces := 0
	retired := 0
	for i := 0; i < 200 && b.Phase() == PhaseDash; i++ {
		remaining := b.DashesRemaining()
		b.Update(player.X, player.Y)
		if b.Phase() != PhaseDash || b.wallHitTimer != b.tuning.Dash.WallFlashFrames-1 {
			continue
		}
		bounces++
		n := b.dash.bounces
		assert.InDelta(t, 16*math.Pow(0.85, float64(n)), b.dash.speed, 1e-9)
		if n == 3 {
			assert.Equal(t, remaining-1, b.DashesRemaining())
			retired++
		} else {
			assert.Equal(t, remaining, b.DashesRemaining())
		}
	}
	assert.GreaterOrEqual(t, bounces, 3)
	assert.GreaterOrEqual(t, retired, 1)
}

func TestDashForceEndsAtMaxFrames(t *testing.T) {
	b := newTestBoss(50000, 50000, 100000, 100000)
	b.enterPhase(PhaseDash, "test")
	b.DrainCues()
	player := cp.Vector{X: 51000, Y: 50000}

	frames := 0
	for b.Phase() == PhaseDash && frames < 1000 {
		b.Update(player.X, player.Y)
		frames++
	}

	plan, ok := b.Plan()
	require.True(t, ok)
	assert.Equal(t, DashPlan{Count: 2, AllowedBounces: 1, MaxFrames: 80}, plan)
	assert.Equal(t, b.tuning.Dash.HighlightFrames+plan.MaxFrames, frames)
	assert.Equal(t, PhaseSpiral, b.Phase())
	assert.Equal(t, b.tuning.Dash.FinishFrames, b.finishTimer)
	assert.Zero(t, b.DashesRemaining())

	var kinds []CueKind
	for _, c := range b.DrainCues() {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []CueKind{CueDashFinish, CuePhaseChange}, kinds)
}

func TestDashWithoutQueueTimesOutToBeamSpam(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Dash.PlanWindow = 0
	b := newTestBoss(640, 360, 1280, 720, WithTuning(tuning))
	b.enterPhase(PhaseDash, "test")
	player := cp.Vector{X: 100, Y: 100}

	step(b, 299, player)
	require.Equal(t, PhaseDash, b.Phase())
	require.Empty(t, b.DrainProjectiles())

	step(b, 1, player)
	assert.Equal(t, PhaseBeamSpam, b.Phase())
	assert.Len(t, b.DrainProjectiles(), tuning.Dash.FinishShots)
	assert.Len(t, b.beams, tuning.Dash.FinishBeams)
}

func TestBodyContainsIsSquare(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 640, 360, true},
		{"corner_outside_circle", 675, 395, true},
		{"edge_excluded", 680, 360, false},
		{"just_inside", 679, 399, true},
		{"outside", 700, 360, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, b.BodyContains(c.x, c.y))
			assert.Equal(t, c.want, b.CollidesWith(c.x, c.y))
		})
	}
}

type stubHazard struct {
	hit     bool
	explode bool
}

func (h *stubHazard) Update()               {}
func (h *stubHazard) Finished() bool        { return false }
func (h *stubHazard) Draw(_ render.Surface) {}

func (h *stubHazard) CheckCollision(cp.Vector) bool {
	if h.explode {
		panic("broken hazard")
	}
	return h.hit
}

func TestCollidesWithIgnoresPanickingHazard(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	b.beams = append(b.beams, &stubHazard{explode: true})

	assert.NotPanics(t, func() {
		assert.False(t, b.CollidesWith(100, 100))
	})

	b.beams = append(b.beams, &stubHazard{hit: true})
	assert.True(t, b.CollidesWith(100, 100))
}

func TestSpinRateScalesWithHealth(t *testing.T) {
	cases := []struct {
		health int
		want   float64
	}{
		{250, 0.002},
		{166, 0.002},
		{165, 0.004},
		{83, 0.004},
		{82, 0.006},
		{1, 0.006},
	}
	for _, c := range cases {
		b := newTestBoss(640, 360, 1280, 720)
		b.health.Current = c.health
		assert.Equal(t, c.want, b.spinRate(), "health %d", c.health)
	}
}

func TestSetTuningKeepsMaxHealth(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	tuning := DefaultTuning()
	tuning.MaxHealth = 999
	tuning.Spiral.Speed = 7
	require.NoError(t, b.SetTuning(tuning))
	assert.Equal(t, 250, b.Tuning().MaxHealth)
	assert.Equal(t, 7.0, b.Tuning().Spiral.Speed)

	tuning.Spiral.EmitFrames = 0
	assert.ErrorIs(t, b.SetTuning(tuning), ErrInvalidTuning)
	assert.Equal(t, 8, b.Tuning().Spiral.EmitFrames)
}

func TestWithTuningRejectsInvalid(t *testing.T) {
	tuning := DefaultTuning()
	tuning.BeamSpam.BurstMax = 1
	b := newTestBoss(640, 360, 1280, 720, WithTuning(tuning))
	assert.Equal(t, DefaultTuning(), b.Tuning())
}

func TestDrainProjectilesTransfersOwnership(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	b.fireRing(4, 0, 4)
	require.Len(t, b.DrainProjectiles(), 4)
	assert.Nil(t, b.DrainProjectiles())
}

func TestDrawEmitsBodyAndSpikes(t *testing.T) {
	b := newTestBoss(640, 360, 1280, 720)
	rec := &render.Recorder{}
	b.Draw(rec)
	assert.Equal(t, spikeCount, rec.Count(render.OpFillPolygon))
	assert.Equal(t, spikeCount, rec.Count(render.OpStrokePolygon))
	assert.Equal(t, 1, rec.Count(render.OpFillCircle))

	rec.Reset()
	b.shield = true
	b.Draw(rec)
	assert.Equal(t, 2, rec.Count(render.OpFillCircle))
	assert.Equal(t, 2, rec.Count(render.OpStrokeCircle))
}
