// Package boss runs the purple boss: a four-phase attack cycle with a nested
// dash sequence, driven once per fixed 60 Hz frame.
package boss

import (
	"image/color"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/common"
	"github.com/milk9111/bullethell/component"
	"github.com/milk9111/bullethell/obj"
	"github.com/milk9111/bullethell/render"
)

const (
	shotSize   = 6
	shotDamage = 1
	sparkSize  = 3
)

var (
	shotColor  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	sparkColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// Hazard is the contract fading beams fulfil.
type Hazard interface {
	Update()
	Finished() bool
	CheckCollision(p cp.Vector) bool
	Draw(s render.Surface)
}

// Boss owns its position, health, shield and all attack sub-state. Only
// Update mutates it; drawing and collision queries are read-only.
type Boss struct {
	pos              cp.Vector
	screenW, screenH int

	health *component.Health
	tuning Tuning
	rng    Rand
	logger *log.Logger

	phase      Phase
	phaseTimer int
	pending    *transition

	shield      bool
	shieldTimer int
	rotation    float64

	beams    []Hazard
	rotating []*obj.RotatingBeam
	outbound []*obj.EnemyProjectile
	cues     []Cue

	wanderAngle   float64
	volleyCounter int
	spinOffset    float64
	spiralAngle   float64

	dash  dashState
	trail Trail

	highlightTimer int
	wallHitTimer   int
	wallHitPos     cp.Vector
	finishTimer    int
	beamCueTimer   int
}

type Option func(*Boss)

// WithRand replaces the time-seeded number source.
func WithRand(r Rand) Option {
	return func(b *Boss) {
		if r != nil {
			b.rng = r
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(b *Boss) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithTuning replaces DefaultTuning. Invalid tuning is logged and ignored.
func WithTuning(t Tuning) Option {
	return func(b *Boss) {
		if err := t.Validate(); err != nil {
			b.logger.Printf("boss: %v, keeping defaults", err)
			return
		}
		b.tuning = t
	}
}

// New creates a boss at (x, y) on a screen of the given size, starting in
// BeamSpam with full health.
func New(x, y float64, screenW, screenH int, opts ...Option) *Boss {
	b := &Boss{
		pos:     cp.Vector{X: x, Y: y},
		screenW: screenW,
		screenH: screenH,
		tuning:  DefaultTuning(),
		logger:  log.Default(),
		phase:   PhaseBeamSpam,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = NewRand(0)
	}
	b.health = component.NewHealth(b.tuning.MaxHealth)
	return b
}

// SetTuning swaps the numbers mid-fight. MaxHealth is fixed at construction.
func (b *Boss) SetTuning(t Tuning) error {
	t.MaxHealth = b.health.Max
	if err := t.Validate(); err != nil {
		return err
	}
	b.tuning = t
	return nil
}

func (b *Boss) Tuning() Tuning { return b.tuning }

// Resize updates the boundary clamps and the rotating beams' lengths.
func (b *Boss) Resize(w, h int) {
	b.screenW = w
	b.screenH = h
	for _, rb := range b.rotating {
		rb.SetScreenSize(w, h)
	}
}

// Update advances the boss by one frame.
func (b *Boss) Update(playerX, playerY float64) {
	player := cp.Vector{X: playerX, Y: playerY}

	if b.shield {
		b.shieldTimer++
	}
	b.rotation = common.WrapAngle(b.rotation + b.tuning.IdleSpin)
	b.clamp()

	if b.finishTimer > 0 {
		b.finishTimer--
	}

	switch {
	case b.phase == PhaseDash:
		// Dash runs its own exits; nothing may be pending while it is active.
		b.pending = nil
		b.updateDash(player)
	case b.pending != nil:
		b.advanceTransition()
	case b.phase == PhaseBeamSpam:
		b.updateBeamSpam(player)
	case b.phase == PhaseBeamSpin:
		b.updateBeamSpin()
	case b.phase == PhaseSpiral:
		b.updateSpiral()
	}

	b.updateBeams()

	if b.beamCueTimer > 0 {
		b.beamCueTimer--
	}
	if b.wallHitTimer > 0 {
		b.wallHitTimer--
	}
	b.clamp()
}

func (b *Boss) updateBeams() {
	kept := b.beams[:0]
	for _, beam := range b.beams {
		beam.Update()
		if beam.Finished() {
			continue
		}
		kept = append(kept, beam)
	}
	for i := len(kept); i < len(b.beams); i++ {
		b.beams[i] = nil
	}
	b.beams = kept
}

// armTransition requests the delayed path to the next phase.
func (b *Boss) armTransition(reason string) {
	if b.pending != nil {
		return
	}
	b.pending = &transition{to: b.phase.Next()}
	b.logger.Printf("boss: %s complete (%s), %s in %d frames", b.phase, reason, b.pending.to, b.tuning.TransitionFrames)
}

// advanceTransition ticks a pending transition and commits it once the delay
// has fully elapsed. The frame that armed it does not count.
func (b *Boss) advanceTransition() {
	b.pending.elapsed++
	if b.pending.elapsed >= b.tuning.TransitionFrames {
		b.enterPhase(b.pending.to, "transition delay elapsed")
	}
}

// enterPhase is the single place phases change. It clears per-phase effect
// state and runs the entry action of next.
func (b *Boss) enterPhase(next Phase, reason string) {
	prev := b.phase
	timer := b.phaseTimer

	b.phase = next
	b.phaseTimer = 0
	b.pending = nil
	b.shield = false
	b.shieldTimer = 0
	b.highlightTimer = 0
	b.trail.Clear()
	b.rotating = nil

	switch next {
	case PhaseBeamSpam:
		b.wanderAngle = 0
	case PhaseBeamSpin:
		b.spinOffset = 0
	case PhaseDash:
		b.dash = dashState{}
	case PhaseSpiral:
		b.spiralAngle = 0
	}

	b.logger.Printf("boss: phase %s -> %s (timer=%d, reason=%s)", prev, next, timer, reason)
	b.cue(CuePhaseChange)
}

// margins is the box the boss centre must stay in. B is the top edge in
// screen space (smaller y) and T the bottom edge.
func (b *Boss) margins() cp.BB {
	m := b.tuning.Margin
	return cp.BB{L: m, B: m, R: float64(b.screenW) - m, T: float64(b.screenH) - m}
}

func (b *Boss) clamp() {
	box := b.margins()
	b.pos.X = math.Max(box.L, math.Min(box.R, b.pos.X))
	b.pos.Y = math.Max(box.B, math.Min(box.T, b.pos.Y))
}

func (b *Boss) bearingTo(p cp.Vector) float64 {
	return math.Atan2(p.Y-b.pos.Y, p.X-b.pos.X)
}

func (b *Boss) fireBeam(angle float64) {
	beam := obj.NewBeam(b.pos.X, b.pos.Y, b.screenW, b.screenH, angle)
	beam.SetRemoveAfterFade(true)
	b.beams = append(b.beams, beam)
}

func (b *Boss) fireShot(angle, speed float64) {
	b.outbound = append(b.outbound, obj.NewEnemyProjectile(b.pos.X, b.pos.Y, angle, speed, shotSize, shotColor, shotDamage))
}

// fireSpark emits a harmless wall-hit particle.
func (b *Boss) fireSpark(angle, speed float64) {
	b.outbound = append(b.outbound, obj.NewEnemyProjectile(b.pos.X, b.pos.Y, angle, speed, sparkSize, sparkColor, 0))
}

// fireRing emits n projectiles evenly spaced around base.
func (b *Boss) fireRing(n int, base, speed float64) {
	for i := 0; i < n; i++ {
		b.fireShot(base+float64(i)*2*math.Pi/float64(n), speed)
	}
}

// DrainProjectiles hands the projectiles spawned since the last call to the
// caller; the boss keeps no reference to them.
func (b *Boss) DrainProjectiles() []*obj.EnemyProjectile {
	if len(b.outbound) == 0 {
		return nil
	}
	out := b.outbound
	b.outbound = nil
	return out
}

// ApplyDamage subtracts amount from health unless the shield is up. The
// shield blocks everything. Returns true if health changed.
func (b *Boss) ApplyDamage(amount int) bool {
	if b.shield {
		return false
	}
	return b.health.ApplyDamage(amount, component.CombatEvent{
		Attacker: component.FactionPlayer,
		Target:   component.FactionEnemy,
		PosX:     b.pos.X,
		PosY:     b.pos.Y,
	})
}

func (b *Boss) IsDead() bool   { return b.health.Current <= 0 }
func (b *Boss) Health() int    { return b.health.Current }
func (b *Boss) MaxHealth() int { return b.health.Max }

// HealthFraction is Health/MaxHealth in [0, 1], for health bars.
func (b *Boss) HealthFraction() float64 { return b.health.Fraction() }

func (b *Boss) Phase() Phase            { return b.phase }
func (b *Boss) Position() cp.Vector     { return b.pos }
func (b *Boss) ShieldActive() bool      { return b.shield }
func (b *Boss) TransitionPending() bool { return b.pending != nil }

// BodyContains tests the square body box only (per-axis, not a circle).
func (b *Boss) BodyContains(x, y float64) bool {
	r := b.tuning.BodyHalfExtent
	return math.Abs(b.pos.X-x) < r && math.Abs(b.pos.Y-y) < r
}

// CollidesWith reports contact with the body, any rotating beam or any
// fading beam.
func (b *Boss) CollidesWith(x, y float64) bool {
	if b.BodyContains(x, y) {
		return true
	}
	p := cp.Vector{X: x, Y: y}
	for _, rb := range b.rotating {
		if rb.CheckCollision(p) {
			return true
		}
	}
	for _, beam := range b.beams {
		if hazardHit(beam, p) {
			return true
		}
	}
	return false
}

// hazardHit isolates one collaborator: a panic in its check counts as a miss.
func hazardHit(h Hazard, p cp.Vector) (hit bool) {
	defer func() {
		if r := recover(); r != nil {
			hit = false
		}
	}()
	return h.CheckCollision(p)
}
