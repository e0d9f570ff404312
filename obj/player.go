package obj

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/component"
	"github.com/milk9111/bullethell/render"
)

// PlayerConfig is everything player.yaml can tune.
type PlayerConfig struct {
	Speed        float64
	FocusSpeed   float64
	Radius       float64
	Health       int
	IFrames      int
	FireCooldown int
	ShotSpeed    float64
	ShotRadius   float64
	ShotDamage   int
	Color        color.RGBA
	HitColor     color.RGBA
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Speed:        5,
		FocusSpeed:   2.5,
		Radius:       8,
		Health:       5,
		IFrames:      60,
		FireCooldown: 8,
		ShotSpeed:    12,
		ShotRadius:   4,
		ShotDamage:   5,
		Color:        color.RGBA{R: 80, G: 220, B: 255, A: 255},
		HitColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Player is the ship the boss aims at. It moves freely inside the screen and
// fires straight up while Fire is held.
type Player struct {
	Pos    cp.Vector
	Health *component.Health

	cfg      PlayerConfig
	cooldown int
	flash    int
}

func NewPlayer(x, y float64, cfg PlayerConfig) *Player {
	return &Player{
		Pos:    cp.Vector{X: x, Y: y},
		Health: component.NewHealth(cfg.Health),
		cfg:    cfg,
	}
}

// Apply swaps tuning in place. Current health is kept; max health only
// changes on restart.
func (p *Player) Apply(cfg PlayerConfig) {
	cfg.Health = p.cfg.Health
	p.cfg = cfg
}

func (p *Player) Config() PlayerConfig { return p.cfg }

func (p *Player) Radius() float64 { return p.cfg.Radius }

func (p *Player) Alive() bool { return p.Health.IsAlive() }

// Update moves the player inside a w x h screen and reports whether a shot
// should be spawned this frame.
func (p *Player) Update(in PlayerInput, w, h int) bool {
	p.Health.Tick()
	if p.flash > 0 {
		p.flash--
	}
	if p.cooldown > 0 {
		p.cooldown--
	}
	if !p.Alive() {
		return false
	}

	dir := cp.Vector{X: cp.Clamp(in.MoveX, -1, 1), Y: cp.Clamp(in.MoveY, -1, 1)}
	if l := dir.Length(); l > 1 {
		dir = dir.Mult(1 / l)
	}
	speed := p.cfg.Speed
	if in.Focus {
		speed = p.cfg.FocusSpeed
	}
	p.Pos = p.Pos.Add(dir.Mult(speed))

	r := p.cfg.Radius
	p.Pos.X = cp.Clamp(p.Pos.X, r, math.Max(r, float64(w)-r))
	p.Pos.Y = cp.Clamp(p.Pos.Y, r, math.Max(r, float64(h)-r))

	if in.Fire && p.cooldown == 0 {
		p.cooldown = p.cfg.FireCooldown
		return true
	}
	return false
}

// Hit applies damage and starts invulnerability. It returns false while
// invulnerable or already dead.
func (p *Player) Hit(damage, frame int) bool {
	evt := component.CombatEvent{
		Attacker: component.FactionEnemy,
		Target:   component.FactionPlayer,
		Frame:    frame,
		PosX:     p.Pos.X,
		PosY:     p.Pos.Y,
	}
	if !p.Health.ApplyDamage(damage, evt) {
		return false
	}
	p.Health.StartIFrames(p.cfg.IFrames)
	p.flash = p.cfg.IFrames
	return true
}

// ShotVelocity is the velocity of a freshly fired player shot.
func (p *Player) ShotVelocity() cp.Vector {
	return cp.Vector{X: 0, Y: -p.cfg.ShotSpeed}
}

func (p *Player) Draw(s render.Surface) {
	if !p.Alive() {
		return
	}
	// Blink while invulnerable.
	if p.flash > 0 && (p.flash/4)%2 == 0 {
		s.StrokeCircle(p.Pos.X, p.Pos.Y, p.cfg.Radius, 2, p.cfg.HitColor)
		return
	}
	s.FillCircle(p.Pos.X, p.Pos.Y, p.cfg.Radius, p.cfg.Color)
	s.FillCircle(p.Pos.X, p.Pos.Y, p.cfg.Radius/3, p.cfg.HitColor)
}
