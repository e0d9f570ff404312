// Package system runs one encounter: the boss, the player, their shots and
// the combat between them, stepped once per frame.
package system

import (
	"log"

	"github.com/milk9111/bullethell/autopilot"
	"github.com/milk9111/bullethell/boss"
	"github.com/milk9111/bullethell/component"
	"github.com/milk9111/bullethell/obj"
	"github.com/milk9111/bullethell/render"
)

type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "running"
	}
}

// World owns the encounter. Step is its only mutator.
type World struct {
	Width  int
	Height int
	Frame  int

	Boss    *boss.Boss
	Player  *obj.Player
	Hazards []*obj.EnemyProjectile
	Shots   *obj.BulletPool

	// Cues holds the boss cues emitted during the last Step.
	Cues []boss.Cue

	cfg     Config
	logger  *log.Logger
	events  component.CombatEventEmitter
	outcome Outcome
}

func NewWorld(cfg Config) *World {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	w := &World{
		Width:  cfg.Width,
		Height: cfg.Height,
		cfg:    cfg,
		logger: cfg.Logger,
		Shots:  obj.NewBulletPool(),
	}
	w.Reset()
	return w
}

// Reset starts the encounter over with the current config.
func (w *World) Reset() {
	bp := bossSpawn(w.cfg)
	opts := []boss.Option{boss.WithLogger(w.logger), boss.WithTuning(w.cfg.Boss)}
	if w.cfg.Seed != 0 {
		opts = append(opts, boss.WithRand(boss.NewRand(w.cfg.Seed)))
	}
	w.Boss = boss.New(bp.X, bp.Y, w.Width, w.Height, opts...)

	pp := playerSpawn(w.cfg)
	w.Player = obj.NewPlayer(pp.X, pp.Y, w.cfg.Player)
	w.Player.Health.OnDeath = func(_ *component.Health, evt component.CombatEvent) {
		w.logger.Printf("system: player destroyed at (%.0f,%.0f) by %d damage, boss in %s", evt.PosX, evt.PosY, evt.Damage, w.Boss.Phase())
	}

	w.Hazards = nil
	w.Shots.Clear()
	w.Cues = nil
	w.Frame = 0
	w.outcome = OutcomeRunning
}

// OnCombat subscribes to every hit, block and death.
func (w *World) OnCombat(h component.CombatEventHandler) {
	w.events.Subscribe(h)
}

func (w *World) Outcome() Outcome { return w.outcome }

// Step advances the encounter by one frame.
func (w *World) Step(in obj.PlayerInput) Outcome {
	if w.outcome != OutcomeRunning {
		return w.outcome
	}
	w.Frame++

	if w.Player.Update(in, w.Width, w.Height) {
		cfg := w.Player.Config()
		w.Shots.Spawn(w.Player.Pos, w.Player.ShotVelocity(), cfg.ShotRadius, cfg.ShotDamage)
	}

	w.Boss.Update(w.Player.Pos.X, w.Player.Pos.Y)
	w.Hazards = append(w.Hazards, w.Boss.DrainProjectiles()...)
	w.Cues = w.Boss.DrainCues()
	w.Hazards = advanceHazards(w.Hazards, w.Width, w.Height)

	w.resolveCombat()

	switch {
	case w.Boss.IsDead():
		w.finish(OutcomeVictory, component.FactionEnemy)
	case !w.Player.Alive():
		w.finish(OutcomeDefeat, component.FactionPlayer)
	}
	return w.outcome
}

func (w *World) finish(o Outcome, loser component.Faction) {
	w.outcome = o
	w.events.Emit(component.CombatEvent{Type: component.EventDeath, Target: loser, Frame: w.Frame})
	w.logger.Printf("system: %s at frame %d (boss %d/%d, player %d)", o, w.Frame, w.Boss.Health(), w.Boss.MaxHealth(), w.Player.Health.Current)
}

// Resize propagates a new screen size to the boss.
func (w *World) Resize(width, height int) {
	if width == w.Width && height == w.Height {
		return
	}
	w.Width, w.Height = width, height
	w.cfg.Width, w.cfg.Height = width, height
	w.Boss.Resize(width, height)
}

// Retune applies new tuning to the running encounter. Health maxima only
// change on Reset.
func (w *World) Retune(cfg Config) error {
	if err := w.Boss.SetTuning(cfg.Boss); err != nil {
		return err
	}
	w.Player.Apply(cfg.Player)
	cfg.Width, cfg.Height, cfg.Logger = w.Width, w.Height, w.logger
	w.cfg = cfg
	return nil
}

// Observation is the autopilot's view of the current frame.
func (w *World) Observation() autopilot.Observation {
	obs := autopilot.Observation{
		Frame:     w.Frame,
		Width:     w.Width,
		Height:    w.Height,
		Player:    w.Player.Pos,
		Boss:      w.Boss.Position(),
		BossPhase: w.Boss.Phase().String(),
		Shield:    w.Boss.ShieldActive(),
	}
	for _, p := range w.Hazards {
		if p.Damage > 0 {
			obs.Hazards = append(obs.Hazards, p.Pos)
		}
	}
	return obs
}

// Draw renders hazards, the boss, shots and the player. HUD is the caller's.
func (w *World) Draw(s render.Surface) {
	w.Boss.Draw(s)
	for _, p := range w.Hazards {
		p.Draw(s)
	}
	w.Shots.Draw(s)
	w.Player.Draw(s)
}
