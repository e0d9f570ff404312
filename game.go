package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/bullethell/assets"
	"github.com/milk9111/bullethell/autopilot"
	"github.com/milk9111/bullethell/boss"
	"github.com/milk9111/bullethell/common"
	"github.com/milk9111/bullethell/component"
	"github.com/milk9111/bullethell/prefabs"
	"github.com/milk9111/bullethell/render/screen"
	"github.com/milk9111/bullethell/system"
)

type Options struct {
	Debug     bool
	Seed      int64
	Autopilot string
	Mute      bool
}

type Game struct {
	frames int
	width  int
	height int

	opts   Options
	world  *system.World
	screen *screen.Screen
	hud    *HUD
	input  *Input

	cues    *assets.CuePlayer
	watcher *prefabs.Watcher

	pilot     *autopilot.Pilot
	autopilot bool

	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(opts Options) *Game {
	g := &Game{
		width:  common.BaseWidth,
		height: common.BaseHeight,
		opts:   opts,
		screen: screen.New(nil),
		hud:    NewHUD(),
		input:  NewInput(),
	}

	cfg := g.loadConfig()
	g.world = system.NewWorld(cfg)
	g.world.OnCombat(g.onCombat)

	cues, err := assets.NewCuePlayer(assets.Context(), cfg.Audio)
	if err != nil {
		log.Printf("game: %v, sound cues disabled", err)
	}
	g.cues = cues
	if g.cues != nil {
		g.cues.Muted = opts.Mute
		for _, kind := range []boss.CueKind{boss.CueWallHit, boss.CueDashFinish, boss.CueBeamsSpawned} {
			if !g.cues.Has(kind.String()) {
				log.Printf("game: no sound for boss cue %s", kind)
			}
		}
	}

	spec := cfg.Autopilot
	if opts.Autopilot != "" {
		spec = prefabs.AutopilotSpec{Script: opts.Autopilot, Params: cfg.Autopilot.Params}
		g.autopilot = true
	}
	g.loadPilot(spec)

	if opts.Debug && prefabs.OnDisk() {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
			log.Printf("game: watching %s for changes", prefabs.Dir)
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) loadConfig() system.Config {
	cfg := system.LoadConfig(g.width, g.height, log.Default())
	cfg.Seed = g.opts.Seed
	return cfg
}

func (g *Game) loadPilot(spec prefabs.AutopilotSpec) {
	p, err := autopilot.Load(spec)
	if err != nil {
		log.Printf("game: %v", err)
		g.pilot = nil
		g.autopilot = false
		return
	}
	g.pilot = p
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) onCombat(evt component.CombatEvent) {
	if evt.Target == component.FactionPlayer && evt.Type == component.EventDamageApplied {
		g.hud.Flash()
	}
	if g.opts.Debug {
		log.Printf("game: %s %s -> %s dmg=%d src=%s frame=%d", evt.Type, evt.Attacker, evt.Target, evt.Damage, evt.Source, evt.Frame)
	}
}

// Restart rebuilds the encounter with the current config.
func (g *Game) Restart() {
	g.world.Reset()
	g.paused = false
}

func (g *Game) Update() error {
	g.frames++
	g.reload()

	g.input.Update()
	if g.input.PausePressed && g.world.Outcome() == system.OutcomeRunning {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.input.RestartPressed {
		g.Restart()
		return nil
	}
	if g.input.AutopilotPressed && g.pilot != nil {
		g.autopilot = !g.autopilot
		log.Printf("game: autopilot %s on=%v", g.pilot.Name(), g.autopilot)
	}
	if g.input.MutePressed && g.cues != nil {
		g.cues.Muted = !g.cues.Muted
	}

	in := g.input.Player
	if g.autopilot {
		auto, err := g.pilot.Step(g.world.Observation())
		if err != nil {
			log.Printf("game: %v, autopilot off", err)
			g.autopilot = false
		} else {
			in = auto
		}
	}

	g.world.Step(in)
	for _, c := range g.world.Cues {
		g.cues.Play(c.Kind.String())
	}
	g.hud.Update()
	return nil
}

// reload applies prefab edits picked up by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, err := range g.watcher.DrainErrors() {
		log.Printf("game: watcher: %v", err)
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}

	cfg := g.loadConfig()
	if err := g.world.Retune(cfg); err != nil {
		log.Printf("game: reload %v: %v", changed, err)
		return
	}
	for _, name := range changed {
		if strings.HasSuffix(name, ".tengo") {
			wasOn := g.autopilot
			spec := cfg.Autopilot
			if g.pilot != nil {
				spec.Script = g.pilot.Name()
			}
			g.loadPilot(spec)
			g.autopilot = wasOn && g.pilot != nil
		}
	}
	log.Printf("game: reloaded %v", changed)
}

func (g *Game) Draw(img *ebiten.Image) {
	img.Fill(colornames.Black)

	g.screen.Target = img
	g.world.Draw(g.screen)
	g.hud.Draw(img, g.screen, g.world, g.autopilot)

	if g.paused {
		g.pauseUI.Draw(img)
	}

	if g.opts.Debug {
		ebitenutil.DebugPrint(img, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f    hazards: %d", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.world.Hazards)))
	}
}

// LayoutF follows the window size so the boss margins and beam lengths track
// resizes.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := int(outsideWidth), int(outsideHeight)
	if w <= 0 || h <= 0 {
		return float64(g.width), float64(g.height)
	}
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.world.Resize(w, h)
	}
	return float64(w), float64(h)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
