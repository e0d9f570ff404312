// Command soak runs the encounter headless with an autopilot script and
// reports phase changes, hits and any boss that leaves its margins.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/bullethell/autopilot"
	"github.com/milk9111/bullethell/boss"
	"github.com/milk9111/bullethell/common"
	"github.com/milk9111/bullethell/component"
	"github.com/milk9111/bullethell/prefabs"
	"github.com/milk9111/bullethell/render"
	"github.com/milk9111/bullethell/system"
)

func main() {
	frames := flag.Int("frames", 60*common.TicksPerSecond, "frames to simulate")
	seed := flag.Int64("seed", 1, "boss random seed")
	script := flag.String("script", "", "autopilot script (defaults to player.yaml)")
	god := flag.Bool("god", false, "player cannot die")
	verbose := flag.Bool("v", false, "log boss internals")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.Lmicroseconds)
	if !*verbose {
		logger.SetOutput(io.Discard)
	}

	cfg := system.LoadConfig(common.BaseWidth, common.BaseHeight, logger)
	cfg.Seed = *seed
	if *god {
		cfg.Player.Health = 1 << 30
	}
	spec := cfg.Autopilot
	if *script != "" {
		spec = prefabs.AutopilotSpec{Script: *script, Params: cfg.Autopilot.Params}
	}

	pilot, err := autopilot.Load(spec)
	if err != nil {
		log.Fatal(err)
	}

	w := system.NewWorld(cfg)
	var hits, blocks int
	w.OnCombat(func(evt component.CombatEvent) {
		switch {
		case evt.Type == component.EventBlocked:
			blocks++
		case evt.Type == component.EventDamageApplied && evt.Target == component.FactionPlayer:
			hits++
		}
	})

	rec := &render.Recorder{}
	stats := map[boss.Phase]int{}
	phase := w.Boss.Phase()
	violations := 0
	for w.Frame < *frames && w.Outcome() == system.OutcomeRunning {
		in, err := pilot.Step(w.Observation())
		if err != nil {
			log.Fatal(err)
		}
		w.Step(in)
		stats[w.Boss.Phase()]++

		if p := w.Boss.Phase(); p != phase {
			log.Printf("frame %6d: %s -> %s (boss hp %d)", w.Frame, phase, p, w.Boss.Health())
			phase = p
		}
		if !inMargins(w, cfg.Boss.Margin) {
			violations++
			log.Printf("frame %6d: boss outside margins at %v", w.Frame, w.Boss.Position())
		}

		rec.Reset()
		w.Draw(rec)
	}

	fmt.Printf("outcome=%s frames=%d boss=%d/%d player=%d hits=%d blocked=%d violations=%d\n",
		w.Outcome(), w.Frame, w.Boss.Health(), w.Boss.MaxHealth(), w.Player.Health.Current, hits, blocks, violations)
	for _, p := range []boss.Phase{boss.PhaseBeamSpam, boss.PhaseBeamSpin, boss.PhaseDash, boss.PhaseSpiral} {
		fmt.Printf("  %-9s %6d frames\n", p, stats[p])
	}
	fmt.Printf("  last frame drew %d primitives\n", len(rec.Calls))
	if violations > 0 {
		os.Exit(1)
	}
}

func inMargins(w *system.World, m float64) bool {
	p := w.Boss.Position()
	return p.X >= m && p.X <= float64(w.Width)-m && p.Y >= m && p.Y <= float64(w.Height)-m
}
