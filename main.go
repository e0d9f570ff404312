package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bullethell/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hot-reloads prefabs/ from disk)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Int64("seed", 0, "boss random seed (0 seeds from the clock)")
	pilot := flag.String("autopilot", "", "start with the named autopilot script in prefabs/scripts/")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("bullethell")
	ebiten.SetTPS(common.TicksPerSecond)

	game := NewGame(Options{
		Debug:     *debug,
		Seed:      *seed,
		Autopilot: *pilot,
		Mute:      *mute,
	})
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
