package system

import (
	"fmt"
	"log"

	"github.com/milk9111/bullethell/boss"
	"github.com/milk9111/bullethell/obj"
	"github.com/milk9111/bullethell/prefabs"
)

// Config is everything NewWorld needs. LoadConfig fills it from the prefab
// specs; DefaultConfig is the built-in encounter.
type Config struct {
	Width  int
	Height int
	Seed   int64

	Boss       boss.Tuning
	BossSpawnX float64
	BossSpawnY float64

	Player       obj.PlayerConfig
	PlayerSpawnY float64

	Autopilot prefabs.AutopilotSpec
	Audio     []prefabs.AudioSpec

	Logger *log.Logger
}

func DefaultConfig(w, h int) Config {
	return Config{
		Width:        w,
		Height:       h,
		Boss:         boss.DefaultTuning(),
		BossSpawnX:   0.5,
		BossSpawnY:   150,
		Player:       obj.DefaultPlayerConfig(),
		PlayerSpawnY: 100,
		Autopilot:    prefabs.AutopilotSpec{Script: "dodge"},
	}
}

// LoadConfig reads boss.yaml and player.yaml over the defaults. A spec that
// fails to load is logged and its defaults are kept.
func LoadConfig(w, h int, logger *log.Logger) Config {
	if logger == nil {
		logger = log.Default()
	}
	cfg := DefaultConfig(w, h)
	cfg.Logger = logger

	if spec, err := prefabs.LoadBossSpec(); err != nil {
		logger.Printf("system: %v, using default boss", err)
	} else if err := cfg.applyBossSpec(spec); err != nil {
		logger.Printf("system: %v, using default boss", err)
	}

	if spec, err := prefabs.LoadPlayerSpec(); err != nil {
		logger.Printf("system: %v, using default player", err)
	} else {
		cfg.applyPlayerSpec(spec)
	}
	return cfg
}

func (c *Config) applyBossSpec(spec *prefabs.BossSpec) error {
	t, err := BossTuning(spec)
	if err != nil {
		return err
	}
	c.Boss = t
	if spec.SpawnX > 0 {
		c.BossSpawnX = spec.SpawnX
	}
	if spec.SpawnY > 0 {
		c.BossSpawnY = spec.SpawnY
	}
	if len(spec.Audio) > 0 {
		c.Audio = spec.Audio
	}
	return nil
}

func (c *Config) applyPlayerSpec(spec *prefabs.PlayerSpec) {
	c.Player = PlayerConfig(spec)
	if spec.SpawnY > 0 {
		c.PlayerSpawnY = spec.SpawnY
	}
	if spec.Autopilot.Script != "" {
		c.Autopilot = spec.Autopilot
	}
}

// BossTuning decodes the spec's tuning block over boss.DefaultTuning and
// validates the result.
func BossTuning(spec *prefabs.BossSpec) (boss.Tuning, error) {
	t := boss.DefaultTuning()
	if err := spec.DecodeTuning(&t); err != nil {
		return boss.DefaultTuning(), err
	}
	if err := t.Validate(); err != nil {
		return boss.DefaultTuning(), fmt.Errorf("system: %s: %w", prefabs.BossFile, err)
	}
	return t, nil
}

// PlayerConfig overlays the non-zero fields of spec on the default player.
func PlayerConfig(spec *prefabs.PlayerSpec) obj.PlayerConfig {
	cfg := obj.DefaultPlayerConfig()
	if spec == nil {
		return cfg
	}
	setFloat(&cfg.Speed, spec.Speed)
	setFloat(&cfg.FocusSpeed, spec.FocusSpeed)
	setFloat(&cfg.Radius, spec.Radius)
	setFloat(&cfg.ShotSpeed, spec.ShotSpeed)
	setFloat(&cfg.ShotRadius, spec.ShotRadius)
	setInt(&cfg.Health, spec.Health)
	setInt(&cfg.IFrames, spec.IFrames)
	setInt(&cfg.FireCooldown, spec.FireCooldown)
	setInt(&cfg.ShotDamage, spec.ShotDamage)
	cfg.Color = spec.Color.RGBA8(cfg.Color)
	cfg.HitColor = spec.HitColor.RGBA8(cfg.HitColor)
	return cfg
}

func setFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
