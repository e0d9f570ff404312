package boss

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidTuning = errors.New("boss: invalid tuning")

// Tuning holds every number the attack cycle runs on. DefaultTuning matches
// the shipped encounter; prefabs/boss.yaml overlays it.
type Tuning struct {
	MaxHealth        int     `yaml:"max_health"`
	Margin           float64 `yaml:"margin"`
	BodyHalfExtent   float64 `yaml:"body_half_extent"`
	TransitionFrames int     `yaml:"transition_frames"`
	IdleSpin         float64 `yaml:"idle_spin"`

	BeamSpam BeamSpamTuning `yaml:"beam_spam"`
	BeamSpin BeamSpinTuning `yaml:"beam_spin"`
	Dash     DashTuning     `yaml:"dash"`
	Spiral   SpiralTuning   `yaml:"spiral"`
}

type BeamSpamTuning struct {
	Duration     int     `yaml:"duration"`
	WanderSpeed  float64 `yaml:"wander_speed"`
	RerollFrames int     `yaml:"reroll_frames"`
	BurstFrames  int     `yaml:"burst_frames"`
	BurstMin     int     `yaml:"burst_min"`
	BurstMax     int     `yaml:"burst_max"`
	VolleyFrames int     `yaml:"volley_frames"`
	VolleyCutoff int     `yaml:"volley_cutoff"`
	VolleySpread float64 `yaml:"volley_spread"`
}

type BeamSpinTuning struct {
	Duration        int     `yaml:"duration"`
	HomingFrames    int     `yaml:"homing_frames"`
	HomingSpeed     float64 `yaml:"homing_speed"`
	SnapRadius      float64 `yaml:"snap_radius"`
	FanCount        int     `yaml:"fan_count"`
	CueFrames       int     `yaml:"cue_frames"`
	BaseRate        float64 `yaml:"base_rate"`
	MidRate         float64 `yaml:"mid_rate"`
	LowRate         float64 `yaml:"low_rate"`
	ExtraBeamFrames int     `yaml:"extra_beam_frames"`
	ExtraBeamAfter  int     `yaml:"extra_beam_after"`
	RingFrames      int     `yaml:"ring_frames"`
	RingSize        int     `yaml:"ring_size"`
	RingSpeed       float64 `yaml:"ring_speed"`
}

type DashTuning struct {
	PlanWindow      int     `yaml:"plan_window"`
	Duration        int     `yaml:"duration"`
	HighlightFrames int     `yaml:"highlight_frames"`
	Speed           float64 `yaml:"speed"`
	Decay           float64 `yaml:"decay"`
	Nudge           float64 `yaml:"nudge"`
	Spin            float64 `yaml:"spin"`
	FireFrames      int     `yaml:"fire_frames"`
	FireChance      float64 `yaml:"fire_chance"`
	BeamChance      float64 `yaml:"beam_chance"`
	Spread          float64 `yaml:"spread"`
	SpreadSpeed     float64 `yaml:"spread_speed"`
	WallFlashFrames int     `yaml:"wall_flash_frames"`
	FinishFrames    int     `yaml:"finish_frames"`
	Sparks          int     `yaml:"sparks"`
	FinishBeams     int     `yaml:"finish_beams"`
	FinishShots     int     `yaml:"finish_shots"`
}

type SpiralTuning struct {
	Duration     int     `yaml:"duration"`
	EmitFrames   int     `yaml:"emit_frames"`
	BaseCount    int     `yaml:"base_count"`
	GrowthFrames int     `yaml:"growth_frames"`
	Step         float64 `yaml:"step"`
	Speed        float64 `yaml:"speed"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxHealth:        250,
		Margin:           60,
		BodyHalfExtent:   40,
		TransitionFrames: 60,
		IdleSpin:         0.01,
		BeamSpam: BeamSpamTuning{
			Duration:     180,
			WanderSpeed:  2,
			RerollFrames: 60,
			BurstFrames:  25,
			BurstMin:     2,
			BurstMax:     4,
			VolleyFrames: 90,
			VolleyCutoff: 30,
			VolleySpread: 0.6,
		},
		BeamSpin: BeamSpinTuning{
			Duration:        400,
			HomingFrames:    100,
			HomingSpeed:     6,
			SnapRadius:      5,
			FanCount:        6,
			CueFrames:       60,
			BaseRate:        0.002,
			MidRate:         0.004,
			LowRate:         0.006,
			ExtraBeamFrames: 50,
			ExtraBeamAfter:  40,
			RingFrames:      30,
			RingSize:        6,
			RingSpeed:       4,
		},
		Dash: DashTuning{
			PlanWindow:      50,
			Duration:        300,
			HighlightFrames: 30,
			Speed:           16,
			Decay:           0.85,
			Nudge:           8,
			Spin:            0.15,
			FireFrames:      20,
			FireChance:      0.7,
			BeamChance:      0.4,
			Spread:          0.3,
			SpreadSpeed:     5,
			WallFlashFrames: 12,
			FinishFrames:    20,
			Sparks:          6,
			FinishBeams:     6,
			FinishShots:     8,
		},
		Spiral: SpiralTuning{
			Duration:     180,
			EmitFrames:   8,
			BaseCount:    8,
			GrowthFrames: 30,
			Step:         0.2,
			Speed:        4,
		},
	}
}

// Validate rejects values that would divide by zero or stall the cycle.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"max_health", t.MaxHealth},
		{"transition_frames", t.TransitionFrames},
		{"beam_spam.duration", t.BeamSpam.Duration},
		{"beam_spam.reroll_frames", t.BeamSpam.RerollFrames},
		{"beam_spam.burst_frames", t.BeamSpam.BurstFrames},
		{"beam_spam.volley_frames", t.BeamSpam.VolleyFrames},
		{"beam_spin.duration", t.BeamSpin.Duration},
		{"beam_spin.fan_count", t.BeamSpin.FanCount},
		{"beam_spin.extra_beam_frames", t.BeamSpin.ExtraBeamFrames},
		{"beam_spin.ring_frames", t.BeamSpin.RingFrames},
		{"beam_spin.ring_size", t.BeamSpin.RingSize},
		{"dash.duration", t.Dash.Duration},
		{"dash.fire_frames", t.Dash.FireFrames},
		{"spiral.duration", t.Spiral.Duration},
		{"spiral.emit_frames", t.Spiral.EmitFrames},
		{"spiral.base_count", t.Spiral.BaseCount},
		{"spiral.growth_frames", t.Spiral.GrowthFrames},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidTuning, p.name, p.v)
		}
	}
	if t.BeamSpam.BurstMin < 0 || t.BeamSpam.BurstMax < t.BeamSpam.BurstMin {
		return fmt.Errorf("%w: beam_spam burst range [%d, %d]", ErrInvalidTuning, t.BeamSpam.BurstMin, t.BeamSpam.BurstMax)
	}
	if t.Margin < 0 {
		return fmt.Errorf("%w: margin %.1f", ErrInvalidTuning, t.Margin)
	}

	finite := []struct {
		name string
		v    float64
	}{
		{"margin", t.Margin},
		{"body_half_extent", t.BodyHalfExtent},
		{"idle_spin", t.IdleSpin},
		{"beam_spam.wander_speed", t.BeamSpam.WanderSpeed},
		{"beam_spam.volley_spread", t.BeamSpam.VolleySpread},
		{"beam_spin.base_rate", t.BeamSpin.BaseRate},
		{"beam_spin.mid_rate", t.BeamSpin.MidRate},
		{"beam_spin.low_rate", t.BeamSpin.LowRate},
		{"beam_spin.ring_speed", t.BeamSpin.RingSpeed},
		{"dash.nudge", t.Dash.Nudge},
		{"dash.spin", t.Dash.Spin},
		{"dash.fire_chance", t.Dash.FireChance},
		{"dash.beam_chance", t.Dash.BeamChance},
		{"dash.spread", t.Dash.Spread},
		{"dash.spread_speed", t.Dash.SpreadSpeed},
		{"spiral.step", t.Spiral.Step},
		{"spiral.speed", t.Spiral.Speed},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidTuning, f.name, f.v)
		}
	}

	switch {
	case t.BeamSpin.SnapRadius < 0 || math.IsNaN(t.BeamSpin.SnapRadius) || math.IsInf(t.BeamSpin.SnapRadius, 0):
		return fmt.Errorf("%w: beam_spin.snap_radius %v", ErrInvalidTuning, t.BeamSpin.SnapRadius)
	case !(t.BeamSpin.HomingSpeed > 0) || math.IsInf(t.BeamSpin.HomingSpeed, 0):
		return fmt.Errorf("%w: beam_spin.homing_speed must be positive, got %v", ErrInvalidTuning, t.BeamSpin.HomingSpeed)
	case !(t.Dash.Speed > 0) || math.IsInf(t.Dash.Speed, 0):
		return fmt.Errorf("%w: dash.speed must be positive, got %v", ErrInvalidTuning, t.Dash.Speed)
	case !(t.Dash.Decay > 0 && t.Dash.Decay <= 1):
		return fmt.Errorf("%w: dash.decay must be in (0, 1], got %v", ErrInvalidTuning, t.Dash.Decay)
	}
	return nil
}

// RingSize is the spiral ring size emitted at the given phase frame.
func (t SpiralTuning) RingSize(phaseTimer int) int {
	return t.BaseCount + phaseTimer/t.GrowthFrames
}
