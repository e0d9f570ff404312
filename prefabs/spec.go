package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BossFile   = "boss.yaml"
	PlayerFile = "player.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BossSpec places the boss and carries its tuning. Tuning is kept as a raw
// node so it can be decoded over the built-in defaults; fields it omits keep
// their default values.
type BossSpec struct {
	Name   string      `yaml:"name"`
	SpawnX float64     `yaml:"spawn_x"`
	SpawnY float64     `yaml:"spawn_y"`
	Tuning yaml.Node   `yaml:"tuning"`
	Audio  []AudioSpec `yaml:"audio"`
}

func LoadBossSpec() (*BossSpec, error) {
	spec, err := LoadSpec[BossSpec](BossFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// DecodeTuning decodes the tuning block into out, leaving fields the YAML
// does not mention untouched.
func (s *BossSpec) DecodeTuning(out any) error {
	if s == nil || s.Tuning.Kind == 0 {
		return nil
	}
	if err := s.Tuning.Decode(out); err != nil {
		return fmt.Errorf("prefabs: decode boss tuning: %w", err)
	}
	return nil
}

type PlayerSpec struct {
	Name         string        `yaml:"name"`
	SpawnY       float64       `yaml:"spawn_y"`
	Speed        float64       `yaml:"speed"`
	FocusSpeed   float64       `yaml:"focus_speed"`
	Radius       float64       `yaml:"radius"`
	Health       int           `yaml:"health"`
	IFrames      int           `yaml:"iframes"`
	FireCooldown int           `yaml:"fire_cooldown"`
	ShotSpeed    float64       `yaml:"shot_speed"`
	ShotRadius   float64       `yaml:"shot_radius"`
	ShotDamage   int           `yaml:"shot_damage"`
	Color        *YAMLColor    `yaml:"color"`
	HitColor     *YAMLColor    `yaml:"hit_color"`
	Autopilot    AutopilotSpec `yaml:"autopilot"`
}

// AutopilotSpec names the script that drives the player in soak runs and
// demo mode, plus constants exposed to it.
type AutopilotSpec struct {
	Script string         `yaml:"script"`
	Params map[string]any `yaml:"params"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour premultiplied, or fallback when unset.
func (c *YAMLColor) RGBA8(fallback color.RGBA) color.RGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
