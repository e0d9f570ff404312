// Package autopilot drives the player from a tengo script. The soak runner
// and the -autopilot demo mode use it in place of the keyboard.
package autopilot

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/obj"
	"github.com/milk9111/bullethell/prefabs"
)

var ErrNoStep = errors.New("autopilot: script does not define step")

const dispatchScript = `
if __phase == "step" {
	step(__engine, __memory)
}
`

// Observation is what the script can see of one frame.
type Observation struct {
	Frame     int
	Width     int
	Height    int
	Player    cp.Vector
	Boss      cp.Vector
	BossPhase string
	Shield    bool
	Hazards   []cp.Vector
}

type Pilot struct {
	name     string
	compiled *tengo.Compiled
	memory   *tengo.Map
	params   map[string]any
}

// Load compiles the script named by spec.
func Load(spec prefabs.AutopilotSpec) (*Pilot, error) {
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("autopilot: load %s: %w", spec.Script, err)
	}
	return New(spec.Script, src, spec.Params)
}

func New(name string, src []byte, params map[string]any) (*Pilot, error) {
	probe := tengo.NewScript(src)
	probe.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	probed, err := probe.Run()
	if err != nil {
		return nil, fmt.Errorf("autopilot: %s: %w", name, err)
	}
	if !probed.IsDefined("step") {
		return nil, fmt.Errorf("%w: %s", ErrNoStep, name)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__memory", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}

	return &Pilot{
		name:     name,
		compiled: compiled,
		memory:   &tengo.Map{Value: map[string]tengo.Object{}},
		params:   params,
	}, nil
}

func (p *Pilot) Name() string { return p.name }

// Step runs the script's step function once and returns the input it chose.
// A script that panics inside the VM is reported as an error.
func (p *Pilot) Step(obs Observation) (in obj.PlayerInput, err error) {
	defer func() {
		if r := recover(); r != nil {
			in = obj.PlayerInput{}
			err = fmt.Errorf("autopilot: %s step: %v", p.name, r)
		}
	}()
	if err := p.compiled.Set("__phase", "step"); err != nil {
		return in, err
	}
	if err := p.compiled.Set("__engine", p.engine(obs, &in)); err != nil {
		return in, err
	}
	if err := p.compiled.Set("__memory", p.memory); err != nil {
		return in, err
	}
	if err := p.compiled.Run(); err != nil {
		return obj.PlayerInput{}, fmt.Errorf("autopilot: %s step: %w", p.name, err)
	}
	return in, nil
}

func (p *Pilot) engine(obs Observation, in *obj.PlayerInput) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"frame":  &tengo.Int{Value: int64(obs.Frame)},
		"width":  &tengo.Float{Value: float64(obs.Width)},
		"height": &tengo.Float{Value: float64(obs.Height)},
	}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vec(obs.Player), nil
	}}

	values["get_boss_position"] = &tengo.UserFunction{Name: "get_boss_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vec(obs.Boss), nil
	}}

	values["boss_phase"] = &tengo.UserFunction{Name: "boss_phase", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: obs.BossPhase}, nil
	}}

	values["boss_shield"] = &tengo.UserFunction{Name: "boss_shield", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if obs.Shield {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	// repel(radius) sums unit vectors pointing away from every hazard within
	// radius, weighted by closeness: [x, y, count].
	values["repel"] = &tengo.UserFunction{Name: "repel", Value: func(args ...tengo.Object) (tengo.Object, error) {
		radius := 80.0
		if len(args) > 0 {
			if r, ok := tengo.ToFloat64(args[0]); ok && r > 0 {
				radius = r
			}
		}
		sum, n := repel(obs.Player, obs.Hazards, radius)
		return &tengo.Array{Value: []tengo.Object{
			&tengo.Float{Value: sum.X},
			&tengo.Float{Value: sum.Y},
			&tengo.Int{Value: int64(n)},
		}}, nil
	}}

	values["param"] = &tengo.UserFunction{Name: "param", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if v, ok := p.params[name]; ok {
			return tengo.FromInterface(v)
		}
		if len(args) > 1 {
			return args[1], nil
		}
		return tengo.UndefinedValue, nil
	}}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		dx, _ := tengo.ToFloat64(args[0])
		dy, _ := tengo.ToFloat64(args[1])
		in.MoveX = cp.Clamp(dx, -1, 1)
		in.MoveY = cp.Clamp(dy, -1, 1)
		return tengo.TrueValue, nil
	}}

	values["focus"] = &tengo.UserFunction{Name: "focus", Value: func(args ...tengo.Object) (tengo.Object, error) {
		in.Focus = len(args) > 0 && !args[0].IsFalsy()
		return tengo.TrueValue, nil
	}}

	values["fire"] = &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		in.Fire = len(args) == 0 || !args[0].IsFalsy()
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func repel(from cp.Vector, hazards []cp.Vector, radius float64) (cp.Vector, int) {
	var sum cp.Vector
	n := 0
	for _, h := range hazards {
		d := from.Sub(h)
		dist := d.Length()
		if dist >= radius {
			continue
		}
		n++
		if dist < 1e-6 {
			d, dist = cp.Vector{X: 0, Y: 1}, 1
		}
		w := 1 - dist/radius
		sum = sum.Add(d.Mult(w / dist))
	}
	if l := sum.Length(); l > 1 {
		sum = sum.Mult(1 / math.Max(l, 1e-9))
	}
	return sum, n
}

func vec(v cp.Vector) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: v.X}, &tengo.Float{Value: v.Y}}}
}

func objectAsString(o tengo.Object) string {
	if o == nil {
		return ""
	}
	switch v := o.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
