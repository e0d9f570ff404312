package render

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Op names a primitive recorded by Recorder.
type Op string

const (
	OpFillCircle    Op = "fill_circle"
	OpStrokeCircle  Op = "stroke_circle"
	OpStrokeLine    Op = "stroke_line"
	OpFillRect      Op = "fill_rect"
	OpFillPolygon   Op = "fill_polygon"
	OpStrokePolygon Op = "stroke_polygon"
)

// Call is one recorded draw call.
type Call struct {
	Op     Op
	Points []cp.Vector
	Radius float64
	Color  color.Color
}

// Recorder is a Surface that keeps every call, for tests and headless runs.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, Points: []cp.Vector{{X: cx, Y: cy}}, Radius: radius, Color: clr})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, _ float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeCircle, Points: []cp.Vector{{X: cx, Y: cy}}, Radius: radius, Color: clr})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, _ float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeLine, Points: []cp.Vector{{X: x0, Y: y0}, {X: x1, Y: y1}}, Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, Points: []cp.Vector{{X: x, Y: y}, {X: x + w, Y: y + h}}, Color: clr})
}

func (r *Recorder) FillPolygon(pts []cp.Vector, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillPolygon, Points: append([]cp.Vector(nil), pts...), Color: clr})
}

func (r *Recorder) StrokePolygon(pts []cp.Vector, _ float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokePolygon, Points: append([]cp.Vector(nil), pts...), Color: clr})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
