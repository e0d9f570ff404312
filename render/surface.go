// Package render is the draw-call sink the simulation renders into.
package render

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Surface receives primitive draw calls in screen pixels.
type Surface interface {
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	FillPolygon(pts []cp.Vector, clr color.Color)
	StrokePolygon(pts []cp.Vector, width float64, clr color.Color)
}

// OrientedRect returns the four corners of a rectangle that starts at origin,
// extends length along angle and spans [-halfWidth, halfWidth] across it.
func OrientedRect(origin cp.Vector, angle, length, halfWidth float64) []cp.Vector {
	dir := cp.ForAngle(angle)
	side := dir.Perp().Mult(halfWidth)
	tip := origin.Add(dir.Mult(length))
	return []cp.Vector{
		origin.Add(side),
		tip.Add(side),
		tip.Sub(side),
		origin.Sub(side),
	}
}

// Fade scales the alpha of clr by a, clamped to [0, 1].
func Fade(clr color.RGBA, a float64) color.RGBA {
	a = cp.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(clr.R) * a),
		G: uint8(float64(clr.G) * a),
		B: uint8(float64(clr.B) * a),
		A: uint8(float64(clr.A) * a),
	}
}
