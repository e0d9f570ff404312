package obj

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/common"
	"github.com/milk9111/bullethell/render"
)

const (
	RotatingBeamWidth = 80
	// RotatingBeamPivotRadius is the hole around the pivot where the beam never hits;
	// the owner's body box covers that area instead.
	RotatingBeamPivotRadius = 20
)

var (
	rotatingBeamGlow = color.RGBA{R: 153, G: 153, B: 92, A: 153}
	rotatingBeamCore = color.RGBA{R: 255, G: 255, B: 51, A: 255}
)

// RotatingBeam is a rigid beam pinned to a centre point. Its orientation is
// BaseAngle plus an offset supplied by the owner every frame.
type RotatingBeam struct {
	Center    cp.Vector
	BaseAngle float64
	Offset    float64

	screenW, screenH int
}

func NewRotatingBeam(center cp.Vector, baseAngle float64, screenW, screenH int) *RotatingBeam {
	return &RotatingBeam{
		Center:    center,
		BaseAngle: baseAngle,
		screenW:   screenW,
		screenH:   screenH,
	}
}

// Update re-pins the beam to center and re-orients it.
func (b *RotatingBeam) Update(center cp.Vector, offset float64) {
	b.Center = center
	b.Offset = offset
}

func (b *RotatingBeam) SetScreenSize(w, h int) {
	b.screenW = w
	b.screenH = h
}

// Angle is the final orientation of the beam.
func (b *RotatingBeam) Angle() float64 {
	return b.BaseAngle + b.Offset
}

// Length is the screen diagonal, so the beam always reaches the edge.
func (b *RotatingBeam) Length() float64 {
	return common.Diagonal(b.screenW, b.screenH)
}

// CheckCollision reports whether p lies inside the beam rectangle, outside
// the pivot hole.
func (b *RotatingBeam) CheckCollision(p cp.Vector) bool {
	local := p.Sub(b.Center).Unrotate(cp.ForAngle(b.Angle()))
	half := float64(RotatingBeamWidth / 2)
	if local.X < 0 || local.X > b.Length() || local.Y < -half || local.Y > half {
		return false
	}
	return local.Length() > RotatingBeamPivotRadius
}

func (b *RotatingBeam) Draw(s render.Surface) {
	length := b.Length()
	s.FillPolygon(render.OrientedRect(b.Center, b.Angle(), length, RotatingBeamWidth/2), rotatingBeamGlow)
	s.FillPolygon(render.OrientedRect(b.Center, b.Angle(), length, RotatingBeamWidth/4), rotatingBeamCore)
}
