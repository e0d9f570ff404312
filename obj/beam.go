package obj

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/common"
	"github.com/milk9111/bullethell/render"
)

const (
	beamWarnFrames   = 30
	beamActiveFrames = 20
	beamFadeFrames   = 20
	beamWidth        = 24
)

var (
	beamWarnColor   = color.RGBA{R: 200, G: 60, B: 200, A: 140}
	beamActiveColor = color.RGBA{R: 255, G: 110, B: 255, A: 255}
	beamCoreColor   = color.RGBA{R: 255, G: 235, B: 255, A: 255}
)

// Beam is a straight beam fired from an origin. It telegraphs as a thin line,
// then hurts for a short window and fades out.
type Beam struct {
	Origin cp.Vector
	Angle  float64
	Length float64

	age             int
	removeAfterFade bool
}

func NewBeam(x, y float64, screenW, screenH int, angle float64) *Beam {
	return &Beam{
		Origin: cp.Vector{X: x, Y: y},
		Angle:  angle,
		Length: common.Diagonal(screenW, screenH),
	}
}

// SetRemoveAfterFade marks the beam finished once its fade ends. Beams that
// never get this flag stay as a faint residue.
func (b *Beam) SetRemoveAfterFade(remove bool) {
	b.removeAfterFade = remove
}

func (b *Beam) Update() {
	b.age++
}

// Active reports whether the beam currently hurts.
func (b *Beam) Active() bool {
	return b.age >= beamWarnFrames && b.age < beamWarnFrames+beamActiveFrames
}

func (b *Beam) Finished() bool {
	return b.removeAfterFade && b.age >= beamWarnFrames+beamActiveFrames+beamFadeFrames
}

func (b *Beam) CheckCollision(p cp.Vector) bool {
	if !b.Active() {
		return false
	}
	local := p.Sub(b.Origin).Unrotate(cp.ForAngle(b.Angle))
	if local.X < 0 || local.X > b.Length {
		return false
	}
	return local.Y >= -beamWidth/2 && local.Y <= beamWidth/2
}

func (b *Beam) Draw(s render.Surface) {
	end := b.Origin.Add(cp.ForAngle(b.Angle).Mult(b.Length))
	switch {
	case b.age < beamWarnFrames:
		s.StrokeLine(b.Origin.X, b.Origin.Y, end.X, end.Y, 2, beamWarnColor)
	case b.Active():
		s.FillPolygon(render.OrientedRect(b.Origin, b.Angle, b.Length, beamWidth/2), beamActiveColor)
		s.StrokeLine(b.Origin.X, b.Origin.Y, end.X, end.Y, beamWidth/3, beamCoreColor)
	default:
		fade := 1 - float64(b.age-beamWarnFrames-beamActiveFrames)/beamFadeFrames
		if fade <= 0 {
			return
		}
		s.FillPolygon(render.OrientedRect(b.Origin, b.Angle, b.Length, beamWidth/2), render.Fade(beamActiveColor, fade))
	}
}
