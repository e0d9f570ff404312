package boss

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/render"
)

const (
	shieldRadius  = 60
	bodyRadius    = 40
	spikeCount    = 12
	spikeBase     = 45
	spikeTip      = 70
	spikeHalfBase = 12
	outlineWidth  = 3
)

var (
	bodyColor    = color.RGBA{R: 150, G: 0, B: 150, A: 255}
	spikeColor   = color.RGBA{R: 200, G: 50, B: 200, A: 255}
	magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	shieldFill   = color.RGBA{R: 0, G: 153, B: 255, A: 255}
	shieldRim    = color.RGBA{R: 0, G: 204, B: 255, A: 255}
	chargeColor  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	finishColor  = color.RGBA{R: 255, G: 230, B: 102, A: 255}
	wallHitColor = color.RGBA{R: 102, G: 230, B: 255, A: 255}
)

// Draw renders the boss and its transient effects back to front. The health
// bar belongs to the caller.
func (b *Boss) Draw(s render.Surface) {
	for _, beam := range b.beams {
		beam.Draw(s)
	}
	for _, rb := range b.rotating {
		rb.Draw(s)
	}

	b.drawTrail(s)

	if b.shield {
		s.FillCircle(b.pos.X, b.pos.Y, shieldRadius, render.Fade(shieldFill, 0.4))
		s.StrokeCircle(b.pos.X, b.pos.Y, shieldRadius, outlineWidth, render.Fade(shieldRim, 0.7))
	}

	if b.phase == PhaseDash && b.highlightTimer > 0 {
		progress := float64(b.highlightTimer) / float64(b.tuning.Dash.HighlightFrames)
		size := 80 + progress*20
		s.FillCircle(b.pos.X, b.pos.Y, size/2, render.Fade(chargeColor, 0.3*progress))
	}

	b.drawBody(s)

	if b.finishTimer > 0 {
		frames := float64(b.tuning.Dash.FinishFrames)
		progress := (frames - float64(b.finishTimer)) / frames
		size := 80 + progress*80
		alpha := 0.8 * (1 - progress)
		s.FillCircle(b.pos.X, b.pos.Y, size/2, render.Fade(finishColor, alpha))
		s.StrokeCircle(b.pos.X, b.pos.Y, size/2, outlineWidth, render.Fade(finishColor, math.Min(0.9, alpha+0.2)))
	}

	if b.beamCueTimer > 0 {
		progress := float64(b.beamCueTimer) / float64(b.tuning.BeamSpin.CueFrames)
		alpha := 0.7 * progress
		size := 120 + (1-progress)*60
		s.FillCircle(b.pos.X, b.pos.Y, size/2, render.Fade(magenta, alpha))
		s.StrokeCircle(b.pos.X, b.pos.Y, size/2, outlineWidth, render.Fade(magenta, math.Min(0.95, alpha+0.2)))
	}

	if b.wallHitTimer > 0 {
		progress := float64(b.wallHitTimer) / float64(b.tuning.Dash.WallFlashFrames)
		size := 40 + (1-progress)*80
		s.FillCircle(b.wallHitPos.X, b.wallHitPos.Y, size/2, render.Fade(wallHitColor, 0.9*progress))
	}
}

// drawTrail fades older positions out and draws them larger.
func (b *Boss) drawTrail(s render.Surface) {
	n := b.trail.Len()
	for i := 0; i < n; i++ {
		p := b.trail.At(i)
		alpha := float64(i+1) / float64(n+1) * 0.8
		size := float64(20 + (n-i)*2)
		s.FillCircle(p.X, p.Y, size/2, render.Fade(magenta, alpha))
	}
}

func (b *Boss) drawBody(s render.Surface) {
	s.FillCircle(b.pos.X, b.pos.Y, bodyRadius, bodyColor)
	s.StrokeCircle(b.pos.X, b.pos.Y, bodyRadius, outlineWidth, magenta)

	for i := 0; i < spikeCount; i++ {
		spike := b.spike(b.rotation + float64(i)*2*math.Pi/spikeCount)
		s.FillPolygon(spike, spikeColor)
		s.StrokePolygon(spike, 1, magenta)
	}
}

// spike returns the triangle pointing outward along angle.
func (b *Boss) spike(angle float64) []cp.Vector {
	dir := cp.ForAngle(angle)
	base := b.pos.Add(dir.Mult(spikeBase))
	side := dir.Perp().Mult(spikeHalfBase)
	return []cp.Vector{base.Add(side), base.Sub(side), b.pos.Add(dir.Mult(spikeTip))}
}
