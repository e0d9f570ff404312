// Package screen backs render.Surface with an ebiten image.
package screen

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/render"
)

var _ render.Surface = (*Screen)(nil)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Screen draws onto an ebiten image.
type Screen struct {
	Target    *ebiten.Image
	AntiAlias bool

	vs []ebiten.Vertex
	is []uint16
}

func New(target *ebiten.Image) *Screen {
	return &Screen{Target: target, AntiAlias: true}
}

func (s *Screen) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.Target, float32(cx), float32(cy), float32(r), clr, s.AntiAlias)
}

func (s *Screen) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(s.Target, float32(cx), float32(cy), float32(r), float32(width), clr, s.AntiAlias)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.Target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, s.AntiAlias)
}

func (s *Screen) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(s.Target, float32(x), float32(y), float32(w), float32(h), clr, s.AntiAlias)
}

func (s *Screen) FillPolygon(pts []cp.Vector, clr color.Color) {
	path := polygonPath(pts)
	if path == nil {
		return
	}
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawTriangles(clr)
}

func (s *Screen) StrokePolygon(pts []cp.Vector, width float64, clr color.Color) {
	path := polygonPath(pts)
	if path == nil {
		return
	}
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	s.drawTriangles(clr)
}

func (s *Screen) drawTriangles(clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}
	s.Target.DrawTriangles(s.vs, s.is, white(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      s.AntiAlias,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func polygonPath(pts []cp.Vector) *vector.Path {
	if len(pts) < 3 {
		return nil
	}
	path := &vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return path
}
