package obj

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/render"
)

// EnemyProjectile is a point hazard travelling in a straight line.
type EnemyProjectile struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Size   float64
	Color  color.RGBA
	Damage int
}

func NewEnemyProjectile(x, y, angle, speed, size float64, clr color.RGBA, damage int) *EnemyProjectile {
	return &EnemyProjectile{
		Pos:    cp.Vector{X: x, Y: y},
		Vel:    cp.ForAngle(angle).Mult(speed),
		Size:   size,
		Color:  clr,
		Damage: damage,
	}
}

func (p *EnemyProjectile) Update() {
	p.Pos = p.Pos.Add(p.Vel)
}

// OffScreen reports whether the projectile has left the screen plus padding.
func (p *EnemyProjectile) OffScreen(w, h int) bool {
	pad := p.Size + 8
	return p.Pos.X < -pad || p.Pos.Y < -pad || p.Pos.X > float64(w)+pad || p.Pos.Y > float64(h)+pad
}

// CheckCollision tests a circle of radius r at c against the projectile.
func (p *EnemyProjectile) CheckCollision(c cp.Vector, r float64) bool {
	return p.Pos.Distance(c) <= p.Size+r
}

func (p *EnemyProjectile) Draw(s render.Surface) {
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Size, p.Color)
}
