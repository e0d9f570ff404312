package obj

import (
	"image/color"
	"sync"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/render"
)

var shotColor = color.RGBA{R: 255, G: 255, B: 160, A: 255}

// Bullet is a player shot.
type Bullet struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Radius float64
	Damage int
	Active bool
}

// BulletPool tracks live player shots and recycles dead ones.
type BulletPool struct {
	pool   sync.Pool
	active []*Bullet
}

func NewBulletPool() *BulletPool {
	bp := &BulletPool{}
	bp.pool.New = func() any { return &Bullet{} }
	return bp
}

// Spawn pulls a bullet from the pool and tracks it for updates and draws.
func (bp *BulletPool) Spawn(pos, vel cp.Vector, radius float64, damage int) *Bullet {
	b := bp.pool.Get().(*Bullet)
	b.Pos = pos
	b.Vel = vel
	b.Radius = radius
	b.Damage = damage
	b.Active = true
	bp.active = append(bp.active, b)
	return b
}

// Update advances every shot, calls hit for each one still on a w x h
// screen and releases those that left the screen or hit something.
func (bp *BulletPool) Update(w, h int, hit func(b *Bullet) bool) {
	if len(bp.active) == 0 {
		return
	}
	writeIdx := 0
	for _, b := range bp.active {
		b.Pos = b.Pos.Add(b.Vel)
		if b.offScreen(w, h) || (hit != nil && hit(b)) {
			bp.release(b)
			continue
		}
		bp.active[writeIdx] = b
		writeIdx++
	}
	for i := writeIdx; i < len(bp.active); i++ {
		bp.active[i] = nil
	}
	bp.active = bp.active[:writeIdx]
}

func (bp *BulletPool) Active() []*Bullet { return bp.active }

func (bp *BulletPool) Len() int { return len(bp.active) }

// Clear releases every live shot.
func (bp *BulletPool) Clear() {
	for _, b := range bp.active {
		bp.release(b)
	}
	bp.active = bp.active[:0]
}

func (bp *BulletPool) Draw(s render.Surface) {
	for _, b := range bp.active {
		s.FillCircle(b.Pos.X, b.Pos.Y, b.Radius, shotColor)
	}
}

func (bp *BulletPool) release(b *Bullet) {
	b.Active = false
	b.Vel = cp.Vector{}
	b.Damage = 0
	bp.pool.Put(b)
}

func (b *Bullet) offScreen(w, h int) bool {
	return b.Pos.X < -b.Radius || b.Pos.Y < -b.Radius ||
		b.Pos.X > float64(w)+b.Radius || b.Pos.Y > float64(h)+b.Radius
}
