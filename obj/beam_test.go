package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/bullethell/render"
)

func age(b *Beam, frames int) {
	for i := 0; i < frames; i++ {
		b.Update()
	}
}

func TestBeamLifecycle(t *testing.T) {
	b := NewBeam(100, 100, 1280, 720, 0)
	on := cp.Vector{X: 300, Y: 105}

	assert.False(t, b.CheckCollision(on), "warning beams never hit")

	age(b, beamWarnFrames)
	require.True(t, b.Active())
	assert.True(t, b.CheckCollision(on))
	assert.False(t, b.CheckCollision(cp.Vector{X: 300, Y: 120}))
	assert.False(t, b.CheckCollision(cp.Vector{X: 50, Y: 100}))

	age(b, beamActiveFrames)
	assert.False(t, b.Active())
	assert.False(t, b.CheckCollision(on))

	age(b, beamFadeFrames)
	assert.False(t, b.Finished(), "beams without the fade flag linger")

	b.SetRemoveAfterFade(true)
	assert.True(t, b.Finished())
}

func TestBeamDrawStages(t *testing.T) {
	b := NewBeam(0, 0, 640, 480, 0)
	rec := &render.Recorder{}

	b.Draw(rec)
	assert.Equal(t, 1, rec.Count(render.OpStrokeLine))

	age(b, beamWarnFrames)
	rec.Reset()
	b.Draw(rec)
	assert.Equal(t, 1, rec.Count(render.OpFillPolygon))
	assert.Equal(t, 1, rec.Count(render.OpStrokeLine))

	age(b, beamActiveFrames+beamFadeFrames)
	rec.Reset()
	b.Draw(rec)
	assert.Empty(t, rec.Calls)
}

func TestEnemyProjectile(t *testing.T) {
	p := NewEnemyProjectile(10, 10, 0, 4, 6, beamCoreColor, 1)
	p.Update()
	assert.InDelta(t, 14, p.Pos.X, 1e-9)
	assert.True(t, p.CheckCollision(cp.Vector{X: 24, Y: 10}, 4))
	assert.False(t, p.CheckCollision(cp.Vector{X: 30, Y: 10}, 4))
	assert.False(t, p.OffScreen(100, 100))

	p.Pos = cp.Vector{X: -20, Y: 50}
	assert.True(t, p.OffScreen(100, 100))
}
