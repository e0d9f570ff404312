package boss

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailEvictsOldest(t *testing.T) {
	var tr Trail
	for i := 0; i < TrailCapacity+5; i++ {
		tr.Push(cp.Vector{X: float64(i)})
	}
	require.Equal(t, TrailCapacity, tr.Len())
	assert.Equal(t, 5.0, tr.At(0).X)
	assert.Equal(t, float64(TrailCapacity+4), tr.At(TrailCapacity-1).X)

	pts := tr.Points()
	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i-1].X, pts[i].X)
	}

	tr.Clear()
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Points())
}
