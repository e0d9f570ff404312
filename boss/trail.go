package boss

import "github.com/jakecoffman/cp"

// TrailCapacity is how many recent dash positions are kept.
const TrailCapacity = 30

// Trail is a fixed-capacity ring of recent positions; pushing into a full
// trail evicts the oldest entry.
type Trail struct {
	buf   [TrailCapacity]cp.Vector
	start int
	n     int
}

func (t *Trail) Push(p cp.Vector) {
	if t.n < TrailCapacity {
		t.buf[(t.start+t.n)%TrailCapacity] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % TrailCapacity
}

func (t *Trail) Len() int { return t.n }

// At returns the i-th position, oldest first.
func (t *Trail) At(i int) cp.Vector {
	return t.buf[(t.start+i)%TrailCapacity]
}

func (t *Trail) Clear() {
	t.start = 0
	t.n = 0
}

// Points copies the trail out, oldest first.
func (t *Trail) Points() []cp.Vector {
	out := make([]cp.Vector, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
