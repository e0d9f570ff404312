package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TicksPerSecond is the fixed simulation rate every frame counter assumes.
	TicksPerSecond = 60
)

// Diagonal returns the screen diagonal truncated to whole pixels.
func Diagonal(w, h int) float64 {
	return float64(int(math.Sqrt(float64(w*w + h*h))))
}

// WrapAngle keeps an accumulating angle inside [0, 2π).
func WrapAngle(a float64) float64 {
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	for a < 0 {
		a += 2 * math.Pi
	}
	return a
}
