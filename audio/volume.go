package audio

import "math"

// Clamp limits v to [0,1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// StepVolume adds delta to v, rounds to hundredths and clamps. Rounding
// keeps repeated 0.1 steps from drifting off the bounds.
func StepVolume(v, delta float64) float64 {
	return Clamp(math.Round((v+delta)*100) / 100)
}
