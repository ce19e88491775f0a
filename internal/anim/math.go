package anim

import "math"

// frac returns the fractional part of x with the sign of x, matching the
// truncation semantics the seed hashes were tuned against.
func frac(x float64) float64 {
	return x - math.Trunc(x)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
