package textutil

import "math"

// SafeDiv divides a by b, treating a zero denominator as 1.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		b = 1
	}
	return a / b
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Clamp01 bounds x to [0, 1].
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Round rounds half up, so 2.5 becomes 3 and -2.5 becomes -2.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// StdDev is the population standard deviation of values; empty input yields 0.
func StdDev(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	n := float64(len(values))
	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / n
	variance := 0.0
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	return math.Sqrt(variance / n)
}
