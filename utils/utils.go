package utils

import (
	"math"
	"time"
)

func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// TicksFor returns how many ticks of length period cover d, rounding up.
func TicksFor(d, period time.Duration) int {
	if d <= 0 || period <= 0 {
		return 0
	}
	return int((d + period - 1) / period)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
