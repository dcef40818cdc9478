package utils

import (
	"math/rand"
	"time"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SeededRandom returns a deterministic float source for tests and replays
func SeededRandom(seed int64) func() float64 {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	return r.Float64
}

// PickIndex maps a [0,1) roll onto an index in [0, n).
// Out-of-range rolls are clamped so a misbehaving source cannot index past the end.
func PickIndex(roll float64, n int) int {
	if n <= 0 {
		return -1
	}
	idx := int(roll * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// CeilDays returns the number of started 24h periods in d; zero or negative durations yield 0
func CeilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	day := 24 * time.Hour
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}
