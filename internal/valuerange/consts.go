package valuerange

import "math"

const (
	minInt64 = math.MinInt64
	maxInt64 = math.MaxInt64
)
