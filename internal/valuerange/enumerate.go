package valuerange

import "iter"

// Enumerate returns a range-over-func iterator yielding every value in s in
// ascending order. Callers that stop consuming early (break out of the
// range) are handled correctly: the walk never needs to materialize the
// whole set, so it is safe to call even on a set so large that collecting
// it into a slice would be impractical.
func (s S) Enumerate() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, iv := range s.intervals() {
			for v := iv.Lo; ; v++ {
				if !yield(v) {
					return
				}
				if v == iv.Hi {
					break
				}
			}
		}
	}
}
