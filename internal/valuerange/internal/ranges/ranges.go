// Package ranges provides small generic helpers for sorting and merging
// closed integer intervals, shared by the normalization layer of
// internal/valuerange.
package ranges

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Interval is a closed [Lo, Hi] integer interval.
type Interval[T constraints.Integer] struct {
	Lo, Hi T
}

// Merge sorts ivs by lower bound and coalesces overlapping or adjacent
// intervals into the smallest equivalent set of disjoint intervals. maxVal
// is the largest representable T; it lets Merge recognize that an interval
// ending at maxVal has no successor, instead of wrapping around when
// checking adjacency.
func Merge[T constraints.Integer](ivs []Interval[T], maxVal T) []Interval[T] {
	if len(ivs) == 0 {
		return nil
	}
	sorted := make([]Interval[T], len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})

	out := make([]Interval[T], 0, len(sorted))
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		adjacent := cur.Hi != maxVal && cur.Hi+1 >= iv.Lo
		if iv.Lo <= cur.Hi || adjacent {
			if iv.Hi > cur.Hi {
				cur.Hi = iv.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	out = append(out, cur)
	return out
}
