package valuerange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// String renders s in the canonical textual form consumers (and test
// fixtures) compare against: "{}" for Empty, "{v}" for Point, "[lo, hi]" for
// Range, and "[lo0, hi0] ∪ [lo1, hi1] ∪ ..." for RangeSet.
func (s S) String() string {
	switch s.kind {
	case shapeEmpty:
		return "{}"
	case shapePoint:
		return "{" + strconv.FormatInt(s.lo, 10) + "}"
	case shapeRange:
		return formatInterval(s.lo, s.hi)
	default:
		parts := make([]string, 0, len(s.ranges)/2)
		for i := 0; i < len(s.ranges); i += 2 {
			parts = append(parts, formatInterval(s.ranges[i], s.ranges[i+1]))
		}
		return strings.Join(parts, " ∪ ")
	}
}

func formatInterval(lo, hi int64) string {
	return "[" + strconv.FormatInt(lo, 10) + ", " + strconv.FormatInt(hi, 10) + "]"
}

// GoString is a diagnostic dump used by compiler and JIT trace output: the
// canonical string plus a human-readable cardinality hint, e.g.
// "[0, 999] (1,000 values)" or, for a set too large to hold in a uint64,
// "[0, 9223372036854775807] (~9.2 quintillion values)".
func (s S) GoString() string {
	if s.IsEmpty() {
		return s.String()
	}
	card := Cardinality(s)
	word := "values"
	if card.IsInt64() && card.Int64() == 1 {
		word = "value"
	}
	return fmt.Sprintf("%s (%s %s)", s.String(), humanize.BigComma(card), word)
}
