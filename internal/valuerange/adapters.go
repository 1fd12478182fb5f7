package valuerange

import (
	"go/constant"
	"go/types"
	"math"
)

// FromType returns the full range of values t's underlying integer kind can
// hold, e.g. Int32 -> [-2^31, 2^31-1]. It returns ErrUnsupported (never
// panics) for any type that is not one of go/types' fixed-width integer
// kinds — floats, strings, structs, interfaces, and the platform-sized
// Int/Uint kinds, whose width this package cannot fix without knowing the
// target architecture.
//
// Modeled on ericlagergren-go-tools/go/vrp's minInt/maxInt dispatch over
// types.Basic.Kind(), the shape the wider Go static-analysis ecosystem uses
// for exactly this adapter.
func FromType(t types.Type) (S, error) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return S{}, ErrUnsupported
	}
	switch basic.Kind() {
	case types.Int8:
		return mustRange(math.MinInt8, math.MaxInt8), nil
	case types.Int16:
		return mustRange(math.MinInt16, math.MaxInt16), nil
	case types.Int32:
		return mustRange(math.MinInt32, math.MaxInt32), nil
	case types.Int64, types.Int:
		return mustRange(math.MinInt64, math.MaxInt64), nil
	case types.Uint8:
		return mustRange(0, math.MaxUint8), nil
	case types.Uint16:
		return mustRange(0, math.MaxUint16), nil
	case types.Uint32:
		return mustRange(0, math.MaxUint32), nil
	case types.Uint64, types.Uint, types.Uintptr:
		// The true upper bound, 2^64-1, does not fit a signed int64; this
		// domain represents subsets of the signed 64-bit integers (spec.md
		// §1), so an unsigned 64-bit type is approximated by the widest
		// range this domain can express.
		return mustRange(0, math.MaxInt64), nil
	default:
		return S{}, ErrUnsupported
	}
}

// FromConstant seeds a Point from a boxed go/constant.Value. It returns
// ErrUnsupported for anything that is not (or cannot be exactly
// represented as) a constant.Int.
func FromConstant(c constant.Value) (S, error) {
	if c.Kind() != constant.Int {
		return S{}, ErrUnsupported
	}
	v, exact := constant.Int64Val(c)
	if !exact {
		return S{}, ErrUnsupported
	}
	return Point(v), nil
}

// DataFlowValue is the narrow interface a host data-flow framework's own
// fact/variable type implements to be converted into an S, without this
// package ever importing that framework's types.
type DataFlowValue interface {
	// Range reports the known [lo, hi] bounds of the value, and ok=false if
	// nothing is known.
	Range() (lo, hi int64, ok bool)
}

// FromDataFlowValue adapts a host framework's fact value into an S.
func FromDataFlowValue(v DataFlowValue) S {
	lo, hi, ok := v.Range()
	if !ok {
		return All()
	}
	return mustRange(lo, hi)
}

// Annotation is an opaque, host-supplied key/argument pair recognized by
// FromAnnotations' vocabulary table.
type Annotation struct {
	Name string
	Args []int64
}

// AnnotationOwner is implemented by whatever the host framework attaches
// annotations to (a parameter, a field, a return value).
type AnnotationOwner interface {
	Annotations() []Annotation
}

// FromAnnotations builds a value from the annotations attached to owner,
// recognizing the following vocabulary (unrecognized names are ignored,
// not errors, since a host may attach annotations this package has no
// opinion on):
//
//	Range(lo, hi)     -> [lo, hi]
//	Min(lo)           -> [lo, MaxInt64]
//	Max(hi)           -> [MinInt64, hi]
//	GTENegativeOne    -> [-1, MaxInt64]
//	NonNegative       -> [0, MaxInt64]
//	Positive          -> [1, MaxInt64]
//
// The intersection of every recognized annotation is returned; an owner
// with no recognized annotations yields All() (no information).
func FromAnnotations(owner AnnotationOwner) S {
	result := All()
	for _, a := range owner.Annotations() {
		if piece, ok := annotationPiece(a); ok {
			result = result.Intersect(piece)
		}
	}
	return result
}

func annotationPiece(a Annotation) (S, bool) {
	switch a.Name {
	case "Range":
		if len(a.Args) != 2 {
			return S{}, false
		}
		return mustRange(a.Args[0], a.Args[1]), true
	case "Min":
		if len(a.Args) != 1 {
			return S{}, false
		}
		return mustRange(a.Args[0], maxInt64), true
	case "Max":
		if len(a.Args) != 1 {
			return S{}, false
		}
		return mustRange(minInt64, a.Args[0]), true
	case "GTENegativeOne":
		return mustRange(-1, maxInt64), true
	case "NonNegative":
		return mustRange(0, maxInt64), true
	case "Positive":
		return mustRange(1, maxInt64), true
	default:
		return S{}, false
	}
}
