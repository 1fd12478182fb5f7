package valuerange

import (
	"go/constant"
	"go/types"
	"math"
	"testing"
)

func TestFromTypeFixedWidthKinds(t *testing.T) {
	tests := []struct {
		kind       types.BasicKind
		wantLo, wantHi int64
	}{
		{types.Int8, math.MinInt8, math.MaxInt8},
		{types.Int16, math.MinInt16, math.MaxInt16},
		{types.Int32, math.MinInt32, math.MaxInt32},
		{types.Int64, math.MinInt64, math.MaxInt64},
		{types.Uint8, 0, math.MaxUint8},
		{types.Uint16, 0, math.MaxUint16},
		{types.Uint32, 0, math.MaxUint32},
	}
	for _, tt := range tests {
		basic := types.Typ[tt.kind]
		got, err := FromType(basic)
		if err != nil {
			t.Fatalf("FromType(%v) returned error: %v", basic, err)
		}
		lo, _ := got.Min()
		hi, _ := got.Max()
		if lo != tt.wantLo || hi != tt.wantHi {
			t.Errorf("FromType(%v) = [%d,%d], want [%d,%d]", basic, lo, hi, tt.wantLo, tt.wantHi)
		}
	}
}

func TestFromTypeUnsupportedKind(t *testing.T) {
	_, err := FromType(types.Typ[types.Float64])
	if err != ErrUnsupported {
		t.Errorf("FromType(Float64) error = %v, want ErrUnsupported", err)
	}
}

func TestFromConstantExactInt(t *testing.T) {
	got, err := FromConstant(constant.MakeInt64(42))
	if err != nil {
		t.Fatal(err)
	}
	v, _ := got.Min()
	if v != 42 {
		t.Errorf("FromConstant(42) = %v, want {42}", got)
	}
}

func TestFromConstantRejectsNonInt(t *testing.T) {
	_, err := FromConstant(constant.MakeFloat64(3.14))
	if err != ErrUnsupported {
		t.Errorf("FromConstant(3.14) error = %v, want ErrUnsupported", err)
	}
}

type fakeDataFlowValue struct {
	lo, hi int64
	ok     bool
}

func (f fakeDataFlowValue) Range() (int64, int64, bool) { return f.lo, f.hi, f.ok }

func TestFromDataFlowValueKnownRange(t *testing.T) {
	got := FromDataFlowValue(fakeDataFlowValue{lo: 3, hi: 9, ok: true})
	lo, _ := got.Min()
	hi, _ := got.Max()
	if lo != 3 || hi != 9 {
		t.Errorf("FromDataFlowValue = [%d,%d], want [3,9]", lo, hi)
	}
}

func TestFromDataFlowValueUnknownIsAll(t *testing.T) {
	got := FromDataFlowValue(fakeDataFlowValue{ok: false})
	if !setsEqual(toSet(got), toSet(All())) {
		t.Error("FromDataFlowValue with ok=false should be All()")
	}
}

type fakeOwner struct{ anns []Annotation }

func (f fakeOwner) Annotations() []Annotation { return f.anns }

func TestFromAnnotationsRange(t *testing.T) {
	got := FromAnnotations(fakeOwner{anns: []Annotation{{Name: "Range", Args: []int64{5, 15}}}})
	lo, _ := got.Min()
	hi, _ := got.Max()
	if lo != 5 || hi != 15 {
		t.Errorf("FromAnnotations(Range(5,15)) = [%d,%d], want [5,15]", lo, hi)
	}
}

func TestFromAnnotationsNonNegativeAndMaxIntersect(t *testing.T) {
	got := FromAnnotations(fakeOwner{anns: []Annotation{
		{Name: "NonNegative"},
		{Name: "Max", Args: []int64{100}},
	}})
	lo, _ := got.Min()
	hi, _ := got.Max()
	if lo != 0 || hi != 100 {
		t.Errorf("FromAnnotations(NonNegative, Max(100)) = [%d,%d], want [0,100]", lo, hi)
	}
}

func TestFromAnnotationsUnrecognizedIsIgnored(t *testing.T) {
	got := FromAnnotations(fakeOwner{anns: []Annotation{{Name: "Bogus"}}})
	if !setsEqual(toSet(got), toSet(All())) {
		t.Error("an unrecognized annotation should leave the result as All()")
	}
}

func TestFromAnnotationsNoAnnotationsIsAll(t *testing.T) {
	got := FromAnnotations(fakeOwner{})
	if !setsEqual(toSet(got), toSet(All())) {
		t.Error("an owner with no annotations should yield All()")
	}
}

func TestFromAnnotationsPositiveExcludesZero(t *testing.T) {
	got := FromAnnotations(fakeOwner{anns: []Annotation{{Name: "Positive"}}})
	if got.Contains(0) {
		t.Error("Positive annotation should exclude 0")
	}
	if !got.Contains(1) {
		t.Error("Positive annotation should include 1")
	}
}
