package jit

import (
	"math/big"
	"unsafe"

	"sentra/internal/valuerange"
)

// Value is a NaN-boxed value (same as vmregister.Value)
type Value uint64

// CompilationTier represents JIT compilation tiers
type CompilationTier int

const (
	TierInterpreted CompilationTier = iota
	TierQuickJIT
	TierOptimized
)

// Template types for loop optimization
type TemplateType int

const (
	TEMPLATE_UNKNOWN TemplateType = iota
	TEMPLATE_COUNTER
	TEMPLATE_SUM
	TEMPLATE_ACCUMULATE
)

// Profiler tracks function execution for JIT compilation decisions
type Profiler struct {
	callCounts map[*Function]int
}

// NewProfiler creates a new JIT profiler
func NewProfiler() *Profiler {
	return &Profiler{
		callCounts: make(map[*Function]int),
	}
}

// RecordCall records a function call and returns whether compilation should occur
func (p *Profiler) RecordCall(fn *Function) (bool, int) {
	p.callCounts[fn]++
	count := p.callCounts[fn]
	if count == 100 {
		return true, 1 // Tier 1 compilation
	}
	if count == 1000 {
		return true, 2 // Tier 2 compilation
	}
	return false, 0
}

// Compiler handles JIT compilation
type Compiler struct {
	profiler *Profiler
}

// NewCompiler creates a new JIT compiler
func NewCompiler(profiler *Profiler) *Compiler {
	return &Compiler{profiler: profiler}
}

// CompiledFunction represents a JIT-compiled function
type CompiledFunction struct {
	OptimizedCode []uint32
}

// Compile compiles a function at the specified tier
func (c *Compiler) Compile(fn *Function, tier CompilationTier) (*CompiledFunction, error) {
	// Stub: no actual compilation
	return &CompiledFunction{}, nil
}

// Function represents a function for JIT compilation
type Function struct {
	Name      string
	Arity     int
	Code      []uint32
	Constants []interface{}
}

// LoopAnalysis contains analysis results for a loop
type LoopAnalysis struct {
	MatchedTemplate TemplateType
	StartPC         int
	EndPC           int
	CounterReg      int
	LimitReg        int
	StepReg         int
	AccumReg        int

	// OverflowGuardFree reports whether the matched template's arithmetic
	// can run without a per-iteration overflow check. It only has meaning
	// when MatchedTemplate is TEMPLATE_SUM or TEMPLATE_ACCUMULATE; it is
	// always false for TEMPLATE_COUNTER and TEMPLATE_UNKNOWN.
	OverflowGuardFree bool
}

// AnalyzeLoop analyzes a loop for JIT compilation. Bytecode pattern
// matching for the supported loop shapes is not yet implemented, so this
// always reports TEMPLATE_UNKNOWN; the overflow-safety analysis below is
// the piece of the pipeline that a real pattern matcher would consult
// once it recognizes a TEMPLATE_SUM/TEMPLATE_ACCUMULATE candidate.
func AnalyzeLoop(code []uint32, consts []Value, startPC, endPC int) *LoopAnalysis {
	return &LoopAnalysis{
		MatchedTemplate: TEMPLATE_UNKNOWN,
		StartPC:         startPC,
		EndPC:           endPC,
	}
}

// CounterRangeSafeForTemplate decides whether a TEMPLATE_SUM or
// TEMPLATE_ACCUMULATE fast path may skip its per-iteration overflow guard
// for a loop whose counter is statically known to range over counter
// (width w). It never reaches into valuerange.S's internals — only the
// exported Cardinality/LargestPieceSpan/FitsInt64 operations — per the
// boundary the valuerange package documents for its static-analysis
// consumers.
//
// The guard is skippable only when the counter's largest contiguous piece
// is a small fraction of the type's full domain: a counter that can reach
// anywhere near the type's bit width leaves no headroom for the
// accumulator arithmetic the template performs without re-checking for
// wraparound on every iteration.
func CounterRangeSafeForTemplate(counter valuerange.S, w valuerange.Width) bool {
	if counter.IsEmpty() {
		return true
	}

	span := valuerange.LargestPieceSpan(counter)
	full := valuerange.Cardinality(valuerange.AllOf(w))

	// span*guardHeadroomDivisor <= full, i.e. span <= full/guardHeadroomDivisor,
	// computed with the multiplication on the bigger side so a small span
	// doesn't get rounded to zero by integer division.
	scaled := new(big.Int).Mul(span, big.NewInt(guardHeadroomDivisor))
	return scaled.Cmp(full) <= 0
}

// guardHeadroomDivisor is how small (relative to the full domain) a
// counter's span must be before TEMPLATE_SUM/TEMPLATE_ACCUMULATE can skip
// their overflow guard. 1024 means the counter may cover at most 1/1024th
// of the type's representable values.
const guardHeadroomDivisor = 1024

// ExecuteJITUnsafe executes a JIT-compiled loop
func ExecuteJITUnsafe(globals unsafe.Pointer, analysis *LoopAnalysis) bool {
	// Stub: always return false (fallback to interpreter)
	return false
}
