// internal/compiler/contracts.go
package compiler

import (
	"regexp"
	"strconv"
	"strings"

	"sentra/internal/valuerange"
)

// Contracts holds the parameter annotations collected from a source
// file's doc comments, keyed by "functionName.paramName". The lexer
// discards comment text entirely (it is not part of the token stream
// that feeds the parser), so this is a separate, narrow pass over the
// raw source rather than anything riding on the existing scanner — the
// doc-comment convention it recognizes has no other representation in
// the compiler today.
//
// Convention: a contiguous run of `//` comment lines directly above a
// `fn name(...)` declaration may contain lines of the form
//
//	// @ParamName: Range(lo, hi)
//	// @ParamName: Min(lo)
//	// @ParamName: Max(hi)
//	// @ParamName: NonNegative
//	// @ParamName: Positive
//	// @ParamName: GTENegativeOne
//
// one annotation per line, any number of lines per parameter. Anything
// that doesn't match is ignored, not an error — this is a best-effort
// hint, not a contract language.
type Contracts struct {
	params map[string][]valuerange.Annotation
}

var (
	fnDeclRe  = regexp.MustCompile(`^\s*fn\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	commentRe = regexp.MustCompile(`^\s*//\s*(.*)$`)
	paramAnnRe = regexp.MustCompile(`^@([A-Za-z_][A-Za-z0-9_]*)\s*:\s*([A-Za-z]+)\s*(?:\(([^)]*)\))?\s*$`)
)

// ParseContracts scans source for the doc-comment convention above and
// returns the collected Contracts. Parsing never fails: unrecognized or
// malformed lines are simply skipped.
func ParseContracts(source string) *Contracts {
	c := &Contracts{params: make(map[string][]valuerange.Annotation)}
	lines := strings.Split(source, "\n")

	var pending []string
	for _, line := range lines {
		if m := commentRe.FindStringSubmatch(line); m != nil {
			pending = append(pending, m[1])
			continue
		}
		if m := fnDeclRe.FindStringSubmatch(line); m != nil {
			fnName := m[1]
			for _, cmt := range pending {
				if am := paramAnnRe.FindStringSubmatch(cmt); am != nil {
					param, kind, argStr := am[1], am[2], am[3]
					if ann, ok := buildAnnotation(kind, argStr); ok {
						key := fnName + "." + param
						c.params[key] = append(c.params[key], ann)
					}
				}
			}
		}
		// Any non-comment, non-fn-decl line (including a blank line
		// between doc comment and declaration) breaks the run.
		if commentRe.FindStringSubmatch(line) == nil {
			pending = nil
		}
	}
	return c
}

func buildAnnotation(kind, argStr string) (valuerange.Annotation, bool) {
	var args []int64
	if argStr != "" {
		for _, part := range strings.Split(argStr, ",") {
			n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return valuerange.Annotation{}, false
			}
			args = append(args, n)
		}
	}
	switch kind {
	case "Range", "Min", "Max", "GTENegativeOne", "NonNegative", "Positive":
		return valuerange.Annotation{Name: kind, Args: args}, true
	default:
		return valuerange.Annotation{}, false
	}
}

// ParamOwner adapts one function parameter's collected annotations into
// a valuerange.AnnotationOwner, the concrete type internal/valuerange's
// FromAnnotations adapter expects.
type ParamOwner struct {
	annotations []valuerange.Annotation
}

// Annotations implements valuerange.AnnotationOwner.
func (p *ParamOwner) Annotations() []valuerange.Annotation {
	return p.annotations
}

// Param returns the AnnotationOwner for fnName's paramName, or an owner
// with no annotations (valuerange.FromAnnotations then yields All()) if
// none were declared.
func (c *Contracts) Param(fnName, paramName string) *ParamOwner {
	return &ParamOwner{annotations: c.params[fnName+"."+paramName]}
}

// Range returns the statically known value range for fnName's paramName
// per its doc-comment contract.
func (c *Contracts) Range(fnName, paramName string) valuerange.S {
	return valuerange.FromAnnotations(c.Param(fnName, paramName))
}
