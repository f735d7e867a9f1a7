package plan

import (
	"fmt"
	"strings"

	"stringgen/internal/emit"
)

// IndexKind distinguishes the two forms an index expression can take.
type IndexKind int

const (
	// BatchIndex is a macro call covering one weight-sized block of
	// positions. It expands to 16^Exp individual lookups at the
	// consumer's preprocessing stage.
	BatchIndex IndexKind = iota
	// DirectIndex is an explicit single-position lookup.
	DirectIndex
)

// IndexExpr is one entry of the string-indexing decomposition.
type IndexExpr struct {
	Kind  IndexKind
	Exp   int // weight exponent for batches (positions covered = 16^Exp)
	Index int // batch ordinal, or the position for a direct lookup
}

// Coverage returns how many character positions the expression covers.
func (e IndexExpr) Coverage() int {
	if e.Kind == DirectIndex {
		return 1
	}
	return 1 << (4 * e.Exp)
}

// Decompose splits a length limit into an ordered sequence of index
// expressions covering positions 0..lengthLimit-1. Weights 16^3, 16^2
// and 16^1 are consumed in order, largest first; whatever remains
// (fewer than 16 positions) becomes direct lookups. This bounds the
// macro-expansion nesting of the generated code regardless of the
// length limit.
func Decompose(lengthLimit int) []IndexExpr {
	left := lengthLimit
	var exprs []IndexExpr
	for exp := 3; exp >= 1; exp-- {
		weight := 1 << (4 * exp)
		batch := left / weight
		left = left % weight
		for i := 0; i < batch; i++ {
			exprs = append(exprs, IndexExpr{Kind: BatchIndex, Exp: exp, Index: i})
		}
	}
	for i := 0; i < left; i++ {
		exprs = append(exprs, IndexExpr{Kind: DirectIndex, Index: i})
	}
	return exprs
}

// StringIndexing renders the decomposition of lengthLimit as the
// comma-separated argument list of the generated STRING macro. Batch
// indices are uppercase hexadecimal, direct positions decimal.
func StringIndexing(lengthLimit int) string {
	exprs := Decompose(lengthLimit)
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		if e.Kind == BatchIndex {
			parts = append(parts, fmt.Sprintf(
				"%s((s), %X)",
				emit.MacroName(fmt.Sprintf("STRING_AT%d", e.Exp)),
				e.Index,
			))
		} else {
			parts = append(parts, fmt.Sprintf(
				"::boost::metaparse::v%d::impl::string_at<%d>((s), %d)",
				emit.Version, lengthLimit, e.Index,
			))
		}
	}
	return strings.Join(parts, ", ")
}
