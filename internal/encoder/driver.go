package encoder

import (
	"specter/internal/ast"
	"specter/internal/semantic"
	"specter/internal/spec"
	"specter/internal/vir"
)

// ClauseResult is the outcome of encoding one clause: the assertion
// tree with its minted identifiers, and either the lowered IR or a
// structured failure. A failed clause never hides the others.
type ClauseResult struct {
	Clause    *ast.Clause
	SpecID    spec.SpecificationID
	Assertion *spec.Assertion
	Expr      vir.Expr
	Err       error
}

// EncodeBlock builds and encodes the assertion tree of every clause in
// one spec block. Each clause receives a fresh SpecificationID and its
// leaves are registered against reg for later rehydration.
func EncodeBlock(block *ast.SpecBlock, analyzer *semantic.Analyzer, reg *spec.Registry) []ClauseResult {
	ctx := analyzer.Context(block)
	enc := NewEncoder(analyzer.TypeInfo(), ctx, analyzer.Registry())

	results := make([]ClauseResult, 0, len(block.Clauses))
	for _, clause := range block.Clauses {
		specID := spec.NewSpecificationID()
		assertion := spec.NewBuilder(specID, reg).Build(clause.Cond)

		encoded, err := enc.EncodeAssertion(assertion)
		results = append(results, ClauseResult{
			Clause:    clause,
			SpecID:    specID,
			Assertion: assertion,
			Expr:      encoded,
			Err:       err,
		})
	}
	return results
}
