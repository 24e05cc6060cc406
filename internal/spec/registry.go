package spec

// Registry maps (SpecificationID, ExpressionID) pairs back to their leaf
// expressions. A wire-decoded skeleton carries identifiers only; the
// receiving stage resolves them here to recover full expressions.
//
// The registry is populated while assertion trees are built and is
// treated as immutable afterwards, so concurrent readers need no
// locking.
type Registry struct {
	leaves map[SpecificationID]map[ExpressionID]*LeafExpression
}

// NewRegistry creates an empty leaf-expression registry
func NewRegistry() *Registry {
	return &Registry{
		leaves: make(map[SpecificationID]map[ExpressionID]*LeafExpression),
	}
}

// Register records one leaf expression under its identifier pair
func (r *Registry) Register(leaf LeafExpression) {
	perSpec, ok := r.leaves[leaf.SpecID]
	if !ok {
		perSpec = make(map[ExpressionID]*LeafExpression)
		r.leaves[leaf.SpecID] = perSpec
	}
	stored := leaf
	perSpec[leaf.ExprID] = &stored
}

// Resolve returns the leaf registered under the identifier pair
func (r *Registry) Resolve(specID SpecificationID, exprID ExpressionID) (*LeafExpression, bool) {
	perSpec, ok := r.leaves[specID]
	if !ok {
		return nil, false
	}
	leaf, ok := perSpec[exprID]
	return leaf, ok
}

// Count returns the number of leaves registered for one specification
func (r *Registry) Count(specID SpecificationID) int {
	return len(r.leaves[specID])
}
