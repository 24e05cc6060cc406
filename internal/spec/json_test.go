package spec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafAssertion(specID SpecificationID, exprID ExpressionID) *Assertion {
	return &Assertion{Kind: &ExprKind{Expr: LeafExpression{
		SpecID: specID,
		ExprID: exprID,
	}}}
}

func TestWireRoundTripLeaf(t *testing.T) {
	specID := NewSpecificationID()
	original := leafAssertion(specID, 7)

	encoded, err := ToJSONString(original)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(`{"kind":{"Expr":{"spec_id":"%s","expr_id":7}}}`, specID), encoded)

	decoded, err := FromJSONString(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestWireRoundTripConjunction(t *testing.T) {
	specID := NewSpecificationID()
	original := &Assertion{Kind: &AndKind{Assertions: []*Assertion{
		leafAssertion(specID, 0),
		leafAssertion(specID, 1),
		leafAssertion(specID, 2),
	}}}

	encoded, err := ToJSONString(original)
	require.NoError(t, err)

	decoded, err := FromJSONString(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestWireRoundTripImplication(t *testing.T) {
	specID := NewSpecificationID()
	original := &Assertion{Kind: &ImpliesKind{
		Lhs: leafAssertion(specID, 0),
		Rhs: &Assertion{Kind: &AndKind{Assertions: []*Assertion{
			leafAssertion(specID, 1),
			leafAssertion(specID, 2),
		}}},
	}}

	encoded, err := ToJSONString(original)
	require.NoError(t, err)

	decoded, err := FromJSONString(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestQuantifierIsNotWireRepresentable(t *testing.T) {
	original := &Assertion{Kind: &ForAllKind{}}

	_, err := ToJSONString(original)
	require.Error(t, err)

	var serializationErr *SerializationError
	assert.True(t, errors.As(err, &serializationErr))
}

func TestMalformedWireInput(t *testing.T) {
	specID := NewSpecificationID()

	inputs := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"missing kind", `{}`},
		{"no variant", `{"kind":{}}`},
		{"two variants", fmt.Sprintf(`{"kind":{"Expr":{"spec_id":"%s","expr_id":0},"And":[]}}`, specID)},
		{"implies arity", fmt.Sprintf(`{"kind":{"Implies":[{"kind":{"Expr":{"spec_id":"%s","expr_id":0}}}]}}`, specID)},
		{"invalid spec id", `{"kind":{"Expr":{"spec_id":"not-a-uuid","expr_id":0}}}`},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := FromJSONString(tt.data)
			require.Error(t, err)
			assert.Nil(t, decoded, "malformed input must not produce a partial value")

			var serializationErr *SerializationError
			assert.True(t, errors.As(err, &serializationErr), "error should be a SerializationError, got %v", err)
		})
	}
}

func TestResolveLeavesRehydratesExpressions(t *testing.T) {
	reg := NewRegistry()
	specID := NewSpecificationID()

	cond := parseCond(t, "x > 0 && y > 0")
	original := NewBuilder(specID, reg).Build(cond)

	encoded, err := ToJSONString(original)
	require.NoError(t, err)

	decoded, err := FromJSONString(encoded)
	require.NoError(t, err)

	and, ok := decoded.Kind.(*AndKind)
	require.True(t, ok)
	for _, child := range and.Assertions {
		leaf := child.Kind.(*ExprKind)
		assert.Nil(t, leaf.Expr.Expr, "decoded skeleton carries identifiers only")
	}

	require.NoError(t, ResolveLeaves(decoded, reg))
	for i, child := range and.Assertions {
		leaf := child.Kind.(*ExprKind)
		registered, ok := reg.Resolve(specID, ExpressionID(i))
		require.True(t, ok)
		assert.Same(t, registered.Expr, leaf.Expr.Expr)
	}
}

func TestResolveLeavesFailsOnUnknownIdentifiers(t *testing.T) {
	reg := NewRegistry()
	decoded := leafAssertion(NewSpecificationID(), 99)

	err := ResolveLeaves(decoded, reg)
	require.Error(t, err)

	var serializationErr *SerializationError
	assert.True(t, errors.As(err, &serializationErr))
}
