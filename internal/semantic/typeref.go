package semantic

import (
	"fmt"

	"specter/internal/ast"
	"specter/internal/types"
)

// ResolveTypeRef resolves a surface type annotation against a declared
// type registry, without attaching diagnostics. Used where a resolver is
// needed outside the analysis walk, such as quantified-variable
// annotations at encoding time.
func ResolveTypeRef(reg *types.Registry, ref *ast.TypeRef) (types.Type, error) {
	if ref == nil {
		return nil, fmt.Errorf("missing type annotation")
	}

	var base types.Type
	if ref.Name != "" {
		resolved, ok := reg.Lookup(ref.Name)
		if !ok {
			return nil, fmt.Errorf("undefined type '%s'", ref.Name)
		}
		base = resolved
	} else {
		elems := make([]types.Type, 0, len(ref.Elems))
		for _, elem := range ref.Elems {
			elemType, err := ResolveTypeRef(reg, elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elemType)
		}
		base = &types.TupleType{Elems: elems}
	}

	if ref.Ref {
		return &types.RefType{Elem: base}, nil
	}
	return base, nil
}
