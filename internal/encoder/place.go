package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"specter/internal/ast"
	"specter/internal/types"
	"specter/internal/vir"
)

// Place resolution. A path-shaped expression (variable, field access,
// dereference) becomes a typed place: a base slot plus a chain of
// canonical accessors. Paths and value expressions are disjoint; any
// other shape in path position is unsupported syntax.

// scope carries the quantified variables bound by enclosing quantifiers.
// Procedure bindings live in the function context and are consulted
// first; a quantified variable sharing a parameter's name is shadowed by
// the parameter.
type scope struct {
	parent *scope
	vars   map[string]boundVar
}

type boundVar struct {
	local vir.LocalVar
	typ   types.Type
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]boundVar)}
}

func (s *scope) bind(name string, local vir.LocalVar, typ types.Type) {
	s.vars[name] = boundVar{local: local, typ: typ}
}

func (s *scope) lookup(name string) (boundVar, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return boundVar{}, false
}

// resolveVariable maps a path base name to its canonical slot. "result"
// always denotes the return slot and never a user binding; other names
// check procedure bindings before quantified variables.
func (e *Encoder) resolveVariable(name string, pos ast.Position, sc *scope) (vir.Place, types.Type, error) {
	if name == "result" {
		if e.ctx.Return == nil {
			return nil, nil, unresolvedBinding(pos, name)
		}
		return slotPlace(e.ctx.Return.Name, e.ctx.Return.Type), e.ctx.Return.Type, nil
	}

	if slot, ok := e.ctx.LookupParam(name); ok {
		return slotPlace(slot.Name, slot.Type), slot.Type, nil
	}

	if bound, ok := sc.lookup(name); ok {
		return vir.NewPlace(bound.local), bound.typ, nil
	}

	return nil, nil, unresolvedBinding(pos, name)
}

// slotPlace builds the place for a procedure slot. Slots always denote
// heap locations, so the base variable is reference-typed even when the
// declared type is primitive; reading the value takes one more accessor.
func slotPlace(slotName string, typ types.Type) vir.Place {
	return vir.NewPlace(vir.NewLocalVar(slotName, &vir.RefType{Name: predicateName(typ)}))
}

// encodePlace resolves a path-shaped expression into a place plus the
// semantic type of the location it denotes
func (e *Encoder) encodePlace(expr ast.Expr, sc *scope) (vir.Place, types.Type, error) {
	switch path := expr.(type) {
	case *ast.ParenExpr:
		return e.encodePlace(path.Value, sc)

	case *ast.IdentExpr:
		return e.resolveVariable(path.Name, path.Pos, sc)

	case *ast.FieldAccessExpr:
		return e.encodeFieldAccess(path, sc)

	case *ast.UnaryExpr:
		if path.Op != "*" {
			break
		}
		place, typ, err := e.encodePlace(path.Value, sc)
		if err != nil {
			return nil, nil, err
		}
		return e.derefPlace(place, typ, path.Pos)
	}

	return nil, nil, unsupportedSyntax(expr.NodePos(),
		"expected a variable, field access, or dereference, found '%s'", expr.String())
}

func (e *Encoder) encodeFieldAccess(expr *ast.FieldAccessExpr, sc *scope) (vir.Place, types.Type, error) {
	place, typ, err := e.encodePlace(expr.Target, sc)
	if err != nil {
		return nil, nil, err
	}

	// One implicit dereference layer, matching field access on the
	// described program's side
	if types.IsRef(typ) {
		place, typ, err = e.derefPlace(place, typ, expr.Pos)
		if err != nil {
			return nil, nil, err
		}
	}

	switch base := typ.(type) {
	case *types.StructType:
		field, ok := base.Field(expr.Field)
		if !ok {
			return nil, nil, unsupportedSyntax(expr.Pos,
				"type '%s' has no field '%s'", base.Name, expr.Field)
		}
		accessor := vir.NewField(field.Name, &vir.RefType{Name: predicateName(field.Type)})
		return place.Access(accessor), field.Type, nil

	case *types.TupleType:
		index, convErr := strconv.Atoi(expr.Field)
		if convErr != nil || index < 0 || index >= len(base.Elems) {
			return nil, nil, unsupportedSyntax(expr.Pos,
				"tuple '%s' has no element '%s'", base.String(), expr.Field)
		}
		elemType := base.Elems[index]
		accessor := vir.NewField(fmt.Sprintf("tuple_%d", index), &vir.RefType{Name: predicateName(elemType)})
		return place.Access(accessor), elemType, nil
	}

	return nil, nil, unsupportedSyntax(expr.Pos,
		"cannot project a field out of type '%s'", typ.String())
}

// derefPlace appends the fixed dereferenced-value accessor
func (e *Encoder) derefPlace(place vir.Place, typ types.Type, pos ast.Position) (vir.Place, types.Type, error) {
	ref, ok := typ.(*types.RefType)
	if !ok {
		return nil, nil, typeMismatch(pos, "cannot dereference non-reference type '%s'", typ.String())
	}
	accessor := vir.NewField("val_ref", &vir.RefType{Name: predicateName(ref.Elem)})
	return place.Access(accessor), ref.Elem, nil
}

// encodePlaceValue resolves a path and reads its value: a place whose
// final type is primitive takes exactly one matching value accessor;
// aggregates stay references; an already-raw place (a quantified
// variable) is used directly.
func (e *Encoder) encodePlaceValue(expr ast.Expr, sc *scope) (vir.Expr, error) {
	place, typ, err := e.encodePlace(expr, sc)
	if err != nil {
		return nil, err
	}

	if !place.Type().IsRef() {
		return vir.NewPlaceExpr(place), nil
	}

	switch typ.(type) {
	case *types.IntType:
		return vir.NewPlaceExpr(place.Access(vir.NewField("val_int", &vir.IntType{}))), nil
	case *types.BoolType:
		return vir.NewPlaceExpr(place.Access(vir.NewField("val_bool", &vir.BoolType{}))), nil
	}
	return vir.NewPlaceExpr(place), nil
}

// predicateName produces the canonical name of the memory predicate
// describing a value of the given type
func predicateName(typ types.Type) string {
	switch t := typ.(type) {
	case *types.BoolType:
		return "bool"
	case *types.IntType:
		return t.String()
	case *types.StructType:
		return t.Name
	case *types.EnumType:
		return t.Name
	case *types.RefType:
		return "ref$" + predicateName(t.Elem)
	case *types.TupleType:
		parts := make([]string, len(t.Elems))
		for i, elem := range t.Elems {
			parts[i] = predicateName(elem)
		}
		return fmt.Sprintf("tuple%d$%s", len(t.Elems), strings.Join(parts, "$"))
	}
	return "unknown"
}
