package semantic

import (
	"fmt"

	"specter/internal/ast"
	"specter/internal/types"
)

// Slot is one canonical procedure-scope binding. The return value lives
// in slot "_0"; arguments occupy "_1" onward in declaration order.
type Slot struct {
	Name       string // canonical slot identifier, e.g. "_2"
	SourceName string // name as written in the signature
	Type       types.Type
}

// FuncContext is the immutable procedure-scope view the encoder consults
// for base-variable resolution: which names are bound, to which slots,
// at which types. Built once per spec block by the analyzer.
type FuncContext struct {
	Name   string
	Params []*Slot
	Return *Slot // nil when the procedure returns nothing
}

// NewFuncContext assigns canonical slots to a signature
func NewFuncContext(name string, params []*Slot, ret types.Type) *FuncContext {
	ctx := &FuncContext{Name: name, Params: params}
	if ret != nil {
		ctx.Return = &Slot{Name: "_0", SourceName: "result", Type: ret}
	}
	return ctx
}

// LookupParam finds the slot bound to a source-level parameter name
func (c *FuncContext) LookupParam(sourceName string) (*Slot, bool) {
	for _, slot := range c.Params {
		if slot.SourceName == sourceName {
			return slot, true
		}
	}
	return nil, false
}

// TypeInfo is the immutable side table mapping every type-checked
// surface expression to its static type. Passing it explicitly keeps the
// encoder a pure function of its inputs.
type TypeInfo struct {
	exprTypes map[ast.Expr]types.Type
}

func NewTypeInfo() *TypeInfo {
	return &TypeInfo{exprTypes: make(map[ast.Expr]types.Type)}
}

func (ti *TypeInfo) record(expr ast.Expr, typ types.Type) {
	ti.exprTypes[expr] = typ
}

// TypeOf returns the static type assigned to expr during analysis
func (ti *TypeInfo) TypeOf(expr ast.Expr) (types.Type, bool) {
	typ, ok := ti.exprTypes[expr]
	return typ, ok
}

// MustTypeOf returns the static type of expr, failing loudly when the
// expression was never analyzed. Encoder inputs are always analyzed
// first, so a miss is a pipeline ordering bug.
func (ti *TypeInfo) MustTypeOf(expr ast.Expr) (types.Type, error) {
	typ, ok := ti.exprTypes[expr]
	if !ok {
		return nil, fmt.Errorf("expression %q has no recorded static type", expr.String())
	}
	return typ, nil
}
