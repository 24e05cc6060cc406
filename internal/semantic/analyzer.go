package semantic

import (
	"fmt"

	"specter/internal/ast"
	"specter/internal/errors"
	"specter/internal/types"
)

// Analyzer type-checks a parsed specification file: it registers the
// declared types, builds one FuncContext per spec block, and assigns a
// static type to every clause expression. All diagnostics are collected;
// analysis never stops at the first problem.
type Analyzer struct {
	errors   []errors.CompilerError
	registry *types.Registry
	typeInfo *TypeInfo
	contexts map[*ast.SpecBlock]*FuncContext
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		registry: types.NewRegistry(),
		typeInfo: NewTypeInfo(),
		contexts: make(map[*ast.SpecBlock]*FuncContext),
	}
}

// Analyze walks the file and returns every diagnostic found
func (a *Analyzer) Analyze(file *ast.SpecFile) []errors.CompilerError {
	a.collectDeclarations(file)
	a.checkSpecBlocks(file)
	return a.errors
}

// GetErrors returns the diagnostics collected so far
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

// TypeInfo returns the expression-type side table built during analysis
func (a *Analyzer) TypeInfo() *TypeInfo {
	return a.typeInfo
}

// Registry returns the declared-type registry built during analysis
func (a *Analyzer) Registry() *types.Registry {
	return a.registry
}

// Context returns the procedure-scope context for one spec block
func (a *Analyzer) Context(block *ast.SpecBlock) *FuncContext {
	return a.contexts[block]
}

func (a *Analyzer) reportError(err errors.CompilerError) {
	a.errors = append(a.errors, err)
}

// collectDeclarations registers struct and enum declarations before any
// clause is checked, so declaration order does not matter
func (a *Analyzer) collectDeclarations(file *ast.SpecFile) {
	declared := make(map[string]ast.Position)

	for _, item := range file.Items {
		switch decl := item.(type) {
		case *ast.StructDecl:
			name := decl.Name.Value
			if first, dup := declared[name]; dup || types.IsBuiltinType(name) {
				a.reportError(errors.DuplicateDeclaration(name, decl.Name.Pos, first))
				continue
			}
			declared[name] = decl.Name.Pos
			a.registry.AddStruct(&types.StructType{Name: name})

		case *ast.EnumDecl:
			name := decl.Name.Value
			if first, dup := declared[name]; dup || types.IsBuiltinType(name) {
				a.reportError(errors.DuplicateDeclaration(name, decl.Name.Pos, first))
				continue
			}
			declared[name] = decl.Name.Pos

			variants := make([]string, 0, len(decl.Variants))
			for _, variant := range decl.Variants {
				variants = append(variants, variant.Value)
			}
			a.registry.AddEnum(&types.EnumType{Name: name, Variants: variants})
		}
	}

	// Second pass fills struct fields, so fields may reference any
	// declared type regardless of order
	for _, item := range file.Items {
		decl, ok := item.(*ast.StructDecl)
		if !ok {
			continue
		}
		structType, ok := a.registry.Struct(decl.Name.Value)
		if !ok {
			continue
		}

		seen := make(map[string]bool)
		for _, field := range decl.Fields {
			if seen[field.Name.Value] {
				a.reportError(errors.NewError(errors.ErrorDuplicateDeclaration,
					fmt.Sprintf("duplicate field '%s' in struct '%s'", field.Name.Value, decl.Name.Value),
					field.Name.Pos).Build())
				continue
			}
			seen[field.Name.Value] = true

			fieldType := a.resolveTypeRef(field.Type)
			if fieldType == nil {
				continue
			}
			structType.Fields = append(structType.Fields, types.StructField{
				Name: field.Name.Value,
				Type: fieldType,
			})
		}
	}
}

func (a *Analyzer) checkSpecBlocks(file *ast.SpecFile) {
	seen := make(map[string]ast.Position)

	for _, item := range file.Items {
		block, ok := item.(*ast.SpecBlock)
		if !ok {
			continue
		}

		name := block.Name.Value
		if first, dup := seen[name]; dup {
			a.reportError(errors.DuplicateDeclaration(name, block.Name.Pos, first))
		} else {
			seen[name] = block.Name.Pos
		}

		ctx := a.buildContext(block)
		a.contexts[block] = ctx
		a.checkClauses(block, ctx)
	}
}

// buildContext assigns canonical slots: "_0" for the return value, then
// "_1" onward for parameters in declaration order
func (a *Analyzer) buildContext(block *ast.SpecBlock) *FuncContext {
	params := make([]*Slot, 0, len(block.Params))
	scope := NewSymbolTable(nil)

	for i, param := range block.Params {
		if scope.LookupLocal(param.Name.Value) != nil {
			a.reportError(errors.DuplicateDeclaration(param.Name.Value, param.Name.Pos, param.Name.Pos))
		}

		paramType := a.resolveTypeRef(param.Type)
		if paramType == nil {
			paramType = &types.IntType{}
		}
		scope.Define(param.Name.Value, SymbolParameter, paramType, param.Name.Pos)

		params = append(params, &Slot{
			Name:       fmt.Sprintf("_%d", i+1),
			SourceName: param.Name.Value,
			Type:       paramType,
		})
	}

	var returnType types.Type
	if block.Return != nil {
		returnType = a.resolveTypeRef(block.Return)
	}

	return NewFuncContext(block.Name.Value, params, returnType)
}

func (a *Analyzer) checkClauses(block *ast.SpecBlock, ctx *FuncContext) {
	scope := NewSymbolTable(nil)
	for _, slot := range ctx.Params {
		scope.Define(slot.SourceName, SymbolParameter, slot.Type, block.Pos)
	}

	for _, clause := range block.Clauses {
		condType := a.checkExpr(clause.Cond, scope, ctx)
		if condType != nil && !types.IsBool(condType) {
			a.reportError(errors.NonBooleanClause(string(clause.Kind), condType.String(), clause.Cond.NodePos()))
		}
	}
}

// resolveTypeRef converts a surface type annotation into the semantic
// type model, reporting unknown names
func (a *Analyzer) resolveTypeRef(ref *ast.TypeRef) types.Type {
	if ref == nil {
		return nil
	}

	var base types.Type
	if ref.Name != "" {
		resolved, ok := a.registry.Lookup(ref.Name)
		if !ok {
			a.reportError(errors.UndefinedType(ref.Name, ref.Pos))
			return nil
		}
		base = resolved
	} else {
		elems := make([]types.Type, 0, len(ref.Elems))
		for _, elem := range ref.Elems {
			elemType := a.resolveTypeRef(elem)
			if elemType == nil {
				return nil
			}
			elems = append(elems, elemType)
		}
		base = &types.TupleType{Elems: elems}
	}

	if ref.Ref {
		return &types.RefType{Elem: base}
	}
	return base
}
