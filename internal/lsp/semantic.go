package lsp

import (
	"specter/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

func collectSemanticTokens(file *ast.SpecFile) []SemanticToken {
	var tokens []SemanticToken

	if file == nil {
		return tokens
	}

	for _, item := range file.Items {
		tokens = append(tokens, walkSpecItem(item)...)
	}

	return tokens
}

func walkSpecItem(item ast.SpecItem) []SemanticToken {
	var tokens []SemanticToken

	if item == nil {
		return tokens
	}

	switch v := item.(type) {
	case *ast.DocComment, *ast.Comment:
		// Comments are already handled by the tokenizer
		return tokens
	case *ast.SpecBlock:
		tokens = append(tokens, walkSpecBlock(v)...)
	case *ast.StructDecl:
		tokens = append(tokens, walkStructDecl(v)...)
	case *ast.EnumDecl:
		tokens = append(tokens, walkEnumDecl(v)...)
	case *ast.BadSpecItem:
		// Skip bad items
		return tokens
	}

	return tokens
}

func walkSpecBlock(block *ast.SpecBlock) []SemanticToken {
	var tokens []SemanticToken

	if block == nil {
		return tokens
	}

	// Procedure name
	if block.Name.Value != "" {
		tokens = append(tokens, makeToken(block.Name.Pos, block.Name.EndPos, block.Name.Value, "function", 1)...)
	}

	// Parameters
	for _, param := range block.Params {
		if param != nil {
			tokens = append(tokens, makeToken(param.Name.Pos, param.Name.EndPos, param.Name.Value, "parameter", 0)...)
			tokens = append(tokens, walkTypeRef(param.Type)...)
		}
	}

	// Return type
	if block.Return != nil {
		tokens = append(tokens, walkTypeRef(block.Return)...)
	}

	// Clauses
	for _, clause := range block.Clauses {
		tokens = append(tokens, makeToken(clause.Pos, clause.Pos, string(clause.Kind), "keyword", 0)...)
		tokens = append(tokens, walkExpression(clause.Cond)...)
	}

	return tokens
}

func walkStructDecl(decl *ast.StructDecl) []SemanticToken {
	var tokens []SemanticToken

	if decl == nil {
		return tokens
	}

	if decl.Name.Value != "" {
		tokens = append(tokens, makeToken(decl.Name.Pos, decl.Name.EndPos, decl.Name.Value, "type", 1)...)
	}

	for _, field := range decl.Fields {
		tokens = append(tokens, makeToken(field.Name.Pos, field.Name.EndPos, field.Name.Value, "property", 1)...)
		tokens = append(tokens, walkTypeRef(field.Type)...)
	}

	return tokens
}

func walkEnumDecl(decl *ast.EnumDecl) []SemanticToken {
	var tokens []SemanticToken

	if decl == nil {
		return tokens
	}

	if decl.Name.Value != "" {
		tokens = append(tokens, makeToken(decl.Name.Pos, decl.Name.EndPos, decl.Name.Value, "type", 1)...)
	}

	for _, variant := range decl.Variants {
		tokens = append(tokens, makeToken(variant.Pos, variant.EndPos, variant.Value, "property", 1)...)
	}

	return tokens
}

func walkTypeRef(ref *ast.TypeRef) []SemanticToken {
	var tokens []SemanticToken

	if ref == nil {
		return tokens
	}

	if ref.Name != "" {
		tokens = append(tokens, makeToken(ref.Pos, ref.EndPos, ref.Name, "type", 0)...)
	}

	for _, elem := range ref.Elems {
		tokens = append(tokens, walkTypeRef(elem)...)
	}

	return tokens
}

func walkExpression(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.IdentExpr:
		// Variable references
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Name, "variable", 0)...)
	case *ast.CallExpr:
		tokens = append(tokens, makeToken(v.Callee.Pos, v.Callee.EndPos, v.Callee.Value, "function", 0)...)
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpression(arg)...)
		}
	case *ast.FieldAccessExpr:
		// Object being accessed
		tokens = append(tokens, walkExpression(v.Target)...)
	case *ast.BinaryExpr:
		tokens = append(tokens, walkExpression(v.Left)...)
		tokens = append(tokens, walkExpression(v.Right)...)
	case *ast.UnaryExpr:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.ParenExpr:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.CondExpr:
		tokens = append(tokens, walkExpression(v.Cond)...)
		tokens = append(tokens, walkExpression(v.Then)...)
		tokens = append(tokens, walkExpression(v.Else)...)
	case *ast.BlockExpr:
		tokens = append(tokens, walkExpression(v.Tail)...)
	case *ast.MatchExpr:
		tokens = append(tokens, walkExpression(v.Scrutinee)...)
		for _, arm := range v.Arms {
			if arm.Guard != nil {
				tokens = append(tokens, walkExpression(arm.Guard)...)
			}
			tokens = append(tokens, walkExpression(arm.Body)...)
		}
	case *ast.ForAllExpr:
		for _, quantVar := range v.Vars {
			tokens = append(tokens, makeToken(quantVar.Name.Pos, quantVar.Name.EndPos, quantVar.Name.Value, "variable", 1)...)
			tokens = append(tokens, walkTypeRef(quantVar.Type)...)
		}
		for _, group := range v.Triggers {
			for _, term := range group.Terms {
				tokens = append(tokens, walkExpression(term)...)
			}
		}
		tokens = append(tokens, walkExpression(v.Body)...)
	case *ast.LiteralExpr:
		// Literals don't need special semantic tokens
		return tokens
	}

	return tokens
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
