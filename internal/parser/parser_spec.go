package parser

import "specter/internal/ast"

func (p *Parser) parseSpecBlock(doc *ast.DocComment) *ast.SpecBlock {
	startToken := p.consume(SPEC, "expected 'spec' keyword")

	name, ok := p.consumeIdent("expected procedure name after 'spec'")
	if !ok {
		p.synchronize()
		return nil
	}

	params := p.parseSpecParameters()

	var returnType *ast.TypeRef
	if p.match(ARROW) {
		returnType = p.parseTypeRef()
	}

	p.consume(LEFT_BRACE, "expected '{' to start spec body")

	var clauses []*ast.Clause
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		p.skipComments()
		if p.check(RIGHT_BRACE) {
			break
		}

		clause := p.parseClause()
		if clause == nil {
			p.synchronize()
			continue
		}
		clauses = append(clauses, clause)
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close spec body")

	return &ast.SpecBlock{
		Pos:        p.makePos(startToken),
		EndPos:     p.makeEndPos(end),
		DocComment: doc,
		Name:       name,
		Params:     params,
		Return:     returnType,
		Clauses:    clauses,
	}
}

func (p *Parser) parseSpecParameters() []*ast.Param {
	p.consume(LEFT_PAREN, "expected '(' after procedure name")
	var params []*ast.Param

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		paramName, ok := p.consumeIdent("expected parameter name")
		if !ok {
			break
		}

		p.consume(COLON, "expected ':' after parameter name")
		paramType := p.parseTypeRef()

		params = append(params, &ast.Param{
			Pos:    paramName.Pos,
			EndPos: paramType.EndPos,
			Name:   paramName,
			Type:   paramType,
		})

		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameter list")
	return params
}

func (p *Parser) parseClause() *ast.Clause {
	var kind ast.ClauseKind
	switch p.peek().Type {
	case REQUIRES:
		kind = ast.ClauseRequires
	case ENSURES:
		kind = ast.ClauseEnsures
	case INVARIANT:
		kind = ast.ClauseInvariant
	default:
		p.errorAtCurrent("expected 'requires', 'ensures', or 'invariant'")
		return nil
	}
	startToken := p.advance()

	cond := p.parsePrattExpr(0)
	end := p.consume(SEMICOLON, "expected ';' after clause condition")

	return &ast.Clause{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(end),
		Kind:   kind,
		Cond:   cond,
	}
}

func (p *Parser) parseStructDecl(doc *ast.DocComment) *ast.StructDecl {
	startToken := p.consume(STRUCT, "expected 'struct' keyword")

	name, ok := p.consumeIdent("expected struct name")
	if !ok {
		p.synchronize()
		return nil
	}

	p.consume(LEFT_BRACE, "expected '{' after struct name")

	var fields []*ast.FieldDecl
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		p.skipComments()
		if p.check(RIGHT_BRACE) {
			break
		}

		fieldName, ok := p.consumeIdent("expected field name")
		if !ok {
			p.synchronize()
			continue
		}

		p.consume(COLON, "expected ':' after field name")
		fieldType := p.parseTypeRef()

		fields = append(fields, &ast.FieldDecl{
			Pos:    fieldName.Pos,
			EndPos: fieldType.EndPos,
			Name:   fieldName,
			Type:   fieldType,
		})

		if !p.match(COMMA) {
			break
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close struct declaration")

	return &ast.StructDecl{
		Pos:        p.makePos(startToken),
		EndPos:     p.makeEndPos(end),
		DocComment: doc,
		Name:       name,
		Fields:     fields,
	}
}

func (p *Parser) parseEnumDecl(doc *ast.DocComment) *ast.EnumDecl {
	startToken := p.consume(ENUM, "expected 'enum' keyword")

	name, ok := p.consumeIdent("expected enum name")
	if !ok {
		p.synchronize()
		return nil
	}

	p.consume(LEFT_BRACE, "expected '{' after enum name")

	var variants []ast.Ident
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		p.skipComments()
		if p.check(RIGHT_BRACE) {
			break
		}

		variant, ok := p.consumeIdent("expected variant name")
		if !ok {
			p.synchronize()
			continue
		}
		variants = append(variants, variant)

		if !p.match(COMMA) {
			break
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close enum declaration")

	return &ast.EnumDecl{
		Pos:        p.makePos(startToken),
		EndPos:     p.makeEndPos(end),
		DocComment: doc,
		Name:       name,
		Variants:   variants,
	}
}

// parseTypeRef parses a type annotation: a named type, a reference "&T",
// or a tuple "(T, U)"
func (p *Parser) parseTypeRef() *ast.TypeRef {
	ref := false
	var start Token
	if p.match(AMPERSAND) {
		ref = true
		start = p.previous()
	}

	if p.match(LEFT_PAREN) {
		open := p.previous()
		if !ref {
			start = open
		}

		var elems []*ast.TypeRef
		for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
			elems = append(elems, p.parseTypeRef())
			if !p.match(COMMA) {
				break
			}
		}
		end := p.consume(RIGHT_PAREN, "expected ')' to close tuple type")

		return &ast.TypeRef{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Ref:    ref,
			Elems:  elems,
		}
	}

	name := p.consume(IDENTIFIER, "expected type name")
	if !ref {
		start = name
	}

	return &ast.TypeRef{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(name),
		Ref:    ref,
		Name:   name.Lexeme,
	}
}
