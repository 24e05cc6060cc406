package parser

import (
	"specter/internal/ast"
)

var binaryPrecedence = map[string]int{
	"==>": 1,
	"||":  2,
	"&&":  3,
	"|":   4,
	"^":   5,
	"&":   6,
	"==":  7, "!=": 7,
	"<": 8, "<=": 8, ">": 8, ">=": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Lexeme]
		if !ok || prec < minPrec {
			break
		}

		p.advance()

		// Implication is right-associative; everything else binds left
		nextPrec := prec + 1
		if tok.Type == IMPLIES {
			nextPrec = prec
		}
		right := p.parsePrattExpr(nextPrec)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(MINUS, BANG, STAR) {
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for p.match(DOT) {
		// Tuple projections use a numeric field
		if !p.check(IDENTIFIER) && !p.check(NUMBER) {
			p.errorAtCurrent("expected field name or tuple index after '.'")
			return expr
		}
		field := p.advance()
		expr = &ast.FieldAccessExpr{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(field),
			Target: expr,
			Field:  field.Lexeme,
		}
	}

	return expr
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	if p.match(NUMBER, HEX_NUMBER) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.IntLit,
			Value:  tok.Lexeme,
		}
	}

	if p.match(TRUE, FALSE) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.BoolLit,
			Value:  tok.Lexeme,
		}
	}

	if p.match(IDENTIFIER) {
		start := p.previous()
		ident := p.makeIdent(start)

		if p.check(LEFT_PAREN) {
			p.advance()
			args := p.parseExprList()
			rparen := p.consume(RIGHT_PAREN, "expected ')' after arguments")
			return &ast.CallExpr{
				Pos:    ident.Pos,
				EndPos: p.makeEndPos(rparen),
				Callee: ident,
				Args:   args,
			}
		}

		return &ast.IdentExpr{
			Pos:    ident.Pos,
			EndPos: ident.EndPos,
			Name:   ident.Value,
		}
	}

	if p.match(LEFT_PAREN) {
		l := p.previous()
		value := p.parsePrattExpr(0)
		r := p.consume(RIGHT_PAREN, "expected ')'")
		return &ast.ParenExpr{
			Pos:    p.makePos(l),
			EndPos: p.makeEndPos(r),
			Value:  value,
		}
	}

	if p.check(IF) {
		return p.parseCondExpr()
	}

	if p.check(MATCH) {
		return p.parseMatchExpr()
	}

	if p.check(FORALL) {
		return p.parseForAllExpr()
	}

	tok := p.peek()
	p.errorAtCurrent("unexpected token in expression")
	bad := &ast.BadExpr{
		Bad: ast.BadNode{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(tok),
			Message: "unexpected token in expression: " + tok.Lexeme,
		},
	}
	p.advance()
	return bad
}

func (p *Parser) parseExprList() []ast.Expr {
	var args []ast.Expr
	if p.check(RIGHT_PAREN) {
		return args
	}

	for {
		args = append(args, p.parsePrattExpr(0))
		if !p.match(COMMA) {
			break
		}
	}

	return args
}

// parseBlockExpr parses a braced body; only the trivial form with one
// tail expression is representable
func (p *Parser) parseBlockExpr() *ast.BlockExpr {
	start := p.consume(LEFT_BRACE, "expected '{'")
	tail := p.parsePrattExpr(0)
	end := p.consume(RIGHT_BRACE, "expected '}'")

	return &ast.BlockExpr{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Tail:   tail,
	}
}

// parseCondExpr parses "if cond { then } else { else }"; the else
// branch is mandatory in assertion position
func (p *Parser) parseCondExpr() ast.Expr {
	start := p.consume(IF, "expected 'if'")
	cond := p.parsePrattExpr(0)
	then := p.parseBlockExpr()

	p.consume(ELSE, "expected 'else': conditionals in assertions need both branches")

	var els ast.Expr
	if p.check(IF) {
		els = p.parseCondExpr()
	} else {
		els = p.parseBlockExpr()
	}

	return &ast.CondExpr{
		Pos:    p.makePos(start),
		EndPos: els.NodeEndPos(),
		Cond:   cond,
		Then:   then,
		Else:   els,
	}
}

func (p *Parser) parseMatchExpr() ast.Expr {
	start := p.consume(MATCH, "expected 'match'")
	scrutinee := p.parsePrattExpr(0)
	p.consume(LEFT_BRACE, "expected '{' after match scrutinee")

	var arms []*ast.MatchArm
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		p.skipComments()
		if p.check(RIGHT_BRACE) {
			break
		}

		arm := p.parseMatchArm()
		if arm == nil {
			p.synchronize()
			continue
		}
		arms = append(arms, arm)

		if !p.match(COMMA) {
			break
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close match expression")

	return &ast.MatchExpr{
		Pos:       p.makePos(start),
		EndPos:    p.makeEndPos(end),
		Scrutinee: scrutinee,
		Arms:      arms,
	}
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	first := p.parsePattern()
	if first == nil {
		return nil
	}

	patterns := []ast.Pattern{first}
	for p.match(PIPE) {
		next := p.parsePattern()
		if next == nil {
			return nil
		}
		patterns = append(patterns, next)
	}

	var guard ast.Expr
	if p.match(IF) {
		guard = p.parsePrattExpr(0)
	}

	p.consume(FAT_ARROW, "expected '=>' after match pattern")
	body := p.parsePrattExpr(0)

	return &ast.MatchArm{
		Pos:      first.NodePos(),
		EndPos:   body.NodeEndPos(),
		Patterns: patterns,
		Guard:    guard,
		Body:     body,
	}
}

func (p *Parser) parsePattern() ast.Pattern {
	if p.match(NUMBER, HEX_NUMBER, TRUE, FALSE) {
		tok := p.previous()
		kind := ast.IntLit
		if tok.Type == TRUE || tok.Type == FALSE {
			kind = ast.BoolLit
		}
		return &ast.LiteralPattern{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value: &ast.LiteralExpr{
				Pos:    p.makePos(tok),
				EndPos: p.makeEndPos(tok),
				Kind:   kind,
				Value:  tok.Lexeme,
			},
		}
	}

	if p.match(MINUS) {
		minus := p.previous()
		num := p.consume(NUMBER, "expected number after '-' in pattern")
		return &ast.LiteralPattern{
			Pos:    p.makePos(minus),
			EndPos: p.makeEndPos(num),
			Value: &ast.LiteralExpr{
				Pos:    p.makePos(minus),
				EndPos: p.makeEndPos(num),
				Kind:   ast.IntLit,
				Value:  "-" + num.Lexeme,
			},
		}
	}

	if p.match(LEFT_PAREN) {
		start := p.previous()
		var elems []ast.Pattern
		for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
			elem := p.parsePattern()
			if elem == nil {
				return nil
			}
			elems = append(elems, elem)
			if !p.match(COMMA) {
				break
			}
		}
		end := p.consume(RIGHT_PAREN, "expected ')' to close tuple pattern")
		return &ast.TuplePattern{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Elems:  elems,
		}
	}

	if p.match(IDENTIFIER) {
		tok := p.previous()

		if tok.Lexeme == "_" {
			return &ast.WildcardPattern{
				Pos:    p.makePos(tok),
				EndPos: p.makeEndPos(tok),
			}
		}

		if p.match(DOUBLE_COLON) {
			variant, ok := p.consumeIdent("expected variant name after '::'")
			if !ok {
				return nil
			}

			parens := false
			var elems []ast.Pattern
			endPos := variant.EndPos
			if p.match(LEFT_PAREN) {
				parens = true
				for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
					elem := p.parsePattern()
					if elem == nil {
						return nil
					}
					elems = append(elems, elem)
					if !p.match(COMMA) {
						break
					}
				}
				end := p.consume(RIGHT_PAREN, "expected ')' to close variant pattern")
				endPos = p.makeEndPos(end)
			}

			return &ast.PathPattern{
				Pos:     p.makePos(tok),
				EndPos:  endPos,
				Type:    p.makeIdent(tok),
				Variant: variant,
				Parens:  parens,
				Elems:   elems,
			}
		}

		return &ast.BindingPattern{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   p.makeIdent(tok),
		}
	}

	p.errorAtCurrent("expected a match pattern")
	return nil
}

// parseForAllExpr parses "forall vars :: {triggers} body"
func (p *Parser) parseForAllExpr() ast.Expr {
	start := p.consume(FORALL, "expected 'forall'")

	var vars []*ast.QuantVar
	for {
		name, ok := p.consumeIdent("expected quantified variable name")
		if !ok {
			p.synchronize()
			return &ast.BadExpr{Bad: ast.BadNode{
				Pos:     p.makePos(start),
				EndPos:  p.makePos(p.peek()),
				Message: "malformed quantifier binding",
			}}
		}

		p.consume(COLON, "expected ':' after quantified variable name")
		varType := p.parseTypeRef()

		vars = append(vars, &ast.QuantVar{
			Pos:    name.Pos,
			EndPos: varType.EndPos,
			Name:   name,
			Type:   varType,
		})

		if !p.match(COMMA) {
			break
		}
	}

	p.consume(DOUBLE_COLON, "expected '::' after quantifier bindings")

	var triggers []*ast.TriggerGroup
	for p.check(LEFT_BRACE) {
		open := p.advance()
		var terms []ast.Expr
		for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
			terms = append(terms, p.parsePrattExpr(0))
			if !p.match(COMMA) {
				break
			}
		}
		end := p.consume(RIGHT_BRACE, "expected '}' to close trigger group")
		triggers = append(triggers, &ast.TriggerGroup{
			Pos:    p.makePos(open),
			EndPos: p.makeEndPos(end),
			Terms:  terms,
		})
	}

	body := p.parsePrattExpr(0)

	return &ast.ForAllExpr{
		Pos:      p.makePos(start),
		EndPos:   body.NodeEndPos(),
		Vars:     vars,
		Triggers: triggers,
		Body:     body,
	}
}
