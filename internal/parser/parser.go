package parser

import (
	"specter/internal/ast"
)

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

type ParseError struct {
	Message  string
	Position Position
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseSpecFile parses the whole token stream into a specification file:
// spec blocks, type declarations, and the comments between them
func (p *Parser) ParseSpecFile() *ast.SpecFile {
	file := &ast.SpecFile{}
	if len(p.tokens) > 0 {
		file.Pos = p.makePos(p.tokens[0])
	}

	var pendingDoc *ast.DocComment

	for !p.isAtEnd() {
		switch p.peek().Type {
		case DOC_COMMENT:
			token := p.advance()
			pendingDoc = &ast.DocComment{
				Pos:    p.makePos(token),
				EndPos: p.makeEndPos(token),
				Text:   token.Lexeme,
			}

		case COMMENT, BLOCK_COMMENT:
			token := p.advance()
			comment := &ast.Comment{
				Pos:    p.makePos(token),
				EndPos: p.makeEndPos(token),
				Text:   token.Lexeme,
			}
			if len(file.Items) == 0 {
				file.LeadingComments = append(file.LeadingComments, comment)
			} else {
				file.Items = append(file.Items, comment)
			}

		case SPEC:
			if block := p.parseSpecBlock(pendingDoc); block != nil {
				file.Items = append(file.Items, block)
			}
			pendingDoc = nil

		case STRUCT:
			if decl := p.parseStructDecl(pendingDoc); decl != nil {
				file.Items = append(file.Items, decl)
			}
			pendingDoc = nil

		case ENUM:
			if decl := p.parseEnumDecl(pendingDoc); decl != nil {
				file.Items = append(file.Items, decl)
			}
			pendingDoc = nil

		default:
			tok := p.peek()
			p.errorAtCurrent("expected 'spec', 'struct', or 'enum' at file level")
			file.Items = append(file.Items, &ast.BadSpecItem{
				Bad: ast.BadNode{
					Pos:     p.makePos(tok),
					EndPos:  p.makeEndPos(tok),
					Message: "unexpected token at file level: " + tok.Lexeme,
				},
			})
			p.synchronize()
		}
	}

	if len(p.tokens) > 0 {
		file.EndPos = p.makePos(p.tokens[len(p.tokens)-1])
	}
	return file
}
