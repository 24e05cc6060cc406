package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "spec struct enum requires ensures invariant forall match if else true false customIdent"
	expected := []TokenType{
		SPEC, STRUCT, ENUM, REQUIRES, ENSURES, INVARIANT,
		FORALL, MATCH, IF, ELSE, TRUE, FALSE, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 12345 1_000_000 0x0 0x1F 0xAB_CD"
	expected := []TokenType{NUMBER, NUMBER, NUMBER, NUMBER, HEX_NUMBER, HEX_NUMBER, HEX_NUMBER}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `(){},.;+-*/%! != == = < <= > >= && & || | ^ ::`
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		SEMICOLON, PLUS, MINUS, STAR, SLASH, PERCENT, BANG, BANG_EQUAL,
		EQUAL_EQUAL, EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL,
		AND, AMPERSAND, OR, PIPE, CARET, DOUBLE_COLON,
	}
	expectedLexemes := []string{"(", ")", "{", "}", ",", ".", ";", "+", "-", "*", "/", "%", "!", "!=", "==", "=", "<", "<=", ">", ">=", "&&", "&", "||", "|", "^", "::"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme %q, got %q", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestArrowOperators(t *testing.T) {
	input := `==> => ->`
	expected := []TokenType{IMPLIES, FAT_ARROW, ARROW}
	expectedLexemes := []string{"==>", "=>", "->"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme %q, got %q", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestImpliesIsNotSplitIntoEqualsAndGreater(t *testing.T) {
	scanner := NewScanner("a ==> b == c > d")
	tokens := scanner.ScanTokens()

	expected := []TokenType{IDENTIFIER, IMPLIES, IDENTIFIER, EQUAL_EQUAL, IDENTIFIER, GREATER, IDENTIFIER, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestComments(t *testing.T) {
	input := "// line comment\n/// doc comment\n/* block */ x"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []TokenType{COMMENT, DOC_COMMENT, BLOCK_COMMENT, IDENTIFIER}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestPositions(t *testing.T) {
	scanner := NewScanner("spec\n  foo")
	tokens := scanner.ScanTokens()

	if tokens[0].Position.Line != 1 || tokens[0].Position.Column != 1 {
		t.Errorf("expected 1:1 for 'spec', got %d:%d", tokens[0].Position.Line, tokens[0].Position.Column)
	}
	if tokens[1].Position.Line != 2 || tokens[1].Position.Column != 3 {
		t.Errorf("expected 2:3 for 'foo', got %d:%d", tokens[1].Position.Line, tokens[1].Position.Column)
	}
}

func TestScanErrors(t *testing.T) {
	scanner := NewScanner("x @ y")
	scanner.ScanTokens()

	if len(scanner.errors) != 1 {
		t.Fatalf("expected one scan error, got %d", len(scanner.errors))
	}

	scanner = NewScanner("0x")
	scanner.ScanTokens()
	if len(scanner.errors) != 1 {
		t.Fatalf("expected one scan error for bare 0x, got %d", len(scanner.errors))
	}

	scanner = NewScanner("/* never closed")
	scanner.ScanTokens()
	if len(scanner.errors) != 1 {
		t.Fatalf("expected one scan error for unterminated comment, got %d", len(scanner.errors))
	}
}
