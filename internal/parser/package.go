package parser

import "specter/internal/ast"

func ParseSource(path string, source string) (*ast.SpecFile, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	file := parser.ParseSpecFile()

	return file, parser.errors, scanner.errors
}
