package lsp

import (
	stderrors "errors"

	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"specter/grammar"
	"specter/internal/ast"
	"specter/internal/encoder"
	"specter/internal/errors"
	"specter/internal/parser"
	"specter/internal/semantic"
	"specter/internal/spec"
)

// analyzeDocument runs the diagnostic pipeline over one document: a
// fast syntactic pass against the declarative grammar, then the
// canonical parser, the semantic analyzer, and finally encoding of
// every clause. Each stage only runs when the previous one was clean,
// so a single typo does not cascade into dozens of markers.
func analyzeDocument(path, content string) ([]protocol.Diagnostic, *ast.SpecFile) {
	if _, err := grammar.ParseString(path, content); err != nil {
		return ConvertSyntaxError(err), nil
	}

	file, parseErrors, scanErrors := parser.ParseSource(path, content)

	var diagnostics []protocol.Diagnostic
	diagnostics = append(diagnostics, ConvertScanErrors(scanErrors)...)
	diagnostics = append(diagnostics, ConvertParseErrors(parseErrors)...)
	if len(diagnostics) > 0 {
		return diagnostics, file
	}

	analyzer := semantic.NewAnalyzer()
	diagnostics = append(diagnostics, ConvertCompilerErrors(analyzer.Analyze(file))...)
	if len(diagnostics) > 0 {
		return diagnostics, file
	}

	registry := spec.NewRegistry()
	for _, item := range file.Items {
		block, ok := item.(*ast.SpecBlock)
		if !ok {
			continue
		}
		for _, result := range encoder.EncodeBlock(block, analyzer, registry) {
			var encodingErr *encoder.Error
			if stderrors.As(result.Err, &encodingErr) {
				diagnostics = append(diagnostics, convertCompilerError(encodingErr.Diagnostic()))
			}
		}
	}

	return diagnostics, file
}

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE display.
// These provide immediate feedback about syntax issues like missing brackets,
// semicolons, commas in declarations, and other parsing problems.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),   // Convert to 0-based indexing
					Character: uint32(parseErr.Position.Column - 1), // Convert to 0-based indexing
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column + 5), // Rough span for visibility
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("specter-parser"),
			Message:  parseErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertScanErrors transforms scanner errors into LSP diagnostics for IDE display.
// These handle tokenization issues like invalid characters and malformed literals.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		// Use the Length field if available, otherwise default span
		endChar := uint32(scanErr.Position.Column - 1 + scanErr.Length)
		if scanErr.Length == 0 {
			endChar = uint32(scanErr.Position.Column + 3) // Default small span
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),   // Convert to 0-based indexing
					Character: uint32(scanErr.Position.Column - 1), // Convert to 0-based indexing
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: endChar,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("specter-scanner"),
			Message:  scanErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertCompilerErrors transforms semantic and encoding diagnostics
// into LSP diagnostics
func ConvertCompilerErrors(compilerErrors []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	for _, compilerErr := range compilerErrors {
		diagnostics = append(diagnostics, convertCompilerError(compilerErr))
	}
	return diagnostics
}

func convertCompilerError(compilerErr errors.CompilerError) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	if compilerErr.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	length := compilerErr.Length
	if length <= 0 {
		length = 1
	}

	line := compilerErr.Position.Line
	if line < 1 {
		line = 1
	}
	column := compilerErr.Position.Column
	if column < 1 {
		column = 1
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(column - 1),
			},
			End: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(column - 1 + length),
			},
		},
		Severity: ptrSeverity(severity),
		Source:   ptrString("specter"),
		Code:     &protocol.IntegerOrString{Value: compilerErr.Code},
		Message:  compilerErr.Message,
	}
}

// ConvertSyntaxError transforms a declarative-grammar parse failure
// into a single LSP diagnostic
func ConvertSyntaxError(err error) []protocol.Diagnostic {
	parseErr, ok := err.(participle.Error)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("specter-syntax"),
			Message:  err.Error(),
		}}
	}

	pos := parseErr.Position()
	line := pos.Line
	if line < 1 {
		line = 1
	}
	column := pos.Column
	if column < 1 {
		column = 1
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(column - 1),
			},
			End: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(column + 5),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("specter-syntax"),
		Message:  parseErr.Message(),
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
