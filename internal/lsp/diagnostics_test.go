package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specter/internal/errors"
	"specter/internal/parser"
)

func TestAnalyzeDocumentCleanFile(t *testing.T) {
	diagnostics, file := analyzeDocument("test.spec", `
struct Account { balance: int, owner: int }

spec withdraw(amount: int, acc: &Account) -> int {
    requires amount > 0;
    requires acc.balance >= amount;
    ensures result == old(acc.balance) - amount;
}`)
	assert.Empty(t, diagnostics)
	require.NotNil(t, file)
	assert.NotEmpty(t, file.Items)
}

func TestAnalyzeDocumentSyntaxStage(t *testing.T) {
	diagnostics, file := analyzeDocument("test.spec", "spec { requires true; }")

	require.Len(t, diagnostics, 1)
	require.NotNil(t, diagnostics[0].Source)
	assert.Equal(t, "specter-syntax", *diagnostics[0].Source)
	assert.Nil(t, file)
}

func TestAnalyzeDocumentRejectsUnknownCharacters(t *testing.T) {
	diagnostics, _ := analyzeDocument("test.spec", "spec f(x: int) { requires x @ 0; }")

	require.NotEmpty(t, diagnostics)
	require.NotNil(t, diagnostics[0].Source)
	assert.Equal(t, "specter-syntax", *diagnostics[0].Source)
}

func TestAnalyzeDocumentSemanticStage(t *testing.T) {
	diagnostics, file := analyzeDocument("test.spec", `
spec f(amount: int) {
    requires amonut > 0;
}`)

	require.Len(t, diagnostics, 1)
	require.NotNil(t, diagnostics[0].Source)
	assert.Equal(t, "specter", *diagnostics[0].Source)
	require.NotNil(t, diagnostics[0].Code)
	assert.Equal(t, errors.ErrorUndefinedVariable, diagnostics[0].Code.Value)
	assert.NotNil(t, file)
}

func TestAnalyzeDocumentEncodingStage(t *testing.T) {
	// The analyzer accepts guarded match arms; the encoder reports them
	diagnostics, _ := analyzeDocument("test.spec", `
spec f(x: int) -> int {
    ensures result == match x { 0 if x > 0 => 1, _ => 2 };
}`)

	require.Len(t, diagnostics, 1)
	require.NotNil(t, diagnostics[0].Source)
	assert.Equal(t, "specter", *diagnostics[0].Source)
	require.NotNil(t, diagnostics[0].Code)
	assert.Equal(t, errors.ErrorUnsupportedSyntax, diagnostics[0].Code.Value)
}

func TestConvertParseErrorsUsesZeroBasedPositions(t *testing.T) {
	parseErrors := []parser.ParseError{{
		Position: parser.Position{Line: 3, Column: 7},
		Message:  "expected ';' after clause condition",
	}}

	diagnostics := ConvertParseErrors(parseErrors)
	require.Len(t, diagnostics, 1)

	assert.Equal(t, uint32(2), diagnostics[0].Range.Start.Line)
	assert.Equal(t, uint32(6), diagnostics[0].Range.Start.Character)
	require.NotNil(t, diagnostics[0].Source)
	assert.Equal(t, "specter-parser", *diagnostics[0].Source)
	assert.Equal(t, "expected ';' after clause condition", diagnostics[0].Message)
}

func TestConvertScanErrorsUsesTokenLength(t *testing.T) {
	scanErrors := []parser.ScanError{{
		Position: parser.Position{Line: 1, Column: 5},
		Length:   4,
		Message:  "unexpected character",
	}}

	diagnostics := ConvertScanErrors(scanErrors)
	require.Len(t, diagnostics, 1)

	assert.Equal(t, uint32(0), diagnostics[0].Range.Start.Line)
	assert.Equal(t, uint32(4), diagnostics[0].Range.Start.Character)
	assert.Equal(t, uint32(8), diagnostics[0].Range.End.Character)
	require.NotNil(t, diagnostics[0].Source)
	assert.Equal(t, "specter-scanner", *diagnostics[0].Source)
}
