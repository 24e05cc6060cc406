package lsp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"specter/internal/parser"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	source := "spec withdraw(amount: int, acc: &Account) -> int {\n" +
		"    requires amount > 0;\n" +
		"    ensures result == old(acc.balance) - amount;\n" +
		"}\n" +
		"\n" +
		"struct Account {\n" +
		"    balance: int,\n" +
		"    owner: int,\n" +
		"}\n"

	path := "/tmp/sample.spec"
	file, parseErrors, scanErrors := parser.ParseSource(path, source)
	require.Empty(t, scanErrors)
	require.Empty(t, parseErrors)

	handler := NewSpecterHandler()
	handler.files[path] = file

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: "file://" + path,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, tokens)
	require.NotEmpty(t, tokens.Data)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 18)

	assertToken(t, &decoded[0], 1, 6, 8, "function", []string{"declaration"})
	assertToken(t, &decoded[1], 1, 15, 6, "parameter", nil)
	assertToken(t, &decoded[2], 1, 23, 3, "type", nil)
	assertToken(t, &decoded[3], 1, 28, 3, "parameter", nil)
	assertToken(t, &decoded[4], 1, 33, 8, "type", nil) // the reference type spans '&Account'
	assertToken(t, &decoded[5], 1, 46, 3, "type", nil)
	assertToken(t, &decoded[6], 2, 5, 8, "keyword", nil)
	assertToken(t, &decoded[7], 2, 14, 6, "variable", nil)
	assertToken(t, &decoded[8], 3, 5, 7, "keyword", nil)
	assertToken(t, &decoded[9], 3, 13, 6, "variable", nil)
	assertToken(t, &decoded[10], 3, 23, 3, "function", nil)
	assertToken(t, &decoded[11], 3, 27, 3, "variable", nil)
	assertToken(t, &decoded[12], 3, 42, 6, "variable", nil)
	assertToken(t, &decoded[13], 6, 8, 7, "type", []string{"declaration"})
	assertToken(t, &decoded[14], 7, 5, 7, "property", []string{"declaration"})
	assertToken(t, &decoded[15], 7, 14, 3, "type", nil)
	assertToken(t, &decoded[16], 8, 5, 5, "property", []string{"declaration"})
	assertToken(t, &decoded[17], 8, 12, 3, "type", nil)
}

func TestQuantifiedVariablesGetDeclarationTokens(t *testing.T) {
	file, parseErrors, scanErrors := parser.ParseSource("test.spec",
		"spec f(n: int) {\n    requires forall i: int :: i >= 0;\n}\n")
	require.Empty(t, scanErrors)
	require.Empty(t, parseErrors)

	tokens := collectSemanticTokens(file)

	declaredVars := 0
	for _, token := range tokens {
		if SemanticTokenTypes[token.TokenType] == "variable" && token.TokenModifiers != 0 {
			declaredVars++
		}
	}
	require.Equal(t, 1, declaredVars, "the bound variable should carry a declaration modifier")
}

func TestCollectSemanticTokensNilFile(t *testing.T) {
	require.Empty(t, collectSemanticTokens(nil))
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // back to 1-based for readable assertions
			Char:      char + 1,
			Length:    length,
			Type:      SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	t.Helper()
	require.Equal(t, expectedLine, token.Line, "line mismatch (token %d)", token.Index)
	require.Equal(t, expectedChar, token.Char, "char mismatch (token %d)", token.Index)
	require.Equal(t, expectedLength, token.Length, "length mismatch (token %d)", token.Index)
	require.Equal(t, expectedType, token.Type, "type mismatch (token %d)", token.Index)
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch (token %d)", token.Index)
}
