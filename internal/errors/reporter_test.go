package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"specter/internal/ast"
)

func TestErrorReporter(t *testing.T) {
	source := `spec withdraw(amount: int) -> int {
    requires amonut > 0;
    ensures result >= 0;
}`

	reporter := NewErrorReporter("test.spec", source)

	err := UndefinedVariable("amonut", ast.Position{Line: 2, Column: 14}, []string{"amount"})
	formatted := reporter.FormatError(err)

	// Header with level and code
	assert.Contains(t, formatted, "error["+ErrorUndefinedVariable+"]")
	assert.Contains(t, formatted, "undefined variable")
	assert.Contains(t, formatted, "amonut")

	// Location line
	assert.Contains(t, formatted, "test.spec:2:14")

	// Suggestion
	assert.Contains(t, formatted, "did you mean")
	assert.Contains(t, formatted, "amount")
}

func TestUndefinedVariableError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := UndefinedVariable("balace", pos, []string{"balance"})
	assert.Equal(t, ErrorUndefinedVariable, err.Code)
	assert.Contains(t, err.Message, "balace")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean 'balance'")

	err = UndefinedVariable("xyz", pos, nil)
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "declare the variable")
	assert.Len(t, err.Notes, 1)
}

func TestMultipleSimilarNames(t *testing.T) {
	err := UndefinedVariable("amnt", ast.Position{Line: 1, Column: 1}, []string{"amount", "amt"})
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean one of:")
	assert.Contains(t, err.Suggestions[0].Message, "amount")
	assert.Contains(t, err.Suggestions[0].Message, "amt")
}

func TestFieldNotFoundError(t *testing.T) {
	err := FieldNotFound("Account", "balanec", ast.Position{Line: 1, Column: 5})
	assert.Equal(t, ErrorFieldNotFound, err.Code)
	assert.Contains(t, err.Message, "type 'Account' has no field 'balanec'")
	assert.Equal(t, len("balanec"), err.Length)
}

func TestDuplicateDeclarationError(t *testing.T) {
	err := DuplicateDeclaration("Account",
		ast.Position{Line: 5, Column: 8},
		ast.Position{Line: 2, Column: 8})
	assert.Equal(t, ErrorDuplicateDeclaration, err.Code)
	assert.Len(t, err.Notes, 1)
	assert.Contains(t, err.Notes[0], "line 2")
}

func TestErrorBuilderFluentChain(t *testing.T) {
	err := NewError(ErrorUnsupportedSyntax, "test message", ast.Position{Line: 1, Column: 1}).
		WithLength(4).
		WithSuggestion("try this").
		WithNote("for context").
		WithHelp("read the manual").
		Build()

	assert.Equal(t, Error, err.Level)
	assert.Equal(t, 4, err.Length)
	assert.Len(t, err.Suggestions, 1)
	assert.Len(t, err.Notes, 1)
	assert.Equal(t, "read the manual", err.HelpText)
}

func TestWarningFormatting(t *testing.T) {
	source := `requires forall i: int :: i >= 0;`
	reporter := NewErrorReporter("test.spec", source)

	warning := NewWarning(WarningTriggerUnwrap, "trigger term was unwrapped", ast.Position{Line: 1, Column: 10}).Build()
	formatted := reporter.FormatError(warning)

	assert.Contains(t, formatted, "warning["+WarningTriggerUnwrap+"]")
	assert.Contains(t, formatted, "trigger term was unwrapped")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `requires variable > 0;`
	reporter := NewErrorReporter("test.spec", source)

	marker := reporter.createMarker(10, 8, Error) // "variable" is 8 chars at column 10

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 9, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("test.spec", "requires true;")
	pos := ast.Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	assert.Contains(t, reporter.FormatError(errorErr), "error:")
	assert.Contains(t, reporter.FormatError(warningErr), "warning:")
}
