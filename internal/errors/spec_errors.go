package errors

import (
	"fmt"
	"strings"

	"specter/internal/ast"
)

// ErrorBuilder provides a fluent interface for creating diagnostics with
// suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning builder
func NewWarning(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// Common diagnostic constructors

// UndefinedVariable creates an error for variables missing from the spec
// signature, with name suggestions when close matches exist
func UndefinedVariable(name string, pos ast.Position, similarNames []string) CompilerError {
	builder := NewError(ErrorUndefinedVariable, fmt.Sprintf("undefined variable '%s'", name), pos).
		WithLength(len(name))

	if len(similarNames) > 0 {
		if len(similarNames) == 1 {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similarNames[0]))
		} else {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similarNames, "', '")))
		}
	} else {
		builder = builder.WithSuggestion("declare the variable as a spec parameter").
			WithNote("assertions may only reference parameters, 'result', and quantified variables")
	}

	return builder.Build()
}

// UndefinedType creates an error for type names that resolve to nothing
func UndefinedType(name string, pos ast.Position) CompilerError {
	return NewError(ErrorUndefinedType, fmt.Sprintf("undefined type '%s'", name), pos).
		WithLength(len(name)).
		WithSuggestion("declare the type with 'struct' or 'enum' in this file").
		Build()
}

// FieldNotFound creates an error for missing struct fields
func FieldNotFound(typeName, fieldName string, pos ast.Position) CompilerError {
	return NewError(ErrorFieldNotFound,
		fmt.Sprintf("type '%s' has no field '%s'", typeName, fieldName), pos).
		WithLength(len(fieldName)).
		Build()
}

// DuplicateDeclaration creates an error for name collisions at file scope
func DuplicateDeclaration(name string, pos ast.Position, originalPos ast.Position) CompilerError {
	return NewError(ErrorDuplicateDeclaration,
		fmt.Sprintf("duplicate declaration of '%s'", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("'%s' was first declared at line %d", name, originalPos.Line)).
		Build()
}

// NonBooleanClause creates an error for clause conditions of the wrong type
func NonBooleanClause(kind string, actual string, pos ast.Position) CompilerError {
	return NewError(ErrorNonBooleanClause,
		fmt.Sprintf("'%s' condition must be boolean, found '%s'", kind, actual), pos).
		Build()
}

// CheckMismatch creates an error for an expression of an unexpected type
func CheckMismatch(expected, actual string, pos ast.Position) CompilerError {
	return NewError(ErrorCheckMismatch,
		fmt.Sprintf("expected '%s', found '%s'", expected, actual), pos).
		Build()
}
