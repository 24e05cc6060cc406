package encoder

import (
	"fmt"

	"specter/internal/ast"
	"specter/internal/errors"
)

// Error is one structured encoding failure: a reason code, a message,
// and the offending source position. Encoding returns it instead of
// aborting, so a driver can collect failures across a batch of clauses.
type Error struct {
	Code     string
	Message  string
	Position ast.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Diagnostic converts the failure into a reportable compiler diagnostic
func (e *Error) Diagnostic() errors.CompilerError {
	return errors.NewError(e.Code, e.Message, e.Position).Build()
}

func unsupportedSyntax(pos ast.Position, format string, args ...interface{}) *Error {
	return &Error{
		Code:     errors.ErrorUnsupportedSyntax,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}

func typeMismatch(pos ast.Position, format string, args ...interface{}) *Error {
	return &Error{
		Code:     errors.ErrorTypeMismatch,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}

func unresolvedBinding(pos ast.Position, name string) *Error {
	return &Error{
		Code:     errors.ErrorUnresolvedBinding,
		Message:  fmt.Sprintf("'%s' resolves to neither a procedure binding nor a quantified variable", name),
		Position: pos,
	}
}

func emptyConjunction() *Error {
	return &Error{
		Code:    errors.ErrorEmptyConjunction,
		Message: "conjunction assertion has no children",
	}
}
