package errors

// Error codes for the specter toolchain
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// V0001-V0099: Encoding errors (assertion -> verification IR)
// V0100-V0199: Parser errors
// V0200-V0299: Type checking errors
// V0300-V0399: Serialization errors
// V0800-V0899: Warning codes

const (
	// Encoding errors (V0001-V0010)

	// V0001: Construct outside the supported assertion grammar
	ErrorUnsupportedSyntax = "V0001"

	// V0002: Operator or quantifier applied to an operand of the wrong
	// semantic type
	ErrorTypeMismatch = "V0002"

	// V0003: Path base name resolves to no binding and no valid
	// quantified-variable introduction
	ErrorUnresolvedBinding = "V0003"

	// V0004: Empty conjunction handed to the assertion encoder
	ErrorEmptyConjunction = "V0004"

	// Parser errors (V0100-V0199)

	// V0100: Generic parse error
	ErrorParse = "V0100"

	// V0101: Scanner error (invalid character, malformed literal)
	ErrorScan = "V0101"

	// Type checking errors (V0200-V0299)

	// V0200: Variable is used but not declared in the spec signature
	ErrorUndefinedVariable = "V0200"

	// V0201: Type name does not resolve to a builtin or declared type
	ErrorUndefinedType = "V0201"

	// V0202: Expression type does not match the expected type
	ErrorCheckMismatch = "V0202"

	// V0203: Struct field does not exist
	ErrorFieldNotFound = "V0203"

	// V0204: Duplicate declaration found
	ErrorDuplicateDeclaration = "V0204"

	// V0205: Clause condition is not boolean
	ErrorNonBooleanClause = "V0205"

	// Serialization errors (V0300-V0399)

	// V0300: Malformed or structurally invalid wire-format input
	ErrorSerialization = "V0300"

	// V0301: Assertion kind not representable in the wire format
	ErrorUnserializableKind = "V0301"

	// Warning codes

	// W0001: Trigger term required primitive value unwrapping
	WarningTriggerUnwrap = "W0001"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnsupportedSyntax:
		return "Construct is outside the supported assertion grammar"
	case ErrorTypeMismatch:
		return "Operand has the wrong semantic type for this operator"
	case ErrorUnresolvedBinding:
		return "Name resolves to neither a procedure binding nor a quantified variable"
	case ErrorEmptyConjunction:
		return "Conjunction assertion has no children"
	case ErrorParse:
		return "Specification could not be parsed"
	case ErrorScan:
		return "Specification contains invalid tokens"
	case ErrorUndefinedVariable:
		return "Variable is used but not declared in the spec signature"
	case ErrorUndefinedType:
		return "Type name does not resolve to a builtin or declared type"
	case ErrorCheckMismatch:
		return "Expression type does not match expected type"
	case ErrorFieldNotFound:
		return "Struct field does not exist"
	case ErrorDuplicateDeclaration:
		return "Duplicate declaration found"
	case ErrorNonBooleanClause:
		return "Clause condition must be boolean"
	case ErrorSerialization:
		return "Wire-format input is malformed or structurally invalid"
	case ErrorUnserializableKind:
		return "Assertion kind is not representable in the wire format"
	case WarningTriggerUnwrap:
		return "Trigger term carries an automatic value-unwrapping accessor"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code >= "V0800" && code < "V0900" || code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "V0001" && code < "V0100":
		return "Encoding"
	case code >= "V0100" && code < "V0200":
		return "Parser"
	case code >= "V0200" && code < "V0300":
		return "Type Checking"
	case code >= "V0300" && code < "V0400":
		return "Serialization"
	case code >= "V0800" && code < "V0900":
		return "Warning"
	case code[0] == 'W':
		return "Warning"
	default:
		return "Unknown"
	}
}
