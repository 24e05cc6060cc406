package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_SPEC_ITEM
	BAD_EXPR

	// Comments
	DOC_COMMENT
	COMMENT

	// High-level constructs
	SPEC_FILE
	SPEC_BLOCK

	// Declarations
	STRUCT_DECL
	FIELD_DECL
	ENUM_DECL

	// Signature parts
	PARAM
	TYPE_REF
	IDENT

	// Clauses
	CLAUSE

	// Expressions
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	FIELD_ACCESS_EXPR
	LITERAL_EXPR
	IDENT_EXPR
	PAREN_EXPR
	COND_EXPR
	BLOCK_EXPR
	MATCH_EXPR
	MATCH_ARM
	FORALL_EXPR
	QUANT_VAR
	TRIGGER_GROUP

	// Patterns
	WILDCARD_PATTERN
	LITERAL_PATTERN
	PATH_PATTERN
	TUPLE_PATTERN
	BINDING_PATTERN
)
