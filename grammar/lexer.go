package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var SpecLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"DocComment", `///[^\n]*`, nil},
		{"Comment", `//[^\n]*|/\*[\s\S]*?\*/`, nil},

		// Keywords and Identifiers (order matters)
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Integer literals
		{"Integer", `0x[0-9a-fA-F_]+|[0-9][0-9_]*`, nil},

		// Operators (multi-character first)
		{"Operator", `(==>|=>|->|::|\|\||&&|==|!=|<=|>=|[-+*/%&|^<>=!])`, nil},

		// Punctuation (must come after operators)
		{"Punctuation", `[{}().,:;]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
