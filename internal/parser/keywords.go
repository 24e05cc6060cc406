package parser

var KEYWORDS = map[string]TokenType{
	"spec":      SPEC,
	"struct":    STRUCT,
	"enum":      ENUM,
	"requires":  REQUIRES,
	"ensures":   ENSURES,
	"invariant": INVARIANT,
	"forall":    FORALL,
	"match":     MATCH,
	"if":        IF,
	"else":      ELSE,
	"true":      TRUE,
	"false":     FALSE,
}
