package grammar

// Declarative grammar of the specification language. This parser only
// checks syntactic shape; the canonical front end with positions and
// recovery lives in internal/parser. Tooling that just needs fast
// syntax diagnostics parses against this grammar.

type Program struct {
	SourceElements []*SourceElement `@@*`
}

type SourceElement struct {
	Comment *Comment `  @@`
	Spec    *Spec    `| @@`
	Struct  *Struct  `| @@`
	Enum    *Enum    `| @@`
}

type DocComment struct {
	Text string `@DocComment`
}

type Comment struct {
	Text string `@Comment`
}

type Spec struct {
	Doc     *DocComment  `@@?`
	Name    string       `"spec" @Ident "("`
	Params  []*SpecParam `[ @@ { "," @@ } ] ")"`
	Return  *Type        `[ "->" @@ ]`
	Clauses []*Clause    `"{" @@* "}"`
}

type SpecParam struct {
	Name string `@Ident ":"`
	Type *Type  `@@`
}

type Clause struct {
	Comment *Comment `  @@`
	Kind    string   `| @("requires" | "ensures" | "invariant")`
	Cond    *Expr    `@@ ";"`
}

type Struct struct {
	Doc    *DocComment    `@@?`
	Name   string         `"struct" @Ident "{"`
	Fields []*StructField `[ @@ { "," @@ } [ "," ] ] "}"`
}

type StructField struct {
	Name string `@Ident ":"`
	Type *Type  `@@`
}

type Enum struct {
	Doc      *DocComment `@@?`
	Name     string      `"enum" @Ident "{"`
	Variants []string    `[ @Ident { "," @Ident } [ "," ] ] "}"`
}

type Type struct {
	Ref   bool    `[ @"&" ]`
	Tuple []*Type `( "(" [ @@ { "," @@ } ] ")"`
	Name  string  `| @Ident )`
}

type Expr struct {
	Binary *BinaryExpr `@@`
}

type BinaryExpr struct {
	Left *UnaryExpr `@@`
	Ops  []*BinOp   `{ @@ }`
}

type BinOp struct {
	Operator string     `@("==>" | "||" | "&&" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "%" | "&" | "|" | "^")`
	Right    *UnaryExpr `@@`
}

type UnaryExpr struct {
	Operator *string      `[ @("!" | "-" | "*") ]`
	Value    *PostfixExpr `@@`
}

type PostfixExpr struct {
	Primary *PrimaryExpr `@@`
	Suffix  []*FieldOp   `{ @@ }`
}

type FieldOp struct {
	Name string `"." @(Ident | Integer)`
}

type PrimaryExpr struct {
	Forall *ForallExpr `  @@`
	Match  *MatchExpr  `| @@`
	If     *IfExpr     `| @@`
	Call   *CallExpr   `| @@`
	Number *string     `| @Integer`
	Ident  *string     `| @Ident`
	Parens *Expr       `| "(" @@ ")"`
}

type CallExpr struct {
	Callee string  `@Ident`
	Args   []*Expr `"(" [ @@ { "," @@ } ] ")"`
}

type IfExpr struct {
	Cond   *Expr  `"if" @@`
	Then   *Block `@@ "else"`
	ElseIf *IfExpr `( @@`
	Else   *Block  `| @@ )`
}

type Block struct {
	Tail *Expr `"{" @@ "}"`
}

type MatchExpr struct {
	Scrutinee *Expr       `"match" @@`
	Arms      []*MatchArm `"{" [ @@ { "," @@ } [ "," ] ] "}"`
}

type MatchArm struct {
	Patterns []*Pattern `@@ { "|" @@ }`
	Guard    *Expr      `[ "if" @@ ]`
	Body     *Expr      `"=>" @@`
}

type Pattern struct {
	Path    *PathPattern `  @@`
	Literal *string      `| @Integer`
	Negated *string      `| "-" @Integer`
	Tuple   []*Pattern   `| "(" [ @@ { "," @@ } ] ")"`
	Name    *string      `| @Ident`
}

type PathPattern struct {
	Type    string     `@Ident "::"`
	Variant string     `@Ident`
	Elems   []*Pattern `[ "(" [ @@ { "," @@ } ] ")" ]`
}

type ForallExpr struct {
	Vars     []*QuantBinding `"forall" @@ { "," @@ } "::"`
	Triggers []*TriggerGroup `{ @@ }`
	Body     *Expr           `@@`
}

type QuantBinding struct {
	Name string `@Ident ":"`
	Type *Type  `@@`
}

type TriggerGroup struct {
	Terms []*Expr `"{" @@ { "," @@ } "}"`
}
