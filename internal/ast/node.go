package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (f *SpecFile) NodePos() Position    { return f.Pos }
func (f *SpecFile) NodeEndPos() Position { return f.EndPos }
func (*SpecFile) NodeType() NodeType     { return SPEC_FILE }

func (bsi *BadSpecItem) NodePos() Position    { return bsi.Bad.Pos }
func (bsi *BadSpecItem) NodeEndPos() Position { return bsi.Bad.EndPos }
func (*BadSpecItem) NodeType() NodeType       { return BAD_SPEC_ITEM }

func (be *BadExpr) NodePos() Position    { return be.Bad.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.Bad.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (dc *DocComment) NodePos() Position    { return dc.Pos }
func (dc *DocComment) NodeEndPos() Position { return dc.EndPos }
func (*DocComment) NodeType() NodeType      { return DOC_COMMENT }

func (c *Comment) NodePos() Position    { return c.Pos }
func (c *Comment) NodeEndPos() Position { return c.EndPos }
func (*Comment) NodeType() NodeType     { return COMMENT }

func (sb *SpecBlock) NodePos() Position    { return sb.Pos }
func (sb *SpecBlock) NodeEndPos() Position { return sb.EndPos }
func (*SpecBlock) NodeType() NodeType      { return SPEC_BLOCK }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (c *Clause) NodePos() Position    { return c.Pos }
func (c *Clause) NodeEndPos() Position { return c.EndPos }
func (*Clause) NodeType() NodeType     { return CLAUSE }

func (sd *StructDecl) NodePos() Position    { return sd.Pos }
func (sd *StructDecl) NodeEndPos() Position { return sd.EndPos }
func (*StructDecl) NodeType() NodeType      { return STRUCT_DECL }

func (fd *FieldDecl) NodePos() Position    { return fd.Pos }
func (fd *FieldDecl) NodeEndPos() Position { return fd.EndPos }
func (*FieldDecl) NodeType() NodeType      { return FIELD_DECL }

func (ed *EnumDecl) NodePos() Position    { return ed.Pos }
func (ed *EnumDecl) NodeEndPos() Position { return ed.EndPos }
func (*EnumDecl) NodeType() NodeType      { return ENUM_DECL }

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (f *FieldAccessExpr) NodePos() Position    { return f.Pos }
func (f *FieldAccessExpr) NodeEndPos() Position { return f.EndPos }
func (*FieldAccessExpr) NodeType() NodeType     { return FIELD_ACCESS_EXPR }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

func (c *CondExpr) NodePos() Position    { return c.Pos }
func (c *CondExpr) NodeEndPos() Position { return c.EndPos }
func (*CondExpr) NodeType() NodeType     { return COND_EXPR }

func (b *BlockExpr) NodePos() Position    { return b.Pos }
func (b *BlockExpr) NodeEndPos() Position { return b.EndPos }
func (*BlockExpr) NodeType() NodeType     { return BLOCK_EXPR }

func (m *MatchExpr) NodePos() Position    { return m.Pos }
func (m *MatchExpr) NodeEndPos() Position { return m.EndPos }
func (*MatchExpr) NodeType() NodeType     { return MATCH_EXPR }

func (a *MatchArm) NodePos() Position    { return a.Pos }
func (a *MatchArm) NodeEndPos() Position { return a.EndPos }
func (*MatchArm) NodeType() NodeType     { return MATCH_ARM }

func (f *ForAllExpr) NodePos() Position    { return f.Pos }
func (f *ForAllExpr) NodeEndPos() Position { return f.EndPos }
func (*ForAllExpr) NodeType() NodeType     { return FORALL_EXPR }

func (q *QuantVar) NodePos() Position    { return q.Pos }
func (q *QuantVar) NodeEndPos() Position { return q.EndPos }
func (*QuantVar) NodeType() NodeType     { return QUANT_VAR }

func (t *TriggerGroup) NodePos() Position    { return t.Pos }
func (t *TriggerGroup) NodeEndPos() Position { return t.EndPos }
func (*TriggerGroup) NodeType() NodeType     { return TRIGGER_GROUP }

func (w *WildcardPattern) NodePos() Position    { return w.Pos }
func (w *WildcardPattern) NodeEndPos() Position { return w.EndPos }
func (*WildcardPattern) NodeType() NodeType     { return WILDCARD_PATTERN }

func (l *LiteralPattern) NodePos() Position    { return l.Pos }
func (l *LiteralPattern) NodeEndPos() Position { return l.EndPos }
func (*LiteralPattern) NodeType() NodeType     { return LITERAL_PATTERN }

func (p *PathPattern) NodePos() Position    { return p.Pos }
func (p *PathPattern) NodeEndPos() Position { return p.EndPos }
func (*PathPattern) NodeType() NodeType     { return PATH_PATTERN }

func (t *TuplePattern) NodePos() Position    { return t.Pos }
func (t *TuplePattern) NodeEndPos() Position { return t.EndPos }
func (*TuplePattern) NodeType() NodeType     { return TUPLE_PATTERN }

func (b *BindingPattern) NodePos() Position    { return b.Pos }
func (b *BindingPattern) NodeEndPos() Position { return b.EndPos }
func (*BindingPattern) NodeType() NodeType     { return BINDING_PATTERN }
