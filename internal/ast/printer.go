package ast

import (
	"fmt"
	"strings"
)

func (f *SpecFile) String() string {
	var b strings.Builder

	for _, comment := range f.LeadingComments {
		b.WriteString(comment.String())
		b.WriteString("\n")
	}

	for i, item := range f.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(item.String())
		b.WriteString("\n")
	}

	return b.String()
}

func (dc *DocComment) String() string {
	return dc.Text
}

func (c *Comment) String() string {
	return c.Text
}

func (bsi *BadSpecItem) String() string {
	return fmt.Sprintf("BadSpecItem: %s", bsi.Bad.Message)
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Bad.Message)
}

func (i *Ident) String() string {
	return i.Value
}

func (sb *SpecBlock) String() string {
	var b strings.Builder

	if sb.DocComment != nil {
		b.WriteString(sb.DocComment.String())
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("spec %s(", sb.Name.Value))
	for i, param := range sb.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")")

	if sb.Return != nil {
		b.WriteString(" -> ")
		b.WriteString(sb.Return.String())
	}

	b.WriteString(" {\n")
	for _, clause := range sb.Clauses {
		b.WriteString("    " + clause.String() + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (p *Param) String() string {
	return fmt.Sprintf("%s: %s", p.Name.Value, p.Type.String())
}

func (c *Clause) String() string {
	return fmt.Sprintf("%s %s;", c.Kind, c.Cond.String())
}

func (sd *StructDecl) String() string {
	var b strings.Builder

	if sd.DocComment != nil {
		b.WriteString(sd.DocComment.String())
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("struct %s {\n", sd.Name.Value))
	for _, field := range sd.Fields {
		b.WriteString("    " + field.String() + ",\n")
	}
	b.WriteString("}")

	return b.String()
}

func (fd *FieldDecl) String() string {
	return fmt.Sprintf("%s: %s", fd.Name.Value, fd.Type.String())
}

func (ed *EnumDecl) String() string {
	var b strings.Builder

	if ed.DocComment != nil {
		b.WriteString(ed.DocComment.String())
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("enum %s {", ed.Name.Value))
	for i, variant := range ed.Variants {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" " + variant.Value)
	}
	b.WriteString(" }")

	return b.String()
}

func (t *TypeRef) String() string {
	var b strings.Builder

	if t.Ref {
		b.WriteString("&")
	}

	if t.Name != "" {
		b.WriteString(t.Name)
		return b.String()
	}

	b.WriteString("(")
	for i, elem := range t.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elem.String())
	}
	b.WriteString(")")

	return b.String()
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return u.Op + u.Value.String()
}

func (c *CallExpr) String() string {
	var b strings.Builder

	b.WriteString(c.Callee.Value)
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")

	return b.String()
}

func (f *FieldAccessExpr) String() string {
	return fmt.Sprintf("%s.%s", f.Target.String(), f.Field)
}

func (l *LiteralExpr) String() string {
	return l.Value
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (p *ParenExpr) String() string {
	return "(" + p.Value.String() + ")"
}

func (c *CondExpr) String() string {
	return fmt.Sprintf("if %s { %s } else { %s }",
		c.Cond.String(), c.Then.String(), c.Else.String())
}

func (b *BlockExpr) String() string {
	return "{ " + b.Tail.String() + " }"
}

func (m *MatchExpr) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("match %s { ", m.Scrutinee.String()))
	for i, arm := range m.Arms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arm.String())
	}
	b.WriteString(" }")

	return b.String()
}

func (a *MatchArm) String() string {
	var b strings.Builder

	for i, pat := range a.Patterns {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(pat.String())
	}

	if a.Guard != nil {
		b.WriteString(" if ")
		b.WriteString(a.Guard.String())
	}

	b.WriteString(" => ")
	b.WriteString(a.Body.String())

	return b.String()
}

func (f *ForAllExpr) String() string {
	var b strings.Builder

	b.WriteString("forall ")
	for i, v := range f.Vars {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteString(" ::")

	for _, trigger := range f.Triggers {
		b.WriteString(" ")
		b.WriteString(trigger.String())
	}

	b.WriteString(" ")
	b.WriteString(f.Body.String())

	return b.String()
}

func (q *QuantVar) String() string {
	return fmt.Sprintf("%s: %s", q.Name.Value, q.Type.String())
}

func (t *TriggerGroup) String() string {
	var b strings.Builder

	b.WriteString("{")
	for i, term := range t.Terms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(term.String())
	}
	b.WriteString("}")

	return b.String()
}

func (w *WildcardPattern) String() string {
	return "_"
}

func (l *LiteralPattern) String() string {
	return l.Value.String()
}

func (p *PathPattern) String() string {
	var b strings.Builder

	b.WriteString(p.Type.Value)
	b.WriteString("::")
	b.WriteString(p.Variant.Value)

	if p.Parens {
		b.WriteString("(")
		for i, elem := range p.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(elem.String())
		}
		b.WriteString(")")
	}

	return b.String()
}

func (t *TuplePattern) String() string {
	var b strings.Builder

	b.WriteString("(")
	for i, elem := range t.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elem.String())
	}
	b.WriteString(")")

	return b.String()
}

func (b *BindingPattern) String() string {
	return b.Name.Value
}
