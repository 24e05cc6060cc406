package ast

type SpecItem interface {
	Node
	isSpecItem()
}

func (*BadSpecItem) isSpecItem() {}

func (*DocComment) isSpecItem() {}

func (*Comment) isSpecItem() {}

func (*SpecBlock) isSpecItem() {}

func (*StructDecl) isSpecItem() {}

func (*EnumDecl) isSpecItem() {}
