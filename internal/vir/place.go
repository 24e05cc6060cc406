package vir

// Place is a reachable heap location: a base variable plus an ordered
// chain of typed accessor steps. Places compare equal exactly when their
// printed forms are equal, which the canonical accessor naming guarantees.
type Place interface {
	Type() Type
	Base() LocalVar
	// Access appends one accessor step, producing a longer place
	Access(field Field) Place
	String() string
	isPlace()
}

func (*BasePlace) isPlace()  {}
func (*FieldPlace) isPlace() {}

// BasePlace is a bare variable reference
type BasePlace struct {
	Var LocalVar
}

// FieldPlace is a place extended by one accessor step
type FieldPlace struct {
	Recv  Place
	Field Field
}

// NewPlace creates a place rooted at the given variable
func NewPlace(v LocalVar) Place {
	return &BasePlace{Var: v}
}

func (p *BasePlace) Type() Type     { return p.Var.Type }
func (p *BasePlace) Base() LocalVar { return p.Var }
func (p *BasePlace) Access(field Field) Place {
	return &FieldPlace{Recv: p, Field: field}
}
func (p *BasePlace) String() string { return p.Var.Name }

func (p *FieldPlace) Type() Type     { return p.Field.Type }
func (p *FieldPlace) Base() LocalVar { return p.Recv.Base() }
func (p *FieldPlace) Access(field Field) Place {
	return &FieldPlace{Recv: p, Field: field}
}
func (p *FieldPlace) String() string {
	return p.Recv.String() + "." + p.Field.Name
}
