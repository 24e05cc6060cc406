package vir

import "fmt"

// Verification IR types. Every place carries one of these; the encoder
// chooses value-unwrapping accessors based on them.

type Type interface {
	String() string
	IsRef() bool
}

// IntType is the unbounded mathematical integer sort
type IntType struct{}

// BoolType is the boolean sort
type BoolType struct{}

// RefType is a typed heap reference, named after the predicate that
// describes the referenced memory
type RefType struct {
	Name string
}

func (*IntType) String() string  { return "Int" }
func (*BoolType) String() string { return "Bool" }
func (r *RefType) String() string {
	return fmt.Sprintf("Ref(%s)", r.Name)
}

func (*IntType) IsRef() bool  { return false }
func (*BoolType) IsRef() bool { return false }
func (*RefType) IsRef() bool  { return true }

// TypesEqual compares two IR types structurally
func TypesEqual(a, b Type) bool {
	switch at := a.(type) {
	case *IntType:
		_, ok := b.(*IntType)
		return ok
	case *BoolType:
		_, ok := b.(*BoolType)
		return ok
	case *RefType:
		bt, ok := b.(*RefType)
		return ok && at.Name == bt.Name
	}
	return false
}

// LocalVar is a named, typed slot in the verification environment.
// Procedure slots use canonical names: "_0" for the return value, "_1"
// onward for arguments. Quantified variables keep their source names.
type LocalVar struct {
	Name string
	Type Type
}

func NewLocalVar(name string, typ Type) LocalVar {
	return LocalVar{Name: name, Type: typ}
}

func (v LocalVar) String() string {
	return fmt.Sprintf("%s: %s", v.Name, v.Type)
}

// Field is a typed accessor step in a place chain. Accessor names are
// canonical so repeated accesses to the same logical field compare equal:
// "tuple_<index>" for tuple projections, "enum_<variant>_<field>" for
// enum-qualified struct fields, "val_ref" for dereference, and
// "val_int"/"val_bool" for primitive value unwrapping.
type Field struct {
	Name string
	Type Type
}

func NewField(name string, typ Type) Field {
	return Field{Name: name, Type: typ}
}

func (f Field) String() string {
	return f.Name
}
