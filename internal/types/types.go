package types

import (
	"fmt"
	"strings"
)

// Type is the static type assigned to every surface expression by the
// semantic analyzer. The encoder dispatches on this model when deciding
// between raw values and heap references.
type Type interface {
	String() string
	isType()
}

func (*BoolType) isType()   {}
func (*IntType) isType()    {}
func (*StructType) isType() {}
func (*TupleType) isType()  {}
func (*EnumType) isType()   {}
func (*RefType) isType()    {}

// BoolType is the boolean value type
type BoolType struct{}

// IntType covers the signed and unsigned integer value types. Bits is 0
// for the unsized default "int".
type IntType struct {
	Bits   int
	Signed bool
}

// StructType is a declared aggregate with named, typed fields
type StructType struct {
	Name   string
	Fields []StructField
}

type StructField struct {
	Name string
	Type Type
}

// TupleType is a positional aggregate
type TupleType struct {
	Elems []Type
}

// EnumType is a declared fieldless enumeration
type EnumType struct {
	Name     string
	Variants []string
}

// RefType is a reference to a heap-allocated value of the element type
type RefType struct {
	Elem Type
}

func (*BoolType) String() string { return "bool" }

func (i *IntType) String() string {
	if i.Bits == 0 {
		return "int"
	}
	if i.Signed {
		return fmt.Sprintf("i%d", i.Bits)
	}
	return fmt.Sprintf("u%d", i.Bits)
}

func (s *StructType) String() string { return s.Name }

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elems))
	for i, elem := range t.Elems {
		parts[i] = elem.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (e *EnumType) String() string { return e.Name }

func (r *RefType) String() string { return "&" + r.Elem.String() }

// IsBool reports whether t is the boolean value type
func IsBool(t Type) bool {
	_, ok := t.(*BoolType)
	return ok
}

// IsInteger reports whether t is an integer value type of any width
func IsInteger(t Type) bool {
	_, ok := t.(*IntType)
	return ok
}

// IsRef reports whether t is a reference type
func IsRef(t Type) bool {
	_, ok := t.(*RefType)
	return ok
}

// Deref strips one reference layer, returning t unchanged for value types
func Deref(t Type) Type {
	if r, ok := t.(*RefType); ok {
		return r.Elem
	}
	return t
}

// Field looks up a named field on a struct type
func (s *StructType) Field(name string) (StructField, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return StructField{}, false
}

// HasVariant reports whether the enum declares the named variant
func (e *EnumType) HasVariant(name string) bool {
	for _, variant := range e.Variants {
		if variant == name {
			return true
		}
	}
	return false
}

// VariantIndex returns the declaration index of the named variant, or -1
func (e *EnumType) VariantIndex(name string) int {
	for i, variant := range e.Variants {
		if variant == name {
			return i
		}
	}
	return -1
}
