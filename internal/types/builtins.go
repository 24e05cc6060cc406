package types

// BuiltinTypes contains the primitive type names the assertion language
// accepts in signatures and quantifier bindings
var BuiltinTypes = map[string]Type{
	"bool": &BoolType{},
	"int":  &IntType{},
	"i8":   &IntType{Bits: 8, Signed: true},
	"i16":  &IntType{Bits: 16, Signed: true},
	"i32":  &IntType{Bits: 32, Signed: true},
	"i64":  &IntType{Bits: 64, Signed: true},
	"u8":   &IntType{Bits: 8},
	"u16":  &IntType{Bits: 16},
	"u32":  &IntType{Bits: 32},
	"u64":  &IntType{Bits: 64},
}

// IsBuiltinType checks if a type name is a built-in type
func IsBuiltinType(typeName string) bool {
	_, ok := BuiltinTypes[typeName]
	return ok
}

// BuiltinType returns the type for a built-in type name
func BuiltinType(typeName string) (Type, bool) {
	t, ok := BuiltinTypes[typeName]
	return t, ok
}
