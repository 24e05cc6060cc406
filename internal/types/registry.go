package types

// Registry manages the types declared in one specification file
type Registry struct {
	structs map[string]*StructType
	enums   map[string]*EnumType
}

// NewRegistry creates an empty declared-type registry
func NewRegistry() *Registry {
	return &Registry{
		structs: make(map[string]*StructType),
		enums:   make(map[string]*EnumType),
	}
}

// AddStruct registers a declared struct type. Returns false when the name
// is already taken.
func (r *Registry) AddStruct(s *StructType) bool {
	if r.nameTaken(s.Name) {
		return false
	}
	r.structs[s.Name] = s
	return true
}

// AddEnum registers a declared enum type. Returns false when the name is
// already taken.
func (r *Registry) AddEnum(e *EnumType) bool {
	if r.nameTaken(e.Name) {
		return false
	}
	r.enums[e.Name] = e
	return true
}

func (r *Registry) nameTaken(name string) bool {
	if IsBuiltinType(name) {
		return true
	}
	if _, ok := r.structs[name]; ok {
		return true
	}
	_, ok := r.enums[name]
	return ok
}

// Struct returns the declared struct type with the given name
func (r *Registry) Struct(name string) (*StructType, bool) {
	s, ok := r.structs[name]
	return s, ok
}

// Enum returns the declared enum type with the given name
func (r *Registry) Enum(name string) (*EnumType, bool) {
	e, ok := r.enums[name]
	return e, ok
}

// Lookup resolves a type name against builtins, then declared structs and
// enums
func (r *Registry) Lookup(name string) (Type, bool) {
	if t, ok := BuiltinType(name); ok {
		return t, true
	}
	if s, ok := r.structs[name]; ok {
		return s, true
	}
	if e, ok := r.enums[name]; ok {
		return e, true
	}
	return nil, false
}
