package ir

// DirectType represents the definition of a nominal type: a struct, union,
// enum, or transparent alias.  Definitions live in the Program's nominal type
// arena and are referenced from structural types by key.
type DirectType interface {
	direct()
}

// Field is one named, typed entry of a struct or union definition.  Order is
// significant for layout purposes even though this tier computes no layout.
type Field struct {
	Name string
	Type Type
}

// StructType is a nominal struct definition.
type StructType struct {
	// The fields of the struct in declaration order.
	Fields []Field
}

// FieldByName returns the struct field with the given name if one exists.
func (st *StructType) FieldByName(name string) (Field, bool) {
	for _, field := range st.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return Field{}, false
}

// UnionType is a nominal union definition.
type UnionType struct {
	// The variants of the union in declaration order.
	Variants []Field
}

// EnumVariant is one variant of an enum definition.
type EnumVariant struct {
	Name string

	// The caller-supplied discriminant.  Discriminants are not required to be
	// unique or contiguous; on a reverse lookup of a repeated discriminant the
	// later variant wins.
	Discriminant int32
}

// EnumType is a nominal enum definition.
type EnumType struct {
	Variants []EnumVariant
}

// VariantByName returns the enum variant with the given name if one exists.
func (et *EnumType) VariantByName(name string) (EnumVariant, bool) {
	for _, variant := range et.Variants {
		if variant.Name == name {
			return variant, true
		}
	}

	return EnumVariant{}, false
}

// AliasType is a nominal alias to a structural type.  Member access looks
// through alias chains to the underlying definition; assignability does not,
// so an alias is a distinct type from what it names.
type AliasType struct {
	Type Type
}

func (*StructType) direct() {}
func (*UnionType) direct()  {}
func (*EnumType) direct()   {}
func (*AliasType) direct()  {}
