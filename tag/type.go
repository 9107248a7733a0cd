package tag

import "fmt"

// Type identifies a tag kind. The numeric values are the wire type ids of
// the binary format; TypeEnd is the compound terminator and never appears
// as the kind of a real tag.
type Type byte

const (
	TypeEnd Type = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeByteArray
	TypeString
	TypeList
	TypeCompound
	TypeIntArray
	TypeLongArray
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TypeEnd:       "end",
		TypeByte:      "byte",
		TypeShort:     "short",
		TypeInt:       "int",
		TypeLong:      "long",
		TypeFloat:     "float",
		TypeDouble:    "double",
		TypeByteArray: "byte-array",
		TypeString:    "string",
		TypeList:      "list",
		TypeCompound:  "compound",
		TypeIntArray:  "int-array",
		TypeLongArray: "long-array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// ParseType maps a type name to its Type. Names are the ones accepted by
// editing commands ("byte", "int-array", ...); TypeEnd has no name.
func ParseType(v string) (Type, error) {
	t, ok := map[string]Type{
		"byte":       TypeByte,
		"short":      TypeShort,
		"int":        TypeInt,
		"long":       TypeLong,
		"float":      TypeFloat,
		"double":     TypeDouble,
		"byte-array": TypeByteArray,
		"string":     TypeString,
		"list":       TypeList,
		"compound":   TypeCompound,
		"int-array":  TypeIntArray,
		"long-array": TypeLongArray,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, v)
	}
	return t, nil
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// Types returns every real tag kind in wire-id order.
func Types() []Type {
	return []Type{
		TypeByte,
		TypeShort,
		TypeInt,
		TypeLong,
		TypeFloat,
		TypeDouble,
		TypeByteArray,
		TypeString,
		TypeList,
		TypeCompound,
		TypeIntArray,
		TypeLongArray,
	}
}

// Valid reports whether t is a real tag kind (not TypeEnd or junk).
func (t Type) Valid() bool {
	return t >= TypeByte && t <= TypeLongArray
}

// IsNumber reports whether t is one of the six fixed-width numeric kinds.
func (t Type) IsNumber() bool {
	return t >= TypeByte && t <= TypeDouble
}

// IsIntegral reports whether t is an integer numeric kind.
func (t Type) IsIntegral() bool {
	return t >= TypeByte && t <= TypeLong
}

// IsArray reports whether t is one of the primitive array kinds.
func (t Type) IsArray() bool {
	return t == TypeByteArray || t == TypeIntArray || t == TypeLongArray
}

// IsContainer reports whether tags of this kind can hold children
// (compound, list, or a primitive array).
func (t Type) IsContainer() bool {
	return t == TypeCompound || t == TypeList || t.IsArray()
}

// IsIndexed reports whether tags of this kind are addressed by integer
// index (list or primitive array).
func (t Type) IsIndexed() bool {
	return t == TypeList || t.IsArray()
}

// elemType returns the element kind of an array type.
func (t Type) elemType() Type {
	switch t {
	case TypeByteArray:
		return TypeByte
	case TypeIntArray:
		return TypeInt
	case TypeLongArray:
		return TypeLong
	default:
		return TypeEnd
	}
}
