package tag

import (
	"fmt"
)

// Tag is a single node of an NBT tree. The zero value is not useful; use
// New or one of the typed constructors.
//
// A Tag's name is meaningful only as a compound key. Elements of lists and
// arrays are unnamed.
type Tag struct {
	typ    Type
	name   string
	parent *Tag

	num   int64
	f64   float64
	str   string
	bytes []byte
	ints  []int32
	longs []int64

	elem     Type   // list element kind, TypeEnd until first insert
	children []*Tag // compound entries or list elements, in order

	// synthesized array element; identity is (parent array, index)
	proxy      bool
	proxyIndex int
}

// New creates an empty tag of the given kind.
func New(t Type, name string) (*Tag, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownType, int(t))
	}
	return &Tag{typ: t, name: name}, nil
}

func NewByte(name string, v int8) *Tag {
	return &Tag{typ: TypeByte, name: name, num: int64(v)}
}

func NewShort(name string, v int16) *Tag {
	return &Tag{typ: TypeShort, name: name, num: int64(v)}
}

func NewInt(name string, v int32) *Tag {
	return &Tag{typ: TypeInt, name: name, num: int64(v)}
}

func NewLong(name string, v int64) *Tag {
	return &Tag{typ: TypeLong, name: name, num: v}
}

func NewFloat(name string, v float32) *Tag {
	return &Tag{typ: TypeFloat, name: name, f64: float64(v)}
}

func NewDouble(name string, v float64) *Tag {
	return &Tag{typ: TypeDouble, name: name, f64: v}
}

func NewString(name, v string) *Tag {
	return &Tag{typ: TypeString, name: name, str: v}
}

// NewByteArray copies v into the new tag's storage.
func NewByteArray(name string, v []byte) *Tag {
	t := &Tag{typ: TypeByteArray, name: name}
	t.bytes = append([]byte(nil), v...)
	return t
}

func NewIntArray(name string, v []int32) *Tag {
	t := &Tag{typ: TypeIntArray, name: name}
	t.ints = append([]int32(nil), v...)
	return t
}

func NewLongArray(name string, v []int64) *Tag {
	t := &Tag{typ: TypeLongArray, name: name}
	t.longs = append([]int64(nil), v...)
	return t
}

// NewList creates an empty list. The element kind is fixed by the first
// Append.
func NewList(name string) *Tag {
	return &Tag{typ: TypeList, name: name}
}

func NewCompound(name string) *Tag {
	return &Tag{typ: TypeCompound, name: name}
}

func (t *Tag) Type() Type   { return t.typ }
func (t *Tag) Name() string { return t.name }

// Parent returns the containing tag, or nil if t is detached or a root.
// For synthesized array elements the parent is the array tag.
func (t *Tag) Parent() *Tag {
	if t == nil {
		return nil
	}
	return t.parent
}

// Root walks the parent chain to the top of the tree.
func (t *Tag) Root() *Tag {
	res := t
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// IsContainer reports whether t can hold children.
func (t *Tag) IsContainer() bool { return t != nil && t.typ.IsContainer() }

// IsIndexed reports whether t is addressed by integer index.
func (t *Tag) IsIndexed() bool { return t != nil && t.typ.IsIndexed() }

// IsProxy reports whether t is a synthesized array element.
func (t *Tag) IsProxy() bool { return t.proxy }

// ProxyIndex returns the index of a synthesized array element, or -1.
func (t *Tag) ProxyIndex() int {
	if !t.proxy {
		return -1
	}
	return t.proxyIndex
}

// Numeric accessors. Reads on a tag of the wrong kind return the zero
// value; writes are checked.

func (t *Tag) ByteValue() int8 {
	if t.proxy {
		return int8(t.parent.bytes[t.proxyIndex])
	}
	return int8(t.num)
}

func (t *Tag) ShortValue() int16 { return int16(t.num) }

func (t *Tag) IntValue() int32 {
	if t.proxy {
		return t.parent.ints[t.proxyIndex]
	}
	return int32(t.num)
}

func (t *Tag) LongValue() int64 {
	if t.proxy {
		return t.parent.longs[t.proxyIndex]
	}
	return t.num
}

func (t *Tag) FloatValue() float32  { return float32(t.f64) }
func (t *Tag) DoubleValue() float64 { return t.f64 }

// Int64 returns the value of any integral tag widened to int64.
func (t *Tag) Int64() int64 {
	switch t.typ {
	case TypeByte:
		return int64(t.ByteValue())
	case TypeInt:
		return int64(t.IntValue())
	case TypeLong:
		return t.LongValue()
	default:
		return t.num
	}
}

// Float64 returns the value of any numeric tag widened to float64.
func (t *Tag) Float64() float64 {
	if t.typ == TypeFloat || t.typ == TypeDouble {
		return t.f64
	}
	return float64(t.Int64())
}

// BoolValue reports whether a byte tag holds a nonzero value.
func (t *Tag) BoolValue() bool { return t.ByteValue() != 0 }

func (t *Tag) StringValue() string { return t.str }

func (t *Tag) SetByte(v int8) error {
	if t.typ != TypeByte {
		return fmt.Errorf("%w: cannot set byte on %s", ErrTypeMismatch, t.typ)
	}
	if t.proxy {
		return t.parent.setByteAt(t.proxyIndex, v)
	}
	t.num = int64(v)
	return nil
}

func (t *Tag) SetShort(v int16) error {
	if t.typ != TypeShort {
		return fmt.Errorf("%w: cannot set short on %s", ErrTypeMismatch, t.typ)
	}
	t.num = int64(v)
	return nil
}

func (t *Tag) SetInt(v int32) error {
	if t.typ != TypeInt {
		return fmt.Errorf("%w: cannot set int on %s", ErrTypeMismatch, t.typ)
	}
	if t.proxy {
		return t.parent.setIntAt(t.proxyIndex, v)
	}
	t.num = int64(v)
	return nil
}

func (t *Tag) SetLong(v int64) error {
	if t.typ != TypeLong {
		return fmt.Errorf("%w: cannot set long on %s", ErrTypeMismatch, t.typ)
	}
	if t.proxy {
		return t.parent.setLongAt(t.proxyIndex, v)
	}
	t.num = v
	return nil
}

func (t *Tag) SetFloat(v float32) error {
	if t.typ != TypeFloat {
		return fmt.Errorf("%w: cannot set float on %s", ErrTypeMismatch, t.typ)
	}
	t.f64 = float64(v)
	return nil
}

func (t *Tag) SetDouble(v float64) error {
	if t.typ != TypeDouble {
		return fmt.Errorf("%w: cannot set double on %s", ErrTypeMismatch, t.typ)
	}
	t.f64 = v
	return nil
}

func (t *Tag) SetString(v string) error {
	if t.typ != TypeString {
		return fmt.Errorf("%w: cannot set string on %s", ErrTypeMismatch, t.typ)
	}
	t.str = v
	return nil
}

// RemoveFromParent detaches t from its containing tag. It reports whether
// a removal happened.
func (t *Tag) RemoveFromParent() bool {
	p := t.parent
	if p == nil {
		return false
	}
	return p.RemoveChild(t)
}

// setParent is the single point where linkage is updated; container
// mutations always pair it with their own bookkeeping.
func (t *Tag) setParent(p *Tag) { t.parent = p }

// detach removes t from whatever container currently holds it, keeping the
// single-parent invariant before re-homing.
func (t *Tag) detach() {
	if t.parent != nil {
		t.parent.RemoveChild(t)
	}
}
