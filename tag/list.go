package tag

import "fmt"

// Indexed operations, shared by lists and primitive arrays.

// ElementType returns the fixed element kind of a list (TypeEnd while the
// list is still empty and untyped) or the primitive kind of an array.
func (t *Tag) ElementType() Type {
	if t == nil {
		return TypeEnd
	}
	if t.typ == TypeList {
		return t.elem
	}
	return t.typ.elemType()
}

// Index returns the element at i, or nil when out of bounds. Array
// elements are synthesized proxies identified by (array, index).
func (t *Tag) Index(i int) *Tag {
	if t == nil || i < 0 || i >= t.Len() {
		return nil
	}
	switch t.typ {
	case TypeList:
		return t.children[i]
	case TypeByteArray, TypeIntArray, TypeLongArray:
		return &Tag{typ: t.typ.elemType(), parent: t, proxy: true, proxyIndex: i}
	default:
		return nil
	}
}

// Append adds child at the end. The first insert into an untyped list
// fixes its element kind; later inserts of a different kind fail with
// ErrTypeMismatch. Arrays accept only tags of their element kind and
// report ErrNotApplicable otherwise.
func (t *Tag) Append(child *Tag) error {
	return t.Insert(t.Len(), child)
}

// Insert adds child at index i, displacing later elements.
func (t *Tag) Insert(i int, child *Tag) error {
	if i < 0 || i > t.Len() {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, i)
	}
	switch t.typ {
	case TypeList:
		if err := t.checkListKind(child); err != nil {
			return err
		}
		child.detach()
		t.children = append(t.children, nil)
		copy(t.children[i+1:], t.children[i:])
		t.children[i] = child
		child.setParent(t)
		if t.elem == TypeEnd {
			t.elem = child.typ
		}
		return nil
	case TypeByteArray:
		if child.typ != TypeByte {
			return fmt.Errorf("%w: %s into %s", ErrNotApplicable, child.typ, t.typ)
		}
		t.bytes = append(t.bytes, 0)
		copy(t.bytes[i+1:], t.bytes[i:])
		t.bytes[i] = byte(child.ByteValue())
		return nil
	case TypeIntArray:
		if child.typ != TypeInt {
			return fmt.Errorf("%w: %s into %s", ErrNotApplicable, child.typ, t.typ)
		}
		t.ints = append(t.ints, 0)
		copy(t.ints[i+1:], t.ints[i:])
		t.ints[i] = child.IntValue()
		return nil
	case TypeLongArray:
		if child.typ != TypeLong {
			return fmt.Errorf("%w: %s into %s", ErrNotApplicable, child.typ, t.typ)
		}
		t.longs = append(t.longs, 0)
		copy(t.longs[i+1:], t.longs[i:])
		t.longs[i] = child.LongValue()
		return nil
	default:
		return fmt.Errorf("%w: insert into %s", ErrNotApplicable, t.typ)
	}
}

// SetIndex overwrites the element at i, orphaning any replaced list
// element.
func (t *Tag) SetIndex(i int, child *Tag) error {
	if i < 0 || i >= t.Len() {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, i)
	}
	switch t.typ {
	case TypeList:
		if err := t.checkListKind(child); err != nil {
			return err
		}
		child.detach()
		prev := t.children[i]
		t.children[i] = child
		child.setParent(t)
		prev.setParent(nil)
		return nil
	case TypeByteArray:
		if child.typ != TypeByte {
			return fmt.Errorf("%w: %s into %s", ErrNotApplicable, child.typ, t.typ)
		}
		t.bytes[i] = byte(child.ByteValue())
		return nil
	case TypeIntArray:
		if child.typ != TypeInt {
			return fmt.Errorf("%w: %s into %s", ErrNotApplicable, child.typ, t.typ)
		}
		t.ints[i] = child.IntValue()
		return nil
	case TypeLongArray:
		if child.typ != TypeLong {
			return fmt.Errorf("%w: %s into %s", ErrNotApplicable, child.typ, t.typ)
		}
		t.longs[i] = child.LongValue()
		return nil
	default:
		return fmt.Errorf("%w: set on %s", ErrNotApplicable, t.typ)
	}
}

// IndexOf returns the index of child in an indexed container, or -1.
// List elements match by identity, array elements by proxy identity.
func (t *Tag) IndexOf(child *Tag) int {
	switch t.typ {
	case TypeList:
		for i, c := range t.children {
			if c == child {
				return i
			}
		}
	case TypeByteArray, TypeIntArray, TypeLongArray:
		if child.proxy && child.parent == t && child.proxyIndex < t.Len() {
			return child.proxyIndex
		}
	}
	return -1
}

// RemoveChild removes child from the container and reports whether it was
// present. Compound entries match by identity; array proxies splice their
// index out of the backing storage.
func (t *Tag) RemoveChild(child *Tag) bool {
	switch t.typ {
	case TypeCompound, TypeList:
		for i, c := range t.children {
			if c == child {
				t.children = append(t.children[:i], t.children[i+1:]...)
				c.setParent(nil)
				return true
			}
		}
	case TypeByteArray:
		if i := t.IndexOf(child); i != -1 {
			t.bytes = append(t.bytes[:i], t.bytes[i+1:]...)
			return true
		}
	case TypeIntArray:
		if i := t.IndexOf(child); i != -1 {
			t.ints = append(t.ints[:i], t.ints[i+1:]...)
			return true
		}
	case TypeLongArray:
		if i := t.IndexOf(child); i != -1 {
			t.longs = append(t.longs[:i], t.longs[i+1:]...)
			return true
		}
	}
	return false
}

func (t *Tag) checkListKind(child *Tag) error {
	if child.proxy {
		return fmt.Errorf("%w: cannot insert a synthesized array element", ErrNotApplicable)
	}
	if t.elem != TypeEnd && child.typ != t.elem {
		return fmt.Errorf("%w: cannot insert %s into list of %s", ErrTypeMismatch, child.typ, t.elem)
	}
	return nil
}
