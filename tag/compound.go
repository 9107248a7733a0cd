package tag

import "fmt"

// Compound operations. All of them error on a non-compound receiver via
// ErrNotApplicable, except the read-only ones, which return zero values.

// Contains reports whether the compound has an entry with the given name.
func (t *Tag) Contains(name string) bool {
	return t.Get(name) != nil
}

// Get returns the child with the given name, or nil.
func (t *Tag) Get(name string) *Tag {
	if t == nil || t.typ != TypeCompound {
		return nil
	}
	for _, c := range t.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Put inserts child under its own name, replacing and returning any
// previous entry. The previous entry is orphaned; the new child is detached
// from any prior parent. A replaced entry keeps its position; a new name
// appends.
func (t *Tag) Put(child *Tag) (*Tag, error) {
	if t.typ != TypeCompound {
		return nil, fmt.Errorf("%w: put on %s", ErrNotApplicable, t.typ)
	}
	if child.proxy {
		return nil, fmt.Errorf("%w: cannot put a synthesized array element", ErrNotApplicable)
	}
	child.detach()
	for i, c := range t.children {
		if c.name == child.name {
			t.children[i] = child
			child.setParent(t)
			c.setParent(nil)
			return c, nil
		}
	}
	t.children = append(t.children, child)
	child.setParent(t)
	return nil, nil
}

// Remove deletes and returns the entry with the given name, or nil.
func (t *Tag) Remove(name string) *Tag {
	if t.typ != TypeCompound {
		return nil
	}
	for i, c := range t.children {
		if c.name == name {
			t.children = append(t.children[:i], t.children[i+1:]...)
			c.setParent(nil)
			return c
		}
	}
	return nil
}

// Keys returns the compound's entry names in insertion order.
func (t *Tag) Keys() []string {
	if t.typ != TypeCompound {
		return nil
	}
	keys := make([]string, len(t.children))
	for i, c := range t.children {
		keys[i] = c.name
	}
	return keys
}

// Len returns the number of children of a container tag, or 0.
func (t *Tag) Len() int {
	if t == nil {
		return 0
	}
	switch t.typ {
	case TypeCompound, TypeList:
		return len(t.children)
	case TypeByteArray:
		return len(t.bytes)
	case TypeIntArray:
		return len(t.ints)
	case TypeLongArray:
		return len(t.longs)
	default:
		return 0
	}
}

// IsEmpty reports whether a container has no children. Non-containers are
// empty.
func (t *Tag) IsEmpty() bool { return t.Len() == 0 }

// Clear removes all children of a container, orphaning each.
func (t *Tag) Clear() {
	switch t.typ {
	case TypeCompound, TypeList:
		for _, c := range t.children {
			c.setParent(nil)
		}
		t.children = nil
	case TypeByteArray:
		t.bytes = nil
	case TypeIntArray:
		t.ints = nil
	case TypeLongArray:
		t.longs = nil
	}
}

// Children returns the container's children in order. Array elements are
// synthesized proxies. The slice is the caller's to keep.
func (t *Tag) Children() []*Tag {
	if t == nil {
		return nil
	}
	switch t.typ {
	case TypeCompound, TypeList:
		return append([]*Tag(nil), t.children...)
	case TypeByteArray, TypeIntArray, TypeLongArray:
		res := make([]*Tag, t.Len())
		for i := range res {
			res[i] = t.Index(i)
		}
		return res
	default:
		return nil
	}
}
