package edit

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nbt-format/go-nbt/path"
	"github.com/nbt-format/go-nbt/tag"
)

// SetOptions control Set. The zero value overwrites in place with no
// explicit kind.
type SetOptions struct {
	// Type is the kind for newly created tags and a consistency check
	// against existing ones. TypeEnd means unspecified.
	Type tag.Type

	// NoOverwrite fails instead of changing an existing tag.
	NoOverwrite bool

	// Shift inserts into lists, displacing later elements, instead of
	// overwriting at the index.
	Shift bool
}

// Set writes value at text, creating missing parents. An existing leaf
// is overwritten in place; an absent one is created with the requested
// kind (or the list's element kind). When the target is absent, no kind
// was given, and sibling long tags <text>Most/<text>Least exist, the
// value is taken as a UUID and stored across the pair.
func (e *Editor) Set(text, value string, opts SetOptions) error {
	if e.root == nil {
		return e.setRoot(text, value, opts)
	}

	trimmed := strings.TrimRight(text, "/")
	res, err := e.Resolve(text, path.CreateParents|path.SoftOutOfBounds)
	if err != nil {
		return err
	}

	if res.Leaf == nil && opts.Type == tag.TypeEnd {
		if e.uuidPairAt(trimmed) {
			return e.SetUUID(text, value, OldUUID, opts)
		}
	}

	if res.Leaf != nil && !res.Parent.IsIndexed() {
		return e.setInPlace(res.Leaf, value, opts)
	}
	if res.Parent != nil {
		return e.setUnderParent(res, value, opts)
	}
	return fmt.Errorf("%w: failed to resolve %s", path.ErrNoSuchPath, text)
}

// setRoot creates the root of an empty document.
func (e *Editor) setRoot(text, value string, opts SetOptions) error {
	if opts.Type == tag.TypeEnd {
		return ErrNeedType
	}
	t, err := tag.New(opts.Type, strings.TrimPrefix(text, "/"))
	if err != nil {
		return err
	}
	if err := ParseValue(t, value); err != nil {
		return err
	}
	e.root = t
	e.cursor = t
	e.dirty = true
	return nil
}

// setInPlace overwrites an existing leaf under a compound (or the root).
func (e *Editor) setInPlace(leaf *tag.Tag, value string, opts SetOptions) error {
	if opts.NoOverwrite {
		return ErrWouldOverwrite
	}
	if leaf.IsIndexed() && opts.Shift {
		// shift onto a list appends a new element of its kind
		elem := leaf.ElementType()
		if opts.Type != tag.TypeEnd && elem != tag.TypeEnd && opts.Type != elem {
			return fmt.Errorf("%w: explicit type %s is incompatible with element type %s",
				tag.ErrTypeMismatch, opts.Type, elem)
		}
		if elem == tag.TypeEnd {
			elem = opts.Type
		}
		if elem == tag.TypeEnd {
			return fmt.Errorf("%w (to add an initial tag to a list)", ErrNeedType)
		}
		t, err := tag.New(elem, "")
		if err != nil {
			return err
		}
		if err := ParseValue(t, value); err != nil {
			return err
		}
		if err := leaf.Append(t); err != nil {
			return err
		}
		e.dirty = true
		return nil
	}
	if opts.Type != tag.TypeEnd && opts.Type != leaf.Type() {
		return fmt.Errorf("%w: explicit type %s is incompatible with existing type %s",
			tag.ErrTypeMismatch, opts.Type, leaf.Type())
	}
	if err := ParseValue(leaf, value); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

// setUnderParent creates or replaces a tag below the resolved parent:
// a new member of a compound, or an element write into a list or array.
func (e *Editor) setUnderParent(res path.Resolved, value string, opts SetOptions) error {
	kind := opts.Type
	if kind == tag.TypeEnd && res.Parent.IsIndexed() {
		kind = res.Parent.ElementType()
	}
	if kind == tag.TypeEnd {
		return ErrNeedType
	}
	name := res.LeafName
	if res.Parent.IsIndexed() {
		name = ""
	}
	t, err := tag.New(kind, name)
	if err != nil {
		return err
	}
	if err := ParseValue(t, value); err != nil {
		return err
	}

	if res.Parent.IsIndexed() {
		idx, convErr := strconv.Atoi(res.LeafName)
		if convErr != nil || idx < 0 {
			return fmt.Errorf("%w: %q is not a valid list index", path.ErrInvalidIndex, res.LeafName)
		}
		switch {
		case idx > res.Parent.Len():
			return fmt.Errorf("%w: %d is out of bounds", path.ErrOutOfBounds, idx)
		case idx == res.Parent.Len():
			err = res.Parent.Append(t)
		case opts.Shift:
			err = res.Parent.Insert(idx, t)
		default:
			err = res.Parent.SetIndex(idx, t)
		}
		if err != nil {
			return err
		}
	} else {
		if opts.NoOverwrite && res.Parent.Contains(name) {
			return ErrWouldOverwrite
		}
		if _, err := res.Parent.Put(t); err != nil {
			return err
		}
	}
	e.dirty = true
	return nil
}

// UUIDStyle selects how a UUID is persisted.
type UUIDStyle int

const (
	// OldUUID stores two long tags named <path>Most and <path>Least.
	OldUUID UUIDStyle = iota
	// NewUUID stores a four-element int array.
	NewUUID
)

// SetUUID writes a textual UUID at text in the given style.
func (e *Editor) SetUUID(text, value string, style UUIDStyle, opts SetOptions) error {
	u, err := uuid.Parse(value)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid UUID", ErrBadValue, value)
	}
	trimmed := strings.TrimRight(text, "/")
	if style == NewUUID {
		words := make([]string, 4)
		for i := range words {
			w := int32(binary.BigEndian.Uint32(u[i*4:]))
			words[i] = strconv.FormatInt(int64(w), 10)
		}
		opts.Type = tag.TypeIntArray
		return e.Set(trimmed, strings.Join(words, " "), opts)
	}
	if e.root == nil {
		return fmt.Errorf("%w: old-style UUIDs are two tags and cannot be the root of a file", ErrBadValue)
	}
	most := int64(binary.BigEndian.Uint64(u[:8]))
	least := int64(binary.BigEndian.Uint64(u[8:]))
	opts.Type = tag.TypeLong
	if err := e.Set(trimmed+"Most", strconv.FormatInt(most, 10), opts); err != nil {
		return err
	}
	return e.Set(trimmed+"Least", strconv.FormatInt(least, 10), opts)
}

// uuidPairAt reports whether long tags <text>Most and <text>Least exist.
func (e *Editor) uuidPairAt(text string) bool {
	most, err := e.Resolve(text+"Most", path.NoError)
	if err != nil || most.Leaf == nil || most.Leaf.Type() != tag.TypeLong {
		return false
	}
	least, err := e.Resolve(text+"Least", path.NoError)
	return err == nil && least.Leaf != nil && least.Leaf.Type() == tag.TypeLong
}
