package path

import (
	"fmt"
	"strconv"

	"github.com/nbt-format/go-nbt/tag"
)

// Policy alters resolution behavior. Policies compose: CreateParents and
// SoftOutOfBounds may be combined, ParentsOnly is checked only after the
// walk finishes, and NoError turns any failure into a best-effort partial
// result for speculative lookups.
type Policy uint8

const (
	// CreateParents synthesizes absent intermediate compounds and lets a
	// final absent key resolve to an absent leaf instead of failing.
	CreateParents Policy = 1 << iota

	// SoftOutOfBounds turns an out-of-bounds index into an absent leaf.
	SoftOutOfBounds

	// ParentsOnly requires the resolved tag to be a container.
	ParentsOnly

	// NoError suppresses resolution failures, returning whatever partial
	// context was reached. Never use it for destructive operations.
	NoError
)

func (p Policy) has(q Policy) bool { return p&q != 0 }

// Resolved is the outcome of a path walk. Leaf is nil when the path names
// a location that does not exist yet (under CreateParents or
// SoftOutOfBounds); Parent is then the container the location would live
// in. FullPath is derived from the tree and empty for an absent leaf.
type Resolved struct {
	Parent     *tag.Tag
	Leaf       *tag.Tag
	ParentPath string
	FullPath   string

	// LeafName is the text of the final segment: the key an absent leaf
	// would be created under, or the index digits for a bracketed
	// segment.
	LeafName string
}

// Resolve walks text from cursor, or from root when text is
// root-relative. On failure the returned Resolved still carries the
// partial parent context reached, which NoError exposes to callers.
func Resolve(root, cursor *tag.Tag, text string, pol Policy) (Resolved, error) {
	res, err := resolve(root, cursor, text, pol)
	if err != nil && pol.has(NoError) {
		res.Leaf = nil
		res.FullPath = ""
		return res, nil
	}
	return res, err
}

func resolve(root, cursor *tag.Tag, text string, pol Policy) (Resolved, error) {
	current := cursor
	segs, abs, err := lex(text)
	if err != nil {
		return Resolved{}, err
	}
	if abs {
		current = root
	}
	var parent *tag.Tag
	if current != nil {
		parent = current.Parent()
	}
	parentPath := ""
	leafName := ""
	if len(segs) > 0 {
		leafName = segs[len(segs)-1].text
	}

	for i, seg := range segs {
		final := i == len(segs)-1
		fail := func(err error) (Resolved, error) {
			return Resolved{Parent: parent, ParentPath: parentPath, LeafName: leafName}, err
		}
		switch {
		case !seg.index && (seg.text == "" || seg.text == "."):
			if current == nil || !current.IsContainer() {
				return fail(fmt.Errorf("%w: cannot use %s as a parent", ErrNotTraversable, describe(current)))
			}
			parent = current
			parentPath = render(abs, segs[:i])
		case !seg.index && seg.text == "..":
			if current == nil {
				return fail(fmt.Errorf("%w: cannot traverse above nothing", ErrNoSuchPath))
			}
			if current.Parent() == nil {
				return fail(fmt.Errorf("%w: cannot traverse above root", ErrNoSuchPath))
			}
			current = current.Parent()
			parent = current.Parent()
			parentPath = render(abs, segs[:i])
		case current != nil && current.Type() == tag.TypeCompound:
			parent = current
			parentPath = render(abs, segs[:i])
			if child := current.Get(seg.text); child != nil {
				current = child
			} else if pol.has(CreateParents) {
				if final {
					return Resolved{Parent: parent, ParentPath: parentPath, LeafName: leafName}, nil
				}
				made := tag.NewCompound(seg.text)
				if _, err := current.Put(made); err != nil {
					return fail(err)
				}
				current = made
			} else {
				return fail(fmt.Errorf("%w: %s does not exist", ErrNoSuchPath, render(abs, segs[:i+1])))
			}
		case current != nil && current.IsIndexed():
			parent = current
			parentPath = render(abs, segs[:i])
			idx, convErr := strconv.Atoi(seg.text)
			if convErr != nil || idx < 0 {
				return fail(fmt.Errorf("%w: %q is not a valid list index", ErrInvalidIndex, seg.text))
			}
			if idx >= current.Len() {
				if pol.has(SoftOutOfBounds) {
					return Resolved{Parent: parent, ParentPath: parentPath, LeafName: leafName}, nil
				}
				return fail(fmt.Errorf("%w: %d is out of bounds", ErrOutOfBounds, idx))
			}
			current = current.Index(idx)
		default:
			return fail(fmt.Errorf("%w: cannot traverse into %s", ErrNotTraversable, describe(current)))
		}
	}

	if pol.has(ParentsOnly) && (current == nil || !current.IsContainer()) {
		return Resolved{Parent: parent, ParentPath: parentPath, LeafName: leafName},
			fmt.Errorf("%w: %s is not valid here", ErrNotApplicable, describe(current))
	}
	return Resolved{
		Parent:     parent,
		Leaf:       current,
		ParentPath: parentPath,
		FullPath:   Of(current),
		LeafName:   leafName,
	}, nil
}

func describe(t *tag.Tag) string {
	if t == nil {
		return "nothing"
	}
	return t.Type().String()
}
