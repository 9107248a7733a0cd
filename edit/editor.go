package edit

import (
	"fmt"

	"github.com/nbt-format/go-nbt/path"
	"github.com/nbt-format/go-nbt/tag"
)

// Editor holds a tree root and a cursor and applies path-addressed
// mutations. The cursor is the base for relative paths and is kept valid
// across deletions: it never points into a detached subtree.
type Editor struct {
	root   *tag.Tag
	cursor *tag.Tag
	dirty  bool
}

// NewEditor wraps root, which may be nil for an empty document. The
// cursor starts at the root.
func NewEditor(root *tag.Tag) *Editor {
	return &Editor{root: root, cursor: root}
}

func (e *Editor) Root() *tag.Tag   { return e.root }
func (e *Editor) Cursor() *tag.Tag { return e.cursor }

// Dirty reports whether the tree changed since the last MarkClean.
func (e *Editor) Dirty() bool { return e.dirty }
func (e *Editor) MarkClean() { e.dirty = false }

// Resolve resolves text against the editor's root and cursor.
func (e *Editor) Resolve(text string, pol path.Policy) (path.Resolved, error) {
	return path.Resolve(e.root, e.cursor, text, pol)
}

// SetCursor moves the cursor. The destination must be a container.
func (e *Editor) SetCursor(text string) error {
	res, err := e.Resolve(text, path.ParentsOnly)
	if err != nil {
		return err
	}
	e.cursor = res.Leaf
	return nil
}

// Get returns the tag at text, failing if it does not exist.
func (e *Editor) Get(text string) (*tag.Tag, error) {
	res, err := e.Resolve(text, 0)
	if err != nil {
		return nil, err
	}
	return res.Leaf, nil
}

// Remove deletes the tag at text. A non-empty compound is refused unless
// recursive is set. Deleting the root clears both root and cursor;
// deleting an ancestor of the cursor walks the cursor up to the nearest
// surviving ancestor.
func (e *Editor) Remove(text string, recursive bool) error {
	res, err := e.Resolve(text, 0)
	if err != nil {
		return err
	}
	t := res.Leaf
	if t == nil {
		return fmt.Errorf("%w: %s", path.ErrNoSuchPath, text)
	}
	if t.Type() == tag.TypeCompound && !t.IsEmpty() && !recursive {
		return fmt.Errorf("%w: %s", ErrWouldDeleteNonEmpty, path.Of(t))
	}

	// ancestors of the cursor, innermost first
	var chain []*tag.Tag
	for c := e.cursor; c != nil; c = c.Parent() {
		chain = append(chain, c)
	}

	if t.Parent() == nil {
		if t != e.root {
			return fmt.Errorf("tag %s has no parent but is not the root", path.Of(t))
		}
		e.root = nil
		e.cursor = nil
		e.dirty = true
		return nil
	}
	t.RemoveFromParent()
	e.dirty = true
	for i, c := range chain {
		if c == t {
			if i+1 < len(chain) {
				e.cursor = chain[i+1]
			} else {
				e.cursor = nil
			}
			break
		}
	}
	return nil
}

// MkCompound ensures a compound exists at text, creating parents along
// the way. An existing tag of another kind is an overwrite refusal.
func (e *Editor) MkCompound(text string) error {
	res, err := e.Resolve(text, path.NoError)
	if err != nil {
		return err
	}
	if res.Leaf == nil {
		return e.Set(text, "", SetOptions{Type: tag.TypeCompound})
	}
	if res.Leaf.Type() != tag.TypeCompound {
		return fmt.Errorf("%w: %s already exists and is not a compound", ErrWouldOverwrite, text)
	}
	return nil
}
