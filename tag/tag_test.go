package tag

import (
	"errors"
	"testing"
)

func TestCompoundPutReplacesAndOrphans(t *testing.T) {
	c := NewCompound("root")
	a := NewInt("a", 1)
	if prev, err := c.Put(a); err != nil || prev != nil {
		t.Fatalf("put: prev=%v err=%v", prev, err)
	}
	if a.Parent() != c {
		t.Fatal("child not parented")
	}
	b := NewInt("a", 2)
	prev, err := c.Put(b)
	if err != nil {
		t.Fatal(err)
	}
	if prev != a {
		t.Fatal("expected previous entry back")
	}
	if a.Parent() != nil {
		t.Fatal("replaced entry still parented")
	}
	if got := c.Get("a"); got != b {
		t.Fatal("replacement not in place")
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestCompoundPutRehomes(t *testing.T) {
	c1 := NewCompound("one")
	c2 := NewCompound("two")
	a := NewString("a", "x")
	c1.Put(a)
	if _, err := c2.Put(a); err != nil {
		t.Fatal(err)
	}
	if a.Parent() != c2 {
		t.Fatal("not re-homed")
	}
	if c1.Contains("a") {
		t.Fatal("still present in old parent")
	}
}

func TestCompoundClearOrphans(t *testing.T) {
	c := NewCompound("root")
	a := NewInt("a", 1)
	b := NewInt("b", 2)
	c.Put(a)
	c.Put(b)
	c.Clear()
	if !c.IsEmpty() {
		t.Fatal("not empty after clear")
	}
	if a.Parent() != nil || b.Parent() != nil {
		t.Fatal("children still parented after clear")
	}
}

func TestCompoundOrderPreserved(t *testing.T) {
	c := NewCompound("root")
	for _, name := range []string{"zulu", "alpha", "mike"} {
		c.Put(NewInt(name, 0))
	}
	want := []string{"zulu", "alpha", "mike"}
	got := c.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
}

func TestListFixesElementType(t *testing.T) {
	l := NewList("l")
	if l.ElementType() != TypeEnd {
		t.Fatal("empty list should be untyped")
	}
	if err := l.Append(NewInt("", 1)); err != nil {
		t.Fatal(err)
	}
	if l.ElementType() != TypeInt {
		t.Fatalf("element type = %v", l.ElementType())
	}
	err := l.Append(NewString("", "nope"))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("err = %v, want ErrTypeMismatch", err)
	}
}

func TestListInsertShifts(t *testing.T) {
	l := NewList("l")
	l.Append(NewInt("", 1))
	l.Append(NewInt("", 3))
	if err := l.Insert(1, NewInt("", 2)); err != nil {
		t.Fatal(err)
	}
	for i, want := range []int32{1, 2, 3} {
		if got := l.Index(i).IntValue(); got != want {
			t.Fatalf("index %d = %d, want %d", i, got, want)
		}
	}
}

func TestListSetOrphansPrevious(t *testing.T) {
	l := NewList("l")
	old := NewInt("", 1)
	l.Append(old)
	if err := l.SetIndex(0, NewInt("", 2)); err != nil {
		t.Fatal(err)
	}
	if old.Parent() != nil {
		t.Fatal("replaced element still parented")
	}
	if l.Index(0).IntValue() != 2 {
		t.Fatal("overwrite missing")
	}
}

func TestArrayCopyInCopyOut(t *testing.T) {
	src := []int32{1, 2, 3}
	a := NewIntArray("a", src)
	src[0] = 99
	if a.Index(0).IntValue() != 1 {
		t.Fatal("constructor aliased caller buffer")
	}
	out := a.IntArrayValue()
	out[1] = 99
	if a.Index(1).IntValue() != 2 {
		t.Fatal("getter aliased internal storage")
	}
}

func TestArrayProxyWriteThrough(t *testing.T) {
	a := NewByteArray("a", []byte{1, 2, 3})
	p := a.Index(1)
	if !p.IsProxy() || p.Parent() != a {
		t.Fatal("expected proxy element")
	}
	if err := p.SetByte(9); err != nil {
		t.Fatal(err)
	}
	if a.ByteArrayValue()[1] != 9 {
		t.Fatal("write did not reach storage")
	}
}

func TestArrayRemoveByProxySplices(t *testing.T) {
	a := NewIntArray("a", []int32{10, 20, 30})
	p := a.Index(1)
	if !a.RemoveChild(p) {
		t.Fatal("remove failed")
	}
	want := []int32{10, 30}
	got := a.IntArrayValue()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestArrayAppendKindChecked(t *testing.T) {
	a := NewLongArray("a", nil)
	if err := a.Append(NewLong("", 7)); err != nil {
		t.Fatal(err)
	}
	err := a.Append(NewInt("", 7))
	if !errors.Is(err, ErrNotApplicable) {
		t.Fatalf("err = %v, want ErrNotApplicable", err)
	}
	if a.Len() != 1 {
		t.Fatalf("len = %d", a.Len())
	}
}

func TestEqual(t *testing.T) {
	mk := func() *Tag {
		c := NewCompound("root")
		c.Put(NewInt("a", 1))
		l := NewList("l")
		l.Append(NewString("", "x"))
		c.Put(l)
		c.Put(NewByteArray("b", []byte{1, 2}))
		return c
	}
	if !Equal(mk(), mk()) {
		t.Fatal("identical trees not equal")
	}
	other := mk()
	other.Get("b").SetByteArray([]byte{1, 3})
	if Equal(mk(), other) {
		t.Fatal("different trees equal")
	}
}

func TestEqualCompoundOrderInsensitive(t *testing.T) {
	a := NewCompound("root")
	a.Put(NewInt("x", 1))
	a.Put(NewInt("y", 2))
	b := NewCompound("root")
	b.Put(NewInt("y", 2))
	b.Put(NewInt("x", 1))
	if !Equal(a, b) {
		t.Fatal("compound equality should ignore entry order")
	}
}

func TestRootWalksUp(t *testing.T) {
	root := NewCompound("root")
	mid := NewCompound("mid")
	leaf := NewInt("leaf", 0)
	root.Put(mid)
	mid.Put(leaf)
	if leaf.Root() != root {
		t.Fatal("Root did not reach top")
	}
}
