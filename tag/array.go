package tag

import "fmt"

// Whole-array accessors copy in both directions; internal storage never
// aliases a caller's slice.

func (t *Tag) ByteArrayValue() []byte {
	if t.typ != TypeByteArray {
		return nil
	}
	return append([]byte(nil), t.bytes...)
}

func (t *Tag) IntArrayValue() []int32 {
	if t.typ != TypeIntArray {
		return nil
	}
	return append([]int32(nil), t.ints...)
}

func (t *Tag) LongArrayValue() []int64 {
	if t.typ != TypeLongArray {
		return nil
	}
	return append([]int64(nil), t.longs...)
}

func (t *Tag) SetByteArray(v []byte) error {
	if t.typ != TypeByteArray {
		return fmt.Errorf("%w: cannot set byte-array on %s", ErrTypeMismatch, t.typ)
	}
	t.bytes = append([]byte(nil), v...)
	return nil
}

func (t *Tag) SetIntArray(v []int32) error {
	if t.typ != TypeIntArray {
		return fmt.Errorf("%w: cannot set int-array on %s", ErrTypeMismatch, t.typ)
	}
	t.ints = append([]int32(nil), v...)
	return nil
}

func (t *Tag) SetLongArray(v []int64) error {
	if t.typ != TypeLongArray {
		return fmt.Errorf("%w: cannot set long-array on %s", ErrTypeMismatch, t.typ)
	}
	t.longs = append([]int64(nil), v...)
	return nil
}

// Single-element write-through for synthesized proxies.

func (t *Tag) setByteAt(i int, v int8) error {
	if i < 0 || i >= len(t.bytes) {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, i)
	}
	t.bytes[i] = byte(v)
	return nil
}

func (t *Tag) setIntAt(i int, v int32) error {
	if i < 0 || i >= len(t.ints) {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, i)
	}
	t.ints[i] = v
	return nil
}

func (t *Tag) setLongAt(i int, v int64) error {
	if i < 0 || i >= len(t.longs) {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, i)
	}
	t.longs[i] = v
	return nil
}
