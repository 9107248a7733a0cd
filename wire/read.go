package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/nbt-format/go-nbt/format"
	"github.com/nbt-format/go-nbt/tag"
)

// ReadTag decodes one named tag from r using the given endianness. A
// truncated payload yields ErrUnexpectedEOF, an unrecognized type id
// ErrUnknownTagType, and a compound missing its terminator ErrMalformed.
func ReadTag(r io.Reader, e format.Endianness) (*tag.Tag, error) {
	rd := &reader{r: e.WrapReader(r), order: e.ByteOrder()}
	id, err := rd.u8()
	if err != nil {
		return nil, err
	}
	typ := tag.Type(id)
	if typ == tag.TypeEnd {
		return nil, fmt.Errorf("%w: end tag at document root", ErrMalformed)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownTagType, id)
	}
	name, err := rd.str()
	if err != nil {
		return nil, err
	}
	return rd.payload(typ, name)
}

type reader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (rd *reader) read(n int) ([]byte, error) {
	b := rd.buf[:n]
	if _, err := io.ReadFull(rd.r, b); err != nil {
		return nil, eofErr(err)
	}
	return b, nil
}

func (rd *reader) u8() (byte, error) {
	b, err := rd.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (rd *reader) u16() (uint16, error) {
	b, err := rd.read(2)
	if err != nil {
		return 0, err
	}
	return rd.order.Uint16(b), nil
}

func (rd *reader) i32() (int32, error) {
	b, err := rd.read(4)
	if err != nil {
		return 0, err
	}
	return int32(rd.order.Uint32(b)), nil
}

func (rd *reader) i64() (int64, error) {
	b, err := rd.read(8)
	if err != nil {
		return 0, err
	}
	return int64(rd.order.Uint64(b)), nil
}

func (rd *reader) str() (string, error) {
	n, err := rd.u16()
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rd.r, b); err != nil {
		return "", eofErr(err)
	}
	return string(b), nil
}

func (rd *reader) payload(typ tag.Type, name string) (*tag.Tag, error) {
	switch typ {
	case tag.TypeByte:
		v, err := rd.u8()
		if err != nil {
			return nil, err
		}
		return tag.NewByte(name, int8(v)), nil
	case tag.TypeShort:
		v, err := rd.u16()
		if err != nil {
			return nil, err
		}
		return tag.NewShort(name, int16(v)), nil
	case tag.TypeInt:
		v, err := rd.i32()
		if err != nil {
			return nil, err
		}
		return tag.NewInt(name, v), nil
	case tag.TypeLong:
		v, err := rd.i64()
		if err != nil {
			return nil, err
		}
		return tag.NewLong(name, v), nil
	case tag.TypeFloat:
		v, err := rd.i32()
		if err != nil {
			return nil, err
		}
		return tag.NewFloat(name, math.Float32frombits(uint32(v))), nil
	case tag.TypeDouble:
		v, err := rd.i64()
		if err != nil {
			return nil, err
		}
		return tag.NewDouble(name, math.Float64frombits(uint64(v))), nil
	case tag.TypeString:
		v, err := rd.str()
		if err != nil {
			return nil, err
		}
		return tag.NewString(name, v), nil
	case tag.TypeByteArray:
		n, err := rd.count()
		if err != nil {
			return nil, err
		}
		b := make([]byte, n)
		if _, err := io.ReadFull(rd.r, b); err != nil {
			return nil, eofErr(err)
		}
		t := tag.NewByteArray(name, nil)
		t.SetByteArray(b)
		return t, nil
	case tag.TypeIntArray:
		n, err := rd.count()
		if err != nil {
			return nil, err
		}
		vs := make([]int32, n)
		for i := range vs {
			if vs[i], err = rd.i32(); err != nil {
				return nil, err
			}
		}
		t := tag.NewIntArray(name, nil)
		t.SetIntArray(vs)
		return t, nil
	case tag.TypeLongArray:
		n, err := rd.count()
		if err != nil {
			return nil, err
		}
		vs := make([]int64, n)
		for i := range vs {
			if vs[i], err = rd.i64(); err != nil {
				return nil, err
			}
		}
		t := tag.NewLongArray(name, nil)
		t.SetLongArray(vs)
		return t, nil
	case tag.TypeList:
		return rd.list(name)
	case tag.TypeCompound:
		return rd.compound(name)
	default:
		return nil, fmt.Errorf("%w: id %d", ErrUnknownTagType, int(typ))
	}
}

func (rd *reader) list(name string) (*tag.Tag, error) {
	elemID, err := rd.u8()
	if err != nil {
		return nil, err
	}
	n, err := rd.count()
	if err != nil {
		return nil, err
	}
	l := tag.NewList(name)
	if n == 0 {
		return l, nil
	}
	elem := tag.Type(elemID)
	if !elem.Valid() {
		return nil, fmt.Errorf("%w: list element id %d", ErrUnknownTagType, elemID)
	}
	for i := 0; i < n; i++ {
		child, err := rd.payload(elem, "")
		if err != nil {
			return nil, err
		}
		if err := l.Append(child); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (rd *reader) compound(name string) (*tag.Tag, error) {
	c := tag.NewCompound(name)
	for {
		id, err := rd.u8()
		if err != nil {
			// running out of input while expecting a child type id means
			// the terminator never arrived
			return nil, fmt.Errorf("%w: compound %q missing terminator", ErrMalformed, name)
		}
		typ := tag.Type(id)
		if typ == tag.TypeEnd {
			return c, nil
		}
		if !typ.Valid() {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownTagType, id)
		}
		childName, err := rd.str()
		if err != nil {
			return nil, err
		}
		child, err := rd.payload(typ, childName)
		if err != nil {
			return nil, err
		}
		if _, err := c.Put(child); err != nil {
			return nil, err
		}
	}
}

func (rd *reader) count() (int, error) {
	n, err := rd.i32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrMalformed, n)
	}
	return int(n), nil
}

func eofErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrUnexpectedEOF, err)
	}
	return err
}
