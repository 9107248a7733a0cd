package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/nbt-format/go-nbt/format"
	"github.com/nbt-format/go-nbt/tag"
)

// WriteTag encodes one named tag to w using the given endianness. Output
// is byte exact for the wire format: compound payloads always end with the
// TypeEnd terminator, list elements are written unnamed.
func WriteTag(w io.Writer, e format.Endianness, root *tag.Tag) error {
	wr := &writer{w: e.WrapWriter(w), order: e.ByteOrder()}
	if err := wr.u8(byte(root.Type())); err != nil {
		return err
	}
	if err := wr.str(root.Name()); err != nil {
		return err
	}
	return wr.payload(root)
}

type writer struct {
	w     io.Writer
	order binary.ByteOrder
	buf   [8]byte
}

func (wr *writer) write(b []byte) error {
	_, err := wr.w.Write(b)
	return err
}

func (wr *writer) u8(v byte) error {
	wr.buf[0] = v
	return wr.write(wr.buf[:1])
}

func (wr *writer) u16(v uint16) error {
	wr.order.PutUint16(wr.buf[:2], v)
	return wr.write(wr.buf[:2])
}

func (wr *writer) i32(v int32) error {
	wr.order.PutUint32(wr.buf[:4], uint32(v))
	return wr.write(wr.buf[:4])
}

func (wr *writer) i64(v int64) error {
	wr.order.PutUint64(wr.buf[:8], uint64(v))
	return wr.write(wr.buf[:8])
}

func (wr *writer) str(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: name of %d bytes does not fit the wire format", ErrMalformed, len(s))
	}
	if err := wr.u16(uint16(len(s))); err != nil {
		return err
	}
	return wr.write([]byte(s))
}

func (wr *writer) payload(t *tag.Tag) error {
	switch t.Type() {
	case tag.TypeByte:
		return wr.u8(byte(t.ByteValue()))
	case tag.TypeShort:
		return wr.u16(uint16(t.ShortValue()))
	case tag.TypeInt:
		return wr.i32(t.IntValue())
	case tag.TypeLong:
		return wr.i64(t.LongValue())
	case tag.TypeFloat:
		return wr.i32(int32(math.Float32bits(t.FloatValue())))
	case tag.TypeDouble:
		return wr.i64(int64(math.Float64bits(t.DoubleValue())))
	case tag.TypeString:
		return wr.str(t.StringValue())
	case tag.TypeByteArray:
		b := t.ByteArrayValue()
		if err := wr.i32(int32(len(b))); err != nil {
			return err
		}
		return wr.write(b)
	case tag.TypeIntArray:
		vs := t.IntArrayValue()
		if err := wr.i32(int32(len(vs))); err != nil {
			return err
		}
		for _, v := range vs {
			if err := wr.i32(v); err != nil {
				return err
			}
		}
		return nil
	case tag.TypeLongArray:
		vs := t.LongArrayValue()
		if err := wr.i32(int32(len(vs))); err != nil {
			return err
		}
		for _, v := range vs {
			if err := wr.i64(v); err != nil {
				return err
			}
		}
		return nil
	case tag.TypeList:
		if err := wr.u8(byte(t.ElementType())); err != nil {
			return err
		}
		if err := wr.i32(int32(t.Len())); err != nil {
			return err
		}
		for _, c := range t.Children() {
			if err := wr.payload(c); err != nil {
				return err
			}
		}
		return nil
	case tag.TypeCompound:
		for _, c := range t.Children() {
			if err := wr.u8(byte(c.Type())); err != nil {
				return err
			}
			if err := wr.str(c.Name()); err != nil {
				return err
			}
			if err := wr.payload(c); err != nil {
				return err
			}
		}
		return wr.u8(byte(tag.TypeEnd))
	default:
		return fmt.Errorf("%w: id %d", ErrUnknownTagType, int(t.Type()))
	}
}
