package nbtjson

import (
	"encoding/base64"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nbt-format/go-nbt/tag"
)

// Encode writes the roundtrip shape of root, envelope included. A nil
// root is a legal empty document.
func Encode(w io.Writer, root *tag.Tag) error {
	jw := &jsonWriter{}
	jw.openObject()
	jw.member("_unbted")
	jw.raw("1")
	jw.member("rootType")
	jw.str(TypePrefix(root))
	jw.member("rootName")
	if root == nil {
		jw.str("")
	} else {
		jw.str(root.Name())
	}
	jw.member("root")
	encodeValue(jw, root, true)
	jw.closeObject()
	jw.buf = append(jw.buf, '\n')
	_, err := w.Write(jw.buf)
	return err
}

// EncodeBasic writes the one-way export shape of root.
func EncodeBasic(w io.Writer, root *tag.Tag) error {
	jw := &jsonWriter{}
	encodeValue(jw, root, false)
	jw.buf = append(jw.buf, '\n')
	_, err := w.Write(jw.buf)
	return err
}

func encodeValue(jw *jsonWriter, t *tag.Tag, roundTrip bool) {
	if t == nil {
		jw.raw("null")
		return
	}
	switch t.Type() {
	case tag.TypeByte, tag.TypeShort, tag.TypeInt, tag.TypeLong:
		jw.raw(strconv.FormatInt(t.Int64(), 10))
	case tag.TypeFloat:
		jw.raw(strconv.FormatFloat(float64(t.FloatValue()), 'g', -1, 32))
	case tag.TypeDouble:
		jw.raw(strconv.FormatFloat(t.DoubleValue(), 'g', -1, 64))
	case tag.TypeString:
		jw.str(t.StringValue())
	case tag.TypeByteArray:
		jw.str(base64.StdEncoding.EncodeToString(t.ByteArrayValue()))
	case tag.TypeIntArray:
		ints := t.IntArrayValue()
		if !roundTrip && len(ints) == 4 {
			jw.str(uuidFromInts(ints).String())
			return
		}
		jw.openArray()
		for _, v := range ints {
			jw.element()
			jw.raw(strconv.FormatInt(int64(v), 10))
		}
		jw.closeArray()
	case tag.TypeLongArray:
		jw.openArray()
		for _, v := range t.LongArrayValue() {
			jw.element()
			jw.raw(strconv.FormatInt(v, 10))
		}
		jw.closeArray()
	case tag.TypeList:
		jw.openArray()
		for i := 0; i < t.Len(); i++ {
			jw.element()
			encodeValue(jw, t.Index(i), roundTrip)
		}
		jw.closeArray()
	case tag.TypeCompound:
		if roundTrip {
			encodeCompoundRoundtrip(jw, t)
		} else {
			encodeCompoundBasic(jw, t)
		}
	}
}

func encodeCompoundRoundtrip(jw *jsonWriter, t *tag.Tag) {
	jw.openObject()
	for _, key := range t.Keys() {
		child := t.Get(key)
		jw.member(TypePrefix(child) + ":" + key)
		encodeValue(jw, child, true)
	}
	jw.closeObject()
}

// encodeCompoundBasic emits keys in sorted order. Sibling long tags named
// <X>Most and <X>Least collapse into a single <X> key holding the UUID
// they encode, unless a real <X> sibling would be shadowed.
func encodeCompoundBasic(jw *jsonWriter, t *tag.Tag) {
	type member struct {
		key  string
		tag  *tag.Tag // nil for a collapsed UUID
		uuid string
	}
	var members []member
	for _, key := range t.Keys() {
		child := t.Get(key)
		if base, ok := strings.CutSuffix(key, "Most"); ok {
			least := t.Get(base + "Least")
			if uuidPair(child, least) && !t.Contains(base) {
				u := uuidFromPair(child.LongValue(), least.LongValue())
				members = append(members, member{key: base, uuid: u.String()})
				continue
			}
		}
		if base, ok := strings.CutSuffix(key, "Least"); ok {
			if uuidPair(t.Get(base+"Most"), child) && !t.Contains(base) {
				continue
			}
		}
		members = append(members, member{key: key, tag: child})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].key < members[j].key })

	jw.openObject()
	for _, m := range members {
		jw.member(m.key)
		if m.tag == nil {
			jw.str(m.uuid)
		} else {
			encodeValue(jw, m.tag, false)
		}
	}
	jw.closeObject()
}

func uuidPair(most, least *tag.Tag) bool {
	return most != nil && least != nil &&
		most.Type() == tag.TypeLong && least.Type() == tag.TypeLong
}

// jsonWriter pretty-prints with two-space indentation, one member or
// element per line, and no HTML escaping.
type jsonWriter struct {
	buf   []byte
	depth int
	count []int // members written at each open container
}

func (w *jsonWriter) nl() {
	w.buf = append(w.buf, '\n')
	for i := 0; i < w.depth; i++ {
		w.buf = append(w.buf, ' ', ' ')
	}
}

func (w *jsonWriter) openObject() {
	w.buf = append(w.buf, '{')
	w.depth++
	w.count = append(w.count, 0)
}

func (w *jsonWriter) openArray() {
	w.buf = append(w.buf, '[')
	w.depth++
	w.count = append(w.count, 0)
}

func (w *jsonWriter) closeObject() { w.close('}') }
func (w *jsonWriter) closeArray()  { w.close(']') }

func (w *jsonWriter) close(c byte) {
	n := w.count[len(w.count)-1]
	w.count = w.count[:len(w.count)-1]
	w.depth--
	if n > 0 {
		w.nl()
	}
	w.buf = append(w.buf, c)
}

// member starts an object member with the given key.
func (w *jsonWriter) member(key string) {
	w.element()
	w.quote(key)
	w.buf = append(w.buf, ':', ' ')
}

// element starts an array element (or the key position of a member).
func (w *jsonWriter) element() {
	if w.count[len(w.count)-1] > 0 {
		w.buf = append(w.buf, ',')
	}
	w.count[len(w.count)-1]++
	w.nl()
}

func (w *jsonWriter) raw(s string) { w.buf = append(w.buf, s...) }

func (w *jsonWriter) str(s string) { w.quote(s) }

func (w *jsonWriter) quote(s string) {
	w.buf = append(w.buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			w.buf = append(w.buf, '\\', '"')
		case '\\':
			w.buf = append(w.buf, '\\', '\\')
		case '\n':
			w.buf = append(w.buf, '\\', 'n')
		case '\r':
			w.buf = append(w.buf, '\\', 'r')
		case '\t':
			w.buf = append(w.buf, '\\', 't')
		default:
			if r < 0x20 {
				const hex = "0123456789abcdef"
				w.buf = append(w.buf, '\\', 'u', '0', '0', hex[r>>4], hex[r&0xf])
			} else {
				w.buf = append(w.buf, string(r)...)
			}
		}
	}
	w.buf = append(w.buf, '"')
}
