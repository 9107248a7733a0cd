package snbt

import (
	"strconv"
	"strings"

	"github.com/nbt-format/go-nbt/tag"
)

// Encode renders t as a parseable value. Names are carried by the
// enclosing compound syntax, so the tag's own name is not emitted.
func Encode(t *tag.Tag) string {
	var sb strings.Builder
	encode(&sb, t)
	return sb.String()
}

func encode(sb *strings.Builder, t *tag.Tag) {
	switch t.Type() {
	case tag.TypeByte:
		sb.WriteString(strconv.FormatInt(int64(t.ByteValue()), 10))
		sb.WriteByte('b')
	case tag.TypeShort:
		sb.WriteString(strconv.FormatInt(int64(t.ShortValue()), 10))
		sb.WriteByte('s')
	case tag.TypeInt:
		sb.WriteString(strconv.FormatInt(int64(t.IntValue()), 10))
	case tag.TypeLong:
		sb.WriteString(strconv.FormatInt(t.LongValue(), 10))
		sb.WriteByte('l')
	case tag.TypeFloat:
		sb.WriteString(strconv.FormatFloat(float64(t.FloatValue()), 'g', -1, 32))
		sb.WriteByte('f')
	case tag.TypeDouble:
		sb.WriteString(strconv.FormatFloat(t.DoubleValue(), 'g', -1, 64))
		sb.WriteByte('d')
	case tag.TypeString:
		quote(sb, t.StringValue())
	case tag.TypeByteArray:
		sb.WriteString("[B;")
		for i, v := range t.ByteArrayValue() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(int64(int8(v)), 10))
			sb.WriteByte('b')
		}
		sb.WriteByte(']')
	case tag.TypeIntArray:
		sb.WriteString("[I;")
		for i, v := range t.IntArrayValue() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		}
		sb.WriteByte(']')
	case tag.TypeLongArray:
		sb.WriteString("[L;")
		for i, v := range t.LongArrayValue() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(v, 10))
			sb.WriteByte('l')
		}
		sb.WriteByte(']')
	case tag.TypeList:
		sb.WriteByte('[')
		for i := 0; i < t.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			encode(sb, t.Index(i))
		}
		sb.WriteByte(']')
	case tag.TypeCompound:
		sb.WriteByte('{')
		for i, key := range t.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeKey(sb, key)
			sb.WriteString(": ")
			encode(sb, t.Get(key))
		}
		sb.WriteByte('}')
	}
}

func writeKey(sb *strings.Builder, key string) {
	if bareSafe(key) {
		sb.WriteString(key)
		return
	}
	quote(sb, key)
}

func bareSafe(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !bareChar(s[i]) {
			return false
		}
	}
	return true
}

func quote(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}
