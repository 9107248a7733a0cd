package tag

import (
	"strconv"
	"strings"
)

// String renders the tag's value in its canonical plain form: decimal
// numbers, raw strings, bracketed arrays and lists, braced compounds.
// Display layers build on this; it carries no type suffixes.
func (t *Tag) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.typ {
	case TypeByte:
		return strconv.FormatInt(int64(t.ByteValue()), 10)
	case TypeShort:
		return strconv.FormatInt(int64(t.ShortValue()), 10)
	case TypeInt:
		return strconv.FormatInt(int64(t.IntValue()), 10)
	case TypeLong:
		return strconv.FormatInt(t.LongValue(), 10)
	case TypeFloat:
		return strconv.FormatFloat(t.f64, 'g', -1, 32)
	case TypeDouble:
		return strconv.FormatFloat(t.f64, 'g', -1, 64)
	case TypeString:
		return t.str
	case TypeByteArray:
		parts := make([]string, len(t.bytes))
		for i, b := range t.bytes {
			parts[i] = strconv.FormatInt(int64(int8(b)), 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeIntArray:
		parts := make([]string, len(t.ints))
		for i, v := range t.ints {
			parts[i] = strconv.FormatInt(int64(v), 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeLongArray:
		parts := make([]string, len(t.longs))
		for i, v := range t.longs {
			parts[i] = strconv.FormatInt(v, 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeList:
		parts := make([]string, len(t.children))
		for i, c := range t.children {
			parts[i] = c.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeCompound:
		parts := make([]string, len(t.children))
		for i, c := range t.children {
			parts[i] = c.name + ": " + c.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<end>"
	}
}
