package edit

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/nbt-format/go-nbt/snbt"
	"github.com/nbt-format/go-nbt/tag"
)

// ParseValue parses a command-line value string into an existing tag.
//
// Integer kinds accept radix prefixes (0x, 0b, leading 0 or # for the
// forms other tools emit); float kinds parse plain decimal only. The
// words true and false read as 1 and 0 for any numeric kind. Byte arrays
// take base64, int and long arrays take space-separated numbers, and
// compounds take a stringified literal. An empty string clears a
// container and is a no-op for a list.
func ParseValue(t *tag.Tag, s string) error {
	if t.Type().IsNumber() {
		switch s {
		case "true":
			s = "1"
		case "false":
			s = "0"
		}
	}
	switch t.Type() {
	case tag.TypeByte:
		n, err := parseRadixInt(s, 8)
		if err != nil {
			return err
		}
		return t.SetByte(int8(n))
	case tag.TypeShort:
		n, err := parseRadixInt(s, 16)
		if err != nil {
			return err
		}
		return t.SetShort(int16(n))
	case tag.TypeInt:
		n, err := parseRadixInt(s, 32)
		if err != nil {
			return err
		}
		return t.SetInt(int32(n))
	case tag.TypeLong:
		n, err := parseRadixInt(s, 64)
		if err != nil {
			return err
		}
		return t.SetLong(n)
	case tag.TypeFloat:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid number %q", ErrBadValue, s)
		}
		return t.SetFloat(float32(f))
	case tag.TypeDouble:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid number %q", ErrBadValue, s)
		}
		return t.SetDouble(f)
	case tag.TypeString:
		return t.SetString(s)
	case tag.TypeByteArray:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("%w: invalid base64", ErrBadValue)
		}
		return t.SetByteArray(b)
	case tag.TypeIntArray:
		var out []int32
		for _, w := range fields(s) {
			n, err := strconv.ParseInt(w, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: invalid number %q", ErrBadValue, w)
			}
			out = append(out, int32(n))
		}
		return t.SetIntArray(out)
	case tag.TypeLongArray:
		var out []int64
		for _, w := range fields(s) {
			n, err := strconv.ParseInt(w, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: invalid number %q", ErrBadValue, w)
			}
			out = append(out, n)
		}
		return t.SetLongArray(out)
	case tag.TypeCompound:
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			parsed, err := snbt.Parse(trimmed)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrBadValue, err)
			}
			if parsed.Type() != tag.TypeCompound {
				return fmt.Errorf("%w: %q is not a compound literal", ErrBadValue, trimmed)
			}
			t.Clear()
			for _, key := range parsed.Keys() {
				child := parsed.Get(key)
				if _, err := t.Put(child); err != nil {
					return err
				}
			}
			return nil
		}
		t.Clear()
		return nil
	default:
		if strings.TrimSpace(s) != "" {
			return fmt.Errorf("%w: tags of type %s cannot be created with a value", ErrBadValue, t.Type())
		}
		if t.IsContainer() {
			t.Clear()
		}
		return nil
	}
}

// parseRadixInt accepts 0x/0b/0o/leading-zero radix prefixes as well as
// the # hex form, unlike float parsing which is plain decimal.
func parseRadixInt(s string, bits int) (int64, error) {
	w := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(w, "-") {
		neg = true
		w = w[1:]
	}
	if strings.HasPrefix(w, "#") {
		w = "0x" + w[1:]
	}
	if neg {
		w = "-" + w
	}
	n, err := strconv.ParseInt(w, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", ErrBadValue, s)
	}
	return n, nil
}

func fields(s string) []string {
	var out []string
	for _, w := range strings.Split(s, " ") {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
