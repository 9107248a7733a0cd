package path

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nbt-format/go-nbt/tag"
)

type segment struct {
	text  string
	index bool // came from a bracketed [N]
}

// lex splits a path into segments. The reported abs flag is true for a
// root-relative path. Escaped slashes are decoded into the segment text;
// an empty segment (from a doubled or trailing slash) behaves like ".".
func lex(text string) (segs []segment, abs bool, err error) {
	s := text
	if strings.HasPrefix(s, "/") {
		abs = true
		s = s[1:]
		if s == "" {
			return []segment{{}}, true, nil
		}
	}
	var cur []byte
	building := false
	afterBracket := false
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s) && s[i+1] == '/':
			cur = append(cur, '/')
			building = true
			afterBracket = false
			i += 2
		case c == '/':
			if afterBracket {
				// the bracket already ended the segment
				afterBracket = false
				i++
				continue
			}
			segs = append(segs, segment{text: string(cur)})
			cur = nil
			building = false
			i++
		case c == '[':
			if building {
				segs = append(segs, segment{text: string(cur)})
				cur = nil
				building = false
			}
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, abs, fmt.Errorf("%w: unterminated index in %q", ErrInvalidIndex, text)
			}
			segs = append(segs, segment{text: s[i+1 : i+end], index: true})
			afterBracket = true
			i += end + 1
		default:
			cur = append(cur, c)
			building = true
			afterBracket = false
			i++
		}
	}
	if building {
		segs = append(segs, segment{text: string(cur)})
	} else if strings.HasSuffix(s, "/") {
		segs = append(segs, segment{})
	}
	return segs, abs, nil
}

// render reconstructs normalized path text for a run of segments.
// Empty segments are dropped.
func render(abs bool, segs []segment) string {
	var b strings.Builder
	wrote := false
	for _, sg := range segs {
		if sg.index {
			b.WriteString("[")
			b.WriteString(sg.text)
			b.WriteString("]")
			wrote = true
			continue
		}
		if sg.text == "" {
			continue
		}
		if wrote || abs {
			b.WriteByte('/')
		}
		b.WriteString(escapeKey(sg.text))
		wrote = true
	}
	if abs && !wrote {
		return "/"
	}
	if abs && !strings.HasPrefix(b.String(), "/") {
		return "/" + b.String()
	}
	return b.String()
}

func escapeKey(s string) string {
	return strings.ReplaceAll(s, "/", "\\/")
}

// Of returns the absolute-style path of t, derived from its parent chain.
// List and array elements render as bracketed indices, compound members
// as slash-prefixed keys, and the root contributes its own name. A tag
// whose chain renders to nothing (an unnamed root) is "/".
func Of(t *tag.Tag) string {
	if t == nil {
		return ""
	}
	var parts []string
	for t != nil {
		p := t.Parent()
		switch {
		case t.IsProxy():
			parts = append(parts, "["+strconv.Itoa(t.ProxyIndex())+"]")
		case p != nil && p.Type() == tag.TypeList:
			parts = append(parts, "["+strconv.Itoa(p.IndexOf(t))+"]")
		case p != nil && p.Type() == tag.TypeCompound:
			parts = append(parts, "/"+escapeKey(t.Name()))
		default:
			parts = append(parts, escapeKey(t.Name()))
		}
		t = p
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	if strings.TrimSpace(b.String()) == "" {
		return "/"
	}
	return b.String()
}
