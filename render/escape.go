package render

import (
	"fmt"
	"strings"
)

var namedEscapes = map[rune]string{
	0x00: "\\0",
	0x07: "\\a",
	0x08: "\\b",
	0x09: "\\t",
	0x0a: "\\n",
	0x0b: "\\v",
	0x0c: "\\f",
	0x0d: "\\r",
	0x1b: "\\e",
	'\\': "\\\\",
}

// escapeName makes control characters in tag names visible.
func escapeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if esc, ok := namedEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		if r < 0x20 || r == 0x7f {
			b.WriteString(fmt.Sprintf("\\x%02X", r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
