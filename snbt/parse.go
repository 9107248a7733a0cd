package snbt

import (
	"fmt"
	"strconv"

	"github.com/nbt-format/go-nbt/tag"
)

// Parse reads a single unnamed value from src. The whole input must be
// consumed apart from surrounding whitespace.
func Parse(src string) (*tag.Tag, error) {
	return ParseNamed("", src)
}

// ParseNamed is Parse with a name given to the resulting tag.
func ParseNamed(name, src string) (*tag.Tag, error) {
	p := &parser{d: []byte(src)}
	t, err := p.value(name)
	if err != nil {
		return nil, err
	}
	p.ws()
	if p.pos != len(p.d) {
		return nil, ErrTrailing
	}
	return t, nil
}

type parser struct {
	d   []byte
	pos int
}

func (p *parser) errf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d", ErrParse, msg, p.pos)
}

func (p *parser) ws() {
	for p.pos < len(p.d) {
		switch p.d[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) value(name string) (*tag.Tag, error) {
	p.ws()
	if p.pos >= len(p.d) {
		return nil, p.errf("unexpected end of input")
	}
	switch p.d[p.pos] {
	case '{':
		return p.compound(name)
	case '[':
		return p.listOrArray(name)
	case '"', '\'':
		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		return tag.NewString(name, s), nil
	default:
		return p.scalar(name)
	}
}

func (p *parser) compound(name string) (*tag.Tag, error) {
	p.pos++ // '{'
	c := tag.NewCompound(name)
	p.ws()
	if p.pos < len(p.d) && p.d[p.pos] == '}' {
		p.pos++
		return c, nil
	}
	for {
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		p.ws()
		if p.pos >= len(p.d) || p.d[p.pos] != ':' {
			return nil, p.errf("expected ':' after key %q", key)
		}
		p.pos++
		child, err := p.value(key)
		if err != nil {
			return nil, err
		}
		if _, err := c.Put(child); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		p.ws()
		if p.pos >= len(p.d) {
			return nil, p.errf("unterminated compound")
		}
		switch p.d[p.pos] {
		case ',':
			p.pos++
			p.ws()
		case '}':
			p.pos++
			return c, nil
		default:
			return nil, p.errf("expected ',' or '}'")
		}
	}
}

func (p *parser) key() (string, error) {
	p.ws()
	if p.pos >= len(p.d) {
		return "", p.errf("expected key")
	}
	if c := p.d[p.pos]; c == '"' || c == '\'' {
		return p.quoted()
	}
	start := p.pos
	for p.pos < len(p.d) && bareChar(p.d[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf("expected key")
	}
	return string(p.d[start:p.pos]), nil
}

func (p *parser) quoted() (string, error) {
	q := p.d[p.pos]
	p.pos++
	var out []byte
	for p.pos < len(p.d) {
		c := p.d[p.pos]
		switch c {
		case q:
			p.pos++
			return string(out), nil
		case '\\':
			if p.pos+1 >= len(p.d) {
				return "", p.errf("unterminated escape")
			}
			e := p.d[p.pos+1]
			if e != q && e != '\\' {
				return "", p.errf("bad escape %q", string(rune(e)))
			}
			out = append(out, e)
			p.pos += 2
		default:
			out = append(out, c)
			p.pos++
		}
	}
	return "", p.errf("unterminated string")
}

func (p *parser) listOrArray(name string) (*tag.Tag, error) {
	p.pos++ // '['
	if p.pos+1 < len(p.d) && p.d[p.pos+1] == ';' {
		switch p.d[p.pos] {
		case 'B':
			p.pos += 2
			return p.byteArray(name)
		case 'I':
			p.pos += 2
			return p.intArray(name)
		case 'L':
			p.pos += 2
			return p.longArray(name)
		}
	}
	l := tag.NewList(name)
	p.ws()
	if p.pos < len(p.d) && p.d[p.pos] == ']' {
		p.pos++
		return l, nil
	}
	for {
		elem, err := p.value("")
		if err != nil {
			return nil, err
		}
		if err := l.Append(elem); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		more, err := p.listSep()
		if err != nil {
			return nil, err
		}
		if !more {
			return l, nil
		}
	}
}

// listSep consumes ',' or ']' and reports whether more elements follow.
func (p *parser) listSep() (bool, error) {
	p.ws()
	if p.pos >= len(p.d) {
		return false, p.errf("unterminated list")
	}
	switch p.d[p.pos] {
	case ',':
		p.pos++
		return true, nil
	case ']':
		p.pos++
		return false, nil
	default:
		return false, p.errf("expected ',' or ']'")
	}
}

func (p *parser) byteArray(name string) (*tag.Tag, error) {
	var vals []byte
	p.ws()
	if p.pos < len(p.d) && p.d[p.pos] == ']' {
		p.pos++
		return tag.NewByteArray(name, nil), nil
	}
	for {
		tok, err := p.bareToken()
		if err != nil {
			return nil, err
		}
		tok = trimSuffix(tok, 'b')
		n, err := strconv.ParseInt(tok, 10, 8)
		if err != nil {
			return nil, p.errf("bad byte element %q", tok)
		}
		vals = append(vals, byte(n))
		more, err := p.listSep()
		if err != nil {
			return nil, err
		}
		if !more {
			return tag.NewByteArray(name, vals), nil
		}
	}
}

func (p *parser) intArray(name string) (*tag.Tag, error) {
	var vals []int32
	p.ws()
	if p.pos < len(p.d) && p.d[p.pos] == ']' {
		p.pos++
		return tag.NewIntArray(name, nil), nil
	}
	for {
		tok, err := p.bareToken()
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, p.errf("bad int element %q", tok)
		}
		vals = append(vals, int32(n))
		more, err := p.listSep()
		if err != nil {
			return nil, err
		}
		if !more {
			return tag.NewIntArray(name, vals), nil
		}
	}
}

func (p *parser) longArray(name string) (*tag.Tag, error) {
	var vals []int64
	p.ws()
	if p.pos < len(p.d) && p.d[p.pos] == ']' {
		p.pos++
		return tag.NewLongArray(name, nil), nil
	}
	for {
		tok, err := p.bareToken()
		if err != nil {
			return nil, err
		}
		tok = trimSuffix(tok, 'l')
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, p.errf("bad long element %q", tok)
		}
		vals = append(vals, n)
		more, err := p.listSep()
		if err != nil {
			return nil, err
		}
		if !more {
			return tag.NewLongArray(name, vals), nil
		}
	}
}

func (p *parser) bareToken() (string, error) {
	p.ws()
	start := p.pos
	for p.pos < len(p.d) && bareChar(p.d[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf("expected value")
	}
	return string(p.d[start:p.pos]), nil
}

func (p *parser) scalar(name string) (*tag.Tag, error) {
	tok, err := p.bareToken()
	if err != nil {
		return nil, err
	}
	switch tok {
	case "true":
		return tag.NewByte(name, 1), nil
	case "false":
		return tag.NewByte(name, 0), nil
	}
	if t, ok := typedNumber(name, tok); ok {
		return t, nil
	}
	if looksIntegral(tok) {
		if n, err := strconv.ParseInt(tok, 10, 32); err == nil {
			return tag.NewInt(name, int32(n)), nil
		}
		// out of int range, falls through to a bare string
	} else if looksDecimal(tok) {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return tag.NewDouble(name, f), nil
		}
	}
	return tag.NewString(name, tok), nil
}

// typedNumber recognizes suffixed literals such as 1b, 2s, 3l, 1.5f, 2.5d.
func typedNumber(name, tok string) (*tag.Tag, bool) {
	if len(tok) < 2 {
		return nil, false
	}
	body := tok[:len(tok)-1]
	switch lower(tok[len(tok)-1]) {
	case 'b':
		if !looksIntegral(body) {
			return nil, false
		}
		n, err := strconv.ParseInt(body, 10, 8)
		if err != nil {
			return nil, false
		}
		return tag.NewByte(name, int8(n)), true
	case 's':
		if !looksIntegral(body) {
			return nil, false
		}
		n, err := strconv.ParseInt(body, 10, 16)
		if err != nil {
			return nil, false
		}
		return tag.NewShort(name, int16(n)), true
	case 'l':
		if !looksIntegral(body) {
			return nil, false
		}
		n, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			return nil, false
		}
		return tag.NewLong(name, n), true
	case 'f':
		if !looksIntegral(body) && !looksDecimal(body) {
			return nil, false
		}
		f, err := strconv.ParseFloat(body, 32)
		if err != nil {
			return nil, false
		}
		return tag.NewFloat(name, float32(f)), true
	case 'd':
		if !looksIntegral(body) && !looksDecimal(body) {
			return nil, false
		}
		f, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return nil, false
		}
		return tag.NewDouble(name, f), true
	}
	return nil, false
}

// looksIntegral reports whether s is an optionally signed run of digits.
func looksIntegral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !digit(s[i]) {
			return false
		}
	}
	return true
}

// looksDecimal reports whether s is a signed decimal literal with a
// fraction or exponent. Plain digit runs are integral, not decimal.
func looksDecimal(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits, dot, exp := 0, false, false
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case digit(c):
			digits++
		case c == '.' && !dot && !exp:
			dot = true
		case (c == 'e' || c == 'E') && !exp && digits > 0 && i+1 < len(s):
			exp = true
			if s[i+1] == '+' || s[i+1] == '-' {
				i++
			}
		default:
			return false
		}
	}
	return digits > 0 && (dot || exp)
}

func bareChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', digit(c):
		return true
	case c == '_', c == '-', c == '+', c == '.':
		return true
	}
	return false
}

func digit(c byte) bool { return c >= '0' && c <= '9' }

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func trimSuffix(s string, suffix byte) string {
	if len(s) > 1 && lower(s[len(s)-1]) == suffix {
		return s[:len(s)-1]
	}
	return s
}
