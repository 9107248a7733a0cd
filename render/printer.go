package render

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nbt-format/go-nbt/tag"
)

// Printer writes tag trees in the editor's display form.
type Printer struct {
	w      io.Writer
	colors *Colors
	infer  bool
	bools  BoolHeuristic
}

type Option func(*Printer)

func WithColors(c *Colors) Option        { return func(p *Printer) { p.colors = c } }
func WithInference(v bool) Option        { return func(p *Printer) { p.infer = v } }
func WithBoolHeuristic(h BoolHeuristic) Option {
	return func(p *Printer) { p.bools = h }
}

func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:      w,
		colors: NewColors(),
		infer:  true,
		bools:  DefaultBoolHeuristic(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes t and, per mode, its descendants.
func (p *Printer) Print(t *tag.Tag, mode RecurseMode) {
	p.print(t, "", mode, true)
}

// PrintNames writes the same structure without values.
func (p *Printer) PrintNames(t *tag.Tag, mode RecurseMode) {
	p.print(t, "", mode, false)
}

func (p *Printer) print(t *tag.Tag, prefix string, mode RecurseMode, values bool) {
	if t == nil {
		return
	}
	switch t.Type() {
	case tag.TypeCompound:
		p.printCompound(t, prefix, mode, values)
	case tag.TypeList:
		p.printList(t, prefix, mode, values)
	case tag.TypeByte:
		v := t.ByteValue()
		if p.infer && (v == 0 || v == 1) && p.bools.matches(t.Name()) {
			p.printBasic(t, prefix, "~bool", p.colors.Inferred, strconv.FormatBool(v != 0), values)
			return
		}
		p.printBasic(t, prefix, "byte", p.colors.Number, t.String(), values)
	case tag.TypeShort, tag.TypeInt, tag.TypeLong, tag.TypeFloat, tag.TypeDouble:
		p.printBasic(t, prefix, t.Type().String(), p.colors.Number, t.String(), values)
	case tag.TypeString:
		p.printString(t, prefix, mode, values)
	case tag.TypeByteArray:
		if raw := t.ByteArrayValue(); p.infer && len(raw) > 32 {
			p.printBasic(t, prefix, "~base64", p.colors.Array, base64.StdEncoding.EncodeToString(raw), values)
			return
		}
		p.printBasic(t, prefix, "byte[]", p.colors.Array, t.String(), values)
	case tag.TypeIntArray:
		if ints := t.IntArrayValue(); p.infer && len(ints) == 4 {
			p.printBasic(t, prefix, "~uuid", p.colors.Array, uuidFromInts(ints).String(), values)
			return
		}
		p.printBasic(t, prefix, "int[]", p.colors.Array, t.String(), values)
	case tag.TypeLongArray:
		p.printBasic(t, prefix, "long[]", p.colors.Array, t.String(), values)
	}
}

func (p *Printer) printCompound(t *tag.Tag, prefix string, mode RecurseMode, values bool) {
	if mode.printRoot() {
		fmt.Fprint(p.w, prefix, p.colors.Container("compound "))
		p.printName(t, t.Name(), false)
	}
	if !values && !(mode.printChildren() && !mode.printRoot()) {
		fmt.Fprintln(p.w)
		return
	}
	if !mode.printChildren() {
		if mode.printRoot() {
			fmt.Fprintf(p.w, " (%s)\n", childCount(t.Len()))
		}
		return
	}
	if t.IsEmpty() {
		if mode.printRoot() {
			fmt.Fprintln(p.w, " {}")
		}
		return
	}
	childPrefix := prefix
	if mode.printRoot() {
		fmt.Fprintln(p.w, " {")
		childPrefix = prefix + "  "
	}
	for _, child := range t.Children() {
		if p.infer {
			if base, ok := strings.CutSuffix(child.Name(), "Most"); ok {
				if least := t.Get(base + "Least"); isLong(child) && isLong(least) {
					u := uuidFromPair(child.LongValue(), least.LongValue())
					p.printInferredPair(child, base, u.String(), childPrefix, values)
					continue
				}
			}
			if base, ok := strings.CutSuffix(child.Name(), "Least"); ok {
				if isLong(t.Get(base+"Most")) && isLong(child) {
					continue
				}
			}
		}
		p.print(child, childPrefix, mode.degradeForCompound(), values)
	}
	if mode.printRoot() {
		fmt.Fprintln(p.w, prefix+"}")
	}
}

func (p *Printer) printList(t *tag.Tag, prefix string, mode RecurseMode, values bool) {
	if t.Len() == 0 {
		if !mode.printRoot() {
			return
		}
		fmt.Fprint(p.w, prefix, p.colors.Container("list "))
		p.printName(t, t.Name(), false)
		switch {
		case !values:
			fmt.Fprintln(p.w)
		case mode.printChildren():
			fmt.Fprintln(p.w, " []")
		default:
			fmt.Fprintln(p.w, " (0 children)")
		}
		return
	}
	if mode.printRoot() {
		fmt.Fprint(p.w, prefix, p.colors.Container("list "))
		p.printName(t, t.Name(), false)
	}
	if !values && !(mode.printChildren() && !mode.printRoot()) {
		fmt.Fprintln(p.w)
		return
	}
	if !mode.printChildren() {
		if mode.printRoot() {
			fmt.Fprintf(p.w, " (%s)\n", childCount(t.Len()))
		}
		return
	}
	childPrefix := prefix
	if mode.printRoot() {
		fmt.Fprintln(p.w, " [")
		childPrefix = prefix + "  "
	}
	for i := 0; i < t.Len(); i++ {
		p.print(t.Index(i), childPrefix, mode.degradeForList(), values)
	}
	if mode.printRoot() {
		fmt.Fprintln(p.w, prefix+"]")
	}
}

func (p *Printer) printString(t *tag.Tag, prefix string, mode RecurseMode, values bool) {
	s := t.StringValue()
	if p.infer && (strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")) && json.Valid([]byte(s)) {
		if !values {
			p.printBasic(t, prefix, "~json", p.colors.JSON, "", false)
			return
		}
		if !mode.printChildren() {
			p.printBasic(t, prefix, "~json", p.colors.JSON, "...", true)
			return
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(s), prefix+"  ", "  "); err == nil {
			p.printBasic(t, prefix, "~json", p.colors.JSON, buf.String(), true)
			return
		}
	}
	p.printBasic(t, prefix, "string", p.colors.String, s, values)
}

// printInferredPair renders a Most/Least long pair under its base name.
func (p *Printer) printInferredPair(t *tag.Tag, base, value, prefix string, values bool) {
	fmt.Fprint(p.w, prefix, p.colors.Inferred("~uuid"), " ")
	p.printName(t, base, values)
	if values {
		fmt.Fprintln(p.w, p.colors.Value("%s", value))
	} else {
		fmt.Fprintln(p.w)
	}
}

func (p *Printer) printBasic(t *tag.Tag, prefix, label string, colorize func(string, ...any) string, value string, values bool) {
	fmt.Fprint(p.w, prefix, colorize(label), " ")
	p.printName(t, t.Name(), values)
	if values {
		fmt.Fprintln(p.w, p.colors.Value("%s", value))
	} else {
		fmt.Fprintln(p.w)
	}
}

// printName writes the quoted name, or the padded element index for an
// unnamed list member. equals separates name from value.
func (p *Printer) printName(t *tag.Tag, name string, equals bool) {
	if name != "" {
		fmt.Fprint(p.w, p.colors.Name("%s", "\""+escapeName(name)+"\""))
		if equals {
			fmt.Fprint(p.w, " = ")
		}
		return
	}
	if parent := t.Parent(); parent != nil && parent.Type() == tag.TypeList {
		idx := strconv.Itoa(parent.IndexOf(t))
		width := len(strconv.Itoa(parent.Len() - 1))
		fmt.Fprint(p.w, strings.Repeat(" ", width-len(idx)), idx)
		if equals {
			fmt.Fprint(p.w, " = ")
		}
		return
	}
	if equals {
		fmt.Fprint(p.w, " ")
	}
}

func childCount(n int) string {
	if n == 1 {
		return "1 child"
	}
	return strconv.Itoa(n) + " children"
}

func isLong(t *tag.Tag) bool { return t != nil && t.Type() == tag.TypeLong }

func uuidFromPair(most, least int64) uuid.UUID {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], uint64(most))
	binary.BigEndian.PutUint64(b[8:], uint64(least))
	return uuid.UUID(b)
}

func uuidFromInts(v []int32) uuid.UUID {
	var b [16]byte
	for i, w := range v[:4] {
		binary.BigEndian.PutUint32(b[i*4:], uint32(w))
	}
	return uuid.UUID(b)
}
