package snbt

import (
	"errors"
	"testing"

	"github.com/nbt-format/go-nbt/tag"
)

func TestParseScalars(t *testing.T) {
	for _, tc := range []struct {
		in   string
		typ  tag.Type
		want string
	}{
		{"1b", tag.TypeByte, "1b"},
		{"-3b", tag.TypeByte, "-3b"},
		{"true", tag.TypeByte, "1b"},
		{"false", tag.TypeByte, "0b"},
		{"300s", tag.TypeShort, "300s"},
		{"42", tag.TypeInt, "42"},
		{"-42", tag.TypeInt, "-42"},
		{"42l", tag.TypeLong, "42l"},
		{"42L", tag.TypeLong, "42l"},
		{"1.5f", tag.TypeFloat, "1.5f"},
		{"1.5", tag.TypeDouble, "1.5d"},
		{"1.5d", tag.TypeDouble, "1.5d"},
		{"2d", tag.TypeDouble, "2d"},
		{"1e3", tag.TypeDouble, "1000d"},
		{`"hi there"`, tag.TypeString, `"hi there"`},
		{`'single'`, tag.TypeString, `"single"`},
		{"bare_word", tag.TypeString, `"bare_word"`},
		// integer out of 32-bit range stays a string
		{"3000000000", tag.TypeString, `"3000000000"`},
		// suffix letter on a non-number is just a string
		{"bold", tag.TypeString, `"bold"`},
	} {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got.Type() != tc.typ {
			t.Fatalf("Parse(%q) type = %v, want %v", tc.in, got.Type(), tc.typ)
		}
		if enc := Encode(got); enc != tc.want {
			t.Errorf("Encode(Parse(%q)) = %q, want %q", tc.in, enc, tc.want)
		}
	}
}

func TestParseContainers(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"{}", "{}"},
		{"[]", "[]"},
		{"[B;]", "[B;]"},
		{"[B; 1b, -2b]", "[B;1b, -2b]"},
		{"[I;1,2,3]", "[I;1, 2, 3]"},
		{"[L; 9l, -9]", "[L;9l, -9l]"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{`{a: 1, b: "x"}`, `{a: 1, b: "x"}`},
		{`{ "quoted key" : 1b }`, `{"quoted key": 1b}`},
		{`{outer: {inner: [1.5f]}}`, "{outer: {inner: [1.5f]}}"},
	} {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if enc := Encode(got); enc != tc.want {
			t.Errorf("Encode(Parse(%q)) = %q, want %q", tc.in, enc, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"{",
		"{a}",
		"{a: 1",
		"[1, ",
		`"unterminated`,
		"[1b, 2s]",      // mixed list kinds
		"[B; 1b, 300b]", // byte range
		"1 2",           // trailing data
	} {
		if _, err := Parse(in); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) err = %v, want ErrParse", in, err)
		}
	}
}

func TestParseNamed(t *testing.T) {
	got, err := ParseNamed("pos", "{x: 1, y: 2}")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "pos" {
		t.Fatalf("name = %q", got.Name())
	}
	if got.Get("y").IntValue() != 2 {
		t.Fatal("child value lost")
	}
}

func TestRoundTrip(t *testing.T) {
	c := tag.NewCompound("")
	c.Put(tag.NewString("needs quoting", `a "b" \c`))
	c.Put(tag.NewByteArray("raw", []byte{0x00, 0xff}))
	l := tag.NewList("vals")
	l.Append(tag.NewDouble("", 0.5))
	l.Append(tag.NewDouble("", -2))
	c.Put(l)

	got, err := Parse(Encode(c))
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(c, got) {
		t.Fatalf("round trip changed the tree:\n%s\n%s", Encode(c), Encode(got))
	}
}
