package nbtjson

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nbt-format/go-nbt/tag"
)

func sampleTree() *tag.Tag {
	c := tag.NewCompound("root")
	c.Put(tag.NewByte("b", -3))
	c.Put(tag.NewShort("s", 1234))
	c.Put(tag.NewInt("i", -56789))
	c.Put(tag.NewLong("l", 1<<41))
	c.Put(tag.NewFloat("f", 3.5))
	c.Put(tag.NewDouble("d", -0.25))
	c.Put(tag.NewString("str", "with \"quotes\" and\nnewline"))
	c.Put(tag.NewByteArray("ba", []byte{0, 1, 255}))
	c.Put(tag.NewIntArray("ia", []int32{1, -2, 3}))
	c.Put(tag.NewLongArray("la", []int64{-9, 9}))
	l := tag.NewList("li")
	l.Append(tag.NewString("", "a"))
	l.Append(tag.NewString("", "b"))
	c.Put(l)
	c.Put(tag.NewList("empty"))
	inner := tag.NewCompound("inner")
	inner.Put(tag.NewString("k", "v"))
	c.Put(inner)
	return c
}

func TestRoundTrip(t *testing.T) {
	want := sampleTree()
	var buf bytes.Buffer
	if err := Encode(&buf, want); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "root" {
		t.Fatalf("root name = %q", got.Name())
	}
	if !tag.Equal(want, got) {
		t.Fatal("round trip changed the tree")
	}
	if got.Get("empty").ElementType() != tag.TypeEnd {
		t.Fatal("empty list lost its untyped element kind")
	}
}

func TestRoundTripNilRoot(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil root", got)
	}
}

func TestRoundTripKeyWithColon(t *testing.T) {
	c := tag.NewCompound("")
	c.Put(tag.NewInt("minecraft:stone", 1))
	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Get("minecraft:stone").IntValue() != 1 {
		t.Fatal("colon in key not preserved")
	}
}

func TestDecodeEnvelopeErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{`{"a": 1}`, ErrNotNBTJSON},
		{`{"_unbted": 2, "rootType": "compound", "rootName": "", "root": {}}`, ErrUnsupportedVersion},
		{`{"_unbted": 1, "rootType": "compound", "rootName": "", "root": {"noprefix": 1}}`, ErrMalformedTypePrefix},
		{`{"_unbted": 1, "rootType": "list<?>", "rootName": "", "root": [1]}`, ErrInvalidEmptyListType},
		{`{"_unbted": 1, "rootType": "wibble", "rootName": "", "root": 1}`, ErrMalformedTypePrefix},
		{`{"_unbted": 1, "rootType": "compound", "rootName": "", "root": {"null:x": null}}`, ErrMalformedTypePrefix},
		{`{"_unbted": 1, "rootType": "list<null>", "rootName": "", "root": [null]}`, ErrMalformedTypePrefix},
		{`not json`, ErrMalformed},
	} {
		_, err := Decode(strings.NewReader(tc.in))
		if !errors.Is(err, tc.want) {
			t.Errorf("Decode(%q) err = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestDecodeSkipsStrayMarker(t *testing.T) {
	in := `{"_unbted": 1, "rootType": "compound", "rootName": "r",
		"root": {"_unbted": 1, "int:x": 5}}`
	got, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 || got.Get("x").IntValue() != 5 {
		t.Fatalf("got %v", got)
	}
}

func TestBasicSortsKeys(t *testing.T) {
	c := tag.NewCompound("")
	c.Put(tag.NewInt("zulu", 1))
	c.Put(tag.NewInt("alpha", 2))
	var buf bytes.Buffer
	if err := EncodeBasic(&buf, c); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Index(out, "alpha") > strings.Index(out, "zulu") {
		t.Fatalf("keys not sorted:\n%s", out)
	}
	// idempotent ordering
	var buf2 bytes.Buffer
	if err := EncodeBasic(&buf2, c); err != nil {
		t.Fatal(err)
	}
	if out != buf2.String() {
		t.Fatal("basic encoding not deterministic")
	}
}

func TestBasicUUIDCollapse(t *testing.T) {
	c := tag.NewCompound("")
	c.Put(tag.NewLong("ownerMost", 0x1122334455667788))
	c.Put(tag.NewLong("ownerLeast", 0x0123456789abcdef))
	var buf bytes.Buffer
	if err := EncodeBasic(&buf, c); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"owner": "11223344-5566-7788-0123-456789abcdef"`) {
		t.Fatalf("no collapsed UUID in:\n%s", out)
	}
	if strings.Contains(out, "ownerMost") || strings.Contains(out, "ownerLeast") {
		t.Fatalf("pair keys leaked into:\n%s", out)
	}

	// roundtrip shape must keep them uncollapsed
	buf.Reset()
	if err := Encode(&buf, c); err != nil {
		t.Fatal(err)
	}
	out = buf.String()
	if !strings.Contains(out, "long:ownerMost") || !strings.Contains(out, "long:ownerLeast") {
		t.Fatalf("roundtrip shape collapsed the pair:\n%s", out)
	}
}

func TestBasicUUIDIntArray(t *testing.T) {
	c := tag.NewCompound("")
	c.Put(tag.NewIntArray("id", []int32{0x11223344, 0x55667788, 0x01234567, -0x76543211}))
	c.Put(tag.NewIntArray("other", []int32{1, 2, 3}))
	var buf bytes.Buffer
	if err := EncodeBasic(&buf, c); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"id": "11223344-5566-7788-0123-456789abcdef"`) {
		t.Fatalf("four-int array not rendered as UUID:\n%s", out)
	}
	if !strings.Contains(out, "1,") {
		t.Fatalf("three-int array not rendered as numbers:\n%s", out)
	}
}

func TestBasicByteArrayBase64(t *testing.T) {
	c := tag.NewCompound("")
	c.Put(tag.NewByteArray("raw", []byte{0xde, 0xad, 0xbe, 0xef}))
	var buf bytes.Buffer
	if err := EncodeBasic(&buf, c); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"3q2+7w=="`) {
		t.Fatalf("byte array not base64:\n%s", buf.String())
	}
}

func TestTypePrefix(t *testing.T) {
	l := tag.NewList("")
	l.Append(tag.NewInt("", 1))
	nested := tag.NewList("")
	innerList := tag.NewList("")
	innerList.Append(tag.NewString("", "x"))
	nested.Append(innerList)
	for _, tc := range []struct {
		in   *tag.Tag
		want string
	}{
		{nil, "null"},
		{tag.NewByte("", 0), "byte"},
		{tag.NewIntArray("", nil), "int-array"},
		{tag.NewList(""), "list<?>"},
		{l, "list<int>"},
		{nested, "list<list<string>>"},
		{tag.NewCompound(""), "compound"},
	} {
		if got := TypePrefix(tc.in); got != tc.want {
			t.Errorf("TypePrefix = %q, want %q", got, tc.want)
		}
	}
}

func TestDecodeNestedGenericList(t *testing.T) {
	// the inner type of list<list<string>> must come from the last '>'
	in := `{"_unbted": 1, "rootType": "compound", "rootName": "",
		"root": {"list<list<string>>:nested": [["a", "b"], []]}}`
	got, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	nested := got.Get("nested")
	if nested.Len() != 2 {
		t.Fatalf("outer len = %d", nested.Len())
	}
	if nested.Index(0).Index(1).StringValue() != "b" {
		t.Fatal("inner list content lost")
	}
}
