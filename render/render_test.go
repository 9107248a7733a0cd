package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/nbt-format/go-nbt/tag"
)

func init() {
	color.NoColor = true
}

func printString(t *tag.Tag, mode RecurseMode, opts ...Option) string {
	var buf bytes.Buffer
	NewPrinter(&buf, opts...).Print(t, mode)
	return buf.String()
}

func TestPrintScalars(t *testing.T) {
	root := tag.NewCompound("root")
	root.Put(tag.NewInt("count", 42))
	root.Put(tag.NewDouble("ratio", 0.5))
	root.Put(tag.NewString("label", "hello"))

	got := printString(root, RecurseFull)
	want := strings.Join([]string{
		`compound "root" {`,
		`  int "count" = 42`,
		`  double "ratio" = 0.5`,
		`  string "label" = hello`,
		`}`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRecurseModes(t *testing.T) {
	root := tag.NewCompound("root")
	inner := tag.NewCompound("inner")
	inner.Put(tag.NewInt("x", 1))
	root.Put(inner)
	root.Put(tag.NewInt("y", 2))

	tests := []struct {
		name string
		mode RecurseMode
		want string
	}{
		{
			name: "none",
			mode: RecurseNone,
			want: `compound "root" (2 children)` + "\n",
		},
		{
			name: "children",
			mode: RecurseChildren,
			want: strings.Join([]string{
				`compound "root" {`,
				`  compound "inner" (1 child)`,
				`  int "y" = 2`,
				`}`,
				``,
			}, "\n"),
		},
		{
			name: "children only",
			mode: RecurseChildrenOnly,
			want: strings.Join([]string{
				`compound "inner" (1 child)`,
				`int "y" = 2`,
				``,
			}, "\n"),
		},
		{
			name: "full",
			mode: RecurseFull,
			want: strings.Join([]string{
				`compound "root" {`,
				`  compound "inner" {`,
				`    int "x" = 1`,
				`  }`,
				`  int "y" = 2`,
				`}`,
				``,
			}, "\n"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, printString(root, tc.mode)); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListElements(t *testing.T) {
	root := tag.NewList("nums")
	for i := 0; i < 12; i++ {
		if err := root.Append(tag.NewInt("", int32(i*10))); err != nil {
			t.Fatal(err)
		}
	}

	got := printString(root, RecurseFull)
	if !strings.HasPrefix(got, "list \"nums\" [\n") {
		t.Fatalf("missing list header: %q", got)
	}
	// indexes right-align to the widest element
	if !strings.Contains(got, "  int  0 = 0\n") {
		t.Errorf("missing padded first element in %q", got)
	}
	if !strings.Contains(got, "  int 11 = 110\n") {
		t.Errorf("missing last element in %q", got)
	}
}

func TestEmptyContainers(t *testing.T) {
	if got := printString(tag.NewCompound("c"), RecurseFull); got != "compound \"c\" {}\n" {
		t.Errorf("empty compound: %q", got)
	}
	if got := printString(tag.NewList("l"), RecurseFull); got != "list \"l\" []\n" {
		t.Errorf("empty list: %q", got)
	}
	if got := printString(tag.NewList("l"), RecurseNone); got != "list \"l\" (0 children)\n" {
		t.Errorf("empty list summary: %q", got)
	}
}

func TestBoolInference(t *testing.T) {
	root := tag.NewCompound("root")
	root.Put(tag.NewByte("hardcore", 1))
	root.Put(tag.NewByte("isRaining", 0))
	root.Put(tag.NewByte("count", 1))
	root.Put(tag.NewByte("hasEgg", 3))

	got := printString(root, RecurseFull)
	for _, line := range []string{
		`~bool "hardcore" = true`,
		`~bool "isRaining" = false`,
		`byte "count" = 1`,
		`byte "hasEgg" = 3`,
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in %q", line, got)
		}
	}

	raw := printString(root, RecurseFull, WithInference(false))
	if strings.Contains(raw, "~bool") {
		t.Errorf("raw mode inferred bool: %q", raw)
	}
}

func TestUUIDPairCollapse(t *testing.T) {
	root := tag.NewCompound("root")
	root.Put(tag.NewLong("OwnerMost", 0x1122334455667788))
	root.Put(tag.NewLong("OwnerLeast", 0x0123456789abcdef))
	root.Put(tag.NewInt("other", 1))

	got := printString(root, RecurseFull)
	if !strings.Contains(got, `~uuid "Owner" = 11223344-5566-7788-0123-456789abcdef`) {
		t.Errorf("missing collapsed pair in %q", got)
	}
	if strings.Contains(got, "OwnerLeast") {
		t.Errorf("Least half still printed: %q", got)
	}

	raw := printString(root, RecurseFull, WithInference(false))
	if !strings.Contains(raw, `long "OwnerMost"`) || !strings.Contains(raw, `long "OwnerLeast"`) {
		t.Errorf("raw mode collapsed pair: %q", raw)
	}
}

func TestUUIDPairNeedsBothLongs(t *testing.T) {
	root := tag.NewCompound("root")
	root.Put(tag.NewLong("OwnerMost", 1))
	root.Put(tag.NewInt("OwnerLeast", 2))

	got := printString(root, RecurseFull)
	if strings.Contains(got, "~uuid") {
		t.Errorf("collapsed mismatched pair: %q", got)
	}
}

func TestIntArrayUUID(t *testing.T) {
	root := tag.NewIntArray("id", []int32{0x11223344, 0x55667788, 0x01234567, -0x76543211})
	got := printString(root, RecurseFull)
	if !strings.Contains(got, `~uuid "id" = 11223344-5566-7788-0123-456789abcdef`) {
		t.Errorf("missing int-array uuid in %q", got)
	}

	five := tag.NewIntArray("id", []int32{1, 2, 3, 4, 5})
	if got := printString(five, RecurseFull); !strings.Contains(got, `int[] "id" = [1, 2, 3, 4, 5]`) {
		t.Errorf("five-element array inferred: %q", got)
	}
}

func TestByteArrayBase64(t *testing.T) {
	long := tag.NewByteArray("blob", bytes.Repeat([]byte{0xde}, 33))
	got := printString(long, RecurseFull)
	if !strings.Contains(got, `~base64 "blob" = `) {
		t.Errorf("long array not base64: %q", got)
	}

	short := tag.NewByteArray("blob", []byte{1, 2})
	if got := printString(short, RecurseFull); !strings.Contains(got, `byte[] "blob" = [1, 2]`) {
		t.Errorf("short array: %q", got)
	}
}

func TestJSONStringInference(t *testing.T) {
	root := tag.NewCompound("root")
	root.Put(tag.NewString("extra", `{"text":"hi"}`))
	root.Put(tag.NewString("broken", `{"text":`))

	got := printString(root, RecurseFull)
	if !strings.Contains(got, `~json "extra" = {`) {
		t.Errorf("valid json not inferred: %q", got)
	}
	if !strings.Contains(got, "\n    \"text\": \"hi\"\n") {
		t.Errorf("json not reindented: %q", got)
	}
	if !strings.Contains(got, `string "broken" = {"text":`) {
		t.Errorf("invalid json inferred: %q", got)
	}

	// a summary view elides the body
	summary := printString(tag.NewString("extra", `{"text":"hi"}`), RecurseNone)
	if !strings.Contains(summary, `~json "extra" = ...`) {
		t.Errorf("summary did not elide: %q", summary)
	}
}

func TestEscapedNames(t *testing.T) {
	root := tag.NewCompound("root")
	root.Put(tag.NewInt("a\nb", 1))
	got := printString(root, RecurseFull)
	if !strings.Contains(got, `int "a\nb" = 1`) {
		t.Errorf("name not escaped: %q", got)
	}
}

func TestCustomBoolHeuristic(t *testing.T) {
	h := BoolHeuristic{Names: []string{"enabled"}}
	root := tag.NewCompound("root")
	root.Put(tag.NewByte("enabled", 1))
	root.Put(tag.NewByte("hardcore", 1))

	got := printString(root, RecurseFull, WithBoolHeuristic(h))
	if !strings.Contains(got, `~bool "enabled" = true`) {
		t.Errorf("custom name not matched: %q", got)
	}
	if !strings.Contains(got, `byte "hardcore" = 1`) {
		t.Errorf("default name leaked into custom heuristic: %q", got)
	}
}
