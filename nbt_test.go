package nbt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nbt-format/go-nbt/compress"
	"github.com/nbt-format/go-nbt/format"
	"github.com/nbt-format/go-nbt/tag"
)

func sampleRoot(t *testing.T) *tag.Tag {
	t.Helper()
	root := tag.NewCompound("Data")
	root.Put(tag.NewByte("flag", 1))
	root.Put(tag.NewShort("depth", -12))
	root.Put(tag.NewInt("seed", 123456789))
	root.Put(tag.NewLong("time", 1<<40))
	root.Put(tag.NewFloat("health", 19.5))
	root.Put(tag.NewDouble("pos", -0.125))
	root.Put(tag.NewString("name", "overworld"))
	root.Put(tag.NewByteArray("raw", []byte{0, 1, 2, 255}))
	root.Put(tag.NewIntArray("chunks", []int32{-1, 0, 1}))
	root.Put(tag.NewLongArray("stamps", []int64{1 << 33, -5}))
	list := tag.NewList("entries")
	entry := tag.NewCompound("")
	entry.Put(tag.NewInt("id", 7))
	if err := list.Append(entry); err != nil {
		t.Fatal(err)
	}
	root.Put(list)
	root.Put(tag.NewList("empty"))
	return root
}

func TestRoundTripAllFramings(t *testing.T) {
	root := sampleRoot(t)
	endians := []format.Endianness{format.BigEndian, format.LittleEndian, format.XOREndian}
	methods := []compress.Method{compress.None, compress.Deflate, compress.Gzip, compress.Zstd}
	for _, e := range endians {
		for _, m := range methods {
			t.Run(e.String()+"/"+m.String(), func(t *testing.T) {
				var buf bytes.Buffer
				err := Encode(&buf, root, WithEndianness(e), WithCompression(m))
				if err != nil {
					t.Fatal(err)
				}
				got, info, err := Decode(bytes.NewReader(buf.Bytes()), WithEndianness(e))
				if err != nil {
					t.Fatal(err)
				}
				if !tag.Equal(root, got) {
					t.Error("decoded tree differs")
				}
				if info.Compression != m || !info.DetectedCompression {
					t.Errorf("compression info = %v detected=%v", info.Compression, info.DetectedCompression)
				}

				// re-encode with the reported framing, byte equality
				var again bytes.Buffer
				if err := Encode(&again, got, InfoOptions(info)...); err != nil {
					t.Fatal(err)
				}
				if m == compress.None {
					if diff := cmp.Diff(buf.Bytes(), again.Bytes()); diff != "" {
						t.Errorf("re-encode differs (-first +second):\n%s", diff)
					}
				} else {
					redec, _, err := Decode(bytes.NewReader(again.Bytes()), WithEndianness(e))
					if err != nil {
						t.Fatal(err)
					}
					if !tag.Equal(root, redec) {
						t.Error("re-encoded tree differs")
					}
				}
			})
		}
	}
}

func TestCompressionAutodetect(t *testing.T) {
	root := sampleRoot(t)
	var buf bytes.Buffer
	if err := Encode(&buf, root, WithCompression(compress.Gzip)); err != nil {
		t.Fatal(err)
	}
	got, info, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(root, got) {
		t.Error("decoded tree differs")
	}
	if info.Compression != compress.Gzip || !info.DetectedCompression {
		t.Errorf("info = %+v, want detected gzip", info)
	}
}

func TestEndiannessFallback(t *testing.T) {
	root := sampleRoot(t)
	var buf bytes.Buffer
	if err := Encode(&buf, root, WithEndianness(format.LittleEndian)); err != nil {
		t.Fatal(err)
	}
	got, info, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(root, got) {
		t.Error("decoded tree differs")
	}
	if info.Endianness != format.LittleEndian || !info.DetectedEndianness {
		t.Errorf("info = %+v, want detected little-endian", info)
	}
}

func TestEndiannessPinnedNoFallback(t *testing.T) {
	root := sampleRoot(t)
	var buf bytes.Buffer
	if err := Encode(&buf, root, WithEndianness(format.LittleEndian)); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Decode(bytes.NewReader(buf.Bytes()), WithEndianness(format.BigEndian)); err == nil {
		t.Fatal("pinned wrong endianness decoded anyway")
	}
}

func TestJSONSniffing(t *testing.T) {
	root := sampleRoot(t)
	var buf bytes.Buffer
	if err := Encode(&buf, root, WithFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	if buf.Bytes()[0] != '{' {
		t.Fatalf("json output starts with %q", buf.Bytes()[0])
	}
	got, info, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !info.Format.IsJSON() {
		t.Errorf("format = %v, want json", info.Format)
	}
	if !tag.Equal(root, got) {
		t.Error("decoded tree differs")
	}
}

func TestJSONInsideGzip(t *testing.T) {
	root := sampleRoot(t)
	var buf bytes.Buffer
	err := Encode(&buf, root, WithFormat(format.JSONFormat), WithCompression(compress.Gzip))
	if err != nil {
		t.Fatal(err)
	}
	got, info, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !info.Format.IsJSON() || info.Compression != compress.Gzip {
		t.Errorf("info = %+v, want gzipped json", info)
	}
	if !tag.Equal(root, got) {
		t.Error("decoded tree differs")
	}
}

func TestGarbageInput(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an nbt file at all")))
	if err == nil {
		t.Fatal("garbage decoded")
	}
}

func TestNilRoot(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, nil); !errors.Is(err, ErrNilRoot) {
		t.Errorf("Encode(nil) = %v, want ErrNilRoot", err)
	}
	in := `{"_unbted": 1, "rootType": "null", "rootName": "", "root": null}`
	if _, _, err := Decode(bytes.NewReader([]byte(in))); !errors.Is(err, ErrNilRoot) {
		t.Errorf("Decode(null root) = %v, want ErrNilRoot", err)
	}
}
