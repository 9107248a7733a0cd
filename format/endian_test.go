package format

import (
	"bytes"
	"io"
	"testing"
)

func TestXORRoundTrip(t *testing.T) {
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i * 31)
	}
	var buf bytes.Buffer
	w := XOREndian.WrapWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(buf.Bytes(), payload) {
		t.Fatal("cipher output equals input")
	}
	got, err := io.ReadAll(XOREndian.WrapReader(&buf))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("round trip mismatch")
	}
}

func TestXORCounterSpansWrites(t *testing.T) {
	var one, split bytes.Buffer
	w := XOREndian.WrapWriter(&one)
	if _, err := w.Write([]byte("hello, world")); err != nil {
		t.Fatal(err)
	}
	w = XOREndian.WrapWriter(&split)
	for _, part := range []string{"hel", "lo, wo", "rld"} {
		if _, err := w.Write([]byte(part)); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(one.Bytes(), split.Bytes()) {
		t.Fatal("counter reset between writes")
	}
}

func TestParseEndianness(t *testing.T) {
	tests := []struct {
		in      string
		want    Endianness
		wantErr bool
	}{
		{in: "big", want: BigEndian},
		{in: "big-endian", want: BigEndian},
		{in: "little", want: LittleEndian},
		{in: "zzazz", want: XOREndian},
		{in: "middle", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseEndianness(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}
