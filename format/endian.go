package format

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Endianness selects the byte-order variant of the binary codec.
//
// BigEndian is the standard interchange order. LittleEndian is the order
// used by the legacy pocket variant of the format. XOREndian is a joke
// variant kept for compatibility: big-endian data passed byte-wise through
// a symmetric XOR stream cipher with a fixed repeating key.
type Endianness int

const (
	BigEndian Endianness = iota
	LittleEndian
	XOREndian
)

// xorKey is the fixed repeating key of the XOR variant. The transform is
// its own inverse, so the same wrapping applies on read and write.
var xorKey = []byte("ZZAZZAAZZAAZZZAAZZZAZAZZAZAZAZZAAZZAAZAZAZAZZAZAZAZAZAZAZZAAZZAAZZAAZZAAAZAZAZAAZZAAZZAAZAZZAAZZAAZZAZAZAZZAZZAZZAZZAZZZZZAAZAZAZAZAZAZAZ")

func ParseEndianness(v string) (Endianness, error) {
	e, ok := map[string]Endianness{
		"big":           BigEndian,
		"big-endian":    BigEndian,
		"little":        LittleEndian,
		"little-endian": LittleEndian,
		"xor":           XOREndian,
		"zzazz":         XOREndian,
	}[v]
	if ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q is not an endianness", ErrBadFormat, v)
}

func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	case XOREndian:
		return "zzazz"
	default:
		return fmt.Sprintf("<err: %d is not an endianness>", int(e))
	}
}

func (e Endianness) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Endianness) UnmarshalText(d []byte) error {
	pe, err := ParseEndianness(string(d))
	if err != nil {
		return err
	}
	*e = pe
	return nil
}

// ByteOrder returns the multi-byte integer order of this variant. The XOR
// variant ciphers a big-endian stream.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// WrapReader layers any stream transform of this variant over r. Big and
// little endianness are pure byte-order concerns and return r unchanged.
func (e Endianness) WrapReader(r io.Reader) io.Reader {
	if e == XOREndian {
		return &xorReader{r: r}
	}
	return r
}

// WrapWriter layers any stream transform of this variant over w.
func (e Endianness) WrapWriter(w io.Writer) io.Writer {
	if e == XOREndian {
		return &xorWriter{w: w}
	}
	return w
}

type xorReader struct {
	r       io.Reader
	counter int
}

func (x *xorReader) Read(p []byte) (int, error) {
	n, err := x.r.Read(p)
	for i := 0; i < n; i++ {
		p[i] ^= xorKey[x.counter]
		x.counter = (x.counter + 1) % len(xorKey)
	}
	return n, err
}

type xorWriter struct {
	w       io.Writer
	counter int
}

func (x *xorWriter) Write(p []byte) (int, error) {
	// the caller's buffer must not be modified
	enc := make([]byte, len(p))
	for i, b := range p {
		enc[i] = b ^ xorKey[x.counter]
		x.counter = (x.counter + 1) % len(xorKey)
	}
	return x.w.Write(enc)
}
