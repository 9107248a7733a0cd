// Package compress provides the four compression framings an NBT document
// may be wrapped in, plus magic-byte detection for streams whose framing
// was not pinned by the caller.
package compress

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

type Method int

const (
	None Method = iota
	Deflate
	Gzip
	Zstd
)

var ErrBadMethod = errors.New("bad compression method")

func ParseMethod(v string) (Method, error) {
	m, ok := map[string]Method{
		"none":    None,
		"deflate": Deflate,
		"zlib":    Deflate,
		"gzip":    Gzip,
		"gz":      Gzip,
		"zstd":    Zstd,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMethod, v)
}

func (m Method) String() string {
	switch m {
	case None:
		return "none"
	case Deflate:
		return "deflate"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("<err: %d is not a compression method>", int(m))
	}
}

func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(d []byte) error {
	pm, err := ParseMethod(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

// Detect sniffs the compression framing from the first bytes of a stream.
// Streams with no recognized magic are reported as None; detection needs
// at least two bytes for gzip and zstd.
func Detect(prefix []byte) Method {
	if len(prefix) >= 2 {
		magic16 := uint16(prefix[0]) | uint16(prefix[1])<<8
		switch magic16 {
		case 0x8b1f:
			return Gzip
		case 0xb528:
			return Zstd
		}
	}
	if len(prefix) >= 1 && prefix[0] == 0x78 {
		return Deflate
	}
	return None
}

// Reader wraps r in a decompressing reader for this method.
func (m Method) Reader(r io.Reader) (io.ReadCloser, error) {
	switch m {
	case None:
		return io.NopCloser(r), nil
	case Deflate:
		return zlib.NewReader(r)
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMethod, int(m))
	}
}

// Writer wraps w in a compressing writer for this method. The returned
// writer must be closed to flush the frame; closing it does not close w.
func (m Method) Writer(w io.Writer) (io.WriteCloser, error) {
	switch m {
	case None:
		return nopWriteCloser{w}, nil
	case Deflate:
		return zlib.NewWriter(w), nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMethod, int(m))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
