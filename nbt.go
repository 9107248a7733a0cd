// Package nbt decodes and encodes whole NBT documents: a binary or JSON
// payload inside an optional compression framing, in one of three byte
// orders. It composes the wire, compress, and nbtjson packages and adds
// the detection logic a caller without out-of-band knowledge needs.
package nbt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/nbt-format/go-nbt/compress"
	"github.com/nbt-format/go-nbt/format"
	"github.com/nbt-format/go-nbt/nbtjson"
	"github.com/nbt-format/go-nbt/tag"
	"github.com/nbt-format/go-nbt/wire"
)

// ErrNilRoot reports a document that decoded to no root tag.
var ErrNilRoot = errors.New("nil root tag")

// FileInfo records how a document was framed, and which parts of that
// framing were detected rather than pinned by the caller. Re-encoding
// with the same FileInfo reproduces the original framing.
type FileInfo struct {
	Format              format.Format
	Compression         compress.Method
	Endianness          format.Endianness
	DetectedCompression bool
	DetectedEndianness  bool
}

// Option configures Decode and Encode behavior.
type Option func(*opts)

type opts struct {
	compression    compress.Method
	hasCompression bool
	endianness     format.Endianness
	hasEndianness  bool
	form           format.Format
	hasFormat      bool
}

// WithCompression pins the compression framing, disabling magic-byte
// detection on decode.
func WithCompression(m compress.Method) Option {
	return func(o *opts) {
		o.compression = m
		o.hasCompression = true
	}
}

// WithEndianness pins the byte order, disabling the big-then-little
// fallback on decode.
func WithEndianness(e format.Endianness) Option {
	return func(o *opts) {
		o.endianness = e
		o.hasEndianness = true
	}
}

// WithFormat pins the payload format. Decode otherwise sniffs JSON from
// a leading '{'; Encode otherwise writes binary.
func WithFormat(f format.Format) Option {
	return func(o *opts) {
		o.form = f
		o.hasFormat = true
	}
}

// Decode reads one document from r. Unless pinned by options, the
// compression framing is detected from magic bytes, JSON payloads are
// detected from a leading '{' after decompression, and binary payloads
// are tried big-endian first with a little-endian fallback. The returned
// FileInfo holds the effective framing either way.
func Decode(r io.Reader, options ...Option) (*tag.Tag, *FileInfo, error) {
	var o opts
	for _, opt := range options {
		opt(&o)
	}

	br := bufio.NewReader(r)
	info := &FileInfo{}
	if o.hasCompression {
		info.Compression = o.compression
	} else {
		prefix, err := br.Peek(2)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, err
		}
		info.Compression = compress.Detect(prefix)
		info.DetectedCompression = true
	}

	cr, err := info.Compression.Reader(br)
	if err != nil {
		return nil, nil, err
	}
	defer cr.Close()
	// fully buffer so the little-endian fallback can re-read
	data, err := io.ReadAll(cr)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", info.Compression, err)
	}

	if o.hasFormat {
		info.Format = o.form
	} else if len(data) > 0 && data[0] == '{' {
		info.Format = format.JSONFormat
	}
	if info.Format.IsJSON() {
		root, err := nbtjson.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, nil, err
		}
		if root == nil {
			return nil, nil, ErrNilRoot
		}
		info.Endianness = format.BigEndian
		return root, info, nil
	}

	if o.hasEndianness {
		info.Endianness = o.endianness
		root, err := readBinary(data, o.endianness)
		if err != nil {
			return nil, nil, err
		}
		return root, info, nil
	}

	root, bigErr := readBinary(data, format.BigEndian)
	if bigErr == nil {
		info.Endianness = format.BigEndian
		info.DetectedEndianness = true
		return root, info, nil
	}
	root, littleErr := readBinary(data, format.LittleEndian)
	if littleErr == nil {
		info.Endianness = format.LittleEndian
		info.DetectedEndianness = true
		return root, info, nil
	}
	return nil, nil, fmt.Errorf("little-endian: %w (big-endian: %w)", littleErr, bigErr)
}

func readBinary(data []byte, e format.Endianness) (*tag.Tag, error) {
	return wire.ReadTag(bytes.NewReader(data), e)
}

// Encode writes root to w with the requested framing. Binary big-endian
// uncompressed is the default; pass options, or spread a decoded
// document's FileInfo with InfoOptions, to change it.
func Encode(w io.Writer, root *tag.Tag, options ...Option) error {
	var o opts
	for _, opt := range options {
		opt(&o)
	}
	if root == nil {
		return ErrNilRoot
	}

	cw, err := o.compression.Writer(w)
	if err != nil {
		return err
	}
	if o.form.IsJSON() {
		if err := nbtjson.Encode(cw, root); err != nil {
			cw.Close()
			return err
		}
		return cw.Close()
	}
	if err := wire.WriteTag(cw, o.endianness, root); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}

// InfoOptions converts a decoded document's framing back into options,
// so Encode can write the document the way it arrived.
func InfoOptions(info *FileInfo) []Option {
	return []Option{
		WithCompression(info.Compression),
		WithEndianness(info.Endianness),
		WithFormat(info.Format),
	}
}
