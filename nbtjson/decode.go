package nbtjson

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nbt-format/go-nbt/tag"
)

// Decode reads a roundtrip-shape document. The envelope is validated
// first: a missing "_unbted" marker means the input is ordinary JSON, a
// version above 1 means the file was written by a newer encoding.
func Decode(r io.Reader) (*tag.Tag, error) {
	var top map[string]json.RawMessage
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	marker, ok := top["_unbted"]
	if !ok {
		return nil, ErrNotNBTJSON
	}
	var version json.Number
	if err := json.Unmarshal(marker, &version); err != nil {
		return nil, fmt.Errorf("%w: bad _unbted marker", ErrMalformed)
	}
	v, err := version.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: bad _unbted marker", ErrMalformed)
	}
	if v > 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	var rootType, rootName string
	if err := unmarshalString(top["rootType"], &rootType); err != nil {
		return nil, fmt.Errorf("%w: bad rootType", ErrMalformed)
	}
	if err := unmarshalString(top["rootName"], &rootName); err != nil {
		return nil, fmt.Errorf("%w: bad rootName", ErrMalformed)
	}
	// "null" is the encoding of an empty document; only the root may be it
	if rootType == "null" {
		return nil, nil
	}
	return decodeValue(rootType+":"+rootName, top["root"])
}

func unmarshalString(raw json.RawMessage, dst *string) error {
	if raw == nil {
		return fmt.Errorf("missing")
	}
	return json.Unmarshal(raw, dst)
}

// decodeValue reconstructs one tag from its prefixed name and raw value.
// The prefix is everything before the first colon; names themselves may
// contain colons.
func decodeValue(name string, raw json.RawMessage) (*tag.Tag, error) {
	sep := strings.Index(name, ":")
	if sep < 0 {
		return nil, fmt.Errorf("%w: key %q has no type prefix", ErrMalformedTypePrefix, name)
	}
	typeName, key := name[:sep], name[sep+1:]

	switch typeName {
	case "null":
		return nil, fmt.Errorf("%w: null tag %q outside the document root", ErrMalformedTypePrefix, key)
	case "byte":
		n, err := decodeInt(raw)
		if err != nil {
			return nil, err
		}
		return tag.NewByte(key, int8(n)), nil
	case "short":
		n, err := decodeInt(raw)
		if err != nil {
			return nil, err
		}
		return tag.NewShort(key, int16(n)), nil
	case "int":
		n, err := decodeInt(raw)
		if err != nil {
			return nil, err
		}
		return tag.NewInt(key, int32(n)), nil
	case "long":
		n, err := decodeInt(raw)
		if err != nil {
			return nil, err
		}
		return tag.NewLong(key, n), nil
	case "float":
		f, err := decodeFloat(raw)
		if err != nil {
			return nil, err
		}
		return tag.NewFloat(key, float32(f)), nil
	case "double":
		f, err := decodeFloat(raw)
		if err != nil {
			return nil, err
		}
		return tag.NewDouble(key, f), nil
	case "string":
		var s string
		if err := unmarshalString(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return tag.NewString(key, s), nil
	case "byte-array":
		var s string
		if err := unmarshalString(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: bad base64 in %q: %v", ErrMalformed, key, err)
		}
		return tag.NewByteArray(key, b), nil
	case "int-array":
		ns, err := decodeIntSlice(raw)
		if err != nil {
			return nil, err
		}
		out := make([]int32, len(ns))
		for i, n := range ns {
			out[i] = int32(n)
		}
		return tag.NewIntArray(key, out), nil
	case "long-array":
		ns, err := decodeIntSlice(raw)
		if err != nil {
			return nil, err
		}
		return tag.NewLongArray(key, ns), nil
	case "compound":
		return decodeCompound(key, raw)
	}

	if strings.HasPrefix(typeName, "list<") {
		return decodeList(typeName, key, raw)
	}
	return nil, fmt.Errorf("%w: unknown type %q for key %q", ErrMalformedTypePrefix, typeName, key)
}

// decodeCompound walks the object with a token decoder so that member
// order survives. Stray "_unbted" members are skipped wherever they occur.
func decodeCompound(key string, raw json.RawMessage) (*tag.Tag, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	open, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if open != json.Delim('{') {
		return nil, fmt.Errorf("%w: compound %q is not an object", ErrMalformed, key)
	}
	out := tag.NewCompound(key)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		memberKey, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: bad member key in compound %q", ErrMalformed, key)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if memberKey == "_unbted" {
			continue
		}
		child, err := decodeValue(memberKey, value)
		if err != nil {
			return nil, err
		}
		if _, err := out.Put(child); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	return out, nil
}

func decodeList(typeName, key string, raw json.RawMessage) (*tag.Tag, error) {
	closer := strings.LastIndex(typeName, ">")
	if closer < 0 {
		return nil, fmt.Errorf("%w: expected closing > in %q", ErrMalformedTypePrefix, typeName)
	}
	inner := typeName[len("list<"):closer]
	if inner == "?" {
		if len(raw) != 0 && !bytes.Equal(raw, []byte("null")) {
			var elems []json.RawMessage
			if err := json.Unmarshal(raw, &elems); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			if len(elems) > 0 {
				return nil, fmt.Errorf("%w: list of unknown type with elements (key %q)", ErrInvalidEmptyListType, key)
			}
		}
		return tag.NewList(key), nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out := tag.NewList(key)
	for _, elem := range elems {
		child, err := decodeValue(inner+":", elem)
		if err != nil {
			return nil, err
		}
		if err := out.Append(child); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	return out, nil
}

func decodeInt(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

func decodeFloat(raw json.RawMessage) (float64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	v, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

func decodeIntSlice(raw json.RawMessage) ([]int64, error) {
	var ns []json.Number
	if err := json.Unmarshal(raw, &ns); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out := make([]int64, len(ns))
	for i, n := range ns {
		v, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		out[i] = v
	}
	return out, nil
}
