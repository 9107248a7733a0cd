package nbtjson

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// uuidFromPair assembles a UUID from its two 64-bit halves, most
// significant first.
func uuidFromPair(most, least int64) uuid.UUID {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], uint64(most))
	binary.BigEndian.PutUint64(b[8:], uint64(least))
	return uuid.UUID(b)
}

// uuidFromInts assembles a UUID from four big-endian 32-bit words.
func uuidFromInts(v []int32) uuid.UUID {
	var b [16]byte
	for i, w := range v[:4] {
		binary.BigEndian.PutUint32(b[i*4:], uint32(w))
	}
	return uuid.UUID(b)
}
