// Package entropy provides seed material for map generation.
// Uses crypto/rand, falling back to the wall clock if the system source
// is unavailable.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Seed returns a non-zero int64 suitable for seeding a pseudo-random
// generator. Zero is reserved by callers to mean "pick a seed", so it is
// never returned.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
