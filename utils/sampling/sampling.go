// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// RandUint64 return a random value between 0 and 0xFFFFFFFFFFFFFFFF
// read from a [ThreadSafePRNG].
func RandUint64() uint64 {
	prng, err := NewPRNG()
	if err != nil {
		panic(err)
	}
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// SeedKey expands a 64-bit seed into a 32-byte PRNG key.
func SeedKey(seed uint64) (key []byte) {
	key = make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return
}

func errUnknownPRNG(name string) error {
	return fmt.Errorf("unknown PRNG %q: must be \"blake2b\" or \"blake3\"", name)
}
