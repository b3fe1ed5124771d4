package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for secure generation of random bytes
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the operating system entropy source.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads bytes from the ThreadSafePRNG on sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to *deterministically* generate
// sequences of random bytes using the extendable output function of blake2b.
// The same key always produces the same stream, which makes test vectors
// and benchmark inputs reproducible.
// WARNING: KeyedPRNG should NOT be called by multiple threads. The resulting
// sequence would not be deterministic for a given key.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
// The key must not be longer than 64 bytes.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with `NewKeyedPRNG` to instantiate
// a new PRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// Blake3PRNG is a keyed PRNG reading the extendable output of blake3.
// It accepts keys of any length.
// WARNING: Blake3PRNG should NOT be called by multiple threads.
type Blake3PRNG struct {
	mutex  sync.Mutex
	key    []byte
	digest *blake3.Digest
}

// NewBlake3PRNG creates a new instance of Blake3PRNG seeded with key.
func NewBlake3PRNG(key []byte) (*Blake3PRNG, error) {
	prng := new(Blake3PRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	if err := prng.reset(); err != nil {
		return nil, err
	}
	return prng, nil
}

func (prng *Blake3PRNG) reset() (err error) {
	hasher := blake3.New()
	if _, err = hasher.Write(prng.key); err != nil {
		return
	}
	prng.digest = hasher.Digest()
	return
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *Blake3PRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the Blake3PRNG on sum.
func (prng *Blake3PRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.digest.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *Blake3PRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	// Hashing an in-memory key cannot fail.
	_ = prng.reset()
}

// NewPRNGByName returns the keyed PRNG registered under name ("blake2b" or "blake3").
func NewPRNGByName(name string, key []byte) (PRNG, error) {
	switch name {
	case "", "blake2b":
		return NewKeyedPRNG(key)
	case "blake3":
		return NewBlake3PRNG(key)
	default:
		return nil, errUnknownPRNG(name)
	}
}
