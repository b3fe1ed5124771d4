package ring

import (
	"encoding/binary"

	"github.com/ntrukem/polymul/utils/sampling"
)

// UniformSampler wraps a sampling.PRNG and represents the state of a sampler
// of uniform polynomials of Z_{2^16}[x]/(x^N - 1).
// A UniformSampler cannot be used concurrently.
type UniformSampler struct {
	prng   sampling.PRNG
	N      int
	buffer []byte
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and ring definition.
func NewUniformSampler(prng sampling.PRNG, baseRing *Ring) (u *UniformSampler) {
	return &UniformSampler{
		prng:   prng,
		N:      baseRing.N(),
		buffer: make([]byte, 2*baseRing.N()),
	}
}

// Read samples a uniform polynomial on pol.
func (u *UniformSampler) Read(pol Poly) {

	if _, err := u.prng.Read(u.buffer); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	for i := range pol.Coeffs[:u.N] {
		pol.Coeffs[i] = binary.LittleEndian.Uint16(u.buffer[2*i:])
	}
}

// ReadNew samples a new uniform polynomial.
func (u *UniformSampler) ReadNew() (pol Poly) {
	pol = NewPoly(u.N)
	u.Read(pol)
	return
}
