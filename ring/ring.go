// Package ring implements the multiplication of polynomials of
// Z_{2^16}[x]/(x^N - 1), the ring of the NTRU family of cryptosystems.
//
// The product is computed with a three level divide-and-conquer transform:
// the operands are zero padded to L, the smallest multiple of 48 not
// smaller than N, and split by a Toom-Cook 3-way level (blocks of L/3), a
// Toom-Cook 4-way level (blocks of L/12) and a 2x2 nested Karatsuba level
// (blocks of L/48). The 5*7*9 = 315 resulting block products are computed
// in batches by a [BlockMultiplyKernel], interpolated back level by level
// and folded modulo x^N - 1.
//
// Internal buffers hold 32-bit words. The interpolation loses at most 7
// bits of precision, so that the low 16 bits of the result are exact.
package ring

import (
	"fmt"

	"github.com/ntrukem/polymul/utils/structs"
)

// Ring is a structure that keeps all the variables required to multiply
// polynomials of a given degree. A Ring is read-only after its creation
// and can be used concurrently.
type Ring struct {
	params Parameters
	kernel BlockMultiplyKernel
	pool   structs.BufferPool[*Scratch]
}

// NewRing creates a new [Ring] of degree N with the [DefaultKernel].
func NewRing(N int) (*Ring, error) {
	return NewRingWithKernel(N, DefaultKernel())
}

// NewRingWithKernel creates a new [Ring] of degree N using the given kernel
// for the base block products.
func NewRingWithKernel(N int, kernel BlockMultiplyKernel) (r *Ring, err error) {

	if kernel == nil {
		return nil, fmt.Errorf("invalid kernel: cannot be nil")
	}

	var params Parameters
	if params, err = NewParameters(N); err != nil {
		return nil, fmt.Errorf("cannot NewRing: %w", err)
	}

	return &Ring{
		params: params,
		kernel: kernel,
		pool:   newScratchPool(params, kernel),
	}, nil
}

// NewRingFromParametersLiteral creates a new [Ring] from a [ParametersLiteral].
func NewRingFromParametersLiteral(p ParametersLiteral) (r *Ring, err error) {
	var kernel BlockMultiplyKernel
	if kernel, err = KernelByName(p.Kernel); err != nil {
		return nil, fmt.Errorf("cannot NewRing: %w", err)
	}
	return NewRingWithKernel(p.N, kernel)
}

// N returns the ring degree.
func (r *Ring) N() int {
	return r.params.N()
}

// Parameters returns the geometry of the ring.
func (r *Ring) Parameters() Parameters {
	return r.params
}

// Kernel returns the kernel of the ring.
func (r *Ring) Kernel() BlockMultiplyKernel {
	return r.kernel
}

// ParametersLiteral returns the literal of the ring.
func (r *Ring) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{N: r.N(), Kernel: r.kernel.Name()}
}

// NewPoly creates a new polynomial with all coefficients set to 0.
func (r *Ring) NewPoly() Poly {
	return NewPoly(r.N())
}

// NewScratch allocates a new [Scratch] for [Ring.MulWithScratch].
func (r *Ring) NewScratch() *Scratch {
	return NewScratch(r.params, r.kernel)
}

func (r *Ring) checkPoly(opname string, polys ...Poly) {
	for _, pol := range polys {
		if pol.N() != r.N() {
			panic(fmt.Errorf("cannot %s: polynomial has %d coefficients but ring degree is %d", opname, pol.N(), r.N()))
		}
	}
}
