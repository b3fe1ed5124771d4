package ring

import (
	"github.com/ntrukem/polymul/utils"
)

// MulSchoolbook evaluates c = a * b mod (x^N - 1, 2^16) with the quadratic
// schoolbook algorithm. It is the reference against which [Ring.Mul] is
// checked. The output c can alias a or b.
func (r *Ring) MulSchoolbook(a, b, c Poly) {

	r.checkPoly("MulSchoolbook", a, b, c)

	N := r.N()

	acc := c.Coeffs
	if utils.Alias1D(c.Coeffs, a.Coeffs) || utils.Alias1D(c.Coeffs, b.Coeffs) {
		acc = make([]uint16, N)
	} else {
		utils.Zero(acc)
	}

	for i, ai := range a.Coeffs {
		// acc[(i+j) mod N] += ai * b[j]
		for j, bj := range b.Coeffs[:N-i] {
			acc[i+j] += ai * bj
		}
		for j, bj := range b.Coeffs[N-i:] {
			acc[j] += ai * bj
		}
	}

	if &acc[0] != &c.Coeffs[0] {
		c.Copy(Poly{Coeffs: acc})
	}
}

// Add evaluates c = a + b coefficient-wise modulo 2^16.
func (r *Ring) Add(a, b, c Poly) {
	r.checkPoly("Add", a, b, c)
	for i := range c.Coeffs {
		c.Coeffs[i] = a.Coeffs[i] + b.Coeffs[i]
	}
}

// Sub evaluates c = a - b coefficient-wise modulo 2^16.
func (r *Ring) Sub(a, b, c Poly) {
	r.checkPoly("Sub", a, b, c)
	for i := range c.Coeffs {
		c.Coeffs[i] = a.Coeffs[i] - b.Coeffs[i]
	}
}

// Neg evaluates c = -a coefficient-wise modulo 2^16.
func (r *Ring) Neg(a, c Poly) {
	r.checkPoly("Neg", a, c)
	for i := range c.Coeffs {
		c.Coeffs[i] = -a.Coeffs[i]
	}
}

// MulScalar evaluates c = a * scalar coefficient-wise modulo 2^16.
func (r *Ring) MulScalar(a Poly, scalar uint16, c Poly) {
	r.checkPoly("MulScalar", a, c)
	for i := range c.Coeffs {
		c.Coeffs[i] = a.Coeffs[i] * scalar
	}
}

// MulByMonomial evaluates c = a * x^k mod (x^N - 1), that is a cyclic
// shift of the coefficients by k positions to the right.
// k can be negative and the output c can alias a.
func (r *Ring) MulByMonomial(a Poly, k int, c Poly) {
	r.checkPoly("MulByMonomial", a, c)
	utils.RotateSliceAllocFree(a.Coeffs, -k, c.Coeffs)
}

// Equal checks if a and b are equal.
func (r *Ring) Equal(a, b Poly) bool {
	r.checkPoly("Equal", a, b)
	return a.Equal(b)
}
