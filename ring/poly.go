package ring

import (
	"fmt"
	"slices"

	"github.com/ntrukem/polymul/utils"
)

// Poly is the structure that contains the coefficients of a polynomial of
// Z_{2^16}[x]/(x^N - 1). Arithmetic on the coefficients silently wraps
// modulo 2^16.
type Poly struct {
	Coeffs []uint16
}

// NewPoly creates a new polynomial with N coefficients set to zero.
func NewPoly(N int) Poly {
	return Poly{Coeffs: make([]uint16, N)}
}

// NewPolyFromCoefficients returns a polynomial wrapping a copy of coeffs.
func NewPolyFromCoefficients(coeffs []uint16) Poly {
	return Poly{Coeffs: slices.Clone(coeffs)}
}

// N returns the number of coefficients of the polynomial.
func (pol Poly) N() int {
	return len(pol.Coeffs)
}

// Zero sets all coefficients of the target polynomial to 0.
func (pol Poly) Zero() {
	utils.Zero(pol.Coeffs)
}

// CopyNew creates an exact copy of the target polynomial.
func (pol Poly) CopyNew() Poly {
	return NewPolyFromCoefficients(pol.Coeffs)
}

// Copy copies the coefficients of p1 on the target polynomial.
// Expects the degree of both polynomials to be identical.
func (pol Poly) Copy(p1 Poly) {
	if pol.N() != p1.N() {
		panic(fmt.Errorf("cannot Copy: receiver has %d coefficients but input has %d", pol.N(), p1.N()))
	}
	copy(pol.Coeffs, p1.Coeffs)
}

// Equal returns true if the receiver and p1 have the same coefficients.
func (pol Poly) Equal(p1 Poly) bool {
	return slices.Equal(pol.Coeffs, p1.Coeffs)
}
