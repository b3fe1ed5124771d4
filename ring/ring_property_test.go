package ring

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// TestRingAxioms_PropertyBased checks the algebraic properties of the
// product of Z_{2^16}[x]/(x^N - 1) on random inputs.
func TestRingAxioms_PropertyBased(t *testing.T) {

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	for _, N := range []int{ToyParameters.N, 96, NTRUHPS2048509.N} {

		r, err := NewRing(N)
		require.NoError(t, err)

		poly := gen.SliceOfN(N, gen.UInt16())

		properties.Property(testString("MatchesSchoolbook", r), prop.ForAll(
			func(a, b []uint16) bool {
				pa, pb := NewPolyFromCoefficients(a), NewPolyFromCoefficients(b)
				want := r.NewPoly()
				r.MulSchoolbook(pa, pb, want)
				return r.MulNew(pa, pb).Equal(want)
			},
			poly, poly,
		))

		properties.Property(testString("Commutativity", r), prop.ForAll(
			func(a, b []uint16) bool {
				pa, pb := NewPolyFromCoefficients(a), NewPolyFromCoefficients(b)
				return r.MulNew(pa, pb).Equal(r.MulNew(pb, pa))
			},
			poly, poly,
		))

		properties.Property(testString("Identity", r), prop.ForAll(
			func(a []uint16) bool {
				pa := NewPolyFromCoefficients(a)
				one := r.NewPoly()
				one.Coeffs[0] = 1
				return r.MulNew(pa, one).Equal(pa)
			},
			poly,
		))

		properties.Property(testString("Linearity", r), prop.ForAll(
			func(a, b, c []uint16) bool {
				pa, pb, pc := NewPolyFromCoefficients(a), NewPolyFromCoefficients(b), NewPolyFromCoefficients(c)

				// (a + b) * c == a * c + b * c
				sum := r.NewPoly()
				r.Add(pa, pb, sum)
				left := r.MulNew(sum, pc)
				right := r.NewPoly()
				r.Add(r.MulNew(pa, pc), r.MulNew(pb, pc), right)

				// (a - b) * c == a * c - b * c
				r.Sub(pa, pb, sum)
				leftSub := r.MulNew(sum, pc)
				rightSub := r.NewPoly()
				r.Sub(r.MulNew(pa, pc), r.MulNew(pb, pc), rightSub)

				return left.Equal(right) && leftSub.Equal(rightSub)
			},
			poly, poly, poly,
		))

		properties.Property(testString("MonomialIsRotation", r), prop.ForAll(
			func(a []uint16, k int) bool {
				pa := NewPolyFromCoefficients(a)
				monomial := r.NewPoly()
				monomial.Coeffs[k] = 1
				rotated := r.NewPoly()
				r.MulByMonomial(pa, k, rotated)
				return r.MulNew(pa, monomial).Equal(rotated)
			},
			poly, gen.IntRange(0, N-1),
		))
	}

	properties.TestingRun(t)
}
