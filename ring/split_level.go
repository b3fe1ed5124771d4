package ring

import (
	"fmt"

	"github.com/ntrukem/polymul/utils"
)

// maxPoints is the largest number of evaluation points of a level.
const maxPoints = 9

// splitLevel describes one level of the divide-and-conquer transform:
// an operand made of `ways` blocks is evaluated at len(rows) points, and
// the pointwise products are recombined into 2*ways-1 coefficient blocks
// by the per-index solve function.
//
// All arithmetic is carried out on uint32 lanes, that is modulo 2^32.
type splitLevel struct {
	name  string
	ways  int
	rows  [][]int32
	solve func(c, p *[maxPoints]uint32)
}

// points returns the number of evaluation points of the level.
func (sl *splitLevel) points() int {
	return len(sl.rows)
}

// outputs returns the number of coefficient blocks recovered by the level.
func (sl *splitLevel) outputs() int {
	return 2*sl.ways - 1
}

// evaluate writes on dst the evaluation of src at the point of index pt:
//
//	dst[i] = sum_j w_j * src[j*blockLen+i], i in [0, blockLen).
//
// src must hold at least ways*blockLen coefficients.
func (sl *splitLevel) evaluate(pt int, src []uint32, blockLen int, dst []uint32) {

	row := sl.rows[pt]

	dst = dst[:blockLen]
	utils.Zero(dst)

	for j, w := range row {

		if w == 0 {
			continue
		}

		block := src[j*blockLen : (j+1)*blockLen]
		weight := uint32(w)

		switch w {
		case 1:
			for i, x := range block {
				dst[i] += x
			}
		default:
			for i, x := range block {
				dst[i] += weight * x
			}
		}
	}
}

// interpolate recombines the pointwise products into dst, a buffer of
// 2*ways*blockLen coefficients. Each products[j] holds at least
// 2*blockLen coefficients. For every index i the level's solve function
// maps the values products[j][i] to the coefficient blocks c[k], which are
// accumulated at dst[k*blockLen+i].
func (sl *splitLevel) interpolate(products [][]uint32, blockLen int, dst []uint32) {

	if len(products) != sl.points() {
		panic(fmt.Errorf("cannot interpolate %s: expected %d products but got %d", sl.name, sl.points(), len(products)))
	}

	dst = dst[:2*sl.ways*blockLen]
	utils.Zero(dst)

	var p, c [maxPoints]uint32

	outputs := sl.outputs()

	for i := 0; i < 2*blockLen; i++ {

		for j := range products {
			p[j] = products[j][i]
		}

		sl.solve(&c, &p)

		for k := 0; k < outputs; k++ {
			dst[k*blockLen+i] += c[k]
		}
	}
}
