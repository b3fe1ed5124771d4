package ring

// karatsuba2x2 is the base level: a block of 4K coefficients (e, f, g, h)
// is mapped to 9 blocks of K coefficients by two nested Karatsuba splits.
//
// Evaluation rows, in slot order:
//
//	e, f, g, h, e+f, f+h, g+e, h+g, e+f+g+h
//
// Interpolation only needs additions and subtractions.
var karatsuba2x2 = &splitLevel{
	name: "karatsuba2x2",
	ways: 4,
	rows: [][]int32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 1, 0, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
	},
	solve: solveKaratsuba2x2,
}

func solveKaratsuba2x2(c, p *[maxPoints]uint32) {

	pe, pf, pg, ph := p[0], p[1], p[2], p[3]
	pef, pfh, pge, phg, pefgh := p[4], p[5], p[6], p[7], p[8]

	c[0] = pe
	c[1] = pef - pe - pf
	c[2] = pf + pge - pe - pg
	c[4] = pg + pfh - pf - ph
	c[5] = phg - pg - ph
	c[6] = ph
	c[3] = pefgh - pge - pfh - c[1] - c[5]
}
