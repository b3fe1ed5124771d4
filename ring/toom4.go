package ring

// toom4 is the inner level: a block of 4M coefficients is evaluated at
// the points 0, 1, -1, 2, -2, 3 and infinity.
//
// The interpolation divides by 2 and 8 with exact right shifts and by 3
// and 5 with multiplications by their inverses modulo 2^32. Each right
// shift lowers by one bit the number of exact low bits of the result.
var toom4 = &splitLevel{
	name: "toom4",
	ways: 4,
	rows: [][]int32{
		{1, 0, 0, 0},
		{1, 1, 1, 1},
		{1, -1, 1, -1},
		{1, 2, 4, 8},
		{1, -2, 4, -8},
		{1, 3, 9, 27},
		{0, 0, 0, 1},
	},
	solve: solveToom4,
}

func solveToom4(c, p *[maxPoints]uint32) {

	p0, p1, pm1, p2, pm2, p3, pinf := p[0], p[1], p[2], p[3], p[4], p[5], p[6]

	c0 := p0
	c6 := pinf

	// even part
	v0 := ((p1 + pm1) >> 1) - c0 - c6
	v1 := (p2 + pm2 - 2*c0 - 128*c6) >> 3
	c4 := (v1 - v0) * inv3
	c2 := v0 - c4

	// odd part
	// w0 = c1 + c3 + c5, w1 = c3 + 5*c5, w2 = 5*c5
	w0 := (p1 - pm1) >> 1
	w1 := (((p2 - pm2) >> 2) - w0) * inv3
	w2 := ((((p3 - c0 - 9*(c2+9*(c4+9*c6))) * inv3) - w0) >> 3) - w1
	c5 := w2 * inv5
	c3 := w1 - w2
	c1 := w0 - c3 - c5

	c[0], c[1], c[2], c[3], c[4], c[5], c[6] = c0, c1, c2, c3, c4, c5, c6
}
