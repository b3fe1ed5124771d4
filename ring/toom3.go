package ring

// toom3 is the outer level: a block of 3*(L/3) coefficients is evaluated
// at the points 0, 1, -1, -2 and infinity.
var toom3 = &splitLevel{
	name: "toom3",
	ways: 3,
	rows: [][]int32{
		{1, 0, 0},
		{1, 1, 1},
		{1, -1, 1},
		{1, -2, 4},
		{0, 0, 1},
	},
	solve: solveToom3,
}

// solveToom3 works on uint32 words with inv3 taken modulo 2^32: each right
// shift drops the top known bit, and 16-bit words would leave the result
// exact only modulo 2^11 (see inverse.go).
func solveToom3(c, p *[maxPoints]uint32) {

	p0, p1, pm1, pm2, pinf := p[0], p[1], p[2], p[3], p[4]

	c0 := p0
	c4 := pinf
	c2 := ((p1 + pm1) >> 1) - c0 - c4
	d := (p1 - pm1) >> 1                // c1 + c3
	e := (c0 + 4*c2 + 16*c4 - pm2) >> 1 // c1 + 4*c3
	c3 := (e - d) * inv3
	c1 := d - c3

	c[0], c[1], c[2], c[3], c[4] = c0, c1, c2, c3, c4
}
