package ring

import (
	"fmt"
)

// Mul evaluates c = a * b mod (x^N - 1, 2^16).
// The output c can alias a or b.
func (r *Ring) Mul(a, b, c Poly) {
	s := r.pool.Get()
	defer r.pool.Put(s)
	r.MulWithScratch(s, a, b, c)
}

// MulNew evaluates a * b mod (x^N - 1, 2^16) and returns the result on a new polynomial.
func (r *Ring) MulNew(a, b Poly) (c Poly) {
	c = r.NewPoly()
	r.Mul(a, b, c)
	return
}

// MulWithScratch evaluates c = a * b mod (x^N - 1, 2^16) using the caller
// owned arena s, which must have been created for the geometry of the ring.
// The output c can alias a or b.
func (r *Ring) MulWithScratch(s *Scratch, a, b, c Poly) {
	r.checkPoly("Mul", a, b, c)
	r.checkScratch(s)
	r.load(s, a, b)
	r.evaluate(s)
	r.basemul(s)
	r.interpolate(s)
	r.fold(s, c)
}

func (r *Ring) checkScratch(s *Scratch) {
	if s == nil {
		panic(fmt.Errorf("cannot Mul: scratch is nil"))
	}
	if !s.params.Equal(r.params) {
		panic(fmt.Errorf("cannot Mul: scratch geometry %s does not match ring geometry %s", s.params, r.params))
	}
	if len(s.work) < r.kernel.WorkSize(r.params.BlockLayout()) {
		panic(fmt.Errorf("cannot Mul: scratch work buffer is too small for kernel %s", r.kernel.Name()))
	}
}

// load copies the operands into the padded buffers of s.
// The tails [N, L) are never written.
func (r *Ring) load(s *Scratch, a, b Poly) {
	for i, x := range a.Coeffs {
		s.a[i] = uint32(x)
	}
	for i, x := range b.Coeffs {
		s.b[i] = uint32(x)
	}
}

// evaluate maps each padded operand to its 5 batches of base blocks.
func (r *Ring) evaluate(s *Scratch) {
	r.evaluateOperand(s, s.a, &s.batchA)
	r.evaluateOperand(s, s.b, &s.batchB)
}

func (r *Ring) evaluateOperand(s *Scratch, src []uint32, batches *[5][]uint32) {

	outerLen := r.params.OuterBlock()
	innerLen := r.params.InnerBlock()
	K := r.params.BaseBlock()
	stride := r.params.BaseStride()

	for po := 0; po < toom3.points(); po++ {

		toom3.evaluate(po, src, outerLen, s.outer)

		batch := batches[po]

		for pi := 0; pi < toom4.points(); pi++ {

			toom4.evaluate(pi, s.outer, innerLen, s.inner)

			for pb := 0; pb < karatsuba2x2.points(); pb++ {
				blk := pi*karatsuba2x2.points() + pb
				karatsuba2x2.evaluate(pb, s.inner, K, batch[blk*stride:blk*stride+K])
			}
		}
	}
}

// basemul multiplies the batches of the two operands.
func (r *Ring) basemul(s *Scratch) {
	layout := r.params.BlockLayout()
	for po := range s.batchProd {
		r.kernel.MulBatch(layout, s.batchProd[po], s.batchA[po], s.batchB[po], s.work)
	}
}

// interpolate recombines the block products into the linear product
// of the padded operands.
func (r *Ring) interpolate(s *Scratch) {

	K := r.params.BaseBlock()
	stride := r.params.BaseStride()
	innerLen := r.params.InnerBlock()
	outerLen := r.params.OuterBlock()

	views := s.views[:]

	for po := 0; po < toom3.points(); po++ {

		batch := s.batchProd[po]

		for pi := 0; pi < toom4.points(); pi++ {

			for pb := 0; pb < karatsuba2x2.points(); pb++ {
				blk := pi*karatsuba2x2.points() + pb
				views[pb] = batch[2*blk*stride : 2*blk*stride+2*K]
			}

			karatsuba2x2.interpolate(views[:karatsuba2x2.points()], K, s.innerProducts[pi])
		}

		toom4.interpolate(s.innerProducts[:], innerLen, s.outerProducts[po])
	}

	toom3.interpolate(s.outerProducts[:], outerLen, s.product)
}

// fold reduces the linear product modulo x^N - 1 and 2^16.
func (r *Ring) fold(s *Scratch, c Poly) {
	N := r.N()
	for i := range c.Coeffs {
		c.Coeffs[i] = uint16(s.product[i] + s.product[N+i])
	}
}
