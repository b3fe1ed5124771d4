package ring

import (
	"github.com/ntrukem/polymul/utils"
	"github.com/ntrukem/polymul/utils/structs"
)

// Scratch is the transient storage of one multiplication. A Scratch must
// not be used by two multiplications at the same time; distinct Scratch
// instances can be used concurrently with the same [Ring].
//
// Padding positions (operand tails beyond N, block tails beyond K and the
// 64th block of each batch) are never written and stay zero.
type Scratch struct {
	params Parameters

	// padded operands, L words each
	a, b []uint32

	// evaluation of the operand at one outer point (L/3 words)
	outer []uint32
	// evaluation of outer at one inner point (L/12 words)
	inner []uint32

	// per outer point, BatchSize blocks at stride Stride
	batchA, batchB [5][]uint32
	// per outer point, BatchSize products at stride 2*Stride
	batchProd [5][]uint32

	// interpolated products of the inner points, 2*(L/12) words each
	innerProducts [7][]uint32
	// interpolated products of the outer points, 2*(L/3) words each
	outerProducts [5][]uint32
	// linear product of the padded operands (2L words)
	product []uint32

	// kernel work buffer
	work []uint32

	// per level product views handed to the interpolation driver
	views [maxPoints][]uint32
}

// NewScratch allocates a new [Scratch] for the given geometry and kernel.
func NewScratch(params Parameters, kernel BlockMultiplyKernel) (s *Scratch) {

	L := params.L()
	layout := params.BlockLayout()

	s = &Scratch{params: params}

	s.a = make([]uint32, L)
	s.b = make([]uint32, L)
	s.outer = make([]uint32, params.OuterBlock())
	s.inner = make([]uint32, params.InnerBlock())

	for i := range s.batchA {
		s.batchA[i] = make([]uint32, layout.OperandSize())
		s.batchB[i] = make([]uint32, layout.OperandSize())
		s.batchProd[i] = make([]uint32, layout.ProductSize())
	}

	for i := range s.innerProducts {
		s.innerProducts[i] = make([]uint32, 2*params.InnerBlock())
	}

	for i := range s.outerProducts {
		s.outerProducts[i] = make([]uint32, 2*params.OuterBlock())
	}

	s.product = make([]uint32, 2*L)
	s.work = make([]uint32, kernel.WorkSize(layout))

	return
}

// Parameters returns the geometry the [Scratch] was allocated for.
func (s *Scratch) Parameters() Parameters {
	return s.params
}

// wipe zeroes every buffer of the arena. All of them hold data derived
// from the operands: the evaluations, the block products, the partial
// interpolations and the transposed batches of the kernel work buffer.
func (s *Scratch) wipe() {

	utils.Zero(s.a)
	utils.Zero(s.b)
	utils.Zero(s.outer)
	utils.Zero(s.inner)

	for i := range s.batchA {
		utils.Zero(s.batchA[i])
		utils.Zero(s.batchB[i])
		utils.Zero(s.batchProd[i])
	}

	for i := range s.innerProducts {
		utils.Zero(s.innerProducts[i])
	}

	for i := range s.outerProducts {
		utils.Zero(s.outerProducts[i])
	}

	utils.Zero(s.product)
	utils.Zero(s.work)
}

// newScratchPool returns a pool of [Scratch] for the given geometry.
// Arenas are wiped when handed back to the pool, so that no operand data
// outlives the call that produced it.
func newScratchPool(params Parameters, kernel BlockMultiplyKernel) structs.BufferPool[*Scratch] {
	return structs.NewRecyclingPool[*Scratch](
		structs.NewSyncPool(func() *Scratch {
			return NewScratch(params, kernel)
		}),
		(*Scratch).wipe,
	)
}
