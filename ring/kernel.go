package ring

import (
	"fmt"

	"golang.org/x/sys/cpu"

	"github.com/ntrukem/polymul/utils"
)

// BlockLayout describes a batch of base blocks handed to a [BlockMultiplyKernel].
//
// Operand block i occupies [i*Stride, i*Stride+K) and the positions
// [i*Stride+K, (i+1)*Stride) are zero. Product block i occupies
// [2*i*Stride, 2*(i+1)*Stride): its 2K-1 coefficients are followed by zeros.
type BlockLayout struct {
	K      int
	Stride int
	Count  int
}

// OperandSize returns the number of words of an operand batch.
func (bl BlockLayout) OperandSize() int {
	return bl.Count * bl.Stride
}

// ProductSize returns the number of words of a product batch.
func (bl BlockLayout) ProductSize() int {
	return 2 * bl.Count * bl.Stride
}

// BlockMultiplyKernel is an interface for batched schoolbook multiplication
// of base blocks. Implementations must write every position of the product
// batch and must produce identical buffers for identical inputs.
type BlockMultiplyKernel interface {
	// Name returns the name under which the kernel is registered.
	Name() string

	// WorkSize returns the number of words of work buffer MulBatch needs.
	WorkSize(layout BlockLayout) int

	// MulBatch writes on r the Count pairwise products of the blocks of a and b.
	MulBatch(layout BlockLayout, r, a, b, work []uint32)
}

// Kernel names accepted by [KernelByName].
const (
	ScalarKernelName = "scalar"
	WideKernelName   = "wide"
)

// DefaultKernel returns the [WideKernel] if the CPU has wide vector units
// (AVX2 on amd64, ASIMD on arm64) and the [ScalarKernel] otherwise.
//
// The selection is a layout heuristic on CPU features, not a hardware
// dispatch: both kernels are portable Go and neither emits vector
// instructions explicitly.
func DefaultKernel() BlockMultiplyKernel {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		return WideKernel{}
	}
	return ScalarKernel{}
}

// KernelByName returns the kernel registered under name.
// The empty name returns [DefaultKernel].
func KernelByName(name string) (BlockMultiplyKernel, error) {
	switch name {
	case "":
		return DefaultKernel(), nil
	case ScalarKernelName:
		return ScalarKernel{}, nil
	case WideKernelName:
		return WideKernel{}, nil
	default:
		return nil, fmt.Errorf("unknown kernel %q: must be %q or %q", name, ScalarKernelName, WideKernelName)
	}
}

func checkBatch(name string, layout BlockLayout, r, a, b []uint32) {
	if layout.K > layout.Stride {
		panic(fmt.Errorf("cannot %s.MulBatch: K=%d > Stride=%d", name, layout.K, layout.Stride))
	}
	if len(a) < layout.OperandSize() || len(b) < layout.OperandSize() {
		panic(fmt.Errorf("cannot %s.MulBatch: operands must have at least %d words", name, layout.OperandSize()))
	}
	if len(r) < layout.ProductSize() {
		panic(fmt.Errorf("cannot %s.MulBatch: product must have at least %d words", name, layout.ProductSize()))
	}
}

// ScalarKernel multiplies the blocks one after the other.
type ScalarKernel struct{}

// Name returns "scalar".
func (ScalarKernel) Name() string {
	return ScalarKernelName
}

// WorkSize returns 0: the scalar kernel needs no work buffer.
func (ScalarKernel) WorkSize(layout BlockLayout) int {
	return 0
}

// MulBatch writes on r the Count pairwise products of the blocks of a and b.
func (ScalarKernel) MulBatch(layout BlockLayout, r, a, b, work []uint32) {

	checkBatch(ScalarKernelName, layout, r, a, b)

	K, stride := layout.K, layout.Stride

	for blk := 0; blk < layout.Count; blk++ {

		x := a[blk*stride : blk*stride+K]
		y := b[blk*stride : blk*stride+K]
		z := r[2*blk*stride : 2*(blk+1)*stride]

		utils.Zero(z)

		for i, xi := range x {
			zi := z[i : i+K]
			for j, yj := range y {
				zi[j] += xi * yj
			}
		}
	}
}
