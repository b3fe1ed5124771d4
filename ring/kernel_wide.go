package ring

import (
	"fmt"
	"unsafe"

	"github.com/ntrukem/polymul/utils"
)

// lanes is the number of blocks multiplied together by the [WideKernel].
const lanes = 8

// WideKernel multiplies the blocks by groups of 8. Each group is transposed
// so that the block index becomes the fastest moving dimension, multiplied
// with 8-lane multiply-accumulate loops and transposed back.
// Count must be a multiple of 8 and Stride a multiple of 8.
type WideKernel struct{}

// Name returns "wide".
func (WideKernel) Name() string {
	return WideKernelName
}

// WorkSize returns the size of the transposed operands (2 x 8*Stride) and
// of the transposed product (16*Stride).
func (WideKernel) WorkSize(layout BlockLayout) int {
	return 4 * lanes * layout.Stride
}

// MulBatch writes on r the Count pairwise products of the blocks of a and b.
func (k WideKernel) MulBatch(layout BlockLayout, r, a, b, work []uint32) {

	checkBatch(WideKernelName, layout, r, a, b)

	if layout.Count%lanes != 0 || layout.Stride%lanes != 0 {
		panic(fmt.Errorf("cannot %s.MulBatch: Count=%d and Stride=%d must be multiples of %d", WideKernelName, layout.Count, layout.Stride, lanes))
	}

	if len(work) < k.WorkSize(layout) {
		panic(fmt.Errorf("cannot %s.MulBatch: work buffer must have at least %d words", WideKernelName, k.WorkSize(layout)))
	}

	K, stride := layout.K, layout.Stride

	aT := work[:lanes*stride]
	bT := work[lanes*stride : 2*lanes*stride]
	rT := work[2*lanes*stride : 4*lanes*stride]

	for g := 0; g < layout.Count/lanes; g++ {

		src := g * lanes * stride

		for c := 0; c < stride; c += lanes {
			transpose8x8(aT[c*lanes:], lanes, a[src+c:], stride)
			transpose8x8(bT[c*lanes:], lanes, b[src+c:], stride)
		}

		utils.Zero(rT)

		mulAccLanes(aT, bT, rT, K)

		dst := 2 * g * lanes * stride

		for c := 0; c < 2*stride; c += lanes {
			transpose8x8(r[dst+c:], 2*stride, rT[c*lanes:], lanes)
		}
	}
}

// mulAccLanes computes rT[(i+j)*8+l] += aT[i*8+l] * bT[j*8+l] for i, j in [0, K).
func mulAccLanes(aT, bT, rT []uint32, K int) {

	for i := 0; i < K; i++ {

		/* #nosec G103 -- behavior and consequences well understood, possible buffer overflow if len(aT)%8 */
		x := (*[8]uint32)(unsafe.Pointer(&aT[i*lanes]))

		for j := 0; j < K; j++ {

			/* #nosec G103 -- behavior and consequences well understood, possible buffer overflow if len(bT)%8 */
			y := (*[8]uint32)(unsafe.Pointer(&bT[j*lanes]))
			/* #nosec G103 -- behavior and consequences well understood, possible buffer overflow if len(rT)%8 */
			z := (*[8]uint32)(unsafe.Pointer(&rT[(i+j)*lanes]))

			z[0] += x[0] * y[0]
			z[1] += x[1] * y[1]
			z[2] += x[2] * y[2]
			z[3] += x[3] * y[3]
			z[4] += x[4] * y[4]
			z[5] += x[5] * y[5]
			z[6] += x[6] * y[6]
			z[7] += x[7] * y[7]
		}
	}
}
