package ring

import (
	"fmt"
)

// InvMod2w32 returns the inverse of the odd integer x modulo 2^32.
// It uses the Newton iteration y <- y*(2 - x*y), which doubles the number
// of correct low bits at each step: x*x = 1 mod 8 gives 3 bits, and four
// iterations reach 48 > 32 bits.
func InvMod2w32(x uint32) (y uint32) {
	if x&1 == 0 {
		panic(fmt.Errorf("cannot InvMod2w32: %d is even and has no inverse modulo 2^32", x))
	}
	y = x
	for i := 0; i < 4; i++ {
		y *= 2 - x*y
	}
	return
}

// Inverses of the odd divisors appearing in the interpolation formulas.
var (
	inv3 = InvMod2w32(3) // 0xAAAAAAAB
	inv5 = InvMod2w32(5) // 0xCCCCCCCD
)
