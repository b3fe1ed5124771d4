package ring

// transpose8x8 writes on dst the transpose of the 8x8 tile of src:
//
//	dst[i*dstStride+j] = src[j*srcStride+i], i, j in [0, 8).
func transpose8x8(dst []uint32, dstStride int, src []uint32, srcStride int) {
	for j := 0; j < 8; j++ {
		row := (*[8]uint32)(src[j*srcStride : j*srcStride+8])
		dst[j] = row[0]
		dst[dstStride+j] = row[1]
		dst[2*dstStride+j] = row[2]
		dst[3*dstStride+j] = row[3]
		dst[4*dstStride+j] = row[4]
		dst[5*dstStride+j] = row[5]
		dst[6*dstStride+j] = row[6]
		dst[7*dstStride+j] = row[7]
	}
}
