/*
Package polymul is a pure Go implementation of the polynomial multiplication of the NTRU family of
key encapsulation mechanisms, in the ring Z_{2^16}[x]/(x^N - 1). The product is computed with a
Toom-Cook 3-way, Toom-Cook 4-way and 2x2 Karatsuba transform over batched base block products,
see the package ring.
*/
package polymul
