// field.go - Field arithmetic modulo q=3329: Montgomery, Barrett, and full
// reduction.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// montReduce computes, for -2^15*q <= x < 2^15*q, the unique y with
// -q < y < q and x*2^-16 = y (mod q). This is Montgomery reduction with
// R=2^16; qInvMontgomery = 62209 = q^-1 mod R.
func montReduce(x int32) int16 {
	const qInvMontgomery = 62209

	m := int16(x * qInvMontgomery)
	return int16(uint32(x-int32(m)*q) >> 16)
}

// toMont returns x*R mod q, where R=2^16. 1353 = R^2 mod q.
func toMont(x int16) int16 {
	return montReduce(int32(x) * 1353)
}

// reduceBarrett returns 0 <= y <= q with x = y (mod q), for any int16 x.
// Note that reduceBarrett(x) may equal q (not just q-1); callers that need
// a fully normalized representative in [0,q) must follow up with csubq.
func reduceBarrett(x int16) int16 {
	// 20159/2^26 approximates 1/q closely enough that, for |x| <= 2^16,
	// (x*20159)>>26 == floor(x/q) except possibly when x is a multiple
	// of q, where the Barrett quotient may be off by the sign of x; the
	// subsequent subtraction still produces a representative congruent
	// to x mod q in [0,q].
	return x - int16((int32(x)*20159)>>26)*q
}

// csubq returns x if x < q, and x-q otherwise. Requires x >= -29439.
func csubq(x int16) int16 {
	x -= q
	x += (x >> 15) & q
	return x
}

// freeze fully reduces x to its unique representative in [0,q).
func freeze(x int16) int16 {
	return csubq(reduceBarrett(x))
}
