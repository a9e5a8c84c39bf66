// ntt.go - Number-Theoretic Transform over Z_q[X]/(X^256+1), q=3329.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zetas holds precomputed powers of the primitive 256th root of unity used
// for the NTT, in Montgomery representation:
//
//	zetas[i] = zeta^brv(i) * R mod q
//
// where zeta=17, brv(i) is the bitreversal of a 7-bit number, and R=2^16 mod
// q. Index 0 is unused (the top-level split has no twiddle of its own).
var zetas = [128]int16{
	2285, 2571, 2970, 1812, 1493, 1422, 287, 202, 3158, 622, 1577, 182,
	962, 2127, 1855, 1468, 573, 2004, 264, 383, 2500, 1458, 1727, 3199,
	2648, 1017, 732, 608, 1787, 411, 3124, 1758, 1223, 652, 2777, 1015,
	2036, 1491, 3047, 1785, 516, 3321, 3009, 2663, 1711, 2167, 126,
	1469, 2476, 3239, 3058, 830, 107, 1908, 3082, 2378, 2931, 961, 1821,
	2604, 448, 2264, 677, 2054, 2226, 430, 555, 843, 2078, 871, 1550,
	105, 422, 587, 177, 3094, 3038, 2869, 1574, 1653, 3083, 778, 1159,
	3182, 2552, 1483, 2727, 1119, 1739, 644, 2457, 349, 418, 329, 3173,
	3254, 817, 1097, 603, 610, 1322, 2044, 1864, 384, 2114, 3193, 1218,
	1994, 2455, 220, 2142, 1670, 2144, 1799, 2051, 794, 1819, 2475,
	2459, 478, 3221, 3021, 996, 991, 958, 1869, 1522, 1628,
}

// invNTTReductions marks, after each layer of the inverse NTT, the
// coefficient indices whose accumulated magnitude requires an eager
// Barrett reduction to keep subsequent Montgomery products within range.
// -1 marks the end of a layer's list. This schedule (and its optimality)
// follows the lazy-reduction analysis in https://eprint.iacr.org/2020/1377.pdf.
var invNTTReductions = [...]int{
	-1,
	-1,
	16, 17, 48, 49, 80, 81, 112, 113, 144, 145, 176, 177, 208, 209, 240,
	241, -1,
	0, 1, 32, 33, 34, 35, 64, 65, 96, 97, 98, 99, 128, 129, 160, 161, 162, 163,
	192, 193, 224, 225, 226, 227, -1,
	2, 3, 66, 67, 68, 69, 70, 71, 130, 131, 194, 195, 196, 197, 198,
	199, -1,
	4, 5, 6, 7, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142,
	143, -1,
	-1,
}

// ntt executes an in-place forward NTT on s.
//
// Assumes coefficients are bounded in absolute value by q; the resulting
// coefficients are bounded in absolute value by 7q (lazily unreduced,
// per spec.md's description of the forward NTT running layers without a
// full per-layer reduction). If s is in Montgomery form the result is in
// Montgomery form (the NTT is Z_q-linear). The output order is the
// bit-reversed "NTT domain" order used by mulHat/invNTT below.
func (s *scalar) ntt() {
	k := 0
	for l := n / 2; l > 1; l >>= 1 {
		for offset := 0; offset < n-l; offset += 2 * l {
			k++
			zeta := int32(zetas[k])

			for j := offset; j < offset+l; j++ {
				t := montReduce(zeta * int32(s[j+l]))
				s[j+l] = s[j] - t
				s[j] += t
			}
		}
	}
}

// invNTT executes an in-place inverse NTT on s, additionally multiplying
// every coefficient by the Montgomery factor R.
//
// Requires s to be in NTT-domain (bit-reversed) order. Any int16
// coefficients are accepted: they are Barrett-reduced into [0,q] on entry,
// since inner products of k mulHat outputs can reach 2kq and the reduction
// schedule below assumes inputs bounded by q. On exit coefficients are
// bounded in absolute value by q.
func (s *scalar) invNTT() {
	for j := range s {
		s[j] = reduceBarrett(s[j])
	}

	k := 127
	r := -1

	for l := 2; l < n; l <<= 1 {
		for offset := 0; offset < n-l; offset += 2 * l {
			minZeta := int32(zetas[k])
			k--

			for j := offset; j < offset+l; j++ {
				t := s[j+l] - s[j]
				s[j] += s[j+l]
				s[j+l] = montReduce(minZeta * int32(t))
			}
		}

		for {
			r++
			i := invNTTReductions[r]
			if i < 0 {
				break
			}
			s[i] = reduceBarrett(s[i])
		}
	}

	for j := range s {
		// 1441 = 128^-1 * R^2 mod q; coefficients here are bounded by
		// 9q, and 1441*9 < 2^15, within montReduce's input range.
		s[j] = montReduce(1441 * int32(s[j]))
	}
}

// mulHat sets s to the NTT-domain pointwise product of a and b: for each
// of the 128 index pairs (2i, 2i+1), interprets (a[2i]+a[2i+1]X) and
// (b[2i]+b[2i+1]X) as elements of Z_q[X]/(X^2-zeta^(2*brv(i)+1)) and
// multiplies them there. Assumes a, b are in Montgomery form and that
// products of their coefficients are strictly bounded by 2^15*q in
// absolute value; s is produced in Montgomery form, bounded by 2q.
func (s *scalar) mulHat(a, b *scalar) {
	k := 64
	for i := 0; i < n; i += 4 {
		zeta := int32(zetas[k])
		k++

		p0 := montReduce(int32(a[i+1]) * int32(b[i+1]))
		p0 = montReduce(int32(p0) * zeta)
		p0 += montReduce(int32(a[i]) * int32(b[i]))

		p1 := montReduce(int32(a[i]) * int32(b[i+1]))
		p1 += montReduce(int32(a[i+1]) * int32(b[i]))

		s[i] = p0
		s[i+1] = p1

		p2 := montReduce(int32(a[i+3]) * int32(b[i+3]))
		p2 = -montReduce(int32(p2) * zeta)
		p2 += montReduce(int32(a[i+2]) * int32(b[i+2]))

		p3 := montReduce(int32(a[i+2]) * int32(b[i+3]))
		p3 += montReduce(int32(a[i+3]) * int32(b[i+2]))

		s[i+2] = p2
		s[i+3] = p3
	}
}
