// sample.go - Uniform rejection sampling (SampleNTT) and centered binomial
// sampling (CBD) from XOF/PRF output.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// shake128Rate is the block size of SHAKE128 in bytes; it is a multiple of
// 3, which avoids internal buffering when squeezing 3-byte groups for
// sampleUniform below.
const shake128Rate = 168

// sampleUniform fills s with a polynomial sampled uniformly from
// SHAKE128(rho || x || y) via rejection sampling: each 3-byte group of
// XOF output yields two 12-bit candidates, and a candidate is accepted
// iff it is < q. This is not constant-time, which is fine: the input
// (rho, and the public coordinates x,y) is public.
func sampleUniform(s *scalar, rho []byte, x, y byte) {
	var seed [SymSize + 2]byte
	copy(seed[:SymSize], rho)
	seed[SymSize] = x
	seed[SymSize+1] = y

	xof := sha3.NewShake128()
	xof.Write(seed[:])

	var buf [shake128Rate]byte
	ctr := 0
	for ctr < n {
		xof.Read(buf[:])
		for pos := 0; pos+3 <= shake128Rate && ctr < n; pos += 3 {
			d1 := (uint16(buf[pos]) | (uint16(buf[pos+1]) << 8)) & 0xfff
			d2 := (uint16(buf[pos+1]>>4) | (uint16(buf[pos+2]) << 4)) & 0xfff

			if d1 < q {
				s[ctr] = int16(d1)
				ctr++
			}
			if ctr < n && d2 < q {
				s[ctr] = int16(d2)
				ctr++
			}
		}
	}
}

// cbd samples s from the centered binomial distribution CBD_eta, given
// the 33-byte PRF key (sigma || nonce) and eta in {2,3}. The result is
// fully reduced in [0,q).
func cbd(s *scalar, eta int, prfKey []byte) {
	xof := sha3.NewShake256()
	xof.Write(prfKey)

	switch eta {
	case 2:
		var buf [128]byte
		xof.Read(buf[:])

		for i := 0; i < 16; i++ {
			t := binary.LittleEndian.Uint64(buf[8*i:])

			d := t & 0x5555555555555555
			d += (t >> 1) & 0x5555555555555555

			for j := 0; j < 16; j++ {
				a := int16(d) & 0x3
				d >>= 2
				b := int16(d) & 0x3
				d >>= 2
				s[16*i+j] = freeze(a - b)
			}
		}
	case 3:
		var buf [192 + 2]byte
		xof.Read(buf[:192])

		for i := 0; i < 32; i++ {
			t := binary.LittleEndian.Uint64(buf[6*i:])

			d := t & 0x249249249249
			d += (t >> 1) & 0x249249249249
			d += (t >> 2) & 0x249249249249

			for j := 0; j < 8; j++ {
				a := int16(d) & 0x7
				d >>= 3
				b := int16(d) & 0x7
				d >>= 3
				s[8*i+j] = freeze(a - b)
			}
		}
	default:
		panic("mlkem: unsupported eta")
	}
}

// prfKey builds the 33-byte PRF input sigma||nonce used by cbd.
func prfKey(sigma []byte, nonce byte) []byte {
	var buf [SymSize + 1]byte
	copy(buf[:SymSize], sigma)
	buf[SymSize] = nonce
	return buf[:]
}
