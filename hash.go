// hash.go - Hash/XOF adapters: H (SHA3-256), G (SHA3-512), J (SHAKE256 KDF).
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// hashH is FIPS 203's H: SHA3-256, fixed 32-byte output.
func hashH(data ...[]byte) [SymSize]byte {
	h := sha3.New256()
	for _, d := range data {
		h.Write(d)
	}
	var out [SymSize]byte
	h.Sum(out[:0])
	return out
}

// hashG is FIPS 203's G: SHA3-512, fixed 64-byte output, conventionally
// split into two 32-byte halves.
func hashG(data ...[]byte) (first, second [SymSize]byte) {
	h := sha3.New512()
	for _, d := range data {
		h.Write(d)
	}
	var out [2 * SymSize]byte
	h.Sum(out[:0])
	copy(first[:], out[:SymSize])
	copy(second[:], out[SymSize:])
	return
}

// kdfJ is FIPS 203's J, the implicit-rejection KDF: SHAKE256 with a
// fixed 32-byte output.
func kdfJ(data ...[]byte) [SymSize]byte {
	h := sha3.NewShake256()
	for _, d := range data {
		h.Write(d)
	}
	var out [SymSize]byte
	h.Read(out[:])
	return out
}
