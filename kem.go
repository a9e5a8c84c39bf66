// kem.go - the ML-KEM Fujisaki-Okamoto wrapper around K-PKE: key
// generation, encapsulation, decapsulation, and wire encoding of keys.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"io"
)

// PublicKey is an ML-KEM encapsulation key (FIPS 203's "ek"), bound to a
// ParameterSet. Once returned from a constructor, a PublicKey is
// immutable and safe for concurrent use.
type PublicKey struct {
	p   *ParameterSet
	a   matrix // expanded from rho; m[i*k+j] == A-hat[j][i], per matrix.go
	t   vector // NTT domain, normalized
	rho [SymSize]byte
	h   [SymSize]byte // H(Bytes()), cached
}

// PrivateKey is an ML-KEM decapsulation key (FIPS 203's "dk").
type PrivateKey struct {
	PublicKey
	s vector // NTT domain, normalized
	z [SymSize]byte
}

// GenerateKeyPairFromSeed deterministically derives a key pair from the
// 32-byte seed d (consumed by K-PKE.KeyGen) and the 32-byte implicit-
// rejection seed z. The same (d, z) pair always yields the same keys.
func (p *ParameterSet) GenerateKeyPairFromSeed(d, z []byte) (*PublicKey, *PrivateKey, error) {
	if len(d) != SymSize || len(z) != SymSize {
		return nil, nil, ErrInvalidLength
	}

	a, t, s, rho := kpkeKeyGen(p, d)

	pk := &PublicKey{p: p, a: a, t: t, rho: rho}
	pk.h = hashH(pk.encodeEK())

	sk := &PrivateKey{PublicKey: *pk, s: s}
	copy(sk.z[:], z)

	return pk, sk, nil
}

// GenerateKeyPair draws a fresh 64-byte seed (d || z) from rng and
// derives a key pair from it via GenerateKeyPairFromSeed.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	var seed [2 * SymSize]byte
	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		return nil, nil, ErrRNGFailure
	}
	return p.GenerateKeyPairFromSeed(seed[:SymSize], seed[SymSize:])
}

// encodeEK serializes the public key as t (12 bits/coefficient) || rho.
func (pk *PublicKey) encodeEK() []byte {
	b := make([]byte, pk.p.pubKeyBytes)
	pk.t.encode12(b)
	copy(b[pk.p.vectorBytes:], pk.rho[:])
	return b
}

// Bytes returns the wire encoding of pk.
func (pk *PublicKey) Bytes() []byte {
	return pk.encodeEK()
}

// PublicKeyFromBytes parses a wire-encoded public key. It rejects
// encodings of the wrong length, and encodings in which a decoded
// coefficient of t is not fully reduced (>= q).
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.pubKeyBytes {
		return nil, ErrInvalidLength
	}

	t := newVector(p.k)
	if !t.decode12(b) {
		return nil, ErrInvalidEncoding
	}

	pk := &PublicKey{p: p, t: t}
	copy(pk.rho[:], b[p.vectorBytes:])
	pk.a = expandA(p.k, pk.rho[:])
	pk.h = hashH(b)

	return pk, nil
}

// Bytes returns the wire encoding of sk: FIPS 203's dk format,
// s || ek || H(ek) || z.
func (sk *PrivateKey) Bytes() []byte {
	b := make([]byte, sk.p.prvKeyBytes)
	sk.s.encode12(b)

	off := sk.p.vectorBytes
	ek := sk.PublicKey.encodeEK()
	copy(b[off:], ek)
	off += len(ek)

	copy(b[off:], sk.PublicKey.h[:])
	off += SymSize

	copy(b[off:], sk.z[:])

	return b
}

// PrivateKeyFromBytes parses a wire-encoded dk. In addition to
// PublicKeyFromBytes's checks on the embedded ek, it rejects an
// encoding whose embedded H(ek) doesn't match the embedded ek: the
// private key's pkhash cache and its own public key must agree.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.prvKeyBytes {
		return nil, ErrInvalidLength
	}

	s := newVector(p.k)
	if !s.decode12(b) {
		return nil, ErrInvalidEncoding
	}

	off := p.vectorBytes
	pk, err := p.PublicKeyFromBytes(b[off : off+p.pubKeyBytes])
	if err != nil {
		return nil, err
	}
	off += p.pubKeyBytes

	if !bytes.Equal(pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidEncoding
	}
	off += SymSize

	sk := &PrivateKey{PublicKey: *pk, s: s}
	copy(sk.z[:], b[off:])

	return sk, nil
}

// Equal reports whether pk and other encode the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p == other.p && bytes.Equal(pk.rho[:], other.rho[:]) && bytes.Equal(pk.h[:], other.h[:])
}

// Zeroize overwrites sk's private material (s and z) with zeroes. It
// does not touch the embedded public key, which carries no secrets.
func (sk *PrivateKey) Zeroize() {
	for i := range sk.s {
		sk.s[i] = scalar{}
	}
	sk.z = [SymSize]byte{}
}

// EncapsulateSeed runs Encaps_internal with the given 32 bytes of
// entropy, returning the ciphertext and the derived shared secret. The
// caller is responsible for entropy's quality; Encapsulate draws it
// from an io.Reader instead.
func (pk *PublicKey) EncapsulateSeed(entropy []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(entropy) != SymSize {
		return nil, nil, ErrInvalidLength
	}

	k, r := hashG(entropy, pk.h[:])

	ciphertext = make([]byte, pk.p.cipherTextSize)
	kpkeEncrypt(pk.p, pk.a, pk.t, entropy, r[:], ciphertext)

	sharedSecret = make([]byte, SymSize)
	copy(sharedSecret, k[:])

	return ciphertext, sharedSecret, nil
}

// Encapsulate draws 32 bytes of entropy from rng and runs
// EncapsulateSeed.
func (pk *PublicKey) Encapsulate(rng io.Reader) (ciphertext, sharedSecret []byte, err error) {
	var m [SymSize]byte
	if _, err := io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, ErrRNGFailure
	}
	return pk.EncapsulateSeed(m[:])
}

// Decapsulate runs Decaps_internal, recovering the shared secret
// encapsulated in ciphertext. It never returns a distinguishable
// "ciphertext invalid" result for a correctly-sized ciphertext: on
// re-encryption mismatch it silently substitutes the implicit-rejection
// secret J(z || ciphertext), selected via a constant-time mask so the
// two cases take the same code path. Only the length check below is
// allowed to vary timing, since length is not secret-dependent.
//
// A ciphertext of the wrong length is rejected with a freshly-drawn
// random secret and a non-nil error, rather than the deterministic
// implicit-rejection secret, so that a malformed-length probe can never
// be distinguished from, or correlated with, a well-formed one.
func (sk *PrivateKey) Decapsulate(ciphertext []byte) (sharedSecret []byte, err error) {
	sharedSecret = make([]byte, SymSize)

	if len(ciphertext) != sk.p.cipherTextSize {
		if _, err := rand.Read(sharedSecret); err != nil {
			return nil, ErrRNGFailure
		}
		return sharedSecret, ErrInvalidLength
	}

	kbar := kdfJ(sk.z[:], ciphertext)

	var m [SymSize]byte
	kpkeDecrypt(sk.p, sk.s, ciphertext, m[:])

	k, r := hashG(m[:], sk.PublicKey.h[:])

	recomputed := make([]byte, sk.p.cipherTextSize)
	kpkeEncrypt(sk.p, sk.PublicKey.a, sk.PublicKey.t, m[:], r[:], recomputed)

	eq := subtle.ConstantTimeCompare(ciphertext, recomputed)
	copy(sharedSecret, kbar[:])
	subtle.ConstantTimeCopy(eq, sharedSecret, k[:])

	return sharedSecret, nil
}
