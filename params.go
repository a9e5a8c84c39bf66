// params.go - ML-KEM parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SymSize is the size in bytes of the shared secret, and of the
	// internal 32-byte seeds, hashes, and PRF keys (d, z, rho, sigma,
	// pkHash, K, implicit-rejection key).
	SymSize = 32

	// n is the number of coefficients in a polynomial.
	n = 256

	// q is the ML-KEM prime modulus.
	q = 3329

	// polyBytes is the size in bytes of a losslessly (12-bit) packed
	// polynomial.
	polyBytes = 384
)

// ParameterSet is an ML-KEM parameter set: one of ML-KEM-512, ML-KEM-768,
// or ML-KEM-1024.
type ParameterSet struct {
	name string

	k    int // module rank
	eta1 int // noise parameter for s, e, y
	eta2 int // noise parameter for e1, e2
	du   int // ciphertext compression width for u
	dv   int // ciphertext compression width for v

	secBits int // nominal classical security level, for documentation only

	vectorBytes    int // 384*k
	pubKeyBytes    int // vectorBytes + 32
	prvKeyBytes    int // vectorBytes + pubKeyBytes + 32 + 32
	uVectorBytes   int // 32*du*k
	vScalarBytes   int // 32*dv
	cipherTextSize int // uVectorBytes + vScalarBytes
}

var (
	// MLKEM512 is the ML-KEM-512 parameter set, targeting NIST security
	// category 1 (roughly equivalent to AES-128).
	MLKEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4, 128)

	// MLKEM768 is the ML-KEM-768 parameter set, targeting NIST security
	// category 3 (roughly equivalent to AES-192).
	MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4, 192)

	// MLKEM1024 is the ML-KEM-1024 parameter set, targeting NIST
	// security category 5 (roughly equivalent to AES-256).
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5, 256)
)

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// Rank returns the module rank k of a given ParameterSet.
func (p *ParameterSet) Rank() int {
	return p.k
}

// SecurityBits returns the nominal classical security level in bits.
func (p *ParameterSet) SecurityBits() int {
	return p.secBits
}

// PublicKeySize returns the size of an encoded public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.pubKeyBytes
}

// PrivateKeySize returns the size of an encoded (expanded) private key in
// bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.prvKeyBytes
}

// CipherTextSize returns the size of a ciphertext in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

// SeedSize returns the size of the deterministic keygen seed (d || z) in
// bytes; it is always 64 regardless of parameter set.
func (p *ParameterSet) SeedSize() int {
	return 2 * SymSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv, secBits int) *ParameterSet {
	p := &ParameterSet{
		name:    name,
		k:       k,
		eta1:    eta1,
		eta2:    eta2,
		du:      du,
		dv:      dv,
		secBits: secBits,
	}

	p.vectorBytes = polyBytes * k
	p.pubKeyBytes = p.vectorBytes + SymSize
	p.prvKeyBytes = p.vectorBytes + p.pubKeyBytes + SymSize + SymSize
	p.uVectorBytes = (n / 8) * du * k
	p.vScalarBytes = (n / 8) * dv
	p.cipherTextSize = p.uVectorBytes + p.vScalarBytes

	return p
}
