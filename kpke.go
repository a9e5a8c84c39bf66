// kpke.go - K-PKE: the IND-CPA public-key encryption scheme underlying
// ML-KEM.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// kpkeKeyGen implements K-PKE.KeyGen(d): expands (rho,sigma)=G(d||k),
// expands the transposed matrix from rho, samples s and e from CBD_eta1
// with a shared nonce counter (s first, then e), and returns the
// expanded matrix, the public vector t = A-hat^T_stored * s-hat + e-hat,
// the private vector s-hat (both NTT domain), and rho.
func kpkeKeyGen(p *ParameterSet, d []byte) (a matrix, t, s vector, rho [SymSize]byte) {
	var kByte [1]byte
	kByte[0] = byte(p.k)

	rhoFull, sigma := hashG(d, kByte[:])
	rho = rhoFull

	a = expandA(p.k, rho[:])

	s = newVector(p.k)
	e := newVector(p.k)
	var nonce byte
	for i := 0; i < p.k; i++ {
		cbd(&s[i], p.eta1, prfKey(sigma[:], nonce))
		nonce++
	}
	for i := 0; i < p.k; i++ {
		cbd(&e[i], p.eta1, prfKey(sigma[:], nonce))
		nonce++
	}

	s.ntt()
	e.ntt()

	t = newVector(p.k)
	matrixMulTranspose(t, a, s)

	// a and s are not in Montgomery form, so the Montgomery
	// multiplications inside matrixMulTranspose's mulHat calls left an
	// extra factor of R^-1 in t. t stays in NTT domain in the public
	// key (unlike u and v below, it is never passed through invNTT),
	// so nothing else will cancel that factor; undo it here.
	t.toMont()

	t.add(t, e)
	t.normalize()
	s.normalize()

	return
}

// kpkeEncrypt implements K-PKE.Encrypt(pubkey, message, r): samples y
// from CBD_eta1 and e1, e2 from CBD_eta2 (shared nonce counter across
// y, e1, then e2), computes u = A_stored*y-hat + e1 (inverse-NTT'd,
// compressed at du bits) and v = <t,y> + e2 + Decompress_1(message)
// (inverse-NTT'd, compressed at dv bits), and writes the concatenation
// to ct (which must be exactly p.CipherTextSize() bytes).
func kpkeEncrypt(p *ParameterSet, a matrix, t vector, msg, coins, ct []byte) {
	var mu scalar
	mu.encodeMessage(msg)

	y := newVector(p.k)
	e1 := newVector(p.k)
	var e2 scalar

	var nonce byte
	for i := 0; i < p.k; i++ {
		cbd(&y[i], p.eta1, prfKey(coins, nonce))
		nonce++
	}
	for i := 0; i < p.k; i++ {
		cbd(&e1[i], p.eta2, prfKey(coins, nonce))
		nonce++
	}
	cbd(&e2, p.eta2, prfKey(coins, nonce))

	y.ntt()

	u := newVector(p.k)
	matrixMul(u, a, y)
	u.invNTT()
	u.add(u, e1)
	u.normalize()

	var v scalar
	innerProduct(&v, t, y)
	v.invNTT()
	v.add(&v, &e2)
	v.add(&v, &mu)
	v.normalize()

	u.compressTo(ct, p.du)
	v.compressTo(ct[p.uVectorBytes:], p.dv)
}

// kpkeDecrypt implements K-PKE.Decrypt(privkey, ciphertext): decodes u
// and v from ct, computes w = v - <s,u> (inner product in NTT domain,
// inverse-NTT'd before the subtraction), compresses w to 1 bit per
// coefficient, and writes the recovered 32-byte message to msg.
func kpkeDecrypt(p *ParameterSet, s vector, ct, msg []byte) {
	u := newVector(p.k)
	u.decompressFrom(ct, p.du)
	u.ntt()

	var v scalar
	v.decompressFrom(ct[p.uVectorBytes:], p.dv)

	var su scalar
	innerProduct(&su, s, u)
	su.invNTT()

	var w scalar
	w.sub(&v, &su)
	w.normalize()

	w.decodeMessage(msg)
}
