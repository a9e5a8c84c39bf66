// matrix.go - Rank x rank arrays of scalars, and the ExpandA sampler.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// matrix is a k*k array of scalars, stored in row-major order. This
// implementation always stores the *transpose* of the FIPS 203 matrix
// "A" (i.e. m[i*k+j] == A-hat[j][i]), because keygen's t = A*s+e and
// encrypt's u = A^T*y+e1 then both reduce to the same pair of
// primitives below: keygen applies matrixMulTranspose to the stored
// array, encrypt applies matrixMul directly.
type matrix struct {
	k int
	m []scalar
}

func newMatrix(k int) matrix {
	return matrix{k: k, m: make([]scalar, k*k)}
}

func (a matrix) at(i, j int) *scalar {
	return &a.m[i*a.k+j]
}

// expandA deterministically samples the stored transposed matrix from
// the public seed rho via sampleUniform, one call per entry. Per FIPS
// 203's matrix-expansion convention for the stored transpose, entry
// m[i*k+j] (== A-hat[j][i]) is sampled with XOF coordinates (i, j)
// appended to rho in that order.
func expandA(k int, rho []byte) matrix {
	a := newMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			sampleUniform(a.at(i, j), rho, byte(i), byte(j))
		}
	}
	return a
}

// matrixMul sets out to the NTT-domain product of the stored array with
// v: out[i] = sum_j m[i*k+j] * v[j]. out must not alias v.
func matrixMul(out vector, a matrix, v vector) {
	for i := 0; i < a.k; i++ {
		innerProduct(&out[i], a.rowVector(i), v)
	}
}

// matrixMulTranspose sets out to the NTT-domain product of the stored
// array's transpose with v: out[i] = sum_j m[j*k+i] * v[j]. out must
// not alias v.
func matrixMulTranspose(out vector, a matrix, v vector) {
	for i := 0; i < a.k; i++ {
		innerProduct(&out[i], a.colVector(i), v)
	}
}

// rowVector returns a's i'th row as a vector view (no copy).
func (a matrix) rowVector(i int) vector {
	return vector(a.m[i*a.k : (i+1)*a.k])
}

// colVector materializes a's i'th column as a fresh vector, since the
// column is not contiguous in row-major storage.
func (a matrix) colVector(i int) vector {
	v := newVector(a.k)
	for j := 0; j < a.k; j++ {
		v[j] = *a.at(j, i)
	}
	return v
}
