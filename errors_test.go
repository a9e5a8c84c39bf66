// errors_test.go - error-path tests not already covered by kem_test.go
// and mlkem_test.go.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type shortReader struct{ n int }

func (r *shortReader) Read(p []byte) (int, error) {
	if r.n <= 0 {
		return 0, io.ErrUnexpectedEOF
	}
	k := r.n
	if k > len(p) {
		k = len(p)
	}
	r.n -= k
	return k, nil
}

func TestGenerateKeyPairSurfacesRNGFailure(t *testing.T) {
	require := require.New(t)

	_, _, err := MLKEM768.GenerateKeyPair(&shortReader{n: SymSize})
	require.ErrorIs(err, ErrRNGFailure)
}

func TestEncapsulateSurfacesRNGFailure(t *testing.T) {
	require := require.New(t)

	pk, _, err := MLKEM768.GenerateKeyPair(shortReaderFullSeed())
	require.NoError(err)

	_, _, err = pk.Encapsulate(&shortReader{n: 0})
	require.ErrorIs(err, ErrRNGFailure)
}

func shortReaderFullSeed() io.Reader {
	return &repeatReader{}
}

// repeatReader is a non-cryptographic but otherwise well-behaved source of
// distinct bytes, used where a test needs a full seed but not real entropy.
type repeatReader struct{ ctr byte }

func (r *repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.ctr
		r.ctr++
	}
	return len(p), nil
}

func TestGenerateKeyPairFromSeedRejectsShortSeed(t *testing.T) {
	require := require.New(t)

	d := make([]byte, SymSize-1)
	z := make([]byte, SymSize)

	_, _, err := MLKEM512.GenerateKeyPairFromSeed(d, z)
	require.ErrorIs(err, ErrInvalidLength)

	_, _, err = MLKEM512.GenerateKeyPairFromSeed(z, d)
	require.ErrorIs(err, ErrInvalidLength)
}

func TestPrivateKeyFromBytesRejectsBadLength(t *testing.T) {
	require := require.New(t)

	_, err := MLKEM512.PrivateKeyFromBytes(make([]byte, MLKEM512.PrivateKeySize()-1))
	require.ErrorIs(err, ErrInvalidLength)
}

func TestErrorSentinelsAreDistinct(t *testing.T) {
	require := require.New(t)

	errs := []error{
		ErrInvalidLength,
		ErrInvalidEncoding,
		ErrMutationRejected,
		ErrPrimitiveFailure,
		ErrRNGFailure,
	}
	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			require.NotEqual(a, b)
		}
	}
}
