// errors.go - mlkem error kinds.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "errors"

var (
	// ErrInvalidLength is returned when a byte-serialized public key,
	// private key, ciphertext, or seed has the wrong length for the
	// declared parameter set.
	ErrInvalidLength = errors.New("mlkem: invalid length")

	// ErrInvalidEncoding is returned when a parsed 12-bit-packed
	// coefficient is >= q, or when a parsed private key's embedded
	// H(ek) does not match the recomputed hash of the embedded public
	// key.
	ErrInvalidEncoding = errors.New("mlkem: invalid encoding")

	// ErrMutationRejected is returned when an attempt is made to
	// populate a Key that has already been populated.
	ErrMutationRejected = errors.New("mlkem: key already populated")

	// ErrPrimitiveFailure is returned when an underlying hash or XOF
	// primitive fails. This is treated as a fatal setup error.
	ErrPrimitiveFailure = errors.New("mlkem: primitive failure")

	// ErrRNGFailure is returned when the caller-supplied entropy source
	// fails to produce the requested number of bytes.
	ErrRNGFailure = errors.New("mlkem: rng failure")
)
