// doc.go - mlkem godoc extras.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements the ML-KEM (Module-Lattice Key-Encapsulation
// Mechanism) IND-CCA2-secure key encapsulation mechanism standardized by
// NIST as FIPS 203, based on the hardness of the Module Learning With
// Errors (MLWE) problem.
//
// This package implements the three standardized parameter sets,
// ML-KEM-512, ML-KEM-768, and ML-KEM-1024, and exposes deterministic
// keypair generation from a 64-byte seed, key encapsulation, and key
// decapsulation, together with bit-exact serialization of the public key,
// the FIPS 203 expanded private key, and the ciphertext.
//
// The field arithmetic, NTT, and pointwise-multiplication routines are
// adapted from the CRYSTALS-Kyber reference implementation that FIPS 203
// standardizes; only the parameterization (eta1/eta2/du/dv per variant),
// the key lifecycle, and the Fujisaki-Okamoto wrapper are specific to this
// package.
//
// For more information, see FIPS 203 at https://csrc.nist.gov/pubs/fips/203/final.
package mlkem
