// Package crypto exposes the minimal primitives used by BlacKipher.
//
// Contents
//
//   - X25519 key generation and clamping (GenerateX25519)
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - NaCl box with a precomputed shared key: X25519 agreement hashed through
//     HSalsa20, then XSalsa20-Poly1305 sealing (Precompute, SealPrecomputed,
//     OpenPrecomputed, GenerateNonce)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// Key material uses the fixed-size array types from internal/domain. Random
// generation failures are returned to the caller; there is no fallback source
// of entropy.
package crypto
