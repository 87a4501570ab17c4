// Package x3dh implements the one-sided, per-message handshake used to seal
// and open BlacKipher messages.
//
// # Overview
//
// Every outgoing message runs a fresh ephemeral-to-static agreement against
// the peer's signed pre-key. There is no chain state and no ratchet: the
// shared key depends only on the ephemeral secret and the peer's signed
// pre-key, so compromise of that pre-key exposes every message sealed to it.
//
// # Flows
//
// Seal (sender):
//  1. Verify the peer's signed pre-key signature. The result is recorded in the
//     audit log; it only aborts sealing under WithStrictVerification.
//  2. Generate an ephemeral X25519 key pair.
//  3. Precompute the box key from DH(ephemeral, peer.SPK).
//  4. Generate a random 24-byte nonce.
//  5. Seal the plaintext with XSalsa20-Poly1305.
//  6. Render the send-side audit log.
//
// Open (receiver):
//  1. Precompute the box key from DH(self.SPK, ephemeral).
//  2. Authenticate and decrypt; any failure yields no result.
//  3. Reject plaintext that is not valid UTF-8.
//  4. Render the receive-side audit log.
//
// # Audit logs
//
// Logs are returned as data alongside each result; their line schema is fixed
// (see formatSendLog and formatReceiveLog). They contain public values,
// ciphertext and, on the receive side, the plaintext.
//
// # Security notes
//
// One-time pre-keys are never read here. A peer whose signed pre-key fails
// verification is still sealed to unless strict verification is requested.
package x3dh
