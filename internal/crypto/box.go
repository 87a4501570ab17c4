package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/nacl/box"

	"blackipher/internal/domain"
	"blackipher/internal/util/memzero"
)

const (
	// SharedKeySize is the length of a precomputed box key.
	SharedKeySize = 32
	// NonceSize is the XSalsa20-Poly1305 nonce length.
	NonceSize = 24
	// Overhead is the authenticator length added to every ciphertext.
	Overhead = box.Overhead
)

// SharedKey is the symmetric key produced by Precompute.
type SharedKey [SharedKeySize]byte

// Precompute runs X25519 between priv and peer and derives the box key from
// the result. Both sides of an exchange obtain the same key.
func Precompute(peer domain.X25519Public, priv domain.X25519Private) *SharedKey {
	var shared [SharedKeySize]byte
	p := [32]byte(peer)
	s := [32]byte(priv)
	box.Precompute(&shared, &p, &s)
	memzero.Zero32(&s)
	out := SharedKey(shared)
	memzero.Zero32(&shared)
	return &out
}

// Wipe zeroes the key.
func (k *SharedKey) Wipe() {
	if k == nil {
		return
	}
	memzero.Zero(k[:])
}

// GenerateNonce returns a random nonce.
func GenerateNonce() (n domain.Nonce, err error) {
	_, err = rand.Read(n[:])
	return n, err
}

// SealPrecomputed encrypts and authenticates msg.
func SealPrecomputed(msg []byte, nonce domain.Nonce, key *SharedKey) []byte {
	n := [NonceSize]byte(nonce)
	k := [SharedKeySize]byte(*key)
	defer memzero.Zero32(&k)
	return box.SealAfterPrecomputation(nil, msg, &n, &k)
}

// OpenPrecomputed authenticates and decrypts ct. ok is false on any
// authentication failure, including truncated input.
func OpenPrecomputed(ct []byte, nonce domain.Nonce, key *SharedKey) ([]byte, bool) {
	if len(ct) < Overhead {
		return nil, false
	}
	n := [NonceSize]byte(nonce)
	k := [SharedKeySize]byte(*key)
	defer memzero.Zero32(&k)
	return box.OpenAfterPrecomputation(nil, ct, &n, &k)
}
