package types

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Ed25519 signing private key (ed25519.PrivateKey layout).
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// Nonce is the 24-byte nonce used by the message envelope cipher.
type Nonce [24]byte

// Slice returns the nonce as a []byte.
func (n Nonce) Slice() []byte { return n[:] }

// X25519PublicFromSlice copies b into an X25519Public. ok is false when b has
// the wrong length.
func X25519PublicFromSlice(b []byte) (pub X25519Public, ok bool) {
	if len(b) != len(pub) {
		return pub, false
	}
	copy(pub[:], b)
	return pub, true
}

// NonceFromSlice copies b into a Nonce. ok is false when b has the wrong length.
func NonceFromSlice(b []byte) (n Nonce, ok bool) {
	if len(b) != len(n) {
		return n, false
	}
	copy(n[:], b)
	return n, true
}
