package types

// OneTimePreKeyPair is a single-use agreement key pair held by an identity.
// Pairs are generated once and never consumed.
type OneTimePreKeyPair struct {
	ID   OneTimePreKeyID
	Priv X25519Private
	Pub  X25519Public
}

// Identity is a participant's full key material. It lives only in memory and
// is regenerated on every run.
//
//   - SigningPublicKey/SigningPrivateKey: long-term Ed25519 identity key.
//   - SignedPreKeyPublic/SignedPreKeyPrivate: medium-term X25519 agreement key.
//   - SignedPreKeySignature: Ed25519 signature over SignedPreKeyPublic.
//   - OneTimePreKeys: pool of single-use X25519 pairs.
type Identity struct {
	Username Username

	SigningPublicKey  Ed25519Public
	SigningPrivateKey Ed25519Private

	SignedPreKeyPublic    X25519Public
	SignedPreKeyPrivate   X25519Private
	SignedPreKeySignature []byte

	OneTimePreKeys []OneTimePreKeyPair
}

// Clone returns a deep copy of id.
func (id *Identity) Clone() *Identity {
	if id == nil {
		return nil
	}
	out := *id
	out.SignedPreKeySignature = append([]byte(nil), id.SignedPreKeySignature...)
	out.OneTimePreKeys = append([]OneTimePreKeyPair(nil), id.OneTimePreKeys...)
	return &out
}
