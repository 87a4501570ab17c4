package x3dh

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"blackipher/internal/crypto"
	"blackipher/internal/domain"
	"blackipher/internal/util/memzero"
)

// ErrSignedPreKeyRejected is returned by Seal in strict mode when the peer's
// signed pre-key signature does not verify.
var ErrSignedPreKeyRejected = errors.New("peer signed pre-key signature does not verify")

// Sealed is the output of Seal.
type Sealed struct {
	EphemeralKey domain.X25519Public
	Nonce        domain.Nonce
	Ciphertext   []byte
	Log          string
	// Verified reports whether the peer's signed pre-key signature checked out.
	Verified bool
}

// Message returns the storable form of s.
func (s Sealed) Message() domain.SealedMessage {
	return domain.SealedMessage{
		Ciphertext:   append([]byte(nil), s.Ciphertext...),
		EphemeralKey: append([]byte(nil), s.EphemeralKey.Slice()...),
		Nonce:        append([]byte(nil), s.Nonce.Slice()...),
		Log:          s.Log,
	}
}

// Opened is the output of a successful Open.
type Opened struct {
	Plaintext string
	Log       string
}

type sealConfig struct {
	strict bool
}

// SealOption adjusts Seal.
type SealOption func(*sealConfig)

// WithStrictVerification makes Seal fail with ErrSignedPreKeyRejected instead
// of sealing to a peer whose signed pre-key signature does not verify.
func WithStrictVerification() SealOption {
	return func(c *sealConfig) { c.strict = true }
}

// WithVerification selects strict verification when strict is true.
func WithVerification(strict bool) SealOption {
	return func(c *sealConfig) { c.strict = strict }
}

// VerifySignedPreKey checks id's signed pre-key signature against its
// signing key.
func VerifySignedPreKey(id *domain.Identity) bool {
	return crypto.VerifyEd25519(id.SigningPublicKey, id.SignedPreKeyPublic.Slice(), id.SignedPreKeySignature)
}

// Seal encrypts plaintext from sender to peer.
//
// The ephemeral secret and the shared key are wiped before returning. An error
// is returned only when randomness is unavailable or, in strict mode, when the
// peer's signed pre-key fails verification.
func Seal(sender, peer *domain.Identity, plaintext string, opts ...SealOption) (Sealed, error) {
	var cfg sealConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return seal(sender, peer, []byte(plaintext), cfg)
}

func seal(sender, peer *domain.Identity, plaintext []byte, cfg sealConfig) (Sealed, error) {
	verified := VerifySignedPreKey(peer)
	if !verified && cfg.strict {
		return Sealed{}, fmt.Errorf("seal to %q: %w", peer.Username, ErrSignedPreKeyRejected)
	}

	ephPriv, ephPub, err := crypto.GenerateX25519()
	if err != nil {
		return Sealed{}, fmt.Errorf("generate ephemeral key: %w", err)
	}
	shared := crypto.Precompute(peer.SignedPreKeyPublic, ephPriv) // DH(EK, SPK_peer)
	memzero.Zero(ephPriv[:])
	defer shared.Wipe()

	nonce, err := crypto.GenerateNonce()
	if err != nil {
		return Sealed{}, fmt.Errorf("generate nonce: %w", err)
	}
	ciphertext := crypto.SealPrecomputed(plaintext, nonce, shared)

	return Sealed{
		EphemeralKey: ephPub,
		Nonce:        nonce,
		Ciphertext:   ciphertext,
		Verified:     verified,
		Log: formatSendLog(sendLog{
			Sender:       sender.Username,
			Receiver:     peer.Username,
			Verified:     verified,
			EphemeralKey: ephPub,
			SharedLen:    crypto.SharedKeySize,
			Nonce:        nonce,
			Ciphertext:   ciphertext,
		}),
	}, nil
}

// Open decrypts a message sealed to receiver's signed pre-key. senderName is
// used only for the audit log. ok is false when authentication fails or the
// plaintext is not valid UTF-8; no partial plaintext is ever returned.
func Open(
	receiver *domain.Identity,
	ephemeral domain.X25519Public,
	nonce domain.Nonce,
	ciphertext []byte,
	senderName domain.Username,
) (Opened, bool) {
	shared := crypto.Precompute(ephemeral, receiver.SignedPreKeyPrivate) // DH(SPK_self, EK)
	defer shared.Wipe()

	pt, ok := crypto.OpenPrecomputed(ciphertext, nonce, shared)
	if !ok {
		return Opened{}, false
	}
	if !utf8.Valid(pt) {
		memzero.Zero(pt)
		return Opened{}, false
	}
	plaintext := string(pt)

	return Opened{
		Plaintext: plaintext,
		Log: formatReceiveLog(receiveLog{
			Receiver:   receiver.Username,
			Sender:     senderName,
			SharedLen:  crypto.SharedKeySize,
			Nonce:      nonce,
			Ciphertext: ciphertext,
			Plaintext:  plaintext,
		}),
	}, true
}

// OpenMessage opens a stored message. Malformed ephemeral keys or nonces
// yield no result.
func OpenMessage(receiver *domain.Identity, msg domain.SealedMessage, senderName domain.Username) (Opened, bool) {
	eph, ok := domain.X25519PublicFromSlice(msg.EphemeralKey)
	if !ok {
		return Opened{}, false
	}
	nonce, ok := domain.NonceFromSlice(msg.Nonce)
	if !ok {
		return Opened{}, false
	}
	return Open(receiver, eph, nonce, msg.Ciphertext, senderName)
}
