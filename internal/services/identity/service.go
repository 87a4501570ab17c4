package identity

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"blackipher/internal/crypto"
	"blackipher/internal/domain"
)

// Service creates identities. It holds no key material itself.
type Service struct {
	logger *slog.Logger
}

// New returns an identity service that logs through logger.
// A nil logger discards output.
func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{logger: logger.With("component", "identity")}
}

// Create generates a fresh identity for name with oneTimePreKeys one-time
// pre-keys.
//
// Steps:
//  1. Generate the Ed25519 signing key pair.
//  2. Generate the X25519 signed pre-key pair.
//  3. Sign the signed pre-key public with the signing secret.
//  4. Generate the one-time pre-key pool.
//
// The only failure is the random source being unavailable.
func (s *Service) Create(name domain.Username, oneTimePreKeys int) (*domain.Identity, error) {
	signingPriv, signingPub, err := crypto.GenerateEd25519()
	if err != nil {
		return nil, fmt.Errorf("generate signing key for %q: %w", name, err)
	}
	spkPriv, spkPub, err := crypto.GenerateX25519()
	if err != nil {
		return nil, fmt.Errorf("generate signed pre-key for %q: %w", name, err)
	}
	sig := crypto.SignEd25519(signingPriv, spkPub.Slice())

	if oneTimePreKeys < 0 {
		oneTimePreKeys = 0
	}
	pool := make([]domain.OneTimePreKeyPair, 0, oneTimePreKeys)
	for i := 0; i < oneTimePreKeys; i++ {
		priv, pub, err := crypto.GenerateX25519()
		if err != nil {
			return nil, fmt.Errorf("generate one-time pre-key %d for %q: %w", i, name, err)
		}
		pool = append(pool, domain.OneTimePreKeyPair{
			ID:   domain.OneTimePreKeyID(fmt.Sprintf("opk-%d", i)),
			Priv: priv,
			Pub:  pub,
		})
	}

	id := &domain.Identity{
		Username:              name,
		SigningPublicKey:      signingPub,
		SigningPrivateKey:     signingPriv,
		SignedPreKeyPublic:    spkPub,
		SignedPreKeyPrivate:   spkPriv,
		SignedPreKeySignature: sig,
		OneTimePreKeys:        pool,
	}
	s.logger.Debug("identity created",
		"operation", "create",
		"username", name.String(),
		"fingerprint", s.Fingerprint(id).String(),
		"one_time_pre_keys", len(pool),
	)
	return id, nil
}

// Fingerprint returns the display fingerprint of the identity's signing key.
func (s *Service) Fingerprint(id *domain.Identity) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(id.SigningPublicKey.Slice()))
}

// DescribeKeys renders every key and the signed pre-key signature as hex.
// The output is for inspection only and includes secret keys.
func (s *Service) DescribeKeys(id *domain.Identity) []string {
	lines := []string{
		fmt.Sprintf("User: %s", id.Username),
		fmt.Sprintf("  Fingerprint         : %s", s.Fingerprint(id)),
		fmt.Sprintf("  Identity Public Key : %s", hex.EncodeToString(id.SigningPublicKey.Slice())),
		fmt.Sprintf("  Identity Secret Key : %s", hex.EncodeToString(id.SigningPrivateKey.Slice())),
		fmt.Sprintf("  Signed Pre Public   : %s", hex.EncodeToString(id.SignedPreKeyPublic.Slice())),
		fmt.Sprintf("  Signed Pre Secret   : %s", hex.EncodeToString(id.SignedPreKeyPrivate.Slice())),
		fmt.Sprintf("  Signature on SPK    : %s", hex.EncodeToString(id.SignedPreKeySignature)),
	}
	for i, otk := range id.OneTimePreKeys {
		lines = append(lines,
			fmt.Sprintf("  One-Time PreKey #%d (pub): %s", i, hex.EncodeToString(otk.Pub.Slice())),
			fmt.Sprintf("  One-Time PreKey #%d (priv): %s", i, hex.EncodeToString(otk.Priv.Slice())),
		)
	}
	return lines
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
