package crypto

import (
	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"
)

// FingerprintPrefix marks BlacKipher fingerprints.
const FingerprintPrefix = "bk1"

// Fingerprint returns a short display identifier for a public key:
// the prefix followed by base58(BLAKE2b-256(pub)) truncated to 16 bytes.
func Fingerprint(pub []byte) string {
	sum := blake2b.Sum256(pub)
	return FingerprintPrefix + base58.Encode(sum[:16])
}
