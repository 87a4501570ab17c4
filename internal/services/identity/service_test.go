package identity_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"blackipher/internal/crypto"
	"blackipher/internal/domain"
	"blackipher/internal/services/identity"
)

func newIdentity(t *testing.T, name string, n int) *domain.Identity {
	t.Helper()
	id, err := identity.New(nil).Create(domain.Username(name), n)
	if err != nil {
		t.Fatalf("Create(%q): %v", name, err)
	}
	return id
}

func TestCreate_SignedPreKeyVerifies(t *testing.T) {
	id := newIdentity(t, "alice", 2)

	if id.Username != "alice" {
		t.Fatalf("username = %q", id.Username)
	}
	if !crypto.VerifyEd25519(id.SigningPublicKey, id.SignedPreKeyPublic.Slice(), id.SignedPreKeySignature) {
		t.Fatal("signed pre-key signature does not verify")
	}
}

func TestCreate_TamperedSignedPreKeyFailsVerification(t *testing.T) {
	id := newIdentity(t, "alice", 0)
	for i := range id.SignedPreKeyPublic {
		tampered := id.SignedPreKeyPublic
		tampered[i] ^= 0x01
		if crypto.VerifyEd25519(id.SigningPublicKey, tampered.Slice(), id.SignedPreKeySignature) {
			t.Fatalf("signature still verifies after flipping byte %d", i)
		}
	}
}

func TestCreate_OneTimePreKeyPool(t *testing.T) {
	id := newIdentity(t, "bob", 4)
	if len(id.OneTimePreKeys) != 4 {
		t.Fatalf("want 4 one-time pre-keys, got %d", len(id.OneTimePreKeys))
	}
	seen := map[domain.X25519Public]bool{}
	for i, otk := range id.OneTimePreKeys {
		if seen[otk.Pub] {
			t.Fatalf("duplicate one-time pre-key at %d", i)
		}
		seen[otk.Pub] = true
		if otk.ID == "" {
			t.Fatalf("one-time pre-key %d has no id", i)
		}
	}

	if got := newIdentity(t, "carol", -3); len(got.OneTimePreKeys) != 0 {
		t.Fatalf("negative count produced %d keys", len(got.OneTimePreKeys))
	}
}

func TestCreate_FreshKeysEveryCall(t *testing.T) {
	a := newIdentity(t, "alice", 1)
	b := newIdentity(t, "alice", 1)
	if a.SigningPublicKey == b.SigningPublicKey || a.SignedPreKeyPublic == b.SignedPreKeyPublic {
		t.Fatal("two identities share key material")
	}
}

func TestClone_IsDeep(t *testing.T) {
	id := newIdentity(t, "alice", 2)
	c := id.Clone()

	c.SignedPreKeySignature[0] ^= 0xff
	c.OneTimePreKeys[0].Pub[0] ^= 0xff
	c.Username = "mallory"

	if id.SignedPreKeySignature[0] == c.SignedPreKeySignature[0] {
		t.Fatal("clone shares signature bytes")
	}
	if id.OneTimePreKeys[0].Pub == c.OneTimePreKeys[0].Pub {
		t.Fatal("clone shares one-time pre-keys")
	}
	if id.Username != "alice" {
		t.Fatal("clone shares username")
	}
	var nilID *domain.Identity
	if nilID.Clone() != nil {
		t.Fatal("clone of nil identity should be nil")
	}
}

func TestDescribeKeys(t *testing.T) {
	svc := identity.New(nil)
	id := newIdentity(t, "alice", 2)
	lines := svc.DescribeKeys(id)

	// header, fingerprint, 5 key lines, 2 lines per one-time pre-key
	if want := 7 + 2*2; len(lines) != want {
		t.Fatalf("want %d lines, got %d:\n%s", want, len(lines), strings.Join(lines, "\n"))
	}
	if lines[0] != "User: alice" {
		t.Fatalf("header = %q", lines[0])
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{
		hex.EncodeToString(id.SigningPublicKey.Slice()),
		hex.EncodeToString(id.SignedPreKeyPublic.Slice()),
		hex.EncodeToString(id.SignedPreKeySignature),
		hex.EncodeToString(id.OneTimePreKeys[1].Priv.Slice()),
		svc.Fingerprint(id).String(),
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("description missing %s", want)
		}
	}
}
